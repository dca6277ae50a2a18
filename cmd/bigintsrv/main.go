package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/atmofx/bigint/internal/logging"
	"github.com/atmofx/bigint/internal/server"
)

func main() {
	fs := flag.NewFlagSet("bigintsrv", flag.ExitOnError)
	addr := fs.String("addr", ":8080", "address to listen on")
	maxLimbs := fs.Int("max-limbs", 1_000_000, "reject operands/results above this many 32-bit limbs")
	noCORS := fs.Bool("no-cors", false, "disable CORS headers")
	_ = fs.Parse(os.Args[1:])

	security := server.DefaultSecurityConfig()
	security.MaxLimbs = *maxLimbs
	security.EnableCORS = !*noCORS

	logger := logging.NewDefaultLogger()
	srv := server.New(*addr, security, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "bigintsrv: %v\n", err)
		os.Exit(1)
	}
}
