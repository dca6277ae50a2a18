// Package cli provides the REPL (Read-Eval-Print Loop) functionality
// for interactive bigint calculations.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/atmofx/bigint/bigint"
	"github.com/atmofx/bigint/internal/ops"
	"github.com/atmofx/bigint/internal/ui"
)

// REPLConfig holds configuration for the REPL session.
type REPLConfig struct {
	// Base is the numeric base used to parse operands and format results.
	Base int
	// Timeout is the maximum duration for each computation.
	Timeout time.Duration
	// MaxLimbs rejects any operand or result above this many 32-bit limbs.
	MaxLimbs int
	// HexOutput displays results in hexadecimal format.
	HexOutput bool
}

// REPL represents an interactive bigint calculator session.
type REPL struct {
	config REPLConfig
	in     io.Reader
	out    io.Writer
}

// NewREPL creates a new REPL instance.
func NewREPL(config REPLConfig) *REPL {
	if config.Base == 0 {
		config.Base = 10
	}
	return &REPL{
		config: config,
		in:     os.Stdin,
		out:    os.Stdout,
	}
}

// SetInput sets a custom input reader (useful for testing).
func (r *REPL) SetInput(in io.Reader) {
	r.in = in
}

// SetOutput sets a custom output writer (useful for testing).
func (r *REPL) SetOutput(out io.Writer) {
	r.out = out
}

// Start begins the interactive REPL session.
// It continuously reads user input and processes commands until
// the user exits or EOF is reached.
func (r *REPL) Start() {
	r.printBanner()
	r.printHelp()
	fmt.Fprintln(r.out)

	reader := bufio.NewReader(r.in)

	for {
		fmt.Fprint(r.out, ui.ColorGreen()+"bigint> "+ui.ColorReset())

		input, err := reader.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(r.out, "\nGoodbye!")
				return
			}
			fmt.Fprintf(r.out, "%sRead error: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
			continue
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		if !r.processCommand(input) {
			return // Exit command received
		}
	}
}

// printBanner displays the REPL welcome banner.
func (r *REPL) printBanner() {
	fmt.Fprintf(r.out, "\n%s╔══════════════════════════════════════════════════════════╗%s\n", ui.ColorCyan(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s║%s     %sbigint - Interactive Mode%s                             %s║%s\n",
		ui.ColorCyan(), ui.ColorReset(), ui.ColorBold(), ui.ColorReset(), ui.ColorCyan(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s╚══════════════════════════════════════════════════════════╝%s\n\n", ui.ColorCyan(), ui.ColorReset())
}

// printHelp displays available commands.
func (r *REPL) printHelp() {
	fmt.Fprintf(r.out, "%sAvailable commands:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %s<op> <args...>%s - Run an operation, e.g. %sadd 34 21%s\n", ui.ColorYellow(), ui.ColorReset(), ui.ColorCyan(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %slist%s           - List available operations\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sbase <n>%s       - Change the numeric base (2-64)\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %shex%s            - Toggle hexadecimal display\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sstatus%s         - Display current configuration\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %shelp%s           - Display this help\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sexit%s / %squit%s   - Exit interactive mode\n", ui.ColorYellow(), ui.ColorReset(), ui.ColorYellow(), ui.ColorReset())
}

// processCommand parses and executes a user command.
// Returns false if the REPL should exit.
func (r *REPL) processCommand(input string) bool {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return true
	}

	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "list", "ls":
		r.cmdList()
	case "base":
		r.cmdBase(args)
	case "hex":
		r.cmdHex()
	case "status", "st":
		r.cmdStatus()
	case "help", "h", "?":
		r.printHelp()
	case "exit", "quit", "q":
		fmt.Fprintf(r.out, "%sGoodbye!%s\n", ui.ColorGreen(), ui.ColorReset())
		return false
	default:
		if _, ok := ops.Get(cmd); ok {
			r.calculate(cmd, args)
		} else {
			fmt.Fprintf(r.out, "%sUnknown command or operation: %s%s\n", ui.ColorRed(), cmd, ui.ColorReset())
			fmt.Fprintf(r.out, "Type %shelp%s to see available commands.\n", ui.ColorYellow(), ui.ColorReset())
		}
	}

	return true
}

// calculate runs a single operation with the current base and reports the
// result, with a spinner displayed for the duration of the computation.
func (r *REPL) calculate(op string, args []string) {
	ctx, cancel := context.WithTimeout(context.Background(), r.config.Timeout)
	defer cancel()

	fmt.Fprintf(r.out, "Calculating %s%s(%s)%s...\n",
		ui.ColorMagenta(), op, strings.Join(args, ", "), ui.ColorReset())

	type outcome struct {
		value    bigint.Int
		duration time.Duration
		err      error
	}
	resultChan := make(chan outcome, 1)

	progressChan := make(chan ProgressUpdate, 1)
	var wg sync.WaitGroup
	wg.Add(1)
	go DisplayProgress(&wg, progressChan, 1, r.out)

	go func() {
		start := time.Now()
		v, err := ops.Run(op, args, r.config.Base, r.config.MaxLimbs)
		close(progressChan)
		resultChan <- outcome{value: v, duration: time.Since(start), err: err}
	}()

	select {
	case <-ctx.Done():
		fmt.Fprintf(r.out, "%sTimed out after %s%s\n", ui.ColorYellow(), r.config.Timeout, ui.ColorReset())
	case res := <-resultChan:
		wg.Wait()
		if res.err != nil {
			fmt.Fprintf(r.out, "%sError: %v%s\n", ui.ColorRed(), res.err, ui.ColorReset())
			return
		}
		r.printResult(op, args, res.value, res.duration)
	}
}

func (r *REPL) printResult(op string, args []string, value bigint.Int, duration time.Duration) {
	durationStr := FormatExecutionDuration(duration)

	fmt.Fprintf(r.out, "\n%sResult:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  Time: %s%s%s\n", ui.ColorGreen(), durationStr, ui.ColorReset())
	fmt.Fprintf(r.out, "  Bits: %s%d%s\n", ui.ColorCyan(), value.BitLen(), ui.ColorReset())

	base := r.config.Base
	if r.config.HexOutput {
		base = 16
	}
	resultStr, err := value.Text(base)
	if err != nil {
		fmt.Fprintf(r.out, "  %sError formatting result: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
		return
	}
	numDigits := len(resultStr)
	fmt.Fprintf(r.out, "  Digits: %s%d%s\n", ui.ColorCyan(), numDigits, ui.ColorReset())

	if r.config.HexOutput {
		fmt.Fprintf(r.out, "  %s(%s) = %s0x%s%s\n", op, strings.Join(args, ", "), ui.ColorGreen(), resultStr, ui.ColorReset())
	} else if numDigits > TruncationLimit {
		fmt.Fprintf(r.out, "  %s(%s) = %s%s...%s%s (truncated)\n",
			op, strings.Join(args, ", "), ui.ColorGreen(), resultStr[:DisplayEdges], resultStr[numDigits-DisplayEdges:], ui.ColorReset())
	} else {
		fmt.Fprintf(r.out, "  %s(%s) = %s%s%s\n", op, strings.Join(args, ", "), ui.ColorGreen(), resultStr, ui.ColorReset())
	}
	fmt.Fprintln(r.out)
}

// cmdList handles the "list" command.
func (r *REPL) cmdList() {
	fmt.Fprintf(r.out, "\n%sAvailable operations:%s\n", ui.ColorBold(), ui.ColorReset())
	for _, name := range ops.Names() {
		op, _ := ops.Get(name)
		fmt.Fprintf(r.out, "  %s%-10s%s - %s\n", ui.ColorYellow(), name, ui.ColorReset(), op.Summary)
	}
	fmt.Fprintln(r.out)
}

// cmdBase handles the "base" command.
func (r *REPL) cmdBase(args []string) {
	if len(args) == 0 {
		fmt.Fprintf(r.out, "%sUsage: base <n>%s\n", ui.ColorRed(), ui.ColorReset())
		return
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 2 || n > 64 {
		fmt.Fprintf(r.out, "%sInvalid base: %s (must be 2-64)%s\n", ui.ColorRed(), args[0], ui.ColorReset())
		return
	}
	r.config.Base = n
	fmt.Fprintf(r.out, "Base changed to: %s%d%s\n", ui.ColorGreen(), n, ui.ColorReset())
}

// cmdHex toggles hexadecimal output mode.
func (r *REPL) cmdHex() {
	r.config.HexOutput = !r.config.HexOutput
	status := "disabled"
	if r.config.HexOutput {
		status = "enabled"
	}
	fmt.Fprintf(r.out, "Hexadecimal display: %s%s%s\n", ui.ColorGreen(), status, ui.ColorReset())
}

// cmdStatus displays current REPL configuration.
func (r *REPL) cmdStatus() {
	fmt.Fprintf(r.out, "\n%sCurrent configuration:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  Base:      %s%d%s\n", ui.ColorCyan(), r.config.Base, ui.ColorReset())
	fmt.Fprintf(r.out, "  Timeout:   %s%s%s\n", ui.ColorCyan(), r.config.Timeout, ui.ColorReset())
	fmt.Fprintf(r.out, "  Max limbs: %s%d%s\n", ui.ColorCyan(), r.config.MaxLimbs, ui.ColorReset())
	hexStatus := "no"
	if r.config.HexOutput {
		hexStatus = "yes"
	}
	fmt.Fprintf(r.out, "  Hexadecimal: %s%s%s\n", ui.ColorCyan(), hexStatus, ui.ColorReset())
	fmt.Fprintln(r.out)
}
