// Package config resolves the application configuration for the bigint
// CLI from command-line flags, with environment variable fallbacks for
// anything not explicitly set on the command line.
package config

import (
	"flag"
	"fmt"
	"io"
	"time"
)

// EnvPrefix is prepended to every environment variable this package reads.
const EnvPrefix = "BIGINT_"

// AppConfig holds the fully resolved configuration for a single run of
// the bigint CLI, whether that run performs one computation, starts a
// REPL, or launches the TUI dashboard.
type AppConfig struct {
	// Op is the operation to perform (e.g. "add", "factorial", "fib").
	Op string
	// Operands are the operation's arguments, in the configured Base.
	Operands []string
	// Base is the numeric base used to parse operands and format output.
	Base int
	// MaxLimbs rejects any operand or result whose magnitude exceeds this
	// many 32-bit limbs, guarding against unbounded memory growth.
	MaxLimbs int
	// Timeout bounds how long a single operation may run.
	Timeout time.Duration
	// Verbose shows timing and limb-count details alongside the result.
	Verbose bool
	// Quiet suppresses everything but the bare result, for scripting.
	Quiet bool
	// OutputFile, if set, additionally saves the result to this path.
	OutputFile string
	// REPL starts an interactive read-eval-print loop instead of a single
	// one-shot computation.
	REPL bool
	// TUI starts the interactive dashboard instead of a one-shot computation.
	TUI bool
	// Completion, if non-empty, names the shell to emit a completion
	// script for ("bash", "zsh", "fish", "powershell") instead of running
	// any computation.
	Completion string
	// NoColor disables ANSI color output regardless of terminal detection.
	NoColor bool
}

// ParseConfig parses command-line arguments into an AppConfig, then applies
// any environment variable overrides for flags that were not explicitly
// set. availableOps is used only to list the operation names in the --op
// flag's usage text.
func ParseConfig(programName string, args []string, errWriter io.Writer, availableOps []string) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	cfg := AppConfig{
		Base:     10,
		MaxLimbs: 1 << 20,
		Timeout:  30 * time.Second,
	}

	fs.StringVar(&cfg.Op, "op", "", "operation to perform: "+joinOps(availableOps))
	fs.StringVar(&cfg.Op, "o", "", "shorthand for --op")
	fs.IntVar(&cfg.Base, "base", cfg.Base, "numeric base for operands and output (2-64)")
	fs.IntVar(&cfg.Base, "b", cfg.Base, "shorthand for --base")
	fs.IntVar(&cfg.MaxLimbs, "max-limbs", cfg.MaxLimbs, "reject operands/results above this many 32-bit limbs")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "maximum execution time")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "display timing and limb-count details")
	fs.BoolVar(&cfg.Verbose, "v", false, "shorthand for --verbose")
	fs.BoolVar(&cfg.Quiet, "quiet", false, "quiet mode for scripts")
	fs.BoolVar(&cfg.Quiet, "q", false, "shorthand for --quiet")
	fs.StringVar(&cfg.OutputFile, "output", "", "save the result to this file")
	fs.BoolVar(&cfg.REPL, "repl", false, "start an interactive REPL")
	fs.BoolVar(&cfg.TUI, "tui", false, "start the interactive dashboard")
	fs.StringVar(&cfg.Completion, "completion", "", "generate a shell completion script: bash|zsh|fish|powershell")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "disable colored output")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	cfg.Operands = fs.Args()

	applyEnvOverrides(&cfg, fs)

	if cfg.Completion != "" {
		return cfg, nil
	}
	if cfg.Op == "" && !cfg.REPL && !cfg.TUI {
		return cfg, NewUsageError("an operation is required: pass --op or one of --repl/--tui")
	}
	if cfg.Base < 2 || cfg.Base > 64 {
		return cfg, NewUsageError("base must be between 2 and 64, got %d", cfg.Base)
	}
	return cfg, nil
}

func joinOps(ops []string) string {
	s := ""
	for i, op := range ops {
		if i > 0 {
			s += ", "
		}
		s += op
	}
	return s
}

// UsageError reports a malformed invocation of ParseConfig.
type UsageError struct{ Message string }

func (e UsageError) Error() string { return e.Message }

// NewUsageError creates a UsageError with a formatted message.
func NewUsageError(format string, a ...any) error {
	return UsageError{Message: fmt.Sprintf(format, a...)}
}
