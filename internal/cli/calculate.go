package cli

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/atmofx/bigint/internal/config"
	"github.com/atmofx/bigint/internal/ui"
)

// PrintExecutionConfig displays the current execution configuration to the
// user: the operation, its operands, the configured base, and the timeout.
func PrintExecutionConfig(cfg config.AppConfig, out io.Writer) {
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	fmt.Fprintf(out, "Operation: %s%s(%s)%s, base %s%d%s, timeout %s%s%s.\n",
		ui.ColorMagenta(), cfg.Op, strings.Join(cfg.Operands, ", "), ui.ColorReset(),
		ui.ColorCyan(), cfg.Base, ui.ColorReset(),
		ui.ColorYellow(), cfg.Timeout, ui.ColorReset())
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, Go %s%s%s.\n",
		ui.ColorCyan(), runtime.NumCPU(), ui.ColorReset(), ui.ColorCyan(), runtime.Version(), ui.ColorReset())
	fmt.Fprintf(out, "Limits: at most %s%d%s 32-bit limbs per operand or result.\n",
		ui.ColorCyan(), cfg.MaxLimbs, ui.ColorReset())
}

// PrintExecutionMode displays the operation about to run.
func PrintExecutionMode(op string, out io.Writer) {
	fmt.Fprintf(out, "Execution mode: single operation %s%s%s.\n", ui.ColorGreen(), op, ui.ColorReset())
	fmt.Fprintf(out, "\n--- Starting Execution ---\n")
}
