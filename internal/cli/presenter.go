package cli

import (
	"fmt"
	"io"
	"time"

	apperrors "github.com/atmofx/bigint/internal/errors"
	"github.com/atmofx/bigint/internal/format"
	"github.com/atmofx/bigint/internal/ui"
)

// CLIColorProvider implements apperrors.ColorProvider by delegating to the
// active UI theme, decoupling apperrors from any specific color library.
type CLIColorProvider struct{}

// Red returns the active theme's error color.
func (CLIColorProvider) Red() string { return ui.ColorRed() }

// Yellow returns the active theme's warning color.
func (CLIColorProvider) Yellow() string { return ui.ColorYellow() }

// Reset returns the active theme's reset sequence.
func (CLIColorProvider) Reset() string { return ui.ColorReset() }

// HandleError classifies a calculation error, writes a colorized diagnostic
// to out, and returns the matching process exit code.
func HandleError(err error, duration time.Duration, out io.Writer) int {
	return apperrors.HandleCalculationError(err, duration, out, CLIColorProvider{})
}

// DisplayMemoryStats shows memory statistics after a calculation.
func DisplayMemoryStats(heapAlloc, totalAlloc uint64, numGC uint32, pauseTotalNs uint64, out io.Writer) {
	fmt.Fprintf(out, "\nMemory Stats:\n")
	fmt.Fprintf(out, "  Peak heap:       %s\n", format.FormatBytes(heapAlloc))
	fmt.Fprintf(out, "  Total allocated: %s\n", format.FormatBytes(totalAlloc))
	fmt.Fprintf(out, "  GC cycles:       %d\n", numGC)
	if pauseTotalNs > 0 {
		fmt.Fprintf(out, "  GC pause total:  %.2fms\n", float64(pauseTotalNs)/1e6)
	} else {
		fmt.Fprintf(out, "  GC pause total:  0ms (GC disabled)\n")
	}
}
