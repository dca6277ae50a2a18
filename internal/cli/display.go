// Result and progress display for the interactive CLI and REPL.

package cli

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/briandowns/spinner"

	"github.com/atmofx/bigint/bigint"
	"github.com/atmofx/bigint/internal/ui"
)

// ProgressUpdate reports the fractional completion (0.0 to 1.0) of one of
// several concurrently running operations, identified by CalculatorIndex.
type ProgressUpdate struct {
	CalculatorIndex int
	Value           float64
}

// DisplayProgress renders a spinner and an aggregated progress bar while
// numCalculators operations report their completion on progressChan. It
// returns once progressChan is closed, calling wg.Done() exactly once.
func DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, numCalculators int, out io.Writer) {
	defer wg.Done()

	if numCalculators == 0 {
		for range progressChan {
		}
		return
	}

	state := NewProgressState(numCalculators)
	s := newSpinner(spinner.WithWriter(out))
	s.Start()
	defer s.Stop()

	ticker := time.NewTicker(ProgressRefreshRate)
	defer ticker.Stop()

	for {
		select {
		case update, ok := <-progressChan:
			if !ok {
				return
			}
			state.Update(update.CalculatorIndex, update.Value)
		case <-ticker.C:
			avg := state.CalculateAverage()
			s.UpdateSuffix(fmt.Sprintf(" %s %.1f%%", progressBar(avg, ProgressBarWidth), avg*100))
		}
	}
}

// DisplayResult renders the outcome of a single bigint operation: a one-line
// summary by default, with an optional detailed breakdown and the full
// formatted value.
func DisplayResult(result bigint.Int, op string, operands []string, base int, duration time.Duration, verbose, details, showValue bool, out io.Writer) {
	resultStr, err := result.Text(base)
	if err != nil {
		fmt.Fprintf(out, "%sError formatting result: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
		return
	}

	fmt.Fprintf(out, "\n%sResult%s\n", ui.ColorBold(), ui.ColorReset())

	if details {
		fmt.Fprintf(out, "  Detailed result analysis:\n")
		fmt.Fprintf(out, "    Operation:           %s%s(%s)%s\n", ui.ColorMagenta(), op, strings.Join(operands, ", "), ui.ColorReset())
		fmt.Fprintf(out, "    Result binary size:  %s%d%s bits\n", ui.ColorCyan(), result.BitLen(), ui.ColorReset())
		fmt.Fprintf(out, "    Number of digits:    %s%d%s (base %d)\n", ui.ColorCyan(), len(resultStr), ui.ColorReset(), base)
		fmt.Fprintf(out, "    Calculation time:    %s%s%s\n", ui.ColorGreen(), FormatExecutionDuration(duration), ui.ColorReset())
	}

	if !showValue {
		if !details {
			fmt.Fprintf(out, "  %s(%s) computed in %s.\n", op, strings.Join(operands, ", "), FormatExecutionDuration(duration))
		}
		return
	}

	displayStr := resultStr
	if !verbose && len(resultStr) > TruncationLimit {
		displayStr = fmt.Sprintf("%s...%s", resultStr[:DisplayEdges], resultStr[len(resultStr)-DisplayEdges:])
		fmt.Fprintf(out, "  (truncated) Tip: use --verbose to print the full value.\n")
	}
	fmt.Fprintf(out, "  Calculated value:\n    %s(%s) = %s%s%s\n",
		op, strings.Join(operands, ", "), ui.ColorGreen(), displayStr, ui.ColorReset())
}
