// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Examples: [DisplayResult], [DisplayQuietResult], [DisplayProgress].
//
//   - Format* functions return a formatted string without performing I/O.
//     They are pure functions suitable for composition.
//     Examples: [FormatQuietResult], [FormatExecutionDuration].
//
//   - Write* functions write data to files on the filesystem.
//     They handle file creation, directory setup, and error handling.
//     Examples: [WriteResultToFile].

package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/atmofx/bigint/bigint"
	"github.com/atmofx/bigint/internal/ui"
)

// OutputConfig holds configuration for result output.
type OutputConfig struct {
	// OutputFile is the path to save the result (empty for no file output).
	OutputFile string
	// Quiet mode suppresses verbose output.
	Quiet bool
	// Verbose shows the full result value.
	Verbose bool
	// ShowValue enables the calculated value display when true (disabled by default).
	ShowValue bool
}

// WriteResultToFile writes a calculation result to a file.
//
// Parameters:
//   - result: The computed value.
//   - op: The operation name.
//   - operands: The operation's operands, in the configured base.
//   - base: The numeric base used to format the result.
//   - duration: The calculation duration.
//   - config: Output configuration.
//
// Returns:
//   - error: An error if the file cannot be written.
func WriteResultToFile(result bigint.Int, op string, operands []string, base int, duration time.Duration, config OutputConfig) error {
	if config.OutputFile == "" {
		return nil
	}

	dir := filepath.Dir(config.OutputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(config.OutputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	resultStr, err := result.Text(base)
	if err != nil {
		return fmt.Errorf("failed to format result: %w", err)
	}

	fmt.Fprintf(file, "# bigint calculation result\n")
	fmt.Fprintf(file, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(file, "# Operation: %s\n", op)
	fmt.Fprintf(file, "# Operands: %s\n", strings.Join(operands, ", "))
	fmt.Fprintf(file, "# Base: %d\n", base)
	fmt.Fprintf(file, "# Duration: %s\n", duration)
	fmt.Fprintf(file, "# Bits: %d\n", result.BitLen())
	fmt.Fprintf(file, "# Digits: %d\n", len(resultStr))
	fmt.Fprintf(file, "\n")

	fmt.Fprintf(file, "%s(%s) =\n%s\n", op, strings.Join(operands, ", "), resultStr)

	return nil
}

// FormatQuietResult formats a result for quiet mode output.
// Returns a single-line result suitable for scripting.
func FormatQuietResult(result bigint.Int, base int) string {
	s, err := result.Text(base)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return s
}

// DisplayQuietResult outputs a result in quiet mode (minimal output).
func DisplayQuietResult(out io.Writer, result bigint.Int, base int) {
	fmt.Fprintln(out, FormatQuietResult(result, base))
}

// DisplayResultWithConfig displays a result with the given output configuration.
// This is a unified function that handles all output modes.
//
// Returns:
//   - error: An error if file output fails.
func DisplayResultWithConfig(out io.Writer, result bigint.Int, op string, operands []string, base int, duration time.Duration, config OutputConfig) error {
	if config.Quiet {
		DisplayQuietResult(out, result, base)
	} else {
		DisplayResult(result, op, operands, base, duration, config.Verbose, true, config.ShowValue, out)
	}

	if config.OutputFile != "" {
		if err := WriteResultToFile(result, op, operands, base, duration, config); err != nil {
			return err
		}
		if !config.Quiet {
			fmt.Fprintf(out, "\n%s✓ Result saved to: %s%s%s\n",
				ui.ColorGreen(), ui.ColorCyan(), config.OutputFile, ui.ColorReset())
		}
	}

	return nil
}
