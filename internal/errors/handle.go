package apperrors

import (
	"errors"
	"fmt"
	"io"
	"time"
)

// ColorProvider supplies ANSI color codes for HandleCalculationError's
// output, decoupling this package from any specific terminal UI library.
type ColorProvider interface {
	Red() string
	Yellow() string
	Reset() string
}

// HandleCalculationError classifies err against the error types defined in
// this package, writes a colorized diagnostic to out, and returns the exit
// code matching the failure.
func HandleCalculationError(err error, duration time.Duration, out io.Writer, colors ColorProvider) int {
	if err == nil {
		return ExitSuccess
	}

	var cfgErr ConfigError
	var valErr ValidationError
	var memErr MemoryError
	var timeoutErr TimeoutError

	switch {
	case errors.As(err, &cfgErr):
		fmt.Fprintf(out, "%sConfiguration error:%s %s\n", colors.Red(), colors.Reset(), err)
		return ExitErrorConfig
	case errors.As(err, &valErr):
		fmt.Fprintf(out, "%sValidation error:%s %s\n", colors.Red(), colors.Reset(), err)
		return ExitErrorConfig
	case errors.As(err, &memErr):
		fmt.Fprintf(out, "%sMemory error:%s %s\n", colors.Red(), colors.Reset(), err)
		return ExitErrorGeneric
	case errors.As(err, &timeoutErr), IsContextError(err):
		fmt.Fprintf(out, "%sTimed out%s after %s: %s\n", colors.Yellow(), colors.Reset(), duration, err)
		return ExitErrorTimeout
	default:
		fmt.Fprintf(out, "%sError:%s %s\n", colors.Red(), colors.Reset(), err)
		return ExitErrorGeneric
	}
}
