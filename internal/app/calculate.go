package app

import (
	"context"
	"io"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/atmofx/bigint/bigint"
	"github.com/atmofx/bigint/internal/cli"
	apperrors "github.com/atmofx/bigint/internal/errors"
	"github.com/atmofx/bigint/internal/ops"
)

// runCalculate executes the single operation named by a.Config.Op and
// reports the result, with a progress spinner while it runs and a timeout
// that races the computation.
func (a *Application) runCalculate(ctx context.Context, out io.Writer) int {
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	if !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, out)
		cli.PrintExecutionMode(a.Config.Op, out)
	}

	progressOut := out
	if a.Config.Quiet {
		progressOut = io.Discard
	}

	progressChan := make(chan cli.ProgressUpdate, 1)
	var wg sync.WaitGroup
	wg.Add(1)
	go cli.DisplayProgress(&wg, progressChan, 1, progressOut)

	type outcome struct {
		value    bigint.Int
		duration time.Duration
		err      error
	}
	resultChan := make(chan outcome, 1)

	go func() {
		start := time.Now()
		v, err := ops.Run(a.Config.Op, a.Config.Operands, a.Config.Base, a.Config.MaxLimbs)
		close(progressChan)
		resultChan <- outcome{value: v, duration: time.Since(start), err: err}
	}()

	select {
	case <-ctx.Done():
		wg.Wait()
		return cli.HandleError(apperrors.TimeoutError{Operation: a.Config.Op, Limit: a.Config.Timeout}, a.Config.Timeout, a.ErrWriter)
	case res := <-resultChan:
		wg.Wait()
		if res.err != nil {
			return cli.HandleError(res.err, res.duration, a.ErrWriter)
		}

		outputCfg := cli.OutputConfig{
			OutputFile: a.Config.OutputFile,
			Quiet:      a.Config.Quiet,
			Verbose:    a.Config.Verbose,
			ShowValue:  true,
		}

		if err := cli.DisplayResultWithConfig(out, res.value, a.Config.Op, a.Config.Operands, a.Config.Base, res.duration, outputCfg); err != nil {
			return apperrors.ExitErrorGeneric
		}
		return apperrors.ExitSuccess
	}
}
