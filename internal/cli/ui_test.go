package cli

import (
	"bytes"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/atmofx/bigint/bigint"
	"github.com/atmofx/bigint/internal/ui"
	"github.com/briandowns/spinner"
)

// MockSpinner for testing
type MockSpinner struct {
	started bool
	stopped bool
	suffix  string
}

func (m *MockSpinner) Start() {
	m.started = true
}

func (m *MockSpinner) Stop() {
	m.stopped = true
}

func (m *MockSpinner) UpdateSuffix(suffix string) {
	m.suffix = suffix
}

func TestDisplayResult(t *testing.T) {
	ui.InitTheme(false)

	big200, _ := bigint.Parse("1" + strings.Repeat("0", 200))

	tests := []struct {
		name      string
		result    bigint.Int
		op        string
		operands  []string
		duration  time.Duration
		verbose   bool
		details   bool
		showValue bool
		contains  []string
	}{
		{
			name:      "Details only",
			result:    bigint.FromInt64(12345),
			op:        "mul",
			operands:  []string{"111", "111"},
			duration:  time.Millisecond,
			details:   true,
			showValue: false,
			contains:  []string{"Result binary size:", "Detailed result analysis", "Calculation time", "Number of digits"},
		},
		{
			name:      "ShowValue output",
			result:    bigint.FromInt64(12345),
			op:        "add",
			operands:  []string{"12300", "45"},
			duration:  time.Millisecond,
			showValue: true,
			contains:  []string{"Calculated value", "add(", ") =", "12345"},
		},
		{
			name:      "Truncated output",
			result:    big200,
			op:        "pow",
			operands:  []string{"10", "200"},
			duration:  time.Millisecond,
			showValue: true,
			contains:  []string{"(truncated)", "Tip: use"},
		},
		{
			name:      "Verbose output",
			result:    big200,
			op:        "pow",
			operands:  []string{"10", "200"},
			duration:  time.Millisecond,
			verbose:   true,
			showValue: true,
			contains:  []string{"pow(", ") ="},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			DisplayResult(tt.result, tt.op, tt.operands, 10, tt.duration, tt.verbose, tt.details, tt.showValue, &buf)
			output := buf.String()
			for _, s := range tt.contains {
				if !strings.Contains(output, s) {
					t.Errorf("Expected output to contain %q, but got:\n%s", s, output)
				}
			}
		})
	}
}

func TestRealSpinner(t *testing.T) {
	t.Parallel()
	s := spinner.New(spinner.CharSets[11], 100*time.Millisecond)
	rs := &realSpinner{s}

	rs.Start()
	rs.UpdateSuffix(" test")
	rs.Stop()
}

func TestColors(t *testing.T) {
	ui.InitTheme(false)

	_ = ui.ColorReset()
	_ = ui.ColorRed()
	_ = ui.ColorGreen()
	_ = ui.ColorYellow()
	_ = ui.ColorBlue()
	_ = ui.ColorMagenta()
	_ = ui.ColorBold()
	_ = ui.ColorUnderline()
}

func TestDisplayProgress(t *testing.T) {
	originalNewSpinner := newSpinner
	defer func() { newSpinner = originalNewSpinner }()

	mockS := &MockSpinner{}
	newSpinner = func(options ...spinner.Option) Spinner {
		return mockS
	}

	var wg sync.WaitGroup
	wg.Add(1)

	progressChan := make(chan ProgressUpdate)
	out := io.Discard

	go func() {
		progressChan <- ProgressUpdate{CalculatorIndex: 0, Value: 0.5}
		time.Sleep(10 * time.Millisecond)
		close(progressChan)
	}()

	DisplayProgress(&wg, progressChan, 1, out)
	wg.Wait()

	if !mockS.started {
		t.Error("Spinner should have started")
	}
	if !mockS.stopped {
		t.Error("Spinner should have stopped")
	}
}

func TestDisplayProgress_ZeroCalculators(t *testing.T) {
	var wg sync.WaitGroup
	wg.Add(1)
	progressChan := make(chan ProgressUpdate)
	close(progressChan)

	DisplayProgress(&wg, progressChan, 0, io.Discard)
	wg.Wait()
}
