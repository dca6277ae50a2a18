// Package tui implements the interactive dashboard launched by --tui: a
// single-line operation prompt, a scrolling history of recent results, and
// a sparkline of how long each operation took.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/atmofx/bigint/internal/config"
	"github.com/atmofx/bigint/internal/format"
	"github.com/atmofx/bigint/internal/ops"
	"github.com/atmofx/bigint/internal/ui"
)

const historyLimit = 12

// historyEntry is one completed (or failed) operation, rendered as a line
// in the dashboard's scrolling log.
type historyEntry struct {
	line string
	err  bool
}

// resultMsg carries the outcome of a background ops.Run call back into the
// bubbletea update loop.
type resultMsg struct {
	op       string
	operands []string
	text     string
	duration time.Duration
	err      error
}

// model is the bubbletea Model driving the dashboard.
type model struct {
	cfg      config.AppConfig
	input    textinput.Model
	header   HeaderModel
	history  []historyEntry
	durStats *RingBuffer
	width    int
	height   int
	quitting bool
}

func newModel(cfg config.AppConfig, version string) model {
	ti := textinput.New()
	ti.Placeholder = "add 34 21"
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 60

	return model{
		cfg:      cfg,
		input:    ti,
		header:   NewHeaderModel(version),
		durStats: NewRingBuffer(64),
	}
}

// Init satisfies tea.Model.
func (m model) Init() tea.Cmd {
	return textinput.Blink
}

// Update satisfies tea.Model.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.header.SetWidth(msg.Width)
		m.input.Width = msg.Width - 4
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			line := strings.TrimSpace(m.input.Value())
			m.input.SetValue("")
			if line == "" {
				return m, nil
			}
			if line == "quit" || line == "exit" {
				m.quitting = true
				return m, tea.Quit
			}
			return m, runOperation(line, m.cfg)
		}

	case resultMsg:
		m.recordResult(msg)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// recordResult appends msg to the history log and duration ring buffer.
func (m *model) recordResult(msg resultMsg) {
	if msg.err != nil {
		line := fmt.Sprintf("%s %s(%s) -> %s", logTimeStyle.Render(time.Now().Format("15:04:05")),
			logAlgoStyle.Render(msg.op), strings.Join(msg.operands, ", "), logErrorStyle.Render(msg.err.Error()))
		m.history = append(m.history, historyEntry{line: line, err: true})
	} else {
		line := fmt.Sprintf("%s %s(%s) = %s  %s", logTimeStyle.Render(time.Now().Format("15:04:05")),
			logAlgoStyle.Render(msg.op), strings.Join(msg.operands, ", "),
			logSuccessStyle.Render(truncateForLog(msg.text)),
			logProgressStyle.Render(format.FormatExecutionDuration(msg.duration)))
		m.history = append(m.history, historyEntry{line: line})
		m.durStats.Push(float64(msg.duration.Microseconds()))
	}

	if len(m.history) > historyLimit {
		m.history = m.history[len(m.history)-historyLimit:]
	}
}

// normalizeToPercent scales values to the 0..100 range RenderSparkline
// expects, using the maximum sample as the scale's ceiling.
func normalizeToPercent(values []float64) []float64 {
	max := 0.0
	for _, v := range values {
		if v > max {
			max = v
		}
	}
	if max == 0 {
		return values
	}
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = v / max * 100.0
	}
	return out
}

func truncateForLog(s string) string {
	const maxLen = 40
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen/2] + "..." + s[len(s)-maxLen/2:]
}

// View satisfies tea.Model.
func (m model) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}

	var b strings.Builder
	b.WriteString(m.header.View())
	b.WriteString("\n\n")

	for _, h := range m.history {
		b.WriteString(h.line)
		b.WriteString("\n")
	}
	if len(m.history) == 0 {
		b.WriteString(metricLabelStyle.Render("Type an operation and press Enter, e.g. \"factorial 20\".\n"))
	}

	b.WriteString("\n")
	if m.durStats.Len() > 0 {
		b.WriteString(metricLabelStyle.Render("Recent durations (µs): "))
		b.WriteString(cpuSparklineStyle.Render(RenderSparkline(normalizeToPercent(m.durStats.Slice()))))
		b.WriteString("\n\n")
	}

	b.WriteString("> ")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(footerDescStyle.Render("enter: run   esc/ctrl+c: quit"))

	return lipgloss.NewStyle().Padding(0, 1).Render(b.String())
}

// runOperation runs a single op command line ("op arg1 arg2 ...") in the
// background and reports the outcome as a resultMsg.
func runOperation(line string, cfg config.AppConfig) tea.Cmd {
	return func() tea.Msg {
		parts := strings.Fields(line)
		op, operands := parts[0], parts[1:]

		start := time.Now()
		value, err := ops.Run(op, operands, cfg.Base, cfg.MaxLimbs)
		duration := time.Since(start)
		if err != nil {
			return resultMsg{op: op, operands: operands, duration: duration, err: err}
		}

		text, err := value.Text(cfg.Base)
		if err != nil {
			return resultMsg{op: op, operands: operands, duration: duration, err: err}
		}
		return resultMsg{op: op, operands: operands, text: text, duration: duration}
	}
}

// Run launches the interactive dashboard and blocks until the user quits or
// ctx is canceled. It returns the process exit code.
func Run(ctx context.Context, cfg config.AppConfig, version string) int {
	initTUIStyles()
	ui.InitTheme(cfg.NoColor)

	p := tea.NewProgram(newModel(cfg, version), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return 1
	}
	return 0
}
