// Progress tracking with ETA projection, used by the CLI and TUI front
// ends to report how far a long-running bigint operation has advanced.

package format

import (
	"fmt"
	"strings"
	"time"
)

// ProgressState tracks the normalized progress (0.0-1.0) of a fixed number
// of concurrently running steps and computes their average.
type ProgressState struct {
	progresses     []float64
	numCalculators int
}

// NewProgressState creates a ProgressState tracking numCalculators steps.
func NewProgressState(numCalculators int) *ProgressState {
	return &ProgressState{
		progresses:     make([]float64, numCalculators),
		numCalculators: numCalculators,
	}
}

// Update records the progress value for a given step index.
func (ps *ProgressState) Update(index int, value float64) {
	if index >= 0 && index < len(ps.progresses) {
		ps.progresses[index] = value
	}
}

// CalculateAverage returns the mean progress across all tracked steps.
func (ps *ProgressState) CalculateAverage() float64 {
	if ps.numCalculators == 0 {
		return 0.0
	}
	var total float64
	for _, p := range ps.progresses {
		total += p
	}
	return total / float64(ps.numCalculators)
}

// ProgressBar renders progress (clamped to [0,1]) as a block-character bar
// of the given character length.
func ProgressBar(progress float64, length int) string {
	if progress > 1.0 {
		progress = 1.0
	}
	if progress < 0.0 {
		progress = 0.0
	}
	count := int(progress * float64(length))
	var b strings.Builder
	b.Grow(length)
	for i := 0; i < length; i++ {
		if i < count {
			b.WriteRune('█')
		} else {
			b.WriteRune('░')
		}
	}
	return b.String()
}

// ProgressWithETA augments ProgressState with a throughput estimate so
// callers can project a remaining duration.
type ProgressWithETA struct {
	*ProgressState
	numCalculators int
	startTime      time.Time
	lastUpdate     time.Time
	progressRate   float64 // fraction of total progress gained per second
}

// NewProgressWithETA creates a ProgressWithETA tracking numCalculators steps.
func NewProgressWithETA(numCalculators int) *ProgressWithETA {
	now := time.Now()
	return &ProgressWithETA{
		ProgressState:  NewProgressState(numCalculators),
		numCalculators: numCalculators,
		startTime:      now,
		lastUpdate:     now,
	}
}

// UpdateWithETA records progress for index and returns the new average
// progress along with the projected time remaining.
func (p *ProgressWithETA) UpdateWithETA(index int, value float64) (float64, time.Duration) {
	p.Update(index, value)
	avg := p.CalculateAverage()
	now := time.Now()
	if elapsed := now.Sub(p.startTime).Seconds(); elapsed > 0 {
		p.progressRate = avg / elapsed
	}
	p.lastUpdate = now
	return avg, p.GetETA()
}

// maxETA caps projected completion times so a near-zero progress rate
// cannot produce an absurd duration.
const maxETA = 24 * time.Hour

// GetETA projects the remaining duration from the current progress rate.
// It returns 0 while there is not yet enough data to estimate a rate.
func (p *ProgressWithETA) GetETA() time.Duration {
	if p.progressRate <= 0 {
		return 0
	}
	remaining := 1.0 - p.CalculateAverage()
	if remaining <= 0 {
		return 0
	}
	eta := time.Duration(remaining / p.progressRate * float64(time.Second))
	if eta > maxETA {
		return maxETA
	}
	return eta
}

// FormatETA renders an ETA duration as a short human string, rounding to
// the coarsest two units (hours+minutes, or minutes+seconds).
func FormatETA(eta time.Duration) string {
	if eta <= 0 {
		return "calculating..."
	}
	if eta < time.Second {
		return "< 1s"
	}
	h := eta / time.Hour
	m := (eta % time.Hour) / time.Minute
	s := (eta % time.Minute) / time.Second
	switch {
	case h > 0 && m > 0:
		return fmt.Sprintf("%dh%dm", h, m)
	case h > 0:
		return fmt.Sprintf("%dh", h)
	case m > 0 && s > 0:
		return fmt.Sprintf("%dm%ds", m, s)
	case m > 0:
		return fmt.Sprintf("%dm", m)
	default:
		return fmt.Sprintf("%ds", s)
	}
}

// FormatProgressBarWithETA renders a combined progress bar, percentage,
// and ETA string for CLI and TUI display.
func FormatProgressBarWithETA(progress float64, eta time.Duration, width int) string {
	pct := progress * 100
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	return fmt.Sprintf("[%s] %.1f%% ETA: %s", ProgressBar(progress, width), pct, FormatETA(eta))
}
