package tone

import (
	"fmt"
	"log/slog"
	"time"
)

// RepeatPlan sequences one tone over a number of repetitions.
type RepeatPlan struct {
	Tone    ToneRequest
	Repeats int
	Delay   time.Duration
}

// TonePlayer runs a single playback episode.
type TonePlayer interface {
	Play(ToneRequest) error
}

// Runner executes a RepeatPlan. Episode failures are logged and
// answered with the terminal bell; they never stop the remaining
// repetitions.
type Runner struct {
	player   TonePlayer
	logger   *slog.Logger
	fallback func()
}

// NewRunner creates a Runner around player.
func NewRunner(player TonePlayer, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		player:   player,
		logger:   logger,
		fallback: ringBell,
	}
}

// Run plays the plan's tone Repeats times with Delay between episodes.
// A zero repeat count does nothing. Only the calling goroutine is
// suspended during the delays.
func (r *Runner) Run(plan RepeatPlan) {
	for i := 0; i < plan.Repeats; i++ {
		if i > 0 {
			time.Sleep(plan.Delay)
		}

		if err := r.player.Play(plan.Tone); err != nil {
			r.logger.Warn("tone playback failed", "attempt", i+1, "error", err)
			r.fallback()
			continue
		}
		r.logger.Debug("tone played",
			"frequency_hz", plan.Tone.Frequency,
			"duration_ms", plan.Tone.Duration.Milliseconds(),
			"attempt", i+1)
	}
}

// ringBell writes the ASCII bell so something audible still happens
// when the audio path is unavailable.
func ringBell() {
	fmt.Print("\a")
}
