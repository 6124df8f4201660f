package tone

import (
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/gordonklaus/portaudio"
)

// drainSlack is added to every blocking wait so the device can drain
// its buffered frames before the stream is torn down.
const drainSlack = 50 * time.Millisecond

// ToneRequest describes one tone-playback episode.
type ToneRequest struct {
	// Frequency of the tone in Hz. Must be positive.
	Frequency float64
	// Duration of the audible tone.
	Duration time.Duration
}

// episode holds the playback state for a single stream: the generator,
// the frame budget, and the count of frames emitted so far. It is
// captured exclusively by the stream callback and never shared.
type episode struct {
	gen     *Generator
	budget  int
	emitted int
}

func newEpisode(req ToneRequest, sampleRate float64) *episode {
	return &episode{
		gen:    NewGenerator(req.Frequency, sampleRate),
		budget: frameBudget(sampleRate, req.Duration),
	}
}

// frameBudget is the number of audible frames for a duration at a
// sample rate.
func frameBudget(sampleRate float64, d time.Duration) int {
	n := int(math.Round(sampleRate * d.Seconds()))
	if n < 0 {
		return 0
	}
	return n
}

// NextFrame returns the next tone sample, or 0 once the budget is
// spent so the rest of the stream's life plays silence.
func (e *episode) NextFrame() float32 {
	if e.emitted >= e.budget {
		return 0
	}
	e.emitted++
	return e.gen.Next()
}

// Player performs tone-playback episodes on the default audio output
// device. Each episode acquires and releases the device; nothing is
// held between calls.
type Player struct {
	logger *slog.Logger
}

// NewPlayer creates a Player.
func NewPlayer(logger *slog.Logger) *Player {
	if logger == nil {
		logger = slog.Default()
	}
	return &Player{logger: logger}
}

// Play runs one episode: negotiate a stream configuration, stream the
// tone, wait for the device to drain, release everything. Returned
// errors wrap ErrNoDevice, ErrFormatUnsupported, or ErrStreamOpen.
func (p *Player) Play(req ToneRequest) error {
	if err := portaudio.Initialize(); err != nil {
		return fmt.Errorf("%w: %v", ErrNoDevice, err)
	}
	defer func() { _ = portaudio.Terminate() }()

	dev, cfg, err := negotiate()
	if err != nil {
		return err
	}
	p.logger.Debug("negotiated output stream",
		"device", dev.Name,
		"sample_rate", cfg.SampleRate,
		"channels", cfg.Channels,
		"format", cfg.Format)

	ep := newEpisode(req, cfg.SampleRate)
	stream, err := openStream(dev, cfg, ep)
	if err != nil {
		return err
	}
	defer func() { _ = stream.Close() }()

	if err := stream.Start(); err != nil {
		return fmt.Errorf("%w: %v", ErrStreamOpen, err)
	}

	// PortAudio offers no completion signal for callback streams, so a
	// fixed wait with slack stands in for one.
	time.Sleep(req.Duration + drainSlack)

	if err := stream.Stop(); err != nil {
		return fmt.Errorf("failed to stop stream: %w", err)
	}
	return nil
}
