package tone

import (
	"errors"
	"fmt"

	"github.com/gordonklaus/portaudio"
)

// Audio path failures, classified for callers. Each episode reports at
// most one of these; none is fatal to the process.
var (
	// ErrNoDevice means the host has no usable default output device.
	ErrNoDevice = errors.New("no audio output device available")
	// ErrFormatUnsupported means the device accepts none of the
	// supported sample formats.
	ErrFormatUnsupported = errors.New("unsupported sample format")
	// ErrStreamOpen means the output stream could not be opened or
	// started, for example because the device is busy.
	ErrStreamOpen = errors.New("failed to open audio stream")
)

// StreamConfig is the negotiated output stream configuration, derived
// once per episode and constant for the stream's lifetime.
type StreamConfig struct {
	SampleRate float64
	Channels   int
	Format     SampleFormat
}

// frameSource yields one normalized sample per output frame. The
// stream callback is its only caller.
type frameSource interface {
	NextFrame() float32
}

// negotiate asks PortAudio for the default output device and derives a
// stream configuration from the device defaults.
func negotiate() (*portaudio.DeviceInfo, StreamConfig, error) {
	dev, err := portaudio.DefaultOutputDevice()
	if err != nil {
		return nil, StreamConfig{}, fmt.Errorf("%w: %v", ErrNoDevice, err)
	}
	if dev == nil || dev.MaxOutputChannels < 1 {
		return nil, StreamConfig{}, ErrNoDevice
	}

	channels := dev.MaxOutputChannels
	if channels > 2 {
		channels = 2
	}

	cfg := StreamConfig{
		SampleRate: dev.DefaultSampleRate,
		Channels:   channels,
	}

	format, ok := chooseFormat(func(f SampleFormat) bool {
		return portaudio.IsFormatSupported(outputParameters(dev, cfg), probeArg(f)) == nil
	})
	if !ok {
		return nil, StreamConfig{}, fmt.Errorf("%w: device %q", ErrFormatUnsupported, dev.Name)
	}
	cfg.Format = format

	return dev, cfg, nil
}

// chooseFormat returns the first format in preference order that the
// probe reports as supported.
func chooseFormat(supported func(SampleFormat) bool) (SampleFormat, bool) {
	for _, f := range sampleFormats {
		if supported(f) {
			return f, true
		}
	}
	return 0, false
}

// outputParameters builds output-only stream parameters from the
// device defaults.
func outputParameters(dev *portaudio.DeviceInfo, cfg StreamConfig) portaudio.StreamParameters {
	return portaudio.StreamParameters{
		Output: portaudio.StreamDeviceParameters{
			Device:   dev,
			Channels: cfg.Channels,
			Latency:  dev.DefaultLowOutputLatency,
		},
		SampleRate:      cfg.SampleRate,
		FramesPerBuffer: portaudio.FramesPerBufferUnspecified,
	}
}

// probeArg returns a callback prototype of the matching element type,
// used only to tell PortAudio which sample format to check.
func probeArg(f SampleFormat) interface{} {
	switch f {
	case Int16:
		return func(out []int16) {}
	case UInt16:
		return func(out []uint16) {}
	default:
		return func(out []float32) {}
	}
}

// openStream opens a callback-driven output stream fed from src. The
// callback runs on PortAudio's real-time thread and must not allocate,
// lock, or block; each fill writes one sample per frame, broadcast
// across all channels.
func openStream(dev *portaudio.DeviceInfo, cfg StreamConfig, src frameSource) (*portaudio.Stream, error) {
	p := outputParameters(dev, cfg)

	var stream *portaudio.Stream
	var err error
	switch cfg.Format {
	case Int16:
		stream, err = portaudio.OpenStream(p, fillInt16(src, cfg.Channels))
	case UInt16:
		stream, err = portaudio.OpenStream(p, fillUint16(src, cfg.Channels))
	default:
		stream, err = portaudio.OpenStream(p, fillFloat32(src, cfg.Channels))
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStreamOpen, err)
	}
	return stream, nil
}

func fillFloat32(src frameSource, channels int) func(out []float32) {
	return func(out []float32) {
		for i := 0; i < len(out); i += channels {
			s := src.NextFrame()
			for c := 0; c < channels; c++ {
				out[i+c] = s
			}
		}
	}
}

func fillInt16(src frameSource, channels int) func(out []int16) {
	return func(out []int16) {
		for i := 0; i < len(out); i += channels {
			s := toInt16(src.NextFrame())
			for c := 0; c < channels; c++ {
				out[i+c] = s
			}
		}
	}
}

func fillUint16(src frameSource, channels int) func(out []uint16) {
	return func(out []uint16) {
		for i := 0; i < len(out); i += channels {
			s := toUint16(src.NextFrame())
			for c := 0; c < channels; c++ {
				out[i+c] = s
			}
		}
	}
}
