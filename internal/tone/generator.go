package tone

import "math"

// amplitude keeps the tone at 30% of full scale.
const amplitude = 0.3

// Generator produces a sine wave one sample at a time. The phase
// accumulator counts frames and wraps modulo the sample rate, so it
// never grows unbounded.
type Generator struct {
	frequency  float64
	sampleRate float64
	phase      float64
}

// NewGenerator returns a generator for the given frequency and sample rate.
func NewGenerator(frequency, sampleRate float64) *Generator {
	return &Generator{
		frequency:  frequency,
		sampleRate: sampleRate,
	}
}

// Next returns the next sample in [-0.3, 0.3] and advances the phase.
func (g *Generator) Next() float32 {
	v := math.Sin(g.phase * g.frequency * 2 * math.Pi / g.sampleRate)
	g.phase = math.Mod(g.phase+1, g.sampleRate)
	return float32(v) * amplitude
}

// Phase returns the current phase accumulator value.
func (g *Generator) Phase() float64 {
	return g.phase
}
