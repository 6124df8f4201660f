package tone

import "math"

// SampleFormat identifies the native sample representation of an
// output stream.
type SampleFormat int

const (
	// Float32 is 32-bit floating point PCM, silence at 0.0.
	Float32 SampleFormat = iota
	// Int16 is signed 16-bit PCM, silence at 0.
	Int16
	// UInt16 is unsigned 16-bit PCM, silence at the 32768 midpoint.
	UInt16
)

// sampleFormats is the negotiation preference order.
var sampleFormats = []SampleFormat{Float32, Int16, UInt16}

// String returns the format's conventional name.
func (f SampleFormat) String() string {
	switch f {
	case Float32:
		return "float32"
	case Int16:
		return "int16"
	case UInt16:
		return "uint16"
	default:
		return "unknown"
	}
}

// toInt16 converts a normalized sample to signed 16-bit PCM.
func toInt16(s float32) int16 {
	return int16(s * math.MaxInt16)
}

// toUint16 converts a normalized sample to unsigned 16-bit PCM,
// offset binary with the midpoint at 32768.
func toUint16(s float32) uint16 {
	return uint16(int32(s*math.MaxInt16) + 32768)
}
