package tone

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSampleFormat_String(t *testing.T) {
	assert.Equal(t, "float32", Float32.String())
	assert.Equal(t, "int16", Int16.String())
	assert.Equal(t, "uint16", UInt16.String())
	assert.Equal(t, "unknown", SampleFormat(99).String())
}

func TestToInt16(t *testing.T) {
	tests := []struct {
		name string
		in   float32
		want int16
	}{
		{"silence", 0, 0},
		{"full scale", 1, 32767},
		{"negative full scale", -1, -32767},
		{"attenuated peak", 0.3, 9830},
		{"attenuated trough", -0.3, -9830},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, toInt16(tt.in))
		})
	}
}

func TestToUint16(t *testing.T) {
	tests := []struct {
		name string
		in   float32
		want uint16
	}{
		{"silence is the midpoint", 0, 32768},
		{"full scale", 1, 65535},
		{"negative full scale", -1, 1},
		{"attenuated peak", 0.3, 42598},
		{"attenuated trough", -0.3, 22938},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, toUint16(tt.in))
		})
	}
}
