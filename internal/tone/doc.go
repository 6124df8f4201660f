// Package tone synthesizes sine-wave beeps and plays them through the
// default audio output device. Each playback episode negotiates its own
// stream configuration, feeds the device from a real-time callback, and
// releases the device once the tone has drained.
package tone
