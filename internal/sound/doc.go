// Package sound plays a configured notification sound from a local
// file or a remote URL. It uses the beep library to decode and play
// WAV, OGG and MP3 audio.
package sound
