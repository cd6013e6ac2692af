// Package speech provides text-to-speech output for announcements.
package speech

import "errors"

// ErrNoSynthesizer is returned when no supported speech binary is
// installed on the host.
var ErrNoSynthesizer = errors.New("no speech synthesizer found")

// Engine defines the interface for speech synthesis implementations.
type Engine interface {
	// Speak renders the text as audio and blocks until playback ends.
	Speak(text string) error

	// Close releases any resources held by the engine.
	Close() error
}

// Config holds configuration options for speech output.
type Config struct {
	// Rate is the speech rate in words per minute (default: 175).
	Rate int

	// Volume is the playback volume from 0.0 to 1.0 (default: 0.9).
	Volume float64

	// Voice selects a synthesizer voice; empty uses the platform default.
	Voice string
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() Config {
	return Config{
		Rate:   175,
		Volume: 0.9,
	}
}

// NopEngine is an Engine that discards all requests. It stands in when
// speech is muted or no synthesizer is available, so the visual
// pipeline never depends on audio working.
type NopEngine struct{}

// Speak discards the text.
func (NopEngine) Speak(string) error { return nil }

// Close is a no-op.
func (NopEngine) Close() error { return nil }
