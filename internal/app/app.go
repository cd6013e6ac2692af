// Package app wires the capture, detection, classification, speech,
// and overlay components into the per-frame application loop.
package app

import (
	"errors"
	"log/slog"
	"time"

	"github.com/ayusman/mudra/internal/announce"
	"github.com/ayusman/mudra/internal/capture"
	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/speech"
	"github.com/ayusman/mudra/internal/stats"
)

// Config holds configuration options for the application.
type Config struct {
	Camera   capture.Config
	Detector detector.Config
	Speech   speech.Config

	// Mute disables speech output entirely.
	Mute bool

	// Cooldown overrides the announcement cooldown; zero keeps the
	// 1.5 second default.
	Cooldown time.Duration
}

// App runs the finger counting pipeline.
type App struct {
	config    Config
	camera    capture.Camera
	detector  detector.Detector
	announcer *announce.Announcer
	debouncer *announce.Debouncer
	tracker   *stats.Tracker

	// displayed is the last defined aggregate count. It is retained
	// across zero-hand frames so the overlay never flickers to blank.
	displayed    int
	hasDisplayed bool
}

// New creates an App from the configuration. MediaPipe detection is
// preferred; when its service script is missing the app falls back to
// the mock detector so the UI still comes up. Speech falls back to a
// silent engine when no synthesizer is installed: counting and display
// never depend on audio.
func New(config Config) *App {
	a := &App{
		config:    config,
		camera:    capture.NewCamera(config.Camera),
		debouncer: announce.NewDebouncer(config.Cooldown),
		tracker:   stats.NewTracker(),
	}

	if mp, err := detector.NewMediaPipeDetector(config.Detector); err == nil {
		a.detector = mp
		slog.Info("using MediaPipe hand detection")
	} else {
		slog.Warn("MediaPipe not available, using mock detector", "error", err)
		a.detector = detector.NewMockDetector()
	}

	a.announcer = announce.NewAnnouncer(newEngine(config))

	return a
}

func newEngine(config Config) speech.Engine {
	if config.Mute {
		return speech.NopEngine{}
	}
	engine, err := speech.NewExecEngine(config.Speech)
	if err != nil {
		if errors.Is(err, speech.ErrNoSynthesizer) {
			slog.Warn("no speech synthesizer found, announcements disabled")
		} else {
			slog.Warn("speech engine unavailable", "error", err)
		}
		return speech.NopEngine{}
	}
	slog.Info("speech engine ready", "binary", engine.Binary())
	return engine
}

// SetCamera replaces the camera implementation. Used by tests.
func (a *App) SetCamera(c capture.Camera) {
	a.camera = c
}

// SetDetector replaces the hand detector implementation. Used by tests.
func (a *App) SetDetector(d detector.Detector) {
	a.detector = d
}

// Tracker returns the session statistics tracker.
func (a *App) Tracker() *stats.Tracker {
	return a.tracker
}
