package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gocv.io/x/gocv"

	"github.com/ayusman/mudra/internal/announce"
	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/fingers"
	"github.com/ayusman/mudra/internal/gesture"
	"github.com/ayusman/mudra/internal/overlay"
)

// windowTitle is the display window name.
const windowTitle = "Mudra Finger Counter"

// quitKey terminates the main loop.
const quitKey = 'q'

// frameResult is the outcome of classifying one frame.
type frameResult struct {
	count     int
	hasCount  bool
	label     gesture.Label
	hasLabel  bool
	announced bool
	phrase    string
}

// Run executes the capture/classify/announce loop until the user
// presses 'q', the context is canceled, or the camera fails. Camera
// and frame-read failures are fatal; detection and speech failures
// are not. All resources are released on every exit path.
func (a *App) Run(ctx context.Context) error {
	// Resources are released on every exit path, early aborts included.
	defer a.camera.Close()
	defer a.detector.Close()
	defer a.announcer.Close()

	if err := a.camera.Open(); err != nil {
		return fmt.Errorf("open camera: %w", err)
	}

	window := gocv.NewWindow(windowTitle)
	defer window.Close()

	slog.Info("finger counter started",
		"session", a.tracker.SessionID(),
		"camera", a.config.Camera.DeviceID,
		"quit_key", string(quitKey))

	for {
		select {
		case <-ctx.Done():
			slog.Info("interrupted, shutting down")
			return nil
		default:
		}

		frame, err := a.camera.ReadFrame()
		if err != nil {
			return fmt.Errorf("read frame: %w", err)
		}

		// Mirror for a natural selfie view before detection, so the
		// drawn landmarks line up with what the user sees.
		mirrored := gocv.NewMat()
		gocv.Flip(*frame, &mirrored, 1)
		frame.Close()

		hands, err := a.detector.Detect(&mirrored)
		if err != nil {
			// Landmark hiccups are not camera failures; skip the frame.
			slog.Warn("hand detection failed", "error", err)
			hands = nil
		}

		result := a.observe(hands, time.Now())
		a.render(&mirrored, hands, result)

		window.IMShow(mirrored)
		key := window.WaitKey(1)
		mirrored.Close()

		if key == quitKey {
			slog.Info("quit requested",
				"session", a.tracker.SessionID(),
				"gestures", a.tracker.Total())
			return nil
		}
	}
}

// observe runs the decision layer for one frame: classify each hand,
// aggregate counts, update statistics, and consult the debouncer. A
// zero-hands frame retains the previous displayed count and never
// reaches the debouncer, so it neither advances nor resets the
// cooldown clock.
func (a *App) observe(hands []detector.HandLandmarks, now time.Time) frameResult {
	states := make([]fingers.State, len(hands))
	for i := range hands {
		states[i] = fingers.Classify(&hands[i])
	}

	count, ok := fingers.Aggregate(states)
	if !ok {
		return frameResult{count: a.displayed, hasCount: a.hasDisplayed}
	}

	a.displayed = count
	a.hasDisplayed = true

	// Gesture classification follows the first detected hand.
	label := gesture.Classify(states[0])
	a.tracker.Record(label)

	result := frameResult{
		count:    count,
		hasCount: true,
		label:    label,
		hasLabel: true,
	}

	if a.debouncer.Observe(count, now) {
		result.phrase = announce.Phrase(count)
		result.announced = a.announcer.Say(result.phrase)
	}

	return result
}

// render draws landmarks, the count, the gesture banner, and the
// statistics panel onto the frame.
func (a *App) render(frame *gocv.Mat, hands []detector.HandLandmarks, result frameResult) {
	for i := range hands {
		overlay.DrawLandmarks(frame, &hands[i])
	}

	if result.hasCount {
		overlay.DrawCount(frame, result.count)
	}
	if result.hasLabel {
		overlay.DrawGesture(frame, result.label)
	}

	overlay.DrawStats(frame, a.tracker.Snapshot(), result.count, result.hasCount)
}
