// Package overlay draws the finger count, gesture banner, and session
// statistics onto captured frames.
package overlay

import (
	"fmt"
	"image"
	"image/color"
	"strconv"
	"time"

	"gocv.io/x/gocv"

	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/gesture"
	"github.com/ayusman/mudra/internal/stats"
)

// panelAlpha is the opacity of the translucent black boxes behind text.
const panelAlpha = 0.7

var (
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	black = color.RGBA{A: 255}

	// countColors codes the big digit by value: dark gray for zero,
	// then yellow, green, orange, blue, magenta for one through five.
	countColors = [6]color.RGBA{
		{R: 50, G: 50, B: 50, A: 255},
		{R: 255, G: 255, B: 0, A: 255},
		{G: 255, A: 255},
		{R: 255, G: 165, A: 255},
		{B: 255, A: 255},
		{R: 255, B: 255, A: 255},
	}

	landmarkColor = color.RGBA{G: 255, B: 128, A: 255}
)

// DrawLandmarks marks each hand keypoint with a dot.
func DrawLandmarks(frame *gocv.Mat, hand *detector.HandLandmarks) {
	w := float64(frame.Cols())
	h := float64(frame.Rows())

	for _, p := range hand.Points {
		pt := image.Pt(int(p.X*w), int(p.Y*h))
		gocv.Circle(frame, pt, 4, landmarkColor, -1)
	}
}

// DrawCount draws the large color-coded finger count at the center top
// of the frame, with a drop shadow for visibility.
func DrawCount(frame *gocv.Mat, count int) {
	text := strconv.Itoa(count)
	font := gocv.FontHersheyTriplex
	scale := 5.0
	thickness := 8

	size := gocv.GetTextSize(text, font, scale, thickness)
	x := (frame.Cols() - size.X) / 2
	y := size.Y + 50

	gocv.PutTextWithParams(frame, text, image.Pt(x+3, y+3), font, scale, black, thickness, gocv.LineAA, false)

	idx := count
	if idx < 0 {
		idx = 0
	}
	if idx >= len(countColors) {
		idx = len(countColors) - 1
	}
	gocv.PutTextWithParams(frame, text, image.Pt(x, y), font, scale, countColors[idx], thickness, gocv.LineAA, false)
}

// DrawGesture draws the gesture name below the count over a
// translucent box.
func DrawGesture(frame *gocv.Mat, label gesture.Label) {
	text := string(label)
	font := gocv.FontHersheySimplex
	scale := 1.2
	thickness := 2

	size := gocv.GetTextSize(text, font, scale, thickness)
	x := (frame.Cols() - size.X) / 2
	y := 150

	box := image.Rect(x-10, y-size.Y-5, x+size.X+10, y+10)
	fillTranslucent(frame, box)

	gocv.PutTextWithParams(frame, text, image.Pt(x, y), font, scale, white, thickness, gocv.LineAA, false)
}

// DrawStats draws the statistics panel in the top-left corner. current
// is the displayed finger count; hasCurrent is false until the first
// hand has been seen.
func DrawStats(frame *gocv.Mat, snap stats.Snapshot, current int, hasCurrent bool) {
	fillTranslucent(frame, image.Rect(10, 10, 400, 200))

	currentStr := "N/A"
	if hasCurrent {
		currentStr = strconv.Itoa(current)
	}

	lines := []string{
		fmt.Sprintf("Runtime: %s", formatRuntime(snap.Elapsed)),
		fmt.Sprintf("Total Gestures: %d", snap.Total),
		fmt.Sprintf("Current: %s fingers", currentStr),
	}
	if snap.HasCommon {
		lines = append(lines, fmt.Sprintf("Most Common: %s (%dx)", snap.MostCommon, snap.CommonCount))
	}

	font := gocv.FontHersheySimplex
	for i, line := range lines {
		pt := image.Pt(20, 35+i*25)
		gocv.PutTextWithParams(frame, line, pt, font, 0.6, white, 1, gocv.LineAA, false)
	}
}

// fillTranslucent darkens the given region by alpha-blending a filled
// black rectangle over it.
func fillTranslucent(frame *gocv.Mat, box image.Rectangle) {
	overlay := frame.Clone()
	defer overlay.Close()

	gocv.Rectangle(&overlay, box, black, -1)
	gocv.AddWeighted(overlay, panelAlpha, *frame, 1-panelAlpha, 0, frame)
}

// formatRuntime renders a duration as hh:mm:ss.
func formatRuntime(d time.Duration) string {
	d = d.Truncate(time.Second)
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
