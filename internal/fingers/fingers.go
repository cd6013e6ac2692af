// Package fingers classifies hand landmarks into per-finger extension
// states and aggregates per-hand finger counts for a frame.
package fingers

import "github.com/ayusman/mudra/internal/detector"

// Finger indices into a State vector.
const (
	Thumb = iota
	Index
	Middle
	Ring
	Pinky
	NumFingers
)

// ExtendMargin is how far (in normalized image coordinates) a fingertip
// must rise above its PIP joint to count as extended. It suppresses
// jitter at near-straight poses.
const ExtendMargin = 0.04

// State is the extended/flexed vector for one hand, ordered thumb,
// index, middle, ring, pinky. True means extended.
type State [NumFingers]bool

// Count returns the number of extended fingers.
func (s State) Count() int {
	n := 0
	for _, up := range s {
		if up {
			n++
		}
	}
	return n
}

// tipPIP maps each non-thumb finger to its tip and PIP landmark indices.
var tipPIP = [...][2]int{
	Index:  {detector.IndexTip, detector.IndexPIP},
	Middle: {detector.MiddleTip, detector.MiddlePIP},
	Ring:   {detector.RingTip, detector.RingPIP},
	Pinky:  {detector.PinkyTip, detector.PinkyPIP},
}

// Classify converts one hand's landmarks into a State vector.
//
// A non-thumb finger is extended when its tip sits above its PIP joint
// by at least ExtendMargin (image y grows downward, so above means a
// smaller y). The thumb moves laterally rather than vertically, so it
// is extended when its tip is farther from the palm centerline than
// the thumb MCP, with the comparison direction mirrored for left
// hands. Degenerate geometry still classifies; there is no unknown
// state.
func Classify(hand *detector.HandLandmarks) State {
	var s State
	if hand == nil {
		return s
	}

	tip := hand.Points[detector.ThumbTip]
	mcp := hand.Points[detector.ThumbMCP]
	if hand.IsRight() {
		s[Thumb] = tip.X > mcp.X
	} else {
		s[Thumb] = tip.X < mcp.X
	}

	for f := Index; f <= Pinky; f++ {
		t := hand.Points[tipPIP[f][0]]
		p := hand.Points[tipPIP[f][1]]
		s[f] = t.Y < p.Y-ExtendMargin
	}

	return s
}

// Aggregate combines per-hand states into the frame's finger count:
// the most fingers shown by any single hand, not a two-hand total.
// ok is false when no hands were detected, in which case the count is
// undefined and the caller keeps its previous displayed value.
func Aggregate(states []State) (count int, ok bool) {
	if len(states) == 0 {
		return 0, false
	}
	for _, s := range states {
		if c := s.Count(); c > count {
			count = c
		}
	}
	return count, true
}
