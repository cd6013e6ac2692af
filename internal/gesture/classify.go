// Package gesture maps finger state vectors to discrete gesture labels.
package gesture

import (
	"fmt"

	"github.com/ayusman/mudra/internal/fingers"
)

// Label names a recognized gesture.
type Label string

// Named gestures, in match-priority order.
const (
	Fist        Label = "Fist"
	OpenPalm    Label = "Open Palm"
	PeaceSign   Label = "Peace Sign"
	Pointing    Label = "Pointing"
	RockOn      Label = "Rock On"
	FourFingers Label = "Four Fingers"
)

// CountLabel is the generic fallback for vectors that match no named
// pattern; it carries the raw extended-finger count.
func CountLabel(n int) Label {
	return Label(fmt.Sprintf("%d Fingers", n))
}

// pattern pairs a finger state vector with its gesture label.
type pattern struct {
	state fingers.State
	label Label
}

// Named patterns are checked in this order; first match wins. Listing
// them as full vectors keeps every check mutually exclusive.
var patterns = []pattern{
	{fingers.State{false, false, false, false, false}, Fist},
	{fingers.State{true, true, true, true, true}, OpenPalm},
	{fingers.State{false, true, true, false, false}, PeaceSign},
	{fingers.State{false, true, false, false, false}, Pointing},
	{fingers.State{true, true, false, false, true}, RockOn},
	{fingers.State{false, true, true, true, true}, FourFingers},
}

// Classify returns the gesture label for a finger state vector.
// It is a pure total function over all 32 possible vectors: a vector
// matching none of the named patterns classifies as its count.
func Classify(s fingers.State) Label {
	for _, p := range patterns {
		if s == p.state {
			return p.label
		}
	}
	return CountLabel(s.Count())
}
