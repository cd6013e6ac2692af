package gesture

import (
	"fmt"
	"testing"

	"github.com/ayusman/mudra/internal/fingers"
)

func TestClassify_NamedPatterns(t *testing.T) {
	tests := []struct {
		state fingers.State
		want  Label
	}{
		{fingers.State{false, false, false, false, false}, Fist},
		{fingers.State{true, true, true, true, true}, OpenPalm},
		{fingers.State{false, true, true, false, false}, PeaceSign},
		{fingers.State{false, true, false, false, false}, Pointing},
		{fingers.State{true, true, false, false, true}, RockOn},
		{fingers.State{false, true, true, true, true}, FourFingers},
	}

	for _, tt := range tests {
		t.Run(string(tt.want), func(t *testing.T) {
			if got := Classify(tt.state); got != tt.want {
				t.Errorf("Classify(%v) = %q, want %q", tt.state, got, tt.want)
			}
		})
	}
}

func TestClassify_GenericFallback(t *testing.T) {
	tests := []struct {
		state fingers.State
		want  Label
	}{
		// Thumb only: one finger up but not Pointing.
		{fingers.State{true, false, false, false, false}, Label("1 Fingers")},
		// Thumb+index: two up but not Peace Sign.
		{fingers.State{true, true, false, false, false}, Label("2 Fingers")},
		// Ring+pinky+thumb.
		{fingers.State{true, false, false, true, true}, Label("3 Fingers")},
		// Four up including the thumb is not Four Fingers.
		{fingers.State{true, true, true, true, false}, Label("4 Fingers")},
	}

	for _, tt := range tests {
		if got := Classify(tt.state); got != tt.want {
			t.Errorf("Classify(%v) = %q, want %q", tt.state, got, tt.want)
		}
	}
}

func TestClassify_TotalOverAllVectors(t *testing.T) {
	named := map[Label]fingers.State{
		Fist:        {false, false, false, false, false},
		OpenPalm:    {true, true, true, true, true},
		PeaceSign:   {false, true, true, false, false},
		Pointing:    {false, true, false, false, false},
		RockOn:      {true, true, false, false, true},
		FourFingers: {false, true, true, true, true},
	}

	for bits := 0; bits < 32; bits++ {
		var s fingers.State
		for f := 0; f < fingers.NumFingers; f++ {
			s[f] = bits&(1<<f) != 0
		}

		got := Classify(s)
		if got == "" {
			t.Fatalf("Classify(%v) returned empty label", s)
		}

		want := CountLabel(s.Count())
		for label, pattern := range named {
			if s == pattern {
				want = label
				break
			}
		}
		if got != want {
			t.Errorf("Classify(%v) = %q, want %q", s, got, want)
		}
	}
}

func TestClassify_NamedBeatsGeneric(t *testing.T) {
	// The all-flexed vector is Fist, never the generic zero label.
	if got := Classify(fingers.State{}); got != Fist {
		t.Errorf("Classify(all flexed) = %q, want %q", got, Fist)
	}
}

func TestCountLabel(t *testing.T) {
	for n := 0; n <= 5; n++ {
		want := Label(fmt.Sprintf("%d Fingers", n))
		if got := CountLabel(n); got != want {
			t.Errorf("CountLabel(%d) = %q, want %q", n, got, want)
		}
	}
}
