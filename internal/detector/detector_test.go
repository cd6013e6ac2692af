package detector

import (
	"errors"
	"testing"
)

func TestPoseLandmarks_Handedness(t *testing.T) {
	right := PoseLandmarks(Right, true, true, true, true, true)
	if !right.IsRight() {
		t.Error("right pose IsRight() = false")
	}

	left := PoseLandmarks(Left, true, true, true, true, true)
	if left.IsRight() {
		t.Error("left pose IsRight() = true")
	}

	// Unknown labels resolve deterministically rather than erroring.
	var unknown HandLandmarks
	unknown.Handedness = "?"
	if !unknown.IsRight() {
		t.Error("unknown handedness should default to right")
	}
}

func TestPoseLandmarks_NormalizedCoordinates(t *testing.T) {
	for _, handedness := range []Handedness{Left, Right} {
		hand := PoseLandmarks(handedness, true, false, true, false, true)
		for i, p := range hand.Points {
			if p.X < 0 || p.X > 1 || p.Y < 0 || p.Y > 1 {
				t.Errorf("%s landmark %d = (%f, %f), outside [0,1]", handedness, i, p.X, p.Y)
			}
		}
	}
}

func TestMockDetector_Sequence(t *testing.T) {
	m := NewMockDetector()
	m.SetSequence([][]HandLandmarks{
		{FistLandmarks()},
		nil,
		{OpenPalmLandmarks(), FistLandmarks()},
	})

	counts := []int{1, 0, 2, 2, 2}
	for i, want := range counts {
		hands, err := m.Detect(nil)
		if err != nil {
			t.Fatalf("Detect() call %d error = %v", i, err)
		}
		if len(hands) != want {
			t.Errorf("Detect() call %d returned %d hands, want %d", i, len(hands), want)
		}
	}

	if m.Calls() != len(counts) {
		t.Errorf("Calls() = %d, want %d", m.Calls(), len(counts))
	}
}

func TestMockDetector_Error(t *testing.T) {
	m := NewMockDetector()
	wantErr := errors.New("no camera for you")
	m.SetError(wantErr)

	if _, err := m.Detect(nil); !errors.Is(err, wantErr) {
		t.Errorf("Detect() error = %v, want %v", err, wantErr)
	}
}

func TestJSONHand_Conversion(t *testing.T) {
	t.Run("full hand", func(t *testing.T) {
		h := jsonHand{Handedness: "Left", Score: 0.83}
		for i := 0; i < NumLandmarks; i++ {
			h.Points = append(h.Points, Point{X: float64(i), Y: float64(i) * 2, Z: -0.1})
		}

		lm := h.toHandLandmarks()
		if lm.Handedness != Left {
			t.Errorf("Handedness = %q, want %q", lm.Handedness, Left)
		}
		if lm.Score != 0.83 {
			t.Errorf("Score = %f, want 0.83", lm.Score)
		}
		if lm.Points[PinkyTip].X != float64(PinkyTip) {
			t.Errorf("PinkyTip.X = %f, want %d", lm.Points[PinkyTip].X, PinkyTip)
		}
	})

	t.Run("truncated points", func(t *testing.T) {
		h := jsonHand{
			Handedness: "Right",
			Points:     []Point{{X: 0.5, Y: 0.5}},
		}

		lm := h.toHandLandmarks()
		if lm.Points[Wrist].X != 0.5 {
			t.Errorf("Wrist.X = %f, want 0.5", lm.Points[Wrist].X)
		}
		if lm.Points[ThumbTip] != (Point{}) {
			t.Errorf("missing landmark not zero-valued: %+v", lm.Points[ThumbTip])
		}
	})
}
