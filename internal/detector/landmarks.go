// Package detector provides hand landmark detection for finger counting.
package detector

// Hand landmark indices following MediaPipe convention.
// See: https://developers.google.com/mediapipe/solutions/vision/hand_landmarker
const (
	Wrist        = 0
	ThumbCMC     = 1
	ThumbMCP     = 2
	ThumbIP      = 3
	ThumbTip     = 4
	IndexMCP     = 5
	IndexPIP     = 6
	IndexDIP     = 7
	IndexTip     = 8
	MiddleMCP    = 9
	MiddlePIP    = 10
	MiddleDIP    = 11
	MiddleTip    = 12
	RingMCP      = 13
	RingPIP      = 14
	RingDIP      = 15
	RingTip      = 16
	PinkyMCP     = 17
	PinkyPIP     = 18
	PinkyDIP     = 19
	PinkyTip     = 20
	NumLandmarks = 21
)

// Handedness labels a detected hand as left or right.
type Handedness string

const (
	Left  Handedness = "Left"
	Right Handedness = "Right"
)

// Point is a single landmark in normalized image coordinates.
// X and Y are in [0,1] with the origin at the top-left corner, so Y
// increases downward. Z is the model's relative depth estimate and is
// not used by the finger classification rules.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// HandLandmarks is one detected hand: the 21 keypoints plus the
// handedness label and detection confidence. Landmarks are produced
// fresh each frame and carry no identity across frames.
type HandLandmarks struct {
	Points     [NumLandmarks]Point `json:"points"`
	Handedness Handedness          `json:"handedness"`
	Score      float64             `json:"score"`
}

// IsRight reports whether the hand was labeled as a right hand.
// Any label other than "Left" counts as right so that a missing or
// unexpected handedness still yields a deterministic classification.
func (h *HandLandmarks) IsRight() bool {
	return h.Handedness != Left
}
