package detector

import (
	"sync"

	"gocv.io/x/gocv"
)

// MockDetector is a test implementation of the Detector interface.
// It returns pre-configured hands, an error, or a per-call sequence.
type MockDetector struct {
	mu       sync.Mutex
	hands    []HandLandmarks
	sequence [][]HandLandmarks
	err      error
	calls    int
}

// NewMockDetector creates a new MockDetector instance.
func NewMockDetector() *MockDetector {
	return &MockDetector{}
}

// SetHands sets the hands that will be returned by every Detect call.
func (m *MockDetector) SetHands(hands []HandLandmarks) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hands = hands
	m.sequence = nil
}

// SetSequence sets per-call results. Each Detect call consumes one entry;
// once the sequence is exhausted the last entry repeats.
func (m *MockDetector) SetSequence(sequence [][]HandLandmarks) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sequence = sequence
	m.calls = 0
}

// SetError sets the error that will be returned by Detect.
func (m *MockDetector) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// Calls reports how many times Detect has been invoked.
func (m *MockDetector) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// Detect returns the pre-configured hands, sequence entry, or error.
func (m *MockDetector) Detect(frame *gocv.Mat) ([]HandLandmarks, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	if len(m.sequence) > 0 {
		i := m.calls - 1
		if i >= len(m.sequence) {
			i = len(m.sequence) - 1
		}
		return m.sequence[i], nil
	}
	return m.hands, nil
}

// Close is a no-op for the mock detector.
func (m *MockDetector) Close() error {
	return nil
}

// Pose geometry used by the fixtures below. Fingers point upward from a
// palm around y=0.7; an extended fingertip clears its PIP joint by far
// more than the classifier's jitter margin, a flexed fingertip curls
// below it.
const (
	poseWristY    = 0.85
	poseMCPY      = 0.68
	posePIPY      = 0.58
	poseTipUpY    = 0.35
	poseTipCurlY  = 0.66
	poseThumbMCPX = 0.57
	poseThumbOutX = 0.72
	poseThumbInX  = 0.48
)

// fingerBases is the x position of each non-thumb finger column for a
// right hand (index through pinky, palm facing the camera).
var fingerBases = [4]float64{0.56, 0.51, 0.46, 0.41}

// nonThumbJoints maps each non-thumb finger to its MCP/PIP/DIP/TIP indices.
var nonThumbJoints = [4][4]int{
	{IndexMCP, IndexPIP, IndexDIP, IndexTip},
	{MiddleMCP, MiddlePIP, MiddleDIP, MiddleTip},
	{RingMCP, RingPIP, RingDIP, RingTip},
	{PinkyMCP, PinkyPIP, PinkyDIP, PinkyTip},
}

// PoseLandmarks builds a synthetic hand with the requested fingers
// extended. Left hands are mirrored around the palm centerline so the
// thumb rule sees the correct lateral geometry.
func PoseLandmarks(handedness Handedness, thumb, index, middle, ring, pinky bool) HandLandmarks {
	hand := HandLandmarks{
		Handedness: handedness,
		Score:      0.95,
	}

	mirror := func(x float64) float64 {
		if handedness == Left {
			return 1.0 - x
		}
		return x
	}

	hand.Points[Wrist] = Point{X: mirror(0.5), Y: poseWristY}

	// Thumb sticks out sideways when extended, tucks across the palm
	// when flexed.
	thumbTipX := poseThumbInX
	if thumb {
		thumbTipX = poseThumbOutX
	}
	hand.Points[ThumbCMC] = Point{X: mirror(0.54), Y: 0.78}
	hand.Points[ThumbMCP] = Point{X: mirror(poseThumbMCPX), Y: 0.72}
	hand.Points[ThumbIP] = Point{X: mirror((poseThumbMCPX + thumbTipX) / 2), Y: 0.66}
	hand.Points[ThumbTip] = Point{X: mirror(thumbTipX), Y: 0.62}

	extended := [4]bool{index, middle, ring, pinky}
	for f, joints := range nonThumbJoints {
		x := mirror(fingerBases[f])
		tipY := poseTipCurlY
		dipY := posePIPY + 0.02
		if extended[f] {
			tipY = poseTipUpY
			dipY = (posePIPY + poseTipUpY) / 2
		}
		hand.Points[joints[0]] = Point{X: x, Y: poseMCPY}
		hand.Points[joints[1]] = Point{X: x, Y: posePIPY}
		hand.Points[joints[2]] = Point{X: x, Y: dipY}
		hand.Points[joints[3]] = Point{X: x, Y: tipY}
	}

	return hand
}

// FistLandmarks returns a right hand with every finger flexed.
func FistLandmarks() HandLandmarks {
	return PoseLandmarks(Right, false, false, false, false, false)
}

// OpenPalmLandmarks returns a right hand with every finger extended.
func OpenPalmLandmarks() HandLandmarks {
	return PoseLandmarks(Right, true, true, true, true, true)
}

// PeaceSignLandmarks returns a right hand with index and middle extended.
func PeaceSignLandmarks() HandLandmarks {
	return PoseLandmarks(Right, false, true, true, false, false)
}

// PointingLandmarks returns a right hand with only the index extended.
func PointingLandmarks() HandLandmarks {
	return PoseLandmarks(Right, false, true, false, false, false)
}
