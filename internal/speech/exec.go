package speech

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"time"
)

// utteranceTimeout bounds a single synthesizer invocation so a wedged
// binary cannot pin the speech worker forever.
const utteranceTimeout = 10 * time.Second

// synthesizers lists supported binaries in preference order.
var synthesizers = []string{"espeak-ng", "espeak", "say"}

// ExecEngine implements Engine by shelling out to a platform speech
// synthesizer (espeak-ng, espeak, or macOS say).
type ExecEngine struct {
	config Config
	binary string
}

// NewExecEngine creates an ExecEngine using the first supported
// synthesizer found on PATH. Returns ErrNoSynthesizer if none exists.
func NewExecEngine(config Config) (*ExecEngine, error) {
	for _, name := range synthesizers {
		if path, err := exec.LookPath(name); err == nil {
			return &ExecEngine{config: config, binary: path}, nil
		}
	}
	return nil, ErrNoSynthesizer
}

// Binary returns the resolved synthesizer path.
func (e *ExecEngine) Binary() string {
	return e.binary
}

// Speak runs the synthesizer and blocks until playback finishes.
func (e *ExecEngine) Speak(text string) error {
	ctx, cancel := context.WithTimeout(context.Background(), utteranceTimeout)
	defer cancel()

	name, args := buildCommand(e.binary, e.config, text)
	cmd := exec.CommandContext(ctx, name, args...)

	if err := cmd.Run(); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return fmt.Errorf("utterance timeout after %s", utteranceTimeout)
		}
		return fmt.Errorf("speak: %w", err)
	}
	return nil
}

// Close is a no-op; each utterance is an independent subprocess.
func (e *ExecEngine) Close() error { return nil }

// buildCommand translates the engine config into arguments for the
// given synthesizer binary.
//
// espeak/espeak-ng: -s is words per minute, -a is amplitude 0-200.
// say: -r is words per minute; volume has no flag, so it is embedded
// as a [[volm]] directive in the spoken text.
func buildCommand(binary string, config Config, text string) (string, []string) {
	var args []string
	switch base := commandBase(binary); base {
	case "say":
		if config.Rate > 0 {
			args = append(args, "-r", strconv.Itoa(config.Rate))
		}
		if config.Voice != "" {
			args = append(args, "-v", config.Voice)
		}
		if config.Volume > 0 {
			text = fmt.Sprintf("[[volm %.2f]] %s", config.Volume, text)
		}
		args = append(args, text)
	default:
		if config.Rate > 0 {
			args = append(args, "-s", strconv.Itoa(config.Rate))
		}
		if config.Volume > 0 {
			args = append(args, "-a", strconv.Itoa(int(config.Volume*200)))
		}
		if config.Voice != "" {
			args = append(args, "-v", config.Voice)
		}
		args = append(args, text)
	}
	return binary, args
}

func commandBase(binary string) string {
	for i := len(binary) - 1; i >= 0; i-- {
		if binary[i] == '/' {
			return binary[i+1:]
		}
	}
	return binary
}
