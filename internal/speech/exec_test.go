package speech

import (
	"reflect"
	"testing"
)

func TestBuildCommand_Espeak(t *testing.T) {
	config := Config{Rate: 150, Volume: 0.9, Voice: "en-us"}

	name, args := buildCommand("/usr/bin/espeak-ng", config, "hello")
	if name != "/usr/bin/espeak-ng" {
		t.Errorf("name = %q", name)
	}

	want := []string{"-s", "150", "-a", "180", "-v", "en-us", "hello"}
	if !reflect.DeepEqual(args, want) {
		t.Errorf("args = %v, want %v", args, want)
	}
}

func TestBuildCommand_EspeakDefaults(t *testing.T) {
	_, args := buildCommand("espeak", DefaultConfig(), "hi")

	want := []string{"-s", "175", "-a", "180", "hi"}
	if !reflect.DeepEqual(args, want) {
		t.Errorf("args = %v, want %v", args, want)
	}
}

func TestBuildCommand_Say(t *testing.T) {
	config := Config{Rate: 200, Volume: 0.5, Voice: "Samantha"}

	_, args := buildCommand("/usr/bin/say", config, "hello")

	want := []string{"-r", "200", "-v", "Samantha", "[[volm 0.50]] hello"}
	if !reflect.DeepEqual(args, want) {
		t.Errorf("args = %v, want %v", args, want)
	}
}

func TestBuildCommand_SayNoVolume(t *testing.T) {
	_, args := buildCommand("say", Config{Rate: 180}, "plain")

	want := []string{"-r", "180", "plain"}
	if !reflect.DeepEqual(args, want) {
		t.Errorf("args = %v, want %v", args, want)
	}
}

func TestCommandBase(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/usr/bin/say", "say"},
		{"espeak", "espeak"},
		{"/opt/homebrew/bin/espeak-ng", "espeak-ng"},
	}

	for _, tt := range tests {
		if got := commandBase(tt.path); got != tt.want {
			t.Errorf("commandBase(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestNopEngine(t *testing.T) {
	var e NopEngine
	if err := e.Speak("anything"); err != nil {
		t.Errorf("NopEngine.Speak() error = %v", err)
	}
	if err := e.Close(); err != nil {
		t.Errorf("NopEngine.Close() error = %v", err)
	}
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	if config.Rate != 175 {
		t.Errorf("Rate = %d, want 175", config.Rate)
	}
	if config.Volume != 0.9 {
		t.Errorf("Volume = %f, want 0.9", config.Volume)
	}
	if config.Voice != "" {
		t.Errorf("Voice = %q, want empty", config.Voice)
	}
}
