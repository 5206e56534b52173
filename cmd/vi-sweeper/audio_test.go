package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/vi-sweeper/audio"
	"github.com/lixenwraith/vi-sweeper/core"
)

func TestStartAudioDisabledWarns(t *testing.T) {
	cfg := audio.DefaultAudioConfig()
	cfg.Enabled = false
	sounds := audio.NewSoundManager(cfg)

	var buf bytes.Buffer
	startAudio(sounds, zerolog.New(&buf))

	out := buf.String()
	if !strings.Contains(out, `"level":"warn"`) || !strings.Contains(out, "audio unavailable") {
		t.Errorf("Expected warning for disabled audio, got %q", out)
	}

	// Plays after a failed start are dropped silently
	sounds.Play(audio.SoundReveal)
}

func TestStartAudioThroughCrashGuard(t *testing.T) {
	cfg := audio.DefaultAudioConfig()
	cfg.Enabled = false
	sounds := audio.NewSoundManager(cfg)

	var buf bytes.Buffer
	done := make(chan struct{})
	core.Go(func() {
		defer close(done)
		startAudio(sounds, zerolog.New(&buf))
	})
	<-done

	if !strings.Contains(buf.String(), "audio unavailable") {
		t.Errorf("Expected startup result logged, got %q", buf.String())
	}
}
