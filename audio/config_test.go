package audio

import (
	"testing"

	"github.com/lixenwraith/vi-sweeper/constants"
)

// TestDefaultAudioConfig verifies default configuration
func TestDefaultAudioConfig(t *testing.T) {
	cfg := DefaultAudioConfig()

	if cfg == nil {
		t.Fatal("Expected non-nil default config")
	}

	if !cfg.Enabled {
		t.Error("Expected default config to have Enabled=true")
	}

	if want := float64(constants.DefaultVolume) / 100.0; cfg.MasterVolume != want {
		t.Errorf("Expected default master volume %f, got %f", want, cfg.MasterVolume)
	}

	if cfg.SampleRate != 44100 {
		t.Errorf("Expected default sample rate 44100, got %d", cfg.SampleRate)
	}

	// Every effect needs an audible, non-clipping gain
	for st := SoundReveal; st < soundTypeCount; st++ {
		vol := cfg.EffectVolumes[st]
		if vol <= 0 || vol > 1 {
			t.Errorf("Effect %s volume %f outside (0, 1]", st, vol)
		}
	}

	// Explosion dominates the click
	if cfg.EffectVolumes[SoundExplosion] <= cfg.EffectVolumes[SoundReveal] {
		t.Error("Expected explosion louder than reveal click")
	}
}

// TestDefaultAudioConfigIndependent verifies callers get separate copies
func TestDefaultAudioConfigIndependent(t *testing.T) {
	a := DefaultAudioConfig()
	b := DefaultAudioConfig()

	a.MasterVolume = 0
	a.EffectVolumes[SoundWin] = 0

	if b.MasterVolume == 0 || b.EffectVolumes[SoundWin] == 0 {
		t.Error("Modifying one default config affected another")
	}
}
