package audio

import (
	"errors"
	"testing"
)

// TestSoundManagerGracefulDegradation verifies audio operations don't panic when not initialized
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager(nil)

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sound operations panicked without initialization: %v", r)
		}
	}()

	for s := SoundType(0); s < soundTypeCount; s++ {
		sm.Play(s)
	}
	sm.Play(SoundType(99))
	sm.Cleanup()
}

// TestSoundManagerDisabled verifies a disabled config refuses to open the speaker
func TestSoundManagerDisabled(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.Enabled = false

	sm := NewSoundManager(cfg)
	if err := sm.Initialize(); !errors.Is(err, ErrAudioDisabled) {
		t.Errorf("Expected ErrAudioDisabled, got %v", err)
	}
}

// TestSoundManagerInitialization verifies sound manager can be initialized and cleaned up
func TestSoundManagerInitialization(t *testing.T) {
	sm := NewSoundManager(nil)

	// Speaker initialization may fail in CI/test environments without audio devices
	if err := sm.Initialize(); err != nil {
		t.Logf("Sound initialization failed (expected in test environment): %v", err)
		return
	}

	// Second initialization should be a no-op
	if err := sm.Initialize(); err != nil {
		t.Errorf("Second initialization should succeed as no-op, got error: %v", err)
	}

	sm.Play(SoundReveal)
	sm.Cleanup()
}

// TestToggleMute verifies mute state flips
func TestToggleMute(t *testing.T) {
	sm := NewSoundManager(nil)
	if sm.IsMuted() {
		t.Fatal("Expected unmuted initially")
	}
	if !sm.ToggleMute() || !sm.IsMuted() {
		t.Error("Expected muted after first toggle")
	}
	if sm.ToggleMute() {
		t.Error("Expected unmuted after second toggle")
	}
}

// TestSoundTypeString verifies names for logging
func TestSoundTypeString(t *testing.T) {
	if SoundExplosion.String() != "explosion" {
		t.Errorf("Expected explosion, got %s", SoundExplosion)
	}
	if SoundType(-1).String() != "unknown" {
		t.Errorf("Expected unknown for out-of-range type")
	}
}
