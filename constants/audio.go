package constants

import "time"

// Audio Engine
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// DefaultVolume is the master volume percentage when not configured
	DefaultVolume = 60
)

// Reveal Click Timing
const (
	ClickSoundDuration = 40 * time.Millisecond
	ClickSoundAttack   = 2 * time.Millisecond
	ClickSoundRelease  = 30 * time.Millisecond
)

// Flag Blip Timing
const (
	FlagSoundDuration = 70 * time.Millisecond
	FlagSoundAttack   = 5 * time.Millisecond
	FlagSoundRelease  = 40 * time.Millisecond
)

// Explosion Timing
const (
	ExplosionSoundDuration = 700 * time.Millisecond
	ExplosionSoundAttack   = 5 * time.Millisecond
	ExplosionSoundRelease  = 600 * time.Millisecond
)

// Win Chime Timing
const (
	WinSoundNote1Duration = 120 * time.Millisecond
	WinSoundNote2Duration = 120 * time.Millisecond
	WinSoundNote3Duration = 400 * time.Millisecond
	WinSoundAttack        = 5 * time.Millisecond
	WinSoundRelease       = 80 * time.Millisecond
	WinSoundFinalRelease  = 320 * time.Millisecond
)

// Error Buzz Timing
const (
	ErrorSoundDuration = 80 * time.Millisecond
	ErrorSoundAttack   = 5 * time.Millisecond
	ErrorSoundRelease  = 20 * time.Millisecond
)
