package audio

import "errors"

// SoundType represents different sound effects
type SoundType int

const (
	SoundReveal    SoundType = iota // Safe cell opened
	SoundFlag                       // Flag placed or removed
	SoundExplosion                  // Mine revealed
	SoundWin                        // Board cleared
	SoundError                      // Action rejected while game is over
	soundTypeCount
)

var soundNames = [soundTypeCount]string{
	SoundReveal:    "reveal",
	SoundFlag:      "flag",
	SoundExplosion: "explosion",
	SoundWin:       "win",
	SoundError:     "error",
}

func (s SoundType) String() string {
	if s < 0 || s >= soundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}

// Sentinel errors
var (
	ErrAudioDisabled = errors.New("audio disabled")
)
