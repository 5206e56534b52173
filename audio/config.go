package audio

import "github.com/lixenwraith/vi-sweeper/constants"

// AudioConfig holds mixer settings
type AudioConfig struct {
	Enabled       bool
	SampleRate    int
	MasterVolume  float64
	EffectVolumes [soundTypeCount]float64
}

// DefaultAudioConfig returns balanced per-effect volumes at the default master volume
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		SampleRate:   constants.AudioSampleRate,
		MasterVolume: float64(constants.DefaultVolume) / 100.0,
		EffectVolumes: [soundTypeCount]float64{
			SoundReveal:    0.35,
			SoundFlag:      0.4,
			SoundExplosion: 0.9,
			SoundWin:       0.6,
			SoundError:     0.3,
		},
	}
}
