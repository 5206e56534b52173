package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/vi-sweeper/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// sweep is a sine oscillator whose frequency glides linearly between two values
type sweep struct {
	from, to float64
	phase    float64
	duration int
	position int
	rate     beep.SampleRate
}

// NewSweep creates a gliding sine tone
func NewSweep(from, to float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &sweep{
		from:     from,
		to:       to,
		duration: rate.N(duration),
		rate:     rate,
	}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.duration {
			return i, i > 0
		}
		progress := float64(s.position) / float64(s.duration)
		freq := s.from + (s.to-s.from)*progress

		val := math.Sin(2 * math.Pi * s.phase)
		samples[i][0] = val
		samples[i][1] = val

		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/sustain/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: max(total-att-rel, 0),
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a linear gain; math.Log2(0) is -Inf so zero maps to silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

func effectGain(cfg *AudioConfig, s SoundType) float64 {
	return cfg.EffectVolumes[s] * cfg.MasterVolume
}

// CreateRevealSound generates a short tick for opening a safe cell
func CreateRevealSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewOscillator(1200.0, constants.ClickSoundDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, constants.ClickSoundDuration, constants.ClickSoundAttack, constants.ClickSoundRelease, rate)

	return newVolume(shaped, effectGain(cfg, SoundReveal))
}

// CreateFlagSound generates a rising blip for flag toggles
func CreateFlagSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	glide := NewSweep(600.0, 900.0, constants.FlagSoundDuration, rate)
	shaped := NewEnvelope(glide, constants.FlagSoundDuration, constants.FlagSoundAttack, constants.FlagSoundRelease, rate)

	return newVolume(shaped, effectGain(cfg, SoundFlag))
}

// CreateExplosionSound generates a noise burst over a falling rumble
func CreateExplosionSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := constants.ExplosionSoundDuration

	noise := NewOscillator(0, d, WaveNoise, rate)
	noiseShaped := NewEnvelope(noise, d, constants.ExplosionSoundAttack, constants.ExplosionSoundRelease, rate)

	rumble := NewSweep(120.0, 40.0, d, rate)
	rumbleShaped := NewEnvelope(rumble, d, constants.ExplosionSoundAttack, constants.ExplosionSoundRelease, rate)

	mixed := beep.Mix(
		newVolume(noiseShaped, 0.6),
		newVolume(rumbleShaped, 0.4),
	)
	return newVolume(mixed, effectGain(cfg, SoundExplosion))
}

// CreateWinSound generates an ascending three-note arpeggio (C6 E6 G6)
func CreateWinSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	note := func(freq float64, d, release time.Duration) beep.Streamer {
		osc := NewOscillator(freq, d, WaveSine, rate)
		return NewEnvelope(osc, d, constants.WinSoundAttack, release, rate)
	}

	sequence := beep.Seq(
		note(1046.50, constants.WinSoundNote1Duration, constants.WinSoundRelease),
		note(1318.51, constants.WinSoundNote2Duration, constants.WinSoundRelease),
		note(1567.98, constants.WinSoundNote3Duration, constants.WinSoundFinalRelease),
	)
	return newVolume(sequence, effectGain(cfg, SoundWin))
}

// CreateErrorSound generates a short harsh buzz for rejected input
func CreateErrorSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewOscillator(100.0, constants.ErrorSoundDuration, WaveSaw, rate)
	shaped := NewEnvelope(osc, constants.ErrorSoundDuration, constants.ErrorSoundAttack, constants.ErrorSoundRelease, rate)

	return newVolume(shaped, effectGain(cfg, SoundError))
}

// GetSoundEffect returns the streamer for the given sound type
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundReveal:
		return CreateRevealSound(cfg)
	case SoundFlag:
		return CreateFlagSound(cfg)
	case SoundExplosion:
		return CreateExplosionSound(cfg)
	case SoundWin:
		return CreateWinSound(cfg)
	case SoundError:
		return CreateErrorSound(cfg)
	default:
		return nil
	}
}
