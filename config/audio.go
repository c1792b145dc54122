package config

import "github.com/automoto/ripoff/sfx"

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundShot
	SoundShotAlt
	SoundKillerShot
	SoundExplosion
	SoundCrateDestroyed
	SoundPauseToggled
)

var soundNames = map[SoundID]string{
	SoundShot:           "shot-fired",
	SoundShotAlt:        "shot-fired-alt",
	SoundKillerShot:     "killer-shot",
	SoundExplosion:      "explosion",
	SoundCrateDestroyed: "crate-destroyed",
	SoundPauseToggled:   "pause-toggled",
}

// String returns the sound's event name.
func (s SoundID) String() string {
	if n, ok := soundNames[s]; ok {
		return n
	}
	return "none"
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate int     `mapstructure:"sample_rate"`
	SFXVolume  float64 `mapstructure:"sfx_volume"`
	Seed       int64   `mapstructure:"seed"` // noise seed for the rendered bank
}

// SoundConfig maps sound IDs to synth patches
type SoundConfig struct {
	Patches           map[SoundID]sfx.Patch
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate: 44100,
		SFXVolume:  0.6,
		Seed:       1,
	}

	Sound = SoundConfig{
		Patches: map[SoundID]sfx.Patch{
			SoundShot:       sfx.Tonal(700, 0.2, 0.6, 50, 20, sfx.WaveSquare),
			SoundShotAlt:    sfx.Tonal(600, 0.15, 0.3, 50, 20, sfx.WaveSquare),
			SoundKillerShot: sfx.Tonal(1000, 0.1, 1.0, 200, 50, sfx.WaveSquare),
			SoundExplosion: {
				Duration: 0.3,
				Tones:    []sfx.Tone{{Freq: 100, Volume: 0.3, Wave: sfx.WaveSine}},
				Noise:    0.5,
			},
			SoundCrateDestroyed: {
				Duration: 0.2,
				Tones:    []sfx.Tone{{Freq: 200, Volume: 0.5, FMFreq: 150, FMDepth: 100, Wave: sfx.WaveSaw}},
				Noise:    0.2,
			},
			SoundPauseToggled: sfx.Tonal(1200, 0.1, 1.0, 300, 20, sfx.WaveSine),
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundExplosion: 1.2,
		},
	}
}
