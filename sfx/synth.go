// Package sfx synthesizes the game's sound effects from small oscillator
// patches so no audio assets need to ship with the binary.
package sfx

import (
	"math"
	"math/rand"

	"github.com/gopxl/beep"
)

// Waveform defines oscillator wave shapes
type Waveform int

const (
	WaveSine Waveform = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// Envelope is an ADSR amplitude shape. Attack, Decay and Release are in
// seconds; Sustain is a level in [0, 1].
type Envelope struct {
	Attack, Decay, Sustain, Release float64
}

var (
	ToneEnvelope  = Envelope{Attack: 0.05, Decay: 0.1, Sustain: 0.7, Release: 0.2}
	NoiseEnvelope = Envelope{Attack: 0.01, Decay: 0.05, Sustain: 0.5, Release: 0.2}
)

// At returns the envelope level t seconds into a sound lasting dur seconds.
// Stages are checked in order, so a sound shorter than A+D+R never reaches
// the later stages.
func (e Envelope) At(t, dur float64) float64 {
	switch {
	case t < e.Attack:
		return t / e.Attack
	case t < e.Attack+e.Decay:
		return 1 - (1-e.Sustain)*(t-e.Attack)/e.Decay
	case t < dur-e.Release:
		return e.Sustain
	case t < dur:
		return e.Sustain * (1 - (t-(dur-e.Release))/e.Release)
	}
	return 0
}

// Tone is one oscillator voice with optional frequency modulation.
type Tone struct {
	Freq    float64
	Volume  float64
	FMFreq  float64
	FMDepth float64
	Wave    Waveform
}

// Patch is a complete sound: tones mixed with an optional noise layer.
type Patch struct {
	Duration float64 // seconds
	Tones    []Tone
	Noise    float64 // noise layer volume, 0 for none
}

// Tonal builds a single-voice patch.
func Tonal(freq, dur, vol, fmFreq, fmDepth float64, wave Waveform) Patch {
	return Patch{
		Duration: dur,
		Tones:    []Tone{{Freq: freq, Volume: vol, FMFreq: fmFreq, FMDepth: fmDepth, Wave: wave}},
	}
}

func sample(wave Waveform, t, freq float64, rng *rand.Rand) float64 {
	switch wave {
	case WaveSine:
		return math.Sin(2 * math.Pi * freq * t)
	case WaveSquare:
		s := math.Sin(2 * math.Pi * freq * t)
		if s > 0 {
			return 1
		} else if s < 0 {
			return -1
		}
		return 0
	case WaveSaw:
		tf := t * freq
		return 2 * (tf - math.Floor(tf+0.5))
	case WaveNoise:
		return rng.Float64()*2 - 1
	}
	return 0
}

// voice streams one enveloped oscillator for a fixed number of samples.
type voice struct {
	tone     Tone
	env      Envelope
	rate     beep.SampleRate
	dur      float64
	position int
	total    int
	rng      *rand.Rand
}

func newVoice(tone Tone, env Envelope, dur float64, rate beep.SampleRate, rng *rand.Rand) *voice {
	return &voice{
		tone:  tone,
		env:   env,
		rate:  rate,
		dur:   dur,
		total: int(dur * float64(rate)),
		rng:   rng,
	}
}

func (v *voice) Stream(samples [][2]float64) (n int, ok bool) {
	if v.position >= v.total {
		return 0, false
	}
	for i := range samples {
		if v.position >= v.total {
			return i, true
		}
		t := float64(v.position) / float64(v.rate)
		freq := v.tone.Freq + v.tone.FMDepth*math.Sin(2*math.Pi*v.tone.FMFreq*t)
		val := sample(v.tone.Wave, t, freq, v.rng) * v.tone.Volume * v.env.At(t, v.dur)
		samples[i][0] = val
		samples[i][1] = val
		v.position++
	}
	return len(samples), true
}

func (v *voice) Err() error { return nil }

// Streamer returns a finite stereo stream of the patch.
func (p Patch) Streamer(rate beep.SampleRate, rng *rand.Rand) beep.Streamer {
	voices := make([]beep.Streamer, 0, len(p.Tones)+1)
	for _, tone := range p.Tones {
		voices = append(voices, newVoice(tone, ToneEnvelope, p.Duration, rate, rng))
	}
	if p.Noise > 0 {
		noise := Tone{Volume: p.Noise, Wave: WaveNoise}
		voices = append(voices, newVoice(noise, NoiseEnvelope, p.Duration, rate, rng))
	}
	return beep.Take(p.Samples(rate), beep.Mix(voices...))
}

// Samples returns the patch length in sample frames.
func (p Patch) Samples(rate beep.SampleRate) int {
	return int(p.Duration * float64(rate))
}
