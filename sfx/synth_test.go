package sfx

import (
	"math/rand"
	"testing"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvelopeStages(t *testing.T) {
	env := ToneEnvelope
	dur := 1.0

	assert.InDelta(t, 0, env.At(0, dur), 1e-12)
	assert.InDelta(t, 0.5, env.At(0.025, dur), 1e-12, "half way up the attack")
	assert.InDelta(t, 1, env.At(0.05, dur), 1e-12, "peak at end of attack")
	assert.InDelta(t, 0.7, env.At(0.5, dur), 1e-12, "sustain")
	assert.InDelta(t, 0.35, env.At(0.9, dur), 1e-12, "half way through release")
	assert.Equal(t, 0.0, env.At(1, dur))
	assert.Equal(t, 0.0, env.At(2, dur))
}

func TestEnvelopeShortSoundSkipsRelease(t *testing.T) {
	// 0.1s is shorter than attack+decay, so the sound is cut mid-decay.
	env := ToneEnvelope
	assert.Greater(t, env.At(0.099, 0.1), 0.7)
	assert.InDelta(t, 0.85, env.At(0.1, 0.1), 1e-12)
	assert.Equal(t, 0.0, env.At(0.2, 0.1))
}

func TestVoiceLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	p := Tonal(440, 0.1, 1, 0, 0, WaveSine)
	s := p.Streamer(rate, rand.New(rand.NewSource(1)))

	buf := make([][2]float64, 1000)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok || n == 0 {
			break
		}
	}
	assert.Equal(t, p.Samples(rate), total)
}

func TestSamplesInRange(t *testing.T) {
	rate := beep.SampleRate(8000)
	rng := rand.New(rand.NewSource(3))
	for _, wave := range []Waveform{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		for i := 0; i < 500; i++ {
			v := sample(wave, float64(i)/float64(rate), 300, rng)
			if v < -1 || v > 1 {
				t.Fatalf("wave %d sample %d = %f, want [-1, 1]", wave, i, v)
			}
		}
	}
}

func TestRenderLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	p := Patch{
		Duration: 0.3,
		Tones:    []Tone{{Freq: 100, Volume: 0.3, Wave: WaveSine}},
		Noise:    0.5,
	}
	pcm := Render(p, rate, rand.New(rand.NewSource(9)))
	require.Len(t, pcm, p.Samples(rate)*BytesPerFrame)

	// Envelopes start at zero so the first frame is silent.
	assert.Equal(t, []byte{0, 0, 0, 0}, pcm[:4])
}

func TestRenderBankDeterministic(t *testing.T) {
	rate := beep.SampleRate(22050)
	patches := map[string]Patch{
		"ding":  Tonal(1200, 0.1, 1, 300, 20, WaveSine),
		"clank": {Duration: 0.2, Tones: []Tone{{Freq: 200, Volume: 0.5, FMFreq: 150, FMDepth: 100, Wave: WaveSaw}}, Noise: 0.2},
	}
	a := RenderBank(patches, rate, 42)
	b := RenderBank(patches, rate, 42)
	require.Len(t, a, 2)
	assert.Equal(t, a["clank"], b["clank"])
	assert.Equal(t, a["ding"], b["ding"])
}
