package sfx

import (
	"math"
	"math/rand"
	"sort"

	"github.com/gopxl/beep"
)

// BytesPerFrame is the size of one 16-bit stereo sample frame.
const BytesPerFrame = 4

// Render encodes the patch as signed 16-bit little-endian stereo PCM, the
// layout ebiten's audio players consume directly.
func Render(p Patch, rate beep.SampleRate, rng *rand.Rand) []byte {
	format := beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2}
	total := p.Samples(rate)
	out := make([]byte, total*BytesPerFrame)

	s := p.Streamer(rate, rng)
	buf := make([][2]float64, 512)
	written := 0
	for written < total {
		want := total - written
		if want > len(buf) {
			want = len(buf)
		}
		n, ok := s.Stream(buf[:want])
		for i := 0; i < n; i++ {
			frame := [2]float64{clip(buf[i][0]), clip(buf[i][1])}
			format.EncodeSigned(out[(written+i)*BytesPerFrame:], frame)
		}
		written += n
		if !ok || n == 0 {
			break
		}
	}
	// Anything the mixer did not fill stays zero, which is silence.
	return out
}

// Bank is a set of rendered sounds keyed by name.
type Bank map[string][]byte

// RenderBank renders every patch once, in name order so a seed always
// yields the same noise.
func RenderBank(patches map[string]Patch, rate beep.SampleRate, seed int64) Bank {
	names := make([]string, 0, len(patches))
	for name := range patches {
		names = append(names, name)
	}
	sort.Strings(names)

	rng := rand.New(rand.NewSource(seed))
	bank := make(Bank, len(patches))
	for _, name := range names {
		bank[name] = Render(patches[name], rate, rng)
	}
	return bank
}

func clip(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}
