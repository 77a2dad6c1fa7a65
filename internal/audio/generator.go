package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
)

// SweepGenerator produces a sine tone gliding from one frequency to another
// over roughly a third of a second.
type SweepGenerator struct {
	sr       beep.SampleRate
	from, to float64
	pos      int
	phase    float64
}

func NewSweepGenerator(sr beep.SampleRate, from, to float64) *SweepGenerator {
	return &SweepGenerator{sr: sr, from: from, to: to}
}

func (g *SweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	span := float64(g.sr.N(time.Millisecond * 300))
	for i := range samples {
		k := math.Min(float64(g.pos)/span, 1)
		freq := g.from + (g.to-g.from)*k
		g.phase += 2 * math.Pi * freq / float64(g.sr)

		envelope := 0.2 * (1 - k*0.8)
		sample := envelope * math.Sin(g.phase)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SweepGenerator) Err() error {
	return nil
}

// BlastGenerator produces exponentially decaying noise.
type BlastGenerator struct {
	sr     beep.SampleRate
	volume float64
	decay  float64 // Скорость затухания, 1/с
	pos    int
	rng    *rand.Rand
}

func NewBlastGenerator(sr beep.SampleRate, volume, decay float64) *BlastGenerator {
	return &BlastGenerator{
		sr:     sr,
		volume: volume,
		decay:  decay,
		rng:    rand.New(rand.NewSource(1)),
	}
}

func (g *BlastGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		amp := g.volume * math.Exp(-g.decay*t)
		sample := amp * (g.rng.Float64()*2 - 1)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BlastGenerator) Err() error {
	return nil
}
