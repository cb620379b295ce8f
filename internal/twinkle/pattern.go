package twinkle

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"time"
)

// Band is the range max brightness values are drawn from when a new
// pattern is generated.
type Band struct {
	Low  float64 `yaml:"low"`
	High float64 `yaml:"high"`
}

// normalized clamps both bounds into [0,1] and reorders them if given
// inverted, so sampling is total over any input.
func (b Band) normalized() Band {
	b.Low = clamp01(b.Low)
	b.High = clamp01(b.High)
	if b.Low > b.High {
		b.Low, b.High = b.High, b.Low
	}
	return b
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Generator draws randomized oscillator parameters for the whole chain.
type Generator struct {
	band Band
	rng  *rand.Rand
}

// NewGenerator seeds a generator from the OS entropy pool, falling back
// to the wall clock if the pool is unavailable.
func NewGenerator(band Band) *Generator {
	return NewGeneratorSeeded(band, Seed())
}

// NewGeneratorSeeded is NewGenerator with a fixed seed, for reproducible
// runs and tests.
func NewGeneratorSeeded(band Band, seed int64) *Generator {
	return &Generator{band: band.normalized(), rng: rand.New(rand.NewSource(seed))}
}

// Seed reads eight bytes of OS entropy; seeding happens once at startup.
func Seed() int64 {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		return time.Now().UnixNano()
	}
	return int64(binary.LittleEndian.Uint64(buf[:]))
}

// Randomize overwrites every oscillator with fresh parameters: max
// brightness uniform within the band, phase uniform in [0,1). The slice
// is rewritten wholesale before the next frame renders.
func (g *Generator) Randomize(lights []Oscillator) {
	for i := range lights {
		lights[i].MaxBrightness = g.band.Low + g.rng.Float64()*(g.band.High-g.band.Low)
		lights[i].Phase = g.rng.Float64()
	}
}
