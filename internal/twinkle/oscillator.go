package twinkle

import "math"

// Oscillator holds the animation parameters for one light on the chain.
// MaxBrightness is the upper envelope of the light's sine wave, in [0,1].
// Phase is the fraction of one cycle by which the wave is offset from the
// common time origin, in [0,1). Only Phase differs between lights within a
// pattern; the cycle duration is shared through RunState.
type Oscillator struct {
	MaxBrightness float64
	Phase         float64
}

// Brightness returns the light's instantaneous brightness in [0,1] at
// elapsed seconds into the animation, for a full cycle of cycleSeconds.
// The negative half of the sine clamps to zero, so each light spends
// roughly half of every cycle fully off; that is what makes the chain
// twinkle instead of breathe. cycleSeconds must be positive; the command
// interpreter guarantees it by construction.
func (o Oscillator) Brightness(elapsed, cycleSeconds float64) float64 {
	x := (2 * math.Pi / cycleSeconds) * (elapsed - o.Phase*cycleSeconds)
	y := o.MaxBrightness * math.Sin(x)
	if y < 0 {
		return 0
	}
	if y > 1 {
		return 1
	}
	return y
}
