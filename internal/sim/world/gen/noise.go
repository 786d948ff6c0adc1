package gen

import "math"

// HashSeed folds a seed string into a uint32 (DJB2 xor variant).
// Stable across processes; not cryptographic.
func HashSeed(s string) uint32 {
	h := uint32(5381)
	for i := 0; i < len(s); i++ {
		h = (h * 33) ^ uint32(s[i])
	}
	return h
}

// Noise is a deterministic pseudo-random field derived from a seed string.
// It holds no mutable state and may be shared across goroutines.
type Noise struct {
	seed uint32
}

func NewNoise(seed string) Noise {
	return Noise{seed: HashSeed(seed)}
}

func (n Noise) Seed() uint32 { return n.seed }

// At returns a value in [0,1) for the given coordinate and channel.
// Distinct layers at the same coordinate act as uncorrelated fields.
//
// The sine-hash loses precision for very large arguments; callers should
// keep coordinates within roughly ±1e6 for the field to stay well behaved.
func (n Noise) At(x, y float64, layer int) float64 {
	v := math.Sin(x*12.9898+y*78.233+float64(n.seed)+float64(layer)*131.2) * 43758.5453
	return v - math.Floor(v)
}

// Smooth interpolates layer-0 samples at the four surrounding lattice
// points, easing each axis through smoothstep. Interpolation can overshoot
// the corner values slightly, so the result is only approximately [0,1).
func (n Noise) Smooth(x, y float64) float64 {
	ix := math.Floor(x)
	iy := math.Floor(y)
	fx := x - ix
	fy := y - iy

	n00 := n.At(ix, iy, 0)
	n10 := n.At(ix+1, iy, 0)
	n01 := n.At(ix, iy+1, 0)
	n11 := n.At(ix+1, iy+1, 0)

	sx := smoothstep(fx)
	sy := smoothstep(fy)

	top := n00 + (n10-n00)*sx
	bot := n01 + (n11-n01)*sx
	return top + (bot-top)*sy
}

func smoothstep(t float64) float64 {
	return t * t * (3 - 2*t)
}
