package gen

import (
	"math"
	"testing"
)

func TestHashSeedGolden(t *testing.T) {
	cases := []struct {
		seed string
		want uint32
	}{
		{"", 5381},
		{"test-seed", 3973889321},
		{"hello", 178056679},
		{"another", 307878958},
	}
	for _, c := range cases {
		if got := HashSeed(c.seed); got != c.want {
			t.Errorf("HashSeed(%q) = %d, want %d", c.seed, got, c.want)
		}
	}
}

func TestHashSeedStable(t *testing.T) {
	for _, s := range []string{"", "a", "world-42", "the same seed"} {
		if HashSeed(s) != HashSeed(s) {
			t.Fatalf("HashSeed(%q) not stable", s)
		}
	}
}

func TestNoiseRange(t *testing.T) {
	n := NewNoise("range-check")
	for layer := 0; layer < 3; layer++ {
		for x := -50; x <= 50; x += 7 {
			for y := -50; y <= 50; y += 7 {
				v := n.At(float64(x), float64(y), layer)
				if v < 0 || v >= 1 {
					t.Fatalf("At(%d,%d,%d) = %v, want [0,1)", x, y, layer, v)
				}
			}
		}
	}
}

func TestNoiseDeterministic(t *testing.T) {
	a := NewNoise("det")
	b := NewNoise("det")
	for x := -10; x <= 10; x++ {
		for y := -10; y <= 10; y++ {
			if a.At(float64(x), float64(y), 1) != b.At(float64(x), float64(y), 1) {
				t.Fatalf("instances disagree at (%d,%d)", x, y)
			}
		}
	}
}

func TestNoiseLayersDiffer(t *testing.T) {
	n := NewNoise("layers")
	same := 0
	const samples = 200
	for i := 0; i < samples; i++ {
		x, y := float64(i*3), float64(-i*7)
		if n.At(x, y, 0) == n.At(x, y, 1) {
			same++
		}
	}
	if same > samples/10 {
		t.Fatalf("layers 0 and 1 agree on %d/%d samples", same, samples)
	}
}

func TestSmoothMatchesCornersOnLattice(t *testing.T) {
	n := NewNoise("lattice")
	for x := -5; x <= 5; x++ {
		for y := -5; y <= 5; y++ {
			got := n.Smooth(float64(x), float64(y))
			want := n.At(float64(x), float64(y), 0)
			if math.Abs(got-want) > 1e-12 {
				t.Fatalf("Smooth(%d,%d) = %v, want corner sample %v", x, y, got, want)
			}
		}
	}
}

func TestSmoothBoundedByCorners(t *testing.T) {
	n := NewNoise("bounds")
	for i := 0; i < 500; i++ {
		x := float64(i)*0.137 - 30
		y := float64(i)*0.211 - 50
		ix, iy := math.Floor(x), math.Floor(y)
		lo, hi := 1.0, 0.0
		for _, c := range [][2]float64{{ix, iy}, {ix + 1, iy}, {ix, iy + 1}, {ix + 1, iy + 1}} {
			v := n.At(c[0], c[1], 0)
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
		got := n.Smooth(x, y)
		if got < lo-1e-9 || got > hi+1e-9 {
			t.Fatalf("Smooth(%v,%v) = %v outside corner range [%v,%v]", x, y, got, lo, hi)
		}
	}
}
