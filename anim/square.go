package anim

import (
	"image/color"
	"math/rand/v2"
)

// Colour channels for bounce recolouring stay in this range so squares never
// fade into a dark background.
const (
	minChannel = 50
	maxChannel = 255
)

// Vec is a 2D floating point vector.
type Vec struct {
	X, Y float64
}

// Square is a filled square moving at constant velocity inside a canvas.
type Square struct {
	Size  float64
	Pos   Vec
	Vel   Vec
	Color color.RGBA
}

// Bounce reports which axes reflected during a Step.
type Bounce struct {
	X, Y bool
}

// Any reports whether the square touched a wall on either axis.
func (b Bounce) Any() bool {
	return b.X || b.Y
}

// Step advances the square by one tick inside a width x height canvas.
//
// Each axis is tested independently: on contact with a wall the position is
// clamped to the wall and the velocity component is pointed back inside,
// magnitude unchanged. When any wall was touched the square gets a new colour
// drawn from rng.
func (s *Square) Step(width, height float64, rng *rand.Rand) Bounce {
	s.Pos.X += s.Vel.X
	s.Pos.Y += s.Vel.Y

	var b Bounce
	s.Pos.X, s.Vel.X, b.X = reflect(s.Pos.X, s.Vel.X, max(0, width-s.Size))
	s.Pos.Y, s.Vel.Y, b.Y = reflect(s.Pos.Y, s.Vel.Y, max(0, height-s.Size))

	if b.Any() {
		s.Color = RandomColor(rng)
	}
	return b
}

// reflect clamps p to [0, limit] and points v inward on contact.
func reflect(p, v, limit float64) (float64, float64, bool) {
	switch {
	case p <= 0:
		return 0, abs(v), true
	case p >= limit:
		return limit, -abs(v), true
	}
	return p, v, false
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// RandomColor draws an opaque colour with every channel in [50, 255].
func RandomColor(rng *rand.Rand) color.RGBA {
	return color.RGBA{
		R: uint8(randInt(rng, minChannel, maxChannel)),
		G: uint8(randInt(rng, minChannel, maxChannel)),
		B: uint8(randInt(rng, minChannel, maxChannel)),
		A: 0xff,
	}
}

// SquareSpec bounds the random parameters of a spawned square.
type SquareSpec struct {
	MinSize, MaxSize int
	// Speed ranges per axis; the sign is picked at random.
	MinVX, MaxVX float64
	MinVY, MaxVY float64
}

// RandomSquare spawns a square fully inside a width x height canvas.
func RandomSquare(spec SquareSpec, width, height float64, rng *rand.Rand) Square {
	size := float64(randInt(rng, spec.MinSize, spec.MaxSize))
	return Square{
		Size: size,
		Pos: Vec{
			X: uniform(rng, 0, max(0, width-size)),
			Y: uniform(rng, 0, max(0, height-size)),
		},
		Vel: Vec{
			X: randSign(rng) * uniform(rng, spec.MinVX, spec.MaxVX),
			Y: randSign(rng) * uniform(rng, spec.MinVY, spec.MaxVY),
		},
		Color: RandomColor(rng),
	}
}

// randInt returns an int in the closed range [lo, hi].
func randInt(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.IntN(hi-lo+1)
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

func randSign(rng *rand.Rand) float64 {
	if rng.IntN(2) == 0 {
		return -1
	}
	return 1
}
