package anim

import "testing"

func BenchmarkSquareStep(b *testing.B) {
	rng := newRand()
	spec := SquareSpec{MinSize: 24, MaxSize: 68, MinVX: 1.2, MaxVX: 3.0, MinVY: 1.0, MaxVY: 2.8}
	squares := make([]Square, 15)
	for i := range squares {
		squares[i] = RandomSquare(spec, 640, 480, rng)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for j := range squares {
			squares[j].Step(640, 480, rng)
		}
	}
}

func BenchmarkBarHeight(b *testing.B) {
	bars := NewBars(8)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tm := float64(i) * 0.06
		for _, bar := range bars {
			bar.Height(tm, 120)
		}
	}
}
