package core

import (
	"math"
	"math/rand"
	"testing"
)

func TestRandomSampler_Range(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(42)))

	for i := 0; i < 1000; i++ {
		v := sampler.Get1D()
		if v < 0 || v >= 1 {
			t.Fatalf("Get1D out of range: %v", v)
		}
		r := RandomRange(sampler, -2, 3)
		if r < -2 || r >= 3 {
			t.Fatalf("RandomRange out of range: %v", r)
		}
	}
}

func TestSeededSampler_Reproducible(t *testing.T) {
	a, b := NewSeededSampler(9), NewSeededSampler(9)
	for i := 0; i < 10; i++ {
		if a.Get1D() != b.Get1D() {
			t.Fatal("Expected samplers with the same seed to agree")
		}
	}
}

func TestRandomInUnitSphere(t *testing.T) {
	sampler := NewSeededSampler(42)
	for i := 0; i < 1000; i++ {
		if p := RandomInUnitSphere(sampler); p.LengthSquared() >= 1 {
			t.Fatalf("Point %v outside unit sphere", p)
		}
	}
}

func TestSampleOnUnitSphere(t *testing.T) {
	sampler := NewSeededSampler(42)
	for i := 0; i < 1000; i++ {
		d := SampleOnUnitSphere(sampler.Get2D())
		if math.Abs(d.Length()-1) > 1e-9 {
			t.Fatalf("Direction %v not unit length", d)
		}
	}
}

func TestRandomCosineDirection(t *testing.T) {
	sampler := NewSeededSampler(42)
	const n = 20000
	sumZ := 0.0
	for i := 0; i < n; i++ {
		d := RandomCosineDirection(sampler.Get2D())
		if d.Z < 0 {
			t.Fatalf("Direction %v below the +Z hemisphere", d)
		}
		if math.Abs(d.Length()-1) > 1e-9 {
			t.Fatalf("Direction %v not unit length", d)
		}
		sumZ += d.Z
	}

	// E[cos θ] under a cosine-weighted density is 2/3
	if mean := sumZ / n; math.Abs(mean-2.0/3.0) > 0.01 {
		t.Errorf("Expected mean cosine near 2/3, got %v", mean)
	}
}

func TestRandomToSphere(t *testing.T) {
	sampler := NewSeededSampler(42)
	radius, distSq := 1.0, 16.0
	cosThetaMax := math.Sqrt(1 - radius*radius/distSq)

	for i := 0; i < 1000; i++ {
		d := RandomToSphere(radius, distSq, sampler.Get2D())
		if d.Z < cosThetaMax-1e-9 {
			t.Fatalf("Direction %v outside cone with cos %v", d, cosThetaMax)
		}
		if math.Abs(d.Length()-1) > 1e-9 {
			t.Fatalf("Direction %v not unit length", d)
		}
	}
}

func TestSamplePointInUnitDisk(t *testing.T) {
	sampler := NewSeededSampler(42)
	for i := 0; i < 1000; i++ {
		p := SamplePointInUnitDisk(sampler.Get2D())
		if p.Z != 0 || p.X*p.X+p.Y*p.Y > 1+1e-9 {
			t.Fatalf("Point %v outside unit disk", p)
		}
	}
}
