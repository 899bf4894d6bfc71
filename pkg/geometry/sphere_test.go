package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

var (
	unitInterval = core.NewInterval(0.001, 1000.0)
	gray         = material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
)

func TestSphere_Hit_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, gray)
	ray := core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0))

	if hit, isHit := sphere.Hit(ray, unitInterval, nil); isHit {
		t.Errorf("Expected miss, but got hit at t=%f", hit.T)
	}
}

func TestSphere_Hit_FrontAndBackFace(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, gray)

	tests := []struct {
		name           string
		rayOrigin      core.Vec3
		rayDirection   core.Vec3
		expectedT      float64
		expectedFront  bool
		expectedNormal core.Vec3
	}{
		{
			name:           "front face hit",
			rayOrigin:      core.NewVec3(0, 0, 2),
			rayDirection:   core.NewVec3(0, 0, -1),
			expectedT:      1.0,
			expectedFront:  true,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "back face hit",
			rayOrigin:      core.NewVec3(0, 0, 0),
			rayDirection:   core.NewVec3(0, 0, 1),
			expectedT:      1.0,
			expectedFront:  false,
			expectedNormal: core.NewVec3(0, 0, -1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := sphere.Hit(core.NewRay(tt.rayOrigin, tt.rayDirection), unitInterval, nil)
			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}
			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}
			if hit.FrontFace != tt.expectedFront {
				t.Errorf("Expected front face %t, got %t", tt.expectedFront, hit.FrontFace)
			}
			if hit.Normal.Subtract(tt.expectedNormal).Length() > 1e-9 {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
			if hit.Material != gray {
				t.Error("Expected hit to carry the sphere's material")
			}
		})
	}
}

func TestSphere_Hit_RespectsInterval(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, gray)
	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))

	// Near root at 4 is excluded, far root at 6 is taken
	hit, ok := sphere.Hit(ray, core.NewInterval(4.5, 100), nil)
	if !ok || math.Abs(hit.T-6) > 1e-9 {
		t.Errorf("Expected far root t=6, got %v (hit=%v)", hit, ok)
	}

	if _, ok := sphere.Hit(ray, core.NewInterval(0.001, 3.9), nil); ok {
		t.Error("Expected miss when the interval ends before the sphere")
	}
}

func TestSphere_HitPointOnSurface(t *testing.T) {
	random := rand.New(rand.NewSource(42))
	sampler := core.NewRandomSampler(random)

	for i := 0; i < 500; i++ {
		center := core.RandomVec3(sampler, -10, 10)
		radius := 0.1 + 5*random.Float64()
		sphere := NewSphere(center, radius, gray)

		origin := core.RandomVec3(sampler, -30, 30)
		target := center.Add(core.RandomInUnitSphere(sampler).Multiply(radius))
		ray := core.NewRay(origin, target.Subtract(origin))

		hit, ok := sphere.Hit(ray, core.NewInterval(0.001, math.Inf(1)), nil)
		if !ok {
			continue
		}
		dist := hit.Point.Subtract(center).Length()
		if math.Abs(dist-radius) > 1e-4*radius {
			t.Fatalf("Hit point at distance %v from center, radius %v", dist, radius)
		}
	}
}

func TestSphere_ZeroRadiusNeverHits(t *testing.T) {
	for _, radius := range []float64{0, -1} {
		sphere := NewSphere(core.NewVec3(0, 0, 0), radius, gray)
		ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))
		if _, ok := sphere.Hit(ray, unitInterval, nil); ok {
			t.Errorf("radius %v: expected permanent miss", radius)
		}
	}
}

func TestSphere_UV(t *testing.T) {
	tests := []struct {
		name string
		p    core.Vec3
		want core.Vec2
	}{
		{"+x", core.NewVec3(1, 0, 0), core.NewVec2(0.5, 0.5)},
		{"+y", core.NewVec3(0, 1, 0), core.NewVec2(0.5, 1.0)},
		{"-y", core.NewVec3(0, -1, 0), core.NewVec2(0.5, 0.0)},
		{"+z", core.NewVec3(0, 0, 1), core.NewVec2(0.25, 0.5)},
		{"-z", core.NewVec3(0, 0, -1), core.NewVec2(0.75, 0.5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sphereUV(tt.p)
			if math.Abs(got.X-tt.want.X) > 1e-9 || math.Abs(got.Y-tt.want.Y) > 1e-9 {
				t.Errorf("sphereUV(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestMovingSphere(t *testing.T) {
	sphere := NewMovingSphere(core.NewVec3(0, 0, 0), core.NewVec3(0, 2, 0), 0.5, gray)

	box := sphere.BoundingBox()
	if !box.Contains(core.NewVec3(0, -0.5, 0)) || !box.Contains(core.NewVec3(0, 2.5, 0)) {
		t.Errorf("Expected box to cover both end positions, got %+v", box)
	}

	ray := core.NewRay(core.NewVec3(0, 2, 5), core.NewVec3(0, 0, -1))
	if _, ok := sphere.Hit(ray, unitInterval, nil); ok {
		t.Error("Expected miss at time 0 where the sphere is still at the origin")
	}

	ray.Time = 1
	hit, ok := sphere.Hit(ray, unitInterval, nil)
	if !ok || math.Abs(hit.T-4.5) > 1e-9 {
		t.Errorf("Expected hit at t=4.5 at time 1, got %v (hit=%v)", hit, ok)
	}
}

func TestSphere_PDFMatchesSampling(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -5), 1, gray)
	origin := core.NewVec3(0, 0, 0)
	sampler := core.NewSeededSampler(42)

	expected := 1 / (2 * math.Pi * (1 - math.Sqrt(1-1.0/25)))
	for i := 0; i < 200; i++ {
		dir := sphere.Random(origin, sampler)
		got := sphere.PDFValue(origin, dir)
		if math.Abs(got-expected) > 1e-6*expected {
			t.Fatalf("PDFValue(%v) = %v, want %v", dir, got, expected)
		}
	}

	if got := sphere.PDFValue(origin, core.NewVec3(0, 0, 1)); got != 0 {
		t.Errorf("Expected zero density away from the sphere, got %v", got)
	}
	if got := sphere.PDFValue(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1)); got != 0 {
		t.Errorf("Expected zero density from inside the sphere, got %v", got)
	}
}
