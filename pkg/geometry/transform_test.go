package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestTranslate_RoundTrip(t *testing.T) {
	sampler := core.NewSeededSampler(42)
	quad := mustQuad(t, core.NewVec3(-1, -1, 0), core.NewVec3(2, 0, 0), core.NewVec3(0, 2, 0))
	shapes := []Hittable{NewSphere(core.NewVec3(0, 0, 0), 1, gray), quad}
	offset := core.NewVec3(3, -2, 7)

	for _, shape := range shapes {
		moved := NewTranslate(shape, offset)

		for i := 0; i < 200; i++ {
			origin := core.RandomVec3(sampler, -5, 5).Add(core.NewVec3(0, 0, 10)).Add(offset)
			target := core.RandomVec3(sampler, -1, 1).Add(offset)
			ray := core.NewRay(origin, target.Subtract(origin))

			got, gotOK := moved.Hit(ray, unitInterval, sampler)
			local := core.NewRay(ray.Origin.Subtract(offset), ray.Direction)
			want, wantOK := shape.Hit(local, unitInterval, sampler)

			if gotOK != wantOK {
				t.Fatalf("%T: translated hit %v, local hit %v", shape, gotOK, wantOK)
			}
			if !gotOK {
				continue
			}
			if math.Abs(got.T-want.T) > 1e-9 || got.UV != want.UV || got.Normal != want.Normal {
				t.Fatalf("%T: local geometry differs: %+v vs %+v", shape, got, want)
			}
			if got.Point.Subtract(want.Point.Add(offset)).Length() > 1e-9 {
				t.Fatalf("%T: expected point %v, got %v", shape, want.Point.Add(offset), got.Point)
			}
		}
	}
}

func TestTranslate_BoundingBoxAndPDF(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1, gray)
	offset := core.NewVec3(0, 0, -5)
	moved := NewTranslate(sphere, offset)

	box := moved.BoundingBox()
	if box.Min() != core.NewVec3(-1, -1, -6) || box.Max() != core.NewVec3(1, 1, -4) {
		t.Errorf("Unexpected translated box %+v", box)
	}

	origin := core.NewVec3(0, 0, 0)
	direct := NewSphere(core.NewVec3(0, 0, -5), 1, gray)
	dir := core.NewVec3(0.05, 0, -1)
	if got, want := moved.PDFValue(origin, dir), direct.PDFValue(origin, dir); math.Abs(got-want) > 1e-12 || want == 0 {
		t.Errorf("Expected translated pdf %v, got %v", want, got)
	}

	sampler := core.NewSeededSampler(3)
	for i := 0; i < 50; i++ {
		if d := moved.Random(origin, sampler); d.Z >= 0 || moved.PDFValue(origin, d) <= 0 {
			t.Fatalf("Sampled direction %v does not point at the translated sphere", d)
		}
	}
}

func TestRotateY_RoundTrip(t *testing.T) {
	sampler := core.NewSeededSampler(42)
	box, err := NewBox(core.NewVec3(-1, -2, -0.5), core.NewVec3(1, 2, 0.5), gray)
	if err != nil {
		t.Fatal(err)
	}
	const degrees = 30.0
	rotated := NewRotateY(box, degrees)

	rad := degrees * math.Pi / 180
	toLocal := func(v core.Vec3) core.Vec3 {
		return core.NewVec3(
			math.Cos(rad)*v.X-math.Sin(rad)*v.Z,
			v.Y,
			math.Sin(rad)*v.X+math.Cos(rad)*v.Z,
		)
	}
	toWorld := func(v core.Vec3) core.Vec3 {
		return core.NewVec3(
			math.Cos(rad)*v.X+math.Sin(rad)*v.Z,
			v.Y,
			-math.Sin(rad)*v.X+math.Cos(rad)*v.Z,
		)
	}

	hits := 0
	for i := 0; i < 300; i++ {
		origin := core.SampleOnUnitSphere(sampler.Get2D()).Multiply(10)
		target := core.RandomVec3(sampler, -1, 1)
		ray := core.NewRay(origin, target.Subtract(origin))

		got, gotOK := rotated.Hit(ray, unitInterval, sampler)
		local := core.NewRay(toLocal(ray.Origin), toLocal(ray.Direction))
		want, wantOK := box.Hit(local, unitInterval, sampler)

		if gotOK != wantOK {
			t.Fatalf("rotated hit %v, local hit %v for %+v", gotOK, wantOK, ray)
		}
		if !gotOK {
			continue
		}
		hits++
		if math.Abs(got.T-want.T) > 1e-9 || got.FrontFace != want.FrontFace {
			t.Fatalf("local geometry differs: %+v vs %+v", got, want)
		}
		if got.Point.Subtract(toWorld(want.Point)).Length() > 1e-9 {
			t.Fatalf("Expected point %v, got %v", toWorld(want.Point), got.Point)
		}
		if got.Normal.Subtract(toWorld(want.Normal)).Length() > 1e-9 {
			t.Fatalf("Expected normal %v, got %v", toWorld(want.Normal), got.Normal)
		}
		if math.Abs(got.Normal.Length()-1) > 1e-9 {
			t.Fatalf("Rotated normal %v lost unit length", got.Normal)
		}
		if !rotated.BoundingBox().Contains(got.Point) {
			t.Fatalf("Hit point %v outside rotated box %+v", got.Point, rotated.BoundingBox())
		}
	}
	if hits == 0 {
		t.Fatal("Expected some rays to hit the rotated box")
	}
}

func TestRotateY_BoundingBox(t *testing.T) {
	box, err := NewBox(core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1), gray)
	if err != nil {
		t.Fatal(err)
	}
	rotated := NewRotateY(box, 45).BoundingBox()

	// The unit square's diagonal becomes the x extent
	if math.Abs(rotated.X.Size()-math.Sqrt2) > 1e-3 {
		t.Errorf("Expected x extent √2, got %v", rotated.X.Size())
	}
	if math.Abs(rotated.Y.Size()-1) > 1e-3 {
		t.Errorf("Expected y extent unchanged, got %v", rotated.Y.Size())
	}
}

func TestRotateY_LightSampling(t *testing.T) {
	quad := mustQuad(t, core.NewVec3(2, -1, -1), core.NewVec3(0, 2, 0), core.NewVec3(0, 0, 2))
	rotated := NewRotateY(quad, 90)
	origin := core.NewVec3(0, 0, 0)
	sampler := core.NewSeededSampler(9)

	for i := 0; i < 100; i++ {
		d := rotated.Random(origin, sampler)
		if rotated.PDFValue(origin, d) <= 0 {
			t.Fatalf("Sampled direction %v has zero density", d)
		}
		if _, ok := rotated.Hit(core.NewRay(origin, d), unitInterval, sampler); !ok {
			t.Fatalf("Sampled direction %v misses the rotated quad", d)
		}
	}
}
