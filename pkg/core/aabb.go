package core

import "math"

// aabbMinSize is the smallest extent any axis of a box may have
const aabbMinSize = 0.0001

// AABB represents an axis-aligned bounding box as one interval per axis
type AABB struct {
	X, Y, Z Interval
}

// EmptyAABB contains nothing and is the identity for Merge
var EmptyAABB = AABB{X: EmptyInterval, Y: EmptyInterval, Z: EmptyInterval}

// UniverseAABB contains every point
var UniverseAABB = AABB{X: UniverseInterval, Y: UniverseInterval, Z: UniverseInterval}

// NewAABB creates a box from three intervals, padding axes that are too thin
func NewAABB(x, y, z Interval) AABB {
	box := AABB{X: x, Y: y, Z: z}
	box.padToMinimums()
	return box
}

// NewAABBFromPoints creates the box spanned by the given corner points.
// Min and max are ordered per axis, so corners may be passed in any order.
func NewAABBFromPoints(points ...Vec3) AABB {
	if len(points) == 0 {
		return EmptyAABB
	}

	lo, hi := points[0], points[0]
	for _, p := range points[1:] {
		lo = lo.Min(p)
		hi = hi.Max(p)
	}

	return NewAABB(
		NewInterval(lo.X, hi.X),
		NewInterval(lo.Y, hi.Y),
		NewInterval(lo.Z, hi.Z),
	)
}

// Merge returns the smallest box containing both boxes
func (b AABB) Merge(other AABB) AABB {
	return AABB{
		X: MergeIntervals(b.X, other.X),
		Y: MergeIntervals(b.Y, other.Y),
		Z: MergeIntervals(b.Z, other.Z),
	}
}

// Axis returns the interval for axis 0 (x), 1 (y) or 2 (z)
func (b AABB) Axis(axis int) Interval {
	switch axis {
	case 1:
		return b.Y
	case 2:
		return b.Z
	default:
		return b.X
	}
}

// Min returns the minimum corner
func (b AABB) Min() Vec3 {
	return NewVec3(b.X.Min, b.Y.Min, b.Z.Min)
}

// Max returns the maximum corner
func (b AABB) Max() Vec3 {
	return NewVec3(b.X.Max, b.Y.Max, b.Z.Max)
}

// Center returns the center point of the box
func (b AABB) Center() Vec3 {
	return b.Min().Add(b.Max()).Multiply(0.5)
}

// Contains reports whether p lies inside the box, boundary included
func (b AABB) Contains(p Vec3) bool {
	return b.X.Contains(p.X) && b.Y.Contains(p.Y) && b.Z.Contains(p.Z)
}

// Offset translates the box by v
func (b AABB) Offset(v Vec3) AABB {
	return AABB{X: b.X.AddScalar(v.X), Y: b.Y.AddScalar(v.Y), Z: b.Z.AddScalar(v.Z)}
}

// LongestAxis returns the index of the axis with the largest extent.
// Ties go to the higher-numbered axis: z over y over x.
func (b AABB) LongestAxis() int {
	x, y, z := b.X.Size(), b.Y.Size(), b.Z.Size()
	if x > y {
		if x > z {
			return 0
		}
		return 2
	}
	if y > z {
		return 1
	}
	return 2
}

// Hit tests the ray against the box with the slab method over rayT.
// Axis-parallel rays produce infinite reciprocals, which IEEE arithmetic
// turns into slab bounds that either keep or empty the interval.
func (b AABB) Hit(ray Ray, rayT Interval) bool {
	for axis := 0; axis < 3; axis++ {
		slab := b.Axis(axis)
		adinv := 1.0 / ray.Direction.Axis(axis)
		origin := ray.Origin.Axis(axis)

		t0 := (slab.Min - origin) * adinv
		t1 := (slab.Max - origin) * adinv
		if adinv < 0 {
			t0, t1 = t1, t0
		}

		if t0 > rayT.Min {
			rayT.Min = t0
		}
		if t1 < rayT.Max {
			rayT.Max = t1
		}
		if rayT.Max <= rayT.Min {
			return false
		}
	}
	return true
}

func (b *AABB) padToMinimums() {
	b.X = padAxis(b.X)
	b.Y = padAxis(b.Y)
	b.Z = padAxis(b.Z)
}

// padAxis widens a thin interval to at least aabbMinSize. Rounding in Expand
// can leave it a few ulps short away from the origin, so Max is nudged up.
func padAxis(i Interval) Interval {
	if i.IsEmpty() || i.Size() >= aabbMinSize {
		return i
	}
	i = i.Expand(aabbMinSize)
	for i.Size() < aabbMinSize {
		i.Max = math.Nextafter(i.Max, math.Inf(1))
	}
	return i
}
