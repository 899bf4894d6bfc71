package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// NewBox returns the six quads enclosing the box with opposite corners a and b
func NewBox(a, b core.Vec3, mat material.Material) (*Group, error) {
	lo, hi := a.Min(b), a.Max(b)

	dx := core.NewVec3(hi.X-lo.X, 0, 0)
	dy := core.NewVec3(0, hi.Y-lo.Y, 0)
	dz := core.NewVec3(0, 0, hi.Z-lo.Z)

	sides := []struct{ corner, u, v core.Vec3 }{
		{core.NewVec3(lo.X, lo.Y, hi.Z), dx, dy},          // front
		{core.NewVec3(hi.X, lo.Y, hi.Z), dz.Negate(), dy}, // right
		{core.NewVec3(hi.X, lo.Y, lo.Z), dx.Negate(), dy}, // back
		{core.NewVec3(lo.X, lo.Y, lo.Z), dz, dy},          // left
		{core.NewVec3(lo.X, hi.Y, hi.Z), dx, dz.Negate()}, // top
		{core.NewVec3(lo.X, lo.Y, lo.Z), dx, dz},          // bottom
	}

	box := NewGroup()
	for _, side := range sides {
		quad, err := NewQuad(side.corner, side.u, side.v, mat)
		if err != nil {
			return nil, err
		}
		box.Add(quad)
	}
	return box, nil
}
