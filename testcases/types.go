// seehuhn.de/go/render3d - a software 3D renderer
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package testcases

import (
	"seehuhn.de/go/render3d"
	"seehuhn.de/go/render3d/affine"
)

// Scene defines a single rendering test.
type Scene struct {
	Name   string        // lowercase a-z and _ only
	Width  int           // viewport width in pixels
	Height int           // viewport height in pixels
	Meshes []Mesh        // drawn in order
	Matrix affine.Matrix // model to screen transformation (zero-value means identity)
	Light  affine.Vec    // unit light direction
}

// Mesh is a set of strip groups drawn in one color.
type Mesh struct {
	Groups []render3d.StripGroup
	Color  uint32 // packed RGBA
}

// Transform returns the model to screen transformation of the scene.
func (s *Scene) Transform() affine.Matrix {
	if s.Matrix == (affine.Matrix{}) {
		return affine.Identity
	}
	return s.Matrix
}

// Render draws the scene as one frame.  The renderer must have the size
// of the scene viewport.
func (s *Scene) Render(r *render3d.Renderer) {
	m := s.Transform()
	r.Clear()
	for _, mesh := range s.Meshes {
		r.TransformAndAdd(mesh.Groups, &m, s.Light, mesh.Color)
	}
}

// light returns the unit vector in direction (x, y, z).
func light(x, y, z float64) affine.Vec {
	v, ok := affine.Vec{X: x, Y: y, Z: z}.Normalize()
	if !ok {
		panic("zero light direction")
	}
	return v
}

// view returns a transformation which rotates the model around the given
// axes, scales it and moves the model origin to (cx, cy).
func view(scale, cx, cy float64, rot ...rotation) affine.Matrix {
	m := affine.Identity
	for _, r := range rot {
		m.Rotate(r.angle, r.axis)
	}
	if err := m.Scale(scale); err != nil {
		panic(err)
	}
	m.Move(cx, affine.X)
	m.Move(cy, affine.Y)
	return m
}

type rotation struct {
	angle float64
	axis  affine.Axis
}

// facing builds a strip whose normals all point towards the viewer.
func facing(pts ...affine.Point) render3d.StripGroup {
	g := render3d.StripGroup{Points: pts}
	for _, p := range pts {
		g.Normals = append(g.Normals, p.Add(affine.Vec{Z: 1}))
	}
	return g
}
