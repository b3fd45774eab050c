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

// Package affine implements the 3D points, directions and 4×4 homogeneous
// matrices used by the renderer.
//
// Points are row vectors: applying a matrix computes p·M, so a transform
// composed later acts after the ones composed earlier.
package affine

import "math"

// Point is a position in 3D space.  The coordinate space (model, world or
// screen) is implied by the stage of the pipeline which holds the value.
type Point struct {
	X, Y, Z float64
}

// Vec is a direction in 3D space.
type Vec struct {
	X, Y, Z float64
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Vec {
	return Vec{X: p.X - q.X, Y: p.Y - q.Y, Z: p.Z - q.Z}
}

// Add returns the point p translated by v.
func (p Point) Add(v Vec) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y, Z: p.Z + v.Z}
}

// Between returns the vector from `from` to `to`.
func Between(from, to Point) Vec {
	return to.Sub(from)
}

// Add returns v+w.
func (v Vec) Add(w Vec) Vec {
	return Vec{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z}
}

// Mul returns v scaled by f.
func (v Vec) Mul(f float64) Vec {
	return Vec{X: v.X * f, Y: v.Y * f, Z: v.Z * f}
}

// Dot returns the scalar product of v and w.
func (v Vec) Dot(w Vec) float64 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Length returns the Euclidean length of v.
func (v Vec) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalize returns v scaled to unit length.  If v is too short to have a
// meaningful direction, the zero vector and false are returned.
func (v Vec) Normalize() (Vec, bool) {
	l := v.Length()
	if !(l > zeroLengthThreshold) || math.IsInf(l, 0) {
		return Vec{}, false
	}
	return Vec{X: v.X / l, Y: v.Y / l, Z: v.Z / l}, true
}

// zeroLengthThreshold is the minimum length of a vector which can be
// normalized.
const zeroLengthThreshold = 1e-12
