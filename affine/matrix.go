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

package affine

import (
	"errors"
	"math"
)

// Axis selects one of the coordinate axes.
type Axis int

// The coordinate axes.  The values double as column indices into a Matrix.
const (
	X Axis = iota
	Y
	Z
)

func (a Axis) String() string {
	switch a {
	case X:
		return "X"
	case Y:
		return "Y"
	case Z:
		return "Z"
	default:
		return "Axis(?)"
	}
}

// Matrix is a 4×4 homogeneous transformation matrix.  Points are treated
// as row vectors (x, y, z, 1); the translation lives in the last row.
type Matrix [4][4]float64

// Identity is the neutral transformation.
var Identity = Matrix{
	{1, 0, 0, 0},
	{0, 1, 0, 0},
	{0, 0, 1, 0},
	{0, 0, 0, 1},
}

// ErrDegenerateScale is returned by Matrix.Scale for factors which would
// collapse the transformation.
var ErrDegenerateScale = errors.New("affine: degenerate scale factor")

// Mul returns the product m·n.  Applying the result to a point is the same
// as applying m first and then n.
func (m Matrix) Mul(n Matrix) Matrix {
	var res Matrix
	for i := range 4 {
		for j := range 4 {
			var s float64
			for k := range 4 {
				s += m[i][k] * n[k][j]
			}
			res[i][j] = s
		}
	}
	return res
}

// Apply transforms the point p by m, using an implicit homogeneous
// coordinate w=1.
func (m Matrix) Apply(p Point) Point {
	return Point{
		X: p.X*m[0][0] + p.Y*m[1][0] + p.Z*m[2][0] + m[3][0],
		Y: p.X*m[0][1] + p.Y*m[1][1] + p.Z*m[2][1] + m[3][1],
		Z: p.X*m[0][2] + p.Y*m[1][2] + p.Z*m[2][2] + m[3][2],
	}
}

// Move translates by delta along the given axis, after the
// transformations already contained in m.
func (m *Matrix) Move(delta float64, axis Axis) {
	m[3][axis] += delta
}

// Rotate rotates by angle (in radians) around the given axis, after the
// transformations already contained in m.  Positive angles turn X towards
// Y, Y towards Z and Z towards X respectively.
func (m *Matrix) Rotate(angle float64, axis Axis) {
	*m = m.Mul(Rotation(angle, axis))
}

// RotateAround rotates by angle around the line through center which is
// parallel to the given axis.
func (m *Matrix) RotateAround(angle float64, axis Axis, center Point) {
	m.Move(-center.X, X)
	m.Move(-center.Y, Y)
	m.Move(-center.Z, Z)
	m.Rotate(angle, axis)
	m.Move(center.X, X)
	m.Move(center.Y, Y)
	m.Move(center.Z, Z)
}

// Scale multiplies the linear part of m by factor.  The translation is
// not affected, so the scaling acts before the transformations already
// contained in m.  Zero and non-finite factors are rejected with
// ErrDegenerateScale and leave m unchanged.
func (m *Matrix) Scale(factor float64) error {
	if factor == 0 || math.IsNaN(factor) || math.IsInf(factor, 0) {
		return ErrDegenerateScale
	}
	for i := range 3 {
		for j := range 3 {
			m[i][j] *= factor
		}
	}
	return nil
}

// Rotation returns the matrix for a rotation by angle (in radians) around
// the given axis.
func Rotation(angle float64, axis Axis) Matrix {
	s, c := math.Sincos(angle)
	res := Identity
	switch axis {
	case X:
		res[1][1], res[1][2] = c, s
		res[2][1], res[2][2] = -s, c
	case Y:
		res[0][0], res[0][2] = c, -s
		res[2][0], res[2][2] = s, c
	case Z:
		res[0][0], res[0][1] = c, s
		res[1][0], res[1][1] = -s, c
	}
	return res
}

// Translation returns the matrix for a translation by v.
func Translation(v Vec) Matrix {
	res := Identity
	res[3][0], res[3][1], res[3][2] = v.X, v.Y, v.Z
	return res
}
