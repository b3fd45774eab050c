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

package mesh

import (
	"errors"
	"math"

	"seehuhn.de/go/render3d"
	"seehuhn.de/go/render3d/affine"
)

// Bone describes one bone of the carcass by the positions of the muscle
// attachment point and the joint along the bone.
type Bone struct {
	// Outer is the length of the bone part on the far side of the muscle
	// attachment.
	Outer float64

	// Inner is the distance between the muscle attachment and the joint.
	Inner float64
}

// Carcass is a pair of bones connected by a joint.  The muscle spans from
// the attachment point of the first bone, at the origin, to the attachment
// point of the second bone at (length, 0, 0).  The joint lies below the X
// axis, where the distances to the two attachment points match the inner
// bone lengths.
type Carcass struct {
	first, second Bone
	thickness     float64
	length        float64
}

var errInvalidCarcass = errors.New("mesh: invalid carcass geometry")

// NewCarcass creates a carcass for a muscle of the given length.
func NewCarcass(first, second Bone, thickness, length float64) (*Carcass, error) {
	for _, v := range []float64{first.Outer, first.Inner, second.Outer, second.Inner, thickness} {
		if !(v > 0) || math.IsInf(v, 0) {
			return nil, errInvalidCarcass
		}
	}
	c := &Carcass{
		first:     first,
		second:    second,
		thickness: thickness,
	}
	if !c.validLength(length) {
		return nil, errInvalidCarcass
	}
	c.length = length
	return c, nil
}

// Length returns the current distance between the attachment points.
func (c *Carcass) Length() float64 {
	return c.length
}

// CheckDiff reports whether the distance between the attachment points
// can change by diff.
func (c *Carcass) CheckDiff(diff float64) bool {
	return c.validLength(c.length + diff)
}

func (c *Carcass) validLength(l float64) bool {
	a, b := c.first.Inner, c.second.Inner
	return l < a+b && l > math.Sqrt(math.Abs(a*a-b*b))
}

// Deform changes the distance between the attachment points by diff.  If
// the resulting pose is impossible, the carcass is left unchanged and
// false is returned.
func (c *Carcass) Deform(diff float64) bool {
	if !c.CheckDiff(diff) {
		return false
	}
	c.length += diff
	return true
}

// Joint returns the position of the joint.
func (c *Carcass) Joint() affine.Point {
	alpha := angleFromTriangle(c.second.Inner, c.first.Inner, c.length)
	s, co := math.Sincos(alpha)
	return affine.Point{X: c.first.Inner * co, Y: -c.first.Inner * s}
}

// Groups returns the strips of both bones, each a tube with rounded ends.
func (c *Carcass) Groups(step int) []render3d.StripGroup {
	a, b := c.first.Inner, c.second.Inner

	// First bone: attachment at the origin, turned down towards the joint.
	l1 := c.first.Outer + c.first.Inner
	first := []render3d.StripGroup{Tube(0, l1, c.thickness, step)}
	first = append(first, Sphere(0, c.thickness, SphereParts, step)...)
	first = append(first, Sphere(l1, c.thickness, SphereParts, step)...)
	m := affine.Identity
	m.Move(-c.first.Outer, affine.X)
	m.Rotate(-angleFromTriangle(b, a, c.length), affine.Z)
	Transform(first, &m)

	// Second bone: starts at the joint and runs up through the second
	// attachment point.
	l2 := c.second.Inner + c.second.Outer
	second := []render3d.StripGroup{Tube(0, l2, c.thickness, step)}
	second = append(second, Sphere(l2, c.thickness, SphereParts, step)...)
	m = affine.Identity
	m.Move(-c.second.Inner, affine.X)
	m.Rotate(angleFromTriangle(a, b, c.length), affine.Z)
	m.Move(c.length, affine.X)
	Transform(second, &m)

	return append(first, second...)
}

// angleFromTriangle returns the angle opposite to side a in a triangle
// with sides a, b and c.
func angleFromTriangle(a, b, c float64) float64 {
	cos := (b*b + c*c - a*a) / (2 * b * c)
	return math.Acos(max(-1, min(1, cos)))
}
