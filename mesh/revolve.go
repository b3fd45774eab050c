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

// Package mesh generates the strip groups for the muscle and carcass
// model.
//
// All shapes are surfaces of revolution around the X axis.  A shape is
// described by a profile in the (x, r) half plane, where r is the distance
// from the axis, and is swept around the axis in fixed angular steps.
package mesh

import (
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/render3d"
	"seehuhn.de/go/render3d/affine"
)

// ProfilePoint is a point of a profile curve, together with the outward
// unit normal of the profile at this point.  Pos.X is the position along
// the axis and Pos.Y the distance from the axis.
type ProfilePoint struct {
	Pos    vec.Vec2
	Normal vec.Vec2
}

// Revolve sweeps the profile segment from a to b around the X axis.  The
// resulting strip alternates between the images of a and b and repeats its
// first two vertices at the end, so that the surface is closed.  The step
// is given in degrees.
func Revolve(a, b ProfilePoint, step int) render3d.StripGroup {
	if step <= 0 {
		return render3d.StripGroup{}
	}
	n := (fullCircle + step - 1) / step

	g := render3d.StripGroup{
		Points:  make([]affine.Point, 0, 2*n+2),
		Normals: make([]affine.Point, 0, 2*n+2),
	}
	for k := range n {
		angle := float64(k*step) * math.Pi / 180
		s, c := math.Sincos(angle)
		for _, q := range [2]*ProfilePoint{&a, &b} {
			p := turn(q.Pos, s, c)
			d := turn(q.Normal, s, c)
			g.Points = append(g.Points, p)
			g.Normals = append(g.Normals, p.Add(affine.Vec(d)))
		}
	}
	g.Points = append(g.Points, g.Points[0], g.Points[1])
	g.Normals = append(g.Normals, g.Normals[0], g.Normals[1])
	return g
}

// RevolveProfile sweeps every segment of a profile polyline.
func RevolveProfile(profile []ProfilePoint, step int) []render3d.StripGroup {
	var res []render3d.StripGroup
	for i := 1; i < len(profile); i++ {
		g := Revolve(profile[i-1], profile[i], step)
		if len(g.Points) > 0 {
			res = append(res, g)
		}
	}
	return res
}

// turn maps a profile coordinate into 3D space, rotated around the X axis
// by the angle with sine s and cosine c.
func turn(v vec.Vec2, s, c float64) affine.Point {
	return affine.Point{X: v.X, Y: v.Y * c, Z: v.Y * s}
}

// Sphere returns the strips of a sphere with the given center on the X
// axis.  The profile is sampled at parts points between the two poles.
func Sphere(center, radius float64, parts, step int) []render3d.StripGroup {
	if parts < 2 || !(radius > 0) {
		return nil
	}
	c := vec.Vec2{X: center}
	profile := make([]ProfilePoint, parts)
	dx := 2 * radius / float64(parts-1)
	for i := range profile {
		x := -radius + dx*float64(i)
		if i == parts-1 {
			x = radius
		}
		d := vec.Vec2{X: x, Y: math.Sqrt(max(0, radius*radius-x*x))}
		profile[i] = ProfilePoint{
			Pos:    c.Add(d),
			Normal: d.Mul(1 / radius),
		}
	}
	return RevolveProfile(profile, step)
}

// Tube returns the strip of an open cylinder around the X axis, from x0
// to x1.
func Tube(x0, x1, radius float64, step int) render3d.StripGroup {
	up := vec.Vec2{X: 0, Y: 1}
	return Revolve(
		ProfilePoint{Pos: vec.Vec2{X: x0, Y: radius}, Normal: up},
		ProfilePoint{Pos: vec.Vec2{X: x1, Y: radius}, Normal: up},
		step)
}

// Transform applies m to every point and normal-target of the groups, in
// place.
func Transform(groups []render3d.StripGroup, m *affine.Matrix) {
	for _, g := range groups {
		for i, p := range g.Points {
			g.Points[i] = m.Apply(p)
		}
		for i, p := range g.Normals {
			g.Normals[i] = m.Apply(p)
		}
	}
}

const fullCircle = 360
