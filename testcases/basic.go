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
	"math"

	"seehuhn.de/go/render3d"
	"seehuhn.de/go/render3d/affine"
)

var basicScenes = []Scene{
	{
		Name:   "triangle",
		Width:  64,
		Height: 64,
		Meshes: []Mesh{{
			Groups: []render3d.StripGroup{facing(
				affine.Point{X: 10, Y: 50}, affine.Point{X: 32, Y: 10}, affine.Point{X: 54, Y: 50},
			)},
			Color: 0xFF0000FF,
		}},
		Light: light(0, 0, 1),
	},
	{
		Name:   "quad_strip",
		Width:  64,
		Height: 64,
		Meshes: []Mesh{{
			Groups: []render3d.StripGroup{grid(10, 10, 44, 44, 4)},
			Color:  0x3080FFFF,
		}},
		Light: light(0, 0, 1),
	},
	{
		// two quads cutting through each other
		Name:   "intersecting",
		Width:  96,
		Height: 64,
		Meshes: []Mesh{
			{
				Groups: []render3d.StripGroup{slanted(10, 10, 70, 54, -10, 10)},
				Color:  0xFF8000FF,
			},
			{
				Groups: []render3d.StripGroup{slanted(26, 10, 86, 54, 10, -10)},
				Color:  0x00C0FFFF,
			},
		},
		Light: light(0, 0, 1),
	},
	{
		Name:   "partly_offscreen",
		Width:  64,
		Height: 64,
		Meshes: []Mesh{{
			Groups: []render3d.StripGroup{facing(
				affine.Point{X: -40, Y: -20}, affine.Point{X: 50, Y: -30}, affine.Point{X: 20, Y: 40},
			)},
			Color: 0x40FF40FF,
		}},
		Light: light(0, 0, 1),
	},
}

// grid builds a single strip which zig-zags across a rectangle, forming
// n quads.
func grid(x0, y0, x1, y1 float64, n int) render3d.StripGroup {
	var pts []affine.Point
	for i := range n + 1 {
		x := x0 + (x1-x0)*float64(i)/float64(n)
		pts = append(pts, affine.Point{X: x, Y: y0}, affine.Point{X: x, Y: y1})
	}
	return facing(pts...)
}

// slanted builds a quad whose depth changes linearly from zLeft at x0 to
// zRight at x1.  The normals are perpendicular to the quad.
func slanted(x0, y0, x1, y1, zLeft, zRight float64) render3d.StripGroup {
	pts := []affine.Point{
		{X: x0, Y: y0, Z: zLeft},
		{X: x0, Y: y1, Z: zLeft},
		{X: x1, Y: y0, Z: zRight},
		{X: x1, Y: y1, Z: zRight},
	}
	slope := (zRight - zLeft) / (x1 - x0)
	n := affine.Vec{X: -slope, Z: 1}.Mul(1 / math.Hypot(slope, 1))
	g := render3d.StripGroup{Points: pts}
	for _, p := range pts {
		g.Normals = append(g.Normals, p.Add(n))
	}
	return g
}
