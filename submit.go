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

package render3d

import (
	"iter"

	"seehuhn.de/go/render3d/affine"
)

// vertex is a transformed strip vertex together with its unit normal.
type vertex struct {
	pos    ScreenPoint
	normal affine.Vec
}

// TransformAndAdd transforms the strip groups by m and draws every visible
// triangle into the frame buffer, lit by a directional light and colored
// with the packed RGBA color c.  The light direction must have unit length.
//
// Groups with unequal numbers of points and normal-targets are truncated to
// the shorter length.  Groups with fewer than three vertices draw nothing.
func (r *Renderer) TransformAndAdd(groups []StripGroup, m *affine.Matrix, light affine.Vec, c uint32) {
	r.visibleWindows(groups, m, func(w *[3]vertex) bool {
		r.addPolygon(*w, light, c)
		return true
	})
}

// Triangle is a visible triangle in screen space, together with the
// Gouraud brightness at each corner.
type Triangle struct {
	P          [3]ScreenPoint
	Brightness [3]float64
}

// Visible returns the triangles which TransformAndAdd would draw for the
// given strip groups, without touching the frame buffer.  The order
// of the corners within a triangle is unspecified.
func (r *Renderer) Visible(groups []StripGroup, m *affine.Matrix, light affine.Vec) iter.Seq[Triangle] {
	return func(yield func(Triangle) bool) {
		r.visibleWindows(groups, m, func(w *[3]vertex) bool {
			var normals [3]affine.Vec
			var t Triangle
			for i := range w {
				t.P[i] = w[i].pos
				normals[i] = w[i].normal
			}
			t.Brightness = r.findBrightnesses(&normals, light)
			return yield(t)
		})
	}
}

// visibleWindows walks the strips and calls yield for every triangle which
// survives culling, until yield returns false.
func (r *Renderer) visibleWindows(groups []StripGroup, m *affine.Matrix, yield func(*[3]vertex) bool) {
	for _, g := range groups {
		n := min(len(g.Points), len(g.Normals))
		if n < 3 {
			continue
		}

		// Sliding window over the strip.  The slot at i%3 is overwritten
		// by vertex i, so the window always holds the last three vertices.
		var window [3]vertex
		window[0] = transformVertex(g.Points[0], g.Normals[0], m)
		window[1] = transformVertex(g.Points[1], g.Normals[1], m)
		for i := 2; i < n; i++ {
			window[i%3] = transformVertex(g.Points[i], g.Normals[i], m)
			if r.inViewport(&window) && r.facesViewer(&window) {
				if !yield(&window) {
					return
				}
			}
		}
	}
}

// transformVertex maps a point and its normal-target into screen space and
// returns the point together with the unit normal.  Coincident points
// yield the zero normal, which removes the lighting contribution.
func transformVertex(p, normalTarget affine.Point, m *affine.Matrix) vertex {
	pos := m.Apply(p)
	target := m.Apply(normalTarget)
	normal, _ := affine.Between(pos, target).Normalize()
	return vertex{pos: ScreenPoint(pos), normal: normal}
}

// inViewport is a trivial-reject test: it reports false only if all three
// vertices lie beyond the same edge of the viewport.
func (r *Renderer) inViewport(w *[3]vertex) bool {
	clip := r.Clip()
	allLeft, allRight, allAbove, allBelow := true, true, true, true
	for i := range w {
		p := &w[i].pos
		allLeft = allLeft && p.X < clip.LLx
		allRight = allRight && p.X >= clip.URx
		allAbove = allAbove && p.Y < clip.LLy
		allBelow = allBelow && p.Y >= clip.URy
	}
	return !(allLeft || allRight || allAbove || allBelow)
}

// facesViewer reports whether at least one vertex normal has a Z component
// of at least BackFaceThreshold.
func (r *Renderer) facesViewer(w *[3]vertex) bool {
	for i := range w {
		if w[i].normal.Z >= r.BackFaceThreshold {
			return true
		}
	}
	return false
}
