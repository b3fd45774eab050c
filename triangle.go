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
	"math"

	"seehuhn.de/go/render3d/affine"
)

// intYPoint is a screen-space vertex whose Y coordinate has been rounded to
// a scanline.  The scanline is kept as an integral float64, so vertices far
// outside the viewport keep their exact position; only clipped row and
// column bounds are ever converted to int.
type intYPoint struct {
	x, y, z float64
}

// section is one edge of a Y-monotone trapezoid.  x, z and br hold the
// values at the current scanline and are advanced by the step values once
// per scanline.
type section struct {
	yStart, yEnd float64 // integral scanlines

	x, z, br             float64
	xStep, zStep, brStep float64
}

func newSection(from, to *intYPoint, brFrom, brTo float64) section {
	s := section{
		yStart: from.y,
		yEnd:   to.y,
		x:      from.x,
		z:      from.z,
		br:     brFrom,
	}
	if dy := to.y - from.y; dy != 0 {
		s.xStep = (to.x - from.x) / dy
		s.zStep = (to.z - from.z) / dy
		s.brStep = (brTo - brFrom) / dy
	}
	return s
}

// advance moves the section down by n scanlines.
func (s *section) advance(n float64) {
	s.x += n * s.xStep
	s.z += n * s.zStep
	s.br += n * s.brStep
}

// addPolygon rasterizes one transformed triangle.
func (r *Renderer) addPolygon(w [3]vertex, light affine.Vec, c uint32) {
	var pts [3]intYPoint
	var normals [3]affine.Vec
	for i := range w {
		p, ok := quantize(w[i].pos)
		if !ok {
			return
		}
		pts[i] = p
		normals[i] = w[i].normal
	}

	sortByY(&pts, &normals)
	br := r.findBrightnesses(&normals, light)
	sections := divideOnSections(&pts, &br)
	r.processSections(&sections, c)
}

// DrawTriangle rasterizes a triangle which is already in screen space,
// using the given vertex brightnesses instead of a light source.  No
// culling is applied.
func (r *Renderer) DrawTriangle(p [3]ScreenPoint, br [3]float64, c uint32) {
	var pts [3]intYPoint
	for i := range p {
		q, ok := quantize(p[i])
		if !ok {
			return
		}
		pts[i] = q
	}
	sortByY(&pts, &br)
	sections := divideOnSections(&pts, &br)
	r.processSections(&sections, c)
}

// quantize rounds the Y coordinate of p to a scanline.  Vertices with a
// NaN or infinite coordinate are rejected.
func quantize(p ScreenPoint) (intYPoint, bool) {
	if !isFinite(p.X) || !isFinite(p.Y) || !isFinite(p.Z) {
		return intYPoint{}, false
	}
	return intYPoint{x: p.X, y: math.Round(p.Y), z: p.Z}, true
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// sortByY orders the vertices by increasing Y, and vertices on the same
// scanline by increasing X.  The per-vertex attributes are permuted in the
// same way.
func sortByY[T any](pts *[3]intYPoint, attr *[3]T) {
	// three compare-exchange steps form a sorting network for 3 elements
	for _, pair := range [3][2]int{{0, 2}, {0, 1}, {1, 2}} {
		i, j := pair[0], pair[1]
		a, b := &pts[i], &pts[j]
		if a.y > b.y || a.y == b.y && a.x > b.x {
			pts[i], pts[j] = pts[j], pts[i]
			attr[i], attr[j] = attr[j], attr[i]
		}
	}
}

// findBrightnesses computes the Gouraud brightness of each vertex.
func (r *Renderer) findBrightnesses(normals *[3]affine.Vec, light affine.Vec) [3]float64 {
	var br [3]float64
	for i := range normals {
		br[i] = r.ZeroBrightness + r.BrightnessRange*normals[i].Dot(light)
	}
	return br
}

// divideOnSections splits a sorted triangle at the scanline of its middle
// vertex.  The result holds two (left, right) pairs of sections: the upper
// trapezoid followed by the lower one.
func divideOnSections(pts *[3]intYPoint, br *[3]float64) [4]section {
	p0, p1, p2 := &pts[0], &pts[1], &pts[2]

	if p0.y == p2.y {
		// All vertices share one scanline.  The first pair spans from p0 to
		// p2, the second pair is mirrored and is skipped unless p0.x == p2.x.
		return [4]section{
			newSection(p0, p2, br[0], br[2]),
			newSection(p2, p0, br[2], br[0]),
			newSection(p2, p0, br[2], br[0]),
			newSection(p0, p2, br[0], br[2]),
		}
	}

	t := (p1.y - p0.y) / (p2.y - p0.y)
	mid := findMidpoint(p0, p2, p1.y)
	midBr := br[0] + (br[2]-br[0])*t

	if mid.x > p1.x {
		return [4]section{
			newSection(p0, p1, br[0], br[1]),
			newSection(p0, &mid, br[0], midBr),
			newSection(p1, p2, br[1], br[2]),
			newSection(&mid, p2, midBr, br[2]),
		}
	}
	return [4]section{
		newSection(p0, &mid, br[0], midBr),
		newSection(p0, p1, br[0], br[1]),
		newSection(&mid, p2, midBr, br[2]),
		newSection(p1, p2, br[1], br[2]),
	}
}

// findMidpoint returns the point on the edge from lo to hi at scanline y.
func findMidpoint(lo, hi *intYPoint, y float64) intYPoint {
	t := 1.0
	if hi.y != lo.y {
		t = (y - lo.y) / (hi.y - lo.y)
	}
	return intYPoint{
		x: lo.x + (hi.x-lo.x)*t,
		y: y,
		z: lo.z + (hi.z-lo.z)*t,
	}
}

// processSections fills the two trapezoids described by sections, row by
// row, testing and updating the depth buffer.
func (r *Renderer) processSections(sections *[4]section, c uint32) {
	fb := r.fb
	for k := 0; k < len(sections); k += 2 {
		left, right := &sections[k], &sections[k+1]
		if left.x > right.x {
			continue
		}

		yStart := left.yStart
		if yStart < 0 {
			left.advance(-yStart)
			right.advance(-yStart)
			yStart = 0
		}
		yEnd := min(left.yEnd, float64(fb.Height-1))
		if yStart > yEnd {
			continue
		}
		for y := int(yStart); y <= int(yEnd); y++ {
			fb.fillSpan(y, left, right, c)
			left.advance(1)
			right.advance(1)
		}
	}
}

// fillSpan draws one scanline from the current position of left to the
// current position of right.  The caller guarantees 0 <= y < fb.Height.
func (fb *FrameBuffer) fillSpan(y int, left, right *section, c uint32) {
	xFrom := math.Round(left.x)
	xTo := math.Round(right.x)

	z, br := left.z, left.br
	var zStep, brStep float64
	if n := xTo - xFrom; n > 0 {
		zStep = (right.z - z) / n
		brStep = (right.br - br) / n
	}

	if xFrom < 0 {
		z -= xFrom * zStep
		br -= xFrom * brStep
		xFrom = 0
	}
	xLast := min(xTo, float64(fb.Width-1))
	if !(xFrom <= xLast) {
		return
	}
	x, xEnd := int(xFrom), int(xLast)

	// Both rows have length fb.Width and 0 <= x <= xEnd < fb.Width, so the
	// indexing below stays inside the current scanline.
	depthRow := fb.depth[y*fb.Width : (y+1)*fb.Width]
	colorRow := fb.color[y*fb.Width : (y+1)*fb.Width]
	for ; x <= xEnd; x++ {
		if z > depthRow[x] {
			depthRow[x] = z
			colorRow[x] = shade(c, br)
		}
		z += zStep
		br += brStep
	}
}
