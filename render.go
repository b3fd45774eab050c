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

// Package render3d implements a software renderer for lit triangle strips.
//
// Geometry is submitted as strip groups of points paired with normal-target
// points.  The renderer transforms every vertex with an affine matrix,
// computes a per-vertex brightness from a directional light, discards
// triangles which are trivially off-screen or facing away, and fills the
// remaining triangles scanline by scanline into a depth-buffered RGBA
// frame buffer.  There is no perspective: screen X and Y are the
// transformed X and Y, and larger Z is nearer to the viewer.
//
// A frame is drawn by calling Clear, then TransformAndAdd once per mesh,
// then Flush.
package render3d

//go:generate go run ./testcases/export

import (
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/render3d/affine"
)

// ScreenPoint is a transformed vertex position.  X and Y are pixel
// coordinates, Z is the depth with larger values being nearer.
type ScreenPoint affine.Point

// StripGroup is a triangle strip.  Normals[i] is a normal-target point for
// Points[i]: the surface normal at Points[i] points from Points[i] towards
// Normals[i].  Every three consecutive vertices form a triangle.
type StripGroup struct {
	Points  []affine.Point
	Normals []affine.Point
}

// Renderer draws strip groups into a frame buffer which it owns.
//
// A Renderer is not safe for concurrent use.
type Renderer struct {
	// Background is the packed RGBA color written by Clear.
	Background uint32

	// ZeroBrightness is the brightness of a surface perpendicular to the
	// light direction.
	ZeroBrightness float64

	// BrightnessRange scales the dot product between the unit normal and
	// the light direction.  Brightness values outside [0, 1] are allowed;
	// the color channels saturate when packed.
	BrightnessRange float64

	// BackFaceThreshold is the smallest normal Z component for which a
	// vertex counts as facing the viewer.  A triangle is drawn if at least
	// one of its vertices faces the viewer.  Typically slightly negative.
	BackFaceThreshold float64

	fb *FrameBuffer
}

// NewRenderer returns a Renderer with a cleared width×height frame buffer
// and default values for the lighting parameters.
func NewRenderer(width, height int) *Renderer {
	r := &Renderer{
		Background:        DefaultBackground,
		ZeroBrightness:    DefaultZeroBrightness,
		BrightnessRange:   DefaultBrightnessRange,
		BackFaceThreshold: DefaultBackFaceThreshold,

		fb: newFrameBuffer(width, height),
	}
	r.Clear()
	return r
}

// FrameBuffer gives access to the depth and color buffers.
func (r *Renderer) FrameBuffer() *FrameBuffer {
	return r.fb
}

// Clip returns the viewport in device coordinates.
func (r *Renderer) Clip() rect.Rect {
	return rect.Rect{
		LLx: 0,
		LLy: 0,
		URx: float64(r.fb.Width),
		URy: float64(r.fb.Height),
	}
}

// Clear resets the frame buffer for a new frame: every depth value is set
// to "infinitely far" and every pixel to the background color.
func (r *Renderer) Clear() {
	r.fb.clear(r.Background)
}

// Flush copies the color buffer to the display surface s.
func (r *Renderer) Flush(s Surface) {
	r.fb.flush(s)
}

// Default values for the renderer parameters.
const (
	// DefaultWidth and DefaultHeight are the viewport size used by the
	// viewer.
	DefaultWidth  = 800
	DefaultHeight = 600

	// DefaultBackground is opaque black.
	DefaultBackground uint32 = 0x000000FF

	// DefaultZeroBrightness and DefaultBrightnessRange map a normal facing
	// the light to brightness 1 and a normal facing away to -0.2.
	DefaultZeroBrightness  = 0.4
	DefaultBrightnessRange = 0.6

	// DefaultBackFaceThreshold accepts vertices whose normals point
	// slightly away from the viewer, so that silhouettes are not eroded.
	DefaultBackFaceThreshold = -0.1
)
