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
	"image"
	"math"
)

// FrameBuffer holds the depth and color values of one frame.
// Both buffers are stored in row-major order.
type FrameBuffer struct {
	Width, Height int

	depth []float64 // larger is nearer, farDepth for empty pixels
	color []uint32  // packed RGBA, see Pack
}

func newFrameBuffer(width, height int) *FrameBuffer {
	width = max(width, 0)
	height = max(height, 0)
	return &FrameBuffer{
		Width:  width,
		Height: height,
		depth:  make([]float64, width*height),
		color:  make([]uint32, width*height),
	}
}

// Depth returns the stored depth at (x, y).
func (fb *FrameBuffer) Depth(x, y int) float64 {
	return fb.depth[fb.index(x, y)]
}

// Color returns the packed RGBA color at (x, y).
func (fb *FrameBuffer) Color(x, y int) uint32 {
	return fb.color[fb.index(x, y)]
}

// IsEmpty reports whether no triangle has been drawn at (x, y) since the
// last clear.
func (fb *FrameBuffer) IsEmpty(x, y int) bool {
	return fb.Depth(x, y) == farDepth
}

func (fb *FrameBuffer) index(x, y int) int {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		panic("render3d: pixel outside the frame buffer")
	}
	return y*fb.Width + x
}

func (fb *FrameBuffer) clear(background uint32) {
	// copy-doubling is faster than a plain loop for large buffers
	n := len(fb.depth)
	if n == 0 {
		return
	}
	fb.depth[0] = farDepth
	fb.color[0] = background
	for i := 1; i < n; i *= 2 {
		copy(fb.depth[i:], fb.depth[:i])
		copy(fb.color[i:], fb.color[:i])
	}
}

func (fb *FrameBuffer) flush(s Surface) {
	for y := range fb.Height {
		row := fb.color[y*fb.Width : (y+1)*fb.Width]
		for x, c := range row {
			r, g, b, a := Unpack(c)
			s.PutPixel(x, y, r, g, b, a)
		}
	}
}

// Surface is a display surface which receives the finished frame.
type Surface interface {
	PutPixel(x, y int, r, g, b, a uint8)
}

// ImageSurface adapts an *image.RGBA to the Surface interface.
// Pixels outside the image bounds are ignored.
type ImageSurface struct {
	Img *image.RGBA
}

// NewImageSurface allocates an RGBA image of the given size.
func NewImageSurface(width, height int) *ImageSurface {
	return &ImageSurface{Img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// PutPixel implements the Surface interface.
func (s *ImageSurface) PutPixel(x, y int, r, g, b, a uint8) {
	p := image.Point{X: x, Y: y}.Add(s.Img.Rect.Min)
	if !p.In(s.Img.Rect) {
		return
	}
	i := s.Img.PixOffset(p.X, p.Y)
	pix := s.Img.Pix[i : i+4 : i+4]
	pix[0], pix[1], pix[2], pix[3] = r, g, b, a
}

// Pack combines four 8-bit channels into a 32-bit color value, with red in
// the most significant byte and alpha in the least significant byte.
func Pack(r, g, b, a uint8) uint32 {
	return uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | uint32(a)
}

// Unpack splits a 32-bit color value into its channels.
func Unpack(c uint32) (r, g, b, a uint8) {
	return uint8(c >> 24), uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// shade scales the red, green and blue channels of c by br and keeps the
// alpha channel unchanged.  Channels saturate at 0 and 255.
func shade(c uint32, br float64) uint32 {
	r, g, b, a := Unpack(c)
	return Pack(scaleChannel(r, br), scaleChannel(g, br), scaleChannel(b, br), a)
}

func scaleChannel(v uint8, br float64) uint8 {
	x := math.Round(float64(v) * br)
	if !(x > 0) { // also catches NaN
		return 0
	}
	if x >= 255 {
		return 255
	}
	return uint8(x)
}

// farDepth marks pixels which have not been drawn since the last clear.
var farDepth = math.Inf(-1)
