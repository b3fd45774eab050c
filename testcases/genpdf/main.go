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

// Command genpdf generates reference previews for the rendering tests.
// Each scene is drawn as a flat shaded grey PDF in painter's order and
// then converted to PNG using Ghostscript.
package main

import (
	"fmt"
	"log"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"
	"seehuhn.de/go/render3d"
	"seehuhn.de/go/render3d/testcases"
)

const refDir = "testdata/reference"

func main() {
	if err := os.MkdirAll(refDir, 0755); err != nil {
		log.Fatal(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, sc := range testcases.All[category] {
			name := category + "_" + sc.Name
			pdfPath := filepath.Join(refDir, name+".pdf")
			pngPath := filepath.Join(refDir, name+".png")

			if err := generatePDF(sc, pdfPath); err != nil {
				log.Fatal(fmt.Errorf("%s: %w", name, err))
			}
			if err := renderPNG(pdfPath, pngPath); err != nil {
				log.Fatal(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

// shaded is a visible triangle with its flat grey level.
type shaded struct {
	tri   render3d.Triangle
	depth float64
	gray  float64
}

func generatePDF(sc testcases.Scene, pdfPath string) error {
	paper := &pdf.Rectangle{
		URx: float64(sc.Width),
		URy: float64(sc.Height),
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	r := render3d.NewRenderer(sc.Width, sc.Height)
	page.SetFillColor(color.DeviceGray(luminance(r.Background, 1)))
	page.Rectangle(0, 0, float64(sc.Width), float64(sc.Height))
	page.Fill()

	// PDF origin is bottom-left; screen space has Y pointing down.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(sc.Height)})

	var tris []shaded
	m := sc.Transform()
	for _, mesh := range sc.Meshes {
		for t := range r.Visible(mesh.Groups, &m, sc.Light) {
			br := (t.Brightness[0] + t.Brightness[1] + t.Brightness[2]) / 3
			tris = append(tris, shaded{
				tri:   t,
				depth: (t.P[0].Z + t.P[1].Z + t.P[2].Z) / 3,
				gray:  luminance(mesh.Color, br),
			})
		}
	}

	// larger Z is closer to the viewer, so those are painted last
	slices.SortStableFunc(tris, func(a, b shaded) int {
		switch {
		case a.depth < b.depth:
			return -1
		case a.depth > b.depth:
			return 1
		default:
			return 0
		}
	})

	for _, s := range tris {
		p := s.tri.P
		page.SetFillColor(color.DeviceGray(s.gray))
		page.MoveTo(p[0].X, p[0].Y)
		page.LineTo(p[1].X, p[1].Y)
		page.LineTo(p[2].X, p[2].Y)
		page.ClosePath()
		page.Fill()
	}

	return page.Close()
}

// luminance converts a packed color, scaled by the brightness br, into a
// grey level in [0, 1].
func luminance(c uint32, br float64) float64 {
	r, g, b, _ := render3d.Unpack(c)
	y := (0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)) / 255 * br
	return max(0, min(1, y))
}

func renderPNG(pdfPath, pngPath string) error {
	// -sDEVICE=pnggray: 8-bit grayscale
	// -r72: 72 DPI (1 point = 1 pixel)
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r72",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
