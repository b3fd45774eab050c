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

// Command muscleview shows the muscle model in a window.  The model can be
// turned, moved, scaled, shortened and lengthened with the keyboard:
//
//	H/L  rotate about the vertical axis
//	J/K  rotate about the horizontal axis
//	F/T  rotate in the screen plane
//	A/D  move left/right
//	W/S  move up/down
//	Q/E  move towards/away from the viewer
//	P/M  zoom in/out
//	X/V  shorten/lengthen the muscle
//	N/B  select the next/previous muscle sphere
//	G/C  grow/shrink the selected sphere
//	I/R  insert a sphere after the selected one/remove the selected sphere
package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"seehuhn.de/go/render3d"
	"seehuhn.de/go/render3d/mesh"
	"seehuhn.de/go/render3d/view"
)

var keys = map[ebiten.Key]rune{
	ebiten.KeyH: 'h', ebiten.KeyL: 'l',
	ebiten.KeyJ: 'j', ebiten.KeyK: 'k',
	ebiten.KeyF: 'f', ebiten.KeyT: 't',
	ebiten.KeyA: 'a', ebiten.KeyD: 'd',
	ebiten.KeyW: 'w', ebiten.KeyS: 's',
	ebiten.KeyQ: 'q', ebiten.KeyE: 'e',
	ebiten.KeyP: 'p', ebiten.KeyM: 'm',
	ebiten.KeyX: 'x', ebiten.KeyV: 'v',
	ebiten.KeyN: 'n', ebiten.KeyB: 'b',
	ebiten.KeyG: 'g', ebiten.KeyC: 'c',
	ebiten.KeyI: 'i', ebiten.KeyR: 'r',
}

func main() {
	configFile := flag.String("config", "", "model description (JSON)")
	width := flag.Int("width", render3d.DefaultWidth, "window width in pixels")
	height := flag.Int("height", render3d.DefaultHeight, "window height in pixels")
	scale := flag.Float64("scale", 30, "initial pixels per model unit")
	flag.Parse()

	cam, err := view.NewCamera(*width, *height, *scale)
	if err != nil {
		log.Fatal(err)
	}

	cfg := mesh.DefaultConfig()
	if *configFile != "" {
		cfg, err = mesh.LoadConfig(*configFile)
		if err != nil {
			log.Fatal(err)
		}
	}
	model, err := mesh.NewModel(cfg)
	if err != nil {
		log.Fatal(err)
	}

	g := &game{
		r:     render3d.NewRenderer(*width, *height),
		ctl:   view.NewController(model, cam),
		surf:  render3d.NewImageSurface(*width, *height),
		dirty: true,
	}

	ebiten.SetWindowTitle("muscleview")
	ebiten.SetWindowSize(*width, *height)
	ebiten.SetTPS(30)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

type game struct {
	r     *render3d.Renderer
	ctl   *view.Controller
	surf  *render3d.ImageSurface
	fbImg *ebiten.Image
	dirty bool
}

func (g *game) Update() error {
	for key, r := range keys {
		if !inpututil.IsKeyJustPressed(key) {
			continue
		}
		a := view.ActionForKey(r)
		changed, err := g.ctl.Apply(a)
		switch {
		case err != nil:
			log.Printf("%s: %v", a, err)
		case changed:
			g.dirty = true
			if a == view.SelectNext || a == view.SelectPrevious {
				log.Printf("sphere %d selected", g.ctl.Selected)
			}
		default:
			log.Printf("%s refused at length %.3g", a, g.ctl.Model.Length())
		}
	}

	if !g.dirty {
		return nil
	}
	if err := g.ctl.Render(g.r); err != nil {
		return err
	}
	g.r.Flush(g.surf)
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	fb := g.r.FrameBuffer()
	if g.fbImg == nil {
		g.fbImg = ebiten.NewImage(fb.Width, fb.Height)
	}
	if g.dirty {
		g.fbImg.WritePixels(g.surf.Img.Pix)
		g.dirty = false
	}
	screen.DrawImage(g.fbImg, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	fb := g.r.FrameBuffer()
	return fb.Width, fb.Height
}
