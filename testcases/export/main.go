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

// Command export writes the test scenes to JSON, as lists of visible
// screen space triangles, for use by external reference renderers.
// Run from the render3d module root directory.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/render3d"
	"seehuhn.de/go/render3d/testcases"
)

func main() {
	if err := writeScenes(filepath.Join("testdata", "testcases.json")); err != nil {
		log.Fatal(err)
	}
}

// writeScenes writes all scenes to fname, creating its directory if
// needed.
func writeScenes(fname string) error {
	var out struct {
		Scenes []jsonScene `json:"scenes"`
	}
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, sc := range testcases.All[category] {
			out.Scenes = append(out.Scenes, toJSON(category, sc))
		}
	}

	if err := os.MkdirAll(filepath.Dir(fname), 0o755); err != nil {
		return err
	}
	f, err := os.Create(fname)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

type jsonScene struct {
	Name       string         `json:"name"`
	Width      int            `json:"width"`
	Height     int            `json:"height"`
	Background string         `json:"background"`
	Triangles  []jsonTriangle `json:"triangles"`
}

type jsonTriangle struct {
	Color      string       `json:"color"`
	Pts        [][3]float64 `json:"pts"`
	Brightness [3]float64   `json:"brightness"`
}

func toJSON(category string, sc testcases.Scene) jsonScene {
	r := render3d.NewRenderer(sc.Width, sc.Height)
	js := jsonScene{
		Name:       category + "_" + sc.Name,
		Width:      sc.Width,
		Height:     sc.Height,
		Background: hexColor(r.Background),
	}

	m := sc.Transform()
	for _, mesh := range sc.Meshes {
		col := hexColor(mesh.Color)
		for t := range r.Visible(mesh.Groups, &m, sc.Light) {
			jt := jsonTriangle{Color: col, Brightness: t.Brightness}
			for _, p := range t.P {
				jt.Pts = append(jt.Pts, [3]float64{p.X, p.Y, p.Z})
			}
			js.Triangles = append(js.Triangles, jt)
		}
	}
	return js
}

func hexColor(c uint32) string {
	return fmt.Sprintf("#%08x", c)
}
