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
	"seehuhn.de/go/render3d/mesh"
)

var shapeScenes = []Scene{
	{
		Name:   "sphere",
		Width:  128,
		Height: 128,
		Meshes: []Mesh{{
			Groups: mesh.Sphere(0, 1, mesh.SphereParts, 10),
			Color:  0xE0E0E0FF,
		}},
		Matrix: view(50, 64, 64),
		Light:  light(-0.4, -0.4, 0.8),
	},
	{
		Name:   "tube",
		Width:  128,
		Height: 96,
		Meshes: []Mesh{{
			Groups: []render3d.StripGroup{mesh.Tube(-1.5, 1.5, 0.6, 10)},
			Color:  0xC08040FF,
		}},
		Matrix: view(35, 64, 48,
			rotation{math.Pi / 6, affine.Z},
			rotation{math.Pi / 5, affine.X}),
		Light: light(0, -0.5, 1),
	},
	{
		Name:   "coarse_tube",
		Width:  96,
		Height: 96,
		Meshes: []Mesh{{
			Groups: []render3d.StripGroup{mesh.Tube(-1, 1, 0.8, 60)},
			Color:  0x80C040FF,
		}},
		Matrix: view(30, 48, 48, rotation{math.Pi / 4, affine.Y}),
		Light:  light(0, 0, 1),
	},
}

var modelScenes = []Scene{
	modelScene("model_front", 0),
	modelScene("model_turned", math.Pi/3),
}

// modelScene shows the default muscle model, turned around the vertical
// axis through its center.
func modelScene(name string, angle float64) Scene {
	model, err := mesh.NewModel(mesh.DefaultConfig())
	if err != nil {
		panic(err)
	}
	muscle, carcass := model.Meshes()

	m := affine.Identity
	if err := m.Scale(22); err != nil {
		panic(err)
	}
	c := m.Apply(model.Center())
	m.RotateAround(angle, affine.Y, c)
	m.Move(200-c.X, affine.X)
	m.Move(120-c.Y, affine.Y)
	m.Move(-c.Z, affine.Z)

	return Scene{
		Name:   name,
		Width:  400,
		Height: 240,
		Meshes: []Mesh{
			{Groups: muscle, Color: 0xC03030FF},
			{Groups: carcass, Color: 0xE8E0D0FF},
		},
		Matrix: m,
		Light:  light(0.3, -0.4, 0.9),
	}
}
