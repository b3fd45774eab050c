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
	"testing"

	"seehuhn.de/go/render3d/mesh"
)

func TestModelScenesCentered(t *testing.T) {
	model, err := mesh.NewModel(mesh.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	center := model.Center()

	for _, sc := range modelScenes {
		got := sc.Transform().Apply(center)
		wantX, wantY := float64(sc.Width)/2, float64(sc.Height)/2
		if math.Abs(got.X-wantX) > 1e-9 || math.Abs(got.Y-wantY) > 1e-9 || math.Abs(got.Z) > 1e-9 {
			t.Errorf("%s: model center maps to %v, want (%g, %g, 0)", sc.Name, got, wantX, wantY)
		}
	}
}

func TestSceneNames(t *testing.T) {
	seen := make(map[string]bool)
	for category, scenes := range All {
		for _, sc := range scenes {
			for _, c := range sc.Name {
				if !(c >= 'a' && c <= 'z' || c == '_') {
					t.Errorf("%s/%s: invalid character %q", category, sc.Name, c)
				}
			}
			key := category + "_" + sc.Name
			if seen[key] {
				t.Errorf("duplicate scene %s", key)
			}
			seen[key] = true
		}
	}
}
