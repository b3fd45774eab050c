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

package mesh

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/render3d/affine"
)

func TestSolveQuadratic(t *testing.T) {
	cases := []struct {
		name    string
		a, b, c float64
		want    Roots
	}{
		{"two", 1, -3, 2, Roots{Count: TwoRoots, X1: 1, X2: 2}},
		{"two_negative_a", -2, 0, 8, Roots{Count: TwoRoots, X1: -2, X2: 2}},
		{"double", 1, -4, 4, Roots{Count: OneRoot, X1: 2}},
		{"double_scaled", 2, -8, 8, Roots{Count: OneRoot, X1: 2}},
		{"none", 1, 0, 1, Roots{Count: NoRoot}},
		{"linear", 0, 2, -6, Roots{Count: OneRoot, X1: 3}},
		{"constant", 0, 0, 5, Roots{Count: NoRoot}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := SolveQuadratic(c.a, c.b, c.c)
			if got.Count != c.want.Count {
				t.Fatalf("got %d roots, want %d", got.Count, c.want.Count)
			}
			want := c.want.Values()
			for i, x := range got.Values() {
				if math.Abs(x-want[i]) > 1e-12 {
					t.Errorf("root %d: got %g, want %g", i, x, want[i])
				}
			}
		})
	}
}

func TestRevolve(t *testing.T) {
	a := ProfilePoint{Pos: vec.Vec2{X: 0, Y: 2}, Normal: vec.Vec2{X: 0, Y: 1}}
	b := ProfilePoint{Pos: vec.Vec2{X: 5, Y: 2}, Normal: vec.Vec2{X: 0, Y: 1}}
	g := Revolve(a, b, 90)

	if len(g.Points) != 10 || len(g.Normals) != 10 {
		t.Fatalf("got %d points and %d normals, want 10", len(g.Points), len(g.Normals))
	}
	if g.Points[8] != g.Points[0] || g.Points[9] != g.Points[1] {
		t.Error("strip is not closed")
	}
	for i, p := range g.Points {
		if r := math.Hypot(p.Y, p.Z); math.Abs(r-2) > 1e-12 {
			t.Errorf("point %d at distance %g from the axis", i, r)
		}
		// normals point away from the axis
		n := g.Normals[i].Sub(p)
		radial := affine.Vec{Y: p.Y, Z: p.Z}.Mul(0.5)
		if d := n.Dot(radial); math.Abs(d-1) > 1e-12 {
			t.Errorf("normal %d: dot with radial direction is %g", i, d)
		}
	}

	if g := Revolve(a, b, 0); len(g.Points) != 0 {
		t.Error("zero step produced points")
	}
}

func TestSphere(t *testing.T) {
	const center, radius = 3.0, 1.5
	groups := Sphere(center, radius, 8, 30)
	if len(groups) != 7 {
		t.Fatalf("got %d strips, want 7", len(groups))
	}
	c := affine.Point{X: center}
	for _, g := range groups {
		for i, p := range g.Points {
			if d := p.Sub(c).Length(); math.Abs(d-radius) > 1e-9 {
				t.Fatalf("point at distance %g from the center", d)
			}
			n := g.Normals[i].Sub(p)
			if math.Abs(n.Length()-1) > 1e-9 {
				t.Fatalf("normal of length %g", n.Length())
			}
			if n.Dot(p.Sub(c)) <= 0 {
				t.Fatal("normal points inwards")
			}
		}
	}
}

func TestNewMuscleErrors(t *testing.T) {
	cases := []struct {
		name   string
		radii  []float64
		mults  []float64
		length float64
	}{
		{"one_sphere", []float64{1}, []float64{1}, 5},
		{"mismatch", []float64{1, 1}, []float64{1}, 5},
		{"zero_radius", []float64{1, 0}, []float64{1, 1}, 5},
		{"zero_length", []float64{1, 1}, []float64{1, 1}, 0},
		{"nan_length", []float64{1, 1}, []float64{1, 1}, math.NaN()},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := NewMuscle(c.radii, c.mults, c.length); err == nil {
				t.Error("expected an error")
			}
		})
	}

	_, err := NewMuscle([]float64{1, -1}, []float64{1, 1}, 3)
	if !errors.Is(err, errInvalidRadius) {
		t.Errorf("got %v", err)
	}
}

func TestMuscleDeformKeepsVolume(t *testing.T) {
	m, err := NewMuscle([]float64{0.5, 1, 1.5, 1, 0.5}, []float64{0, 0.5, 1, 0.5, 0}, 8)
	if err != nil {
		t.Fatal(err)
	}
	v0 := m.Volume()
	r0 := m.Radii()

	if !m.Deform(-2) {
		t.Fatal("shortening failed")
	}
	if l := m.Length(); math.Abs(l-6) > 1e-12 {
		t.Errorf("length %g, want 6", l)
	}
	if v := m.Volume(); math.Abs(v-v0) > 1e-9*v0 {
		t.Errorf("volume changed from %g to %g", v0, v)
	}
	r1 := m.Radii()
	if !(r1[2] > r0[2]) {
		t.Errorf("middle radius did not grow: %g -> %g", r0[2], r1[2])
	}
	if r1[0] != r0[0] {
		t.Errorf("end radius with zero multiplier changed: %g -> %g", r0[0], r1[0])
	}

	if !m.Deform(3) {
		t.Fatal("lengthening failed")
	}
	if v := m.Volume(); math.Abs(v-v0) > 1e-9*v0 {
		t.Errorf("volume changed from %g to %g", v0, v)
	}
}

func TestMuscleDeformLimits(t *testing.T) {
	m, err := NewMuscle([]float64{1, 1}, []float64{1, 1}, 10)
	if err != nil {
		t.Fatal(err)
	}
	if m.Deform(-7) { // dx 3 < 0.4·10
		t.Error("compression below the limit was accepted")
	}
	if m.Deform(16) { // dx 26 > 2.5·10
		t.Error("stretching beyond the limit was accepted")
	}
	if l := m.Length(); l != 10 {
		t.Errorf("refused deformation changed the length to %g", l)
	}

	fixed, err := NewMuscle([]float64{1, 1}, []float64{0, 0}, 10)
	if err != nil {
		t.Fatal(err)
	}
	if fixed.Deform(1) {
		t.Error("muscle without grow multipliers cannot keep its volume")
	}
}

func TestMuscleGroups(t *testing.T) {
	m, err := NewMuscle([]float64{1, 2}, []float64{1, 1}, 4)
	if err != nil {
		t.Fatal(err)
	}
	groups := m.Groups(30)
	// one cone plus two spheres with SphereParts-1 strips each
	if want := 1 + 2*(SphereParts-1); len(groups) != want {
		t.Fatalf("got %d strips, want %d", len(groups), want)
	}

	// the cone touches both spheres
	cone := groups[0]
	for i, p := range cone.Points {
		c := affine.Point{X: 0}
		r := 1.0
		if i%2 == 1 {
			c, r = affine.Point{X: 4}, 2
		}
		if d := p.Sub(c).Length(); math.Abs(d-r) > 1e-9 {
			t.Fatalf("cone point %d at distance %g from its sphere center, want %g", i, d, r)
		}
	}

	// a sphere inside its neighbour has no tangent cone
	inner, err := NewMuscle([]float64{0.5, 5}, []float64{1, 1}, 2)
	if err != nil {
		t.Fatal(err)
	}
	if got := len(inner.Groups(30)); got != 2*(SphereParts-1) {
		t.Errorf("got %d strips, want only the spheres", got)
	}
}

func TestMuscleRestructure(t *testing.T) {
	m, err := NewMuscle([]float64{1, 2, 1}, []float64{0, 1, 0}, 8)
	if err != nil {
		t.Fatal(err)
	}

	if err := m.InsertSphere(1, 1.5, 0.5); err != nil {
		t.Fatal(err)
	}
	if n := m.NumSpheres(); n != 4 {
		t.Fatalf("%d spheres, want 4", n)
	}
	if l := m.Length(); math.Abs(l-8) > 1e-12 {
		t.Errorf("length %g after insertion, want 8", l)
	}
	if r, g, err := m.Node(1); err != nil || r != 1.5 || g != 0.5 {
		t.Errorf("Node(1) = %g, %g, %v", r, g, err)
	}

	if err := m.SetSphere(3, 0.7, 0.2); err != nil {
		t.Fatal(err)
	}
	if want := []float64{1, 1.5, 2, 0.7}; !slicesEqual(m.Radii(), want) {
		t.Errorf("radii %v, want %v", m.Radii(), want)
	}

	if err := m.RemoveSphere(0); err != nil {
		t.Fatal(err)
	}
	if err := m.RemoveSphere(0); err != nil {
		t.Fatal(err)
	}
	if want := []float64{2, 0.7}; !slicesEqual(m.Radii(), want) {
		t.Errorf("radii %v, want %v", m.Radii(), want)
	}
	if l := m.Length(); math.Abs(l-8) > 1e-12 {
		t.Errorf("length %g after removal, want 8", l)
	}
	if err := m.RemoveSphere(1); !errors.Is(err, errTooFewSpheres) {
		t.Errorf("removing from two spheres: %v", err)
	}

	// the length limits still refer to the initial length
	if m.Deform(-5) { // 3 < 0.4·8
		t.Error("compression below the limit was accepted")
	}
	if !m.Deform(-4) {
		t.Error("compression to 4 refused")
	}
}

func TestMuscleRestructureErrors(t *testing.T) {
	m, err := NewMuscle([]float64{1, 2, 1}, []float64{0, 1, 0}, 8)
	if err != nil {
		t.Fatal(err)
	}
	cases := []struct {
		name string
		err  error
		want error
	}{
		{"insert_negative_pos", m.InsertSphere(-1, 1, 0), errInvalidPosition},
		{"insert_past_end", m.InsertSphere(4, 1, 0), errInvalidPosition},
		{"insert_zero_radius", m.InsertSphere(1, 0, 0), errInvalidRadius},
		{"set_past_end", m.SetSphere(3, 1, 0), errInvalidPosition},
		{"set_nan_radius", m.SetSphere(0, math.NaN(), 0), errInvalidRadius},
		{"set_inf_mult", m.SetSphere(0, 1, math.Inf(1)), errInvalidGrowMult},
		{"remove_past_end", m.RemoveSphere(3), errInvalidPosition},
	}
	for _, c := range cases {
		if !errors.Is(c.err, c.want) {
			t.Errorf("%s: got %v, want %v", c.name, c.err, c.want)
		}
	}
	if want := []float64{1, 2, 1}; !slicesEqual(m.Radii(), want) {
		t.Errorf("failed edits changed the radii to %v", m.Radii())
	}
	if _, _, err := m.Node(3); !errors.Is(err, errInvalidPosition) {
		t.Errorf("Node(3): %v", err)
	}
}

func slicesEqual(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestCarcass(t *testing.T) {
	c, err := NewCarcass(Bone{Outer: 3, Inner: 6}, Bone{Inner: 5, Outer: 3}, 0.3, 8)
	if err != nil {
		t.Fatal(err)
	}

	j := c.Joint()
	if d := j.Sub(affine.Point{}).Length(); math.Abs(d-6) > 1e-9 {
		t.Errorf("joint at distance %g from the first attachment, want 6", d)
	}
	if d := j.Sub(affine.Point{X: 8}).Length(); math.Abs(d-5) > 1e-9 {
		t.Errorf("joint at distance %g from the second attachment, want 5", d)
	}
	if j.Y >= 0 {
		t.Errorf("joint above the muscle: %v", j)
	}

	// both bone tubes pass through the joint
	groups := c.Groups(30)
	var nearJoint int
	for _, g := range groups {
		for _, p := range g.Points {
			if p.Sub(j).Length() <= 0.3+1e-9 {
				nearJoint++
			}
		}
	}
	if nearJoint == 0 {
		t.Error("no bone geometry at the joint")
	}

	if c.CheckDiff(4) { // 12 > 6+5
		t.Error("impossible length accepted")
	}
	if c.Deform(-5) { // 3 < sqrt(36-25)
		t.Error("impossible length accepted")
	}
	if !c.Deform(1) || c.Length() != 9 {
		t.Errorf("valid deformation failed, length %g", c.Length())
	}

	if _, err := NewCarcass(Bone{Outer: 1, Inner: 1}, Bone{Inner: 1, Outer: 1}, 0.1, 5); err == nil {
		t.Error("expected an error for an impossible pose")
	}
}

func TestModel(t *testing.T) {
	m, err := NewModel(DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	muscle, carcass := m.Meshes()
	if len(muscle) == 0 || len(carcass) == 0 {
		t.Fatal("empty meshes")
	}
	again, _ := m.Meshes()
	if &again[0] != &muscle[0] {
		t.Error("meshes were regenerated without a deformation")
	}

	l := m.Length()
	if !m.Deform(-1) {
		t.Fatal("deformation failed")
	}
	if got := m.Length(); math.Abs(got-(l-1)) > 1e-12 {
		t.Errorf("length %g, want %g", got, l-1)
	}
	if c := m.Center(); math.Abs(c.X-(l-1)/2) > 1e-12 {
		t.Errorf("center %v", c)
	}
	after, _ := m.Meshes()
	if &after[0] == &muscle[0] {
		t.Error("meshes were not regenerated after a deformation")
	}

	if m.Deform(100) {
		t.Error("impossible deformation accepted")
	}
}

func TestModelRestructure(t *testing.T) {
	m, err := NewModel(DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	n := m.NumSpheres()
	before, _ := m.Meshes()

	if err := m.InsertSphere(1, 0.8, 0.3); err != nil {
		t.Fatal(err)
	}
	if m.NumSpheres() != n+1 {
		t.Errorf("%d spheres, want %d", m.NumSpheres(), n+1)
	}
	after, _ := m.Meshes()
	if &after[0] == &before[0] {
		t.Error("meshes were not regenerated after an insertion")
	}

	err = m.SetSphere(n+5, 1, 1)
	if !errors.Is(err, errInvalidPosition) {
		t.Errorf("got %v", err)
	}
	again, _ := m.Meshes()
	if &again[0] != &after[0] {
		t.Error("meshes were regenerated after a failed edit")
	}

	if err := m.RemoveSphere(1); err != nil {
		t.Fatal(err)
	}
	if r, _, err := m.Node(1); err != nil || r != DefaultConfig().Muscle.Radii[1] {
		t.Errorf("Node(1) = %g, %v", r, err)
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	fname := filepath.Join(dir, "model.json")
	data := `{"muscle": {"radii": [1, 2, 1], "grow_mults": [0, 1, 0], "length": 6}, "step": 20}`
	if err := os.WriteFile(fname, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(fname)
	if err != nil {
		t.Fatal(err)
	}
	if len(cfg.Muscle.Radii) != 3 || cfg.Muscle.Length != 6 || cfg.Step != 20 {
		t.Errorf("unexpected muscle config %+v", cfg)
	}
	if cfg.Carcass != DefaultConfig().Carcass {
		t.Errorf("carcass config not defaulted: %+v", cfg.Carcass)
	}
	if _, err := NewModel(cfg); err != nil {
		t.Error(err)
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte(`{"colour": 1}`), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(bad); err == nil {
		t.Error("unknown field accepted")
	}
	if _, err := LoadConfig(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("missing file accepted")
	}
}
