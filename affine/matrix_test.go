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

package affine

import (
	"errors"
	"math"
	"testing"
)

func TestMoveRoundTrip(t *testing.T) {
	for _, d := range []float64{0, 1, -3.5, 1e-7, 12345.678} {
		m := Identity
		m.Move(d, X)
		m.Move(-d, X)
		got := m.Apply(Point{1, 2, 3})
		if got != (Point{1, 2, 3}) {
			t.Errorf("d=%g: got %v, want (1,2,3)", d, got)
		}
	}
}

func TestMoveComposesAfter(t *testing.T) {
	m := Identity
	m.Rotate(math.Pi/2, Z)
	m.Move(10, X)

	// rotation first: (1,0,0) -> (0,1,0), then the translation
	got := m.Apply(Point{1, 0, 0})
	want := Point{10, 1, 0}
	if !closePoint(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestRotation(t *testing.T) {
	cases := []struct {
		axis Axis
		in   Point
		out  Point
	}{
		{X, Point{0, 1, 0}, Point{0, 0, 1}},
		{Y, Point{0, 0, 1}, Point{1, 0, 0}},
		{Z, Point{1, 0, 0}, Point{0, 1, 0}},
	}
	for _, c := range cases {
		t.Run(c.axis.String(), func(t *testing.T) {
			m := Identity
			m.Rotate(math.Pi/2, c.axis)
			got := m.Apply(c.in)
			if !closePoint(got, c.out) {
				t.Errorf("got %v, want %v", got, c.out)
			}
		})
	}
}

func TestRotateAround(t *testing.T) {
	center := Point{5, 5, 0}
	m := Identity
	m.RotateAround(math.Pi, Z, center)

	if got := m.Apply(center); !closePoint(got, center) {
		t.Errorf("center moved to %v", got)
	}
	if got, want := m.Apply(Point{6, 5, 0}), (Point{4, 5, 0}); !closePoint(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestScale(t *testing.T) {
	m := Identity
	m.Move(1, Y)
	if err := m.Scale(2); err != nil {
		t.Fatal(err)
	}
	got := m.Apply(Point{1, 2, 3})
	want := Point{2, 5, 6}
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestScaleDegenerate(t *testing.T) {
	for _, f := range []float64{0, math.NaN(), math.Inf(1), math.Inf(-1)} {
		m := Identity
		m.Move(3, Z)
		before := m
		err := m.Scale(f)
		if !errors.Is(err, ErrDegenerateScale) {
			t.Errorf("factor %g: got error %v", f, err)
		}
		if m != before {
			t.Errorf("factor %g: matrix was modified", f)
		}
	}
}

func TestMulIdentity(t *testing.T) {
	m := Rotation(0.3, X).Mul(Rotation(-1.2, Y)).Mul(Translation(Vec{1, 2, 3}))
	if got := m.Mul(Identity); got != m {
		t.Errorf("m·I = %v, want %v", got, m)
	}
	if got := Identity.Mul(m); got != m {
		t.Errorf("I·m = %v, want %v", got, m)
	}
}

func TestNormalize(t *testing.T) {
	v, ok := Vec{3, 0, 4}.Normalize()
	if !ok {
		t.Fatal("normalize failed")
	}
	if math.Abs(v.Length()-1) > 1e-12 || math.Abs(v.X-0.6) > 1e-12 {
		t.Errorf("got %v", v)
	}

	z, ok := Vec{}.Normalize()
	if ok || z != (Vec{}) {
		t.Errorf("zero vector: got %v, %t", z, ok)
	}
	_, ok = Vec{math.NaN(), 0, 0}.Normalize()
	if ok {
		t.Error("NaN vector should not normalize")
	}
}

func TestBetween(t *testing.T) {
	v := Between(Point{1, 1, 1}, Point{2, 3, 4})
	if v != (Vec{1, 2, 3}) {
		t.Errorf("got %v", v)
	}
	if d := (Vec{1, 2, 3}).Dot(Vec{4, -5, 6}); d != 12 {
		t.Errorf("dot = %g, want 12", d)
	}
}

func closePoint(a, b Point) bool {
	const eps = 1e-9
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps && math.Abs(a.Z-b.Z) < eps
}

func TestApplyOnResult(t *testing.T) {
	// Apply works on matrices which are not stored in a variable
	got := Translation(Vec{X: 1}).Mul(Rotation(math.Pi/2, Z)).Apply(Point{X: 1})
	if want := (Point{X: 0, Y: 2}); !closePoint(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got := Identity.Apply(Point{1, 2, 3}); got != (Point{1, 2, 3}) {
		t.Errorf("identity moved the point to %v", got)
	}
}
