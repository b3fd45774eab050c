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

import "math"

// RootCount tells how many real solutions an equation has.
type RootCount int

// The possible numbers of real solutions.
const (
	NoRoot RootCount = iota
	OneRoot
	TwoRoots
)

// Roots holds the real solutions of an equation.  X1 is valid if Count is
// at least OneRoot, X2 if Count is TwoRoots.  Two roots are stored in
// increasing order.
type Roots struct {
	Count  RootCount
	X1, X2 float64
}

// Values returns the valid roots as a slice.
func (r Roots) Values() []float64 {
	switch r.Count {
	case OneRoot:
		return []float64{r.X1}
	case TwoRoots:
		return []float64{r.X1, r.X2}
	default:
		return nil
	}
}

// SolveQuadratic finds the real solutions of a·x² + b·x + c = 0.  If a is
// (close to) zero the equation is solved as a linear one.  An equation
// without unknowns has no roots, even if it is satisfied.
func SolveQuadratic(a, b, c float64) Roots {
	if nearZero(a) {
		if nearZero(b) {
			return Roots{Count: NoRoot}
		}
		return Roots{Count: OneRoot, X1: -c / b}
	}

	det := b*b - 4*a*c
	switch {
	case nearZero(det):
		return Roots{Count: OneRoot, X1: -b / (2 * a)}
	case det < 0:
		return Roots{Count: NoRoot}
	}

	// avoid cancellation for the root of smaller magnitude
	sq := math.Sqrt(det)
	q := -0.5 * (b + math.Copysign(sq, b))
	x1, x2 := q/a, c/q
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	return Roots{Count: TwoRoots, X1: x1, X2: x2}
}

func nearZero(x float64) bool {
	return math.Abs(x) <= equationEpsilon
}

// equationEpsilon is the magnitude below which equation coefficients are
// treated as zero.
const equationEpsilon = 1e-12
