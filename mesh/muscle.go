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
	"fmt"
	"math"
	"slices"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/render3d"
)

// Muscle is a chain of spheres with centers on the X axis at distance dx
// from each other, wrapped by the cones tangent to neighbouring spheres.
//
// When the muscle is stretched or compressed, the radii change along the
// grow multipliers so that the volume of the cone chain stays constant.
type Muscle struct {
	radii     []float64
	growMults []float64
	dx        float64
	minDx     float64
	maxDx     float64
}

// Errors returned by NewMuscle.
var (
	errTooFewSpheres = errors.New("mesh: a muscle needs at least two spheres")
	errMultsMismatch = errors.New("mesh: number of grow multipliers does not match number of radii")
	errInvalidRadius = errors.New("mesh: radii must be positive")
	errInvalidLength = errors.New("mesh: length must be positive")
)

// NewMuscle creates a muscle of the given length.  The spheres are spaced
// evenly, radii[i] and growMults[i] belong to the i-th sphere.
func NewMuscle(radii, growMults []float64, length float64) (*Muscle, error) {
	switch {
	case len(radii) < 2:
		return nil, errTooFewSpheres
	case len(growMults) != len(radii):
		return nil, errMultsMismatch
	case !(length > 0) || math.IsInf(length, 0):
		return nil, errInvalidLength
	}
	for i, r := range radii {
		if !(r > 0) || math.IsInf(r, 0) {
			return nil, fmt.Errorf("radius %d: %w", i, errInvalidRadius)
		}
	}

	dx := length / float64(len(radii)-1)
	m := &Muscle{
		radii:     slices.Clone(radii),
		growMults: slices.Clone(growMults),
		dx:        dx,
		minDx:     dx * MinPart,
		maxDx:     dx * MaxPart,
	}
	return m, nil
}

// Length returns the distance between the first and the last sphere
// center.
func (m *Muscle) Length() float64 {
	return m.dx * float64(len(m.radii)-1)
}

// Radii returns a copy of the current sphere radii.
func (m *Muscle) Radii() []float64 {
	return slices.Clone(m.radii)
}

// Volume returns the volume of the chain of truncated cones through the
// sphere centers.
func (m *Muscle) Volume() float64 {
	return math.Pi * m.dx * coneSum(m.radii)
}

// coneSum returns the volume of the cone chain divided by π·dx.
func coneSum(radii []float64) float64 {
	var s float64
	for i := 1; i < len(radii); i++ {
		r0, r1 := radii[i-1], radii[i]
		s += (r0*r0 + r0*r1 + r1*r1) / 3
	}
	return s
}

// Deform changes the length of the muscle by diff while keeping its volume
// constant.  If the new length is outside the allowed range, or if no
// radii preserve the volume, the muscle is left unchanged and false is
// returned.
func (m *Muscle) Deform(diff float64) bool {
	newDx := m.dx + diff/float64(len(m.radii)-1)
	if !(newDx >= m.minDx && newDx <= m.maxDx) {
		return false
	}

	// New radii are r[i] + t·g[i].  Collect the coefficients of the cone
	// sum as a quadratic polynomial in t.
	target := coneSum(m.radii) * m.dx / newDx
	var a, b, c float64
	for i := 1; i < len(m.radii); i++ {
		r0, r1 := m.radii[i-1], m.radii[i]
		g0, g1 := m.growMults[i-1], m.growMults[i]
		a += (g0*g0 + g0*g1 + g1*g1) / 3
		b += (2*r0*g0 + r0*g1 + r1*g0 + 2*r1*g1) / 3
		c += (r0*r0 + r0*r1 + r1*r1) / 3
	}
	roots := SolveQuadratic(a, b, c-target)

	// choose the smallest change which keeps all radii positive
	best, found := 0.0, false
	for _, t := range roots.Values() {
		if !m.validGrowth(t) {
			continue
		}
		if !found || math.Abs(t) < math.Abs(best) {
			best, found = t, true
		}
	}
	if !found {
		return false
	}

	for i, g := range m.growMults {
		m.radii[i] += g * best
	}
	m.dx = newDx
	return true
}

func (m *Muscle) validGrowth(t float64) bool {
	if math.IsNaN(t) || math.IsInf(t, 0) {
		return false
	}
	for i, r := range m.radii {
		if !(r+t*m.growMults[i] > 0) {
			return false
		}
	}
	return true
}

// Errors returned when restructuring a muscle.
var (
	errInvalidPosition = errors.New("mesh: no sphere at this position")
	errInvalidGrowMult = errors.New("mesh: grow multiplier must be finite")
)

// NumSpheres returns the number of spheres in the chain.
func (m *Muscle) NumSpheres() int {
	return len(m.radii)
}

// Node returns the radius and the grow multiplier of sphere pos.
func (m *Muscle) Node(pos int) (radius, growMult float64, err error) {
	if pos < 0 || pos >= len(m.radii) {
		return 0, 0, fmt.Errorf("sphere %d: %w", pos, errInvalidPosition)
	}
	return m.radii[pos], m.growMults[pos], nil
}

// SetSphere changes the radius and the grow multiplier of sphere pos.
func (m *Muscle) SetSphere(pos int, radius, growMult float64) error {
	if pos < 0 || pos >= len(m.radii) {
		return fmt.Errorf("sphere %d: %w", pos, errInvalidPosition)
	}
	if err := checkSphere(pos, radius, growMult); err != nil {
		return err
	}
	m.radii[pos] = radius
	m.growMults[pos] = growMult
	return nil
}

// InsertSphere adds a new sphere at index pos, 0 <= pos <= NumSpheres().
// The length of the muscle does not change; the spheres are spaced evenly
// again.
func (m *Muscle) InsertSphere(pos int, radius, growMult float64) error {
	if pos < 0 || pos > len(m.radii) {
		return fmt.Errorf("sphere %d: %w", pos, errInvalidPosition)
	}
	if err := checkSphere(pos, radius, growMult); err != nil {
		return err
	}
	n := len(m.radii)
	m.radii = slices.Insert(m.radii, pos, radius)
	m.growMults = slices.Insert(m.growMults, pos, growMult)
	m.respace(n)
	return nil
}

// RemoveSphere deletes sphere pos.  At least two spheres always remain.
// The length of the muscle does not change.
func (m *Muscle) RemoveSphere(pos int) error {
	n := len(m.radii)
	if pos < 0 || pos >= n {
		return fmt.Errorf("sphere %d: %w", pos, errInvalidPosition)
	}
	if n <= 2 {
		return errTooFewSpheres
	}
	m.radii = slices.Delete(m.radii, pos, pos+1)
	m.growMults = slices.Delete(m.growMults, pos, pos+1)
	m.respace(n)
	return nil
}

// respace keeps the length and the length limits after the number of
// spheres changed from n.
func (m *Muscle) respace(n int) {
	f := float64(n-1) / float64(len(m.radii)-1)
	m.dx *= f
	m.minDx *= f
	m.maxDx *= f
}

func checkSphere(pos int, radius, growMult float64) error {
	if !(radius > 0) || math.IsInf(radius, 0) {
		return fmt.Errorf("radius %d: %w", pos, errInvalidRadius)
	}
	if math.IsNaN(growMult) || math.IsInf(growMult, 0) {
		return fmt.Errorf("grow multiplier %d: %w", pos, errInvalidGrowMult)
	}
	return nil
}

// Groups returns the strips of the muscle surface: the tangent cones
// between neighbouring spheres followed by the spheres themselves.
func (m *Muscle) Groups(step int) []render3d.StripGroup {
	var res []render3d.StripGroup
	for i := 1; i < len(m.radii); i++ {
		a, b, ok := m.tangent(i-1, i)
		if !ok {
			continue
		}
		if g := Revolve(a, b, step); len(g.Points) > 0 {
			res = append(res, g)
		}
	}
	for i, r := range m.radii {
		res = append(res, Sphere(m.dx*float64(i), r, SphereParts, step)...)
	}
	return res
}

// tangent returns the points where the outer common tangent of spheres i
// and j touches them.  If one sphere contains the other, there is no such
// tangent and ok is false.
func (m *Muscle) tangent(i, j int) (a, b ProfilePoint, ok bool) {
	c0, c1 := m.dx*float64(i), m.dx*float64(j)
	r0, r1 := m.radii[i], m.radii[j]

	nx := -(r1 - r0) / (c1 - c0)
	if !(math.Abs(nx) < 1) {
		return a, b, false
	}
	n := vec.Vec2{X: nx, Y: math.Sqrt(1 - nx*nx)}

	a = ProfilePoint{Pos: vec.Vec2{X: c0}.Add(n.Mul(r0)), Normal: n}
	b = ProfilePoint{Pos: vec.Vec2{X: c1}.Add(n.Mul(r1)), Normal: n}
	return a, b, true
}

// Limits for the sphere distance, relative to the initial distance.
const (
	MinPart = 0.4
	MaxPart = 2.5
)

// SphereParts is the number of profile samples per sphere.
const SphereParts = 12
