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
	"fmt"
	"sync"

	"seehuhn.de/go/render3d"
	"seehuhn.de/go/render3d/affine"
)

// Model combines a muscle with the carcass it is attached to.  The two
// always have the same length.
//
// A Model is safe for concurrent use.  The strip groups returned by Meshes
// must not be modified.
type Model struct {
	mu      sync.Mutex
	muscle  *Muscle
	carcass *Carcass
	step    int

	// cached strips, nil after a deformation
	muscleGroups  []render3d.StripGroup
	carcassGroups []render3d.StripGroup
}

// NewModel builds the model described by cfg.
func NewModel(cfg *Config) (*Model, error) {
	muscle, err := NewMuscle(cfg.Muscle.Radii, cfg.Muscle.GrowMults, cfg.Muscle.Length)
	if err != nil {
		return nil, fmt.Errorf("muscle: %w", err)
	}
	d := cfg.Carcass.Data
	carcass, err := NewCarcass(
		Bone{Outer: d[0][0], Inner: d[0][1]},
		Bone{Inner: d[1][0], Outer: d[1][1]},
		cfg.Carcass.Thickness, cfg.Muscle.Length)
	if err != nil {
		return nil, fmt.Errorf("carcass: %w", err)
	}
	return &Model{
		muscle:  muscle,
		carcass: carcass,
		step:    cfg.step(),
	}, nil
}

// Deform lengthens (diff > 0) or shortens (diff < 0) the model.  If either
// the muscle or the carcass cannot follow, nothing changes and false is
// returned.
func (m *Model) Deform(diff float64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.carcass.CheckDiff(diff) || !m.muscle.Deform(diff) {
		return false
	}
	m.carcass.Deform(diff)
	m.muscleGroups = nil
	m.carcassGroups = nil
	return true
}

// NumSpheres returns the number of spheres in the muscle.
func (m *Model) NumSpheres() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.muscle.NumSpheres()
}

// Node returns the radius and grow multiplier of muscle sphere pos.
func (m *Model) Node(pos int) (radius, growMult float64, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.muscle.Node(pos)
}

// SetSphere changes the radius and grow multiplier of muscle sphere pos.
func (m *Model) SetSphere(pos int, radius, growMult float64) error {
	return m.restructure(func(mu *Muscle) error {
		return mu.SetSphere(pos, radius, growMult)
	})
}

// InsertSphere adds a muscle sphere at index pos.
func (m *Model) InsertSphere(pos int, radius, growMult float64) error {
	return m.restructure(func(mu *Muscle) error {
		return mu.InsertSphere(pos, radius, growMult)
	})
}

// RemoveSphere deletes muscle sphere pos.
func (m *Model) RemoveSphere(pos int) error {
	return m.restructure(func(mu *Muscle) error {
		return mu.RemoveSphere(pos)
	})
}

func (m *Model) restructure(edit func(*Muscle) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := edit(m.muscle); err != nil {
		return fmt.Errorf("muscle: %w", err)
	}
	m.muscleGroups = nil
	m.carcassGroups = nil
	return nil
}

// Length returns the current model length.
func (m *Model) Length() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.carcass.Length()
}

// Center returns the midpoint between the muscle attachment points.
func (m *Model) Center() affine.Point {
	return affine.Point{X: m.Length() / 2}
}

// Meshes returns the strip groups of the muscle and of the carcass.
func (m *Model) Meshes() (muscle, carcass []render3d.StripGroup) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.muscleGroups == nil {
		m.muscleGroups = m.muscle.Groups(m.step)
		m.carcassGroups = m.carcass.Groups(m.step)
	}
	return m.muscleGroups, m.carcassGroups
}
