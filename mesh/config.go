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
	"encoding/json"
	"fmt"
	"os"
)

// Config describes the initial shape of the model.
type Config struct {
	Muscle  MuscleConfig  `json:"muscle"`
	Carcass CarcassConfig `json:"carcass"`

	// Step is the angular resolution of the surfaces of revolution, in
	// degrees.  Zero selects DefaultStep.
	Step int `json:"step,omitempty"`
}

// MuscleConfig holds the parameters for NewMuscle.
type MuscleConfig struct {
	Radii     []float64 `json:"radii"`
	GrowMults []float64 `json:"grow_mults"`
	Length    float64   `json:"length"`
}

// CarcassConfig holds the bone parameters.  Data[0] holds the outer and
// inner length of the first bone, Data[1] the inner and outer length of
// the second bone, so that the joint sits between Data[0][1] and
// Data[1][0].
type CarcassConfig struct {
	Data      [2][2]float64 `json:"data"`
	Thickness float64       `json:"thickness"`
}

// DefaultConfig returns the built-in model description.
func DefaultConfig() *Config {
	return &Config{
		Muscle: MuscleConfig{
			Radii:     []float64{0.6, 1.1, 1.5, 1.1, 0.6},
			GrowMults: []float64{0.1, 0.6, 1, 0.6, 0.1},
			Length:    8,
		},
		Carcass: CarcassConfig{
			Data:      [2][2]float64{{3, 6}, {5, 3}},
			Thickness: 0.35,
		},
		Step: DefaultStep,
	}
}

// LoadConfig reads a model description from a JSON file.  Missing fields
// keep the values from DefaultConfig.
func LoadConfig(fname string) (cfg *Config, err error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	cfg = DefaultConfig()
	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return cfg, nil
}

func (cfg *Config) step() int {
	if cfg.Step > 0 {
		return cfg.Step
	}
	return DefaultStep
}

// DefaultStep is the default angular resolution in degrees.
const DefaultStep = 10
