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

// Package view turns keyboard commands into changes of the camera and of
// the muscle model, and draws the model through a render3d.Renderer.
package view

import (
	"fmt"
	"math"
	"unicode"

	"seehuhn.de/go/render3d"
	"seehuhn.de/go/render3d/affine"
	"seehuhn.de/go/render3d/mesh"
)

// Action is a single viewer command.
type Action int

// The viewer commands.
const (
	None Action = iota
	RotateLeft
	RotateRight
	RotateDown
	RotateUp
	RotateClockwise
	RotateCounterClockwise
	MoveLeft
	MoveRight
	MoveUp
	MoveDown
	MoveNear
	MoveFar
	ScaleUp
	ScaleDown
	Shorten
	Lengthen
	SelectNext
	SelectPrevious
	GrowSphere
	ShrinkSphere
	InsertSphere
	RemoveSphere
)

var actionNames = [...]string{
	None:                   "none",
	RotateLeft:             "rotate left",
	RotateRight:            "rotate right",
	RotateDown:             "rotate down",
	RotateUp:               "rotate up",
	RotateClockwise:        "rotate clockwise",
	RotateCounterClockwise: "rotate counter-clockwise",
	MoveLeft:               "move left",
	MoveRight:              "move right",
	MoveUp:                 "move up",
	MoveDown:               "move down",
	MoveNear:               "move near",
	MoveFar:                "move far",
	ScaleUp:                "scale up",
	ScaleDown:              "scale down",
	Shorten:                "shorten",
	Lengthen:               "lengthen",
	SelectNext:             "select next sphere",
	SelectPrevious:         "select previous sphere",
	GrowSphere:             "grow sphere",
	ShrinkSphere:           "shrink sphere",
	InsertSphere:           "insert sphere",
	RemoveSphere:           "remove sphere",
}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "unknown"
	}
	return actionNames[a]
}

var keyActions = map[rune]Action{
	'h': RotateLeft,
	'l': RotateRight,
	'j': RotateDown,
	'k': RotateUp,
	'f': RotateClockwise,
	't': RotateCounterClockwise,
	'a': MoveLeft,
	'd': MoveRight,
	'w': MoveUp,
	's': MoveDown,
	'q': MoveNear,
	'e': MoveFar,
	'p': ScaleUp,
	'm': ScaleDown,
	'x': Shorten,
	'v': Lengthen,
	'n': SelectNext,
	'b': SelectPrevious,
	'g': GrowSphere,
	'c': ShrinkSphere,
	'i': InsertSphere,
	'r': RemoveSphere,
}

// ActionForKey returns the action bound to a key.  Letters are matched
// case-insensitively; unbound keys give None.
func ActionForKey(key rune) Action {
	return keyActions[unicode.ToLower(key)]
}

// Camera places the model on the screen.  The model is rotated about its
// center, scaled, and the center is moved to Offset.
type Camera struct {
	Rotation affine.Matrix
	Scale    float64
	Offset   affine.Vec
}

// NewCamera returns a camera which shows the model centered in a viewport
// of the given size.  Model Y points up on the screen.  The viewport size
// and the scale must be positive.
func NewCamera(width, height int, scale float64) (*Camera, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("view: invalid viewport %d×%d", width, height)
	}
	if !(scale > 0) || math.IsInf(scale, 0) {
		return nil, fmt.Errorf("view: scale %g: %w", scale, affine.ErrDegenerateScale)
	}
	return &Camera{
		Rotation: affine.Rotation(math.Pi, affine.X),
		Scale:    scale,
		Offset:   affine.Vec{X: float64(width) / 2, Y: float64(height) / 2},
	}, nil
}

// Matrix returns the model to screen transformation for a model whose
// center is at the given point.
func (c *Camera) Matrix(center affine.Point) (affine.Matrix, error) {
	m := c.Rotation
	if err := m.Scale(c.Scale); err != nil {
		return affine.Matrix{}, err
	}
	tc := m.Apply(center)
	m.Move(c.Offset.X-tc.X, affine.X)
	m.Move(c.Offset.Y-tc.Y, affine.Y)
	m.Move(c.Offset.Z-tc.Z, affine.Z)
	return m, nil
}

// Colors used by Controller.Render.
const (
	MuscleColor  uint32 = 0xC03030FF
	CarcassColor uint32 = 0xE8E0D0FF
)

// Default step sizes of a Controller.
const (
	DefaultAngleStep  = math.Pi / 36 // 5°
	DefaultMoveStep   = 10           // pixels
	DefaultScaleStep  = 1.1
	DefaultLengthStep = 0.25
	DefaultRadiusStep = 0.1
)

// Controller applies viewer actions to a camera and a model.
type Controller struct {
	Camera *Camera
	Model  *mesh.Model
	Light  affine.Vec // unit direction, in screen space

	AngleStep  float64
	MoveStep   float64
	ScaleStep  float64 // factor, larger than 1
	LengthStep float64
	RadiusStep float64

	// Selected is the index of the muscle sphere changed by the sphere
	// actions.
	Selected int
}

// NewController returns a controller with the default step sizes.
func NewController(model *mesh.Model, cam *Camera) *Controller {
	light, _ := affine.Vec{X: 0.3, Y: -0.4, Z: 0.9}.Normalize()
	return &Controller{
		Camera:     cam,
		Model:      model,
		Light:      light,
		AngleStep:  DefaultAngleStep,
		MoveStep:   DefaultMoveStep,
		ScaleStep:  DefaultScaleStep,
		LengthStep: DefaultLengthStep,
		RadiusStep: DefaultRadiusStep,
	}
}

// Apply executes an action and reports whether anything changed.  Refused
// deformations and selections past the ends of the muscle change nothing
// and are not errors.  Rejected sphere edits are returned as errors.
func (c *Controller) Apply(a Action) (bool, error) {
	cam := c.Camera
	switch a {
	case RotateLeft:
		cam.Rotation.Rotate(-c.AngleStep, affine.Y)
	case RotateRight:
		cam.Rotation.Rotate(c.AngleStep, affine.Y)
	case RotateDown:
		cam.Rotation.Rotate(-c.AngleStep, affine.X)
	case RotateUp:
		cam.Rotation.Rotate(c.AngleStep, affine.X)
	case RotateClockwise:
		cam.Rotation.Rotate(c.AngleStep, affine.Z)
	case RotateCounterClockwise:
		cam.Rotation.Rotate(-c.AngleStep, affine.Z)
	case MoveLeft:
		cam.Offset.X -= c.MoveStep
	case MoveRight:
		cam.Offset.X += c.MoveStep
	case MoveUp:
		cam.Offset.Y -= c.MoveStep
	case MoveDown:
		cam.Offset.Y += c.MoveStep
	case MoveNear:
		cam.Offset.Z += c.MoveStep
	case MoveFar:
		cam.Offset.Z -= c.MoveStep
	case ScaleUp:
		cam.Scale *= c.ScaleStep
	case ScaleDown:
		cam.Scale /= c.ScaleStep
	case Shorten:
		return c.Model.Deform(-c.LengthStep), nil
	case Lengthen:
		return c.Model.Deform(c.LengthStep), nil
	case SelectNext, SelectPrevious, GrowSphere, ShrinkSphere, InsertSphere, RemoveSphere:
		return c.editSphere(a)
	default:
		return false, nil
	}
	return true, nil
}

func (c *Controller) editSphere(a Action) (bool, error) {
	model := c.Model
	n := model.NumSpheres()
	c.Selected = max(0, min(c.Selected, n-1))

	switch a {
	case SelectNext:
		if c.Selected == n-1 {
			return false, nil
		}
		c.Selected++
		return true, nil
	case SelectPrevious:
		if c.Selected == 0 {
			return false, nil
		}
		c.Selected--
		return true, nil
	}

	r, g, err := model.Node(c.Selected)
	if err != nil {
		return false, err
	}
	switch a {
	case GrowSphere:
		err = model.SetSphere(c.Selected, r+c.RadiusStep, g)
	case ShrinkSphere:
		err = model.SetSphere(c.Selected, r-c.RadiusStep, g)
	case InsertSphere:
		// the new sphere goes after the selected one, with averaged values
		if c.Selected < n-1 {
			r1, g1, err := model.Node(c.Selected + 1)
			if err != nil {
				return false, err
			}
			r, g = (r+r1)/2, (g+g1)/2
		}
		pos := min(c.Selected+1, n-1)
		if err = model.InsertSphere(pos, r, g); err == nil {
			c.Selected = pos
		}
	case RemoveSphere:
		if err = model.RemoveSphere(c.Selected); err == nil {
			c.Selected = min(c.Selected, n-2)
		}
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Render draws one frame of the model into r.
func (c *Controller) Render(r *render3d.Renderer) error {
	m, err := c.Camera.Matrix(c.Model.Center())
	if err != nil {
		return err
	}
	muscle, carcass := c.Model.Meshes()

	r.Clear()
	r.TransformAndAdd(muscle, &m, c.Light, MuscleColor)
	r.TransformAndAdd(carcass, &m, c.Light, CarcassColor)
	return nil
}
