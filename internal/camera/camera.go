package camera

import (
	"jumpbed/internal/config"
	"jumpbed/internal/input"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog/log"
)

type Mode int

const (
	Free Mode = iota
	FirstPerson
	ThirdPerson
	Orbital
)

func (m Mode) String() string {
	switch m {
	case Free:
		return "FREE"
	case FirstPerson:
		return "FIRST_PERSON"
	case ThirdPerson:
		return "THIRD_PERSON"
	case Orbital:
		return "ORBITAL"
	}
	return "CUSTOM"
}

const (
	PerspectiveFovy  = 60.0
	OrthographicFovy = 20.0
)

var (
	worldUp            = rl.Vector3{X: 0, Y: 1, Z: 0}
	perspectiveHome    = rl.Vector3{X: 0, Y: 2, Z: 10}
	orthographicHome   = rl.Vector3{X: 0, Y: 2, Z: -100}
	defaultFramingLook = rl.Vector3{X: 0, Y: 2, Z: 0}
)

// Frame is one update's worth of camera intent: movement is
// (forward, right, up) in signed units, rotation is (yaw, pitch, roll) in
// degrees and zoom moves the camera along its look direction.
type Frame struct {
	Movement rl.Vector3
	Rotation rl.Vector3
	Zoom     float32
}

// Applier moves the camera according to the mode's semantics.
type Applier func(cam *rl.Camera3D, mode Mode, f Frame)

// motion is how a mode interprets a Frame.
type motion struct {
	aroundTarget bool // rotate the eye about the target instead of turning in place
	worldPlane   bool // forward and right movement stays level
	translate    bool
	vertical     bool
	roll         bool
	zoom         bool
}

func motionFor(m Mode) motion {
	switch m {
	case Free:
		return motion{translate: true, vertical: true, roll: true, zoom: true}
	case FirstPerson:
		return motion{translate: true, worldPlane: true}
	case ThirdPerson:
		return motion{aroundTarget: true, translate: true, worldPlane: true, zoom: true}
	case Orbital:
		return motion{aroundTarget: true, zoom: true}
	}
	return motion{translate: true, worldPlane: true, vertical: true, zoom: true}
}

func flag(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

// UpdatePro moves the camera with raylib's camera helpers the way the mode
// asks: free flight follows pitch, first person walks level with a fixed
// eye, third person and orbital turn about the target.
func UpdatePro(cam *rl.Camera3D, mode Mode, f Frame) {
	mv := motionFor(mode)
	around := flag(mv.aroundTarget)

	rl.CameraPitch(cam, -f.Rotation.Y*rl.Deg2rad, 1, around, 0)
	rl.CameraYaw(cam, -f.Rotation.X*rl.Deg2rad, around)
	if mv.roll {
		rl.CameraRoll(cam, f.Rotation.Z*rl.Deg2rad)
	}

	if mv.translate {
		rl.CameraMoveForward(cam, f.Movement.X, flag(mv.worldPlane))
		rl.CameraMoveRight(cam, f.Movement.Y, flag(mv.worldPlane))
	}
	if mv.vertical {
		rl.CameraMoveUp(cam, f.Movement.Z)
	}
	if mv.zoom {
		rl.CameraMoveToTarget(cam, f.Zoom)
	}
}

type Rig struct {
	Camera rl.Camera3D
	Mode   Mode

	apply  Applier
	tuning config.Camera
}

func New(t config.Camera) *Rig {
	return NewWithApplier(t, UpdatePro)
}

func NewWithApplier(t config.Camera, apply Applier) *Rig {
	return &Rig{
		Camera: rl.Camera3D{
			Position:   perspectiveHome,
			Target:     defaultFramingLook,
			Up:         worldUp,
			Fovy:       PerspectiveFovy,
			Projection: rl.CameraPerspective,
		},
		Mode:   ThirdPerson,
		apply:  apply,
		tuning: t,
	}
}

// SetMode switches mode and clears any accumulated roll.
func (r *Rig) SetMode(m Mode) {
	r.Mode = m
	r.Camera.Up = worldUp
	log.Debug().Stringer("mode", m).Msg("camera mode")
}

// ToggleProjection flips between a perspective view near the player and a
// far orthographic view. Both directions force third person.
func (r *Rig) ToggleProjection() {
	r.SetMode(ThirdPerson)
	r.Camera.Target = defaultFramingLook

	if r.Camera.Projection == rl.CameraPerspective {
		r.Camera.Position = orthographicHome
		r.Camera.Fovy = OrthographicFovy
		r.Camera.Projection = rl.CameraOrthographic
	} else {
		r.Camera.Position = perspectiveHome
		r.Camera.Fovy = PerspectiveFovy
		r.Camera.Projection = rl.CameraPerspective
	}
	log.Debug().Str("projection", r.ProjectionName()).Msg("camera projection")
}

// HandleToggles applies mode and projection key edges.
func (r *Rig) HandleToggles(src input.Source, b input.Bindings) {
	switch {
	case src.KeyPressed(b.Free):
		r.SetMode(Free)
	case src.KeyPressed(b.FirstPerson):
		r.SetMode(FirstPerson)
	case src.KeyPressed(b.ThirdPerson):
		r.SetMode(ThirdPerson)
	case src.KeyPressed(b.Orbital):
		r.SetMode(Orbital)
	}

	if src.KeyPressed(b.Projection) {
		r.ToggleProjection()
	}
}

// FrameFromInput gathers held movement keys, mouse look and wheel zoom.
func (r *Rig) FrameFromInput(src input.Source, b input.Bindings) Frame {
	mouse := src.MouseDelta()
	return Frame{
		Movement: rl.Vector3{
			X: input.Axis(src, b.CameraForward, b.CameraBack),
			Y: input.Axis(src, b.CameraRight, b.CameraLeft),
			Z: input.Axis(src, b.CameraUp, b.CameraDown),
		},
		Rotation: rl.Vector3{
			X: mouse.X * r.tuning.LookSensitivity,
			Y: mouse.Y * r.tuning.LookSensitivity,
		},
		Zoom: src.WheelMove() * r.tuning.ZoomSpeed,
	}
}

// Update re-anchors the target one unit along the look direction and then
// applies the frame.
func (r *Rig) Update(f Frame) {
	r.Camera.Target = rl.Vector3Add(r.Camera.Position, r.LookDirection())
	r.apply(&r.Camera, r.Mode, f)
}

// Follow keeps a third person camera framed on a moving player.
func (r *Rig) Follow(delta rl.Vector3) {
	if r.Mode != ThirdPerson {
		return
	}
	r.Camera.Position = rl.Vector3Add(r.Camera.Position, delta)
	r.Camera.Target = rl.Vector3Add(r.Camera.Target, delta)
}

func (r *Rig) LookDirection() rl.Vector3 {
	return rl.Vector3Normalize(rl.Vector3Subtract(r.Camera.Target, r.Camera.Position))
}

func (r *Rig) ProjectionName() string {
	if r.Camera.Projection == rl.CameraOrthographic {
		return "ORTHOGRAPHIC"
	}
	return "PERSPECTIVE"
}
