package player

import (
	"jumpbed/internal/config"
	"jumpbed/internal/physics"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Intent is the movement request gathered from input for one frame.
type Intent struct {
	Forward float32 // +1 forward, -1 back
	Strafe  float32 // +1 right, -1 left
	Sprint  bool
	Jump    bool
	Look    rl.Vector3 // camera look direction
}

type State struct {
	physics.Body
	tuning config.Player
}

func New(t config.Player) *State {
	spawn := t.Spawn.Vector3()
	return &State{
		Body: physics.Body{
			Position:         spawn,
			PreviousPosition: spawn,
			HalfExtent:       t.HalfExtent.Vector3(),
		},
		tuning: t,
	}
}

// Integrate applies thrust, jump, damping and gravity, then advances the
// position. Every rate is per frame; only the position step uses dt.
func (s *State) Integrate(in Intent, dt float32) {
	t := s.tuning

	if in.Forward != 0 || in.Strafe != 0 {
		forward, right := directions(in.Look)
		thrust := t.Thrust
		if in.Sprint {
			thrust *= t.SprintMultiplier
		}
		s.Velocity = rl.Vector3Add(s.Velocity, rl.Vector3Scale(forward, in.Forward*thrust))
		s.Velocity = rl.Vector3Add(s.Velocity, rl.Vector3Scale(right, in.Strafe*thrust))
	}

	if in.Jump && !s.Airborne {
		s.Velocity.Y += t.JumpImpulse
		s.Airborne = true
	}

	s.Velocity.X *= t.HorizontalDamping
	s.Velocity.Z *= t.HorizontalDamping

	s.Velocity.Y -= t.Gravity
	if s.Velocity.Y < t.TerminalVelocity {
		s.Velocity.Y = t.TerminalVelocity
	}

	s.Position = rl.Vector3Add(s.Position, rl.Vector3Scale(s.Velocity, dt))
}

// Resolve pushes the player out of the obstacles axis by axis.
func (s *State) Resolve(obstacles []physics.AABB) physics.Hits {
	return physics.Resolve(&s.Body, obstacles, s.tuning.CollisionDamping)
}

// ClampToFloor keeps the player on or above the floor regardless of obstacles.
func (s *State) ClampToFloor() {
	if s.Position.Y < s.tuning.FloorY {
		s.Position.Y = s.tuning.FloorY
		s.Velocity.Y = 0
		s.Airborne = false
	}
	if s.PreviousPosition.Y < s.tuning.FloorY {
		s.PreviousPosition.Y = s.tuning.FloorY
	}
}

// Step runs one full frame of player simulation.
func (s *State) Step(in Intent, dt float32, obstacles []physics.AABB) physics.Hits {
	s.Integrate(in, dt)
	hits := s.Resolve(obstacles)
	s.ClampToFloor()
	return hits
}

// Size is the full box size, for drawing.
func (s *State) Size() rl.Vector3 {
	return rl.Vector3Scale(s.HalfExtent, 2)
}

// directions flattens the look vector onto the ground plane. The right
// vector is forward rotated a quarter turn about +Y.
func directions(look rl.Vector3) (forward, right rl.Vector3) {
	length := math32.Sqrt(look.X*look.X + look.Z*look.Z)
	if length == 0 {
		return rl.Vector3{}, rl.Vector3{}
	}
	forward = rl.Vector3{X: look.X / length, Z: look.Z / length}
	right = rl.Vector3{X: -forward.Z, Z: forward.X}
	return
}
