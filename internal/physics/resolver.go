package physics

import rl "github.com/gen2brain/raylib-go/raylib"

// Body is the kinematic box the resolver pushes around. PreviousPosition is
// the last collision-free value per axis, not the position one frame ago.
type Body struct {
	Position         rl.Vector3
	PreviousPosition rl.Vector3
	Velocity         rl.Vector3
	HalfExtent       rl.Vector3
	Airborne         bool
}

func (b *Body) Bounds() AABB {
	return NewAABBFromHalfExtents(b.Position, b.HalfExtent)
}

// Hits records which axes collided during one Resolve call.
type Hits struct {
	X, Y, Z bool
}

func (h Hits) Any() bool {
	return h.X || h.Y || h.Z
}

// sweeps returns the three axis-separated boxes: each one takes the current
// value on its own axis and the previous value on the other two.
func (b *Body) sweeps() (x, y, z AABB) {
	cur, prev := b.Position, b.PreviousPosition
	x = NewAABBFromHalfExtents(rl.Vector3{X: cur.X, Y: prev.Y, Z: prev.Z}, b.HalfExtent)
	y = NewAABBFromHalfExtents(rl.Vector3{X: prev.X, Y: cur.Y, Z: prev.Z}, b.HalfExtent)
	z = NewAABBFromHalfExtents(rl.Vector3{X: prev.X, Y: prev.Y, Z: cur.Z}, b.HalfExtent)
	return
}

// Resolve tests the body against every obstacle one axis at a time and rolls
// each colliding axis back to its previous value. Velocity on a colliding
// axis is scaled by damping once per obstacle hit.
func Resolve(b *Body, obstacles []AABB, damping float32) Hits {
	var hits Hits
	sweepX, sweepY, sweepZ := b.sweeps()

	for _, box := range obstacles {
		if sweepX.Intersects(box) {
			b.Velocity.X *= damping
			hits.X = true
		}
		if sweepZ.Intersects(box) {
			b.Velocity.Z *= damping
			hits.Z = true
		}
		if sweepY.Intersects(box) {
			if b.Velocity.Y < 0 {
				// landed on top
				b.Airborne = false
			} else {
				b.Velocity.Y = 0
			}
			b.Velocity.Y *= damping
			hits.Y = true
		}
	}

	if hits.X {
		b.Position.X = b.PreviousPosition.X
	} else {
		b.PreviousPosition.X = b.Position.X
	}
	if hits.Y {
		b.Position.Y = b.PreviousPosition.Y
	} else {
		b.PreviousPosition.Y = b.Position.Y
	}
	if hits.Z {
		b.Position.Z = b.PreviousPosition.Z
	} else {
		b.PreviousPosition.Z = b.Position.Z
	}

	return hits
}
