package physics

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
)

var playerHalf = rl.Vector3{X: 0.4, Y: 0.9, Z: 0.4}

func box(x, y, z, height float32) AABB {
	return NewAABBFromHalfExtents(rl.Vector3{X: x, Y: y, Z: z}, rl.Vector3{X: 1, Y: height / 2, Z: 1})
}

func TestAABBIntersects(t *testing.T) {
	a := NewAABBFromCenter(rl.Vector3{}, rl.Vector3{X: 2, Y: 2, Z: 2})

	assert.True(t, a.Intersects(NewAABBFromCenter(rl.Vector3{X: 1.5}, rl.Vector3{X: 2, Y: 2, Z: 2})))
	// touching faces overlap
	assert.True(t, a.Intersects(NewAABBFromCenter(rl.Vector3{X: 2}, rl.Vector3{X: 2, Y: 2, Z: 2})))
	assert.False(t, a.Intersects(NewAABBFromCenter(rl.Vector3{X: 2.01}, rl.Vector3{X: 2, Y: 2, Z: 2})))
	assert.False(t, a.Intersects(NewAABBFromCenter(rl.Vector3{Y: 3}, rl.Vector3{X: 2, Y: 2, Z: 2})))

	assert.Equal(t, rl.Vector3{X: 2, Y: 2, Z: 2}, a.Size())
	assert.Equal(t, rl.Vector3{}, a.Center())
}

func TestResolveNoObstacles(t *testing.T) {
	b := &Body{
		Position:         rl.Vector3{X: 3, Y: 4, Z: 5},
		PreviousPosition: rl.Vector3{X: 1, Y: 2, Z: 3},
		Velocity:         rl.Vector3{X: 1, Y: 1, Z: 1},
		HalfExtent:       playerHalf,
	}

	hits := Resolve(b, nil, 0.2)

	assert.False(t, hits.Any())
	assert.Equal(t, rl.Vector3{X: 3, Y: 4, Z: 5}, b.Position)
	assert.Equal(t, b.Position, b.PreviousPosition)
	assert.Equal(t, rl.Vector3{X: 1, Y: 1, Z: 1}, b.Velocity)
}

func TestResolveFarObstacleLeavesAxesAlone(t *testing.T) {
	b := &Body{
		Position:         rl.Vector3{X: 0.5, Y: 3, Z: -0.5},
		PreviousPosition: rl.Vector3{X: 0, Y: 3, Z: 0},
		Velocity:         rl.Vector3{X: 4, Y: -2, Z: -4},
		HalfExtent:       playerHalf,
	}

	hits := Resolve(b, []AABB{box(10, 3, 10, 2), box(-10, 1, -10, 4)}, 0.2)

	assert.Equal(t, Hits{}, hits)
	assert.Equal(t, rl.Vector3{X: 0.5, Y: 3, Z: -0.5}, b.Position)
	assert.Equal(t, b.Position, b.PreviousPosition)
	assert.Equal(t, rl.Vector3{X: 4, Y: -2, Z: -4}, b.Velocity)
}

func TestResolveAxisIndependence(t *testing.T) {
	b := &Body{
		Position:         rl.Vector3{X: 1, Y: 4.8, Z: 1},
		PreviousPosition: rl.Vector3{X: 0, Y: 5, Z: 0},
		Velocity:         rl.Vector3{X: 10, Y: -1, Z: 10},
		HalfExtent:       playerHalf,
		Airborne:         true,
	}
	onlyX := box(2.2, 5, 0, 1)
	onlyZ := box(0, 5, 2.2, 1)

	hits := Resolve(b, []AABB{onlyX, onlyZ}, 0.2)

	assert.Equal(t, Hits{X: true, Z: true}, hits)
	assert.Equal(t, float32(0), b.Position.X)
	assert.Equal(t, float32(0), b.Position.Z)
	assert.Equal(t, float32(4.8), b.Position.Y)
	assert.Equal(t, float32(4.8), b.PreviousPosition.Y)
	assert.InDelta(t, 2, b.Velocity.X, 1e-6)
	assert.InDelta(t, 2, b.Velocity.Z, 1e-6)
	assert.Equal(t, float32(-1), b.Velocity.Y)
	assert.True(t, b.Airborne)
}

func TestResolveLanding(t *testing.T) {
	// falling onto a platform whose top is at y=3
	b := &Body{
		Position:         rl.Vector3{X: 0, Y: 3.8, Z: 0},
		PreviousPosition: rl.Vector3{X: 0, Y: 4, Z: 0},
		Velocity:         rl.Vector3{Y: -10},
		HalfExtent:       playerHalf,
		Airborne:         true,
	}

	hits := Resolve(b, []AABB{box(0, 2.5, 0, 1)}, 0.2)

	assert.Equal(t, Hits{Y: true}, hits)
	assert.False(t, b.Airborne)
	assert.InDelta(t, -2, b.Velocity.Y, 1e-6)
	assert.Equal(t, float32(4), b.Position.Y)
}

func TestResolveCeiling(t *testing.T) {
	// rising into the underside of a platform at y=6
	b := &Body{
		Position:         rl.Vector3{X: 0, Y: 5.2, Z: 0},
		PreviousPosition: rl.Vector3{X: 0, Y: 4.9, Z: 0},
		Velocity:         rl.Vector3{Y: 12},
		HalfExtent:       playerHalf,
		Airborne:         true,
	}

	hits := Resolve(b, []AABB{box(0, 6.5, 0, 1)}, 0.2)

	assert.Equal(t, Hits{Y: true}, hits)
	assert.True(t, b.Airborne)
	assert.Equal(t, float32(0), b.Velocity.Y)
	assert.Equal(t, float32(4.9), b.Position.Y)
}

func TestResolveDampsPerObstacle(t *testing.T) {
	b := &Body{
		Position:         rl.Vector3{X: 1, Y: 5, Z: 0},
		PreviousPosition: rl.Vector3{X: 0, Y: 5, Z: 0},
		Velocity:         rl.Vector3{X: 10},
		HalfExtent:       playerHalf,
	}

	Resolve(b, []AABB{box(2.2, 5, 0, 1), box(2.2, 5, 0.5, 1)}, 0.2)

	assert.InDelta(t, 0.4, b.Velocity.X, 1e-5)
}

func TestResolveFlagsAreNotSticky(t *testing.T) {
	b := &Body{
		Position:         rl.Vector3{X: 1, Y: 5, Z: 0},
		PreviousPosition: rl.Vector3{X: 0, Y: 5, Z: 0},
		HalfExtent:       playerHalf,
	}
	obstacles := []AABB{box(2.2, 5, 0, 1)}

	assert.True(t, Resolve(b, obstacles, 0.2).X)

	// moving away on the next frame is free again
	b.Position.X = -1
	hits := Resolve(b, obstacles, 0.2)
	assert.False(t, hits.X)
	assert.Equal(t, float32(-1), b.Position.X)
	assert.Equal(t, float32(-1), b.PreviousPosition.X)
}
