package world

import (
	"math/rand"

	"jumpbed/internal/config"
	"jumpbed/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog/log"
)

// HalfExtentXZ is the horizontal half size shared by every obstacle.
const HalfExtentXZ = 1.0

const wallHeight = 5.0

var palette = []rl.Color{
	rl.Red, rl.Blue, rl.Green, rl.Purple, rl.Orange,
	rl.Yellow, rl.Pink, rl.SkyBlue, rl.Lime, rl.Magenta,
}

// Obstacle is an axis aligned box platform. Position is the box center.
type Obstacle struct {
	Position rl.Vector3
	Height   float32
	Color    rl.Color
}

func (o Obstacle) Bounds() physics.AABB {
	return physics.NewAABBFromCenter(o.Position, o.Size())
}

func (o Obstacle) Size() rl.Vector3 {
	return rl.Vector3{X: 2 * HalfExtentXZ, Y: o.Height, Z: 2 * HalfExtentXZ}
}

// World is the static scene: a floor, three walls and the obstacle set.
// Nothing in it changes after New returns.
type World struct {
	Seed      int64
	RoomSize  float32
	Obstacles []Obstacle

	colliders []physics.AABB
}

func New(s config.Scene, seed int64) *World {
	rng := rand.New(rand.NewSource(seed))
	w := FromObstacles(seed, s.RoomSize, Generate(rng, s))

	log.Info().
		Int64("seed", seed).
		Int("obstacles", len(w.Obstacles)).
		Msg("generated scene")
	return w
}

// FromObstacles builds a world around an explicit obstacle set.
func FromObstacles(seed int64, roomSize float32, obstacles []Obstacle) *World {
	w := &World{
		Seed:      seed,
		RoomSize:  roomSize,
		Obstacles: obstacles,
		colliders: make([]physics.AABB, len(obstacles)),
	}
	for i, o := range obstacles {
		w.colliders[i] = o.Bounds()
	}
	return w
}

// Generate places n obstacles uniformly inside the configured ranges.
func Generate(rng *rand.Rand, s config.Scene) []Obstacle {
	obstacles := make([]Obstacle, s.Obstacles)
	for i := range obstacles {
		obstacles[i] = Obstacle{
			Position: rl.Vector3{
				X: between(rng, -s.Spread, s.Spread),
				Y: between(rng, s.MinElevation, s.MaxElevation),
				Z: between(rng, -s.Spread, s.Spread),
			},
			Height: between(rng, s.MinHeight, s.MaxHeight),
			Color:  palette[i%len(palette)],
		}
	}
	return obstacles
}

func between(rng *rand.Rand, lo, hi float32) float32 {
	return lo + rng.Float32()*(hi-lo)
}

// Colliders returns the obstacle boxes in the same order as Obstacles.
func (w *World) Colliders() []physics.AABB {
	return w.colliders
}

// Draw renders the room and every obstacle the camera can see. Must be
// called between BeginMode3D and EndMode3D.
func (w *World) Draw(camera rl.Camera3D, aspect float32) {
	half := w.RoomSize / 2

	rl.DrawPlane(rl.Vector3Zero(), rl.Vector2{X: w.RoomSize, Y: w.RoomSize}, rl.LightGray)
	rl.DrawCube(rl.Vector3{X: -half, Y: wallHeight / 2}, 1, wallHeight, w.RoomSize, rl.Blue)
	rl.DrawCube(rl.Vector3{X: half, Y: wallHeight / 2}, 1, wallHeight, w.RoomSize, rl.Lime)
	rl.DrawCube(rl.Vector3{Y: wallHeight / 2, Z: half}, w.RoomSize, wallHeight, 1, rl.Gold)

	frustum := ExtractFrustum(camera, aspect)
	for i, o := range w.Obstacles {
		box := w.colliders[i]
		if !frustum.ContainsBox(box) {
			continue
		}
		rl.DrawCubeV(box.Center(), box.Size(), o.Color)
		rl.DrawCubeWiresV(box.Center(), box.Size(), rl.Maroon)
	}
}
