package game

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"jumpbed/internal/camera"
	"jumpbed/internal/config"
	"jumpbed/internal/input"
	"jumpbed/internal/physics"
	"jumpbed/internal/script"
	"jumpbed/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// frameInput is one frame of scripted input.
type frameInput struct {
	down    map[input.Key]bool
	pressed map[input.Key]bool
	chars   []rune
	mouse   rl.Vector2
}

func (f *frameInput) KeyDown(k input.Key) bool    { return f.down[k] }
func (f *frameInput) KeyPressed(k input.Key) bool { return f.pressed[k] }
func (f *frameInput) MouseDelta() rl.Vector2      { return f.mouse }
func (f *frameInput) WheelMove() float32          { return 0 }
func (f *frameInput) FrameTime() float32          { return 1.0 / 60.0 }

func (f *frameInput) CharPressed() rune {
	if len(f.chars) == 0 {
		return 0
	}
	r := f.chars[0]
	f.chars = f.chars[1:]
	return r
}

type cursor struct {
	captured []bool
}

func (c *cursor) SetCaptured(captured bool) {
	c.captured = append(c.captured, captured)
}

type cameraCalls struct {
	n int
}

func (c *cameraCalls) apply(*rl.Camera3D, camera.Mode, camera.Frame) {
	c.n++
}

func press(keys ...input.Key) *frameInput {
	f := &frameInput{pressed: map[input.Key]bool{}}
	for _, k := range keys {
		f.pressed[k] = true
	}
	return f
}

func newGame(t *testing.T, obstacles []world.Obstacle, opts ...Option) (*Game, *cameraCalls) {
	cfg, err := config.Process(nil)
	require.NoError(t, err)
	cfg.Scene.Seed = 1

	calls := &cameraCalls{}
	opts = append([]Option{
		WithCameraApplier(calls.apply),
		WithWorld(world.FromObstacles(1, cfg.Scene.RoomSize, obstacles)),
	}, opts...)

	g := New(cfg, opts...)
	t.Cleanup(g.Close)
	return g, calls
}

func TestNewGeneratesScene(t *testing.T) {
	cfg, err := config.Process(nil)
	require.NoError(t, err)
	cfg.Scene.Seed = 5

	g := New(cfg)
	defer g.Close()

	assert.Len(t, g.World.Obstacles, 10)
	assert.Equal(t, int64(5), g.World.Seed)
	assert.Equal(t, rl.Vector3{X: 0, Y: 1, Z: 0}, g.Player.Position)
	assert.Equal(t, camera.ThirdPerson, g.Rig.Mode)
}

func TestOverlappingObstacleScenario(t *testing.T) {
	g, _ := newGame(t, []world.Obstacle{{Position: rl.Vector3{X: 0, Y: 1, Z: 2}, Height: 1}})
	g.Player.Position = rl.Vector3{X: 0, Y: 1, Z: 2}
	g.Player.PreviousPosition = g.Player.Position
	g.Player.Airborne = true

	g.Update(&frameInput{}, &cursor{})

	assert.Equal(t, physics.Hits{X: true, Y: true, Z: true}, g.LastHits())
	assert.Equal(t, float32(0), g.Player.Position.X)
	assert.Equal(t, float32(2), g.Player.Position.Z)
	assert.Equal(t, float32(1), g.Player.Position.Y)
	assert.False(t, g.Player.Airborne)
	assert.InDelta(t, -0.4, g.Player.Velocity.Y, 1e-6)
}

func TestFloorInvariantOverManyFrames(t *testing.T) {
	cfg, err := config.Process(nil)
	require.NoError(t, err)
	cfg.Scene.Seed = 11
	cfg.Scene.MinElevation = 0
	calls := &cameraCalls{}
	g := New(cfg, WithCameraApplier(calls.apply))
	defer g.Close()

	b := g.Bindings
	for i := 0; i < 600; i++ {
		in := &frameInput{down: map[input.Key]bool{b.MoveForward: i%3 != 0, b.MoveRight: i%5 == 0, b.Sprint: i%7 == 0}}
		if i%40 == 0 {
			in.pressed = map[input.Key]bool{b.Jump: true}
		}
		g.Update(in, &cursor{})

		require.GreaterOrEqual(t, g.Player.Position.Y, float32(1))
		require.GreaterOrEqual(t, g.Player.Velocity.Y, float32(-50))
	}
	assert.Equal(t, 600, calls.n)
}

func TestJumpWhileAirborneIsIgnored(t *testing.T) {
	g, _ := newGame(t, nil)
	b := g.Bindings

	g.Update(press(b.Jump), &cursor{})
	require.True(t, g.Player.Airborne)
	vy := g.Player.Velocity.Y

	g.Update(press(b.Jump), &cursor{})
	assert.Equal(t, vy-2, g.Player.Velocity.Y)
}

func TestConsoleCapturesInput(t *testing.T) {
	g, calls := newGame(t, nil)
	b := g.Bindings
	cur := &cursor{}

	g.Update(press(b.Console), cur)
	require.True(t, g.Console.Open)
	assert.Equal(t, []bool{false}, cur.captured)
	assert.Equal(t, 0, calls.n)

	// movement, jump and projection keys are ignored while typing
	in := &frameInput{
		chars:   []rune("print(1+1)"),
		down:    map[input.Key]bool{b.MoveForward: true},
		pressed: map[input.Key]bool{b.Jump: true, b.Projection: true},
	}
	g.Update(in, cur)
	assert.False(t, g.Player.Airborne)
	assert.Equal(t, rl.CameraPerspective, g.Rig.Camera.Projection)
	assert.Equal(t, float32(0), g.Player.Velocity.X)
	assert.Equal(t, float32(0), g.Player.Velocity.Z)
	assert.Equal(t, 0, calls.n)
	assert.Equal(t, "print(1+1)", g.Console.Line.String())

	g.Update(press(b.Submit), cur)
	assert.Equal(t, "2", g.Console.Output)

	g.Update(press(b.Console), cur)
	assert.False(t, g.Console.Open)
	assert.Equal(t, []bool{false, true}, cur.captured)
	assert.Equal(t, 1, calls.n)
}

func TestProjectionKey(t *testing.T) {
	g, _ := newGame(t, nil)
	b := g.Bindings

	g.Update(press(b.Projection), &cursor{})
	assert.Equal(t, rl.CameraOrthographic, g.Rig.Camera.Projection)
	assert.Equal(t, float32(20), g.Rig.Camera.Fovy)
	assert.Equal(t, camera.ThirdPerson, g.Rig.Mode)

	g.Update(press(b.Projection), &cursor{})
	assert.Equal(t, float32(60), g.Rig.Camera.Fovy)
}

func TestThirdPersonFollowsPlayer(t *testing.T) {
	g, _ := newGame(t, nil)
	b := g.Bindings
	start := g.Rig.Camera.Position

	g.Update(press(b.Jump), &cursor{})

	moved := rl.Vector3Subtract(g.Rig.Camera.Position, start)
	assert.InDelta(t, g.Player.Position.Y-1, moved.Y, 1e-5)
}

func TestDebugToggle(t *testing.T) {
	g, _ := newGame(t, nil)

	g.Update(press(g.Bindings.Debug), &cursor{})
	assert.True(t, g.DebugMode)
}

func TestFeederLinesRunOnFrame(t *testing.T) {
	var echo bytes.Buffer
	feeder := script.NewFeeder(strings.NewReader("x = 20\nprint(x + 1)\nnope(\n"))
	g, _ := newGame(t, nil, WithFeeder(feeder, &echo))

	feeder.Start(context.Background())
	select {
	case <-feeder.Done():
	case <-time.After(time.Second):
		t.Fatal("feeder did not finish")
	}

	g.Update(&frameInput{}, &cursor{})

	out := echo.String()
	assert.Contains(t, out, "21\n")
	assert.Contains(t, out, "Lua Error: ")
	assert.True(t, g.Console.IsError)
}

func TestEval(t *testing.T) {
	cfg, err := config.Process(nil)
	require.NoError(t, err)

	assert.Equal(t, "2", Eval(cfg.Console, "print(1+1)"))
	assert.Equal(t, "", Eval(cfg.Console, "return 1+1"))
	assert.True(t, strings.HasPrefix(Eval(cfg.Console, "1+1"), "Lua Error: "))
}

func TestEvalRunsWholeLine(t *testing.T) {
	cfg, err := config.Process(nil)
	require.NoError(t, err)

	long := strings.Repeat("a", cfg.Console.MaxLine+30)
	assert.Equal(t, long, Eval(cfg.Console, `print("`+long+`")`))
	assert.Equal(t, "héllo", Eval(cfg.Console, `print("héllo")`))
}
