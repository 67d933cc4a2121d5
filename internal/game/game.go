package game

import (
	"context"
	"fmt"
	"io"
	"time"

	"jumpbed/internal/camera"
	"jumpbed/internal/config"
	"jumpbed/internal/console"
	"jumpbed/internal/input"
	"jumpbed/internal/physics"
	"jumpbed/internal/player"
	"jumpbed/internal/script"
	"jumpbed/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog/log"
)

// Game is everything one run owns. It is created at scene start and
// released with Close.
type Game struct {
	Config   *config.Config
	Bindings input.Bindings
	World    *world.World
	Player   *player.State
	Rig      *camera.Rig
	Console  *console.Console
	Lua      *script.Interpreter

	DebugMode bool

	feeder *script.Feeder
	echo   io.Writer

	lastHits physics.Hits
	frameDt  float32

	// Debug timing (ms)
	updateMs float64
	drawMs   float64
}

type Option func(*Game)

// WithFeeder executes lines read by f on the frame loop and writes each
// result to echo.
func WithFeeder(f *script.Feeder, echo io.Writer) Option {
	return func(g *Game) {
		g.feeder = f
		g.echo = echo
	}
}

// WithCameraApplier replaces the raylib camera update, mostly for tests.
func WithCameraApplier(a camera.Applier) Option {
	return func(g *Game) {
		g.Rig = camera.NewWithApplier(g.Config.Camera, a)
	}
}

// WithWorld replaces the generated scene.
func WithWorld(w *world.World) Option {
	return func(g *Game) {
		g.World = w
	}
}

func New(cfg *config.Config, opts ...Option) *Game {
	seed := cfg.Scene.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := &Game{
		Config:   cfg,
		Bindings: input.DefaultBindings(),
		World:    world.New(cfg.Scene, seed),
		Player:   player.New(cfg.Player),
		Rig:      camera.New(cfg.Camera),
		Console:  console.New(cfg.Console),
		Lua:      script.New(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Game) Close() {
	g.Lua.Close()
}

// Run opens the window and drives frames until it is closed or ctx ends.
func (g *Game) Run(ctx context.Context) error {
	w := g.Config.Window
	rl.InitWindow(w.Width, w.Height, w.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(w.TargetFPS)
	initStyle()

	src := input.Raylib{}
	src.SetCaptured(true)

	if g.feeder != nil {
		g.feeder.Start(ctx)
	}

	log.Info().
		Int32("width", w.Width).
		Int32("height", w.Height).
		Int32("fps", w.TargetFPS).
		Msg("window opened")
	defer log.Info().Msg("window closed")

	for !rl.WindowShouldClose() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		g.Update(src, src)
		g.Draw()
	}
	return nil
}

// Update advances one frame: console, camera, player, collisions, follow.
func (g *Game) Update(src input.Source, cursor input.Cursor) {
	updateStart := time.Now()
	b := g.Bindings
	g.frameDt = src.FrameTime()

	if src.KeyPressed(b.Console) {
		cursor.SetCaptured(g.Console.Toggle())
	}
	g.Console.HandleInput(src, b, g.Lua)
	g.Console.Tick()

	var intent player.Intent
	if !g.Console.Open {
		if src.KeyPressed(b.Debug) {
			g.DebugMode = !g.DebugMode
		}

		g.Rig.HandleToggles(src, b)
		g.Rig.Update(g.Rig.FrameFromInput(src, b))

		intent = player.Intent{
			Forward: input.Axis(src, b.MoveForward, b.MoveBack),
			Strafe:  input.Axis(src, b.MoveRight, b.MoveLeft),
			Sprint:  src.KeyDown(b.Sprint),
			Jump:    src.KeyPressed(b.Jump),
		}
	}
	intent.Look = g.Rig.LookDirection()

	before := g.Player.Position
	g.lastHits = g.Player.Step(intent, g.frameDt, g.World.Colliders())
	g.Rig.Follow(rl.Vector3Subtract(g.Player.Position, before))

	g.drainFeeder()

	g.updateMs = float64(time.Since(updateStart).Microseconds()) / 1000.0
}

func (g *Game) drainFeeder() {
	if g.feeder == nil {
		return
	}
	for _, line := range g.feeder.Drain() {
		log.Info().Str("line", line).Msg("stdin submit")
		g.Console.Show(g.Lua.Exec(line))
		if g.echo != nil && g.Console.Output != "" {
			fmt.Fprintln(g.echo, g.Console.Output)
		}
	}
}

// LastHits reports the axes that collided during the latest frame.
func (g *Game) LastHits() physics.Hits {
	return g.lastHits
}

// Eval runs one line exactly as given, the way stdin lines run, and returns
// what the overlay would display.
func Eval(cfg config.Console, line string) string {
	lua := script.New()
	defer lua.Close()

	c := console.New(cfg)
	c.Show(lua.Exec(line))
	return c.Output
}
