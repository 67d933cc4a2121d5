package game

import (
	"fmt"
	"time"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	colorBgPanel   = rl.NewColor(18, 18, 24, 245)
	colorBgElement = rl.NewColor(28, 28, 38, 255)
	colorAccent    = rl.NewColor(108, 99, 255, 255)
	colorText      = rl.NewColor(200, 200, 208, 255)
	colorError     = rl.NewColor(255, 110, 110, 255)
)

const (
	hudFont     = 10
	consoleFont = 20
)

func initStyle() {
	gui.SetStyle(gui.DEFAULT, gui.BACKGROUND_COLOR, gui.NewColorPropertyValue(colorBgPanel))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_NORMAL, gui.NewColorPropertyValue(colorBgElement))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(colorText))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_NORMAL, gui.NewColorPropertyValue(colorAccent))
	gui.SetStyle(gui.DEFAULT, gui.LINE_COLOR, gui.NewColorPropertyValue(colorAccent))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, hudFont)
}

func (g *Game) Draw() {
	drawStart := time.Now()

	rl.BeginDrawing()
	rl.ClearBackground(rl.RayWhite)

	cam := g.Rig.Camera
	aspect := float32(rl.GetScreenWidth()) / float32(rl.GetScreenHeight())

	rl.BeginMode3D(cam)
	g.World.Draw(cam, aspect)
	rl.DrawCubeV(g.Player.Position, g.Player.Size(), rl.Purple)
	rl.DrawCubeWiresV(g.Player.Position, g.Player.Size(), rl.DarkPurple)
	if g.DebugMode {
		rl.DrawBoundingBox(g.Player.Bounds().BoundingBox(), rl.Red)
	}
	rl.EndMode3D()

	g.drawHUD()
	g.drawConsole()

	rl.EndDrawing()
	g.drawMs = float64(time.Since(drawStart).Microseconds()) / 1000.0
}

func (g *Game) drawHUD() {
	gui.Panel(rl.Rectangle{X: 5, Y: 5, Width: 330, Height: 100}, "Controls")
	lines := []string{
		"- Arrows to move, Shift to sprint, Space to jump",
		"- WASD/QE and mouse to move the camera",
		"- 1-4 to change camera mode, P to toggle projection",
		"- Tab to open the console, F1 for debug",
	}
	for i, line := range lines {
		rl.DrawText(line, 15, int32(35+i*15), hudFont, rl.Black)
	}

	w := float32(rl.GetScreenWidth())
	gui.Panel(rl.Rectangle{X: w - 205, Y: 5, Width: 200, Height: 70}, "Camera status")
	rl.DrawText(fmt.Sprintf("- Mode: %s", g.Rig.Mode), int32(w)-195, 35, hudFont, rl.Black)
	rl.DrawText(fmt.Sprintf("- Projection: %s", g.Rig.ProjectionName()), int32(w)-195, 50, hudFont, rl.Black)

	if !g.DebugMode {
		return
	}

	p := g.Player
	debug := []string{
		fmt.Sprintf("Position: (%.2f, %.2f, %.2f)", p.Position.X, p.Position.Y, p.Position.Z),
		fmt.Sprintf("Velocity: (%.2f, %.2f, %.2f)", p.Velocity.X, p.Velocity.Y, p.Velocity.Z),
		fmt.Sprintf("Airborne: %t  Hits: x=%t y=%t z=%t", p.Airborne, g.lastHits.X, g.lastHits.Y, g.lastHits.Z),
		fmt.Sprintf("Seed: %d", g.World.Seed),
		fmt.Sprintf("Update: %.2f ms  Draw: %.2f ms", g.updateMs, g.drawMs),
	}
	for i, line := range debug {
		color := rl.DarkGreen
		if i == 2 && g.lastHits.Any() {
			color = rl.Maroon
		}
		rl.DrawText(line, 10, int32(115+i*18), 16, color)
	}
	rl.DrawFPS(10, int32(115+len(debug)*18))
}

func (g *Game) drawConsole() {
	alpha := g.Console.Alpha(g.frameDt)
	if !g.Console.Visible() {
		return
	}

	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	// slide up from the bottom edge while fading in
	y := h - 80*alpha

	gui.SetAlpha(alpha)
	gui.Panel(rl.Rectangle{X: 10, Y: y - 10, Width: w - 20, Height: 80}, "Lua console")
	gui.SetAlpha(1)

	prompt := "> " + g.Console.Line.String()
	if g.Console.CursorVisible() && !g.Console.Line.Full() {
		prompt += "_"
	}
	rl.DrawText(prompt, 20, int32(y+16), consoleFont, rl.Fade(colorText, alpha))

	color := colorText
	if g.Console.IsError {
		color = colorError
	}
	rl.DrawText(g.Console.Output, 20, int32(y+40), consoleFont, rl.Fade(color, alpha))

	counter := fmt.Sprintf("%d/%d", g.Console.Line.Len(), g.Console.Line.Cap())
	rl.DrawText(counter, int32(w)-30-rl.MeasureText(counter, hudFont), int32(y+20), hudFont, rl.Fade(colorAccent, alpha))
}
