package input

import rl "github.com/gen2brain/raylib-go/raylib"

// Raylib reads input from the open raylib window.
type Raylib struct{}

func (Raylib) KeyDown(k Key) bool     { return rl.IsKeyDown(k) }
func (Raylib) KeyPressed(k Key) bool  { return rl.IsKeyPressed(k) }
func (Raylib) CharPressed() rune      { return rune(rl.GetCharPressed()) }
func (Raylib) MouseDelta() rl.Vector2 { return rl.GetMouseDelta() }
func (Raylib) WheelMove() float32     { return rl.GetMouseWheelMove() }
func (Raylib) FrameTime() float32     { return rl.GetFrameTime() }

func (Raylib) SetCaptured(captured bool) {
	if captured {
		rl.DisableCursor()
	} else {
		rl.EnableCursor()
	}
}
