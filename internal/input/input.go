package input

import rl "github.com/gen2brain/raylib-go/raylib"

// Key is a raylib keyboard key code.
type Key = int32

// Source is the per-frame input the game reads. KeyPressed is edge
// triggered; CharPressed drains the typed character queue and returns 0
// once it is empty.
type Source interface {
	KeyDown(k Key) bool
	KeyPressed(k Key) bool
	CharPressed() rune
	MouseDelta() rl.Vector2
	WheelMove() float32
	FrameTime() float32
}

// Cursor switches between captured relative motion and a free pointer.
type Cursor interface {
	SetCaptured(captured bool)
}

// Bindings names every key the game reacts to.
type Bindings struct {
	Free, FirstPerson, ThirdPerson, Orbital Key
	Projection                              Key

	CameraForward, CameraBack Key
	CameraLeft, CameraRight   Key
	CameraUp, CameraDown      Key

	MoveForward, MoveBack Key
	MoveLeft, MoveRight   Key
	Sprint                Key
	Jump                  Key

	Console     Key
	Submit      Key
	Erase       Key
	EraseAll    Key // modifier held with Erase
	HistoryPrev Key
	HistoryNext Key

	Debug Key
}

func DefaultBindings() Bindings {
	return Bindings{
		Free:        rl.KeyOne,
		FirstPerson: rl.KeyTwo,
		ThirdPerson: rl.KeyThree,
		Orbital:     rl.KeyFour,
		Projection:  rl.KeyP,

		CameraForward: rl.KeyW,
		CameraBack:    rl.KeyS,
		CameraLeft:    rl.KeyA,
		CameraRight:   rl.KeyD,
		CameraUp:      rl.KeyE,
		CameraDown:    rl.KeyQ,

		MoveForward: rl.KeyUp,
		MoveBack:    rl.KeyDown,
		MoveLeft:    rl.KeyLeft,
		MoveRight:   rl.KeyRight,
		Sprint:      rl.KeyLeftShift,
		Jump:        rl.KeySpace,

		Console:     rl.KeyTab,
		Submit:      rl.KeyEnter,
		Erase:       rl.KeyBackspace,
		EraseAll:    rl.KeyLeftControl,
		HistoryPrev: rl.KeyUp,
		HistoryNext: rl.KeyDown,

		Debug: rl.KeyF1,
	}
}

// Axis turns a pair of held keys into -1, 0 or +1.
func Axis(src Source, positive, negative Key) float32 {
	var v float32
	if src.KeyDown(positive) {
		v++
	}
	if src.KeyDown(negative) {
		v--
	}
	return v
}
