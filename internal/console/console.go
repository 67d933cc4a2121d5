package console

import (
	"errors"
	"strings"

	"jumpbed/internal/config"
	"jumpbed/internal/input"
	"jumpbed/internal/script"

	"github.com/rs/zerolog/log"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// ErrorPrefix marks a failed submission in the displayed output.
const ErrorPrefix = "Lua Error: "

const fadeSeconds = 0.15

// Executor runs one submitted line.
type Executor interface {
	Exec(line string) (script.Result, error)
}

type Console struct {
	Open    bool
	Line    *LineBuffer
	Blink   uint32
	Output  string
	IsError bool

	history    []string
	historyCap int
	historyPos int

	blinkFrames uint32
	fade        *gween.Tween
	alpha       float32
}

func New(c config.Console) *Console {
	blink := c.BlinkFrames
	if blink == 0 {
		blink = 1
	}
	return &Console{
		Line:        NewLineBuffer(c.MaxLine),
		historyCap:  c.History,
		blinkFrames: blink,
	}
}

// Toggle opens or closes the overlay and returns whether the pointer
// should be captured afterwards.
func (c *Console) Toggle() (captured bool) {
	c.Open = !c.Open
	c.Blink = 0

	target := float32(0)
	if c.Open {
		target = 1
	}
	c.fade = gween.New(c.alpha, target, fadeSeconds, ease.OutQuad)

	log.Debug().Bool("open", c.Open).Msg("console")
	return !c.Open
}

// HandleInput consumes typed characters and editing keys. It does nothing
// while the overlay is closed.
func (c *Console) HandleInput(src input.Source, b input.Bindings, exec Executor) {
	if !c.Open {
		return
	}

	for r := src.CharPressed(); r != 0; r = src.CharPressed() {
		c.Line.Append(r)
	}

	if src.KeyPressed(b.Erase) {
		if src.KeyDown(b.EraseAll) {
			c.Line.Clear()
		} else {
			c.Line.Truncate()
		}
	}

	if src.KeyPressed(b.HistoryPrev) {
		c.recall(-1)
	}
	if src.KeyPressed(b.HistoryNext) {
		c.recall(1)
	}

	if src.KeyPressed(b.Submit) {
		c.Submit(exec)
	}
}

// Submit runs the current line and replaces the displayed output with its
// result. Script failures are shown, never returned.
func (c *Console) Submit(exec Executor) {
	line := c.Line.String()
	if !c.Line.Blank() {
		c.remember(line)
	}
	c.historyPos = len(c.history)
	c.Line.Clear()

	log.Info().Str("line", line).Msg("console submit")
	c.Show(exec.Exec(line))
}

// Show replaces the displayed output with an execution result.
func (c *Console) Show(res script.Result, err error) {
	if err != nil {
		var scriptErr *script.Error
		msg := err.Error()
		if errors.As(err, &scriptErr) {
			msg = scriptErr.Message
		}
		log.Warn().Err(err).Msg("script failed")
		c.Output = ErrorPrefix + msg
		c.IsError = true
		return
	}
	c.Output = strings.TrimRight(res.Output, "\n")
	c.IsError = false
}

func (c *Console) remember(line string) {
	if c.historyCap <= 0 {
		return
	}
	if n := len(c.history); n > 0 && c.history[n-1] == line {
		return
	}
	c.history = append(c.history, line)
	if len(c.history) > c.historyCap {
		c.history = c.history[len(c.history)-c.historyCap:]
	}
}

// recall steps through history; stepping past the newest entry clears the line.
func (c *Console) recall(step int) {
	pos := c.historyPos + step
	if pos < 0 || pos > len(c.history) {
		return
	}
	c.historyPos = pos
	if pos == len(c.history) {
		c.Line.Clear()
		return
	}
	c.Line.Set(c.history[pos])
}

func (c *Console) History() []string {
	return c.history
}

// Tick advances the cursor blink counter by one frame.
func (c *Console) Tick() {
	if c.Open {
		c.Blink++
	}
}

func (c *Console) CursorVisible() bool {
	return c.Open && (c.Blink/c.blinkFrames)%2 == 0
}

// Alpha advances the open/close fade and returns the overlay opacity.
func (c *Console) Alpha(dt float32) float32 {
	if c.fade != nil {
		var done bool
		c.alpha, done = c.fade.Update(dt)
		if done {
			c.fade = nil
		}
	}
	return c.alpha
}

// Visible reports whether the overlay still needs drawing.
func (c *Console) Visible() bool {
	return c.Open || c.alpha > 0
}
