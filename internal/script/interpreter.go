package script

import (
	"errors"
	"strings"

	lua "github.com/yuin/gopher-lua"
)

// Result is what a successful run printed.
type Result struct {
	Output string
}

// Error is a Lua syntax or runtime failure.
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Interpreter owns one Lua state. It is not safe for concurrent use; every
// call must come from the frame goroutine.
type Interpreter struct {
	state  *lua.LState
	stdout strings.Builder
}

func New() *Interpreter {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	L.OpenLibs()

	i := &Interpreter{state: L}
	L.SetGlobal("print", L.NewFunction(i.print))
	return i
}

// print mirrors Lua's own print but writes into the capture buffer.
func (i *Interpreter) print(L *lua.LState) int {
	top := L.GetTop()
	for n := 1; n <= top; n++ {
		if n > 1 {
			i.stdout.WriteByte('\t')
		}
		i.stdout.WriteString(L.ToStringMeta(L.Get(n)).String())
	}
	i.stdout.WriteByte('\n')
	return 0
}

// Exec runs one chunk of source. Values returned by the chunk are discarded,
// only what it prints is captured.
func (i *Interpreter) Exec(src string) (Result, error) {
	i.stdout.Reset()
	defer i.state.SetTop(0)

	if err := i.state.DoString(src); err != nil {
		var apiErr *lua.ApiError
		if errors.As(err, &apiErr) && apiErr.Object != nil {
			return Result{Output: i.stdout.String()}, &Error{Message: strings.TrimSpace(apiErr.Object.String())}
		}
		return Result{Output: i.stdout.String()}, &Error{Message: strings.TrimSpace(err.Error())}
	}
	return Result{Output: i.stdout.String()}, nil
}

func (i *Interpreter) Close() {
	i.state.Close()
}
