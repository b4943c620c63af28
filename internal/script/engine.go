package script

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/polysketch/internal/sketch"
)

// Engine hosts a sandboxed Lua state bound to the drawing pipeline.
type Engine struct {
	state    *lua.LState
	dispatch func(sketch.Action)
}

// New creates an engine. Every sketch.* call in a script invokes dispatch
// with the corresponding action.
func New(dispatch func(sketch.Action)) *Engine {
	L := lua.NewState()
	e := &Engine{state: L, dispatch: dispatch}
	e.installSandbox()
	e.registerSketchTable()
	return e
}

// Close releases the Lua state.
func (e *Engine) Close() {
	e.state.Close()
}

// RunFile executes the script at path.
func (e *Engine) RunFile(path string) error {
	if err := e.state.DoFile(path); err != nil {
		return fmt.Errorf("running script %s: %w", path, err)
	}
	return nil
}

// RunString executes a script from source.
func (e *Engine) RunString(src string) error {
	if err := e.state.DoString(src); err != nil {
		return fmt.Errorf("running script: %w", err)
	}
	return nil
}

// installSandbox removes globals that load code from outside the script.
func (e *Engine) installSandbox() {
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring"} {
		e.state.SetGlobal(name, lua.LNil)
	}
}

// registerSketchTable binds the sketch table into the Lua globals.
func (e *Engine) registerSketchTable() {
	tbl := e.state.NewTable()

	e.state.SetFuncs(tbl, map[string]lua.LGFunction{
		"add_point": e.luaAddPoint,
		"finish":    e.luaFinish,
		"clear":     e.luaClear,
		"undo":      e.luaUndo,
		"redo":      e.luaRedo,
		"cursor":    e.luaCursor,
	})

	e.state.SetGlobal("sketch", tbl)
}

func (e *Engine) luaAddPoint(L *lua.LState) int {
	x := float64(L.CheckNumber(1))
	y := float64(L.CheckNumber(2))
	e.dispatch(sketch.AddPoint{Point: sketch.Pt(x, y)})
	return 0
}

func (e *Engine) luaFinish(L *lua.LState) int {
	e.dispatch(sketch.FinishPolygon{})
	return 0
}

func (e *Engine) luaClear(L *lua.LState) int {
	e.dispatch(sketch.ClearAll{})
	return 0
}

func (e *Engine) luaUndo(L *lua.LState) int {
	e.dispatch(sketch.Undo{})
	return 0
}

func (e *Engine) luaRedo(L *lua.LState) int {
	e.dispatch(sketch.Redo{})
	return 0
}

// luaCursor sets the cursor position; called with no arguments it clears it.
func (e *Engine) luaCursor(L *lua.LState) int {
	if L.GetTop() == 0 {
		e.dispatch(sketch.SetCursor{})
		return 0
	}
	x := float64(L.CheckNumber(1))
	y := float64(L.CheckNumber(2))
	p := sketch.Pt(x, y)
	e.dispatch(sketch.SetCursor{Point: &p})
	return 0
}
