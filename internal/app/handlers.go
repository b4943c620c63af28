package app

import (
	"github.com/dshills/polysketch/internal/renderer"
	"github.com/dshills/polysketch/internal/renderer/backend"
	"github.com/dshills/polysketch/internal/sketch"
)

// handleEvent processes one backend event. Returns ErrQuit when the
// application should exit.
func (app *Application) handleEvent(ev backend.Event) error {
	switch ev.Type {
	case backend.EventQuit:
		return ErrQuit
	case backend.EventResize:
		app.render()
		return nil
	case backend.EventKey:
		return app.handleKey(ev)
	case backend.EventMouse:
		app.handleMouse(ev)
		return nil
	default:
		return nil
	}
}

// handleKey maps keyboard shortcuts onto actions.
func (app *Application) handleKey(ev backend.Event) error {
	switch ev.Key {
	case backend.KeyEscape, backend.KeyCtrlC:
		return ErrQuit
	case backend.KeyEnter:
		app.dispatch(sketch.FinishPolygon{})
		return nil
	case backend.KeyRune:
		switch ev.Rune {
		case 'q':
			return ErrQuit
		case 'u':
			app.dispatch(sketch.Undo{})
		case 'r':
			app.dispatch(sketch.Redo{})
		case 'c':
			app.dispatch(sketch.ClearAll{})
		}
	}
	return nil
}

// handleMouse routes presses on toolbar buttons to their actions and
// everything else through the translator. A press consumed by a button also
// resets click sequencing so it cannot combine with a later canvas click
// into a double click.
func (app *Application) handleMouse(ev backend.Event) {
	if ev.Button == backend.ButtonPrimary {
		if act, ok := app.scene.ButtonAt(ev.MouseX, ev.MouseY); ok {
			app.translator.Reset()
			app.dispatch(act)
			return
		}
	}

	if act, ok := app.translator.Translate(ev); ok {
		app.dispatch(act)
	}
}

// dispatch applies an action through the history wrapper and redraws.
func (app *Application) dispatch(act sketch.Action) {
	app.log.Debug("action %s", act)
	app.state = app.history.Apply(act, app.state)
	app.render()
}

// render rebuilds the scene for the current state and draws it. The retained
// scene also serves mouse hit testing for toolbar buttons.
func (app *Application) render() {
	w, h := app.backend.Size()
	app.scene = renderer.BuildScene(app.state, app.history.CanUndo(), app.history.CanRedo(), w, h)
	app.renderer.Draw(app.scene)
}
