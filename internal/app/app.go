// Package app wires the drawing pipeline to a terminal backend and runs the
// event loop.
package app

import (
	"fmt"
	"os"
	"sync/atomic"

	"github.com/dshills/polysketch/internal/config"
	"github.com/dshills/polysketch/internal/input/mouse"
	"github.com/dshills/polysketch/internal/renderer"
	"github.com/dshills/polysketch/internal/renderer/backend"
	"github.com/dshills/polysketch/internal/script"
	"github.com/dshills/polysketch/internal/sketch"
	"github.com/dshills/polysketch/internal/sketch/history"
)

// Options configures a new Application.
type Options struct {
	// Config is the loaded application configuration.
	Config config.Config

	// Logger receives application logs. Nil selects a logger built from
	// Config.Log: file output when configured, otherwise silent, since
	// stderr is underneath the drawing surface.
	Logger *Logger

	// ScriptPath is an optional Lua script run before the first frame.
	ScriptPath string
}

// Application owns the event loop and the single mutable cell holding the
// current drawing state. One event is fully processed, producing at most one
// new state and one frame, before the next is read.
type Application struct {
	cfg        config.Config
	log        *Logger
	scriptPath string

	backend    backend.Backend
	renderer   *renderer.Renderer
	translator *mouse.Translator
	history    *history.History

	state sketch.State
	scene renderer.Scene

	running atomic.Bool
	logFile *os.File
}

// New creates an application from options.
func New(opts Options) (*Application, error) {
	app := &Application{
		cfg:        opts.Config,
		log:        opts.Logger,
		scriptPath: opts.ScriptPath,
		history:    history.New(opts.Config.History.MaxEntries),
		state:      sketch.NewState(),
		translator: mouse.NewTranslator(mouse.Options{
			DoubleClickTime:     opts.Config.Input.DoubleClickTime(),
			DoubleClickDistance: opts.Config.Input.DoubleClickDistance,
		}),
	}

	if app.log == nil {
		logger, file, err := buildLogger(opts.Config.Log)
		if err != nil {
			return nil, err
		}
		app.log = logger
		app.logFile = file
	}

	return app, nil
}

// buildLogger creates a logger from config. Without a log file the logger is
// silent rather than writing under the drawing surface.
func buildLogger(cfg config.LogConfig) (*Logger, *os.File, error) {
	if cfg.File == "" {
		return NullLogger, nil, nil
	}

	file, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file %s: %w", cfg.File, err)
	}

	logger := NewLogger(LoggerConfig{
		Level:  ParseLogLevel(cfg.Level),
		Output: file,
		Prefix: "polysketch",
	})
	return logger, file, nil
}

// SetBackend sets the terminal backend. It must be called before Run.
func (app *Application) SetBackend(b backend.Backend) error {
	if app.running.Load() {
		return ErrAlreadyRunning
	}
	app.backend = b
	return nil
}

// State returns the current drawing state. It is only safe to call when the
// event loop is not running, e.g. from tests after Run returns.
func (app *Application) State() sketch.State {
	return app.state
}

// Run initializes the backend and processes events until quit. A normal quit
// returns ErrQuit.
func (app *Application) Run() error {
	if app.backend == nil {
		return ErrNoBackend
	}
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	theme, err := renderer.ThemeFromHex(
		app.cfg.UI.FinishedColor,
		app.cfg.UI.CurrentColor,
		app.cfg.UI.PreviewColor,
		app.cfg.UI.ToolbarColor,
		app.cfg.UI.StatusColor,
	)
	if err != nil {
		return err
	}

	if err := app.backend.Init(); err != nil {
		return fmt.Errorf("initializing backend: %w", err)
	}
	defer app.backend.Fini()

	app.renderer = renderer.New(app.backend, theme)

	if err := app.runStartupScript(); err != nil {
		return err
	}

	app.log.Info("starting event loop")
	app.render()

	for {
		ev := app.backend.PollEvent()
		if err := app.handleEvent(ev); err != nil {
			return err
		}
	}
}

// Quit asks the event loop to exit. Safe to call from another goroutine,
// e.g. a signal handler.
func (app *Application) Quit() {
	if app.backend != nil {
		app.backend.PostQuit()
	}
}

// Shutdown releases resources held outside Run.
func (app *Application) Shutdown() {
	if app.logFile != nil {
		_ = app.logFile.Close()
		app.logFile = nil
	}
}

// runStartupScript feeds the configured Lua script through the history
// pipeline before the first frame.
func (app *Application) runStartupScript() error {
	if app.scriptPath == "" {
		return nil
	}

	app.log.Info("running startup script %s", app.scriptPath)

	engine := script.New(func(act sketch.Action) {
		app.state = app.history.Apply(act, app.state)
	})
	defer engine.Close()

	return engine.RunFile(app.scriptPath)
}
