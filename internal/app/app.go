package app

import (
	"fmt"
	"os"
	"sync"
	"sync/atomic"

	"github.com/dshills/quill/internal/editor"
	"github.com/dshills/quill/internal/keymap"
	"github.com/dshills/quill/internal/ui"
)

// Options configures the application.
type Options struct {
	// File is an optional file to open at startup.
	File string

	// KeymapPath is an optional JSON keymap file layered over the
	// default bindings.
	KeymapPath string

	// LogPath is the log file path. Logging is disabled when empty; the
	// terminal front end owns stderr's tty.
	LogPath string

	// LogLevel is the minimum level to log (debug, info, warn, error).
	LogLevel string

	// Debug forces the debug log level.
	Debug bool
}

// Application owns the editor state and drives the render/input/apply loop
// against an attached front end.
type Application struct {
	opts   Options
	editor *editor.Editor
	keymap *keymap.Keymap
	ui     ui.UI
	logger *Logger

	logFile       *os.File
	running       atomic.Bool
	quitRequested atomic.Bool
	finishOnce    sync.Once
}

// New creates the application: logger, keymap, editor, and the optional
// startup file. The front end is attached separately with SetUI.
func New(opts Options) (*Application, error) {
	app := &Application{
		opts:   opts,
		editor: editor.New(editor.OSFileStore{}),
		logger: NullLogger,
	}

	if opts.LogPath != "" {
		f, err := os.OpenFile(opts.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, &InitError{Component: "log", Err: err}
		}
		level := ParseLogLevel(opts.LogLevel)
		if opts.Debug {
			level = LogLevelDebug
		}
		app.logFile = f
		app.logger = NewLogger(f, level)
	}

	km := keymap.Default()
	if opts.KeymapPath != "" {
		loaded, err := keymap.LoadFile(opts.KeymapPath)
		if err != nil {
			return nil, &InitError{Component: "keymap", Err: err}
		}
		km = loaded
		app.logger.Info("loaded keymap %s from %s", km.Name, opts.KeymapPath)
	}
	app.keymap = km

	if opts.File != "" {
		if err := app.editor.OpenFile(opts.File); err != nil {
			// Not fatal: the session starts empty and the failure is
			// shown as a dismissible message.
			app.editor.AddMessage(err.Error())
			app.logger.Warn("open %s: %v", opts.File, err)
		} else {
			app.logger.Info("opened %s", opts.File)
		}
	}

	return app, nil
}

// Editor returns the application state.
func (app *Application) Editor() *editor.Editor {
	return app.editor
}

// Keymap returns the active keymap for the front end to decode against.
func (app *Application) Keymap() *keymap.Keymap {
	return app.keymap
}

// SetUI attaches the front end. Must be called before Run.
func (app *Application) SetUI(u ui.UI) {
	app.ui = u
}

// Run drives the loop: render, poll one input, apply, one full turn per
// iteration, until the editor exits. Returns ErrQuit on a normal quit.
// Input decode failures and front-end errors abort the loop; the front end
// is released on every path, and a panic during a turn restores the
// terminal before unwinding further.
func (app *Application) Run() error {
	if app.ui == nil {
		return ErrNoUI
	}
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	defer func() {
		if r := recover(); r != nil {
			app.ui.OnPanic()
			panic(r)
		}
	}()
	defer app.finish()

	log := app.logger.WithComponent("loop")

	for !app.editor.Exited() {
		if app.quitRequested.Load() {
			app.editor.Apply(editor.Cancel())
			continue
		}

		if err := app.ui.Render(app.editor); err != nil {
			log.Error("render: %v", err)
			return fmt.Errorf("render: %w", err)
		}

		in, err := app.ui.PollInput()
		if err != nil {
			log.Error("input: %v", err)
			return fmt.Errorf("input: %w", err)
		}
		if in.Kind != editor.KindNone {
			log.Debug("input %s in mode %s", in, app.editor.Mode())
		}

		app.editor.Apply(in)
	}

	log.Debug("loop exited")
	return ErrQuit
}

// RequestQuit asks the loop to stop after the current turn. Safe to call
// from a signal handler goroutine; the bounded input poll guarantees the
// request is seen promptly.
func (app *Application) RequestQuit() {
	app.quitRequested.Store(true)
}

// Shutdown releases the front end and the log file. Safe to call more than
// once and after Run has already cleaned up.
func (app *Application) Shutdown() {
	app.finish()
}

func (app *Application) finish() {
	app.finishOnce.Do(func() {
		if app.ui != nil {
			if err := app.ui.Finish(); err != nil {
				app.logger.Warn("ui finish: %v", err)
			}
		}
		if app.logFile != nil {
			_ = app.logFile.Close()
		}
	})
}
