// Package app wires the text buffer, history, change tracking and the
// mode engine into a running terminal editor.
package app

import (
	"fmt"
	"os"
	"sync"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/dshills/editmode/internal/engine/history"
	"github.com/dshills/editmode/internal/input/key"
	"github.com/dshills/editmode/internal/input/keymap"
	"github.com/dshills/editmode/internal/input/mode"
	"github.com/dshills/editmode/internal/input/terminal"
)

// state names which layer owns the next key.
type state int

const (
	// stateNormal routes keys to the normal-mode command set.
	stateNormal state = iota

	// stateEditing routes keys to the mode engine.
	stateEditing

	// stateOneShot runs exactly one normal command, then hands the
	// keyboard back to the still-active engine.
	stateOneShot
)

// Options configures the application.
type Options struct {
	// File is the file to open on startup. Empty starts with an
	// empty buffer.
	File string

	// KeymapPath is an optional TOML keymap layered over the default
	// table. The file is watched and reloaded on change.
	KeymapPath string

	// Logger receives application logs. Defaults to a nop logger.
	Logger *zap.Logger
}

// Application owns the terminal screen and the editing components.
type Application struct {
	mu sync.Mutex

	screen  tcell.Screen
	host    *editorHost
	history *history.Provider
	popups  *PopupCenter
	engine  *mode.Engine
	watcher *keymap.Watcher
	log     *zap.Logger

	state  state
	resume mode.Kind

	// pendingCount accumulates a numeric prefix in normal mode.
	pendingCount int

	quit bool
}

// New builds an application over an initialized tcell screen.
func New(screen tcell.Screen, opts Options) (*Application, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	var text string
	if opts.File != "" {
		data, err := os.ReadFile(opts.File)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("open file: %w", err)
		}
		text = string(data)
	}

	table := keymap.Default()
	if opts.KeymapPath != "" {
		loaded, err := keymap.Load(opts.KeymapPath)
		if err != nil {
			return nil, fmt.Errorf("load keymap: %w", err)
		}
		table = loaded
	}

	host := newEditorHost(text)
	popups := NewPopupCenter()
	provider := history.NewProvider()

	app := &Application{
		screen:  screen,
		host:    host,
		history: provider,
		popups:  popups,
		log:     log,
		state:   stateNormal,
	}

	app.engine = mode.NewEngine(host, &txProvider{provider: provider},
		host.changes,
		mode.WithLogger(log),
		mode.WithKeymap(table),
		mode.WithPopupBroker(popups))

	if opts.KeymapPath != "" {
		w, err := keymap.Watch(opts.KeymapPath, app.reloadKeymap)
		if err != nil {
			return nil, fmt.Errorf("watch keymap: %w", err)
		}
		app.watcher = w
	}

	return app, nil
}

// reloadKeymap swaps the engine's command table after a file change.
// Called from the watcher goroutine.
func (app *Application) reloadKeymap(table *keymap.Keymap, err error) {
	if err != nil {
		app.log.Warn("keymap reload failed", zap.Error(err))
		return
	}
	app.mu.Lock()
	app.engine.SetKeymap(table)
	app.mu.Unlock()
	app.log.Info("keymap reloaded", zap.String("name", table.Name()))
}

// Run drives the event loop until quit. The screen must already be
// initialized; the caller finalizes it.
func (app *Application) Run() error {
	app.render()

	for {
		ev := app.screen.PollEvent()
		if ev == nil {
			return nil
		}

		switch tev := ev.(type) {
		case *tcell.EventResize:
			app.screen.Sync()
		case *tcell.EventKey:
			app.mu.Lock()
			app.handleKey(terminal.TranslateKey(tev))
			quit := app.quit
			app.mu.Unlock()
			if quit {
				return nil
			}
		}

		app.render()
	}
}

// Close releases background resources.
func (app *Application) Close() {
	if app.watcher != nil {
		_ = app.watcher.Close()
	}
}

// handleKey routes one key to whichever layer owns the keyboard.
func (app *Application) handleKey(ev key.Event) {
	if ev.Key == key.KeyNone {
		return
	}

	switch app.state {
	case stateEditing:
		app.handleEditingKey(ev)
	case stateOneShot:
		app.handleOneShotKey(ev)
	default:
		app.handleNormalKey(ev)
	}
}

// handleEditingKey feeds the engine and acts on its verdict.
func (app *Application) handleEditingKey(ev key.Event) {
	v := app.engine.Process(ev)
	if !v.IsSwitch() {
		return
	}

	if v.HasResume {
		// One-shot detour: the engine stays active with its session
		// intact. Only the routing changes.
		app.state = stateOneShot
		app.resume = v.Resume
		return
	}

	if v.Target == mode.KindNormal {
		app.engine.OnLeave()
		app.state = stateNormal
		return
	}

	// Insert/replace toggle: a fresh activation of the other
	// discipline.
	app.engine.OnLeave()
	app.engine.OnEnter(v.Target, nil)
}

// handleOneShotKey executes one normal command, then returns the
// keyboard to the engine. Escape abandons the detour and the editing
// session with it.
func (app *Application) handleOneShotKey(ev key.Event) {
	if ev.IsEscape() {
		app.engine.OnLeave()
		app.state = stateNormal
		app.pendingCount = 0
		return
	}

	if app.runNormalCommand(ev) {
		app.state = stateEditing
	}
}

// enterEditing activates the engine in the given discipline.
func (app *Application) enterEditing(kind mode.Kind, arg *mode.EnterArg) {
	app.engine.OnEnter(kind, arg)
	app.state = stateEditing
}
