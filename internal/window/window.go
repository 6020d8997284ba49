package window

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

// Application name and version shown in the window title
const (
	AppName    = "File Manager"
	AppVersion = "1.0"
)

// DefaultQueryTimeout bounds how long Close waits for the terminal to report its geometry
const DefaultQueryTimeout = 300 * time.Millisecond

// Window is the application shell: it restores the window geometry when opened,
// stores it again when closed and then ends the process.
type Window struct {
	store        *GeometryStore
	terminal     Terminal
	queryTimeout time.Duration
	geometry     Geometry
	exit         func(code int)
}

// Option configures a Window
type Option func(*Window)

// WithTerminal binds the window to a terminal that can be moved and queried
func WithTerminal(t Terminal) Option {
	return func(w *Window) {
		w.terminal = t
	}
}

// WithQueryTimeout overrides DefaultQueryTimeout
func WithQueryTimeout(d time.Duration) Option {
	return func(w *Window) {
		if d > 0 {
			w.queryTimeout = d
		}
	}
}

// WithExit replaces os.Exit
func WithExit(exit func(code int)) Option {
	return func(w *Window) {
		w.exit = exit
	}
}

// New creates a window persisting its geometry through store
func New(store *GeometryStore, opts ...Option) *Window {
	w := &Window{
		store:        store,
		queryTimeout: DefaultQueryTimeout,
		exit:         os.Exit,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// StdTerminal returns an xterm bound to stdio when stdin is a terminal
func StdTerminal() (Terminal, bool) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, false
	}
	return NewStdXTerm(), true
}

// Title returns the window title
func (w *Window) Title() string {
	return fmt.Sprintf("%s %s", AppName, AppVersion)
}

// Geometry returns the last known geometry
func (w *Window) Geometry() Geometry {
	return w.geometry
}

// Open loads the stored geometry and applies it to the terminal
func (w *Window) Open() Geometry {
	w.geometry = w.store.Load()
	if w.terminal != nil {
		if err := w.terminal.Apply(w.geometry); err != nil {
			logrus.Warnf("Window: %v", err)
		}
	}
	logrus.Infof("Window: opened with geometry %s", w.geometry)
	return w.geometry
}

// Run opens the window, runs the program until it quits and closes the window.
// On success Close ends the process, so Run only returns program errors.
func (w *Window) Run(model tea.Model, opts ...tea.ProgramOption) error {
	w.Open()

	program := tea.NewProgram(model, opts...)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("window program failed: %w", err)
	}

	w.Close()
	return nil
}

// Close saves the current geometry and terminates the process with status 0
func (w *Window) Close() {
	if w.terminal != nil {
		ctx, cancel := context.WithTimeout(context.Background(), w.queryTimeout)
		g, err := w.terminal.Query(ctx)
		cancel()
		if err != nil {
			logrus.Debugf("Window: keeping last known geometry: %v", err)
		} else {
			w.geometry = g
		}
	}

	if err := w.store.Save(w.geometry); err != nil {
		logrus.Errorf("Window: %v", err)
	}

	logrus.Info("Window: closed")
	w.exit(0)
}
