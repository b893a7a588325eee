// Package app owns the root build context and runs the build→paint pipeline.
//
// An Application invokes a user-supplied builder to obtain a fresh widget
// tree, builds it, paints it through the registered host toolkit and attaches
// the painted element to a window. Every SetState call anywhere in the tree
// reaches the application, which rebuilds the whole descriptor tree from
// scratch, discards the displayed native element and attaches a freshly
// painted one. There is no partial-tree diffing.
package app

import (
	stderrors "errors"

	"github.com/go-veneer/veneer/pkg/core"
	"github.com/go-veneer/veneer/pkg/errors"
	"github.com/go-veneer/veneer/pkg/host"
)

// DefaultTitle is used when neither the application nor the configuration
// file sets a window title.
const DefaultTitle = "Veneer Application"

// ErrNoBuilder is returned by Run when the application has no builder.
var ErrNoBuilder = stderrors.New("application has no builder")

// ErrNotRunning is returned when a repaint is requested before Run.
var ErrNotRunning = stderrors.New("application is not running")

// Builder produces a fresh widget tree for a build pass.
type Builder func(ctx *core.BuildContext) core.Widget

// Application coordinates the build→paint pipeline.
//
// The zero value plus a Builder is a usable application. Configure it before
// calling Run; the struct must not be mutated afterwards.
type Application struct {
	// Builder produces the widget tree. Required.
	Builder Builder
	// Title sets the window title. When empty, the veneer.yaml title or
	// DefaultTitle applies.
	Title string
	// Width and Height fix the window size when both are positive.
	// Otherwise the veneer.yaml size applies, if complete.
	Width  int
	Height int
	// Context optionally supplies a pre-existing build context. The
	// application attaches itself to it on Run. When nil, a fresh context
	// is created.
	Context *core.BuildContext

	ctx     *core.BuildContext
	window  host.Window
	state   core.Widget
	running bool
}

// New returns an application with the given builder and default settings.
func New(builder Builder) *Application {
	return &Application{Builder: builder}
}

// Running reports whether Run has been entered.
func (a *Application) Running() bool {
	return a.running
}

// Run builds and paints the initial tree, attaches it to a new window, shows
// the window and enters the host event loop. It blocks until the loop exits
// and returns the loop's error unmodified. Run is a no-op when the
// application is already running.
func (a *Application) Run() error {
	if a.running {
		return nil
	}
	if a.Builder == nil {
		return &errors.VeneerError{Op: "app.Run", Kind: errors.KindUsage, Err: ErrNoBuilder}
	}
	tk, err := host.Current()
	if err != nil {
		return &errors.VeneerError{Op: "app.Run", Kind: errors.KindHost, Err: err}
	}
	cfg, err := LoadOptional(".")
	if err != nil {
		return err
	}
	if cfg.Verbose {
		errors.SetHandler(&errors.LogHandler{Verbose: true})
	}

	if a.Context != nil {
		a.ctx = a.Context
	} else {
		a.ctx = core.NewBuildContext(nil)
	}
	a.ctx.Attach(a)

	a.state = a.Builder(a.ctx)
	a.state.Build(a.ctx)
	element, err := a.state.Paint()
	if err != nil {
		return err
	}

	window := tk.NewWindow()
	window.SetTitle(a.title(cfg))
	if width, height, ok := a.windowSize(cfg); ok {
		window.Resize(width, height)
	}
	window.SetContent(element)
	window.Show()

	a.window = window
	a.running = true
	return tk.Run()
}

// Repaint rebuilds the descriptor tree from the builder, discards the
// displayed native element and attaches the freshly painted tree in its
// place. It is reached through any widget's SetState and implements
// [core.Repainter].
func (a *Application) Repaint() error {
	if !a.running || a.window == nil {
		verr := &errors.VeneerError{Op: "app.Repaint", Kind: errors.KindUsage, Err: ErrNotRunning}
		errors.Report(verr)
		return verr
	}
	next := a.Builder(a.ctx)
	next.Build(a.ctx)
	element, err := next.Paint()
	if err != nil {
		return err
	}
	a.window.SetContent(element)
	a.state = next
	return nil
}

func (a *Application) title(cfg *Config) string {
	if a.Title != "" {
		return a.Title
	}
	if cfg.Window.Title != "" {
		return cfg.Window.Title
	}
	return DefaultTitle
}

func (a *Application) windowSize(cfg *Config) (width, height int, ok bool) {
	if a.Width > 0 && a.Height > 0 {
		return a.Width, a.Height, true
	}
	if cfg.Window.Width > 0 && cfg.Window.Height > 0 {
		return cfg.Window.Width, cfg.Window.Height, true
	}
	return 0, 0, false
}
