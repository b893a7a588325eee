package core

// Repainter is the application-side sink for repaint requests. It is
// implemented by the application layer; core holds it only as a non-owning
// back-reference.
type Repainter interface {
	// Repaint rebuilds the descriptor tree from scratch and replaces the
	// displayed native tree.
	Repaint() error
}

// BuildContext is the shared handle passed through a build pass. There is
// exactly one per application, created when the application is constructed
// and mutated only by the application attaching itself.
type BuildContext struct {
	repainter Repainter

	// Counter is a monotonic counter widgets may use to derive per-build
	// values. No built-in widget consults it yet.
	Counter int
}

// NewBuildContext returns a context attached to the given repaint sink.
// The sink may be nil and attached later with Attach.
func NewBuildContext(r Repainter) *BuildContext {
	return &BuildContext{repainter: r}
}

// Attach sets the owning application's repaint sink, replacing any previous
// one. Only the owning application should call this.
func (c *BuildContext) Attach(r Repainter) {
	c.repainter = r
}

// Repaint forwards a repaint request to the owning application.
// It returns ErrNoApplication when no application is attached.
func (c *BuildContext) Repaint() error {
	if c.repainter == nil {
		return ErrNoApplication
	}
	return c.repainter.Repaint()
}
