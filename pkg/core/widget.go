package core

import (
	stderrors "errors"

	"github.com/go-veneer/veneer/pkg/errors"
	"github.com/go-veneer/veneer/pkg/host"
)

// ErrNoApplication is returned when a repaint is requested through a context
// that has no application attached.
var ErrNoApplication = stderrors.New("build context has no application attached")

// ErrUnbuiltWidget is returned when SetState is called on a widget that was
// never passed through a build pass.
var ErrUnbuiltWidget = stderrors.New("setState on unbuilt widget")

// Widget is an immutable descriptor of a UI element or composite.
//
// Concrete widgets embed [WidgetBase] for key, context and hash storage and
// implement Build and Paint. Composite widgets exclusively own their children;
// the descriptor tree is a tree, never a DAG.
type Widget interface {
	// Key returns the widget's identity tag.
	Key() Key

	// Build records the context and recomputes the content hash from the
	// widget's declared fields. Composites build each child first and fold
	// the children's hashes into their own. Build must precede Paint.
	Build(ctx *BuildContext)

	// Paint allocates and returns one native element representing the
	// widget's current configuration, wiring declared callbacks to native
	// events. Paint must follow Build.
	Paint() (host.Element, error)

	// ContentHash returns the fingerprint computed by the last Build.
	ContentHash() uint64

	// SetState requests a full rebuild and repaint of the displayed tree
	// through the context captured at build time.
	SetState() error
}

// WidgetBase carries the state shared by every widget: the identity key, the
// context captured at build time and the content hash. Embed it in concrete
// widget structs.
type WidgetBase struct {
	// WidgetKey is the identity tag. Leave nil for the default AnyKey.
	WidgetKey Key

	ctx  *BuildContext
	hash uint64
}

// Key returns the widget's identity tag, defaulting to AnyKey.
func (b *WidgetBase) Key() Key {
	if b.WidgetKey == nil {
		return AnyKey{}
	}
	return b.WidgetKey
}

// StartBuild records the context and resets the hash. Concrete widgets call
// it at the top of Build.
func (b *WidgetBase) StartBuild(ctx *BuildContext) {
	b.ctx = ctx
	b.hash = 0
}

// FinishBuild stores the content hash computed for this build.
func (b *WidgetBase) FinishBuild(hash uint64) {
	b.hash = hash
}

// ContentHash returns the fingerprint computed by the last Build, or zero for
// a widget that was never built.
func (b *WidgetBase) ContentHash() uint64 {
	return b.hash
}

// Context returns the context captured by the last Build, or nil for a widget
// that was never built.
func (b *WidgetBase) Context() *BuildContext {
	return b.ctx
}

// Built reports whether the widget has gone through a build pass.
func (b *WidgetBase) Built() bool {
	return b.ctx != nil
}

// SetState requests a full repaint through the owning application. Calling it
// on a widget that was never built reports a usage error and returns
// ErrUnbuiltWidget without attempting the repaint.
func (b *WidgetBase) SetState() error {
	if b.ctx == nil {
		errors.Report(&errors.VeneerError{
			Op:   "core.SetState",
			Kind: errors.KindUsage,
			Err:  ErrUnbuiltWidget,
		})
		return ErrUnbuiltWidget
	}
	return b.ctx.Repaint()
}
