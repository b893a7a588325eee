package widgets

import (
	"github.com/go-veneer/veneer/pkg/core"
	"github.com/go-veneer/veneer/pkg/host"
)

// Expanded stretches its child to fill remaining space along the main axis of
// an [AxisAlignedBox]. After fixed children take their natural size, the
// remaining space is distributed among Expanded children proportionally to
// their flex factors.
type Expanded struct {
	core.WidgetBase

	child core.Widget
	flex  int
}

// NewExpanded wraps child with the given flex factor. It panics when child is
// nil or flex is not positive; both are programmer errors in tree
// construction.
func NewExpanded(child core.Widget, flex int) *Expanded {
	if child == nil {
		panic("widgets: Expanded must have a non-nil child")
	}
	if flex <= 0 {
		panic("widgets: Expanded flex must be a positive integer")
	}
	return &Expanded{child: child, flex: flex}
}

// Child returns the wrapped widget.
func (e *Expanded) Child() core.Widget { return e.child }

// Flex returns the stretch factor.
func (e *Expanded) Flex() int { return e.flex }

func (e *Expanded) Build(ctx *core.BuildContext) {
	e.StartBuild(ctx)
	e.child.Build(ctx)
	e.FinishBuild(core.NewHasher("Expanded").
		Uint64(e.child.ContentHash()).
		Int(e.flex).
		Sum())
}

// Paint delegates to the child; the flex factor is read by the parent box
// when it assigns per-slot stretch.
func (e *Expanded) Paint() (host.Element, error) {
	return e.child.Paint()
}
