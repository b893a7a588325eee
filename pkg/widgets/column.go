package widgets

import (
	"github.com/go-veneer/veneer/pkg/core"
	"github.com/go-veneer/veneer/pkg/host"
)

// Column stacks children vertically. It is a thin adapter constructing an
// [AxisAlignedBox] with a vertical axis at build time.
type Column struct {
	core.WidgetBase

	// Children are the stacked widgets, top to bottom. Nil entries are
	// skipped.
	Children []core.Widget
	// Alignment positions the children along the vertical axis.
	Alignment Alignment

	box *AxisAlignedBox
}

func (c *Column) Build(ctx *core.BuildContext) {
	c.StartBuild(ctx)
	c.box = NewAxisAlignedBox(c.Children, true, c.Alignment)
	c.box.Build(ctx)
	c.FinishBuild(core.NewHasher("Column").Uint64(c.box.ContentHash()).Sum())
}

func (c *Column) Paint() (host.Element, error) {
	if c.box == nil {
		return nil, usageError("widgets.Column.Paint", ErrPaintBeforeBuild)
	}
	return c.box.Paint()
}
