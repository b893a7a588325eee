package widgets

import (
	"github.com/go-veneer/veneer/pkg/core"
	"github.com/go-veneer/veneer/pkg/host"
)

// Row lays children out horizontally. It is a thin adapter constructing an
// [AxisAlignedBox] with a horizontal axis at build time.
type Row struct {
	core.WidgetBase

	// Children are the widgets, left to right. Nil entries are skipped.
	Children []core.Widget
	// Alignment positions the children along the horizontal axis.
	Alignment Alignment

	box *AxisAlignedBox
}

func (r *Row) Build(ctx *core.BuildContext) {
	r.StartBuild(ctx)
	r.box = NewAxisAlignedBox(r.Children, false, r.Alignment)
	r.box.Build(ctx)
	r.FinishBuild(core.NewHasher("Row").Uint64(r.box.ContentHash()).Sum())
}

func (r *Row) Paint() (host.Element, error) {
	if r.box == nil {
		return nil, usageError("widgets.Row.Paint", ErrPaintBeforeBuild)
	}
	return r.box.Paint()
}
