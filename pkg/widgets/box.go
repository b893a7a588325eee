package widgets

import (
	"github.com/go-veneer/veneer/pkg/core"
	"github.com/go-veneer/veneer/pkg/host"
)

// Alignment positions children along the main axis of an [AxisAlignedBox].
type Alignment int

const (
	// AlignNone lets the toolkit distribute children with no spacers.
	AlignNone Alignment = iota
	// AlignStart packs children at the start of the axis.
	AlignStart
	// AlignCenter centers children on the axis.
	AlignCenter
	// AlignEnd packs children at the end of the axis.
	AlignEnd
)

// AxisAlignedBox lays out children along one axis, lowering alignment to pure
// flex semantics.
//
// When none of the declared children is an [Expanded], the box synthesizes
// invisible flex-1 spacers (an empty Text wrapped in an Expanded) around the
// real children: one after them for AlignStart, one before for AlignEnd, one
// on each side for AlignCenter. When any declared child is an Expanded, the
// explicit flex children take precedence and no spacers are added. Nil
// children are skipped.
//
// Construct with [NewAxisAlignedBox]; the derived children list is fixed at
// construction.
type AxisAlignedBox struct {
	core.WidgetBase

	children []core.Widget
	vertical bool
}

// NewAxisAlignedBox derives the box's children from the declared children and
// the requested alignment.
func NewAxisAlignedBox(children []core.Widget, vertical bool, alignment Alignment) *AxisAlignedBox {
	b := &AxisAlignedBox{vertical: vertical}

	hasExpanded := false
	for _, child := range children {
		if child == nil {
			continue
		}
		if _, ok := child.(*Expanded); ok {
			hasExpanded = true
			break
		}
	}

	if !hasExpanded && (alignment == AlignCenter || alignment == AlignEnd) {
		b.children = append(b.children, spacer())
	}
	for _, child := range children {
		if child != nil {
			b.children = append(b.children, child)
		}
	}
	if !hasExpanded && (alignment == AlignStart || alignment == AlignCenter) {
		b.children = append(b.children, spacer())
	}
	return b
}

// spacer is an invisible flex-1 child used to emulate alignment.
func spacer() *Expanded {
	return NewExpanded(&Text{}, 1)
}

// Children returns the derived children list, spacers included.
func (b *AxisAlignedBox) Children() []core.Widget { return b.children }

// Vertical reports the layout axis.
func (b *AxisAlignedBox) Vertical() bool { return b.vertical }

func (b *AxisAlignedBox) Build(ctx *core.BuildContext) {
	b.StartBuild(ctx)
	h := core.NewHasher("AxisAlignedBox").
		Bool(b.vertical).
		Int(len(b.children))
	for _, child := range b.children {
		child.Build(ctx)
		h.Uint64(child.ContentHash())
	}
	b.FinishBuild(h.Sum())
}

// Paint creates a native box, paints each child in order and assigns each
// slot's stretch factor: the child's own flex for an Expanded, zero
// otherwise.
func (b *AxisAlignedBox) Paint() (host.Element, error) {
	tk, err := toolkit("widgets.AxisAlignedBox.Paint")
	if err != nil {
		return nil, err
	}
	box := tk.NewBox(b.vertical)
	for slot, child := range b.children {
		element, err := child.Paint()
		if err != nil {
			return nil, err
		}
		box.Add(element)
		flex := 0
		if expanded, ok := child.(*Expanded); ok {
			flex = expanded.Flex()
		}
		box.SetStretch(slot, flex)
	}
	return box, nil
}
