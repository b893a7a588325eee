package widgets

import (
	"github.com/go-veneer/veneer/pkg/core"
	"github.com/go-veneer/veneer/pkg/host"
)

// DropdownList is a selection list seeded at Index.
type DropdownList struct {
	core.WidgetBase

	// Items are the selectable entries.
	Items []string
	// Index is the initially selected entry.
	Index int
	// OnChanged is invoked with the newly selected index and its text on a
	// native selection change. May be nil.
	OnChanged func(index int, item string)
}

func (d *DropdownList) Build(ctx *core.BuildContext) {
	d.StartBuild(ctx)
	d.FinishBuild(core.NewHasher("DropdownList").
		Strings(d.Items).
		Int(d.Index).
		Func(d.OnChanged).
		Sum())
}

func (d *DropdownList) Paint() (host.Element, error) {
	tk, err := toolkit("widgets.DropdownList.Paint")
	if err != nil {
		return nil, err
	}
	combo := tk.NewCombo(d.Items, d.Index)
	if d.OnChanged != nil {
		combo.OnSelected(func(index int) {
			if index < 0 || index >= len(d.Items) {
				return
			}
			d.OnChanged(index, d.Items[index])
		})
	}
	return combo, nil
}
