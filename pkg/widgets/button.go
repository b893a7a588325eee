package widgets

import (
	"github.com/go-veneer/veneer/pkg/core"
	"github.com/go-veneer/veneer/pkg/host"
)

// LabelButton is a clickable push-button with a text label.
type LabelButton struct {
	core.WidgetBase

	// Label is the button caption.
	Label string
	// Tooltip is shown on hover.
	Tooltip string
	// OnTap is invoked on a native click. May be nil.
	OnTap func()
}

func (b *LabelButton) Build(ctx *core.BuildContext) {
	b.StartBuild(ctx)
	b.FinishBuild(core.NewHasher("LabelButton").
		String(b.Label).
		String(b.Tooltip).
		Func(b.OnTap).
		Sum())
}

func (b *LabelButton) Paint() (host.Element, error) {
	tk, err := toolkit("widgets.LabelButton.Paint")
	if err != nil {
		return nil, err
	}
	btn := tk.NewButton(b.Label, b.Tooltip)
	if b.OnTap != nil {
		btn.OnTap(b.OnTap)
	}
	return btn, nil
}
