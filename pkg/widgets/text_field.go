package widgets

import (
	"github.com/go-veneer/veneer/pkg/core"
	"github.com/go-veneer/veneer/pkg/host"
)

// TextField is a single-line text input, optionally masked.
type TextField struct {
	core.WidgetBase

	// Placeholder is shown while the field is empty.
	Placeholder string
	// Value seeds the field content.
	Value string
	// Hidden masks the entered text (password entry).
	Hidden bool
	// OnChanged is invoked with the new text on every native text change.
	// May be nil.
	OnChanged func(text string)
}

func (f *TextField) Build(ctx *core.BuildContext) {
	f.StartBuild(ctx)
	f.FinishBuild(core.NewHasher("TextField").
		String(f.Placeholder).
		String(f.Value).
		Bool(f.Hidden).
		Func(f.OnChanged).
		Sum())
}

func (f *TextField) Paint() (host.Element, error) {
	tk, err := toolkit("widgets.TextField.Paint")
	if err != nil {
		return nil, err
	}
	input := tk.NewTextInput(f.Placeholder, f.Value, f.Hidden)
	if f.OnChanged != nil {
		input.OnChanged(f.OnChanged)
	}
	return input, nil
}
