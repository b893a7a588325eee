package widgets

import (
	"github.com/go-veneer/veneer/pkg/core"
	"github.com/go-veneer/veneer/pkg/host"
)

// Text displays a static string. It wraps a native label and has no events.
type Text struct {
	core.WidgetBase

	// Content is the text to display.
	Content string
}

func (t *Text) Build(ctx *core.BuildContext) {
	t.StartBuild(ctx)
	t.FinishBuild(core.NewHasher("Text").String(t.Content).Sum())
}

func (t *Text) Paint() (host.Element, error) {
	tk, err := toolkit("widgets.Text.Paint")
	if err != nil {
		return nil, err
	}
	return tk.NewLabel(t.Content), nil
}
