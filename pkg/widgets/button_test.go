package widgets_test

import (
	"testing"

	"github.com/go-veneer/veneer/pkg/core"
	veneertest "github.com/go-veneer/veneer/pkg/testing"
	"github.com/go-veneer/veneer/pkg/widgets"
)

func TestLabelButton_Tap(t *testing.T) {
	tester := veneertest.NewTesterWithT(t)

	tapped := false
	err := tester.PumpWidget(&widgets.LabelButton{
		Label:   "Go",
		Tooltip: "start",
		OnTap:   func() { tapped = true },
	})
	if err != nil {
		t.Fatalf("PumpWidget: %v", err)
	}

	if err := tester.Tap(veneertest.ByText("Go")); err != nil {
		t.Fatalf("Tap: %v", err)
	}
	if !tapped {
		t.Error("expected OnTap callback to fire")
	}
}

func TestLabelButton_TapWithoutCallback(t *testing.T) {
	tester := veneertest.NewTesterWithT(t)

	if err := tester.PumpWidget(&widgets.LabelButton{Label: "Go"}); err != nil {
		t.Fatalf("PumpWidget: %v", err)
	}
	// Must not panic.
	if err := tester.Tap(veneertest.ByText("Go")); err != nil {
		t.Fatalf("Tap: %v", err)
	}
}

func TestLabelButton_TooltipReachesElement(t *testing.T) {
	tester := veneertest.NewTesterWithT(t)

	if err := tester.PumpWidget(&widgets.LabelButton{Label: "Go", Tooltip: "start"}); err != nil {
		t.Fatalf("PumpWidget: %v", err)
	}
	button := tester.Find(veneertest.ByType[*veneertest.Button]()).First().(*veneertest.Button)
	if button.Tooltip != "start" {
		t.Errorf("tooltip = %q, want %q", button.Tooltip, "start")
	}
}

func TestLabelButton_HashDistinguishesCallbacks(t *testing.T) {
	ctx := core.NewBuildContext(nil)

	f := func() {}
	g := func() {}

	a := &widgets.LabelButton{Label: "Go", OnTap: f}
	a.Build(ctx)
	b := &widgets.LabelButton{Label: "Go", OnTap: g}
	b.Build(ctx)
	if a.ContentHash() == b.ContentHash() {
		t.Error("two distinct callbacks of the same shape should hash differently")
	}

	c := &widgets.LabelButton{Label: "Go", OnTap: f}
	c.Build(ctx)
	if a.ContentHash() != c.ContentHash() {
		t.Error("the same callback should hash stably")
	}
}
