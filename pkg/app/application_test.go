package app_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-veneer/veneer/pkg/app"
	"github.com/go-veneer/veneer/pkg/core"
	"github.com/go-veneer/veneer/pkg/host"
	veneertest "github.com/go-veneer/veneer/pkg/testing"
	"github.com/go-veneer/veneer/pkg/widgets"
)

func textBuilder(content string) app.Builder {
	return func(ctx *core.BuildContext) core.Widget {
		return &widgets.Text{Content: content}
	}
}

func TestRun_PaintsAndShowsWindow(t *testing.T) {
	tester := veneertest.NewTesterWithT(t)

	a := app.New(textBuilder("hello"))
	a.Title = "Demo"
	a.Width, a.Height = 640, 480

	if err := a.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}

	window := tester.Window()
	if window == nil {
		t.Fatal("Run should create a window")
	}
	if !window.Shown {
		t.Error("Run should show the window")
	}
	if window.Title != "Demo" {
		t.Errorf("title = %q, want %q", window.Title, "Demo")
	}
	if window.Width != 640 || window.Height != 480 {
		t.Errorf("size = %dx%d, want 640x480", window.Width, window.Height)
	}
	if !tester.Find(veneertest.ByText("hello")).Exists() {
		t.Error("the built tree should be attached as window content")
	}
	if !tester.Toolkit.RanLoop() {
		t.Error("Run should enter the host event loop")
	}
}

func TestRun_DefaultTitle(t *testing.T) {
	tester := veneertest.NewTesterWithT(t)

	if err := app.New(textBuilder("x")).Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := tester.Window().Title; got != app.DefaultTitle {
		t.Errorf("title = %q, want %q", got, app.DefaultTitle)
	}
}

func TestRun_IsNoopWhenRunning(t *testing.T) {
	tester := veneertest.NewTesterWithT(t)

	a := app.New(textBuilder("x"))
	if err := a.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if err := a.Run(); err != nil {
		t.Errorf("second Run should be a no-op, got %v", err)
	}
	if len(tester.Toolkit.Windows) != 1 {
		t.Errorf("windows = %d, want 1", len(tester.Toolkit.Windows))
	}
}

func TestRun_RequiresBuilder(t *testing.T) {
	veneertest.NewTesterWithT(t)

	err := app.New(nil).Run()
	if !errors.Is(err, app.ErrNoBuilder) {
		t.Errorf("Run without builder = %v, want ErrNoBuilder", err)
	}
}

func TestRun_RequiresToolkit(t *testing.T) {
	host.ResetForTest()

	err := app.New(textBuilder("x")).Run()
	if !errors.Is(err, host.ErrNoToolkit) {
		t.Errorf("Run without toolkit = %v, want ErrNoToolkit", err)
	}
}

func TestRun_PropagatesEventLoopError(t *testing.T) {
	tester := veneertest.NewTesterWithT(t)

	loopErr := errors.New("display lost")
	tester.Toolkit.RunErr = loopErr

	if err := app.New(textBuilder("x")).Run(); !errors.Is(err, loopErr) {
		t.Errorf("Run = %v, want the toolkit error unmodified", err)
	}
}

func TestRepaint_BeforeRun(t *testing.T) {
	veneertest.NewTesterWithT(t)

	err := app.New(textBuilder("x")).Repaint()
	if !errors.Is(err, app.ErrNotRunning) {
		t.Errorf("Repaint before Run = %v, want ErrNotRunning", err)
	}
}

func TestRepaint_ReplacesDisplayedTree(t *testing.T) {
	tester := veneertest.NewTesterWithT(t)

	content := "first"
	a := app.New(func(ctx *core.BuildContext) core.Widget {
		return &widgets.Text{Content: content}
	})
	if err := a.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}

	content = "second"
	if err := a.Repaint(); err != nil {
		t.Fatalf("Repaint: %v", err)
	}

	window := tester.Window()
	if window.Attachments != 2 {
		t.Errorf("attachments = %d, want 2", window.Attachments)
	}
	if !tester.Find(veneertest.ByText("second")).Exists() {
		t.Error("the repainted tree should be displayed")
	}
	if tester.Find(veneertest.ByText("first")).Exists() {
		t.Error("the old tree should be gone")
	}
}

// Full pipeline: a button tap triggers SetState from within the native
// callback, and the whole displayed tree is rebuilt and replaced.
func TestEndToEnd_TapRebuildsTree(t *testing.T) {
	tester := veneertest.NewTesterWithT(t)

	taps := 0
	builder := func(ctx *core.BuildContext) core.Widget {
		var button *widgets.LabelButton
		button = &widgets.LabelButton{
			Label: "go",
			OnTap: func() {
				taps++
				if err := button.SetState(); err != nil {
					t.Errorf("SetState from tap: %v", err)
				}
			},
		}
		return &widgets.Column{
			Children: []core.Widget{
				&widgets.Text{Content: "hi"},
				button,
			},
		}
	}

	if err := app.New(builder).Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}

	box, ok := tester.Window().Content.(*veneertest.Box)
	if !ok {
		t.Fatalf("window content = %T, want a box", tester.Window().Content)
	}
	if !box.Vertical || len(box.Children) != 2 {
		t.Fatalf("displayed tree should be 2 stacked elements, got %d (vertical=%v)",
			len(box.Children), box.Vertical)
	}

	first := tester.Window().Content
	if err := tester.Tap(veneertest.ByText("go")); err != nil {
		t.Fatalf("Tap: %v", err)
	}

	if taps != 1 {
		t.Errorf("taps = %d, want 1", taps)
	}
	if tester.Window().Attachments != 2 {
		t.Errorf("attachments = %d, want 2 (repaint should reattach)", tester.Window().Attachments)
	}
	if tester.Window().Content == first {
		t.Error("repaint should replace the displayed native tree")
	}
	if !tester.Find(veneertest.ByText("hi")).Exists() {
		t.Error("the rebuilt tree should contain the same declared widgets")
	}
}

func TestRun_AppliesConfigFile(t *testing.T) {
	tester := veneertest.NewTesterWithT(t)

	dir := t.TempDir()
	cfg := []byte("window:\n  title: Configured\n  width: 300\n  height: 200\n")
	if err := os.WriteFile(filepath.Join(dir, app.ConfigFile), cfg, 0o644); err != nil {
		t.Fatal(err)
	}
	chdir(t, dir)

	if err := app.New(textBuilder("x")).Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}

	window := tester.Window()
	if window.Title != "Configured" {
		t.Errorf("title = %q, want %q", window.Title, "Configured")
	}
	if window.Width != 300 || window.Height != 200 {
		t.Errorf("size = %dx%d, want 300x200", window.Width, window.Height)
	}
}

func TestRun_ExplicitFieldsOverrideConfig(t *testing.T) {
	tester := veneertest.NewTesterWithT(t)

	dir := t.TempDir()
	cfg := []byte("window:\n  title: Configured\n")
	if err := os.WriteFile(filepath.Join(dir, app.ConfigFile), cfg, 0o644); err != nil {
		t.Fatal(err)
	}
	chdir(t, dir)

	a := app.New(textBuilder("x"))
	a.Title = "Explicit"
	if err := a.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := tester.Window().Title; got != "Explicit" {
		t.Errorf("title = %q, want %q", got, "Explicit")
	}
}
