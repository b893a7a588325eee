package testing

import (
	"fmt"
	stdtesting "testing"

	"github.com/go-veneer/veneer/pkg/core"
	"github.com/go-veneer/veneer/pkg/host"
)

// Tester drives widget trees through build and paint against the headless
// toolkit.
//
// For widget-level tests, PumpWidget builds and paints a tree; the tester
// itself acts as the repaint sink, so SetState from inside the tree rebuilds
// and repaints it. For application-level tests, construct an app.Application
// as usual and run it; the headless toolkit's event loop returns immediately,
// leaving the window inspectable through Window and Find.
type Tester struct {
	// Toolkit is the headless binding registered for the test.
	Toolkit *Toolkit

	ctx    *core.BuildContext
	widget core.Widget
	root   host.Element
}

// NewTester registers a fresh headless toolkit and returns a tester bound to
// it. Call Cleanup when done, or use NewTesterWithT instead.
func NewTester() *Tester {
	tk := NewToolkit()
	host.Register(tk)
	t := &Tester{Toolkit: tk}
	t.ctx = core.NewBuildContext(t)
	return t
}

// NewTesterWithT creates a tester that unregisters its toolkit via t.Cleanup.
// This is the recommended constructor for tests.
func NewTesterWithT(t *stdtesting.T) *Tester {
	tester := NewTester()
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup unregisters the headless toolkit. Must be called if the tester was
// not created with NewTesterWithT.
func (t *Tester) Cleanup() {
	host.ResetForTest()
}

// Context returns the build context threaded through PumpWidget builds.
func (t *Tester) Context() *core.BuildContext {
	return t.ctx
}

// PumpWidget builds and paints the widget, making it the current tree.
func (t *Tester) PumpWidget(widget core.Widget) error {
	t.widget = widget
	return t.Repaint()
}

// Repaint rebuilds and repaints the current tree. It is the repaint sink for
// SetState calls from widgets pumped with PumpWidget.
func (t *Tester) Repaint() error {
	if t.widget == nil {
		return fmt.Errorf("veneertest: no widget pumped")
	}
	t.widget.Build(t.ctx)
	element, err := t.widget.Paint()
	if err != nil {
		return err
	}
	t.root = element
	return nil
}

// Window returns the most recently created window, or nil when the test never
// ran an application.
func (t *Tester) Window() *Window {
	if len(t.Toolkit.Windows) == 0 {
		return nil
	}
	return t.Toolkit.Windows[len(t.Toolkit.Windows)-1]
}

// Root returns the current element tree: the displayed window content when an
// application ran, otherwise the last pumped tree.
func (t *Tester) Root() host.Element {
	if w := t.Window(); w != nil {
		return w.Content
	}
	return t.root
}

// Find evaluates the finder against the current element tree.
func (t *Tester) Find(f Finder) FinderResult {
	var matches []host.Element
	for _, element := range Flatten(t.Root()) {
		if f.Matches(element) {
			matches = append(matches, element)
		}
	}
	return FinderResult{elements: matches, finder: f}
}

// Tap injects a click on the first matching button.
func (t *Tester) Tap(f Finder) error {
	for _, element := range t.Find(f).All() {
		if button, ok := element.(*Button); ok {
			button.Tap()
			return nil
		}
	}
	return fmt.Errorf("veneertest: tap: no button matching %s", describe(f))
}

// EnterText injects a text change on the first matching input.
func (t *Tester) EnterText(f Finder, text string) error {
	for _, element := range t.Find(f).All() {
		if input, ok := element.(*Input); ok {
			input.EnterText(text)
			return nil
		}
	}
	return fmt.Errorf("veneertest: enter text: no input matching %s", describe(f))
}
