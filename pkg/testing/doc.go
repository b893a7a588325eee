// Package testing provides a headless host toolkit and a widget test harness.
//
// The headless [Toolkit] implements the host boundary without any real GUI:
// every created element is an inspectable in-memory struct, and native events
// are injected programmatically (Button.Tap, Input.EnterText, Table.ClickCell
// and so on). The [Tester] harness registers the toolkit, pumps widget trees
// through build and paint, and locates painted elements with finders:
//
//	tester := veneertest.NewTesterWithT(t)
//	tester.PumpWidget(&widgets.LabelButton{Label: "Go", OnTap: onGo})
//	if err := tester.Tap(veneertest.ByText("Go")); err != nil {
//	    t.Fatal(err)
//	}
//
// Import as veneertest to avoid clashing with the standard testing package.
package testing
