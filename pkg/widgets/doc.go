// Package widgets provides the built-in primitive and layout widgets.
//
// Primitive widgets (Text, LabelButton, TextField, TableView, DropdownList)
// wrap exactly one native element and forward its events to optional user
// callbacks. Layout widgets (Expanded, AxisAlignedBox, Column, Row) own child
// widgets and lower to a native box layout with per-slot stretch factors.
//
// Widgets are constructed as struct literals and are immutable once built
// into a tree:
//
//	tree := &widgets.Column{
//	    Alignment: widgets.AlignCenter,
//	    Children: []core.Widget{
//	        &widgets.Text{Content: "Sign in"},
//	        &widgets.TextField{Placeholder: "user name", OnChanged: onName},
//	        &widgets.LabelButton{Label: "Go", OnTap: onGo},
//	    },
//	}
//
// Expanded is the exception: it has construction invariants (a child is
// required, flex must be positive), so it is built with [NewExpanded].
package widgets
