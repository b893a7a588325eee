// Package host defines the narrow boundary between the widget layer and a
// concrete GUI toolkit binding.
//
// The widget layer never talks to a toolkit directly. It asks the registered
// [Toolkit] for native elements (labels, buttons, inputs, tables, combos and
// box layouts), wires callbacks through the typed element interfaces, and
// composes elements with [Box.Add] and [Box.SetStretch]. Rendering, window
// chrome and the event loop all live behind this package.
//
// A binding registers itself with [Register], typically from an init function
// or from the application's main. Tests use the headless binding provided by
// the testing package.
package host

// Element is an opaque handle to a native visual element.
type Element interface {
	// Native returns the underlying toolkit object.
	Native() any
}

// Button is a push-button element.
type Button interface {
	Element
	// OnTap registers the callback invoked on a native click.
	OnTap(fn func())
}

// TextInput is a single-line text entry element.
type TextInput interface {
	Element
	// OnChanged registers the callback invoked with the new text on every
	// native text change.
	OnChanged(fn func(text string))
}

// Table is a grid element with editable cells.
type Table interface {
	Element
	// SetCell sets the text of the cell at (row, col).
	SetCell(row, col int, text string)
	// SetHeader sets the header text of a column.
	SetHeader(col int, text string)
	// CellText returns the current text of the cell at (row, col).
	CellText(row, col int) string
	// OnCellSelected registers the callback invoked when a cell is clicked.
	OnCellSelected(fn func(row, col int))
	// OnCellChanged registers the callback invoked after a cell edit.
	OnCellChanged(fn func(row, col int))
}

// Combo is a drop-down selection element.
type Combo interface {
	Element
	// OnSelected registers the callback invoked with the newly selected
	// index on a native selection change.
	OnSelected(fn func(index int))
}

// Box is a linear layout element. Children occupy slots in insertion order.
type Box interface {
	Element
	// Add appends a child element at the next slot.
	Add(child Element)
	// SetStretch sets the stretch factor of a slot. A factor of zero keeps
	// the child at its natural size.
	SetStretch(slot, flex int)
}

// Window is a top-level window hosting a single content element.
type Window interface {
	// SetTitle sets the window title.
	SetTitle(title string)
	// Resize sets a fixed window size in pixels.
	Resize(width, height int)
	// SetContent attaches the content element, replacing and destroying any
	// previously attached one.
	SetContent(content Element)
	// Show makes the window visible.
	Show()
}

// MessageBoxIcon selects the icon shown by a message box.
type MessageBoxIcon int

const (
	IconNone MessageBoxIcon = iota
	IconQuestion
	IconInfo
	IconWarning
	IconCritical
)

// MessageBoxButtons selects the button set shown by a message box.
type MessageBoxButtons int

const (
	ButtonsOK MessageBoxButtons = iota
	ButtonsOKCancel
	ButtonsYesNo
	ButtonsClose
)

// MessageBoxResult identifies the logical button that dismissed a message box.
type MessageBoxResult string

const (
	ResultOK     MessageBoxResult = "ok"
	ResultCancel MessageBoxResult = "cancel"
	ResultYes    MessageBoxResult = "yes"
	ResultNo     MessageBoxResult = "no"
	ResultClose  MessageBoxResult = "close"
)

// Toolkit is the factory and event-loop capability a GUI binding provides.
//
// All methods must be called from the thread that drives [Toolkit.Run]; the
// widget layer is single-threaded by design.
type Toolkit interface {
	// NewLabel creates a static text element.
	NewLabel(text string) Element
	// NewButton creates a push-button with a label and tooltip.
	NewButton(label, tooltip string) Button
	// NewTextInput creates a single-line input seeded with value. When
	// hidden is true the input masks its content.
	NewTextInput(placeholder, value string, hidden bool) TextInput
	// NewTable creates a rows-by-cols grid.
	NewTable(rows, cols int) Table
	// NewCombo creates a drop-down seeded with items and the selected index.
	NewCombo(items []string, index int) Combo
	// NewBox creates a vertical or horizontal box layout.
	NewBox(vertical bool) Box
	// NewWindow creates a top-level window.
	NewWindow() Window
	// Run enters the toolkit event loop and blocks until the application
	// exits. Toolkit-level failures propagate unmodified.
	Run() error
	// ShowMessageBox shows a one-shot modal dialog and blocks until it is
	// dismissed, reporting which logical button was pressed.
	ShowMessageBox(title, text string, icon MessageBoxIcon, buttons MessageBoxButtons) (MessageBoxResult, error)
}
