package testing

import "github.com/go-veneer/veneer/pkg/host"

// Toolkit is an in-memory host binding. Elements it creates record their
// configuration and expose event-injection methods in place of native
// interaction. Its Run returns immediately so application tests do not block.
type Toolkit struct {
	// Windows lists every window created, in creation order.
	Windows []*Window
	// RunErr is returned from Run, simulating an event-loop failure.
	RunErr error
	// MessageBoxResult overrides the result of ShowMessageBox. When empty,
	// the first logical button of the requested set is reported.
	MessageBoxResult host.MessageBoxResult
	// MessageBoxCalls records every ShowMessageBox invocation.
	MessageBoxCalls []MessageBoxCall

	ranLoop bool
}

// MessageBoxCall records one ShowMessageBox invocation.
type MessageBoxCall struct {
	Title   string
	Text    string
	Icon    host.MessageBoxIcon
	Buttons host.MessageBoxButtons
}

// NewToolkit returns an empty headless toolkit.
func NewToolkit() *Toolkit {
	return &Toolkit{}
}

// RanLoop reports whether Run was entered.
func (t *Toolkit) RanLoop() bool { return t.ranLoop }

func (t *Toolkit) NewLabel(text string) host.Element {
	return &Label{Text: text}
}

func (t *Toolkit) NewButton(label, tooltip string) host.Button {
	return &Button{Label: label, Tooltip: tooltip}
}

func (t *Toolkit) NewTextInput(placeholder, value string, hidden bool) host.TextInput {
	return &Input{Placeholder: placeholder, Value: value, Hidden: hidden}
}

func (t *Toolkit) NewTable(rows, cols int) host.Table {
	cells := make([][]string, rows)
	for i := range cells {
		cells[i] = make([]string, cols)
	}
	return &Table{Rows: rows, Cols: cols, cells: cells, headers: make([]string, cols)}
}

func (t *Toolkit) NewCombo(items []string, index int) host.Combo {
	return &Combo{Items: append([]string(nil), items...), Index: index}
}

func (t *Toolkit) NewBox(vertical bool) host.Box {
	return &Box{Vertical: vertical}
}

func (t *Toolkit) NewWindow() host.Window {
	w := &Window{}
	t.Windows = append(t.Windows, w)
	return w
}

func (t *Toolkit) Run() error {
	t.ranLoop = true
	return t.RunErr
}

func (t *Toolkit) ShowMessageBox(title, text string, icon host.MessageBoxIcon, buttons host.MessageBoxButtons) (host.MessageBoxResult, error) {
	t.MessageBoxCalls = append(t.MessageBoxCalls, MessageBoxCall{
		Title: title, Text: text, Icon: icon, Buttons: buttons,
	})
	if t.MessageBoxResult != "" {
		return t.MessageBoxResult, nil
	}
	switch buttons {
	case host.ButtonsYesNo:
		return host.ResultYes, nil
	case host.ButtonsClose:
		return host.ResultClose, nil
	default:
		return host.ResultOK, nil
	}
}

// Label is a headless static text element.
type Label struct {
	Text string
}

func (l *Label) Native() any { return l }

// Button is a headless push-button.
type Button struct {
	Label   string
	Tooltip string

	tap func()
}

func (b *Button) Native() any     { return b }
func (b *Button) OnTap(fn func()) { b.tap = fn }

// Tap injects a native click.
func (b *Button) Tap() {
	if b.tap != nil {
		b.tap()
	}
}

// Input is a headless single-line text input.
type Input struct {
	Placeholder string
	Value       string
	Hidden      bool

	changed func(string)
}

func (i *Input) Native() any               { return i }
func (i *Input) OnChanged(fn func(string)) { i.changed = fn }

// EnterText injects a native text change.
func (i *Input) EnterText(text string) {
	i.Value = text
	if i.changed != nil {
		i.changed(text)
	}
}

// Table is a headless grid element.
type Table struct {
	Rows int
	Cols int

	cells    [][]string
	headers  []string
	selected func(row, col int)
	changed  func(row, col int)
}

func (t *Table) Native() any { return t }

func (t *Table) SetCell(row, col int, text string) {
	if row < 0 || row >= t.Rows || col < 0 || col >= t.Cols {
		return
	}
	t.cells[row][col] = text
}

func (t *Table) SetHeader(col int, text string) {
	if col < 0 || col >= t.Cols {
		return
	}
	t.headers[col] = text
}

func (t *Table) CellText(row, col int) string {
	if row < 0 || row >= t.Rows || col < 0 || col >= t.Cols {
		return ""
	}
	return t.cells[row][col]
}

// Header returns the header text of a column.
func (t *Table) Header(col int) string {
	if col < 0 || col >= t.Cols {
		return ""
	}
	return t.headers[col]
}

func (t *Table) OnCellSelected(fn func(row, col int)) { t.selected = fn }
func (t *Table) OnCellChanged(fn func(row, col int))  { t.changed = fn }

// ClickCell injects a native cell click.
func (t *Table) ClickCell(row, col int) {
	if t.selected != nil {
		t.selected(row, col)
	}
}

// EditCell injects a native cell edit: the cell takes the new text, then the
// change event fires.
func (t *Table) EditCell(row, col int, text string) {
	t.SetCell(row, col, text)
	if t.changed != nil {
		t.changed(row, col)
	}
}

// Combo is a headless drop-down.
type Combo struct {
	Items []string
	Index int

	selected func(int)
}

func (c *Combo) Native() any             { return c }
func (c *Combo) OnSelected(fn func(int)) { c.selected = fn }

// Select injects a native selection change.
func (c *Combo) Select(index int) {
	c.Index = index
	if c.selected != nil {
		c.selected(index)
	}
}

// Box is a headless linear layout.
type Box struct {
	Vertical bool
	Children []host.Element
	Stretch  []int
}

func (b *Box) Native() any { return b }

func (b *Box) Add(child host.Element) {
	b.Children = append(b.Children, child)
	b.Stretch = append(b.Stretch, 0)
}

func (b *Box) SetStretch(slot, flex int) {
	if slot < 0 || slot >= len(b.Stretch) {
		return
	}
	b.Stretch[slot] = flex
}

// Window is a headless top-level window.
type Window struct {
	Title   string
	Width   int
	Height  int
	Content host.Element
	Shown   bool
	// Attachments counts SetContent calls, so tests can assert that a
	// repaint replaced the displayed tree.
	Attachments int
}

func (w *Window) SetTitle(title string) { w.Title = title }

func (w *Window) Resize(width, height int) {
	w.Width = width
	w.Height = height
}

func (w *Window) SetContent(content host.Element) {
	w.Content = content
	w.Attachments++
}

func (w *Window) Show() { w.Shown = true }
