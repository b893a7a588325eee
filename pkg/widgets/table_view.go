package widgets

import (
	"strconv"

	"github.com/go-veneer/veneer/pkg/core"
	"github.com/go-veneer/veneer/pkg/host"
)

// TableView is a grid of text cells with optional column headers.
//
// The declared Data may be smaller than Rows×Columns: a missing cell defaults
// to the empty string, and a missing header defaults to the one-based column
// number. OnSelected receives the cell's declared value; OnChanged receives
// the value read back from the native grid after an edit.
type TableView struct {
	core.WidgetBase

	// Rows and Columns give the grid dimensions.
	Rows    int
	Columns int
	// Headers are the column header texts. Shorter than Columns is fine.
	Headers []string
	// Data holds the cell texts, row-major. Ragged or short is fine.
	Data [][]string
	// OnSelected is invoked when a cell is clicked. May be nil.
	OnSelected func(row, col int, value string)
	// OnChanged is invoked after a cell edit with the new value. May be nil.
	OnChanged func(row, col int, value string)
}

func (t *TableView) Build(ctx *core.BuildContext) {
	t.StartBuild(ctx)
	h := core.NewHasher("TableView").
		Int(t.Rows).
		Int(t.Columns).
		Strings(t.Headers).
		Int(len(t.Data))
	for _, row := range t.Data {
		h.Strings(row)
	}
	t.FinishBuild(h.Func(t.OnSelected).Func(t.OnChanged).Sum())
}

func (t *TableView) Paint() (host.Element, error) {
	tk, err := toolkit("widgets.TableView.Paint")
	if err != nil {
		return nil, err
	}
	table := tk.NewTable(t.Rows, t.Columns)
	for row := 0; row < t.Rows; row++ {
		for col := 0; col < t.Columns; col++ {
			table.SetCell(row, col, t.cellAt(row, col))
		}
	}
	for col := 0; col < t.Columns; col++ {
		table.SetHeader(col, t.headerAt(col))
	}
	if t.OnSelected != nil {
		table.OnCellSelected(func(row, col int) {
			t.OnSelected(row, col, t.cellAt(row, col))
		})
	}
	if t.OnChanged != nil {
		table.OnCellChanged(func(row, col int) {
			t.OnChanged(row, col, table.CellText(row, col))
		})
	}
	return table, nil
}

// cellAt returns the declared cell value, or "" when (row, col) is outside
// the declared data.
func (t *TableView) cellAt(row, col int) string {
	if row < 0 || row >= len(t.Data) {
		return ""
	}
	if col < 0 || col >= len(t.Data[row]) {
		return ""
	}
	return t.Data[row][col]
}

// headerAt returns the declared header, or the one-based column number.
func (t *TableView) headerAt(col int) string {
	if col >= 0 && col < len(t.Headers) {
		return t.Headers[col]
	}
	return strconv.Itoa(col + 1)
}
