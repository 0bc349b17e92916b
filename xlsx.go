package cellgrid

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/xuri/excelize/v2"
)

// DefaultSheet is the sheet WriteXLSX renders into.
const DefaultSheet = "Sheet1"

// XLSXRenderer renders cell descriptors into a worksheet. Spans become
// merged ranges, styles become fills and fonts, and sticky top rows and
// left columns become a frozen pane.
type XLSXRenderer struct {
	file   *excelize.File
	sheet  string
	styles map[Style]int // style → excelize style ID
	logger *slog.Logger
}

// NewXLSXRenderer creates a renderer writing to sheet of f, creating the
// sheet if it does not exist.
func NewXLSXRenderer(f *excelize.File, sheet string, opts ...Option) (*XLSXRenderer, error) {
	idx, err := f.GetSheetIndex(sheet)
	if err != nil {
		return nil, fmt.Errorf("look up sheet %q: %w", sheet, err)
	}
	if idx == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, fmt.Errorf("create sheet %q: %w", sheet, err)
		}
	}
	o := buildOptions(opts)
	return &XLSXRenderer{
		file:   f,
		sheet:  sheet,
		styles: make(map[Style]int),
		logger: o.logger,
	}, nil
}

// Render writes cells and applies layout.
func (r *XLSXRenderer) Render(cells []CellDescriptor, layout Layout) error {
	for _, c := range cells {
		if err := r.renderCell(c); err != nil {
			return err
		}
	}
	return r.freeze(layout)
}

func (r *XLSXRenderer) renderCell(c CellDescriptor) error {
	name := c.Ref().CellName()
	if err := r.file.SetCellValue(r.sheet, name, c.Value()); err != nil {
		return fmt.Errorf("set cell %s: %w", name, err)
	}

	area := SpanArea(c)
	if !area.Single() {
		if err := r.file.MergeCell(r.sheet, area.First.CellName(), area.Last.CellName()); err != nil {
			return fmt.Errorf("merge cells %s: %w", area, err)
		}
	}

	st, ok := c.Props.Style()
	if !ok {
		if c.Template != TemplateHeader {
			return nil
		}
		st = Style{}
	}
	if c.Template == TemplateHeader {
		st.Bold = true
	}
	id, err := r.styleID(st)
	if err != nil {
		return err
	}
	if err := r.file.SetCellStyle(r.sheet, area.First.CellName(), area.Last.CellName(), id); err != nil {
		return fmt.Errorf("style cell %s: %w", name, err)
	}
	return nil
}

// styleID returns a cached excelize style for st.
func (r *XLSXRenderer) styleID(st Style) (int, error) {
	if id, ok := r.styles[st]; ok {
		return id, nil
	}
	xs := &excelize.Style{
		Font: &excelize.Font{Bold: st.Bold, Color: strings.TrimPrefix(st.Color, "#")},
	}
	if st.Background != "" {
		xs.Fill = excelize.Fill{
			Type:    "pattern",
			Pattern: 1,
			Color:   []string{strings.TrimPrefix(st.Background, "#")},
		}
	}
	id, err := r.file.NewStyle(xs)
	if err != nil {
		return 0, fmt.Errorf("create style %+v: %w", st, err)
	}
	r.styles[st] = id
	return id, nil
}

// freeze maps sticky rows and columns onto a frozen pane.
func (r *XLSXRenderer) freeze(layout Layout) error {
	if layout.StickyBottomRows > 0 || layout.StickyRightColumns > 0 {
		r.logger.Debug("xlsx has no bottom or right panes, ignoring",
			"stickyBottomRows", layout.StickyBottomRows, "stickyRightColumns", layout.StickyRightColumns)
	}
	top, left := layout.StickyTopRows, layout.StickyLeftColumns
	if top <= 0 && left <= 0 {
		return nil
	}
	pane := "bottomRight"
	switch {
	case left <= 0:
		pane = "bottomLeft"
	case top <= 0:
		pane = "topRight"
	}
	err := r.file.SetPanes(r.sheet, &excelize.Panes{
		Freeze:      true,
		XSplit:      max(left, 0),
		YSplit:      max(top, 0),
		TopLeftCell: CellRef{Row: max(top, 0), Col: max(left, 0)}.CellName(),
		ActivePane:  pane,
	})
	if err != nil {
		return fmt.Errorf("freeze panes: %w", err)
	}
	return nil
}

// WriteXLSX renders cells into a new workbook and writes it to w.
func WriteXLSX(w io.Writer, cells []CellDescriptor, layout Layout, opts ...Option) error {
	f := excelize.NewFile()
	defer f.Close()

	r, err := NewXLSXRenderer(f, DefaultSheet, opts...)
	if err != nil {
		return err
	}
	if err := r.Render(cells, layout); err != nil {
		return err
	}
	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// ReadRowsXLSX reads records from a worksheet whose first row names the
// fields. An empty sheet name selects the active sheet. Cells missing from
// a data row read as "".
func ReadRowsXLSX(rd io.Reader, sheet string) ([]Record, error) {
	f, err := excelize.OpenReader(rd)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(f.GetActiveSheetIndex())
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read rows from sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	header := rows[0]
	records := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		fields := make([]Field, 0, len(header))
		for col, name := range header {
			if name == "" {
				continue
			}
			v := ""
			if col < len(row) {
				v = row[col]
			}
			fields = append(fields, F(name, v))
		}
		records = append(records, RecordOf(fields...))
	}
	return records, nil
}
