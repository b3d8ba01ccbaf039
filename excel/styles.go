package excel

import (
	"fmt"

	"dario.cat/mergo"
	"github.com/xuri/excelize/v2"
)

const (
	dateFormat     = "yyyy-mm-dd"
	dateTimeFormat = "yyyy-mm-dd hh:mm:ss"

	// Time of day is written as text; a numeric cell for midnight reads
	// back as a bare 0.
	clockFormat = "15:04:05"
)

func newFile() *excelize.File {
	xlsx := excelize.NewFile()

	_ = xlsx.SetAppProps(&excelize.AppProperties{
		Application: "kastelo.dev/attendance",
		DocSecurity: 2,
	})

	return xlsx
}

// finish sizes the window and serializes the workbook.
func finish(xlsx *excelize.File) ([]byte, error) {
	xlsx.SetActiveSheet(0)

	for i := range xlsx.WorkBook.BookViews.WorkBookView {
		xlsx.WorkBook.BookViews.WorkBookView[i].XWindow = "1000"
		xlsx.WorkBook.BookViews.WorkBookView[i].YWindow = "1000"
		xlsx.WorkBook.BookViews.WorkBookView[i].WindowWidth = 25000
		xlsx.WorkBook.BookViews.WorkBookView[i].WindowHeight = 25000 / 3 * 2
	}

	buf, err := xlsx.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// cell returns the A1 reference of the 1-based column and row.
func cell(col, row int) string {
	name, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		panic(fmt.Sprintf("bug: cell %d,%d: %v", col, row, err))
	}
	return name
}

func colName(col int) string {
	name, err := excelize.ColumnNumberToName(col)
	if err != nil {
		panic(fmt.Sprintf("bug: column %d: %v", col, err))
	}
	return name
}

func numberFormat(format string) *excelize.Style {
	return &excelize.Style{
		CustomNumFmt: &format,
	}
}

func fontBold() *excelize.Style {
	return &excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
	}
}

func textAlignment(a string) *excelize.Style {
	return &excelize.Style{
		Alignment: &excelize.Alignment{
			Horizontal: a,
		},
	}
}

func thinBorder(where ...string) *excelize.Style {
	s := &excelize.Style{}
	for _, w := range where {
		s.Border = append(s.Border, excelize.Border{
			Type:  w,
			Color: "#000000",
			Style: 1,
		})
	}
	return s
}

func mergeStyles(ext ...*excelize.Style) *excelize.Style {
	if len(ext) == 0 {
		return nil
	}
	for _, e := range ext[1:] {
		_ = mergo.Merge(ext[0], e, mergo.WithOverride)
	}
	return ext[0]
}

// setStyle applies the merged style to the cell range, ignoring styles
// excelize rejects.
func setStyle(xlsx *excelize.File, sheet, from, to string, styles ...*excelize.Style) {
	style, err := xlsx.NewStyle(mergeStyles(styles...))
	if err != nil {
		return
	}
	_ = xlsx.SetCellStyle(sheet, from, to, style)
}

func headerStyle() *excelize.Style {
	return mergeStyles(fontBold(), thinBorder("bottom"))
}
