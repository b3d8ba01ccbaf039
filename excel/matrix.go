package excel

import (
	"github.com/xuri/excelize/v2"
	"kastelo.dev/attendance"
)

const (
	CodeHeader = "Employee Code"
	NameHeader = "Employee"
)

// MatrixXLSX renders one worksheet per month sheet, in order.
func MatrixXLSX(sheets []attendance.MonthSheet) ([]byte, error) {
	xlsx := newFile()

	first := xlsx.GetSheetName(xlsx.GetActiveSheetIndex())
	for i, ms := range sheets {
		if i == 0 {
			if err := xlsx.SetSheetName(first, ms.Name); err != nil {
				return nil, err
			}
		} else if _, err := xlsx.NewSheet(ms.Name); err != nil {
			return nil, err
		}
		if err := writeMatrixSheet(xlsx, ms); err != nil {
			return nil, err
		}
	}

	return finish(xlsx)
}

func writeMatrixSheet(xlsx *excelize.File, ms attendance.MonthSheet) error {
	sheet := ms.Name
	lastCol := 2 + len(ms.Days)

	_ = xlsx.SetColWidth(sheet, "A", "A", 14)
	_ = xlsx.SetColWidth(sheet, "B", "B", 30)
	if len(ms.Days) > 0 {
		_ = xlsx.SetColWidth(sheet, "C", colName(lastCol), 11)
	}

	if err := xlsx.SetCellValue(sheet, cell(1, 1), CodeHeader); err != nil {
		return err
	}
	if err := xlsx.SetCellValue(sheet, cell(2, 1), NameHeader); err != nil {
		return err
	}
	for i, day := range ms.Days {
		if err := xlsx.SetCellValue(sheet, cell(3+i, 1), day); err != nil {
			return err
		}
	}
	setStyle(xlsx, sheet, cell(1, 1), cell(2, 1), headerStyle())
	if len(ms.Days) > 0 {
		setStyle(xlsx, sheet, cell(3, 1), cell(lastCol, 1), headerStyle(), numberFormat(dateFormat))
	}

	_ = xlsx.SetPanes(sheet, &excelize.Panes{
		ActivePane:  "bottomRight",
		Freeze:      true,
		XSplit:      2,
		YSplit:      1,
		TopLeftCell: "C2",
	})

	for i, r := range ms.Rows {
		row := i + 2
		if err := xlsx.SetCellValue(sheet, cell(1, row), r.Entry.Code); err != nil {
			return err
		}
		if err := xlsx.SetCellValue(sheet, cell(2, row), r.Entry.Name); err != nil {
			return err
		}
		for j, v := range r.Cells {
			if v == "" {
				continue
			}
			if err := xlsx.SetCellValue(sheet, cell(3+j, row), v); err != nil {
				return err
			}
		}
	}

	if len(ms.Days) > 0 && len(ms.Rows) > 0 {
		setStyle(xlsx, sheet, cell(3, 2), cell(lastCol, len(ms.Rows)+1), textAlignment("center"))
	}
	return nil
}
