package excel

import (
	"github.com/xuri/excelize/v2"
	"kastelo.dev/attendance"
)

const EventsSheet = "Attendance"

var EventColumns = []string{"employee_id", "timestamp", "date", "time", "signal_1", "signal_2"}

// EventsXLSX renders parsed scan events as a single-sheet workbook.
func EventsXLSX(events []attendance.ScanEvent) ([]byte, error) {
	xlsx := newFile()

	sheet := xlsx.GetSheetName(xlsx.GetActiveSheetIndex())
	if err := xlsx.SetSheetName(sheet, EventsSheet); err != nil {
		return nil, err
	}
	sheet = EventsSheet

	if err := writeEvents(xlsx, sheet, events); err != nil {
		return nil, err
	}
	return finish(xlsx)
}

func writeEvents(xlsx *excelize.File, sheet string, events []attendance.ScanEvent) error {
	_ = xlsx.SetColWidth(sheet, "A", "A", 12)
	_ = xlsx.SetColWidth(sheet, "B", "B", 20)
	_ = xlsx.SetColWidth(sheet, "C", "D", 12)
	_ = xlsx.SetColWidth(sheet, "E", "F", 10)

	for i, hdr := range EventColumns {
		if err := xlsx.SetCellValue(sheet, cell(i+1, 1), hdr); err != nil {
			return err
		}
	}
	setStyle(xlsx, sheet, cell(1, 1), cell(len(EventColumns), 1), headerStyle())

	_ = xlsx.SetPanes(sheet, &excelize.Panes{
		ActivePane:  "bottomLeft",
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
	})

	row := 2
	for _, ev := range events {
		values := []interface{}{
			ev.EmployeeID,
			ev.Timestamp,
			ev.Date(),
			ev.Timestamp.Format(clockFormat),
			signalValue(ev.Signal1),
			signalValue(ev.Signal2),
		}
		for i, v := range values {
			if v == nil {
				continue
			}
			if err := xlsx.SetCellValue(sheet, cell(i+1, row), v); err != nil {
				return err
			}
		}
		row++
	}

	if len(events) > 0 {
		last := len(events) + 1
		setStyle(xlsx, sheet, cell(2, 2), cell(2, last), numberFormat(dateTimeFormat))
		setStyle(xlsx, sheet, cell(3, 2), cell(3, last), numberFormat(dateFormat))
		setStyle(xlsx, sheet, cell(4, 2), cell(4, last), textAlignment("right"))
	}
	return nil
}

func signalValue(v *int) interface{} {
	if v == nil {
		return nil
	}
	return *v
}
