package excel

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"kastelo.dev/attendance"
)

// EventsCSV renders scan events with the same columns as EventsXLSX.
func EventsCSV(events []attendance.ScanEvent) ([]byte, error) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)
	if err := cw.Write(EventColumns); err != nil {
		return nil, err
	}
	for _, ev := range events {
		row := []string{
			strconv.FormatInt(ev.EmployeeID, 10),
			ev.Timestamp.Format("2006-01-02 15:04:05"),
			ev.Date().Format(attendance.DateFormat),
			ev.Timestamp.Format(clockFormat),
			signalString(ev.Signal1),
			signalString(ev.Signal2),
		}
		if err := cw.Write(row); err != nil {
			return nil, err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func signalString(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}
