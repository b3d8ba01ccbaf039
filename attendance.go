package attendance // import "kastelo.dev/attendance"

import (
	"time"
)

const DateFormat = "2006-01-02"

type ScanEvent struct {
	EmployeeID int64
	Timestamp  time.Time
	Signal1    *int
	Signal2    *int
}

// Date returns the calendar date of the scan, at midnight.
func (e ScanEvent) Date() time.Time {
	y, m, d := e.Timestamp.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, e.Timestamp.Location())
}

// TimeOfDay returns the time elapsed since midnight on the scan's date.
func (e ScanEvent) TimeOfDay() time.Duration {
	return e.Timestamp.Sub(e.Date())
}

type AttendanceRecord struct {
	EmployeeID string
	Date       time.Time
	Valid      bool
}

type RosterEntry struct {
	Code string
	Name string
}

// Table is a header row plus data rows, as read from the first sheet of a
// workbook or a CSV file. Rows may be shorter than the header.
type Table struct {
	Header []string
	Rows   [][]string
}
