package attendance

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/cases"
)

const (
	FieldDate       = "date"
	FieldEmployeeID = "employee_id"
)

// A resolver matches a folded header name. Resolvers for a field are tried
// in order; the first one that matches any column wins.
type resolver func(name string) bool

func exactly(alias string) resolver {
	return func(name string) bool { return name == alias }
}

var attendanceColumns = map[string][]resolver{
	// A timestamp column is reduced to its date by ParseDate.
	FieldDate: {
		exactly("date"),
		exactly("timestamp"),
	},
	FieldEmployeeID: {
		exactly("employee_id"),
		func(name string) bool {
			return strings.Contains(name, "emp") && strings.Contains(name, "id")
		},
	},
}

func foldHeader(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}

// resolveColumn returns the index of the column satisfying field.
func resolveColumn(input string, header []string, field string) (int, error) {
	folded := make([]string, len(header))
	for i, h := range header {
		folded[i] = foldHeader(h)
	}
	for _, match := range attendanceColumns[field] {
		for i, name := range folded {
			if match(name) {
				return i, nil
			}
		}
	}
	return -1, &SchemaError{Input: input, Field: field, Columns: folded}
}

// NormalizeAttendance maps an arbitrary attendance table onto
// AttendanceRecords. Rows whose date cannot be parsed are kept with Valid
// unset.
func NormalizeAttendance(t *Table) ([]AttendanceRecord, error) {
	dateCol, err := resolveColumn("attendance", t.Header, FieldDate)
	if err != nil {
		return nil, err
	}
	idCol, err := resolveColumn("attendance", t.Header, FieldEmployeeID)
	if err != nil {
		return nil, err
	}

	records := make([]AttendanceRecord, 0, len(t.Rows))
	for _, row := range t.Rows {
		date, ok := ParseDate(cellAt(row, dateCol))
		records = append(records, AttendanceRecord{
			EmployeeID: NormalizeCode(cellAt(row, idCol)),
			Date:       date,
			Valid:      ok,
		})
	}
	return records, nil
}

// NormalizeRoster takes the first column as the employee code and the second
// as the name, whatever their headers say.
func NormalizeRoster(t *Table) ([]RosterEntry, error) {
	if len(t.Header) < 2 {
		cols := make([]string, len(t.Header))
		for i, h := range t.Header {
			cols[i] = foldHeader(h)
		}
		return nil, &SchemaError{Input: "names", Field: "employee code, employee name", Columns: cols}
	}

	type pair struct{ code, name string }
	seen := make(map[pair]struct{})
	var roster []RosterEntry
	for _, row := range t.Rows {
		code := NormalizeCode(cellAt(row, 0))
		name := strings.TrimSpace(cellAt(row, 1))
		if code == "" && name == "" {
			continue
		}
		key := pair{code, name}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		roster = append(roster, RosterEntry{Code: code, Name: name})
	}
	return roster, nil
}

// NormalizeCode trims s and renders integral decimals ("13.0") as integers,
// so codes read from numeric and text cells compare equal.
func NormalizeCode(s string) string {
	s = strings.TrimSpace(s)
	if !strings.Contains(s, ".") {
		return s
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) || math.Abs(f) >= 1<<53 {
		return s
	}
	return strconv.FormatInt(int64(f), 10)
}

var dateLayouts = []string{
	DateFormat,
	timestampFormat,
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006/01/02",
	"2006/01/02 15:04:05",
	"20060102",
	"1/2/2006",
	"1/2/2006 15:04:05",
	"1/2/2006 15:04",
	"01-02-06",
	"1/2/06 15:04",
	"2006",
}

// Excel serial day numbers accepted by ParseDate: 1900-01-01 to 9999-12-31.
const (
	minSerial = 1
	maxSerial = 2958465
)

// ParseDate parses s as a date or date-time and returns the calendar date
// at midnight UTC. Excel serial day numbers are accepted as a last resort,
// within the range Excel itself can represent.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return midnight(t), true
		}
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && f >= minSerial && f < maxSerial+1 {
		if t, err := excelize.ExcelDateToTime(f, false); err == nil {
			return midnight(t), true
		}
	}
	return time.Time{}, false
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func cellAt(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return row[col]
}
