package attendance

import (
	"fmt"
	"sort"
	"time"
)

const (
	Present = "P"

	NoDataSheet = "NoData"
)

type Month struct {
	Year  int
	Month time.Month
}

// ParseMonth parses a YYYY-MM month key.
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Month{}, fmt.Errorf("invalid month %q, expected YYYY-MM", s)
	}
	return Month{t.Year(), t.Month()}, nil
}

func MonthOf(t time.Time) Month {
	return Month{t.Year(), t.Month()}
}

func (m Month) First() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

func (m Month) String() string {
	return m.First().Format("2006-01")
}

// SheetName renders the month as e.g. "Sep-2025".
func (m Month) SheetName() string {
	return m.First().Format("Jan-2006")
}

func (m Month) Before(o Month) bool {
	if m.Year != o.Year {
		return m.Year < o.Year
	}
	return m.Month < o.Month
}

// Days returns every calendar day of the month in order.
func (m Month) Days() []time.Time {
	first := m.First()
	n := first.AddDate(0, 1, -1).Day()
	days := make([]time.Time, n)
	for i := range days {
		days[i] = first.AddDate(0, 0, i)
	}
	return days
}

type presenceKey struct {
	code string
	date string
}

// PresenceSet holds the (employee code, date) pairs with at least one
// attendance record.
type PresenceSet map[presenceKey]struct{}

func (s PresenceSet) Add(code string, date time.Time) {
	s[presenceKey{NormalizeCode(code), date.Format(DateFormat)}] = struct{}{}
}

func (s PresenceSet) Has(code string, date time.Time) bool {
	_, ok := s[presenceKey{NormalizeCode(code), date.Format(DateFormat)}]
	return ok
}

// BuildPresence drops records without a valid date, restricts the rest to
// filter when given, and returns the presence set together with the
// distinct months present in chronological order.
func BuildPresence(records []AttendanceRecord, filter *Month) (PresenceSet, []Month) {
	present := make(PresenceSet)
	seen := make(map[Month]struct{})
	var months []Month

	for _, rec := range records {
		if !rec.Valid {
			continue
		}
		month := MonthOf(rec.Date)
		if filter != nil && month != *filter {
			continue
		}
		present.Add(rec.EmployeeID, rec.Date)
		if _, ok := seen[month]; !ok {
			seen[month] = struct{}{}
			months = append(months, month)
		}
	}

	sort.Slice(months, func(i, j int) bool {
		return months[i].Before(months[j])
	})
	return present, months
}

type MatrixRow struct {
	Entry RosterEntry
	Cells []string
}

// MonthSheet is one output sheet. The NoData fallback sheet has a zero
// Month and no Days.
type MonthSheet struct {
	Name  string
	Month Month
	Days  []time.Time
	Rows  []MatrixRow
}

// BuildSheets renders one presence matrix per month found in records. Rows
// come from the roster alone; employees missing from the roster never
// appear. With no months at all a single roster-only NoData sheet is
// returned.
func BuildSheets(roster []RosterEntry, records []AttendanceRecord, filter *Month) []MonthSheet {
	present, months := BuildPresence(records, filter)

	if len(months) == 0 {
		rows := make([]MatrixRow, len(roster))
		for i, entry := range roster {
			rows[i] = MatrixRow{Entry: entry}
		}
		return []MonthSheet{{Name: NoDataSheet, Rows: rows}}
	}

	sheets := make([]MonthSheet, 0, len(months))
	for _, month := range months {
		sheets = append(sheets, buildSheet(roster, month, present))
	}
	return sheets
}

func buildSheet(roster []RosterEntry, month Month, present PresenceSet) MonthSheet {
	days := month.Days()
	rows := make([]MatrixRow, len(roster))
	for i, entry := range roster {
		cells := make([]string, len(days))
		for j, day := range days {
			if present.Has(entry.Code, day) {
				cells[j] = Present
			}
		}
		rows[i] = MatrixRow{Entry: entry, Cells: cells}
	}
	return MonthSheet{
		Name:  month.SheetName(),
		Month: month,
		Days:  days,
		Rows:  rows,
	}
}

// Unrostered returns the sorted distinct employee codes that have valid
// attendance records but no roster entry. They are left out of every sheet.
func Unrostered(roster []RosterEntry, records []AttendanceRecord) []string {
	known := make(map[string]struct{}, len(roster))
	for _, entry := range roster {
		known[NormalizeCode(entry.Code)] = struct{}{}
	}

	seen := make(map[string]struct{})
	var codes []string
	for _, rec := range records {
		if !rec.Valid {
			continue
		}
		code := NormalizeCode(rec.EmployeeID)
		if _, ok := known[code]; ok {
			continue
		}
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
