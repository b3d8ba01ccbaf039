package attendance

import (
	"reflect"
	"testing"
	"time"
)

func rec(code, date string) AttendanceRecord {
	return AttendanceRecord{EmployeeID: code, Date: day(date), Valid: true}
}

func TestParseMonth(t *testing.T) {
	cases := []struct {
		in  string
		ok  bool
		out Month
	}{
		{"2025-09", true, Month{2025, time.September}},
		{"2024-02", true, Month{2024, time.February}},
		{"2025-13", false, Month{}},
		{"2025-9", false, Month{}},
		{"Sep-2025", false, Month{}},
	}

	for _, c := range cases {
		m, err := ParseMonth(c.in)
		if c.ok && err != nil {
			t.Error("unexpected failure:", c.in, err)
		} else if !c.ok && err == nil {
			t.Error("unexpected success:", c.in)
		} else if m != c.out {
			t.Errorf("unexpected value %v != %v for %v", m, c.out, c.in)
		}
	}
}

func TestMonthDays(t *testing.T) {
	cases := []struct {
		month Month
		days  int
	}{
		{Month{2024, time.February}, 29},
		{Month{2025, time.February}, 28},
		{Month{1900, time.February}, 28},
		{Month{2000, time.February}, 29},
		{Month{2025, time.September}, 30},
		{Month{2025, time.December}, 31},
	}

	for _, c := range cases {
		days := c.month.Days()
		if len(days) != c.days {
			t.Errorf("%v has %d days, expected %d", c.month, len(days), c.days)
			continue
		}
		for i, d := range days {
			if d.Day() != i+1 || MonthOf(d) != c.month {
				t.Errorf("%v day %d is %v", c.month, i, d)
			}
		}
	}
}

func TestMonthSheetName(t *testing.T) {
	if name := (Month{2025, time.September}).SheetName(); name != "Sep-2025" {
		t.Errorf("sheet name %q", name)
	}
	if s := (Month{2025, time.March}).String(); s != "2025-03" {
		t.Errorf("month key %q", s)
	}
}

func TestBuildPresence(t *testing.T) {
	records := []AttendanceRecord{
		rec("E1", "2025-10-01"),
		rec("E1", "2025-09-03"),
		rec(" E1 ", "2025-09-03"),
		rec("E2", "2024-12-31"),
		{EmployeeID: "E3"},
	}

	present, months := BuildPresence(records, nil)
	expected := []Month{{2024, time.December}, {2025, time.September}, {2025, time.October}}
	if !reflect.DeepEqual(months, expected) {
		t.Errorf("months %v, expected %v", months, expected)
	}
	if len(present) != 3 {
		t.Errorf("presence set has %d entries, expected 3", len(present))
	}
	if !present.Has("E1", day("2025-09-03")) {
		t.Error("E1 missing on 2025-09-03")
	}

	filter := Month{2025, time.September}
	present, months = BuildPresence(records, &filter)
	if !reflect.DeepEqual(months, []Month{filter}) {
		t.Errorf("filtered months %v", months)
	}
	if present.Has("E1", day("2025-10-01")) || present.Has("E2", day("2024-12-31")) {
		t.Error("filtered presence set contains other months")
	}
}

func TestBuildSheets(t *testing.T) {
	roster := []RosterEntry{{Code: "E1", Name: "Alice"}, {Code: "E2", Name: "Bob"}}
	records := []AttendanceRecord{
		rec("E1", "2025-09-17"),
		rec("E1", "2025-09-03"),
		rec("E1", "2025-09-03"),
		rec("X9", "2025-09-05"),
	}

	sheets := BuildSheets(roster, records, nil)
	if len(sheets) != 1 {
		t.Fatalf("got %d sheets, expected 1", len(sheets))
	}
	sheet := sheets[0]
	if sheet.Name != "Sep-2025" {
		t.Errorf("sheet name %q", sheet.Name)
	}
	if len(sheet.Days) != 30 {
		t.Errorf("sheet has %d day columns", len(sheet.Days))
	}
	if len(sheet.Rows) != len(roster) {
		t.Fatalf("sheet has %d rows, expected %d", len(sheet.Rows), len(roster))
	}

	for i, cell := range sheet.Rows[0].Cells {
		want := ""
		if i+1 == 3 || i+1 == 17 {
			want = Present
		}
		if cell != want {
			t.Errorf("E1 day %d: %q, expected %q", i+1, cell, want)
		}
	}
	for i, cell := range sheet.Rows[1].Cells {
		if cell != "" {
			t.Errorf("E2 day %d: %q, expected blank", i+1, cell)
		}
	}
	for _, row := range sheet.Rows {
		if row.Entry.Code == "X9" {
			t.Error("unrostered employee in sheet")
		}
	}
}

func TestBuildSheetsPresenceMatchesRecords(t *testing.T) {
	roster := []RosterEntry{{Code: "13", Name: "A"}, {Code: "14", Name: "B"}, {Code: "15", Name: "C"}}
	records := []AttendanceRecord{
		rec("13.0", "2024-02-29"),
		rec("14", "2024-02-01"),
		rec("14", "2024-03-01"),
		rec("15", "2024-03-31"),
	}

	have := make(map[[2]string]bool)
	for _, r := range records {
		have[[2]string{NormalizeCode(r.EmployeeID), r.Date.Format(DateFormat)}] = true
	}

	sheets := BuildSheets(roster, records, nil)
	if len(sheets) != 2 || sheets[0].Name != "Feb-2024" || sheets[1].Name != "Mar-2024" {
		t.Fatalf("unexpected sheets %v", sheets)
	}
	if len(sheets[0].Days) != 29 || len(sheets[1].Days) != 31 {
		t.Errorf("day counts %d, %d", len(sheets[0].Days), len(sheets[1].Days))
	}
	for _, sheet := range sheets {
		if len(sheet.Rows) != len(roster) {
			t.Errorf("%s has %d rows", sheet.Name, len(sheet.Rows))
		}
		for _, row := range sheet.Rows {
			for j, d := range sheet.Days {
				want := have[[2]string{row.Entry.Code, d.Format(DateFormat)}]
				if (row.Cells[j] == Present) != want {
					t.Errorf("%s %s %s: %q", sheet.Name, row.Entry.Code, d.Format(DateFormat), row.Cells[j])
				}
			}
		}
	}
}

func TestBuildSheetsNoData(t *testing.T) {
	roster := []RosterEntry{{Code: "E1", Name: "Alice"}, {Code: "E2", Name: "Bob"}}
	filter := Month{2025, time.December}

	for _, records := range [][]AttendanceRecord{
		nil,
		{rec("E1", "2025-09-03")},
		{{EmployeeID: "E1"}},
	} {
		sheets := BuildSheets(roster, records, &filter)
		if len(sheets) != 1 || sheets[0].Name != NoDataSheet {
			t.Errorf("%v: expected a single NoData sheet, got %v", records, sheets)
			continue
		}
		if len(sheets[0].Days) != 0 || len(sheets[0].Rows) != len(roster) {
			t.Errorf("NoData sheet has %d days and %d rows", len(sheets[0].Days), len(sheets[0].Rows))
		}
	}
}

func TestUnrostered(t *testing.T) {
	roster := []RosterEntry{{Code: "E1", Name: "Alice"}, {Code: "13", Name: "Dan"}}
	records := []AttendanceRecord{
		rec("E1", "2025-09-03"),
		rec("X9", "2025-09-03"),
		rec("13.0", "2025-09-03"),
		rec("A2", "2025-09-04"),
		rec("X9", "2025-09-05"),
		{EmployeeID: "Z1"},
	}

	res := Unrostered(roster, records)
	if !reflect.DeepEqual(res, []string{"A2", "X9"}) {
		t.Errorf("unrostered %v", res)
	}
}
