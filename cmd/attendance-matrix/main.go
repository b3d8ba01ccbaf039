package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kingpin"
	"kastelo.dev/attendance"
	"kastelo.dev/attendance/excel"
	"kastelo.dev/attendance/internal/cli"
)

func main() {
	cli.LoadEnv()

	attPath := kingpin.Flag("attendance", "Attendance workbook or CSV with employee_id and date/timestamp columns").Required().String()
	namesPath := kingpin.Flag("names", "Roster workbook or CSV (first column code, second column name)").Required().String()
	output := kingpin.Flag("output", "Output workbook").Default("Attendance_By_Month.xlsx").Envar("ATTENDANCE_OUTPUT").String()
	month := kingpin.Flag("month", "Restrict to a single month, YYYY-MM").String()
	engine := kingpin.Flag("engine", "Spreadsheet writer backend name (accepted for compatibility)").Default("xlsxwriter").String()
	verbose := kingpin.Flag("verbose", "Debug logging").Short('v').Bool()
	kingpin.Parse()

	cli.SetupLogging(*verbose)
	slog.Debug("Writer backend", "engine", *engine)

	var filter *attendance.Month
	if *month != "" {
		m, err := attendance.ParseMonth(*month)
		if err != nil {
			cli.Fatal("Error parsing month filter", err)
		}
		filter = &m
	}

	for _, path := range []string{*attPath, *namesPath} {
		if err := cli.CheckInput(path); err != nil {
			cli.Fatal("Missing input", err)
		}
	}

	records, err := loadAttendance(*attPath)
	if err != nil {
		cli.Fatal("Error reading attendance", err)
	}
	roster, err := loadRoster(*namesPath)
	if err != nil {
		cli.Fatal("Error reading names", err)
	}

	if missing := attendance.Unrostered(roster, records); len(missing) > 0 {
		slog.Warn("Attendance for employees not in roster is left out", "codes", missing)
	}

	sheets := attendance.BuildSheets(roster, records, filter)
	bs, err := excel.MatrixXLSX(sheets)
	if err != nil {
		cli.Fatal("Error creating Excel file", err)
	}
	if err := os.WriteFile(*output, bs, 0o644); err != nil {
		cli.Fatal("Error writing Excel file", err)
	}

	if len(sheets) == 1 && sheets[0].Name == attendance.NoDataSheet {
		fmt.Printf("No data found. Wrote roster-only workbook: %s\n", *output)
		return
	}
	fmt.Printf("Done. Created %d sheet(s): %s\n", len(sheets), *output)
}

func loadAttendance(path string) ([]attendance.AttendanceRecord, error) {
	t, err := excel.ReadTableFile(path)
	if err != nil {
		return nil, err
	}
	return attendance.NormalizeAttendance(t)
}

func loadRoster(path string) ([]attendance.RosterEntry, error) {
	t, err := excel.ReadTableFile(path)
	if err != nil {
		return nil, err
	}
	return attendance.NormalizeRoster(t)
}
