package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alecthomas/kingpin"
	"kastelo.dev/attendance"
	"kastelo.dev/attendance/excel"
	"kastelo.dev/attendance/internal/cli"
	"kastelo.dev/attendance/postgres"
)

func main() {
	cli.LoadEnv()

	input := kingpin.Arg("input_raw_file", "Path to raw attendance file").Required().String()
	output := kingpin.Arg("output_xlsx", "Output .xlsx path (.csv writes CSV)").Required().String()
	dedupe := kingpin.Flag("dedupe-per-minute", "Keep only the earliest scan per employee per minute").Bool()
	charset := kingpin.Flag("encoding", "Text encoding of the input file").Default("utf-8").Envar("ATTENDANCE_ENCODING").String()
	pattern := kingpin.Flag("pattern", fmt.Sprintf("Log line pattern %v", attendance.PatternNames())).Default(attendance.AttendanceV1.Name).String()
	dsn := kingpin.Flag("postgres", "Also replace the events table in this PostgreSQL database").Envar("ATTENDANCE_POSTGRES_DSN").String()
	table := kingpin.Flag("table", "PostgreSQL table for --postgres").Default(postgres.DefaultTable).String()
	verbose := kingpin.Flag("verbose", "Debug logging").Short('v').Bool()
	kingpin.Parse()

	cli.SetupLogging(*verbose)

	inPath, err := filepath.Abs(*input)
	if err != nil {
		cli.Fatal("Error resolving input path", err)
	}
	outPath, err := filepath.Abs(*output)
	if err != nil {
		cli.Fatal("Error resolving output path", err)
	}
	if err := cli.CheckInput(inPath); err != nil {
		fmt.Println(err)
		os.Exit(cli.ExitCode(err))
	}

	pat, err := attendance.LookupPattern(*pattern)
	if err != nil {
		cli.Fatal("Error selecting pattern", err)
	}

	events, err := parseFile(inPath, *charset, pat, *dedupe)
	if err != nil {
		cli.Fatal("Error parsing attendance log", err)
	}

	if err := writeOutput(outPath, events); err != nil {
		cli.Fatal("Error writing output file", err)
	}
	fmt.Printf("Done. Wrote: %s\n", outPath)

	// The output file stands on its own; a failed store does not remove it.
	if *dsn != "" {
		if err := storeEvents(*dsn, *table, events); err != nil {
			slog.Error("Output written; storing events failed", "output", outPath, "table", *table, "error", err)
			os.Exit(cli.ExitFailure)
		}
		slog.Info("Stored events", "table", *table, "rows", len(events))
	}
}

// writeOutput renders events as CSV when path ends in .csv and as a
// workbook otherwise.
func writeOutput(path string, events []attendance.ScanEvent) error {
	render := excel.EventsXLSX
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		render = excel.EventsCSV
	}
	bs, err := render(events)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, bs, 0o644)
}

func parseFile(path, charset string, pat *attendance.Pattern, dedupe bool) ([]attendance.ScanEvent, error) {
	fd, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	text, err := attendance.ReadText(fd, charset)
	if err != nil {
		return nil, err
	}

	events, err := attendance.ParseText(text, pat)
	if err != nil {
		return nil, err
	}
	slog.Debug("Parsed scan events", "pattern", pat.Name, "rows", len(events))

	if dedupe {
		before := len(events)
		events = attendance.DedupePerMinute(events)
		slog.Debug("Deduplicated per minute", "before", before, "after", len(events))
	}
	return events, nil
}

func storeEvents(dsn, table string, events []attendance.ScanEvent) error {
	db, err := postgres.Open(dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	return postgres.ReplaceEvents(ctx, db, table, events)
}
