package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kingpin"
	"kastelo.dev/attendance"
	"kastelo.dev/attendance/excel"
	"kastelo.dev/attendance/internal/cli"
)

func main() {
	cli.LoadEnv()

	before := kingpin.Arg("before", "Earlier event workbook or CSV").Required().String()
	after := kingpin.Arg("after", "Later event workbook or CSV").Required().String()
	kingpin.Parse()

	cli.SetupLogging(false)

	var tables [2]*attendance.Table
	for i, path := range []string{*before, *after} {
		if err := cli.CheckInput(path); err != nil {
			cli.Fatal("Missing input", err)
		}
		t, err := excel.ReadTableFile(path)
		if err != nil {
			cli.Fatal("Error reading table", err)
		}
		tables[i] = t
	}

	patch := attendance.DiffTables(filepath.Base(*after), tables[0], tables[1])
	if patch == "" {
		return
	}
	fmt.Print(patch)
	os.Exit(1)
}
