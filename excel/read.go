package excel

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
	"kastelo.dev/attendance"
)

// ReadTable reads the first worksheet of a workbook. The first row is the
// header.
func ReadTable(r io.Reader) (*attendance.Table, error) {
	xlsx, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer xlsx.Close()

	sheets := xlsx.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	rows, err := xlsx.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}
	return toTable(rows), nil
}

// ReadCSV reads a comma separated table with a header row.
func ReadCSV(r io.Reader) (*attendance.Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	return toTable(rows), nil
}

// ReadTableFile reads path as CSV when it has a .csv extension and as a
// workbook otherwise.
func ReadTableFile(path string) (*attendance.Table, error) {
	fd, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	var t *attendance.Table
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		t, err = ReadCSV(fd)
	} else {
		t, err = ReadTable(fd)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return t, nil
}

func toTable(rows [][]string) *attendance.Table {
	if len(rows) == 0 {
		return &attendance.Table{}
	}
	return &attendance.Table{
		Header: rows[0],
		Rows:   rows[1:],
	}
}
