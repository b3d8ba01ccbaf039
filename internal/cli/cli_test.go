package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"kastelo.dev/attendance"
)

func TestCheckInput(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "raw.log")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := CheckInput(file); err != nil {
		t.Errorf("existing file: %v", err)
	}

	for _, path := range []string{dir, filepath.Join(dir, "missing.log")} {
		err := CheckInput(path)
		var nf *attendance.InputNotFoundError
		if !errors.As(err, &nf) {
			t.Errorf("%s: expected InputNotFoundError, got %v", path, err)
		}
	}
}

func TestExitCode(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{&attendance.InputNotFoundError{Path: "x"}, ExitInputNotFound},
		{fmt.Errorf("reading: %w", &attendance.InputNotFoundError{Path: "x"}), ExitInputNotFound},
		{&attendance.NoRecordsFoundError{Pattern: "attendance/v1"}, ExitFailure},
		{&attendance.SchemaError{Field: "date"}, ExitFailure},
		{errors.New("boom"), ExitFailure},
	}

	for _, c := range cases {
		if code := ExitCode(c.err); code != c.code {
			t.Errorf("ExitCode(%v) = %d, expected %d", c.err, code, c.code)
		}
	}
}
