package attendance

import (
	"strings"
	"testing"
)

func TestDiffTables(t *testing.T) {
	before := &Table{
		Header: []string{"employee_id", "timestamp"},
		Rows: [][]string{
			{"13", "2025-09-01 07:18:05"},
			{"13", "2025-09-01 07:18:32"},
		},
	}
	after := &Table{
		Header: []string{"employee_id", "timestamp"},
		Rows: [][]string{
			{"13", "2025-09-01 07:18:05"},
			{"21", "2025-09-02 17:01:59"},
		},
	}

	if patch := DiffTables("events", before, before); patch != "" {
		t.Errorf("expected no diff, got\n%s", patch)
	}

	patch := DiffTables("events", before, after)
	if !strings.Contains(patch, "-13\t2025-09-01 07:18:32") {
		t.Errorf("removed row missing from diff:\n%s", patch)
	}
	if !strings.Contains(patch, "+21\t2025-09-02 17:01:59") {
		t.Errorf("added row missing from diff:\n%s", patch)
	}
}
