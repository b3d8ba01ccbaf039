package attendance

import (
	"strings"

	diffpatch "github.com/sourcegraph/go-diff-patch"
)

// DiffTables returns a unified diff of two tables rendered one row per
// line with tab separated cells, or the empty string when they are equal.
func DiffTables(name string, before, after *Table) string {
	b, a := renderTable(before), renderTable(after)
	if a == b {
		return ""
	}
	return diffpatch.GeneratePatch(name, b, a)
}

func renderTable(t *Table) string {
	if t == nil {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(strings.Join(t.Header, "\t"))
	sb.WriteByte('\n')
	for _, row := range t.Rows {
		sb.WriteString(strings.Join(row, "\t"))
		sb.WriteByte('\n')
	}
	return sb.String()
}
