package attendance

import (
	"fmt"
	"strings"
)

type NoRecordsFoundError struct {
	Pattern string
}

func (e *NoRecordsFoundError) Error() string {
	return fmt.Sprintf("no attendance records matched pattern %s; check the input format", e.Pattern)
}

// SchemaError is returned when an input table lacks a column that cannot be
// resolved by any of the accepted aliases.
type SchemaError struct {
	Input   string
	Field   string
	Columns []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s: no column for %q (have %s)", e.Input, e.Field, strings.Join(e.Columns, ", "))
}

type InputNotFoundError struct {
	Path string
}

func (e *InputNotFoundError) Error() string {
	return fmt.Sprintf("input file not found: %s", e.Path)
}
