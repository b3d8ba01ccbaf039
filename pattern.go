package attendance

import (
	"fmt"
	"regexp"
	"sort"
)

// Pattern is a named, versioned scan-event grammar. Every pattern captures
// four groups in order: employee id, timestamp, signal 1, signal 2.
type Pattern struct {
	Name    string
	Version int
	Grammar string
	re      *regexp.Regexp
}

func (p *Pattern) String() string {
	return p.Name
}

// AttendanceV1 matches lines like
//
//	<Attendance>: 13 : 2025-09-01 07:18:32 (1,  0)
var AttendanceV1 = &Pattern{
	Name:    "attendance/v1",
	Version: 1,
	Grammar: `[<]* "Attendance" [>]* ":" id ":" date ws time "(" signal "," signal ")" ["." digits]`,
	re:      regexp.MustCompile(`(?m)[<]*Attendance[>]*:\s*(\d+)\s*:\s*` +
		`([0-9]{4}-[0-9]{2}-[0-9]{2}\s+[0-9]{2}:[0-9]{2}:[0-9]{2})\s*` +
		`\(\s*([0-9]+)\s*,\s*([0-9]+)\s*\)\.?\d*`),
}

// Patterns holds every known log format. New formats are added here under
// a new name; existing entries are never edited.
var Patterns = map[string]*Pattern{
	AttendanceV1.Name: AttendanceV1,
}

func LookupPattern(name string) (*Pattern, error) {
	p, ok := Patterns[name]
	if !ok {
		return nil, fmt.Errorf("unknown pattern %q (known: %v)", name, PatternNames())
	}
	return p, nil
}

func PatternNames() []string {
	names := make([]string, 0, len(Patterns))
	for name := range Patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
