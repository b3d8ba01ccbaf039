package attendance

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const timestampFormat = "2006-01-02 15:04:05"

// ReadText reads all of r, decoding it from the named IANA encoding. Invalid
// input bytes are replaced with U+FFFD and a leading byte order mark is
// dropped.
func ReadText(r io.Reader, charset string) (string, error) {
	var enc encoding.Encoding = unicode.UTF8
	if charset != "" && !strings.EqualFold(charset, "utf-8") && !strings.EqualFold(charset, "utf8") {
		e, err := ianaindex.IANA.Encoding(charset)
		if err != nil {
			return "", fmt.Errorf("encoding %q: %w", charset, err)
		}
		if e == nil {
			return "", fmt.Errorf("encoding %q is not supported", charset)
		}
		enc = e
	}

	bs, err := io.ReadAll(transform.NewReader(r, unicode.BOMOverride(enc.NewDecoder())))
	if err != nil {
		return "", err
	}
	return string(bs), nil
}

// ParseText extracts every scan event matching p from text. Matches with an
// unparseable timestamp or an out of range employee id are skipped. The
// result is sorted by timestamp, then employee id.
func ParseText(text string, p *Pattern) ([]ScanEvent, error) {
	if p == nil {
		p = AttendanceV1
	}

	matches := p.re.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil, &NoRecordsFoundError{Pattern: p.Name}
	}

	events := make([]ScanEvent, 0, len(matches))
	for _, m := range matches {
		id, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			continue
		}
		ts, err := time.Parse(timestampFormat, strings.Join(strings.Fields(m[2]), " "))
		if err != nil {
			continue
		}
		events = append(events, ScanEvent{
			EmployeeID: id,
			Timestamp:  ts,
			Signal1:    parseSignal(m[3]),
			Signal2:    parseSignal(m[4]),
		})
	}

	sortByTime(events)
	return events, nil
}

func parseSignal(s string) *int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &v
}

func sortByTime(events []ScanEvent) {
	sort.SliceStable(events, func(i, j int) bool {
		a, b := events[i], events[j]
		if a.Timestamp.Equal(b.Timestamp) {
			return a.EmployeeID < b.EmployeeID
		}
		return a.Timestamp.Before(b.Timestamp)
	})
}
