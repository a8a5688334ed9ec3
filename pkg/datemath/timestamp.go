package datemath

import (
	"errors"
	"strings"
	"time"
)

// ErrInvalidTimestamp is returned by ParseTimestamp for unrecognized input.
var ErrInvalidTimestamp = errors.New("timestamp must be RFC3339, YYYY-MM-DDTHH:MM:SS or YYYY-MM-DD")

var localLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTimestamp reads an absolute timestamp. Values with an offset keep it;
// zone-less values are read in the parser's location, date-only ones at midnight.
func (p *Parser) ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, p.location); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidTimestamp
}
