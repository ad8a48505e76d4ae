package engine

import (
	"strings"
	"time"
)

// dateLayouts are tried in order; the first that parses wins. Month and day
// accept one or two digits, so both 2025-01-05 and 2025-1-5 parse.
var dateLayouts = []string{"2006-1-2", "2006/1/2", "2006.1.2"}

// WithinWindow reports whether date falls on or after the calendar day
// that is days before now. Dates that match none of the layouts are kept:
// a missing or odd date is not a reason to drop a result, liveness decides
// later.
func WithinWindow(date string, days int, now time.Time) bool {
	date = strings.TrimSpace(date)
	for _, layout := range dateLayouts {
		t, err := time.ParseInLocation(layout, date, now.Location())
		if err != nil {
			continue
		}
		y, m, d := now.AddDate(0, 0, -days).Date()
		cutoff := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
		return !t.Before(cutoff)
	}
	return true
}
