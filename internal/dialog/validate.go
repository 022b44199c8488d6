package dialog

import (
	"regexp"
	"strings"
	"time"

	"github.com/asccclass/jadualbot/internal/schedule"
)

// Operator-facing layouts, shared with the adapters.
const (
	DateFormat = schedule.DateLayout
	TimeFormat = schedule.TimeLayout
)

var timePattern = regexp.MustCompile(`^\d{2}:\d{2}$`)

// DateVerdict classifies a date input so the caller can pick the exact
// re-prompt message for the failure reason.
type DateVerdict int

const (
	DateOK DateVerdict = iota
	DateBadFormat
	DatePast
	DateWeekend
)

// ParseDate parses DD/MM/YYYY, accepting unpadded day and month, and
// returns the zero-padded normalized string.
func ParseDate(s string) (string, bool) {
	d, err := time.Parse("2/1/2006", strings.TrimSpace(s))
	if err != nil {
		return "", false
	}
	return d.Format(DateFormat), true
}

// CheckWorkDate validates an entry-flow date: parseable, not strictly before
// today, and not on a Saturday or Sunday. today carries the configured
// timezone's current day.
func CheckWorkDate(s string, today time.Time) (string, DateVerdict) {
	normalized, ok := ParseDate(s)
	if !ok {
		return "", DateBadFormat
	}
	d, _ := time.Parse(DateFormat, normalized)

	y, m, day := today.Date()
	todayMidnight := time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
	if d.Before(todayMidnight) {
		return "", DatePast
	}
	if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return "", DateWeekend
	}
	return normalized, DateOK
}

// ParseTime accepts exactly two digits, a colon and two digits, with valid
// 24-hour values. Returns the normalized HH:MM string.
// TODO: add an end-after-start ordering check in the meeting flow; end
// earlier than start is currently accepted as-is.
func ParseTime(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if !timePattern.MatchString(s) {
		return "", false
	}
	t, err := time.Parse(TimeFormat, s)
	if err != nil {
		return "", false
	}
	return t.Format(TimeFormat), true
}
