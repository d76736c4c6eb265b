package pkg

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

var dateTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
}

// ParseDateOrDateTime parses an ISO date or datetime. Values without an offset
// are taken in loc. dateOnly reports whether s carried no time part.
func ParseDateOrDateTime(s string, loc *time.Location) (t time.Time, dateOnly bool, err error) {
	s = strings.TrimSpace(s)
	if d, err := time.ParseInLocation(DateLayout, s, loc); err == nil {
		return d, true, nil
	}
	for _, layout := range dateTimeLayouts {
		if dt, err := time.ParseInLocation(layout, s, loc); err == nil {
			return dt, false, nil
		}
	}
	return time.Time{}, false, fmt.Errorf("invalid date or datetime: %q", s)
}

// ParseDate parses a YYYY-MM-DD date at midnight in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	d, err := time.ParseInLocation(DateLayout, strings.TrimSpace(s), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return d, nil
}

// ParseYear parses a positive calendar year.
func ParseYear(s string) (int, error) {
	year, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || year <= 0 || year > 9999 {
		return 0, fmt.Errorf("invalid year: %q", s)
	}
	return year, nil
}

// YearRange returns [Jan 1 of year, Jan 1 of the next year) in loc.
func YearRange(year int, loc *time.Location) (from, before time.Time) {
	from = time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
	return from, from.AddDate(1, 0, 0)
}

// InclusiveEnd turns an inclusive upper bound into an exclusive one: a date
// covers its whole day, a datetime covers its own microsecond.
func InclusiveEnd(t time.Time, dateOnly bool) time.Time {
	if dateOnly {
		return t.AddDate(0, 0, 1)
	}
	return t.Add(time.Microsecond)
}
