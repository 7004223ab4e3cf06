package util

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

var dateSlugRe = regexp.MustCompile(`^([a-z]+)-(\d{2})-(\d{4})$`)

var fullMonths = map[string]time.Month{
	"january": time.January, "february": time.February, "march": time.March,
	"april": time.April, "may": time.May, "june": time.June,
	"july": time.July, "august": time.August, "september": time.September,
	"october": time.October, "november": time.November, "december": time.December,
}

// DateKey is a chronological sort key for a date slug. Unparseable slugs
// sort after every real date.
type DateKey struct {
	Year, Month, Day int
	Valid            bool
}

// KeyForDateSlug builds the sort key without normalizing the day.
func KeyForDateSlug(slug string) DateKey {
	m := dateSlugRe.FindStringSubmatch(slug)
	if m == nil {
		return DateKey{Year: 9999, Month: 99, Day: 99}
	}
	mon, ok := fullMonths[m[1]]
	if !ok {
		return DateKey{Year: 9999, Month: 99, Day: 99}
	}
	day, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])
	return DateKey{Year: year, Month: int(mon), Day: day, Valid: true}
}

// Less orders keys chronologically.
func (k DateKey) Less(o DateKey) bool {
	if k.Year != o.Year {
		return k.Year < o.Year
	}
	if k.Month != o.Month {
		return k.Month < o.Month
	}
	return k.Day < o.Day
}

// ISO renders the key as YYYY-MM-DD.
func (k DateKey) ISO() string {
	return fmt.Sprintf("%04d-%02d-%02d", k.Year, k.Month, k.Day)
}
