package roster

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var dateHeaderRe = regexp.MustCompile(`^([A-Za-z]{3})-(\d{1,2})$`)

var monthNames = map[string]string{
	"jan": "january", "feb": "february", "mar": "march", "apr": "april",
	"may": "may", "jun": "june", "jul": "july", "aug": "august",
	"sep": "september", "oct": "october", "nov": "november", "dec": "december",
}

// dateColumn is a header recognized as one fair date.
type dateColumn struct {
	Header  string
	Slug    string
	Display string
}

// parseDateHeader classifies a header. It returns ok=false for headers that
// are not date columns at all, and an error for headers shaped like a date
// whose month abbreviation is unknown.
func parseDateHeader(header string, year int) (dateColumn, bool, error) {
	m := dateHeaderRe.FindStringSubmatch(strings.TrimSpace(header))
	if m == nil {
		return dateColumn{}, false, nil
	}
	mon, ok := monthNames[strings.ToLower(m[1])]
	if !ok {
		return dateColumn{}, false, &ValidationError{Column: header, Msg: fmt.Sprintf("unrecognized month %q", m[1])}
	}
	day, err := strconv.Atoi(m[2])
	if err != nil {
		return dateColumn{}, false, nil
	}
	d2 := fmt.Sprintf("%02d", day)
	return dateColumn{
		Header:  header,
		Slug:    fmt.Sprintf("%s-%s-%d", mon, d2, year),
		Display: fmt.Sprintf("%s %s, %d", capitalize(mon), d2, year),
	}, true, nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// DateSlug derives the slug and display string for a "Mon-D" header.
func DateSlug(header string, year int) (slug, display string, ok bool) {
	c, ok, err := parseDateHeader(header, year)
	if err != nil || !ok {
		return "", "", false
	}
	return c.Slug, c.Display, true
}

var truthy = map[string]struct{}{"X": {}, "Y": {}, "YES": {}, "TRUE": {}, "1": {}}

// IsTruthy reports whether an attendance cell marks the vendor as present.
func IsTruthy(v string) bool {
	_, ok := truthy[strings.ToUpper(strings.TrimSpace(v))]
	return ok
}
