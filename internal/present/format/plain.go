package format

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/mithrel/fairgen/pkg/api"
)

// TSV columns
var (
	vendorHeader = "slug\tname\tdates\tcontacts\n"
	dateHeader   = "slug\tdisplay\tvendors\tabsent\n"
)

func esc(field string) string {
	field = strings.ReplaceAll(field, "\t", "\\t")
	field = strings.ReplaceAll(field, "\n", "\\n")
	return field
}

// joinComma joins without spaces.
func joinComma(parts []string) string {
	return strings.Join(parts, ",")
}

func vendorLine(v api.Vendor) string {
	dates := make([]string, len(v.Dates))
	for i, d := range v.Dates {
		dates[i] = d.Slug
	}
	contacts := v.Contacts()
	labels := make([]string, len(contacts))
	for i, c := range contacts {
		labels[i] = c.Label
	}
	return fmt.Sprintf("%s\t%s\t%s\t%s\n",
		esc(v.Slug), esc(v.Name), esc(joinComma(dates)), esc(joinComma(labels)))
}

func dateLine(d api.Date) string {
	return fmt.Sprintf("%s\t%s\t%d\t%d\n",
		esc(d.Slug), esc(strings.TrimSpace(d.Display)), len(d.Vendors), d.AbsentCount())
}

func WritePlainVendors(w io.Writer, vendors []api.Vendor, headers bool) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if headers {
		_, _ = io.WriteString(tw, vendorHeader)
	}
	for _, v := range vendors {
		_, _ = io.WriteString(tw, vendorLine(v))
	}
	return tw.Flush()
}

func WritePlainDates(w io.Writer, dates []api.Date, headers bool) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if headers {
		_, _ = io.WriteString(tw, dateHeader)
	}
	for _, d := range dates {
		_, _ = io.WriteString(tw, dateLine(d))
	}
	return tw.Flush()
}
