package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/mithrel/fairgen/pkg/api"
)

// DefaultStyle is the glamour style used for pretty output.
const DefaultStyle = "dracula"

// WritePrettyVendor renders a single vendor with markdown formatting using glamour.
func WritePrettyVendor(w io.Writer, v api.Vendor, style string) error {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n> **Slug:** %s | **Dates:** %d\n\n", v.Name, v.Slug, len(v.Dates))
	if s := strings.TrimSpace(v.ShortDescription); s != "" {
		fmt.Fprintf(&b, "%s\n\n", s)
	}
	b.WriteString("## Contact\n\n")
	contacts := v.Contacts()
	if len(contacts) == 0 {
		b.WriteString("_In person only._\n")
	}
	for _, c := range contacts {
		fmt.Fprintf(&b, "- **%s:** %s\n", c.Label, c.Href)
	}
	b.WriteString("\n## Dates\n\n")
	for _, d := range v.Dates {
		fmt.Fprintf(&b, "- %s (`%s`)\n", d.Display, d.Slug)
	}
	return renderMarkdown(w, b.String(), style)
}

// WritePrettyDate renders a single date and its vendor list.
func WritePrettyDate(w io.Writer, d api.Date, style string) error {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n> **Slug:** %s | **Vendors:** %d | **Absent:** %d\n\n---\n\n",
		strings.TrimSpace(d.Display), d.Slug, len(d.Vendors), d.AbsentCount())
	if len(d.Vendors) == 0 {
		b.WriteString("_Vendor list coming soon._\n")
	}
	for _, v := range d.Vendors {
		fmt.Fprintf(&b, "- %s (`%s`)", v.Name, v.Slug)
		if strings.EqualFold(strings.TrimSpace(v.Status), api.StatusAbsent) {
			b.WriteString(" _unable to attend_")
		}
		b.WriteString("\n")
	}
	return renderMarkdown(w, b.String(), style)
}

func renderMarkdown(w io.Writer, md, style string) error {
	if style == "" {
		style = DefaultStyle
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}

	out, err := r.Render(md)
	if err != nil {
		return fmt.Errorf("failed to render markdown: %w", err)
	}

	_, err = io.WriteString(w, out)
	return err
}
