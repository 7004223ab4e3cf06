package site

import (
	"errors"
	"html/template"
	"io/fs"
	"sort"
	"strings"

	"github.com/mithrel/fairgen/internal/util"
	"github.com/mithrel/fairgen/pkg/api"
)

type dateLink struct {
	Slug    string
	Display string
	Key     util.DateKey
	Link    EventLink
}

type dateVendor struct {
	Slug   string
	Name   string
	Short  string
	Absent bool
}

type datePage struct {
	Display   string
	Intro     template.HTML
	HeroImage string
	EventName string
	JSONLD    template.JS
	Hours     string
	Location  string
	Link      EventLink
	Vendors   []dateVendor
}

// SortedDates orders dates by calendar value. Slugs that do not parse as
// month-dd-yyyy sort last in their original order.
func SortedDates(r api.Roster) []api.Date {
	dates := r.Dates.Values()
	sort.SliceStable(dates, func(i, j int) bool {
		return util.KeyForDateSlug(dates[i].Slug).Less(util.KeyForDateSlug(dates[j].Slug))
	})
	return dates
}

// dateLinks keeps calendar-valid dates in chronological order.
func (b *Builder) dateLinks(sorted []api.Date) []dateLink {
	out := make([]dateLink, 0, len(sorted))
	for _, d := range sorted {
		key := util.KeyForDateSlug(d.Slug)
		if !key.Valid {
			b.logger().Debugw("skipping date with unrecognized slug", "slug", d.Slug)
			continue
		}
		out = append(out, dateLink{
			Slug:    d.Slug,
			Display: strings.TrimSpace(d.Display),
			Key:     key,
			Link:    b.Links.Get(d.Slug),
		})
	}
	return out
}

// Dates writes the date includes, the events JSON and schema files, and
// one page per calendar-valid date. It returns the number of date pages.
func (b *Builder) Dates() (int, error) {
	links := b.dateLinks(SortedDates(b.Roster))

	if err := b.writeTemplate(include("home_dates.html"), "home_dates.html", links); err != nil {
		return 0, err
	}
	if err := b.writeTemplate(include("dates_dropdown.html"), "dates_dropdown.html", links); err != nil {
		return 0, err
	}

	events := make([]faqEvent, 0, len(links))
	graph := make([]ldEvent, 0, len(links))
	for _, l := range links {
		e := newFAQEvent(b.Site, l.Slug, l.Display, l.Key, l.Link)
		events = append(events, e)
		graph = append(graph, graphEntry(b.Site, e))
	}
	faq, err := indentJSON(struct {
		Events []faqEvent `json:"events"`
	}{events})
	if err != nil {
		return 0, err
	}
	if err := b.Out.WriteFile(include("faq_events.json"), faq); err != nil {
		return 0, err
	}
	schema, err := indentJSON(ldGraph{Context: schemaContext, Graph: graph})
	if err != nil {
		return 0, err
	}
	for _, name := range []string{"faq_events_schema.html", "events_schema.json"} {
		if err := b.Out.WriteFile(include(name), scriptLD(schema)); err != nil {
			return 0, err
		}
	}

	intro, err := b.Out.ReadFile(include("date_intro.html"))
	if errors.Is(err, fs.ErrNotExist) {
		b.logger().Warnw("missing include, continuing without it", "include", include("date_intro.html"))
	} else if err != nil {
		return 0, err
	}

	for _, l := range links {
		d, _ := b.Roster.Dates.Get(l.Slug)
		ld, err := indentJSON(pageEvent(b.Site, l.Slug, l.Key, l.Link))
		if err != nil {
			return 0, err
		}
		page := datePage{
			Display:   l.Display,
			Intro:     template.HTML(intro),
			HeroImage: heroImage(l.Slug),
			EventName: b.Site.EventName,
			JSONLD:    template.JS(ld),
			Hours:     b.Site.HoursText,
			Location:  b.Site.Address.OneLine(),
			Link:      l.Link,
			Vendors:   b.dateVendors(d),
		}
		if err := b.writeTemplate(pageFile(l.Slug), "date_page.html", page); err != nil {
			return 0, err
		}
	}
	b.logger().Infow("generated date pages", "count", len(links))
	return len(links), nil
}

// dateVendors sorts attendees case-insensitively by name and attaches each
// one's short description.
func (b *Builder) dateVendors(d api.Date) []dateVendor {
	refs := append([]api.VendorRef(nil), d.Vendors...)
	sort.SliceStable(refs, func(i, j int) bool {
		return strings.ToLower(refs[i].Name) < strings.ToLower(refs[j].Name)
	})
	out := make([]dateVendor, 0, len(refs))
	for _, ref := range refs {
		dv := dateVendor{
			Slug:   ref.Slug,
			Name:   ref.Name,
			Absent: strings.EqualFold(strings.TrimSpace(ref.Status), api.StatusAbsent),
		}
		if v, ok := b.Roster.Vendor(ref.Slug); ok {
			dv.Short = strings.TrimSpace(v.ShortDescription)
		}
		out = append(out, dv)
	}
	return out
}

func (b *Builder) writeTemplate(rel, name string, data any) error {
	out, err := execute(name, data)
	if err != nil {
		return err
	}
	return b.Out.WriteFile(rel, out)
}
