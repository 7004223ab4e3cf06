package site

import (
	"bytes"
	"encoding/json"

	"github.com/mithrel/fairgen/internal/config"
	"github.com/mithrel/fairgen/internal/util"
)

const (
	schemaContext   = "https://schema.org"
	offlineMode     = "https://schema.org/OfflineEventAttendanceMode"
	scheduledStatus = "https://schema.org/EventScheduled"
)

type ldRef struct {
	ID string `json:"@id"`
}

type ldNamed struct {
	Type string `json:"@type"`
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
}

type ldOffer struct {
	Type          string `json:"@type"`
	Price         string `json:"price"`
	PriceCurrency string `json:"priceCurrency"`
	Availability  string `json:"availability"`
	URL           string `json:"url"`
	ValidFrom     string `json:"validFrom"`
}

// ldEvent is a schema.org Event. Context is set on standalone objects only,
// URL on @graph entries only.
type ldEvent struct {
	Context             string   `json:"@context,omitempty"`
	Type                string   `json:"@type"`
	Name                string   `json:"name"`
	StartDate           string   `json:"startDate"`
	EndDate             string   `json:"endDate"`
	EventAttendanceMode string   `json:"eventAttendanceMode"`
	EventStatus         string   `json:"eventStatus"`
	Location            ldRef    `json:"location"`
	Image               []string `json:"image"`
	Performer           ldNamed  `json:"performer"`
	Offers              ldOffer  `json:"offers"`
	Description         string   `json:"description"`
	URL                 string   `json:"url,omitempty"`
	Organizer           ldNamed  `json:"organizer"`
	SameAs              []string `json:"sameAs,omitempty"`
}

type ldGraph struct {
	Context string    `json:"@context"`
	Graph   []ldEvent `json:"@graph"`
}

// faqEvent is one entry of _includes/faq_events.json.
type faqEvent struct {
	Slug        string `json:"slug"`
	Display     string `json:"display"`
	ISODate     string `json:"iso_date"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	URL         string `json:"url"`
	Image       string `json:"image"`
	Description string `json:"description"`
	FacebookURL string `json:"facebook_url,omitempty"`
	NextdoorURL string `json:"nextdoor_url,omitempty"`
}

func datePath(slug string) string { return "/" + slug + "/" }

func heroImage(slug string) string { return datePath(slug) + "hero.jpg" }

func eventTimes(s config.Site, key util.DateKey) (string, string) {
	iso := key.ISO()
	return iso + "T" + s.StartTime + s.TZOffset, iso + "T" + s.EndTime + s.TZOffset
}

func newFAQEvent(s config.Site, slug, display string, key util.DateKey, link EventLink) faqEvent {
	start, end := eventTimes(s, key)
	return faqEvent{
		Slug:        slug,
		Display:     display,
		ISODate:     key.ISO(),
		StartDate:   start,
		EndDate:     end,
		URL:         datePath(slug),
		Image:       heroImage(slug),
		Description: s.EventDescription,
		FacebookURL: link.URL,
		NextdoorURL: link.Nextdoor,
	}
}

// newEvent builds the Event object shared by date pages and the @graph.
func newEvent(s config.Site, start, end, image string, link EventLink) ldEvent {
	var sameAs []string
	for _, u := range []string{link.URL, link.Nextdoor} {
		if u != "" {
			sameAs = append(sameAs, u)
		}
	}
	return ldEvent{
		Type:                "Event",
		Name:                s.EventName,
		StartDate:           start,
		EndDate:             end,
		EventAttendanceMode: offlineMode,
		EventStatus:         scheduledStatus,
		Location:            ldRef{ID: s.PlaceID},
		Image:               []string{image},
		Performer:           ldNamed{Type: "PerformingGroup", Name: s.Performer},
		Offers: ldOffer{
			Type:          "Offer",
			Price:         s.Offer.Price,
			PriceCurrency: s.Offer.Currency,
			Availability:  s.Offer.Availability,
			URL:           s.OrgURL,
			ValidFrom:     s.Offer.ValidFrom,
		},
		Description: s.EventDescription,
		Organizer:   ldNamed{Type: "Organization", Name: s.OrgName, URL: s.OrgURL},
		SameAs:      sameAs,
	}
}

func graphEntry(s config.Site, e faqEvent) ldEvent {
	ev := newEvent(s, e.StartDate, e.EndDate, e.Image, EventLink{URL: e.FacebookURL, Nextdoor: e.NextdoorURL})
	ev.URL = s.PageURL(e.URL)
	return ev
}

func pageEvent(s config.Site, slug string, key util.DateKey, link EventLink) ldEvent {
	start, end := eventTimes(s, key)
	ev := newEvent(s, start, end, heroImage(slug), link)
	ev.Context = schemaContext
	return ev
}

// indentJSON renders v with two-space indentation and no trailing newline.
func indentJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func scriptLD(body []byte) []byte {
	out := make([]byte, 0, len(body)+64)
	out = append(out, "<script type=\"application/ld+json\">\n"...)
	out = append(out, body...)
	out = append(out, "\n</script>\n"...)
	return out
}
