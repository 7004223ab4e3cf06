package config

import (
	"fmt"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/spf13/viper"
)

var (
	clockRe  = regexp.MustCompile(`^\d{2}:\d{2}:\d{2}$`)
	offsetRe = regexp.MustCompile(`^[+-]\d{2}:\d{2}$`)
)

// Address is the venue's postal address.
type Address struct {
	Street     string `json:"street"`
	Locality   string `json:"locality"`
	PostalCode string `json:"postal_code"`
	Region     string `json:"region"`
	Country    string `json:"country"`
}

func (a Address) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Street, validation.Required),
		validation.Field(&a.Locality, validation.Required),
		validation.Field(&a.PostalCode, validation.Required),
		validation.Field(&a.Region, validation.Required),
		validation.Field(&a.Country, validation.Required, validation.Length(2, 2)),
	)
}

// OneLine renders "606 N Calumet Ave, Valparaiso, IN 46383".
func (a Address) OneLine() string {
	return fmt.Sprintf("%s, %s, %s %s", a.Street, a.Locality, a.Region, a.PostalCode)
}

// Offer is the admission offer attached to every event.
type Offer struct {
	Price        string `json:"price"`
	Currency     string `json:"currency"`
	Availability string `json:"availability"`
	ValidFrom    string `json:"valid_from"`
}

func (o Offer) Validate() error {
	return validation.ValidateStruct(&o,
		validation.Field(&o.Price, validation.Required, is.Float),
		validation.Field(&o.Currency, validation.Required, validation.Length(3, 3)),
		validation.Field(&o.Availability, validation.Required, is.URL),
		validation.Field(&o.ValidFrom, validation.Required),
	)
}

// Site holds every organization-level constant the generators need. Build
// it once with SiteFromViper and pass it by value; nothing reads it from
// package state.
type Site struct {
	EventName        string   `json:"event_name"`
	EventDescription string   `json:"event_description"`
	OrgName          string   `json:"org_name"`
	OrgURL           string   `json:"org_url"`
	PlaceID          string   `json:"place_id"`
	Performer        string   `json:"performer"`
	BecomeVendorURL  string   `json:"become_vendor_url"`
	TZOffset         string   `json:"tz_offset"`
	StartTime        string   `json:"start_time"`
	EndTime          string   `json:"end_time"`
	HoursText        string   `json:"hours_text"`
	Address          Address  `json:"address"`
	Offer            Offer    `json:"offer"`
	ImageExts        []string `json:"image_exts"`
	VendorDir        string   `json:"vendor_dir"`
	DescriptionFile  string   `json:"description_file"`
	EventLinksPath   string   `json:"event_links"`
	RenderEngine     string   `json:"render_engine"`
}

// SiteFromViper snapshots the loaded configuration.
func SiteFromViper(v *viper.Viper) Site {
	exts := make([]string, 0)
	for _, e := range v.GetStringSlice("assets.image_exts") {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		exts = append(exts, e)
	}
	return Site{
		EventName:        v.GetString("site.event_name"),
		EventDescription: v.GetString("site.event_description"),
		OrgName:          v.GetString("site.org_name"),
		OrgURL:           v.GetString("site.org_url"),
		PlaceID:          v.GetString("site.place_id"),
		Performer:        v.GetString("site.performer"),
		BecomeVendorURL:  v.GetString("site.become_vendor_url"),
		TZOffset:         v.GetString("schedule.tz_offset"),
		StartTime:        v.GetString("schedule.start_time"),
		EndTime:          v.GetString("schedule.end_time"),
		HoursText:        v.GetString("schedule.hours_text"),
		Address: Address{
			Street:     v.GetString("address.street"),
			Locality:   v.GetString("address.locality"),
			PostalCode: v.GetString("address.postal_code"),
			Region:     v.GetString("address.region"),
			Country:    v.GetString("address.country"),
		},
		Offer: Offer{
			Price:        v.GetString("offer.price"),
			Currency:     v.GetString("offer.currency"),
			Availability: v.GetString("offer.availability"),
			ValidFrom:    v.GetString("offer.valid_from"),
		},
		ImageExts:       exts,
		VendorDir:       v.GetString("assets.vendor_dir"),
		DescriptionFile: v.GetString("assets.description_file"),
		EventLinksPath:  v.GetString("assets.event_links"),
		RenderEngine:    strings.ToLower(strings.TrimSpace(v.GetString("render.engine"))),
	}
}

// DefaultSite is the site built from defaults alone.
func DefaultSite() Site {
	v := viper.New()
	applyDefaults(v)
	return SiteFromViper(v)
}

func (s Site) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.EventName, validation.Required),
		validation.Field(&s.EventDescription, validation.Required),
		validation.Field(&s.OrgName, validation.Required),
		validation.Field(&s.OrgURL, validation.Required, is.URL),
		validation.Field(&s.PlaceID, validation.Required),
		validation.Field(&s.BecomeVendorURL, is.URL),
		validation.Field(&s.TZOffset, validation.Required, validation.Match(offsetRe)),
		validation.Field(&s.StartTime, validation.Required, validation.Match(clockRe)),
		validation.Field(&s.EndTime, validation.Required, validation.Match(clockRe)),
		validation.Field(&s.Address),
		validation.Field(&s.Offer),
		validation.Field(&s.ImageExts, validation.Required),
		validation.Field(&s.VendorDir, validation.Required),
		validation.Field(&s.DescriptionFile, validation.Required),
		validation.Field(&s.RenderEngine, validation.In("markdownish", "goldmark")),
	)
}

// PageURL joins the organizer URL with a site-relative path such as "/june-07-2026/".
func (s Site) PageURL(path string) string {
	return strings.TrimRight(s.OrgURL, "/") + path
}

// CheckConfigValidity validates the settings every command relies on.
// Site settings are checked separately by CheckSite.
func CheckConfigValidity(v *viper.Viper) error {
	if err := validation.Validate(strings.ToLower(v.GetString("log_level")),
		validation.In("debug", "info", "warn", "warning", "error"),
	); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	return nil
}

// CheckSite snapshots and validates the site settings.
func CheckSite(v *viper.Viper) (Site, error) {
	s := SiteFromViper(v)
	if err := s.Validate(); err != nil {
		return Site{}, fmt.Errorf("invalid config: %w", err)
	}
	return s, nil
}
