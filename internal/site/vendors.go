package site

import (
	"html/template"
	"sort"
	"strings"

	"github.com/mithrel/fairgen/pkg/api"
)

// ContactLink is one entry of a vendor page's contact list.
type ContactLink struct {
	Href  template.URL
	Label string
}

type vendorPage struct {
	Name        string
	Description template.HTML
	Links       []ContactLink
	Dates       []api.DateRef
	Images      []string
}

// SortedVendors orders vendors case-insensitively by name, keeping roster
// order among equal names.
func SortedVendors(r api.Roster) []api.Vendor {
	vendors := append([]api.Vendor(nil), r.Vendors...)
	sort.SliceStable(vendors, func(i, j int) bool {
		return strings.ToLower(vendors[i].Name) < strings.ToLower(vendors[j].Name)
	})
	return vendors
}

// ContactLinks converts a vendor's contacts for page templates.
func ContactLinks(v api.Vendor) []ContactLink {
	contacts := v.Contacts()
	out := make([]ContactLink, len(contacts))
	for i, c := range contacts {
		out[i] = ContactLink{Href: template.URL(c.Href), Label: c.Label}
	}
	return out
}

// Vendors writes the vendors dropdown and one page per roster vendor.
// Vendors sharing a slug share a page; the later one wins.
func (b *Builder) Vendors() (int, error) {
	dropdown := struct {
		BecomeVendorURL string
		Vendors         []api.Vendor
	}{b.Site.BecomeVendorURL, SortedVendors(b.Roster)}
	if err := b.writeTemplate(include("vendors_dropdown.html"), "vendors_dropdown.html", dropdown); err != nil {
		return 0, err
	}

	for _, v := range b.Roster.Vendors {
		page, err := b.vendorPage(v)
		if err != nil {
			return 0, err
		}
		if err := b.writeTemplate(pageFile(v.Slug), "vendor_page.html", page); err != nil {
			return 0, err
		}
	}
	b.logger().Infow("generated vendor pages", "count", len(b.Roster.Vendors))
	return len(b.Roster.Vendors), nil
}

func (b *Builder) vendorPage(v api.Vendor) (vendorPage, error) {
	names, err := b.Assets.ListImages(v.Slug)
	if err != nil {
		return vendorPage{}, err
	}
	images := make([]string, len(names))
	for i, n := range names {
		images[i] = b.Assets.ImageURL(v.Slug, n)
	}

	text, ok, err := b.Assets.ReadDescription(v.Slug)
	if err != nil {
		return vendorPage{}, err
	}
	if !ok {
		text = strings.TrimSpace(v.ShortDescription)
	}
	var desc string
	if text != "" {
		if desc, err = b.Renderer.Render(text); err != nil {
			return vendorPage{}, err
		}
	}

	return vendorPage{
		Name:        v.Name,
		Description: template.HTML(desc),
		Links:       ContactLinks(v),
		Dates:       v.Dates,
		Images:      images,
	}, nil
}
