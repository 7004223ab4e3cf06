package site

import (
	"errors"
	"fmt"
	"html/template"
	"io/fs"

	"github.com/mithrel/fairgen/pkg/api"
)

// HomeIncludes must exist under _includes before the home page can be built.
var HomeIncludes = []string{
	"header.html",
	"footer.html",
	"home_intro.html",
	"home_dates.html",
	"home_vendors.html",
	"home_hero.html",
}

type homePage struct {
	Header       template.HTML
	Hero         template.HTML
	Intro        template.HTML
	DatesIntro   template.HTML
	VendorsIntro template.HTML
	Footer       template.HTML
	Dates        []api.Date
	Vendors      []api.Vendor
}

// Home assembles index.html from the home includes plus the roster's date
// and vendor lists.
func (b *Builder) Home() (int, error) {
	parts := make(map[string]template.HTML, len(HomeIncludes))
	for _, name := range HomeIncludes {
		raw, err := b.Out.ReadFile(include(name))
		if errors.Is(err, fs.ErrNotExist) {
			return 0, fmt.Errorf("missing required include: %s", include(name))
		}
		if err != nil {
			return 0, err
		}
		parts[name] = template.HTML(raw)
	}

	page := homePage{
		Header:       parts["header.html"],
		Hero:         parts["home_hero.html"],
		Intro:        parts["home_intro.html"],
		DatesIntro:   parts["home_dates.html"],
		VendorsIntro: parts["home_vendors.html"],
		Footer:       parts["footer.html"],
		Dates:        b.Roster.Dates.Values(),
		Vendors:      SortedVendors(b.Roster),
	}
	if err := b.writeTemplate("index.html", "home.html", page); err != nil {
		return 0, err
	}
	b.logger().Infow("generated home page")
	return 1, nil
}
