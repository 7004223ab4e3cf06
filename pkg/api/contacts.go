package api

import "strings"

// Contact is one public way to reach a vendor.
type Contact struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

// Contacts lists the vendor's non-empty contact fields in display order.
// Email and phone become mailto: and tel: links.
func (v Vendor) Contacts() []Contact {
	fields := []struct {
		label, prefix, value string
	}{
		{"Website", "", v.Website},
		{"Store", "", v.Store},
		{"Facebook", "", v.Facebook},
		{"Instagram", "", v.Instagram},
		{"Youtube", "", v.Youtube},
		{"Email", "mailto:", v.PublicEmail},
		{"Phone", "tel:", v.PublicPhone},
	}
	out := make([]Contact, 0, len(fields))
	for _, f := range fields {
		val := strings.TrimSpace(f.value)
		if val == "" {
			continue
		}
		out = append(out, Contact{Label: f.label, Href: f.prefix + val})
	}
	return out
}

// AbsentCount counts vendors on the date that cannot attend.
func (d Date) AbsentCount() int {
	n := 0
	for _, v := range d.Vendors {
		if strings.EqualFold(strings.TrimSpace(v.Status), StatusAbsent) {
			n++
		}
	}
	return n
}
