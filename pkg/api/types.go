package api

// Vendor is one exhibitor row accepted from the roster spreadsheet.
type Vendor struct {
	Name             string    `json:"name"`
	Slug             string    `json:"slug"`
	Website          string    `json:"website"`
	Store            string    `json:"store"`
	Facebook         string    `json:"facebook"`
	Instagram        string    `json:"instagram"`
	Youtube          string    `json:"youtube"`
	PublicEmail      string    `json:"public_email"`
	PublicPhone      string    `json:"public_phone"`
	ShortDescription string    `json:"short_description"`
	Dates            []DateRef `json:"dates"`
}

// DateRef points from a vendor to a fair date. Vendors keep these in
// spreadsheet column order.
type DateRef struct {
	Slug    string `json:"slug"`
	Display string `json:"display"`
}

// VendorRef points from a date to an attending vendor.
type VendorRef struct {
	Name   string `json:"name"`
	Slug   string `json:"slug"`
	Status string `json:"status,omitempty"`
}

// StatusAbsent marks a vendor that signed up but cannot attend.
const StatusAbsent = "absent"

// Date is one fair occurrence.
type Date struct {
	Slug    string      `json:"slug"`
	Display string      `json:"display"`
	Vendors []VendorRef `json:"vendors"`
}

// Roster is the dataset handed from the parser to every page generator.
type Roster struct {
	Vendors []Vendor  `json:"vendors"`
	Dates   DateIndex `json:"dates"`
}

// Vendor returns the first vendor with the given slug.
func (r Roster) Vendor(slug string) (Vendor, bool) {
	for _, v := range r.Vendors {
		if v.Slug == slug {
			return v, true
		}
	}
	return Vendor{}, false
}
