package api

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"io"

	"github.com/zeebo/blake3"
)

// Encode writes the roster as a single JSON document followed by a newline.
// The output is deterministic: parsing the same spreadsheet twice yields the
// same bytes.
func (r Roster) Encode(w io.Writer, indent bool) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(r.normalized())
}

// Fingerprint returns a hex BLAKE3 digest of the compact JSON encoding.
func (r Roster) Fingerprint() string {
	var buf bytes.Buffer
	if err := r.Encode(&buf, false); err != nil {
		return ""
	}
	sum := blake3.Sum256(buf.Bytes())
	return hex.EncodeToString(sum[:])
}

// Decode reads a roster JSON document.
func Decode(rd io.Reader) (Roster, error) {
	var r Roster
	if err := json.NewDecoder(rd).Decode(&r); err != nil {
		return Roster{}, err
	}
	return r.normalized(), nil
}

// normalized swaps nil slices for empty ones so they encode as [] not null.
func (r Roster) normalized() Roster {
	out := Roster{Vendors: make([]Vendor, len(r.Vendors)), Dates: NewDateIndex()}
	for i, v := range r.Vendors {
		if v.Dates == nil {
			v.Dates = []DateRef{}
		}
		out.Vendors[i] = v
	}
	for _, k := range r.Dates.Keys() {
		d, _ := r.Dates.Get(k)
		if d.Vendors == nil {
			d.Vendors = []VendorRef{}
		}
		out.Dates.Set(k, d)
	}
	return out
}
