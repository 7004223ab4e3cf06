package api

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// DateIndex maps date slugs to dates and remembers insertion order, so the
// JSON object comes out in spreadsheet column order instead of sorted.
type DateIndex struct {
	keys  []string
	items map[string]Date
}

// NewDateIndex returns an empty index.
func NewDateIndex() DateIndex {
	return DateIndex{items: make(map[string]Date)}
}

// Set stores d under slug. A slug seen before keeps its original position.
func (x *DateIndex) Set(slug string, d Date) {
	if x.items == nil {
		x.items = make(map[string]Date)
	}
	if _, ok := x.items[slug]; !ok {
		x.keys = append(x.keys, slug)
	}
	x.items[slug] = d
}

// Get returns the date stored under slug.
func (x DateIndex) Get(slug string) (Date, bool) {
	d, ok := x.items[slug]
	return d, ok
}

// Keys returns slugs in insertion order.
func (x DateIndex) Keys() []string {
	return append([]string(nil), x.keys...)
}

// Values returns dates in insertion order.
func (x DateIndex) Values() []Date {
	out := make([]Date, 0, len(x.keys))
	for _, k := range x.keys {
		out = append(out, x.items[k])
	}
	return out
}

func (x DateIndex) Len() int { return len(x.keys) }

// AddVendor appends ref to the vendor list of the date stored under slug.
func (x *DateIndex) AddVendor(slug string, ref VendorRef) bool {
	d, ok := x.items[slug]
	if !ok {
		return false
	}
	d.Vendors = append(d.Vendors, ref)
	x.items[slug] = d
	return true
}

func (x DateIndex) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range x.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := marshalNoEscape(k)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := marshalNoEscape(x.items[k])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (x *DateIndex) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*x = NewDateIndex()
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("dates: expected object, got %v", tok)
	}
	out := NewDateIndex()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		slug, ok := tok.(string)
		if !ok {
			return fmt.Errorf("dates: expected string key, got %v", tok)
		}
		var d Date
		if err := dec.Decode(&d); err != nil {
			return fmt.Errorf("dates: %s: %w", slug, err)
		}
		// Older roster files carry no slug inside the object.
		if d.Slug == "" {
			d.Slug = slug
		}
		out.Set(slug, d)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*x = out
	return nil
}

// marshalNoEscape encodes v without HTML escaping, so names like
// "Pies & Jams" stay readable in the output.
func marshalNoEscape(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
