package api

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRoster() Roster {
	dates := NewDateIndex()
	dates.Set("june-07-2026", Date{Slug: "june-07-2026", Display: "June 07, 2026"})
	dates.Set("may-03-2026", Date{Slug: "may-03-2026", Display: "May 03, 2026"})
	dates.AddVendor("june-07-2026", VendorRef{Name: "Pies & Jams", Slug: "pies-jams"})
	return Roster{
		Vendors: []Vendor{{
			Name:  "Pies & Jams",
			Slug:  "pies-jams",
			Dates: []DateRef{{Slug: "june-07-2026", Display: "June 07, 2026"}},
		}},
		Dates: dates,
	}
}

func TestRoster_Encode(t *testing.T) {
	t.Run("dates keep insertion order", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, sampleRoster().Encode(&buf, false))
		out := buf.String()
		assert.Less(t, strings.Index(out, `"june-07-2026":`), strings.Index(out, `"may-03-2026":`))
	})

	t.Run("html characters are not escaped", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, sampleRoster().Encode(&buf, false))
		assert.Contains(t, buf.String(), `"Pies & Jams"`)
	})

	t.Run("empty lists encode as arrays", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, sampleRoster().Encode(&buf, false))
		assert.Contains(t, buf.String(), `"may-03-2026":{"slug":"may-03-2026","display":"May 03, 2026","vendors":[]}`)
	})

	t.Run("round trip keeps order and content", func(t *testing.T) {
		var buf bytes.Buffer
		orig := sampleRoster()
		require.NoError(t, orig.Encode(&buf, true))

		decoded, err := Decode(&buf)
		require.NoError(t, err)
		assert.Equal(t, []string{"june-07-2026", "may-03-2026"}, decoded.Dates.Keys())
		assert.Equal(t, orig.Fingerprint(), decoded.Fingerprint())
	})
}

func TestRoster_Fingerprint(t *testing.T) {
	t.Run("identical rosters produce identical hashes", func(t *testing.T) {
		assert.Equal(t, sampleRoster().Fingerprint(), sampleRoster().Fingerprint())
	})

	t.Run("different content produces different hashes", func(t *testing.T) {
		r := sampleRoster()
		r.Vendors[0].Name = "Other"
		assert.NotEqual(t, sampleRoster().Fingerprint(), r.Fingerprint())
	})

	t.Run("nil and empty date lists hash the same", func(t *testing.T) {
		a := sampleRoster()
		b := sampleRoster()
		a.Vendors[0].Dates = nil
		b.Vendors[0].Dates = []DateRef{}
		assert.Equal(t, a.Fingerprint(), b.Fingerprint())
	})
}

func TestDateIndex_UnmarshalJSON(t *testing.T) {
	t.Run("fills missing slug from key", func(t *testing.T) {
		r, err := Decode(strings.NewReader(`{"vendors":[],"dates":{"june-07-2026":{"display":"June 07, 2026","vendors":[]}}}`))
		require.NoError(t, err)
		d, ok := r.Dates.Get("june-07-2026")
		require.True(t, ok)
		assert.Equal(t, "june-07-2026", d.Slug)
	})

	t.Run("rejects non-object", func(t *testing.T) {
		_, err := Decode(strings.NewReader(`{"vendors":[],"dates":[]}`))
		assert.Error(t, err)
	})
}

func TestRoster_Vendor(t *testing.T) {
	v, ok := sampleRoster().Vendor("pies-jams")
	require.True(t, ok)
	assert.Equal(t, "Pies & Jams", v.Name)

	_, ok = sampleRoster().Vendor("missing")
	assert.False(t, ok)
}
