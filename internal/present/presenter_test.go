package present

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mithrel/fairgen/pkg/api"
)

var (
	candles = api.Vendor{
		Name: "Acme Candles & Co", Slug: "acme-candles-co",
		Website:          "https://acme.example",
		PublicPhone:      "555-0100",
		ShortDescription: "Soy candles",
		Dates:            []api.DateRef{{Slug: "may-03-2026", Display: "May 03, 2026"}, {Slug: "june-07-2026", Display: "June 07, 2026"}},
	}
	may = api.Date{Slug: "may-03-2026", Display: "May 03, 2026", Vendors: []api.VendorRef{
		{Name: "Acme Candles & Co", Slug: "acme-candles-co"},
		{Name: "Bee Happy", Slug: "bee-happy", Status: api.StatusAbsent},
	}}
)

func TestParseMode(t *testing.T) {
	for in, want := range map[string]Mode{"plain": ModePlain, "pretty": ModePretty, "json": ModeJSON, "ndjson": ModeNDJSON} {
		got, ok := ParseMode(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}
	_, ok := ParseMode("tui")
	assert.False(t, ok)
}

func TestRenderVendorsPlain(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderVendors(&buf, []api.Vendor{candles}, Options{Mode: ModePlain, Headers: true}))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, []string{"slug", "name", "dates", "contacts"}, strings.Fields(lines[0]))
	assert.Contains(t, lines[1], "may-03-2026,june-07-2026")
	assert.Contains(t, lines[1], "Website,Phone")
}

func TestRenderDatesPlain(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderDates(&buf, []api.Date{may}, Options{Mode: ModePlain}))
	assert.Equal(t, []string{"may-03-2026", "May", "03,", "2026", "2", "1"}, strings.Fields(buf.String()))
}

func TestRenderVendorJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderVendor(&buf, candles, Options{Mode: ModeJSON, JSONIndent: true}))
	assert.Contains(t, buf.String(), `"name": "Acme Candles & Co"`)

	var got api.Vendor
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, candles, got)
}

func TestRenderDatesNDJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderDates(&buf, []api.Date{may, {Slug: "june-07-2026"}}, Options{Mode: ModeNDJSON}))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[1], `{"slug":"june-07-2026"`))
}

func TestRenderPretty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderVendor(&buf, candles, Options{Mode: ModePretty, Style: "notty"}))
	out := buf.String()
	assert.Contains(t, out, "Acme Candles & Co")
	assert.Contains(t, out, "https://acme.example")

	buf.Reset()
	require.NoError(t, RenderDate(&buf, may, Options{Mode: ModePretty, Style: "notty"}))
	assert.Contains(t, buf.String(), "unable to attend")
}
