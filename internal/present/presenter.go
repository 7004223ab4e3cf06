// Package present renders roster vendors and dates for the terminal.
package present

import (
	"io"

	"github.com/mithrel/fairgen/internal/present/format"
	"github.com/mithrel/fairgen/pkg/api"
)

type Mode int

const (
	ModePlain Mode = iota
	ModePretty
	ModeJSON
	ModeNDJSON
)

type Options struct {
	Mode       Mode
	JSONIndent bool
	Headers    bool
	// Style names the glamour style for ModePretty; empty means format.DefaultStyle.
	Style string
}

// ParseMode parses a string like "plain", "pretty", "json", "ndjson".
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "plain":
		return ModePlain, true
	case "pretty":
		return ModePretty, true
	case "json":
		return ModeJSON, true
	case "ndjson":
		return ModeNDJSON, true
	default:
		return ModePlain, false
	}
}

// RenderVendors renders a vendor list according to options.
func RenderVendors(w io.Writer, vendors []api.Vendor, opts Options) error {
	switch opts.Mode {
	case ModeJSON:
		return format.WriteJSON(w, vendors, opts.JSONIndent)
	case ModeNDJSON:
		return format.WriteNDJSON(w, vendors)
	default:
		// Pretty lists fall back to the plain table.
		return format.WritePlainVendors(w, vendors, opts.Headers)
	}
}

// RenderDates renders a date list according to options.
func RenderDates(w io.Writer, dates []api.Date, opts Options) error {
	switch opts.Mode {
	case ModeJSON:
		return format.WriteJSON(w, dates, opts.JSONIndent)
	case ModeNDJSON:
		return format.WriteNDJSON(w, dates)
	default:
		return format.WritePlainDates(w, dates, opts.Headers)
	}
}

// RenderVendor renders a single vendor according to options.
func RenderVendor(w io.Writer, v api.Vendor, opts Options) error {
	switch opts.Mode {
	case ModeJSON:
		return format.WriteJSON(w, v, opts.JSONIndent)
	case ModeNDJSON:
		return format.WriteNDJSON(w, []api.Vendor{v})
	case ModePretty:
		return format.WritePrettyVendor(w, v, opts.Style)
	default:
		return format.WritePlainVendors(w, []api.Vendor{v}, opts.Headers)
	}
}

// RenderDate renders a single date according to options.
func RenderDate(w io.Writer, d api.Date, opts Options) error {
	switch opts.Mode {
	case ModeJSON:
		return format.WriteJSON(w, d, opts.JSONIndent)
	case ModeNDJSON:
		return format.WriteNDJSON(w, []api.Date{d})
	case ModePretty:
		return format.WritePrettyDate(w, d, opts.Style)
	default:
		return format.WritePlainDates(w, []api.Date{d}, opts.Headers)
	}
}
