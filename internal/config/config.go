package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// applyDefaults seeds Viper with defaults defined in GetConfigOptions.
// This centralizes default values and descriptions in one place.
func applyDefaults(v *viper.Viper) {
	for _, o := range GetConfigOptions() {
		v.SetDefault(o.Key, o.Default)
	}
}

// Load resolves configuration with precedence: defaults < file < env.
// The provided Viper instance is mutated with defaults, file contents, and env.
func Load(ctx context.Context, v *viper.Viper) error {
	// Configure Viper search paths. If SetConfigFile was provided upstream,
	// it takes precedence; these paths are harmless fallbacks.
	if v.ConfigFileUsed() == "" {
		v.SetConfigName("fairgen")
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			v.AddConfigPath(filepath.Join(xdg, "fairgen"))
		}
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "fairgen"))
		}
		v.AddConfigPath(".")
	}

	// Apply centralized defaults (lowest precedence)
	applyDefaults(v)

	// A missing file is fine; a broken one is not.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("read config: %w", err)
		}
	}

	// Environment variables: FAIRGEN_* (highest among these sources)
	v.SetEnvPrefix("fairgen")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Allow comma-separated env override for image extensions
	if s := strings.TrimSpace(v.GetString("assets.image_exts")); s != "" && !strings.HasPrefix(s, "[") {
		if exts := splitList(s); len(exts) > 0 {
			v.Set("assets.image_exts", exts)
		}
	}
	return nil
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		t := strings.TrimSpace(p)
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

// DefaultConfigPath resolves the standard fairgen.toml location.
func DefaultConfigPath() string {
	xdg := os.Getenv("XDG_CONFIG_HOME")
	if xdg == "" {
		home, _ := os.UserHomeDir()
		xdg = filepath.Join(home, ".config")
	}
	return filepath.Join(xdg, "fairgen", "fairgen.toml")
}

type ConfigOption struct {
	Key     string
	Default any
	Comment string
}

// GetConfigOptions returns the default configuration options and their meanings.
// This is the single source of truth for default values and generator output.
func GetConfigOptions() []ConfigOption {
	return []ConfigOption{
		{Key: "log_level", Default: "info", Comment: "Diagnostics level on stderr: debug|info|warn|error"},
		{Key: "pager", Default: "", Comment: "Pager for show/list on a terminal; empty uses $PAGER, then less -FRSX; \"none\" disables"},

		{Key: "site.event_name", Default: "The Edge of Liberty Craft Fair", Comment: "Event name used in page titles and structured data"},
		{Key: "site.event_description", Default: "The Edge of Liberty Craft Fair is an opportunity for local entrepreneurs to sell handmade art, crafts, and food items to their neighbors and friends in Liberty Township, Indiana.", Comment: "Event description for structured data"},
		{Key: "site.org_name", Default: "The Edge of Liberty", Comment: "Organizer name"},
		{Key: "site.org_url", Default: "https://edgeofliberty.us/", Comment: "Organizer URL; page URLs in structured data are built from it"},
		{Key: "site.place_id", Default: "https://edge-of-liberty.com/#place", Comment: "JSON-LD @id of the venue"},
		{Key: "site.performer", Default: "Open Mic Karaoke", Comment: "Performing group listed on every event"},
		{Key: "site.become_vendor_url", Default: "https://batshitcrazyfarms.com/off-season-market/ols/products/the-edge-of-liberty-craft-fair-space", Comment: "Link at the top of the vendors dropdown"},

		{Key: "schedule.tz_offset", Default: "-05:00", Comment: "UTC offset appended to event start and end times"},
		{Key: "schedule.start_time", Default: "10:00:00", Comment: "Event start time (HH:MM:SS)"},
		{Key: "schedule.end_time", Default: "15:00:00", Comment: "Event end time (HH:MM:SS)"},
		{Key: "schedule.hours_text", Default: "10:00 AM – 3:00 PM (Central)", Comment: "Hours line shown on date pages"},

		{Key: "address.street", Default: "606 N Calumet Ave", Comment: "Venue street address"},
		{Key: "address.locality", Default: "Valparaiso", Comment: "Venue city"},
		{Key: "address.postal_code", Default: "46383", Comment: "Venue postal code"},
		{Key: "address.region", Default: "IN", Comment: "Venue state or region"},
		{Key: "address.country", Default: "US", Comment: "Venue country code"},

		{Key: "offer.price", Default: "0", Comment: "Admission price"},
		{Key: "offer.currency", Default: "USD", Comment: "Admission currency"},
		{Key: "offer.availability", Default: "https://schema.org/InStock", Comment: "schema.org availability URL"},
		{Key: "offer.valid_from", Default: "2026-01-01T00:00:00-05:00", Comment: "Offer validity start (RFC3339)"},

		{Key: "assets.image_exts", Default: []string{".jpg", ".jpeg", ".png", ".webp", ".gif"}, Comment: "Image extensions picked up from a vendor directory"},
		{Key: "assets.vendor_dir", Default: ".", Comment: "Directory under the site root holding <slug>/ vendor assets"},
		{Key: "assets.description_file", Default: "description.txt", Comment: "Per-vendor description file name"},
		{Key: "assets.event_links", Default: "_data/facebook_events.json", Comment: "Facebook/Nextdoor event links, relative to the site root"},

		{Key: "render.engine", Default: "markdownish", Comment: "Description renderer: markdownish|goldmark"},
	}
}
