package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckConfigValidityValid(t *testing.T) {
	v := viper.New()
	applyDefaults(v)

	if err := CheckConfigValidity(v); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
	if _, err := CheckSite(v); err != nil {
		t.Fatalf("expected valid site, got %v", err)
	}
}

func TestCheckConfigValidityInvalid(t *testing.T) {
	v := viper.New()
	applyDefaults(v)
	v.Set("site.org_url", "not a url")
	v.Set("schedule.start_time", "10am")
	v.Set("schedule.tz_offset", "")
	v.Set("address.country", "USA")
	v.Set("render.engine", "pandoc")

	if err := CheckConfigValidity(v); err != nil {
		t.Fatalf("site settings must not fail the general check: %v", err)
	}
	_, err := CheckSite(v)
	if err == nil {
		t.Fatalf("expected error for invalid config")
	}

	msg := err.Error()
	expected := []string{
		"org_url",
		"start_time",
		"tz_offset",
		"country",
		"render_engine",
	}
	for _, want := range expected {
		if !strings.Contains(msg, want) {
			t.Fatalf("expected error to contain %q, got %q", want, msg)
		}
	}
}

func TestCheckConfigValidityLogLevel(t *testing.T) {
	v := viper.New()
	applyDefaults(v)
	v.Set("log_level", "chatty")
	assert.ErrorContains(t, CheckConfigValidity(v), "log_level")
}

func TestRenderEngineCaseInsensitive(t *testing.T) {
	v := viper.New()
	applyDefaults(v)
	v.Set("render.engine", " Goldmark ")
	s, err := CheckSite(v)
	require.NoError(t, err)
	assert.Equal(t, "goldmark", s.RenderEngine)
}

func TestLoadPrecedence(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "fairgen.toml")
	content := `[site]
org_name = "From File"
event_name = "File Fair"
`
	require.NoError(t, os.WriteFile(cfg, []byte(content), 0o600))
	t.Setenv("FAIRGEN_SITE_EVENT_NAME", "Env Fair")
	t.Setenv("FAIRGEN_ASSETS_IMAGE_EXTS", "jpg, .PNG")

	v := viper.New()
	v.SetConfigFile(cfg)
	require.NoError(t, Load(context.Background(), v))

	site := SiteFromViper(v)
	assert.Equal(t, "From File", site.OrgName)
	assert.Equal(t, "Env Fair", site.EventName)
	assert.Equal(t, "10:00:00", site.StartTime)
	assert.Equal(t, []string{".jpg", ".png"}, site.ImageExts)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	v := viper.New()
	v.SetConfigFile(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, Load(context.Background(), v))
	assert.Equal(t, DefaultSite(), SiteFromViper(v))
}

func TestLoadBrokenFile(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "fairgen.toml")
	require.NoError(t, os.WriteFile(cfg, []byte("[site\norg_name = "), 0o600))
	v := viper.New()
	v.SetConfigFile(cfg)
	assert.Error(t, Load(context.Background(), v))
}

func TestSiteHelpers(t *testing.T) {
	s := DefaultSite()
	assert.Equal(t, "606 N Calumet Ave, Valparaiso, IN 46383", s.Address.OneLine())
	assert.Equal(t, "https://edgeofliberty.us/june-07-2026/", s.PageURL("/june-07-2026/"))
	assert.Equal(t, []string{".jpg", ".jpeg", ".png", ".webp", ".gif"}, s.ImageExts)
}
