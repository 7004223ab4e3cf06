package wire

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mithrel/fairgen/internal/config"
)

func TestBuildApp(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Chdir(t.TempDir())
	v := viper.New()
	require.NoError(t, config.Load(context.Background(), v))

	var logs bytes.Buffer
	app, err := BuildApp(context.Background(), v, &logs)
	require.NoError(t, err)
	assert.Nil(t, app.Renderer)
	require.NoError(t, app.LoadSite())
	assert.Equal(t, config.DefaultSite(), app.Site)

	app.Log.Debugw("hidden")
	app.Log.Infow("shown", "count", 2)
	assert.NotContains(t, logs.String(), "hidden")
	assert.Contains(t, logs.String(), "shown")
	assert.Contains(t, logs.String(), "count")

	html, err := app.Renderer.Render("- a")
	require.NoError(t, err)
	assert.Equal(t, "<ul>\n<li>a</li>\n</ul>", html)
}

func TestLoadSiteRejectsInvalidConfig(t *testing.T) {
	v := viper.New()
	v.SetConfigType("toml")
	require.NoError(t, v.ReadConfig(bytes.NewBufferString("[render]\nengine = \"pandoc\"\n")))
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Chdir(t.TempDir())
	require.NoError(t, config.Load(context.Background(), v))

	app, err := BuildApp(context.Background(), v, &bytes.Buffer{})
	require.NoError(t, err)
	err = app.LoadSite()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "render_engine")
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewLogger(&buf, "WARNING")
	require.NoError(t, err)
	log.Infow("quiet")
	log.Warnw("loud")
	assert.NotContains(t, buf.String(), "quiet")
	assert.Contains(t, buf.String(), "loud")

	_, err = NewLogger(&buf, "chatty")
	require.Error(t, err)
}
