package wire

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mithrel/fairgen/internal/config"
	"github.com/mithrel/fairgen/internal/render"
)

// App aggregates the major services for easy injection. Site and Renderer
// are zero until LoadSite succeeds.
type App struct {
	Cfg      *viper.Viper
	Site     config.Site
	Log      *zap.SugaredLogger
	FS       afero.Fs
	Renderer render.Renderer
}

// BuildApp wires dependencies with the provided config. Diagnostics go to
// logOut so stdout carries only command output.
func BuildApp(ctx context.Context, v *viper.Viper, logOut io.Writer) (*App, error) {
	if err := config.CheckConfigValidity(v); err != nil {
		return nil, err
	}
	logger, err := NewLogger(logOut, v.GetString("log_level"))
	if err != nil {
		return nil, err
	}
	return &App{
		Cfg: v,
		Log: logger,
		FS:  afero.NewOsFs(),
	}, nil
}

// LoadSite validates the site settings and builds the description renderer.
// Only commands that write or report site output need it.
func (a *App) LoadSite() error {
	site, err := config.CheckSite(a.Cfg)
	if err != nil {
		return err
	}
	renderer, err := render.NewRenderer(site.RenderEngine)
	if err != nil {
		return err
	}
	a.Site = site
	a.Renderer = renderer
	return nil
}

// NewLogger builds a console logger without timestamps at the named level.
func NewLogger(w io.Writer, level string) (*zap.SugaredLogger, error) {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "warning" {
		level = "warn"
	}
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log_level: %w", err)
	}
	enc := zap.NewDevelopmentEncoderConfig()
	enc.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(w), lvl)
	return zap.New(core).Sugar(), nil
}
