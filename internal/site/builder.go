// Package site generates the craft fair's pages, navigation includes and
// structured data from a parsed roster.
package site

import (
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/mithrel/fairgen/internal/config"
	"github.com/mithrel/fairgen/internal/render"
	"github.com/mithrel/fairgen/pkg/api"
)

// Targets accepted by Build, in the order they run. Home reads the
// home_dates include produced by Dates.
const (
	TargetDates   = "dates"
	TargetVendors = "vendors"
	TargetHome    = "home"
)

var Targets = []string{TargetDates, TargetVendors, TargetHome}

const includesDir = "_includes"

// Builder writes one roster's pages. All inputs are explicit; nothing is
// read from package state.
type Builder struct {
	Site     config.Site
	Roster   api.Roster
	Assets   AssetSource
	Links    EventLinks
	Renderer render.Renderer
	Out      *Writer
	Log      *zap.SugaredLogger
}

// Result counts pages per target plus the writer's totals.
type Result struct {
	Pages     map[string]int
	Written   int
	Unchanged int
}

// Build runs the named targets, or all of them when only is empty.
func (b *Builder) Build(only ...string) (Result, error) {
	run := make(map[string]bool, len(Targets))
	for _, t := range only {
		if !isTarget(t) {
			return Result{}, fmt.Errorf("unknown build target %q (want dates|vendors|home)", t)
		}
		run[t] = true
	}
	res := Result{Pages: make(map[string]int)}
	for _, t := range Targets {
		if len(run) > 0 && !run[t] {
			continue
		}
		var (
			n   int
			err error
		)
		switch t {
		case TargetDates:
			n, err = b.Dates()
		case TargetVendors:
			n, err = b.Vendors()
		case TargetHome:
			n, err = b.Home()
		}
		if err != nil {
			return res, fmt.Errorf("build %s: %w", t, err)
		}
		res.Pages[t] = n
	}
	res.Written, res.Unchanged = b.Out.Stats()
	return res, nil
}

func (b *Builder) logger() *zap.SugaredLogger {
	if b.Log == nil {
		b.Log = zap.NewNop().Sugar()
	}
	return b.Log
}

func isTarget(t string) bool {
	for _, k := range Targets {
		if k == t {
			return true
		}
	}
	return false
}

func include(name string) string {
	return filepath.Join(includesDir, name)
}

func pageFile(slug string) string {
	return filepath.Join(slug, "index.html")
}
