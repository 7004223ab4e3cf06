package cli

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/mithrel/fairgen/internal/roster"
	"github.com/mithrel/fairgen/internal/wire"
	"github.com/mithrel/fairgen/pkg/api"
)

// exactArgs reports a wrong argument count as a *roster.UsageError so main
// can print usage and pick the usage exit code.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return usageError(cmd, fmt.Sprintf("expected %d arguments, got %d", n, len(args)))
		}
		return nil
	}
}

func usageError(cmd *cobra.Command, msg string) error {
	return &roster.UsageError{Usage: cmd.UseLine(), Msg: msg}
}

func parseYear(cmd *cobra.Command, s string) (int, error) {
	year, err := strconv.Atoi(s)
	if err != nil {
		return 0, usageError(cmd, fmt.Sprintf("year must be an integer, got %q", s))
	}
	return year, nil
}

// loadRoster reads a roster JSON file produced by parse.
func loadRoster(app *wire.App, path string) (api.Roster, error) {
	b, err := afero.ReadFile(app.FS, path)
	if err != nil {
		return api.Roster{}, fmt.Errorf("read roster: %w", err)
	}
	r, err := api.Decode(bytes.NewReader(b))
	if err != nil {
		return api.Roster{}, fmt.Errorf("decode roster %s: %w", path, err)
	}
	app.Log.Debugw("loaded roster", "path", path, "vendors", len(r.Vendors), "dates", r.Dates.Len(), "fingerprint", r.Fingerprint())
	return r, nil
}
