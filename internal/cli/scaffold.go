package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mithrel/fairgen/internal/site"
)

func newScaffoldCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "scaffold <root> <roster.json>",
		Short:       "Create empty description files for vendors that lack one",
		Args:        exactArgs(2),
		Annotations: needsSite,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			r, err := loadRoster(app, args[1])
			if err != nil {
				return err
			}
			visited, created, err := site.Scaffold(app.FS, args[0], app.Site, r, app.Log)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Scaffolded %d vendor directories (%d new descriptions)\n", visited, created)
			return nil
		},
	}
}
