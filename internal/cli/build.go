package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mithrel/fairgen/internal/site"
)

func newBuildCmd() *cobra.Command {
	var only []string
	cmd := &cobra.Command{
		Use:   "build <root> <roster.json>",
		Short: "Generate date, vendor and home pages under the site root",
		Long: `Writes navigation includes, structured data and pages for every date and
vendor in the roster, then assembles the home page from the includes in
<root>/_includes. Files whose content has not changed are left untouched.`,
		Args:        exactArgs(2),
		Annotations: needsSite,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, t := range only {
				if !validTarget(t) {
					return usageError(cmd, fmt.Sprintf("unknown --only target %q (want %s)", t, strings.Join(site.Targets, "|")))
				}
			}
			app := getApp(cmd)
			root := args[0]
			r, err := loadRoster(app, args[1])
			if err != nil {
				return err
			}
			links, err := site.LoadEventLinks(app.FS, filepath.Join(root, app.Site.EventLinksPath), app.Log)
			if err != nil {
				return err
			}
			b := &site.Builder{
				Site:     app.Site,
				Roster:   r,
				Assets:   site.NewDirAssets(app.FS, root, app.Site),
				Links:    links,
				Renderer: app.Renderer,
				Out:      site.NewWriter(app.FS, root, app.Log),
				Log:      app.Log,
			}
			res, err := b.Build(only...)
			if err != nil {
				return err
			}
			app.Log.Infow("build complete",
				"pages", res.Pages,
				"written", res.Written,
				"unchanged", res.Unchanged,
				"fingerprint", r.Fingerprint(),
			)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d files (%d unchanged) under %s\n", res.Written, res.Unchanged, root)
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&only, "only", nil, "limit the build to targets: dates,vendors,home")
	_ = cmd.RegisterFlagCompletionFunc("only", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return site.Targets, cobra.ShellCompDirectiveNoFileComp
	})
	return cmd
}

func validTarget(t string) bool {
	for _, k := range site.Targets {
		if k == t {
			return true
		}
	}
	return false
}
