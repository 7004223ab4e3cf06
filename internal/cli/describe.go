package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/mithrel/fairgen/internal/editor"
	"github.com/mithrel/fairgen/internal/site"
	"github.com/mithrel/fairgen/internal/util"
)

func newDescribeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:         "describe <root> <roster.json> <slug>",
		Short:       "Edit a vendor's long description in $EDITOR",
		Args:        exactArgs(3),
		Annotations: needsSite,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			r, err := loadRoster(app, args[1])
			if err != nil {
				return err
			}
			v, ok := r.Vendor(args[2])
			if !ok {
				return fmt.Errorf("no vendor %q in %s", args[2], args[1])
			}
			assets := site.NewDirAssets(app.FS, args[0], app.Site)
			current, _, err := assets.ReadDescription(v.Slug)
			if err != nil {
				return err
			}
			scratch, err := editor.PathForSlug(v.Slug)
			if err != nil {
				return err
			}
			defer func() { _ = os.Remove(scratch) }()

			initial := editor.ComposeDescription(v.Name, v.Slug, v.ShortDescription, current)
			out, changed, err := editor.OpenAt(cmd.Context(), scratch, []byte(initial))
			if err != nil {
				return fmt.Errorf("editor: %w", err)
			}
			text := editor.ParseEditedDescription(string(out))
			if !changed || text == current {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No changes.")
				return nil
			}

			path := assets.DescriptionPath(v.Slug)
			if err := app.FS.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return err
			}
			if text != "" {
				text += "\n"
			}
			if err := afero.WriteFile(app.FS, path, []byte(text), 0o644); err != nil {
				return err
			}
			app.Log.Infow("updated description", "vendor", v.Slug, "path", path)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Updated %s\n", path)
			return nil
		},
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) < 2 {
				return nil, cobra.ShellCompDirectiveDefault
			}
			if len(args) > 2 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			r, err := loadRoster(getApp(cmd), args[1])
			if err != nil {
				return nil, cobra.ShellCompDirectiveError
			}
			slugs := make([]string, 0, len(r.Vendors))
			for _, v := range r.Vendors {
				slugs = append(slugs, v.Slug)
			}
			return util.ScoreCompletions(toComplete, slugs, 20), cobra.ShellCompDirectiveNoFileComp
		},
	}
	return cmd
}
