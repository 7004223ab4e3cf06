package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mithrel/fairgen/internal/present"
	"github.com/mithrel/fairgen/internal/present/format"
	"github.com/mithrel/fairgen/internal/site"
	"github.com/mithrel/fairgen/internal/util"
	"github.com/mithrel/fairgen/pkg/api"
)

func newShowCmd() *cobra.Command {
	var (
		output  string
		indent  bool
		headers bool
	)
	var style string
	cmd := &cobra.Command{
		Use:   "show <roster.json> <slug>",
		Short: "Show one vendor or date from a roster",
		Args:  exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, ok := present.ParseMode(output)
			if !ok {
				return usageError(cmd, fmt.Sprintf("unknown --output %q (want plain|pretty|json|ndjson)", output))
			}
			app := getApp(cmd)
			r, err := loadRoster(app, args[0])
			if err != nil {
				return err
			}
			opts := present.Options{Mode: mode, JSONIndent: indent, Headers: headers, Style: style}
			slug := args[1]
			if v, ok := r.Vendor(slug); ok {
				return withPager(cmd, func(w io.Writer) error {
					return present.RenderVendor(w, v, opts)
				})
			}
			if d, ok := r.Dates.Get(slug); ok {
				return withPager(cmd, func(w io.Writer) error {
					return present.RenderDate(w, d, opts)
				})
			}
			if hint := util.ScoreCompletions(slug, rosterSlugs(r), 3); len(hint) > 0 {
				return fmt.Errorf("no vendor or date %q in %s (did you mean %s?)", slug, args[0], strings.Join(hint, ", "))
			}
			return fmt.Errorf("no vendor or date %q in %s", slug, args[0])
		},
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) == 0 {
				return nil, cobra.ShellCompDirectiveDefault
			}
			if len(args) > 1 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			r, err := loadRoster(getApp(cmd), args[0])
			if err != nil {
				return nil, cobra.ShellCompDirectiveError
			}
			return util.ScoreCompletions(toComplete, rosterSlugs(r), 20), cobra.ShellCompDirectiveNoFileComp
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "plain", "output format: plain|pretty|json|ndjson")
	cmd.Flags().BoolVar(&indent, "indent", true, "indent JSON output")
	cmd.Flags().BoolVar(&headers, "headers", true, "print column headers in plain output")
	cmd.Flags().StringVar(&style, "style", format.DefaultStyle, "glamour style for pretty output (dracula, dark, light, notty, ...)")
	return cmd
}

func newListCmd() *cobra.Command {
	var (
		output  string
		indent  bool
		headers bool
		sorted  bool
	)
	cmd := &cobra.Command{
		Use:       "list <roster.json> <vendors|dates>",
		Short:     "List the vendors or dates in a roster",
		Args:      exactArgs(2),
		ValidArgs: []string{"vendors", "dates"},
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, ok := present.ParseMode(output)
			if !ok {
				return usageError(cmd, fmt.Sprintf("unknown --output %q (want plain|json|ndjson)", output))
			}
			what := args[1]
			if what != "vendors" && what != "dates" {
				return usageError(cmd, fmt.Sprintf("unknown listing %q (want vendors|dates)", what))
			}
			app := getApp(cmd)
			r, err := loadRoster(app, args[0])
			if err != nil {
				return err
			}
			opts := present.Options{Mode: mode, JSONIndent: indent, Headers: headers}
			return withPager(cmd, func(w io.Writer) error {
				if what == "vendors" {
					vendors := r.Vendors
					if sorted {
						vendors = site.SortedVendors(r)
					}
					return present.RenderVendors(w, vendors, opts)
				}
				dates := r.Dates.Values()
				if sorted {
					dates = site.SortedDates(r)
				}
				return present.RenderDates(w, dates, opts)
			})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "plain", "output format: plain|json|ndjson")
	cmd.Flags().BoolVar(&indent, "indent", false, "indent JSON output")
	cmd.Flags().BoolVar(&headers, "headers", true, "print column headers in plain output")
	cmd.Flags().BoolVar(&sorted, "sorted", false, "sort the way the site does (vendors by name, dates by calendar)")
	return cmd
}

func rosterSlugs(r api.Roster) []string {
	out := make([]string, 0, len(r.Vendors)+r.Dates.Len())
	for _, v := range r.Vendors {
		out = append(out, v.Slug)
	}
	return append(out, r.Dates.Keys()...)
}
