package cli

import (
	"github.com/spf13/cobra"

	"github.com/mithrel/fairgen/internal/roster"
)

func newParseCmd() *cobra.Command {
	var (
		strict bool
		indent bool
	)
	cmd := &cobra.Command{
		Use:   "parse <csv> <year>",
		Short: "Convert the roster spreadsheet export into roster JSON",
		Long: `Reads the spreadsheet CSV export (eight preamble lines, then a header row)
and prints the roster JSON on stdout. Only rows whose <year> column is set
and whose Company is non-empty are accepted.`,
		Args: exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := parseYear(cmd, args[1])
			if err != nil {
				return err
			}
			app := getApp(cmd)
			r, err := roster.ParseFile(args[0], year, roster.Options{Strict: strict, Logger: app.Log})
			if err != nil {
				return err
			}
			app.Log.Infow("parsed roster",
				"vendors", len(r.Vendors),
				"dates", r.Dates.Len(),
				"fingerprint", r.Fingerprint(),
			)
			return r.Encode(cmd.OutOrStdout(), indent)
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "fail on date headers with an unknown month")
	cmd.Flags().BoolVar(&indent, "indent", false, "indent JSON output")
	return cmd
}
