package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mithrel/fairgen/internal/config"
	"github.com/mithrel/fairgen/internal/wire"
)

type ctxKey string

const appKey ctxKey = "app"

const siteAnnotation = "fairgen/site"

// needsSite marks commands that read the site settings; only those fail on
// an invalid site configuration.
var needsSite = map[string]string{siteAnnotation: "required"}

// Execute is the entrypoint: it builds the root cobra.Command
// and calls its Execute() method to run the CLI.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd constructs the Cobra root command and wires dependencies.
func NewRootCmd() *cobra.Command {
	var (
		cfgPath  string
		logLevel string
	)

	cmd := &cobra.Command{
		Use:           "fairgen",
		Short:         "fairgen — craft fair roster and static site builder",
		SilenceUsage:  true, // don't show usage on runtime errors
		SilenceErrors: true, // let main print errors once
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			v := viper.New()
			if cfgPath != "" {
				v.SetConfigFile(cfgPath)
			}
			if err := config.Load(cmd.Context(), v); err != nil {
				return err
			}
			if logLevel != "" {
				v.Set("log_level", logLevel)
			}
			// Logs share the error stream so stdout stays clean for JSON/HTML.
			app, err := wire.BuildApp(cmd.Context(), v, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if cmd.Annotations[siteAnnotation] != "" {
				if err := app.LoadSite(); err != nil {
					return err
				}
			}
			ctx := context.WithValue(cmd.Context(), appKey, app)
			cmd.SetContext(ctx)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file (toml|yaml)")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override log_level: debug|info|warn|error")

	cmd.AddCommand(newParseCmd())
	cmd.AddCommand(newRenderCmd())
	cmd.AddCommand(newBuildCmd())
	cmd.AddCommand(newScaffoldCmd())
	cmd.AddCommand(newDescribeCmd())
	cmd.AddCommand(newShowCmd())
	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newConfigCmd())
	cmd.AddCommand(newCompletionCmd())

	cmd.Run = func(cmd *cobra.Command, args []string) { _ = cmd.Help() }

	return cmd
}

func getApp(cmd *cobra.Command) *wire.App {
	v := cmd.Context().Value(appKey)
	if v == nil {
		fmt.Fprintln(os.Stderr, "internal error: app not initialized")
		os.Exit(1)
	}
	return v.(*wire.App)
}
