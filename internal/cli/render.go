package cli

import (
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mithrel/fairgen/internal/render"
)

func newRenderCmd() *cobra.Command {
	var engine string
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render description text from stdin as an HTML fragment",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := engine
			if name == "" {
				name = strings.TrimSpace(getApp(cmd).Cfg.GetString("render.engine"))
			}
			if name == "" || strings.EqualFold(name, render.EngineMarkdownish) {
				return render.Markdownish(cmd.InOrStdin(), cmd.OutOrStdout())
			}
			r, err := render.NewRenderer(name)
			if err != nil {
				return usageError(cmd, err.Error())
			}
			in, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return err
			}
			out, err := r.Render(string(in))
			if err != nil {
				return err
			}
			_, err = io.WriteString(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.Flags().StringVar(&engine, "engine", "", "render engine: markdownish|goldmark (default from config)")
	return cmd
}
