package commands

import (
	"github.com/spf13/cobra"

	"go.trai.ch/cssinjs/internal/app"
	"go.trai.ch/cssinjs/internal/core/domain"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [stylefile]",
		Short: "Rebuild the output file whenever the stylefile changes",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			output, _ := cmd.Flags().GetString("output")
			debounce, _ := cmd.Flags().GetDuration("debounce")

			return c.app.Watch(cmd.Context(), app.WatchOptions{
				Stylefile: stylefileArg(args),
				Output:    output,
				Format:    domain.OutputFormat(format),
				Debounce:  debounce,
			})
		},
	}
	cmd.Flags().StringP("format", "F", string(domain.FormatCSS), "Output format: css, html or document")
	cmd.Flags().StringP("output", "o", "", "File rewritten after every rebuild")
	cmd.Flags().Duration("debounce", 0, "Quiet period before a rebuild (default 50ms)")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}
