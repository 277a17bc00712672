package commands

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.trai.ch/zerr"

	"go.trai.ch/cssinjs/internal/app"
	"go.trai.ch/cssinjs/internal/core/domain"
	"go.trai.ch/cssinjs/internal/ui/style"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build [stylefile]",
		Short: "Register every component and print the extracted styles",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			output, _ := cmd.Flags().GetString("output")
			force, _ := cmd.Flags().GetBool("force")

			var buf bytes.Buffer
			res, err := c.app.Build(cmd.Context(), &buf, app.BuildOptions{
				Stylefile: stylefileArg(args),
				Format:    domain.OutputFormat(format),
				Force:     force,
			})
			if err != nil {
				return err
			}

			if output == "" {
				_, err = cmd.OutOrStdout().Write(buf.Bytes())
				return err
			}
			if err := os.WriteFile(output, buf.Bytes(), domain.FilePerm); err != nil {
				return zerr.With(zerr.Wrap(err, domain.ErrOutputWriteFailed.Error()), "path", output)
			}

			detail := output
			if res.Cached {
				detail += " (cached)"
			}
			_, _ = fmt.Fprintln(cmd.ErrOrStderr(), style.Summary(fmt.Sprintf("%d styles", len(res.Styles)), detail))
			return nil
		},
	}
	cmd.Flags().StringP("format", "F", string(domain.FormatCSS), "Output format: css, html or document")
	cmd.Flags().StringP("output", "o", "", "Write the output to a file instead of stdout")
	cmd.Flags().BoolP("force", "f", false, "Ignore the snapshot store and rebuild")
	return cmd
}
