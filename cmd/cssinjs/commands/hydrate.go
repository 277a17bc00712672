package commands

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.trai.ch/zerr"

	"go.trai.ch/cssinjs/internal/core/domain"
	"go.trai.ch/cssinjs/internal/ui/style"
)

func (c *CLI) newHydrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hydrate [document]",
		Short: "Adopt the server-rendered styles of an HTML document and drop duplicates",
		Long: "Reads an HTML document from a file or stdin, moves its server-rendered styles into the head, " +
			"removes duplicated styles and prints the result.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output, _ := cmd.Flags().GetString("output")

			var in io.Reader = cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return zerr.With(zerr.Wrap(err, domain.ErrDocumentParseFailed.Error()), "path", args[0])
				}
				defer func() { _ = f.Close() }()
				in = f
			}

			var buf bytes.Buffer
			res, err := c.app.Hydrate(cmd.Context(), in, &buf)
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
			_, _ = fmt.Fprintln(cmd.ErrOrStderr(), style.Summary(fmt.Sprintf("%d styles", res.Styles), output))
			return nil
		},
	}
	cmd.Flags().StringP("output", "o", "", "Write the document to a file instead of stdout")
	return cmd
}
