package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ElderResearch/go-pdfbox/pkg/pdfbox"
)

var extractOpts pdfbox.ExtractTextOptions

func newExtractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract <input.pdf> [output.txt]",
		Short: "Extract text from a PDF",
		Long: "Extract text from a PDF. Without an output file the text is " +
			"written to stdout.",
		Args: cobra.RangeArgs(1, 2),
		RunE: runExtract,
	}

	cmd.Flags().StringVar(&extractOpts.Password, "password", "", "PDF password")
	cmd.Flags().StringVar(&extractOpts.Encoding, "encoding", "", "Output text encoding")
	cmd.Flags().BoolVar(&extractOpts.HTML, "html", false, "Extract as HTML")
	cmd.Flags().BoolVar(&extractOpts.Sort, "sort", false, "Sort text before output")
	cmd.Flags().BoolVar(&extractOpts.IgnoreBeads, "ignore-beads", false, "Ignore separation by beads")
	cmd.Flags().IntVar(&extractOpts.StartPage, "start-page", 0, "First page to extract (1-based)")
	cmd.Flags().IntVar(&extractOpts.EndPage, "end-page", 0, "Last page to extract (1-based)")
	cmd.Flags().BoolVar(&extractOpts.AlwaysNext, "always-next", false, "Continue after per-page errors")

	return cmd
}

func runExtract(cmd *cobra.Command, args []string) error {
	box, err := newFacade(cmd.Context(), false)
	if err != nil {
		return err
	}

	output := ""
	if len(args) == 2 {
		output = args[1]
	}

	text, proc, err := box.ExtractText(cmd.Context(), args[0], output, extractOpts)
	if err != nil {
		return err
	}
	if output == "" {
		fmt.Fprint(cmd.OutOrStdout(), text)
		return nil
	}
	return proc.Wait()
}
