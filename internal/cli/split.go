package cli

import (
	"github.com/spf13/cobra"

	"github.com/ElderResearch/go-pdfbox/pkg/pdfbox"
)

var splitOpts pdfbox.SplitOptions

func newSplitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "split <input.pdf>",
		Short: "Split a PDF into separate documents",
		Args:  cobra.ExactArgs(1),
		RunE:  runSplit,
	}

	cmd.Flags().StringVar(&splitOpts.Password, "password", "", "PDF password")
	cmd.Flags().IntVar(&splitOpts.StartPage, "start-page", 0, "First page of the range to split")
	cmd.Flags().IntVar(&splitOpts.EndPage, "end-page", 0, "Last page of the range to split")
	cmd.Flags().IntVar(&splitOpts.Split, "split", 0, "Pages per output document (default one)")

	return cmd
}

func runSplit(cmd *cobra.Command, args []string) error {
	box, err := newFacade(cmd.Context(), false)
	if err != nil {
		return err
	}

	proc, err := box.Split(cmd.Context(), args[0], splitOpts)
	if err != nil {
		return err
	}
	return proc.Wait()
}
