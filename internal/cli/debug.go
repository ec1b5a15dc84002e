package cli

import (
	"github.com/spf13/cobra"

	"github.com/ElderResearch/go-pdfbox/pkg/pdfbox"
)

var debugOpts pdfbox.DebuggerOptions

func newDebugCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "debug <input.pdf>",
		Short: "Open a PDF in the PDFBox structure debugger",
		Args:  cobra.ExactArgs(1),
		RunE:  runDebug,
	}

	cmd.Flags().StringVar(&debugOpts.Password, "password", "", "PDF password")
	cmd.Flags().BoolVar(&debugOpts.ViewStructure, "view-structure", false, "Open the structure view")

	return cmd
}

func runDebug(cmd *cobra.Command, args []string) error {
	box, err := newFacade(cmd.Context(), false)
	if err != nil {
		return err
	}

	// The debugger is a GUI; spawn it and return without waiting.
	proc, err := box.Debugger(cmd.Context(), args[0], debugOpts)
	if err != nil {
		return err
	}
	cmd.Printf("debugger started (pid %d)\n", proc.Pid())
	return nil
}
