package cli

import (
	"github.com/spf13/cobra"
)

func newMergeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "merge <source.pdf> <source.pdf> [...] <target.pdf>",
		Short: "Merge PDFs into a single document",
		Long:  "Merge two or more source PDFs into the target named by the last argument.",
		Args:  cobra.MinimumNArgs(3),
		RunE:  runMerge,
	}
}

func runMerge(cmd *cobra.Command, args []string) error {
	box, err := newFacade(cmd.Context(), false)
	if err != nil {
		return err
	}

	sources := args[:len(args)-1]
	target := args[len(args)-1]

	proc, err := box.Merge(cmd.Context(), sources, target)
	if err != nil {
		return err
	}
	return proc.Wait()
}
