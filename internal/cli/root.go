package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ElderResearch/go-pdfbox/internal/logx"
)

var (
	configPath string
	verbose    bool
)

// Execute runs the root cobra command.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pdfbox",
		Short: "Apache PDFBox command-line wrapper",
		Long: "pdfbox wraps the Apache PDFBox app jar: it resolves a local copy " +
			"(downloading and verifying the latest release when needed) and runs " +
			"its subcommands.",
		SilenceUsage: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return logx.Init(verbose)
		},
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to pdfbox.yaml")
	cmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging, including command lines")

	cmd.AddCommand(newExtractCmd())
	cmd.AddCommand(newSplitCmd())
	cmd.AddCommand(newMergeCmd())
	cmd.AddCommand(newImagesCmd())
	cmd.AddCommand(newDebugCmd())
	cmd.AddCommand(newJarCmd())

	return cmd
}
