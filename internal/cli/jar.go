package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var jarJSON bool

func newJarCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jar",
		Short: "Manage the cached PDFBox app jar",
	}

	cmd.PersistentFlags().BoolVar(&jarJSON, "json", false, "Output machine-readable JSON")

	cmd.AddCommand(newJarPathCmd())
	cmd.AddCommand(newJarInstallCmd())

	return cmd
}

func newJarPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Resolve and print the jar and java paths",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runJarResolve(cmd, false)
		},
	}
}

func newJarInstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "install",
		Short: "Download and verify the latest release, replacing any cached copy",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runJarResolve(cmd, true)
		},
	}
}

func runJarResolve(cmd *cobra.Command, force bool) error {
	box, err := newFacade(cmd.Context(), force)
	if err != nil {
		return err
	}

	if jarJSON {
		data, err := json.MarshalIndent(map[string]string{
			"jar":  box.JarPath(),
			"java": box.JavaPath(),
		}, "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Printf("jar:  %s\n", box.JarPath())
	cmd.Printf("java: %s\n", box.JavaPath())
	return nil
}
