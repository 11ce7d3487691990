package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/screenpilot/screenpilot-cli/internal/fixture"
	"github.com/screenpilot/screenpilot-cli/internal/snapshot"
	"github.com/screenpilot/screenpilot-cli/internal/surface"
)

var snapshotPageFile string

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Build a page, take a semantic snapshot and print the flat item sequence as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadPage(snapshotPageFile)
		if err != nil {
			return err
		}
		snap := snapshot.NewBuilder().Build(doc)
		out, err := json.MarshalIndent(snap.Items, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding snapshot: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}

// loadPage returns the YAML-defined page when a file is given, or the
// built-in storefront fixture.
func loadPage(path string) (*surface.Document, error) {
	if path == "" {
		return fixture.Storefront(), nil
	}
	return surface.LoadPageFile(path)
}

func init() {
	snapshotCmd.Flags().StringVar(&snapshotPageFile, "page", "", "YAML page definition (default: built-in storefront)")
	rootCmd.AddCommand(snapshotCmd)
}
