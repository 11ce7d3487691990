package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/screenpilot/screenpilot-cli/internal/automate"
	"github.com/screenpilot/screenpilot-cli/internal/observability"
)

var (
	runPageFile   string
	runScriptFile string
	runPrintFinal bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Execute a scripted sequence of interactions against a page",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := observability.GetLogger()

		doc, err := loadPage(runPageFile)
		if err != nil {
			return err
		}
		script, err := automate.LoadScriptFile(runScriptFile)
		if err != nil {
			return err
		}

		engine := automate.New(doc, cfg, logger, nil)
		engine.Snapshot()

		for i, req := range script.Steps {
			logger.Info("Running step",
				zap.Int("step", i+1),
				zap.String("kind", string(req.Kind)),
			)
			if err := engine.Perform(cmd.Context(), req); err != nil {
				return fmt.Errorf("step %d (%s): %w", i+1, req.Kind, err)
			}
		}

		if runPrintFinal {
			out, err := json.MarshalIndent(engine.Snapshot().Items, "", "  ")
			if err != nil {
				return fmt.Errorf("encoding snapshot: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
		}
		return nil
	},
}

func init() {
	runCmd.Flags().StringVar(&runPageFile, "page", "", "YAML page definition (default: built-in storefront)")
	runCmd.Flags().StringVar(&runScriptFile, "script", "", "YAML interaction script (required)")
	runCmd.Flags().BoolVar(&runPrintFinal, "print-final", false, "print the final snapshot after the script completes")
	_ = runCmd.MarkFlagRequired("script")
	rootCmd.AddCommand(runCmd)
}
