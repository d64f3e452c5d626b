// Attach command: bulk-attach catalog indicators to a project.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/impact-mesh/lantern/pkg/attach"
	"github.com/impact-mesh/lantern/pkg/types"
)

var (
	attachBaseline    string
	attachTarget      string
	attachResponsible string
	attachNotes       string
)

var attachCmd = &cobra.Command{
	Use:   "attach <project-id> <indicator-id>...",
	Short: "Attach catalog indicators to a project",
	Long: `Attach adds the given catalog indicators to a project. Indicators
already attached are skipped, never updated. A conflict with a concurrent
attach is reported as a skip, not a failure.

Example:
  lantern attach proj-42 ind-a ind-b ind-c
  lantern attach proj-42 ind-a --baseline 10 --target 80 --responsible "program lead"`,
	Args: cobra.MinimumNArgs(2),
	RunE: runAttach,
}

func init() {
	attachCmd.Flags().StringVar(&attachBaseline, "baseline", "", "baseline value for all attached indicators")
	attachCmd.Flags().StringVar(&attachTarget, "target", "", "target value for all attached indicators")
	attachCmd.Flags().StringVar(&attachResponsible, "responsible", "", "responsible role for all attached indicators")
	attachCmd.Flags().StringVar(&attachNotes, "notes", "", "notes for all attached indicators")
}

func runAttach(cmd *cobra.Command, args []string) error {
	projectID := args[0]
	indicatorIDs := args[1:]

	var defaults *types.AttachDefaults
	if attachBaseline != "" || attachTarget != "" || attachResponsible != "" || attachNotes != "" {
		defaults = &types.AttachDefaults{
			Baseline:    attachBaseline,
			Target:      attachTarget,
			Responsible: attachResponsible,
			Notes:       attachNotes,
		}
	}

	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	svc := attach.NewService(backend)
	result, err := svc.Attach(cmd.Context(), projectID, indicatorIDs, defaults)
	if err != nil {
		// Partial counts are still worth showing on a hard store failure.
		reportAttach(result)
		return fmt.Errorf("attach: %w", err)
	}

	reportAttach(result)
	return nil
}

func reportAttach(result types.AttachResult) {
	if flagJSON {
		_ = printJSON(result)
		return
	}

	fmt.Printf("Attached: %d, skipped: %d\n", result.Inserted, result.Skipped)
	for _, msg := range result.Errors {
		fmt.Println("  error:", msg)
	}
}
