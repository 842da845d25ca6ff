package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var runsCmd = &cobra.Command{
	Use:         "runs",
	Short:       "Manage stored conversion runs",
	Long:        `Lists, exports and deletes conversions stored with convert --db.`,
	Annotations: map[string]string{storeAnnotation: "required"},
	RunE:        runRunsList,
}

var runsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored runs, newest first",
	RunE:  runRunsList,
}

var runsExportCmd = &cobra.Command{
	Use:   "export <run-id> <output>",
	Short: "Write a stored run as JSON",
	Args:  cobra.ExactArgs(2),
	RunE:  runRunsExport,
}

var runsDeleteCmd = &cobra.Command{
	Use:   "delete <run-id>",
	Short: "Delete a stored run",
	Args:  cobra.ExactArgs(1),
	RunE:  runRunsDelete,
}

func init() {
	runsCmd.AddCommand(runsListCmd)
	runsCmd.AddCommand(runsExportCmd)
	runsCmd.AddCommand(runsDeleteCmd)
	rootCmd.AddCommand(runsCmd)
}

func runRunsList(cmd *cobra.Command, _ []string) error {
	if runService == nil {
		return errors.New("run service not configured")
	}

	runs, err := runService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	if len(runs) == 0 {
		cmd.Println("No stored runs.")
		return nil
	}

	for _, run := range runs {
		cmd.Printf("%s  %s  %-20s  %d books, %d sentences, %d words\n",
			run.ID, run.CreatedAt.Local().Format("2006-01-02 15:04"), run.Name,
			run.Stats.Books, run.Stats.Sentences, run.Stats.Words)
	}
	return nil
}

func runRunsExport(cmd *cobra.Command, args []string) error {
	if runService == nil {
		return errors.New("run service not configured")
	}
	if conversionService == nil {
		return errors.New("conversion service not configured")
	}

	ctx := cmd.Context()
	idx, err := runService.Get(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to load run %s: %w", args[0], err)
	}

	if err := conversionService.Export(ctx, idx, args[1]); err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	cmd.Printf("Run %s written to %s\n", args[0], args[1])
	return nil
}

func runRunsDelete(cmd *cobra.Command, args []string) error {
	if runService == nil {
		return errors.New("run service not configured")
	}

	if err := runService.Delete(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("failed to delete run %s: %w", args[0], err)
	}

	cmd.Printf("Run %s deleted.\n", args[0])
	return nil
}
