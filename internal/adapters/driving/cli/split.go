package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var splitCmd = &cobra.Command{
	Use:   "split <input> <body>",
	Short: "Extract the body of a transcription",
	Long: `Splits the transcription into header, body and footer at the first two
runs of ten blank lines and writes the body to the given file.`,
	Args: cobra.ExactArgs(2),
	RunE: runSplit,
}

func init() {
	rootCmd.AddCommand(splitCmd)
}

func runSplit(cmd *cobra.Command, args []string) error {
	if conversionService == nil {
		return errors.New("conversion service not configured")
	}

	regions, err := conversionService.Split(cmd.Context(), args[0], args[1])
	if err != nil {
		return fmt.Errorf("split failed: %w", err)
	}

	cmd.Printf("Header: %d lines\n", regions.Header.Len())
	cmd.Printf("Body:   %d lines (lines %d-%d)\n", regions.Body.Len(), regions.Body.Start+1, regions.Body.End)
	cmd.Printf("Footer: %d lines\n", regions.Footer.Len())
	cmd.Printf("Body written to %s\n", args[1])
	return nil
}
