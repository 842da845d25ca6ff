package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse <body> <output>",
	Short: "Convert a body file into structured JSON",
	Long: `Scans a body file produced by split, tokenizes every paragraph and writes
the book, chapter, paragraph, sentence and word tree as JSON.`,
	Args: cobra.ExactArgs(2),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	if conversionService == nil {
		return errors.New("conversion service not configured")
	}

	ctx := cmd.Context()
	idx, err := conversionService.Parse(ctx, args[0])
	if err != nil {
		return fmt.Errorf("parse failed: %w", err)
	}

	if err := conversionService.Export(ctx, idx, args[1]); err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	st := idx.Stats()
	cmd.Printf("Wrote %d books, %d chapters, %d paragraphs to %s\n", st.Books, st.Chapters, st.Paragraphs, args[1])
	return nil
}
