package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/bookscan/internal/core/ports/driving"
)

var convertBodyPath string

var convertCmd = &cobra.Command{
	Use:   "convert <input> <output>",
	Short: "Split and parse a transcription in one step",
	Long: `Runs split and parse back to back. The body file is written next to the
output unless --body is given. When --db or storage.dir is set, the result
is also stored as a run.`,
	Args:        cobra.ExactArgs(2),
	Annotations: map[string]string{storeAnnotation: "optional"},
	RunE:        runConvert,
}

func init() {
	convertCmd.Flags().StringVar(&convertBodyPath, "body", "", "where to write the body file")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	if conversionService == nil {
		return errors.New("conversion service not configured")
	}

	result, err := conversionService.Convert(cmd.Context(), driving.ConvertRequest{
		InputPath:  args[0],
		BodyPath:   convertBodyPath,
		OutputPath: args[1],
	})
	if err != nil {
		return fmt.Errorf("convert failed: %w", err)
	}

	st := result.Stats
	cmd.Printf("Body written to %s\n", result.BodyPath)
	cmd.Printf("Wrote %d books, %d chapters, %d paragraphs, %d sentences, %d words to %s\n",
		st.Books, st.Chapters, st.Paragraphs, st.Sentences, st.Words, args[1])
	if result.RunID != "" {
		cmd.Printf("Stored as run %s\n", result.RunID)
	}
	return nil
}
