package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/bookscan/internal/core/domain"
)

var statsCmd = &cobra.Command{
	Use:   "stats <body>",
	Short: "Summarise the structure of a body file",
	Long: `Scans a body file and prints how many books, chapters, paragraphs,
sentences and words it holds, with a breakdown per book.`,
	Args: cobra.ExactArgs(1),
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	if conversionService == nil {
		return errors.New("conversion service not configured")
	}

	idx, err := conversionService.Parse(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("stats failed: %w", err)
	}

	cmd.Print(renderStats(NewStyles(cmd.OutOrStdout(), nil), args[0], idx))
	return nil
}

// renderStats formats the totals and per-book table of idx.
func renderStats(s *Styles, name string, idx *domain.Index) string {
	var b strings.Builder
	st := idx.Stats()

	b.WriteString(s.Title.Render(name))
	b.WriteString("\n\n")
	for _, row := range []struct {
		label string
		value int
	}{
		{"Books", st.Books},
		{"Chapters", st.Chapters},
		{"Paragraphs", st.Paragraphs},
		{"Sentences", st.Sentences},
		{"Words", st.Words},
	} {
		b.WriteString(s.Label.Render(row.label))
		b.WriteString(s.Value.Render(strconv.Itoa(row.value)))
		b.WriteString("\n")
	}

	if len(idx.Books) == 0 {
		return b.String()
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(s.Border).
		Headers("Book", "Year", "Chapters", "Paragraphs", "Sentences", "Words")
	for _, book := range idx.Books {
		sub := domain.Index{Books: []*domain.Book{book}}
		bs := sub.Stats()
		t.Row(
			strconv.Itoa(book.Number),
			book.Year.String(),
			strconv.Itoa(bs.Chapters),
			strconv.Itoa(bs.Paragraphs),
			strconv.Itoa(bs.Sentences),
			strconv.Itoa(bs.Words),
		)
	}

	b.WriteString("\n")
	b.WriteString(t.Render())
	b.WriteString("\n")
	return b.String()
}
