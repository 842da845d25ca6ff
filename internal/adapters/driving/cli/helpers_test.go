package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/custodia-labs/bookscan/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/bookscan/internal/core/domain"
	"github.com/custodia-labs/bookscan/internal/core/ports/driving"
	"github.com/custodia-labs/bookscan/internal/core/services"
)

// mockConversionService implements driving.ConversionService for testing.
type mockConversionService struct {
	regions   domain.Regions
	index     *domain.Index
	result    *driving.ConvertResult
	err       error
	exportErr error

	exported []string
	requests []driving.ConvertRequest
}

func (m *mockConversionService) Split(_ context.Context, _, _ string) (domain.Regions, error) {
	return m.regions, m.err
}

func (m *mockConversionService) Parse(_ context.Context, _ string) (*domain.Index, error) {
	return m.index, m.err
}

func (m *mockConversionService) Export(_ context.Context, _ *domain.Index, outputPath string) error {
	m.exported = append(m.exported, outputPath)
	return m.exportErr
}

func (m *mockConversionService) Convert(_ context.Context, req driving.ConvertRequest) (*driving.ConvertResult, error) {
	m.requests = append(m.requests, req)
	return m.result, m.err
}

// mockRunService implements driving.RunService for testing.
type mockRunService struct {
	runs    []domain.Run
	index   *domain.Index
	err     error
	deleted []string
}

func (m *mockRunService) List(_ context.Context) ([]domain.Run, error) {
	return m.runs, m.err
}

func (m *mockRunService) Get(_ context.Context, _ string) (*domain.Index, error) {
	return m.index, m.err
}

func (m *mockRunService) Sentence(_ context.Context, _ string, at domain.Coordinate, n int) (*domain.StoredSentence, error) {
	return &domain.StoredSentence{At: at, Number: n}, m.err
}

func (m *mockRunService) Delete(_ context.Context, runID string) error {
	m.deleted = append(m.deleted, runID)
	return m.err
}

// setupTestServices installs mocks and restores the previous services on cleanup.
func setupTestServices(t *testing.T, conv *mockConversionService, runs *mockRunService) *memory.ConfigStore {
	t.Helper()

	oldConv, oldRuns, oldSettings := conversionService, runService, settingsService
	store := memory.NewConfigStore()

	conversionService = nil
	if conv != nil {
		conversionService = conv
	}
	runService = nil
	if runs != nil {
		runService = runs
	}
	settingsService = services.NewSettingsService(store)

	t.Cleanup(func() {
		conversionService, runService, settingsService = oldConv, oldRuns, oldSettings
		convertBodyPath = ""
	})
	return store
}

// execute runs the root command with args and returns its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	err := rootCmd.Execute()
	return buf.String(), err
}

// sampleIndex returns a one-book index with two sentences.
func sampleIndex(t *testing.T) *domain.Index {
	t.Helper()
	idx := domain.NewIndex()
	if err := idx.Book(1).SetYear(domain.NewYear("1805")); err != nil {
		t.Fatal(err)
	}
	idx.Paragraph(domain.Coordinate{Book: 1, Chapter: 1, Paragraph: 1}).SetSentences([]domain.SentenceRecord{
		{Text: "Well, Prince.", Words: []string{"well", "prince"}},
		{Text: "What a question!", Words: []string{"what", "a", "question"}},
	})
	return idx
}
