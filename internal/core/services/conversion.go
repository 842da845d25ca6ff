package services

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/bookscan/internal/core/domain"
	"github.com/custodia-labs/bookscan/internal/core/ports/driven"
	"github.com/custodia-labs/bookscan/internal/core/ports/driving"
	"github.com/custodia-labs/bookscan/internal/logger"
	"github.com/custodia-labs/bookscan/internal/scanner"
)

// Ensure ConversionService implements the interface.
var _ driving.ConversionService = (*ConversionService)(nil)

// BodySuffix replaces the output extension when no body path is given.
const BodySuffix = ".body.txt"

// ConversionService runs the split, scan and export stages.
type ConversionService struct {
	scanner        driven.StructureScanner
	writer         driven.TreeWriter
	indexStore     driven.IndexStore
	headerBlankRun int
	newID          func() string
	now            func() time.Time
}

// ConversionOption configures a ConversionService.
type ConversionOption func(*ConversionService)

// WithIndexStore stores every converted index as a run.
func WithIndexStore(store driven.IndexStore) ConversionOption {
	return func(s *ConversionService) {
		s.indexStore = store
	}
}

// WithHeaderBlankRun sets the blank-line run that ends header and body.
func WithHeaderBlankRun(n int) ConversionOption {
	return func(s *ConversionService) {
		if n > 0 {
			s.headerBlankRun = n
		}
	}
}

// NewConversionService creates a new conversion service.
// indexStore is optional; without it Convert does not record runs.
func NewConversionService(
	structureScanner driven.StructureScanner,
	writer driven.TreeWriter,
	opts ...ConversionOption,
) *ConversionService {
	s := &ConversionService{
		scanner:        structureScanner,
		writer:         writer,
		headerBlankRun: domain.DefaultHeaderBlankRun,
		newID:          uuid.NewString,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Split writes the body region of inputPath to bodyPath.
// The input file is closed before Split returns.
func (s *ConversionService) Split(ctx context.Context, inputPath, bodyPath string) (domain.Regions, error) {
	if err := ctx.Err(); err != nil {
		return domain.Regions{}, err
	}
	defer logger.Stage("split")()

	lines, err := readLines(inputPath)
	if err != nil {
		return domain.Regions{}, err
	}

	regions, err := scanner.Split(lines, s.headerBlankRun)
	if err != nil {
		return domain.Regions{}, fmt.Errorf("splitting %s: %w", inputPath, err)
	}
	logger.Debug("header: %d lines, body: lines %d-%d, footer: %d lines",
		regions.Header.Len(), regions.Body.Start+1, regions.Body.End, regions.Footer.Len())

	body := scanner.Body(lines, regions)
	if err := writeAtomic(bodyPath, func(w io.Writer) error {
		return scanner.WriteLines(w, body)
	}); err != nil {
		return domain.Regions{}, err
	}

	logger.Info("Wrote %d body lines to %s", len(body), bodyPath)
	return regions, nil
}

// Parse scans the body artifact at bodyPath.
func (s *ConversionService) Parse(ctx context.Context, bodyPath string) (*domain.Index, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	defer logger.Stage("parse")()

	lines, err := readLines(bodyPath)
	if err != nil {
		return nil, err
	}

	idx, err := s.scanner.Run(ctx, lines)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", bodyPath, err)
	}

	if logger.IsVerbose() {
		st := idx.Stats()
		logger.Info("Parsed %d books, %d chapters, %d paragraphs, %d sentences",
			st.Books, st.Chapters, st.Paragraphs, st.Sentences)
	}
	return idx, nil
}

// Export writes idx to outputPath. A failed export leaves outputPath untouched.
func (s *ConversionService) Export(ctx context.Context, idx *domain.Index, outputPath string) error {
	if idx == nil {
		return fmt.Errorf("%w: nil index", domain.ErrInvalidInput)
	}
	defer logger.Stage("export")()

	if err := writeAtomic(outputPath, func(w io.Writer) error {
		return s.writer.Write(ctx, idx, w)
	}); err != nil {
		return fmt.Errorf("exporting %s: %w", outputPath, err)
	}

	logger.Info("Wrote %s", outputPath)
	return nil
}

// Convert splits the input, parses the body and exports the index.
func (s *ConversionService) Convert(ctx context.Context, req driving.ConvertRequest) (*driving.ConvertResult, error) {
	if req.InputPath == "" || req.OutputPath == "" {
		return nil, fmt.Errorf("%w: input and output paths are required", domain.ErrInvalidInput)
	}

	bodyPath := req.BodyPath
	if bodyPath == "" {
		bodyPath = BodyPathFor(req.OutputPath)
	}

	regions, err := s.Split(ctx, req.InputPath, bodyPath)
	if err != nil {
		return nil, err
	}

	idx, err := s.Parse(ctx, bodyPath)
	if err != nil {
		return nil, err
	}

	if err := s.Export(ctx, idx, req.OutputPath); err != nil {
		return nil, err
	}

	result := &driving.ConvertResult{
		BodyPath: bodyPath,
		Regions:  regions,
		Stats:    idx.Stats(),
	}

	if s.indexStore != nil {
		run := domain.Run{
			ID:        s.newID(),
			Name:      filepath.Base(req.InputPath),
			Stats:     result.Stats,
			CreatedAt: s.now(),
		}
		if err := s.indexStore.SaveIndex(ctx, run, idx); err != nil {
			return nil, fmt.Errorf("storing run: %w", err)
		}
		logger.Info("Stored run %s", run.ID)
		result.RunID = run.ID
	}

	return result, nil
}

// BodyPathFor derives the body artifact path from an output path.
func BodyPathFor(outputPath string) string {
	return strings.TrimSuffix(outputPath, filepath.Ext(outputPath)) + BodySuffix
}
