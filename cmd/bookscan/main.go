// Command bookscan converts a War and Peace transcription into structured JSON.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/bookscan/internal/adapters/driven/config/file"
	jsonwriter "github.com/custodia-labs/bookscan/internal/adapters/driven/serializer/json"
	"github.com/custodia-labs/bookscan/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/bookscan/internal/adapters/driven/tokenizer/punkt"
	"github.com/custodia-labs/bookscan/internal/adapters/driven/tokenizer/uax29"
	"github.com/custodia-labs/bookscan/internal/adapters/driven/transliterate/ascii"
	"github.com/custodia-labs/bookscan/internal/adapters/driving/cli"
	"github.com/custodia-labs/bookscan/internal/core/domain"
	"github.com/custodia-labs/bookscan/internal/core/ports/driven"
	"github.com/custodia-labs/bookscan/internal/core/ports/driving"
	"github.com/custodia-labs/bookscan/internal/core/services"
	"github.com/custodia-labs/bookscan/internal/logger"
	"github.com/custodia-labs/bookscan/internal/postprocessors"
	"github.com/custodia-labs/bookscan/internal/scanner"
	"github.com/custodia-labs/bookscan/internal/tokenizer"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	cli.SetVersion(version)
	err := cli.Execute(ctx, buildServices)
	stop()
	if err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}
}

// buildServices wires the adapters for one invocation.
func buildServices(opts cli.Options) (*cli.Services, error) {
	configStore, err := file.NewConfigStore(opts.ConfigDir)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	settingsService := services.NewSettingsService(configStore)

	indexStore, closeStore, err := openIndexStore(opts, configStore.GetString(services.KeyStorageDir))
	if err != nil {
		return nil, err
	}

	svc := &cli.Services{
		Runs:     services.NewRunService(indexStore),
		Settings: settingsService,
		Close:    closeStore,
	}

	settings, err := settingsService.Get()
	if err != nil {
		// Runs and settings stay usable so the value can be fixed.
		logger.Warn("settings rejected: %v", err)
		svc.Conversion = unavailableConversion{err: err}
		return svc, nil
	}

	parts, err := newConversionParts(settings, settingsService.FilterConfig())
	if err != nil {
		if closeStore != nil {
			_ = closeStore()
		}
		return nil, err
	}

	convOpts := []services.ConversionOption{
		services.WithHeaderBlankRun(settings.Thresholds.HeaderBlankRun),
	}
	if indexStore != nil {
		convOpts = append(convOpts, services.WithIndexStore(indexStore))
	}
	svc.Conversion = services.NewConversionService(parts.machine, parts.writer, convOpts...)
	return svc, nil
}

// openIndexStore opens the run store when the command needs it. dir falls
// back to storageDir; a nil store and close func mean no store was opened.
func openIndexStore(opts cli.Options, storageDir string) (driven.IndexStore, func() error, error) {
	dir := opts.DBDir
	if dir == "" {
		dir = storageDir
	}
	if opts.Store != cli.StoreRequired && (opts.Store != cli.StoreIfConfigured || dir == "") {
		return nil, nil, nil
	}

	store, err := sqlite.NewStore(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("opening run store: %w", err)
	}
	logger.Debug("run store at %s", store.Path())
	return store, store.Close, nil
}

// conversionParts are the driven adapters behind a ConversionService.
type conversionParts struct {
	machine *scanner.Machine
	writer  *jsonwriter.Writer
}

func newConversionParts(settings *domain.Settings, filterConfig map[string]map[string]any) (*conversionParts, error) {
	registry := postprocessors.NewRegistry()
	postprocessors.RegisterDefaults(registry)
	pipeline, err := registry.BuildPipeline(settings.Filters, filterConfig)
	if err != nil {
		return nil, fmt.Errorf("building token filters: %w", err)
	}
	logger.Debug("token filters: %v", pipeline.Names())

	sentences, err := punkt.New()
	if err != nil {
		return nil, err
	}

	tok := tokenizer.New(sentences, uax29.New(), ascii.New(), pipeline,
		tokenizer.WithTerminalSymbols(settings.PunctuationSymbols))
	return &conversionParts{
		machine: scanner.New(tok, scanner.WithThresholds(settings.Thresholds)),
		writer:  jsonwriter.New(jsonwriter.WithIndent(settings.Indent)),
	}, nil
}

// unavailableConversion reports a configuration error from every operation.
type unavailableConversion struct {
	err error
}

var _ driving.ConversionService = unavailableConversion{}

func (u unavailableConversion) Split(context.Context, string, string) (domain.Regions, error) {
	return domain.Regions{}, u.err
}

func (u unavailableConversion) Parse(context.Context, string) (*domain.Index, error) {
	return nil, u.err
}

func (u unavailableConversion) Export(context.Context, *domain.Index, string) error {
	return u.err
}

func (u unavailableConversion) Convert(context.Context, driving.ConvertRequest) (*driving.ConvertResult, error) {
	return nil, u.err
}
