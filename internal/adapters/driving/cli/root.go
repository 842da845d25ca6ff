// Package cli provides the cobra command tree for bookscan.
//
// Commands talk to driving ports held in package variables. Execute fills
// them from a ServiceFactory once the global flags are parsed; tests assign
// them directly.
package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/bookscan/internal/core/ports/driving"
	"github.com/custodia-labs/bookscan/internal/logger"
)

// version is overridden at build time via SetVersion.
var version = "dev"

// Global flags.
var (
	verbose   bool
	configDir string
	dbDir     string
)

// Services used by the commands.
var (
	conversionService driving.ConversionService
	runService        driving.RunService
	settingsService   driving.SettingsService
)

var (
	factory       ServiceFactory
	closeServices func() error
)

// StoreMode tells the factory whether a command needs the run store.
type StoreMode int

const (
	// StoreNone never opens the run store.
	StoreNone StoreMode = iota

	// StoreIfConfigured opens the run store when --db or storage.dir is set.
	StoreIfConfigured

	// StoreRequired always opens the run store, at the default location if
	// nothing else is configured.
	StoreRequired
)

// storeAnnotation marks commands that use the run store.
const storeAnnotation = "bookscan.store"

// Options are the global flag values handed to the factory.
type Options struct {
	ConfigDir string
	DBDir     string
	Store     StoreMode
}

// Services are the driving ports built for one invocation.
type Services struct {
	Conversion driving.ConversionService
	Runs       driving.RunService
	Settings   driving.SettingsService

	// Close releases resources such as the database. May be nil.
	Close func() error
}

// ServiceFactory builds the services from the global flags.
type ServiceFactory func(opts Options) (*Services, error)

var rootCmd = &cobra.Command{
	Use:   "bookscan",
	Short: "Convert a novel transcription into structured JSON",
	Long: `bookscan splits a plain-text transcription of War and Peace into header,
body and footer, infers its books, chapters and paragraphs from blank-line
runs and heading keywords, tokenizes every sentence into words and writes
the result as nested JSON.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupServices,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print scanner progress to stderr")
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "", "config directory (default ~/.bookscan)")
	rootCmd.PersistentFlags().StringVar(&dbDir, "db", "", "run database directory (default ~/.bookscan/data)")
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command with services from f.
func Execute(ctx context.Context, f ServiceFactory) error {
	factory = f
	defer func() {
		factory = nil
	}()

	err := rootCmd.ExecuteContext(ctx)
	if closeServices != nil {
		err = errors.Join(err, closeServices())
		closeServices = nil
	}
	return err
}

func setupServices(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)
	if factory == nil {
		return nil
	}

	svc, err := factory(Options{
		ConfigDir: configDir,
		DBDir:     dbDir,
		Store:     storeMode(cmd),
	})
	if err != nil {
		return err
	}

	conversionService = svc.Conversion
	runService = svc.Runs
	settingsService = svc.Settings
	closeServices = svc.Close
	return nil
}

func storeMode(cmd *cobra.Command) StoreMode {
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Annotations[storeAnnotation] {
		case "required":
			return StoreRequired
		case "optional":
			return StoreIfConfigured
		}
	}
	return StoreNone
}
