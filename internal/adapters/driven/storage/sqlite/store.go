package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/bookscan/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/bookscan/internal/core/domain"
	"github.com/custodia-labs/bookscan/internal/core/ports/driven"
)

// DatabaseFile is the file name of the database inside the data directory.
const DatabaseFile = "index.db"

// Ensure Store implements the interface.
var _ driven.IndexStore = (*Store)(nil)

// Store is a SQLite-backed driven.IndexStore.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store in the specified data directory.
// If dataDir is empty, defaults to ~/.bookscan/data/index.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".bookscan", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, DatabaseFile)

	// foreign_keys is set per connection so cascades hold on every pooled conn.
	db, err := sql.Open("sqlite", dbPath+
		"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// "001_initial.up.sql" -> 1
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}

		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
	}

	return nil
}

// SaveIndex stores idx under run in a single transaction.
// Saving an existing run ID replaces the earlier contents.
func (s *Store) SaveIndex(ctx context.Context, run domain.Run, idx *domain.Index) error {
	if run.ID == "" {
		return fmt.Errorf("%w: run id is required", domain.ErrInvalidInput)
	}
	if idx == nil {
		return fmt.Errorf("%w: nil index", domain.ErrInvalidInput)
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now()
	}
	stats := idx.Stats()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, "DELETE FROM runs WHERE id = ?", run.ID); err != nil {
		return fmt.Errorf("replacing run: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO runs (id, name, books, chapters, paragraphs, sentences, words, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, run.ID, run.Name, stats.Books, stats.Chapters, stats.Paragraphs, stats.Sentences, stats.Words,
		run.CreatedAt.UnixNano()); err != nil {
		return fmt.Errorf("saving run: %w", err)
	}

	bookStmt, err := tx.PrepareContext(ctx, "INSERT INTO books (run_id, number, year) VALUES (?, ?, ?)")
	if err != nil {
		return fmt.Errorf("preparing statement: %w", err)
	}
	defer bookStmt.Close()

	sentenceStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO sentences (run_id, book, chapter, paragraph, number, text)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing statement: %w", err)
	}
	defer sentenceStmt.Close()

	wordStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO words (run_id, book, chapter, paragraph, sentence, position, word)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing statement: %w", err)
	}
	defer wordStmt.Close()

	for _, b := range idx.Books {
		var year sql.NullString
		if !b.Year.IsZero() {
			year = sql.NullString{String: b.Year.String(), Valid: true}
		}
		if _, err := bookStmt.ExecContext(ctx, run.ID, b.Number, year); err != nil {
			return fmt.Errorf("saving book %d: %w", b.Number, err)
		}

		for _, c := range b.Chapters {
			for _, p := range c.Paragraphs {
				for _, sen := range p.Sentences {
					if _, err := sentenceStmt.ExecContext(ctx, run.ID, b.Number, c.Number, p.Number,
						sen.Number, sen.Text); err != nil {
						return fmt.Errorf("saving sentence %d/%d/%d/%d: %w",
							b.Number, c.Number, p.Number, sen.Number, err)
					}
					for i, w := range sen.Words {
						if _, err := wordStmt.ExecContext(ctx, run.ID, b.Number, c.Number, p.Number,
							sen.Number, i+1, w); err != nil {
							return fmt.Errorf("saving word: %w", err)
						}
					}
				}
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// LoadIndex rebuilds the index stored for runID.
func (s *Store) LoadIndex(ctx context.Context, runID string) (*domain.Index, error) {
	if _, err := s.getRun(ctx, runID); err != nil {
		return nil, err
	}

	idx := domain.NewIndex()

	if err := s.loadBooks(ctx, runID, idx); err != nil {
		return nil, err
	}
	if err := s.loadSentences(ctx, runID, idx); err != nil {
		return nil, err
	}
	if err := s.loadWords(ctx, runID, idx); err != nil {
		return nil, err
	}

	return idx, nil
}

func (s *Store) loadBooks(ctx context.Context, runID string, idx *domain.Index) error {
	rows, err := s.db.QueryContext(ctx, "SELECT number, year FROM books WHERE run_id = ? ORDER BY number", runID)
	if err != nil {
		return fmt.Errorf("querying books: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var number int
		var year sql.NullString
		if err := rows.Scan(&number, &year); err != nil {
			return fmt.Errorf("scanning book: %w", err)
		}
		if err := idx.Book(number).SetYear(domain.NewYear(year.String)); err != nil {
			return err
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating books: %w", err)
	}
	return nil
}

func (s *Store) loadSentences(ctx context.Context, runID string, idx *domain.Index) error {
	rows, err := s.db.QueryContext(ctx, `
		SELECT book, chapter, paragraph, number, text
		FROM sentences WHERE run_id = ?
		ORDER BY book, chapter, paragraph, number
	`, runID)
	if err != nil {
		return fmt.Errorf("querying sentences: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var at domain.Coordinate
		var number int
		var text string
		if err := rows.Scan(&at.Book, &at.Chapter, &at.Paragraph, &number, &text); err != nil {
			return fmt.Errorf("scanning sentence: %w", err)
		}
		idx.Paragraph(at).Sentence(number).Text = text
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating sentences: %w", err)
	}
	return nil
}

func (s *Store) loadWords(ctx context.Context, runID string, idx *domain.Index) error {
	rows, err := s.db.QueryContext(ctx, `
		SELECT book, chapter, paragraph, sentence, word
		FROM words WHERE run_id = ?
		ORDER BY book, chapter, paragraph, sentence, position
	`, runID)
	if err != nil {
		return fmt.Errorf("querying words: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var at domain.Coordinate
		var number int
		var word string
		if err := rows.Scan(&at.Book, &at.Chapter, &at.Paragraph, &number, &word); err != nil {
			return fmt.Errorf("scanning word: %w", err)
		}
		sen := idx.Paragraph(at).Sentence(number)
		sen.Words = append(sen.Words, word)
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating words: %w", err)
	}
	return nil
}

// LoadSentence reads one sentence and its words by primary key.
func (s *Store) LoadSentence(ctx context.Context, runID string, at domain.Coordinate, n int) (*domain.StoredSentence, error) {
	if _, err := s.getRun(ctx, runID); err != nil {
		return nil, err
	}

	sen := &domain.StoredSentence{At: at, Number: n}
	var year sql.NullString
	err := s.db.QueryRowContext(ctx, `
		SELECT s.text, b.year
		FROM sentences s
		JOIN books b ON b.run_id = s.run_id AND b.number = s.book
		WHERE s.run_id = ? AND s.book = ? AND s.chapter = ? AND s.paragraph = ? AND s.number = ?
	`, runID, at.Book, at.Chapter, at.Paragraph, n).Scan(&sen.Text, &year)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: sentence %s/%d", domain.ErrNotFound, at, n)
	}
	if err != nil {
		return nil, fmt.Errorf("querying sentence: %w", err)
	}
	sen.Year = domain.NewYear(year.String)

	rows, err := s.db.QueryContext(ctx, `
		SELECT word FROM words
		WHERE run_id = ? AND book = ? AND chapter = ? AND paragraph = ? AND sentence = ?
		ORDER BY position
	`, runID, at.Book, at.Chapter, at.Paragraph, n)
	if err != nil {
		return nil, fmt.Errorf("querying words: %w", err)
	}
	defer rows.Close()

	sen.Words = []string{}
	for rows.Next() {
		var word string
		if err := rows.Scan(&word); err != nil {
			return nil, fmt.Errorf("scanning word: %w", err)
		}
		sen.Words = append(sen.Words, word)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating words: %w", err)
	}
	return sen, nil
}

// ListRuns returns all stored runs, newest first.
func (s *Store) ListRuns(ctx context.Context) ([]domain.Run, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, books, chapters, paragraphs, sentences, words, created_at
		FROM runs ORDER BY created_at DESC, id
	`)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []domain.Run //nolint:prealloc // size unknown from query
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, *run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating runs: %w", err)
	}
	return runs, nil
}

// DeleteRun removes a run with its books, sentences and words.
func (s *Store) DeleteRun(ctx context.Context, runID string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM runs WHERE id = ?", runID)
	if err != nil {
		return fmt.Errorf("deleting run: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting run: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *Store) getRun(ctx context.Context, runID string) (*domain.Run, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, books, chapters, paragraphs, sentences, words, created_at
		FROM runs WHERE id = ?
	`, runID)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return run, err
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (*domain.Run, error) {
	var run domain.Run
	var createdAt int64
	if err := row.Scan(&run.ID, &run.Name, &run.Stats.Books, &run.Stats.Chapters, &run.Stats.Paragraphs,
		&run.Stats.Sentences, &run.Stats.Words, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning run: %w", err)
	}
	run.CreatedAt = time.Unix(0, createdAt)
	return &run, nil
}
