// Package sqlite stores converted indexes in a SQLite database.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that
// requires no CGO. Each conversion is stored as a run; its books, sentences and
// word tokens hang off the run and are removed with it.
//
// # Schema
//
// The schema is managed through versioned migrations in the migrations/
// directory. Each migration is a pair of .up.sql and .down.sql files.
//
// # Data Location
//
// By default, the database is stored at ~/.bookscan/data/index.db
package sqlite
