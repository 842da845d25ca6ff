// Package file provides file-based implementations of driven port interfaces.
//
// ConfigStore keeps bookscan settings in a TOML file, by default
// ~/.bookscan/config.toml. Nested tables are exposed as dot-notation keys:
//
//	[scanner]
//	book_blank_run = 5
//
// is read back as "scanner.book_blank_run".
package file
