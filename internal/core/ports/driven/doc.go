// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - SentenceSegmenter: Splits paragraph text into sentences (Punkt)
//   - WordSegmenter: Splits a sentence into word-boundary tokens (UAX #29)
//   - Transliterator: Maps accented text to plain ASCII
//   - TokenFilter: Drops or rewrites word tokens after segmentation
//   - StructureScanner: Builds an index from body lines
//   - TreeWriter: Serialises a finished index (JSON)
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - IndexStore: Persists finished indexes (SQLite). Without it, runs are not recorded.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or tokenizer package
package driven
