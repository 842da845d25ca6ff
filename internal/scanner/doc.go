// Package scanner segments a novel transcription into books, chapters and
// paragraphs.
//
// Scanning happens in two stages:
//
//   - Split divides the full transcription into header, body and footer
//     regions on runs of blank lines.
//   - Machine walks the body line by line through a finite-state machine
//     (Book, Chapter, Paragraph, SentenceSplit, EndOfParagraph) and fills a
//     domain.Index, handing each paragraph to a ParagraphTokenizer.
//
// Both stages work on in-memory line slices through a Cursor so look-ahead
// and rewind never touch the underlying file.
package scanner
