// Package names turns recognized text into an ordered, deduplicated list of
// names and filters such lists.
//
// # Candidate Lines
//
// OCR output of a printed numbered list looks like:
//
//  1. Alice Smith
//  2. Bob Jones 2
//     1,204. Carol White
//
// A line is treated as a list item only when the text before its first "."
// is made of decimal digits once thousands separators (",") are removed.
// Everything else (running text, headers, page furniture, recognition
// garbage) is ignored.
//
// # Cleanup Rules
//
// The text after the marker is trimmed. When it ends in " 1", " 2" or " 3"
// the trailing token is treated as a page number that OCR glued onto the
// line and is dropped. Only those three suffixes are recognized.
//
// Names containing the marker token "UNCLASSIFIED" are never kept, and the
// first occurrence of a name wins; later duplicates are dropped silently.
//
// # Filtering
//
// Filter performs a case-insensitive substring match and preserves the
// order of the underlying list. It holds no state and can be re-run on
// every keystroke.
package names
