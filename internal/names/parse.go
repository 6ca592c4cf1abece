package names

import (
	"strings"
	"unicode"
)

// ExcludedMarker is the token that disqualifies a name outright.
const ExcludedMarker = "UNCLASSIFIED"

// pageNumberSuffixes are the trailing tokens stripped as stray page numbers.
var pageNumberSuffixes = []string{" 1", " 2", " 3"}

// IsCandidate reports whether a trimmed line starts with a numbered-list
// marker such as "12." or "1,234.".
//
// The text before the first "." (the whole line when there is no ".") must
// be non-empty and consist only of decimal digits after every "," is
// removed.
func IsCandidate(line string) bool {
	marker, _, _ := strings.Cut(line, ".")
	marker = strings.ReplaceAll(marker, ",", "")
	if marker == "" {
		return false
	}
	for _, r := range marker {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// ParseLine extracts the cleaned name from a single line of recognized text.
//
// It returns false when the line is blank, is not a candidate, has nothing
// after the marker, or cleans down to an empty string. Deduplication and the
// UNCLASSIFIED check are list-level concerns handled by List.Add.
func ParseLine(line string) (string, bool) {
	line = strings.TrimSpace(line)
	if line == "" || !IsCandidate(line) {
		return "", false
	}

	_, rest, found := strings.Cut(line, ".")
	if !found {
		return "", false
	}

	name := stripPageNumber(strings.TrimSpace(rest))
	if name == "" {
		return "", false
	}
	return name, true
}

// stripPageNumber drops the last space-delimited token when the name ends in
// one of the page number suffixes.
func stripPageNumber(name string) string {
	for _, suffix := range pageNumberSuffixes {
		if strings.HasSuffix(name, suffix) {
			name = name[:strings.LastIndex(name, " ")]
			return strings.TrimSpace(name)
		}
	}
	return name
}

// Parse runs the list-line heuristic over one block of text and returns the
// names it contributes, in order of first appearance.
func Parse(text string) []string {
	list := NewList()
	list.AddText(text)
	return list.Names()
}
