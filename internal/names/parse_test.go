package names

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsCandidate(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"1. Alice", true},
		{"12. Bob", true},
		{"1,234. Carol", true},
		{"12,000. Unrelated text", true},
		{"1,2,3. Odd separators", true},
		{"12", true},
		{"Not a list item", false},
		{". Leading dot", false},
		{",. Only commas", false},
		{"1a. Mixed marker", false},
		{"1 . Space in marker", false},
		{"-1. Negative", false},
		{"١٢. Arabic-Indic digits", true},
		{"². Superscript marker", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, IsCandidate(tt.line))
		})
	}
}

func TestParseLine(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		want   string
		wantOK bool
	}{
		{"simple", "1. Alice", "Alice", true},
		{"surrounding whitespace", "   7.   Bob Jones   ", "Bob Jones", true},
		{"page number 1", "3. Jane Doe 1", "Jane Doe", true},
		{"page number 2", "4. John Roe 2", "John Roe", true},
		{"page number 3", "5. Mary Major 3", "Mary Major", true},
		{"suffix 4 kept", "6. Richard Miles 4", "Richard Miles 4", true},
		{"suffix 12 kept", "6. Richard Miles 12", "Richard Miles 12", true},
		{"glued digit kept", "8. Agent 007", "Agent 007", true},
		{"thousands separator", "12,000. Unrelated text", "Unrelated text", true},
		{"only first dot splits", "9. J. R. Smith", "J. R. Smith", true},
		{"not a candidate", "Not a list item", "", false},
		{"blank", "   ", "", false},
		{"marker only", "12.", "", false},
		{"marker without dot", "12", "", false},
		{"page number only", "4. 1", "1", true},
		{"carriage return", "2. Carol\r", "Carol", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseLine(tt.line)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_DiscardsNonCandidates(t *testing.T) {
	text := strings.Join([]string{
		"MEMBERSHIP ROSTER",
		"Page 4 of 9",
		"1. Alice",
		"Some running text. With a sentence.",
		"  ",
		"2. Bob",
		"UNCLASSIFIED",
		"3. Carol UNCLASSIFIED",
		"x. Dave",
	}, "\n")

	assert.Equal(t, []string{"Alice", "Bob"}, Parse(text))
}

func TestParse_Empty(t *testing.T) {
	assert.Empty(t, Parse(""))
	assert.Empty(t, Parse("no list here\nnor here"))
}

func TestList_Add(t *testing.T) {
	list := NewList()

	require.True(t, list.Add("Alice"))
	assert.False(t, list.Add("Alice"), "duplicate must be rejected")
	assert.True(t, list.Add("alice"), "match is case-sensitive")
	assert.False(t, list.Add(""))
	assert.False(t, list.Add("Bob UNCLASSIFIED"))

	assert.Equal(t, []string{"Alice", "alice"}, list.Names())
	assert.Equal(t, 2, list.Len())
	assert.True(t, list.Contains("Alice"))
	assert.False(t, list.Contains("Bob UNCLASSIFIED"))
}

func TestList_ZeroValue(t *testing.T) {
	var list List
	assert.True(t, list.Add("Alice"))
	assert.Equal(t, []string{"Alice"}, list.Names())
}

func TestList_NamesReturnsCopy(t *testing.T) {
	list := NewList()
	list.Add("Alice")

	names := list.Names()
	names[0] = "Mallory"

	assert.Equal(t, []string{"Alice"}, list.Names())
}

func TestList_AddText_AcrossImages(t *testing.T) {
	list := NewList()

	first := list.AddText("1. Alice\n2. Bob\n")
	second := list.AddText("1. Alice\n2. Carol\n3. Bob 2\n")
	third := list.AddText("nothing useful on this page")

	assert.Equal(t, 2, first)
	assert.Equal(t, 1, second)
	assert.Equal(t, 0, third)
	assert.Equal(t, []string{"Alice", "Bob", "Carol"}, list.Names())
}

func TestList_AddText_SameNameTwoImages(t *testing.T) {
	list := NewList()
	list.AddText("1. Alice")
	list.AddText("1. Alice")

	assert.Equal(t, []string{"Alice"}, list.Names())
}

func TestList_Invariants(t *testing.T) {
	blocks := []string{
		"1. Alice\n2. Bob\n3. UNCLASSIFIED Memo\n4. Alice",
		"10. Bob 1\n11. Dana 3\n12,5. Erin\nfooter 1",
		"1. Dana\n2. Frank UNCLASSIFIED 2\n3. Gail",
	}

	list := NewList()
	for _, block := range blocks {
		list.AddText(block)
	}
	got := list.Names()

	assert.Equal(t, []string{"Alice", "Bob", "Dana", "Erin", "Gail"}, got)

	seen := make(map[string]bool)
	for _, name := range got {
		assert.False(t, seen[name], "duplicate %q", name)
		seen[name] = true
		assert.NotContains(t, name, ExcludedMarker)
		assert.Equal(t, strings.TrimSpace(name), name)
		assert.NotEmpty(t, name)
	}
}
