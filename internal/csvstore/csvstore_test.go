package csvstore

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite_Format(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)

	require.NoError(t, Write(path, []string{"Alice", "Bob Jones"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Name\nAlice\nBob Jones\n", string(data))
}

func TestWrite_QuotesOnlyWhenNeeded(t *testing.T) {
	path := filepath.Join(t.TempDir(), "list.csv")

	require.NoError(t, Write(path, []string{"Smith, John", `Say "hi"`, "Plain"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Name\n\"Smith, John\"\n\"Say \"\"hi\"\"\"\nPlain\n", string(data))
}

func TestWrite_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "list.csv")
	require.NoError(t, Write(path, []string{"Old", "Older", "Oldest"}))
	require.NoError(t, Write(path, []string{"New"}))

	names, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"New"}, names)
}

func TestWrite_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Write(filepath.Join(dir, "list.csv"), []string{"A"}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "list.csv", entries[0].Name())
}

func TestWrite_MissingDirectory(t *testing.T) {
	err := Write(filepath.Join(t.TempDir(), "missing", "list.csv"), []string{"A"})
	assert.Error(t, err)
}

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "list.csv")
	want := []string{"Alice", "Bob, Jr.", "Zoë Ångström", "名前", `Quote "Q"`, "Alice Two"}

	require.NoError(t, Write(path, want))
	got, err := Read(path)
	require.NoError(t, err)

	assert.Equal(t, want, got)
}

func TestRoundTrip_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "list.csv")

	require.NoError(t, Write(path, nil))
	got, err := Read(path)
	require.NoError(t, err)

	assert.Empty(t, got)
}

func TestRead_NotFound(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Contains(t, err.Error(), "nope.csv")
}

func TestDecode_SkipsBlankRowsAndExtraColumns(t *testing.T) {
	input := "Name,Tag\nAlice,Searched\n\nBob\n,\nCarol\n"

	got, err := Decode(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []string{"Alice", "Bob", "", "Carol"}, got)
}

func TestDecode_EmptyFile(t *testing.T) {
	got, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDecode_Malformed(t *testing.T) {
	_, err := Decode(strings.NewReader("Name\n\"unterminated\n"))
	assert.Error(t, err)
}
