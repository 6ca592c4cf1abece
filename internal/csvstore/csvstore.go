// Package csvstore persists name lists as a single-column CSV file.
//
// The file is the only state shared between the extractor and the viewer:
// a header row "Name" followed by one row per name, UTF-8, comma-delimited.
package csvstore

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// DefaultFileName is the output file name used when none is configured.
// It is resolved against the working directory.
const DefaultFileName = "extracted_list.csv"

// Header is the single column heading written as the first row.
const Header = "Name"

// ErrNotFound is returned by Read when the CSV file does not exist.
var ErrNotFound = errors.New("csv file not found")

// Write stores names at path, replacing any existing file.
//
// The rows are written to a temporary file in the same directory which is
// then renamed over path, so a failure never leaves a truncated list behind.
func Write(path string, names []string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+"-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if err := Encode(tmp, names); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// Encode writes the header and one row per name to w.
func Encode(w io.Writer, names []string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{Header}); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, name := range names {
		if err := cw.Write([]string{name}); err != nil {
			return fmt.Errorf("failed to write row %q: %w", name, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}
	return nil
}

// Read loads the names stored at path.
//
// The first row is taken as the header and skipped. Blank rows are ignored
// and only the first column of each row is returned. A missing file yields
// an error that matches ErrNotFound.
func Read(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to open csv: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode parses CSV rows from r as written by Encode.
func Decode(r io.Reader) ([]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	if _, err := cr.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	names := make([]string, 0)
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row: %w", err)
		}
		if len(row) == 0 || (len(row) == 1 && row[0] == "") {
			continue
		}
		names = append(names, row[0])
	}
	return names, nil
}
