package importer

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ErrUnsupportedFormat is returned for files that are neither .xlsx nor .json.
var ErrUnsupportedFormat = errors.New("unsupported format")

// Read parses rows from a file, choosing the reader by extension.
func Read(name string, r io.Reader) ([]RawRow, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xlsx":
		return ReadXLSX(r)
	case ".json":
		return ReadJSON(r)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, name)
}

// ReadXLSX reads the first sheet. The first row names the columns; headers
// are lowercased with spaces turned into underscores. Blank rows are skipped.
func ReadXLSX(r io.Reader) ([]RawRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("reading sheet %s: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return []RawRow{}, nil
	}

	header := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		header[i] = columnKey(h)
	}

	out := make([]RawRow, 0, len(rows)-1)
	for _, cells := range rows[1:] {
		row := make(RawRow, len(header))
		blank := true
		for i, c := range cells {
			if i >= len(header) || header[i] == "" {
				continue
			}
			if strings.TrimSpace(c) != "" {
				blank = false
			}
			row[header[i]] = c
		}
		if !blank {
			out = append(out, row)
		}
	}
	return out, nil
}

// ReadJSON accepts either an array of rows or an object with an "items"
// array, such as a backup file.
func ReadJSON(r io.Reader) ([]RawRow, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading json: %w", err)
	}
	data = bytes.TrimSpace(data)

	var rows []RawRow
	if len(data) > 0 && data[0] == '[' {
		if err := json.Unmarshal(data, &rows); err != nil {
			return nil, fmt.Errorf("decoding rows: %w", err)
		}
	} else {
		var doc struct {
			Items []RawRow `json:"items"`
		}
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("decoding document: %w", err)
		}
		rows = doc.Items
	}
	if rows == nil {
		rows = []RawRow{}
	}
	return rows, nil
}

func columnKey(h string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(h)), " ", "_")
}
