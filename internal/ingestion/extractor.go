package ingestion

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Page is one logical unit of extracted text. Number is the source page
// or row where that distinction exists; plain text files use 0.
type Page struct {
	Text   string
	Number int
}

// ExtractPages reads a document and splits it into logical pages based
// on its file extension.
func ExtractPages(path string) ([]Page, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt":
		return extractPlainText(path)
	case ".md", ".markdown":
		return extractMarkdown(path)
	case ".csv":
		return extractCSV(path)
	default:
		return nil, fmt.Errorf("unsupported document type: %s", filepath.Ext(path))
	}
}

func extractPlainText(path string) ([]Page, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	text := strings.TrimSpace(string(raw))
	if text == "" {
		return nil, nil
	}
	return []Page{{Text: text, Number: 0}}, nil
}

// extractCSV renders each row as "col: val | col: val" lines, one page
// per row. Empty cells are dropped; empty rows are skipped.
func extractCSV(path string) ([]Page, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse csv %s: %w", path, err)
	}
	if len(records) < 2 {
		return nil, nil
	}

	header := make([]string, len(records[0]))
	for i, col := range records[0] {
		header[i] = strings.TrimSpace(col)
	}

	var pages []Page
	for rowIdx, record := range records[1:] {
		var parts []string
		for i, cell := range record {
			if i >= len(header) {
				break
			}
			value := strings.TrimSpace(cell)
			if value == "" {
				continue
			}
			parts = append(parts, header[i]+": "+value)
		}
		line := strings.Join(parts, " | ")
		if line == "" {
			continue
		}
		pages = append(pages, Page{Text: line, Number: rowIdx})
	}
	return pages, nil
}
