package storage

import (
	"encoding/csv"
	"log"
	"os"
	"strings"
)

// Keys shorter than this after trimming are export artifacts, not
// product keys.
const minKeyLength = 11

// LoadSteamKeys reads the unassigned key pool. Two formats are
// supported: plain text with one key per line, and CSV/TSV exports
// with a header column whose name contains "key" (falling back to the
// first column, header row included, when no such column exists).
// A missing file yields an empty pool, not an error.
func LoadSteamKeys(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("Warning: key file not found: %s", path)
			return nil, nil
		}
		return nil, err
	}

	content := string(data)
	firstLine, _, _ := strings.Cut(content, "\n")
	if strings.ContainsAny(strings.TrimRight(firstLine, "\r"), ",\t") {
		return parseKeyCSV(firstLine, content)
	}

	var keys []string
	for _, line := range strings.Split(content, "\n") {
		if key := strings.TrimSpace(line); len(key) >= minKeyLength {
			keys = append(keys, key)
		}
	}
	return keys, nil
}

// parseKeyCSV parses the whole file through one csv.Reader, so quoted
// fields with embedded newlines stay intact.
func parseKeyCSV(firstLine, content string) ([]string, error) {
	reader := csv.NewReader(strings.NewReader(content))
	if strings.Contains(firstLine, "\t") && !strings.Contains(firstLine, ",") {
		reader.Comma = '\t'
	}
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}

	header := records[0]
	keyColumn := -1
	for i, col := range header {
		if strings.Contains(strings.ToLower(col), "key") {
			keyColumn = i
			break
		}
	}

	rows := records[1:]
	// Without a recognizable key column, treat every row (header
	// included) as data in the first column.
	if keyColumn < 0 {
		keyColumn = 0
		rows = records
	}

	var keys []string
	for _, row := range rows {
		if keyColumn < len(row) {
			if key := strings.TrimSpace(row[keyColumn]); len(key) >= minKeyLength {
				keys = append(keys, key)
			}
		}
	}
	return keys, nil
}
