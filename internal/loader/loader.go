// Package loader reads the headered, comma-separated files used for
// recipe and weight-log input. The format is deliberately simpler than
// RFC 4180: fields are split on commas and whitespace-trimmed, with no
// quoting or escaping.
package loader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Record maps header field names to the trimmed cell values of one row.
type Record map[string]string

// Load reads a headered CSV file into records.
func Load(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open data file: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads headered CSV data. The first non-empty line names the
// fields; rows shorter than the header keep only the fields they have.
func Parse(r io.Reader) ([]Record, error) {
	var fields []string
	records := make([]Record, 0)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		cells := strings.Split(line, ",")
		for i := range cells {
			cells[i] = strings.TrimSpace(cells[i])
		}
		if fields == nil {
			fields = cells
			continue
		}
		record := make(Record, len(fields))
		for i, name := range fields {
			if i >= len(cells) {
				break
			}
			record[name] = cells[i]
		}
		records = append(records, record)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read data file: %w", err)
	}
	if fields == nil {
		return nil, fmt.Errorf("missing header row")
	}
	return records, nil
}
