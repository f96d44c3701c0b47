// Package dota reads and writes DOTA labelTxt annotation sets and converts
// HRSC2016 splits into them at all three granularity levels.
package dota

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/suker799/ReDet-v1/pkg/geometry"
)

// Record is one DOTA annotation line: an oriented polygon, a category name
// (no internal whitespace) and a difficulty flag.
type Record struct {
	Poly      geometry.Polygon
	Name      string
	Difficult int
}

// Format renders the record as a whitespace-separated DOTA line. Category
// names may contain no internal whitespace on the wire, so spaces become
// underscores; the assembler's lenient matching maps them back.
func (r Record) Format() string {
	parts := make([]string, 0, 10)
	for _, v := range r.Poly {
		parts = append(parts, strconv.FormatFloat(v, 'g', -1, 64))
	}
	parts = append(parts, strings.ReplaceAll(r.Name, " ", "_"), strconv.Itoa(r.Difficult))
	return strings.Join(parts, " ")
}

// ParseRecord parses one DOTA line. The second return value is false for
// blank lines, lines with fewer than ten fields and lines with non-numeric
// coordinates; such lines are skipped, never fatal.
func ParseRecord(line string) (Record, bool) {
	parts := strings.Fields(line)
	if len(parts) < 10 {
		return Record{}, false
	}

	var rec Record
	for i := 0; i < 8; i++ {
		v, err := strconv.ParseFloat(parts[i], 64)
		if err != nil {
			return Record{}, false
		}
		rec.Poly[i] = v
	}
	rec.Name = parts[8]
	if d, err := strconv.Atoi(parts[9]); err == nil {
		rec.Difficult = d
	}
	return rec, true
}

// WriteLabelFile writes the records to path, one line each. An empty record
// list produces an empty file, which keeps the per-image file set aligned
// with the image list.
func WriteLabelFile(path string, records []Record) error {
	if len(records) == 0 {
		return os.WriteFile(path, nil, 0644)
	}

	var sb strings.Builder
	for _, rec := range records {
		sb.WriteString(rec.Format())
		sb.WriteByte('\n')
	}
	if err := os.WriteFile(path, []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("failed to write label file: %w", err)
	}
	return nil
}

// ReadLabelFile parses every well-formed record in a labelTxt file.
// Malformed lines are dropped silently.
func ReadLabelFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open label file: %w", err)
	}
	defer f.Close()

	var records []Record
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if rec, ok := ParseRecord(scanner.Text()); ok {
			records = append(records, rec)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read label file: %w", err)
	}
	return records, nil
}
