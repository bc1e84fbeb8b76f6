// Package agentbox parses and normalizes AgentBox commission-tracking CSV
// exports into internal property records. It mirrors the export's quirks
// deliberately: heterogeneous currency strings, region-dependent dates, and
// summary rows mixed into the data.
package agentbox

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"
)

// Row is one parsed CSV data row keyed by header column name.
type Row map[string]string

// ParseCSV splits CSV text into rows keyed by the mandatory header row.
// Headers are trimmed and stripped of a leading byte order mark. Quoted
// values may contain commas. Rows whose field count disagrees with the
// header are silently dropped; a malformed row never aborts the rest of
// the file.
func ParseCSV(text string) []Row {
	reader := csv.NewReader(strings.NewReader(text))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		return nil
	}
	for i, h := range header {
		header[i] = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
	}

	var rows []Row
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// Malformed row tolerance: drop and keep going.
			continue
		}
		if len(record) != len(header) {
			continue
		}

		row := make(Row, len(header))
		for i, name := range header {
			row[name] = strings.TrimSpace(record[i])
		}
		rows = append(rows, row)
	}
	return rows
}

// FilterRows drops rows that cannot become property records: blank listings,
// zero or blank sale prices, and the export's "Total"/"Average" summary rows.
// Returns the surviving rows and the number dropped.
func FilterRows(rows []Row) ([]Row, int) {
	valid := make([]Row, 0, len(rows))
	for _, row := range rows {
		listing := strings.ToLower(strings.TrimSpace(row[ColListing]))
		if strings.HasPrefix(listing, "total") || strings.HasPrefix(listing, "average") {
			continue
		}
		if listing == "" {
			continue
		}
		price := strings.TrimSpace(row[ColSoldPrice])
		if price == "" || price == "0" {
			continue
		}
		valid = append(valid, row)
	}
	return valid, len(rows) - len(valid)
}
