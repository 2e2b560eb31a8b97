package store

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// RawRecord is one row of a table keyed by header name
type RawRecord map[string]string

func (r RawRecord) Get(field string) string {
	return r[field]
}

var errEmptyTable = errors.New("missing header row")

// readRecords reads a csv stream with a header row into raw records.
// Rows with a different number of fields are tolerated, missing fields are empty.
func readRecords(r io.Reader) ([]RawRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errEmptyTable
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(strings.TrimPrefix(header[i], "\ufeff"))
	}

	ret := make([]RawRecord, 0, 1024)
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", len(ret)+1, err)
		}
		rec := make(RawRecord, len(header))
		for i, name := range header {
			if i < len(row) {
				rec[name] = row[i]
			}
		}
		ret = append(ret, rec)
	}
	return ret, nil
}
