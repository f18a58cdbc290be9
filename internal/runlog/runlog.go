// Package runlog keeps an append-only CSV log of rollover runs next to the
// destination book, so an operator can reconstruct what a past run did.
package runlog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Entry is one row in the run log.
type Entry struct {
	Timestamp time.Time
	Event     string // e.g. "warning", "bucket-finalized", "run-completed"
	Detail    string
	Currency  string
	Amount    string
}

// Header is the CSV header for the run log.
const Header = "timestamp,event,detail,currency,amount"

const (
	numFields    = 5
	logFileName  = "bookroll-log.csv"
	colTimestamp = 0
	colEvent     = 1
	colDetail    = 2
	colCurrency  = 3
	colAmount    = 4
)

// PathFor returns the log path used for a given destination book file: a
// sibling CSV in the same directory.
func PathFor(destPath string) string {
	return filepath.Join(filepath.Dir(destPath), logFileName)
}

// MarshalEntry converts an Entry to a CSV row.
func MarshalEntry(e Entry) []string {
	row := make([]string, numFields)
	row[colTimestamp] = e.Timestamp.Format(time.RFC3339)
	row[colEvent] = e.Event
	row[colDetail] = e.Detail
	row[colCurrency] = e.Currency
	row[colAmount] = e.Amount
	return row
}

// UnmarshalEntry converts a CSV row to an Entry.
func UnmarshalEntry(record []string) (Entry, error) {
	if len(record) != numFields {
		return Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	ts, err := time.Parse(time.RFC3339, record[colTimestamp])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing timestamp %q: %w", record[colTimestamp], err)
	}

	return Entry{
		Timestamp: ts,
		Event:     record[colEvent],
		Detail:    record[colDetail],
		Currency:  record[colCurrency],
		Amount:    record[colAmount],
	}, nil
}

// Append writes entries to the run log at path, creating the file and
// header if needed.
func Append(path string, entries []Entry) error {
	needsHeader := false
	if _, err := os.Stat(path); os.IsNotExist(err) {
		needsHeader = true
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening run log: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	defer cw.Flush()

	if needsHeader {
		if err := cw.Write(strings.Split(Header, ",")); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing entry %d: %w", i, err)
		}
	}

	return cw.Error()
}

// Read returns all entries from the run log at path. Returns an empty
// slice if the file does not exist.
func Read(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening run log: %w", err)
	}
	defer f.Close()

	return readEntries(f)
}

func readEntries(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading run log CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var entries []Entry
	for i, rec := range records[1:] {
		e, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
