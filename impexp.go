package practice

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
)

// ExportClientsCSV writes the client book as csv, one row per client
// with the current balance in the last column.
func ExportClientsCSV(w io.Writer, clients []Client) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Name", "Detail", "Phone", "Address", "Balance"}); err != nil {
		return err
	}
	for _, c := range clients {
		row := []string{c.Name, c.Detail, c.Phone, c.Address, c.Balance().StringFixed(2)}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ImportClientsCSV reads a client book written by ExportClientsCSV.
// Rows are tolerated loose: a blank name becomes "UNNAMED", an
// unreadable balance becomes zero, the balance column becomes a single
// imported-balance ledger entry dated today. Original per-entry
// history does not round-trip.
func ImportClientsCSV(r io.Reader) ([]Client, error) {
	rows, err := readCSV(r, 5)
	if err != nil {
		return nil, err
	}
	clients := make([]Client, 0, len(rows))
	for _, row := range rows {
		name := strings.TrimSpace(row[0])
		if name == "" {
			name = "UNNAMED"
		}
		balance, err := decimal.NewFromString(strings.TrimSpace(row[4]))
		if err != nil {
			balance = decimal.Zero
		}
		c := NewClient(name, row[1], row[2], row[3], decimal.Zero)
		c.Ledger = []LedgerEntry{NewLedgerEntry(Today(), importedEntryDesc, balance)}
		clients = append(clients, c)
	}
	return clients, nil
}

// ExportPjsCSV writes the notarization register as csv.
func ExportPjsCSV(w io.Writer, records []PjsRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Date", "Name", "Detail", "Amount"}); err != nil {
		return err
	}
	for _, rec := range records {
		row := []string{rec.Date.String(), rec.Name, rec.Detail, rec.Amount.StringFixed(2)}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ImportPjsCSV reads a register written by ExportPjsCSV. An unreadable
// date becomes today, an unreadable amount becomes zero.
func ImportPjsCSV(r io.Reader) ([]PjsRecord, error) {
	rows, err := readCSV(r, 4)
	if err != nil {
		return nil, err
	}
	records := make([]PjsRecord, 0, len(rows))
	for _, row := range rows {
		on, err := ParseDate(strings.TrimSpace(row[0]))
		if err != nil {
			on = Today()
		}
		amount, err := decimal.NewFromString(strings.TrimSpace(row[3]))
		if err != nil {
			amount = decimal.Zero
		}
		records = append(records, NewPjsRecord(on, row[1], row[2], amount))
	}
	return records, nil
}

// readCSV reads all data rows, skipping the header and padding short
// rows up to width so callers can index columns without checks.
func readCSV(r io.Reader, width int) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	all, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading csv: %w", err)
	}
	if len(all) == 0 {
		return nil, nil
	}
	rows := make([][]string, 0, len(all)-1)
	for _, row := range all[1:] {
		for len(row) < width {
			row = append(row, "")
		}
		rows = append(rows, row)
	}
	return rows, nil
}
