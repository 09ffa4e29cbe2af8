package practice

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// SortKey names a column of the notarization register.
type SortKey string

const (
	ByDate   SortKey = "date"
	ByName   SortKey = "name"
	ByAmount SortKey = "amount"
)

// ParseSortKey parses a string into a SortKey.
func ParseSortKey(s string) (SortKey, error) {
	switch SortKey(s) {
	case ByDate, ByName, ByAmount:
		return SortKey(s), nil
	default:
		return "", fmt.Errorf("unknown sort key: %q", s)
	}
}

// SortPjsRecords returns the records ordered by the given column. The
// input is left alone. Descending date is the default view, so the
// newest work reads first.
func SortPjsRecords(records []PjsRecord, key SortKey, descending bool) []PjsRecord {
	sorted := make([]PjsRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if descending {
			a, b = b, a
		}
		switch key {
		case ByName:
			return a.Name < b.Name
		case ByAmount:
			return a.Amount.LessThan(b.Amount)
		default:
			return a.Date.Before(b.Date)
		}
	})
	return sorted
}

// MonthlyTotals sums the register per calendar month of a given year.
// The result always has twelve entries, January first.
func MonthlyTotals(records []PjsRecord, year int) [12]decimal.Decimal {
	var totals [12]decimal.Decimal
	for _, r := range records {
		if r.Date.Year() != year {
			continue
		}
		m := int(r.Date.Month()) - 1
		totals[m] = totals[m].Add(r.Amount)
	}
	return totals
}

// LatestYear returns the most recent year present in the register, or
// the current year when the register is empty.
func LatestYear(records []PjsRecord) int {
	year := 0
	for _, r := range records {
		if r.Date.Year() > year {
			year = r.Date.Year()
		}
	}
	if year == 0 {
		return time.Now().Year()
	}
	return year
}
