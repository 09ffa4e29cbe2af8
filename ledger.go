package practice

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Balance returns the outstanding balance of the client account: the
// sum of all ledger entry amounts, in storage order.
func (c *Client) Balance() decimal.Decimal {
	return BalanceOf(c.Ledger)
}

// BalanceOf sums the amounts of a sequence of entries. An empty
// sequence is a valid state with balance zero.
func BalanceOf(entries []LedgerEntry) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(e.Amt)
	}
	return total
}

// AddEntry appends an entry to the client ledger. Storage order is
// append order: a back-dated entry lands after later-dated ones, and
// the ledger is never re-sorted. Display layers may sort their own copy.
func (c *Client) AddEntry(e LedgerEntry) {
	c.Ledger = append(c.Ledger, e)
}

// DeleteEntry removes the entry at position i. The index is only valid
// against the ledger exactly as last materialized; callers must not
// hold indexes across mutations.
func (c *Client) DeleteEntry(i int) error {
	if i < 0 || i >= len(c.Ledger) {
		return fmt.Errorf("no ledger entry at index %d (ledger has %d entries)", i, len(c.Ledger))
	}
	c.Ledger = append(c.Ledger[:i], c.Ledger[i+1:]...)
	return nil
}

// FilterEntries returns the subsequence of entries whose date falls in
// the range, preserving storage order. An empty result is valid: it
// projects into a statement with zero lines and a zero total.
func FilterEntries(entries []LedgerEntry, r Range) []LedgerEntry {
	if r.IsOpen() {
		return entries
	}
	var kept []LedgerEntry
	for _, e := range entries {
		if r.Contains(e.Date) {
			kept = append(kept, e)
		}
	}
	return kept
}
