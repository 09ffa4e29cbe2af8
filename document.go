package practice

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// CashCustomer is the walk-in payer accepted on billing documents in
// place of a registered client.
const CashCustomer = "PELANGGAN TUNAI"

// Validation failures. They block the operation entirely: no state is
// mutated and the document counter does not advance.
var (
	// ErrMissingCustomer rejects a document without a payer name.
	ErrMissingCustomer = errors.New("customer name is required")
	// ErrEmptyItemList rejects a document without line items.
	ErrEmptyItemList = errors.New("document needs at least one line item")
)

// DraftItem is a line being composed on a billing document, before the
// quantity is collapsed into the amount.
type DraftItem struct {
	Name  string
	Price decimal.Decimal
	Qty   int
}

// LineItem is a rendered document line. The amount already includes the
// quantity; quantity survives only in the label suffix.
type LineItem struct {
	Label  string
	Amount decimal.Decimal
}

// Document is a transient projection, built on demand for viewing or
// printing and never stored back into the application state.
type Document struct {
	Kind     DocKind
	DocNo    string
	Date     Date
	Customer string
	Phone    string // statements carry no phone/address
	Address  string
	Notes    string
	Lines    []LineItem
	Total    decimal.Decimal
}

// DocLabels are the kind-specific strings stamped on the printed form.
type DocLabels struct {
	Watermark     string
	TypeLabel     string
	CustomerLabel string
	TotalLabel    string
	FooterNote    string
}

// Labels returns the printed strings for the document's kind.
func (d *Document) Labels() DocLabels {
	switch d.Kind {
	case Invoice:
		return DocLabels{
			Watermark:     "INVOICE",
			TypeLabel:     "INVOIS",
			CustomerLabel: "Bil Kepada / Bill To:",
			TotalLabel:    "JUMLAH PERLU DIBAYAR",
			FooterNote:    "Terma Pembayaran: Tunai/Cek atas nama HAIRI MUSTAFA ASSOCIATES.",
		}
	case Quotation:
		return DocLabels{
			Watermark:     "QUOTATION",
			TypeLabel:     "SEBUTHARGA",
			CustomerLabel: "Sebut Harga Kepada / To:",
			TotalLabel:    "JUMLAH SEBUTHARGA",
			FooterNote:    "Sebut harga ini sah untuk tempoh 30 hari dari tarikh yang tertera.",
		}
	case Statement:
		return DocLabels{
			Watermark:     "STATEMENT",
			TypeLabel:     "PENYATA AKAUN",
			CustomerLabel: "Penyata Akaun Fail Bagi:",
			TotalLabel:    "BAKI TERTUNGGAK KESELURUHAN",
			FooterNote:    "Sila jelaskan baki tertunggak dalam tempoh 14 hari dari tarikh penyata ini.",
		}
	default:
		return DocLabels{
			Watermark:     "OFFICIAL",
			TypeLabel:     "RESIT RASMI",
			CustomerLabel: "Diterima Daripada / Received From:",
			TotalLabel:    "JUMLAH DITERIMA / TOTAL RECEIVED",
			FooterNote:    "Terima kasih atas urusan anda bersama firma kami.",
		}
	}
}

// BuildDocument validates and projects a billing document (receipt,
// invoice or quotation) from an ad-hoc item list.
//
// Validation happens before anything else so a rejected build leaves
// no trace: ErrMissingCustomer for a blank payer, ErrEmptyItemList for
// no items. Line labels get an " (xN)" suffix when the quantity is
// above one, and the quantity multiplies into the line amount; the
// total is the sum of the multiplied lines.
func BuildDocument(kind DocKind, customer, phone, address, docNo string, on Date, notes string, items []DraftItem) (*Document, error) {
	if kind == Statement {
		return nil, fmt.Errorf("statements are built from a client ledger, not an item list")
	}
	customer = strings.ToUpper(strings.TrimSpace(customer))
	if customer == "" {
		return nil, ErrMissingCustomer
	}
	if len(items) == 0 {
		return nil, ErrEmptyItemList
	}

	doc := &Document{
		Kind:     kind,
		DocNo:    docNo,
		Date:     on,
		Customer: customer,
		Phone:    strings.TrimSpace(phone),
		Address:  strings.ToUpper(strings.TrimSpace(address)),
		Notes:    strings.TrimSpace(notes),
	}
	total := decimal.Zero
	for _, it := range items {
		label := strings.ToUpper(strings.TrimSpace(it.Name))
		if it.Qty > 1 {
			label = fmt.Sprintf("%s (x%d)", label, it.Qty)
		}
		// the amount is price times quantity, nothing else: a zero
		// quantity bills a zero line
		amount := it.Price.Mul(decimal.NewFromInt(int64(it.Qty)))
		doc.Lines = append(doc.Lines, LineItem{Label: label, Amount: amount})
		total = total.Add(amount)
	}
	doc.Total = total
	return doc, nil
}

// BuildStatement projects a client ledger, optionally date-filtered,
// into an account statement: one line per entry labeled "date - DESC"
// with the amount unmodified, total = balance over the filtered subset.
// Quantity math never applies here, and statements carry no
// phone/address. An empty filtered range yields a zero-line, zero-total
// statement, which is valid.
func BuildStatement(client *Client, r Range, docNo string, on Date) *Document {
	entries := FilterEntries(client.Ledger, r)
	doc := &Document{
		Kind:     Statement,
		DocNo:    docNo,
		Date:     on,
		Customer: client.Name,
		Notes:    client.Detail,
	}
	for _, e := range entries {
		doc.Lines = append(doc.Lines, LineItem{
			Label:  fmt.Sprintf("%s - %s", e.Date, e.Desc),
			Amount: e.Amt,
		})
	}
	doc.Total = BalanceOf(entries)
	return doc
}
