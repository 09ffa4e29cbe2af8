package practice

import (
	"fmt"
	"time"
)

// DocKind identifies the kind of financial document being issued.
type DocKind int

const (
	// Receipt acknowledges a payment received.
	Receipt DocKind = iota
	// Invoice bills a client for services.
	Invoice
	// Quotation offers prices, valid for a limited period.
	Quotation
	// Statement projects a client ledger into an account statement.
	Statement
)

func (k DocKind) String() string {
	switch k {
	case Receipt:
		return "receipt"
	case Invoice:
		return "invoice"
	case Quotation:
		return "quotation"
	case Statement:
		return "statement"
	default:
		return "unknown"
	}
}

// ParseDocKind parses a string into a DocKind.
func ParseDocKind(s string) (DocKind, error) {
	switch s {
	case "receipt":
		return Receipt, nil
	case "invoice":
		return Invoice, nil
	case "quotation":
		return Quotation, nil
	case "statement":
		return Statement, nil
	default:
		return 0, fmt.Errorf("unknown document kind: %q", s)
	}
}

// prefix returns the reference number prefix for the kind.
func (k DocKind) prefix() string {
	switch k {
	case Receipt:
		return "RES"
	case Invoice:
		return "INV"
	case Quotation:
		return "QTN"
	case Statement:
		return "STMT"
	default:
		return "DOC"
	}
}

// UsesCounter reports whether the kind draws from the shared document
// counter. Statements number themselves from a timestamp instead.
func (k DocKind) UsesCounter() bool { return k != Statement }

// Reference builds the document reference number.
//
// Receipt, invoice and quotation share one monotonically increasing
// counter: generating an invoice then a receipt yields interleaved,
// strictly increasing numbers, not per-kind sequences. The format is
// {PREFIX}-{year}{counter padded to 4 digits}.
//
// Statements embed a millisecond timestamp instead, unique but
// unordered relative to other statement numbers.
func Reference(kind DocKind, counter int, now time.Time) string {
	if kind == Statement {
		return fmt.Sprintf("%s-%d", kind.prefix(), now.UnixMilli())
	}
	return fmt.Sprintf("%s-%d%04d", kind.prefix(), now.Year(), counter)
}
