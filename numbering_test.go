package practice

import (
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestReference_BillingFormat(t *testing.T) {
	now := time.Date(2026, time.March, 15, 10, 0, 0, 0, time.UTC)

	testCases := []struct {
		kind    DocKind
		counter int
		want    string
	}{
		{Receipt, 1, "RES-20260001"},
		{Invoice, 2, "INV-20260002"},
		{Quotation, 3, "QTN-20260003"},
		{Receipt, 12345, "RES-202612345"}, // counter overflows the padding, never truncates
	}
	for _, tc := range testCases {
		if got := Reference(tc.kind, tc.counter, now); got != tc.want {
			t.Errorf("Reference(%s, %d) = %q, want %q", tc.kind, tc.counter, got, tc.want)
		}
	}
}

func TestReference_StatementUsesTimestamp(t *testing.T) {
	now := time.Date(2026, time.March, 15, 10, 0, 0, 0, time.UTC)
	got := Reference(Statement, 99, now)
	if want := fmt.Sprintf("STMT-%d", now.UnixMilli()); got != want {
		t.Fatalf("statement reference = %q, want %q", got, want)
	}
	if strings.Contains(got, "0099") {
		t.Errorf("statement reference %q must not embed the counter", got)
	}
}

func TestDocKind_Parse(t *testing.T) {
	for _, k := range []DocKind{Receipt, Invoice, Quotation, Statement} {
		got, err := ParseDocKind(k.String())
		if err != nil {
			t.Fatal(err)
		}
		if got != k {
			t.Errorf("ParseDocKind(%q) = %v, want %v", k.String(), got, k)
		}
	}
	if _, err := ParseDocKind("memo"); err == nil {
		t.Error("unknown kind must fail to parse")
	}
}

func TestDocKind_UsesCounter(t *testing.T) {
	if Statement.UsesCounter() {
		t.Error("statements must not draw from the shared counter")
	}
	for _, k := range []DocKind{Receipt, Invoice, Quotation} {
		if !k.UsesCounter() {
			t.Errorf("%s must draw from the shared counter", k)
		}
	}
}
