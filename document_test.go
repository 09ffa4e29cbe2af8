package practice

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestBuildDocument_QuantityCollapse(t *testing.T) {
	items := []DraftItem{
		{Name: "Affidavit A", Price: d("10.00"), Qty: 2},
		{Name: "Copy B", Price: d("5.00"), Qty: 1},
	}
	doc, err := BuildDocument(Receipt, "Ali", "", "", "RES-20260001", MustParse("2026-3-15"), "", items)
	if err != nil {
		t.Fatal(err)
	}

	if doc.Lines[0].Label != "AFFIDAVIT A (x2)" {
		t.Errorf("line 0 label = %q", doc.Lines[0].Label)
	}
	if !doc.Lines[0].Amount.Equal(d("20.00")) {
		t.Errorf("line 0 amount = %s, want 20.00", doc.Lines[0].Amount)
	}
	if doc.Lines[1].Label != "COPY B" {
		t.Errorf("quantity one must not suffix the label, got %q", doc.Lines[1].Label)
	}
	if !doc.Lines[1].Amount.Equal(d("5.00")) {
		t.Errorf("line 1 amount = %s, want 5.00", doc.Lines[1].Amount)
	}
	if !doc.Total.Equal(d("25.00")) {
		t.Errorf("total = %s, want 25.00", doc.Total)
	}
}

func TestBuildDocument_ZeroQuantityBillsNothing(t *testing.T) {
	doc, err := BuildDocument(Invoice, "ALI", "", "", "INV-20260001", Today(), "", []DraftItem{
		{Name: "FEE", Price: d("100"), Qty: 0},
		{Name: "FEE2", Price: d("100"), Qty: 1},
	})
	if err != nil {
		t.Fatal(err)
	}
	if !doc.Lines[0].Amount.Equal(d("0")) {
		t.Errorf("zero-quantity line amount = %s, want 0", doc.Lines[0].Amount)
	}
	if doc.Lines[0].Label != "FEE" {
		t.Errorf("zero-quantity line must not gain a suffix, got %q", doc.Lines[0].Label)
	}
	if !doc.Total.Equal(d("100")) {
		t.Errorf("total = %s, want 100", doc.Total)
	}
}

func TestBuildDocument_Validation(t *testing.T) {
	items := []DraftItem{{Name: "FEE", Price: d("10"), Qty: 1}}

	if _, err := BuildDocument(Receipt, "   ", "", "", "RES-1", Today(), "", items); !errors.Is(err, ErrMissingCustomer) {
		t.Errorf("blank customer: got %v, want ErrMissingCustomer", err)
	}
	if _, err := BuildDocument(Receipt, "ALI", "", "", "RES-1", Today(), "", nil); !errors.Is(err, ErrEmptyItemList) {
		t.Errorf("no items: got %v, want ErrEmptyItemList", err)
	}
	if _, err := BuildDocument(Statement, "ALI", "", "", "STMT-1", Today(), "", items); err == nil {
		t.Error("statements must not build from an item list")
	}
}

func TestBuildDocument_UppercasesCustomer(t *testing.T) {
	doc, err := BuildDocument(Quotation, "ali bin abu", "012", "jalan satu", "QTN-1", Today(), "", []DraftItem{{Name: "FEE", Price: d("10"), Qty: 1}})
	if err != nil {
		t.Fatal(err)
	}
	if doc.Customer != "ALI BIN ABU" {
		t.Errorf("customer = %q", doc.Customer)
	}
	if doc.Address != "JALAN SATU" {
		t.Errorf("address = %q", doc.Address)
	}
}

func TestBuildStatement(t *testing.T) {
	c := NewClient("ALI", "GUAMAN SIVIL", "012", "KL", d("1000"))
	c.AddEntry(NewLedgerEntry(MustParse("2026-2-1"), "TAMBAHAN", d("500")))
	c.AddEntry(NewLedgerEntry(MustParse("2026-3-1"), "BAYARAN", d("-300")))

	doc := BuildStatement(&c, Range{}, "STMT-1", MustParse("2026-3-15"))

	if doc.Kind != Statement {
		t.Fatalf("kind = %v", doc.Kind)
	}
	if len(doc.Lines) != 3 {
		t.Fatalf("want 3 lines, got %d", len(doc.Lines))
	}
	if doc.Lines[1].Label != "2026-02-01 - TAMBAHAN" {
		t.Errorf("line label = %q", doc.Lines[1].Label)
	}
	if !doc.Lines[2].Amount.Equal(d("-300")) {
		t.Errorf("statement lines must keep signed amounts, got %s", doc.Lines[2].Amount)
	}
	if !doc.Total.Equal(d("1200")) {
		t.Errorf("total = %s, want the ledger balance 1200", doc.Total)
	}
	if doc.Phone != "" || doc.Address != "" {
		t.Error("statements carry no phone or address")
	}
	if doc.Notes != "GUAMAN SIVIL" {
		t.Errorf("statement notes should carry the matter detail, got %q", doc.Notes)
	}
}

func TestBuildStatement_FilteredAndEmpty(t *testing.T) {
	c := NewClient("ALI", "KES", "", "", d("1000"))
	c.AddEntry(NewLedgerEntry(MustParse("2026-2-1"), "TAMBAHAN", d("500")))

	r := NewRange(MustParse("2026-2-1"), MustParse("2026-2-28"))
	doc := BuildStatement(&c, r, "STMT-1", Today())
	if len(doc.Lines) != 1 {
		t.Fatalf("want 1 filtered line, got %d", len(doc.Lines))
	}
	if !doc.Total.Equal(d("500")) {
		t.Errorf("filtered total = %s, want 500", doc.Total)
	}

	empty := BuildStatement(&c, NewRange(MustParse("2030-1-1"), MustParse("2030-12-31")), "STMT-2", Today())
	if len(empty.Lines) != 0 {
		t.Fatalf("want no lines, got %d", len(empty.Lines))
	}
	if !empty.Total.Equal(decimal.Zero) {
		t.Errorf("empty statement total = %s, want 0", empty.Total)
	}
}

func TestLabels_PerKind(t *testing.T) {
	testCases := []struct {
		kind       DocKind
		typeLabel  string
		totalLabel string
	}{
		{Receipt, "RESIT RASMI", "JUMLAH DITERIMA / TOTAL RECEIVED"},
		{Invoice, "INVOIS", "JUMLAH PERLU DIBAYAR"},
		{Quotation, "SEBUTHARGA", "JUMLAH SEBUTHARGA"},
		{Statement, "PENYATA AKAUN", "BAKI TERTUNGGAK KESELURUHAN"},
	}
	for _, tc := range testCases {
		doc := &Document{Kind: tc.kind}
		labels := doc.Labels()
		if labels.TypeLabel != tc.typeLabel {
			t.Errorf("%s type label = %q, want %q", tc.kind, labels.TypeLabel, tc.typeLabel)
		}
		if labels.TotalLabel != tc.totalLabel {
			t.Errorf("%s total label = %q, want %q", tc.kind, labels.TotalLabel, tc.totalLabel)
		}
	}
}
