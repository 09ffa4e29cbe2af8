package practice

import (
	"reflect"
	"testing"

	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func TestNewClient_SeedsOpeningEntry(t *testing.T) {
	c := NewClient("ali bin abu", "guaman sivil", "012", "kuala lumpur", d("1500"))

	if c.Name != "ALI BIN ABU" {
		t.Errorf("name not uppercased: %q", c.Name)
	}
	if c.Detail != "GUAMAN SIVIL" {
		t.Errorf("detail not uppercased: %q", c.Detail)
	}
	if len(c.Ledger) != 1 {
		t.Fatalf("want exactly one opening entry, got %d", len(c.Ledger))
	}
	if c.Ledger[0].Desc != "FEE PROFESSIONAL DIPERSETUJUI" {
		t.Errorf("opening entry desc = %q", c.Ledger[0].Desc)
	}
	if !c.Balance().Equal(d("1500")) {
		t.Errorf("a new client must owe the agreed fee, balance = %s", c.Balance())
	}
}

func TestBalance_IsSumOfEntries(t *testing.T) {
	c := NewClient("ALI", "KES", "", "", d("1000"))
	c.AddEntry(NewLedgerEntry(MustParse("2026-2-1"), "tambahan", d("250.50")))
	c.AddEntry(NewLedgerEntry(MustParse("2026-3-1"), "bayaran", d("-600")))

	if want := d("650.50"); !c.Balance().Equal(want) {
		t.Errorf("balance = %s, want %s", c.Balance(), want)
	}
}

func TestBalanceOf_Empty(t *testing.T) {
	if !BalanceOf(nil).Equal(decimal.Zero) {
		t.Errorf("empty ledger must balance to zero")
	}
}

func TestAddEntry_KeepsAppendOrder(t *testing.T) {
	c := NewClient("ALI", "KES", "", "", d("100"))
	// a back-dated entry still lands last
	c.AddEntry(NewLedgerEntry(MustParse("2020-1-1"), "LAMA", d("10")))

	last := c.Ledger[len(c.Ledger)-1]
	if last.Desc != "LAMA" {
		t.Errorf("back-dated entry must stay in append order, last = %q", last.Desc)
	}
}

func TestDeleteEntry(t *testing.T) {
	c := NewClient("ALI", "KES", "", "", d("100"))
	c.AddEntry(NewLedgerEntry(MustParse("2026-1-2"), "A", d("10")))
	c.AddEntry(NewLedgerEntry(MustParse("2026-1-3"), "B", d("20")))

	if err := c.DeleteEntry(1); err != nil {
		t.Fatal(err)
	}
	if len(c.Ledger) != 2 {
		t.Fatalf("want 2 entries after delete, got %d", len(c.Ledger))
	}
	if c.Ledger[1].Desc != "B" {
		t.Errorf("delete removed the wrong entry, ledger[1] = %q", c.Ledger[1].Desc)
	}
	if want := d("120"); !c.Balance().Equal(want) {
		t.Errorf("balance after delete = %s, want %s", c.Balance(), want)
	}

	if err := c.DeleteEntry(5); err == nil {
		t.Error("deleting out of bounds must fail")
	}
	if err := c.DeleteEntry(-1); err == nil {
		t.Error("deleting a negative index must fail")
	}
}

func TestFilterEntries(t *testing.T) {
	entries := []LedgerEntry{
		NewLedgerEntry(MustParse("2026-1-10"), "A", d("1")),
		NewLedgerEntry(MustParse("2026-2-10"), "B", d("2")),
		NewLedgerEntry(MustParse("2026-1-20"), "C", d("3")), // back-dated, stored after B
		NewLedgerEntry(MustParse("2026-3-10"), "D", d("4")),
	}

	testCases := []struct {
		name string
		r    Range
		want []string
	}{
		{
			name: "open range keeps everything",
			r:    Range{},
			want: []string{"A", "B", "C", "D"},
		},
		{
			name: "bounded range preserves storage order",
			r:    NewRange(MustParse("2026-1-1"), MustParse("2026-2-28")),
			want: []string{"A", "B", "C"},
		},
		{
			name: "from only",
			r:    Range{From: MustParse("2026-2-1")},
			want: []string{"B", "D"},
		},
		{
			name: "to only",
			r:    Range{To: MustParse("2026-1-31")},
			want: []string{"A", "C"},
		},
		{
			name: "empty result is valid",
			r:    NewRange(MustParse("2027-1-1"), MustParse("2027-12-31")),
			want: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var got []string
			for _, e := range FilterEntries(entries, tc.r) {
				got = append(got, e.Desc)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}
