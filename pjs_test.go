package practice

import (
	"reflect"
	"testing"

	"github.com/shopspring/decimal"
)

func testRegister() []PjsRecord {
	return []PjsRecord{
		NewPjsRecord(MustParse("2026-3-1"), "CHARLIE", "", d("30")),
		NewPjsRecord(MustParse("2026-1-1"), "ALPHA", "", d("10")),
		NewPjsRecord(MustParse("2026-2-1"), "BRAVO", "", d("20")),
	}
}

func TestSortPjsRecords(t *testing.T) {
	records := testRegister()

	testCases := []struct {
		name       string
		key        SortKey
		descending bool
		want       []string
	}{
		{"date descending is the default view", ByDate, true, []string{"CHARLIE", "BRAVO", "ALPHA"}},
		{"date ascending", ByDate, false, []string{"ALPHA", "BRAVO", "CHARLIE"}},
		{"name ascending", ByName, false, []string{"ALPHA", "BRAVO", "CHARLIE"}},
		{"amount descending", ByAmount, true, []string{"CHARLIE", "BRAVO", "ALPHA"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var got []string
			for _, r := range SortPjsRecords(records, tc.key, tc.descending) {
				got = append(got, r.Name)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}

	// the input order must be untouched
	if records[0].Name != "CHARLIE" {
		t.Error("sorting must not mutate the register")
	}
}

func TestMonthlyTotals(t *testing.T) {
	records := []PjsRecord{
		NewPjsRecord(MustParse("2026-1-5"), "A", "", d("10")),
		NewPjsRecord(MustParse("2026-1-20"), "B", "", d("5")),
		NewPjsRecord(MustParse("2026-3-1"), "C", "", d("7")),
		NewPjsRecord(MustParse("2025-1-1"), "D", "", d("99")), // other year
	}

	totals := MonthlyTotals(records, 2026)
	if !totals[0].Equal(d("15")) {
		t.Errorf("January = %s, want 15", totals[0])
	}
	if !totals[2].Equal(d("7")) {
		t.Errorf("March = %s, want 7", totals[2])
	}
	for _, m := range []int{1, 3, 4, 5, 6, 7, 8, 9, 10, 11} {
		if !totals[m].Equal(decimal.Zero) {
			t.Errorf("month %d = %s, want 0", m+1, totals[m])
		}
	}
}

func TestLatestYear(t *testing.T) {
	if got := LatestYear(testRegister()); got != 2026 {
		t.Errorf("latest year = %d, want 2026", got)
	}
	if got := LatestYear(nil); got < 2025 {
		t.Errorf("empty register must fall back to the current year, got %d", got)
	}
}

func TestParseSortKey(t *testing.T) {
	for _, k := range []SortKey{ByDate, ByName, ByAmount} {
		got, err := ParseSortKey(string(k))
		if err != nil || got != k {
			t.Errorf("ParseSortKey(%q) = %v, %v", k, got, err)
		}
	}
	if _, err := ParseSortKey("detail"); err == nil {
		t.Error("unknown sort key must fail")
	}
}
