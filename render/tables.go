package render

import (
	"fmt"
	"strings"

	practice "github.com/tetuanhairi-prog/HMpengurusan"
)

// tableRenderer formats list views into a markdown string.
type tableRenderer struct {
	*strings.Builder
}

// Printf formats according to a format specifier and writes to the renderer's buffer.
func (r *tableRenderer) Printf(format string, args ...any) {
	fmt.Fprintf(r, format, args...)
}

// ClientsMarkdown generates a markdown report of the client book with
// derived balances.
func ClientsMarkdown(clients []practice.Client) string {
	r := &tableRenderer{Builder: &strings.Builder{}}
	r.Printf("## Akaun Pelanggan\n\n")
	if len(clients) == 0 {
		r.Printf("Tiada pelanggan berdaftar.\n")
		return r.String()
	}
	r.Printf("| # | Nama | Perkara | Telefon | Baki |\n")
	r.Printf("|---:|:---|:---|:---|---:|\n")
	total := practice.M(0)
	for i, c := range clients {
		balance := practice.M(c.Balance())
		r.Printf("| %d | %s | %s | %s | %s |\n", i, c.Name, c.Detail, c.Phone, balance)
		total = total.Add(balance)
	}
	r.Printf("| | **Jumlah** | | | **%s** |\n", total)
	return r.String()
}

// LedgerMarkdown generates a markdown report of one client's ledger
// over the given range.
func LedgerMarkdown(c *practice.Client, rg practice.Range) string {
	r := &tableRenderer{Builder: &strings.Builder{}}
	r.Printf("## Lejar: %s\n\n", c.Name)
	if c.Detail != "" {
		r.Printf("%s\n\n", c.Detail)
	}
	entries := practice.FilterEntries(c.Ledger, rg)
	if len(entries) == 0 {
		r.Printf("Tiada catatan dalam julat ini.\n")
	} else {
		r.Printf("| # | Tarikh | Perkara | Amaun |\n")
		r.Printf("|---:|:---|:---|---:|\n")
		for i, e := range entries {
			r.Printf("| %d | %s | %s | %s |\n", i, e.Date, e.Desc, practice.M(e.Amt).SignedString())
		}
	}
	r.Printf("\nBaki: **%s**\n", practice.M(practice.BalanceOf(entries)))
	return r.String()
}

// PjsMarkdown generates a markdown report of the notarization register,
// already sorted by the caller.
func PjsMarkdown(records []practice.PjsRecord) string {
	r := &tableRenderer{Builder: &strings.Builder{}}
	r.Printf("## Rekod Pesuruhjaya Sumpah\n\n")
	if len(records) == 0 {
		r.Printf("Tiada rekod.\n")
		return r.String()
	}
	r.Printf("| Tarikh | Nama | Perkara | Amaun |\n")
	r.Printf("|:---|:---|:---|---:|\n")
	total := practice.M(0)
	for _, rec := range records {
		amount := practice.M(rec.Amount)
		r.Printf("| %s | %s | %s | %s |\n", rec.Date, rec.Name, rec.Detail, amount)
		total = total.Add(amount)
	}
	r.Printf("| | | **Jumlah** | **%s** |\n", total)
	return r.String()
}

// monthNames are the short Malay month labels of the revenue chart.
var monthNames = [12]string{"Jan", "Feb", "Mac", "Apr", "Mei", "Jun", "Jul", "Ogo", "Sep", "Okt", "Nov", "Dis"}

// MonthlyChartMarkdown generates the per-month revenue summary of the
// register for one year, with a proportional bar next to each month.
func MonthlyChartMarkdown(records []practice.PjsRecord, year int) string {
	totals := practice.MonthlyTotals(records, year)

	max := practice.M(0)
	for _, t := range totals {
		if m := practice.M(t); m.Sub(max).IsPositive() {
			max = m
		}
	}

	r := &tableRenderer{Builder: &strings.Builder{}}
	r.Printf("## Pendapatan Bulanan %d\n\n", year)
	r.Printf("| Bulan | Amaun | |\n")
	r.Printf("|:---|---:|:---|\n")
	grand := practice.M(0)
	for i, t := range totals {
		m := practice.M(t)
		grand = grand.Add(m)
		r.Printf("| %s | %s | %s |\n", monthNames[i], m, bar(m, max))
	}
	r.Printf("| **Jumlah** | **%s** | |\n", grand)
	return r.String()
}

// bar scales a value against the year's best month, 20 cells wide.
func bar(v, max practice.Money) string {
	if max.IsZero() || !v.IsPositive() {
		return ""
	}
	cells := v.Amount().Div(max.Amount()).Mul(twenty).IntPart()
	if cells < 1 {
		cells = 1
	}
	return strings.Repeat("█", int(cells))
}

var twenty = practice.M(20).Amount()

// ServicesMarkdown generates a markdown report of the service price list.
func ServicesMarkdown(items []practice.ServiceItem) string {
	r := &tableRenderer{Builder: &strings.Builder{}}
	r.Printf("## Senarai Perkhidmatan\n\n")
	if len(items) == 0 {
		r.Printf("Tiada perkhidmatan.\n")
		return r.String()
	}
	r.Printf("| # | Perkhidmatan | Harga |\n")
	r.Printf("|---:|:---|---:|\n")
	for i, item := range items {
		r.Printf("| %d | %s | %s |\n", i, item.Name, practice.M(item.Price))
	}
	return r.String()
}
