package practice

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// openingEntryDesc is the description seeded on every new client ledger.
const openingEntryDesc = "FEE PROFESSIONAL DIPERSETUJUI"

// importedEntryDesc is the description carried by a balance imported from CSV.
const importedEntryDesc = "IMPORTED BALANCE"

// LedgerEntry is a single dated transaction on a client account.
// Positive amounts increase the amount owed, negative amounts are
// payments. Entries are immutable once created; the only removal path
// is a positional splice on the whole ledger.
type LedgerEntry struct {
	Date Date            `json:"date"`
	Desc string          `json:"desc"`
	Amt  decimal.Decimal `json:"amt"`
}

// NewLedgerEntry builds an entry, uppercasing the description.
func NewLedgerEntry(on Date, desc string, amt decimal.Decimal) LedgerEntry {
	return LedgerEntry{Date: on, Desc: strings.ToUpper(strings.TrimSpace(desc)), Amt: amt}
}

// MarshalJSON keeps the persisted key order stable.
func (e LedgerEntry) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("date", e.Date)
	w.Append("desc", e.Desc)
	w.Append("amt", e.Amt)
	return w.MarshalJSON()
}

// Client is a case file: identity, party details and the running
// account ledger. The ledger is kept in append order, which is the
// canonical storage order even for back-dated entries.
type Client struct {
	ID      string        `json:"id"`
	Name    string        `json:"name"`
	Detail  string        `json:"detail"`
	Phone   string        `json:"phone,omitempty"`
	Address string        `json:"address,omitempty"`
	Ledger  []LedgerEntry `json:"ledger"`
}

// NewClient registers a client and seeds the approved professional fee
// as the opening ledger entry, so a client always has at least one entry.
func NewClient(name, detail, phone, address string, fee decimal.Decimal) Client {
	return Client{
		ID:      uuid.NewString(),
		Name:    strings.ToUpper(strings.TrimSpace(name)),
		Detail:  strings.ToUpper(strings.TrimSpace(detail)),
		Phone:   strings.TrimSpace(phone),
		Address: strings.ToUpper(strings.TrimSpace(address)),
		Ledger:  []LedgerEntry{NewLedgerEntry(Today(), openingEntryDesc, fee)},
	}
}

// MarshalJSON keeps the persisted key order stable.
func (c Client) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", c.ID)
	w.Append("name", c.Name)
	w.Append("detail", c.Detail)
	w.Optional("phone", c.Phone)
	w.Optional("address", c.Address)
	w.Append("ledger", c.Ledger)
	return w.MarshalJSON()
}

// PjsRecord is a notarization (Pesuruhjaya Sumpah) transaction. It is
// independent of any client file.
type PjsRecord struct {
	ID     string          `json:"id"`
	Date   Date            `json:"date"`
	Name   string          `json:"name"`
	Detail string          `json:"detail"`
	Amount decimal.Decimal `json:"amount"`
}

// NewPjsRecord builds a record with a fresh identity, uppercasing name and detail.
func NewPjsRecord(on Date, name, detail string, amount decimal.Decimal) PjsRecord {
	return PjsRecord{
		ID:     uuid.NewString(),
		Date:   on,
		Name:   strings.ToUpper(strings.TrimSpace(name)),
		Detail: strings.ToUpper(strings.TrimSpace(detail)),
		Amount: amount,
	}
}

// MarshalJSON keeps the persisted key order stable.
func (r PjsRecord) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", r.ID)
	w.Append("date", r.Date)
	w.Append("name", r.Name)
	w.Append("detail", r.Detail)
	w.Append("amount", r.Amount)
	return w.MarshalJSON()
}

// ServiceItem is a catalog entry in the service price list.
type ServiceItem struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// NewServiceItem builds a service with a fresh identity.
func NewServiceItem(name string, price decimal.Decimal) ServiceItem {
	return ServiceItem{
		ID:    uuid.NewString(),
		Name:  strings.ToUpper(strings.TrimSpace(name)),
		Price: price,
	}
}

// MarshalJSON keeps the persisted key order stable.
func (s ServiceItem) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", s.ID)
	w.Append("name", s.Name)
	w.Append("price", s.Price)
	return w.MarshalJSON()
}
