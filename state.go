package practice

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// PageID selects the page the application shows on next start.
type PageID string

const (
	PageGuaman    PageID = "guaman"
	PagePjs       PageID = "pjs"
	PageInventory PageID = "inventory"
	PageInvoice   PageID = "invoice"
)

// ParsePageID parses a string into a PageID.
func ParsePageID(s string) (PageID, error) {
	switch PageID(s) {
	case PageGuaman, PagePjs, PageInventory, PageInvoice:
		return PageID(s), nil
	default:
		return "", fmt.Errorf("unknown page: %q", s)
	}
}

// ThemeMode is the display theme flag.
type ThemeMode string

const (
	ThemeLight ThemeMode = "light"
	ThemeDark  ThemeMode = "dark"
)

// ParseThemeMode parses a string into a ThemeMode.
func ParseThemeMode(s string) (ThemeMode, error) {
	switch ThemeMode(s) {
	case ThemeLight, ThemeDark:
		return ThemeMode(s), nil
	default:
		return "", fmt.Errorf("unknown theme: %q", s)
	}
}

// AppState is the root aggregate: every collection the practice tracks
// plus the shared document counter and display settings. It is owned by
// one controller, mutated only through its methods, and persisted as a
// single record after each accepted mutation.
type AppState struct {
	Clients         []Client      `json:"clients"`
	PjsRecords      []PjsRecord   `json:"pjsRecords"`
	Inventory       []ServiceItem `json:"inventory"`
	InvCounter      int           `json:"invCounter"`
	FirmLogo        string        `json:"firmLogo"`
	CurrentPage     PageID        `json:"currentPage"`
	ActiveClientIdx *int          `json:"activeClientIdx"`
	Theme           ThemeMode     `json:"theme"`
}

// NewAppState returns the default empty state.
func NewAppState() *AppState {
	return &AppState{
		Clients:     []Client{},
		PjsRecords:  []PjsRecord{},
		Inventory:   []ServiceItem{},
		InvCounter:  1,
		CurrentPage: PageGuaman,
		Theme:       ThemeLight,
	}
}

// AddClient registers a new client with the approved fee seeded as the
// opening ledger entry, and returns the created record.
func (s *AppState) AddClient(name, detail, phone, address string, fee decimal.Decimal) Client {
	c := NewClient(name, detail, phone, address, fee)
	s.Clients = append(s.Clients, c)
	return c
}

// RemoveClient deletes a client wholesale by id. The open-ledger
// selection is cleared so it cannot dangle past the removal.
func (s *AppState) RemoveClient(id string) bool {
	for i, c := range s.Clients {
		if c.ID == id {
			s.Clients = append(s.Clients[:i], s.Clients[i+1:]...)
			s.ActiveClientIdx = nil
			return true
		}
	}
	return false
}

// ReplaceClients discards the whole client collection and installs the
// imported one. Destructive; callers must confirm with the user first.
func (s *AppState) ReplaceClients(clients []Client) {
	s.Clients = clients
	s.ActiveClientIdx = nil
}

// ClientAt returns the client at the given position.
func (s *AppState) ClientAt(idx int) (*Client, error) {
	if idx < 0 || idx >= len(s.Clients) {
		return nil, fmt.Errorf("no client at index %d", idx)
	}
	return &s.Clients[idx], nil
}

// FindClient returns the client with the given id, or nil.
func (s *AppState) FindClient(id string) *Client {
	for i := range s.Clients {
		if s.Clients[i].ID == id {
			return &s.Clients[i]
		}
	}
	return nil
}

// OpenLedger records which client's ledger view is open.
func (s *AppState) OpenLedger(idx int) error {
	if idx < 0 || idx >= len(s.Clients) {
		return fmt.Errorf("no client at index %d", idx)
	}
	s.ActiveClientIdx = &idx
	return nil
}

// ActiveClient returns the client whose ledger view is open, or nil.
// The stored index is distrusted: a hand-edited or restored state file
// may carry one that no longer points inside the book.
func (s *AppState) ActiveClient() *Client {
	if s.ActiveClientIdx == nil {
		return nil
	}
	if idx := *s.ActiveClientIdx; idx >= 0 && idx < len(s.Clients) {
		return &s.Clients[idx]
	}
	return nil
}

// CloseLedger clears the open-ledger selection. Closing an already
// closed view is a no-op, so a repeated close request is idempotent.
func (s *AppState) CloseLedger() {
	s.ActiveClientIdx = nil
}

// AddPjsRecord records a new notarization transaction. New records go
// to the front so the default view reads newest first.
func (s *AppState) AddPjsRecord(on Date, name, detail string, amount decimal.Decimal) PjsRecord {
	r := NewPjsRecord(on, name, detail, amount)
	s.PjsRecords = append([]PjsRecord{r}, s.PjsRecords...)
	return r
}

// RemovePjsRecord deletes a record by id.
func (s *AppState) RemovePjsRecord(id string) bool {
	for i, r := range s.PjsRecords {
		if r.ID == id {
			s.PjsRecords = append(s.PjsRecords[:i], s.PjsRecords[i+1:]...)
			return true
		}
	}
	return false
}

// ReplacePjsRecords discards the whole record collection and installs
// the imported one. Destructive; callers must confirm with the user first.
func (s *AppState) ReplacePjsRecords(records []PjsRecord) {
	s.PjsRecords = records
}

// FindPjsRecord returns the record with the given id, or nil.
func (s *AppState) FindPjsRecord(id string) *PjsRecord {
	for i := range s.PjsRecords {
		if s.PjsRecords[i].ID == id {
			return &s.PjsRecords[i]
		}
	}
	return nil
}

// AddService appends a new service to the price list.
func (s *AppState) AddService(name string, price decimal.Decimal) ServiceItem {
	item := NewServiceItem(name, price)
	s.Inventory = append(s.Inventory, item)
	return item
}

// RemoveService deletes a service by id.
func (s *AppState) RemoveService(id string) bool {
	for i, item := range s.Inventory {
		if item.ID == id {
			s.Inventory = append(s.Inventory[:i], s.Inventory[i+1:]...)
			return true
		}
	}
	return false
}

// ReplaceServices discards the whole price list and installs the
// imported one.
func (s *AppState) ReplaceServices(items []ServiceItem) {
	s.Inventory = items
}

// FindService returns the service with the given id or (uppercased)
// name, or nil.
func (s *AppState) FindService(key string) *ServiceItem {
	for i := range s.Inventory {
		if s.Inventory[i].ID == key || s.Inventory[i].Name == key {
			return &s.Inventory[i]
		}
	}
	return nil
}

// IssueBill builds a receipt, invoice or quotation from an ad-hoc item
// list, numbering it from the shared counter. On success the counter
// advances by exactly one; a failed validation leaves the state
// untouched, so the reference number is never burned.
func (s *AppState) IssueBill(kind DocKind, customer, phone, address string, on Date, notes string, items []DraftItem, now time.Time) (*Document, error) {
	if !kind.UsesCounter() {
		return nil, fmt.Errorf("kind %s is not a billing document", kind)
	}
	docNo := Reference(kind, s.InvCounter, now)
	doc, err := BuildDocument(kind, customer, phone, address, docNo, on, notes, items)
	if err != nil {
		return nil, err
	}
	s.InvCounter++
	return doc, nil
}

// IssueStatement projects the client ledger at idx into an account
// statement over the given range. Statements are timestamp-numbered and
// never advance the shared counter.
func (s *AppState) IssueStatement(idx int, r Range, now time.Time) (*Document, error) {
	client, err := s.ClientAt(idx)
	if err != nil {
		return nil, err
	}
	docNo := Reference(Statement, 0, now)
	return BuildStatement(client, r, docNo, Today()), nil
}
