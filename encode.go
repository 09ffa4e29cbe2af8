package practice

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	// amounts are persisted as plain json numbers
	decimal.MarshalJSONWithoutQuotes = true
}

// MarshalJSON writes the state with a stable key order so two saves of
// the same state are byte-identical.
func (s *AppState) MarshalJSON() ([]byte, error) {
	w := &jsonObjectWriter{}
	w.Append("clients", s.Clients)
	w.Append("pjsRecords", s.PjsRecords)
	w.Append("inventory", s.Inventory)
	w.Append("invCounter", s.InvCounter)
	w.Optional("firmLogo", s.FirmLogo)
	w.Append("currentPage", s.CurrentPage)
	w.Append("activeClientIdx", s.ActiveClientIdx)
	w.Append("theme", s.Theme)
	return w.MarshalJSON()
}

// EncodeState writes the state as indented json.
func EncodeState(w io.Writer, s *AppState) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

// DecodeState reads a state previously written by EncodeState.
func DecodeState(r io.Reader) (*AppState, error) {
	s := NewAppState()
	if err := json.NewDecoder(r).Decode(s); err != nil {
		return nil, err
	}
	if s.InvCounter < 1 {
		s.InvCounter = 1
	}
	return s, nil
}

// RestoreState validates a backup payload and returns the restored
// state. A payload missing the clients or pjsRecords collections is
// rejected outright, so a restore can never half-apply.
func RestoreState(r io.Reader) (*AppState, error) {
	var probe map[string]json.RawMessage
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading backup: %w", err)
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, fmt.Errorf("invalid backup: %w", err)
	}
	for _, key := range []string{"clients", "pjsRecords"} {
		field, ok := probe[key]
		if !ok {
			return nil, fmt.Errorf("invalid backup: missing %q", key)
		}
		var list []json.RawMessage
		if err := json.Unmarshal(field, &list); err != nil {
			return nil, fmt.Errorf("invalid backup: %q is not a list: %w", key, err)
		}
	}
	s := NewAppState()
	if err := json.Unmarshal(raw, s); err != nil {
		return nil, fmt.Errorf("invalid backup: %w", err)
	}
	if s.InvCounter < 1 {
		s.InvCounter = 1
	}
	return s, nil
}
