// Package mirror pushes practice records to an external spreadsheet
// web endpoint. The mirror is a convenience copy only: the local state
// stays the source of truth, and a push that fails is logged and
// dropped, never retried and never blocking the local write.
package mirror

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/PaesslerAG/jsonpath"
)

// A Row is one record pushed to the sheet, already flattened to the
// sheet's column model.
type Row struct {
	Sheet  string `json:"sheet"`
	Date   string `json:"date"`
	Name   string `json:"name"`
	Detail string `json:"detail"`
	Amount string `json:"amount"`
}

// Mirror receives rows for the external sheet.
type Mirror interface {
	// Push sends one row. Implementations must not block the caller
	// beyond a short timeout and must swallow their own failures.
	Push(row Row)
}

// Nop is the mirror used when no endpoint is configured.
type Nop struct{}

func (Nop) Push(Row) {}

// Sheet posts rows to a web-app endpoint that appends them to a
// spreadsheet.
type Sheet struct {
	addr   string
	client *http.Client
}

// NewSheet returns a mirror posting to addr.
func NewSheet(addr string) *Sheet {
	return &Sheet{
		addr:   addr,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// Push sends the row and checks the endpoint's ack. Any failure is
// logged and discarded: the sheet is best-effort by contract.
func (s *Sheet) Push(row Row) {
	if err := s.push(row); err != nil {
		log.Printf("warning: sheet mirror push dropped: %v", err)
	}
}

func (s *Sheet) push(row Row) error {
	payload, err := json.Marshal(row)
	if err != nil {
		return err
	}
	resp, err := s.client.Post(s.addr, "application/json", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		return fmt.Errorf("cannot http POST %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return err
	}
	var jobj any
	if err := json.Unmarshal(buf.Bytes(), &jobj); err != nil {
		return fmt.Errorf("invalid ack: %w", err)
	}
	jval, err := jsonpath.Get("$.result", jobj)
	if err != nil {
		return fmt.Errorf("invalid ack: %w", err)
	}
	// jsonpath is never clear about whether it returns a list of 1
	// answer or a single answer: keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	if result, ok := jval.(string); !ok || result != "success" {
		return fmt.Errorf("endpoint rejected row: %v", jval)
	}
	return nil
}
