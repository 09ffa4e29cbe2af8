package practice

import (
	"errors"
	"strings"
	"testing"
	"time"
)

var testNow = time.Date(2026, time.March, 15, 10, 0, 0, 0, time.UTC)

func testItems() []DraftItem {
	return []DraftItem{{Name: "FEE", Price: d("10"), Qty: 1}}
}

func TestIssueBill_SharedCounterInterleaves(t *testing.T) {
	s := NewAppState()

	inv, err := s.IssueBill(Invoice, "ALI", "", "", Today(), "", testItems(), testNow)
	if err != nil {
		t.Fatal(err)
	}
	res, err := s.IssueBill(Receipt, "ALI", "", "", Today(), "", testItems(), testNow)
	if err != nil {
		t.Fatal(err)
	}
	qtn, err := s.IssueBill(Quotation, "ALI", "", "", Today(), "", testItems(), testNow)
	if err != nil {
		t.Fatal(err)
	}

	got := []string{inv.DocNo, res.DocNo, qtn.DocNo}
	want := []string{"INV-20260001", "RES-20260002", "QTN-20260003"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("doc %d = %q, want %q", i, got[i], want[i])
		}
	}
	if s.InvCounter != 4 {
		t.Errorf("counter = %d, want 4", s.InvCounter)
	}
}

func TestIssueBill_RejectedValidationDoesNotBurnNumbers(t *testing.T) {
	s := NewAppState()

	if _, err := s.IssueBill(Receipt, "", "", "", Today(), "", testItems(), testNow); !errors.Is(err, ErrMissingCustomer) {
		t.Fatalf("got %v, want ErrMissingCustomer", err)
	}
	if _, err := s.IssueBill(Receipt, "ALI", "", "", Today(), "", nil, testNow); !errors.Is(err, ErrEmptyItemList) {
		t.Fatalf("got %v, want ErrEmptyItemList", err)
	}
	if s.InvCounter != 1 {
		t.Fatalf("counter advanced to %d on rejected documents", s.InvCounter)
	}

	doc, err := s.IssueBill(Receipt, "ALI", "", "", Today(), "", testItems(), testNow)
	if err != nil {
		t.Fatal(err)
	}
	if doc.DocNo != "RES-20260001" {
		t.Errorf("first accepted document = %q, want RES-20260001", doc.DocNo)
	}
}

func TestIssueBill_RejectsStatementKind(t *testing.T) {
	s := NewAppState()
	if _, err := s.IssueBill(Statement, "ALI", "", "", Today(), "", testItems(), testNow); err == nil {
		t.Fatal("statement kind must not issue through the billing path")
	}
}

func TestIssueStatement_DoesNotAdvanceCounter(t *testing.T) {
	s := NewAppState()
	s.AddClient("ALI", "KES", "", "", d("1000"))

	doc, err := s.IssueStatement(0, Range{}, testNow)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(doc.DocNo, "STMT-") {
		t.Errorf("statement doc no = %q", doc.DocNo)
	}
	if s.InvCounter != 1 {
		t.Errorf("statement advanced the counter to %d", s.InvCounter)
	}

	if _, err := s.IssueStatement(7, Range{}, testNow); err == nil {
		t.Error("statement for a missing client must fail")
	}
}

func TestAddPjsRecord_Prepends(t *testing.T) {
	s := NewAppState()
	s.AddPjsRecord(MustParse("2026-1-1"), "FIRST", "", d("10"))
	s.AddPjsRecord(MustParse("2026-1-2"), "SECOND", "", d("10"))

	if s.PjsRecords[0].Name != "SECOND" {
		t.Errorf("newest record must be first, got %q", s.PjsRecords[0].Name)
	}
}

func TestRemoveClient_ClearsOpenLedger(t *testing.T) {
	s := NewAppState()
	s.AddClient("ALI", "KES", "", "", d("100"))
	s.AddClient("ABU", "KES", "", "", d("200"))

	if err := s.OpenLedger(1); err != nil {
		t.Fatal(err)
	}
	s.RemoveClient(s.Clients[0].ID)

	if s.ActiveClientIdx != nil {
		t.Error("removing a client must clear the open ledger view")
	}
}

func TestOpenCloseLedger(t *testing.T) {
	s := NewAppState()
	s.AddClient("ALI", "KES", "", "", d("100"))

	if err := s.OpenLedger(3); err == nil {
		t.Error("opening a missing client must fail")
	}
	if err := s.OpenLedger(0); err != nil {
		t.Fatal(err)
	}
	if s.ActiveClient() == nil || s.ActiveClient().Name != "ALI" {
		t.Error("active client not resolved")
	}

	s.CloseLedger()
	s.CloseLedger() // closing twice is a no-op
	if s.ActiveClient() != nil {
		t.Error("close must clear the active client")
	}
}

func TestActiveClient_DistrustsStoredIndex(t *testing.T) {
	s := NewAppState()
	s.AddClient("ALI", "KES", "", "", d("100"))

	// a restored or hand-edited state file may carry any index
	for _, idx := range []int{-1, 1, 99} {
		i := idx
		s.ActiveClientIdx = &i
		if s.ActiveClient() != nil {
			t.Errorf("index %d must resolve to no client", idx)
		}
	}
}

func TestRemovers(t *testing.T) {
	s := NewAppState()
	c := s.AddClient("ALI", "KES", "", "", d("100"))
	r := s.AddPjsRecord(Today(), "SITI", "SURAT", d("10"))
	item := s.AddService("AFFIDAVIT", d("10"))

	if !s.RemoveClient(c.ID) || s.RemoveClient(c.ID) {
		t.Error("client removal: first must succeed, second must fail")
	}
	if !s.RemovePjsRecord(r.ID) || s.RemovePjsRecord(r.ID) {
		t.Error("record removal: first must succeed, second must fail")
	}
	if !s.RemoveService(item.ID) || s.RemoveService(item.ID) {
		t.Error("service removal: first must succeed, second must fail")
	}
}

func TestFindService_ByNameOrID(t *testing.T) {
	s := NewAppState()
	item := s.AddService("affidavit", d("10"))

	if svc := s.FindService("AFFIDAVIT"); svc == nil || svc.ID != item.ID {
		t.Error("service not found by uppercased name")
	}
	if svc := s.FindService(item.ID); svc == nil {
		t.Error("service not found by id")
	}
	if svc := s.FindService("NOPE"); svc != nil {
		t.Error("unexpected service match")
	}
}

func TestReplaceCollections(t *testing.T) {
	s := NewAppState()
	s.AddClient("OLD", "KES", "", "", d("100"))
	s.OpenLedger(0)
	s.AddPjsRecord(Today(), "OLD", "", d("1"))

	s.ReplaceClients([]Client{NewClient("NEW", "KES", "", "", d("1"))})
	if len(s.Clients) != 1 || s.Clients[0].Name != "NEW" {
		t.Error("client book not replaced")
	}
	if s.ActiveClientIdx != nil {
		t.Error("replacing the book must clear the open ledger view")
	}

	s.ReplacePjsRecords(nil)
	if len(s.PjsRecords) != 0 {
		t.Error("register not replaced")
	}
}
