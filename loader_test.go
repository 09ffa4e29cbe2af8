package practice

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadState_MissingFileStartsEmpty(t *testing.T) {
	s := LoadState(filepath.Join(t.TempDir(), "nope.json"))
	if s == nil {
		t.Fatal("missing file must yield a default state")
	}
	if len(s.Clients) != 0 || s.InvCounter != 1 {
		t.Error("default state is not empty")
	}
}

func TestLoadState_CorruptFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hm.json")
	if err := os.WriteFile(path, []byte("{{{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	s := LoadState(path)
	if s == nil || len(s.Clients) != 0 {
		t.Error("corrupt file must yield a default state")
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deep", "hm.json")

	s := NewAppState()
	s.AddClient("ALI", "KES", "", "", d("1000"))
	s.InvCounter = 3

	if err := SaveState(path, s); err != nil {
		t.Fatal(err)
	}
	got := LoadState(path)
	if len(got.Clients) != 1 || got.InvCounter != 3 {
		t.Error("state did not survive save/load")
	}

	// no staging files may survive
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("want only the state file in the dir, found %d entries", len(entries))
	}
}

func TestSaveState_OverwritesAtomically(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hm.json")

	first := NewAppState()
	first.AddClient("FIRST", "KES", "", "", d("1"))
	if err := SaveState(path, first); err != nil {
		t.Fatal(err)
	}

	second := NewAppState()
	second.AddClient("SECOND", "KES", "", "", d("2"))
	if err := SaveState(path, second); err != nil {
		t.Fatal(err)
	}

	got := LoadState(path)
	if len(got.Clients) != 1 || got.Clients[0].Name != "SECOND" {
		t.Error("save must replace the whole record")
	}
}
