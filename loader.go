package practice

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// DefaultStateFile is the state location when nothing else is configured.
const DefaultStateFile = "hm.json"

// LoadState reads the practice state from path. A missing file is not
// an error: the practice starts empty, so a fresh default state is
// returned and a warning logged. A corrupt file is treated the same
// way rather than blocking every command.
func LoadState(path string) *AppState {
	f, err := os.Open(path)
	if err != nil {
		log.Printf("warning: cannot open %q, starting with an empty practice: %v", path, err)
		return NewAppState()
	}
	defer f.Close()

	s, err := DecodeState(f)
	if err != nil {
		log.Printf("warning: cannot read %q, starting with an empty practice: %v", path, err)
		return NewAppState()
	}
	return s
}

// SaveState atomically writes the whole state to path: the record is
// staged in a temp file then renamed over the target, so a crash mid
// write never leaves a truncated state behind.
func SaveState(path string, s *AppState) error {
	var buf bytes.Buffer
	if err := EncodeState(&buf, s); err != nil {
		return fmt.Errorf("encoding state: %w", err)
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating %q: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, ".hm-*.json")
	if err != nil {
		return fmt.Errorf("staging state: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return fmt.Errorf("writing state: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing state: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replacing %q: %w", path, err)
	}
	return nil
}
