package practice

import (
	"strings"
	"testing"
)

func TestShareToken_RoundTrip(t *testing.T) {
	record := NewPjsRecord(MustParse("2026-3-1"), "SITI", "SURAT AKUAN", d("10"))

	token, err := EncodeShareToken(record)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(token, "share-pjs=") {
		t.Fatalf("token = %q, want share-pjs= prefix", token)
	}
	// a token travels in urls and chat messages
	if strings.ContainsAny(token, " \n+/") {
		t.Errorf("token %q is not url-safe", token)
	}

	got, err := DecodeShareToken(token)
	if err != nil {
		t.Fatal(err)
	}
	if got.ID != record.ID || got.Name != "SITI" || !got.Amount.Equal(d("10")) {
		t.Errorf("decoded record = %+v", got)
	}
	if got.Date != MustParse("2026-3-1") {
		t.Errorf("decoded date = %s", got.Date)
	}
}

func TestDecodeShareToken_ToleratesFragmentMarker(t *testing.T) {
	token, err := EncodeShareToken(NewPjsRecord(Today(), "ALI", "PERAKUAN", d("7.50")))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := DecodeShareToken("  #" + token + "  "); err != nil {
		t.Errorf("pasted token with fragment marker rejected: %v", err)
	}
}

func TestDecodeShareToken_CarriesOneRecord(t *testing.T) {
	// sharing is read-only: the token holds exactly one record, and
	// decoding it leaves any register alone by construction.
	record := NewPjsRecord(MustParse("2026-1-5"), "ABU", "SURAT", d("4"))
	token, err := EncodeShareToken(record)
	if err != nil {
		t.Fatal(err)
	}
	got, err := DecodeShareToken(token)
	if err != nil {
		t.Fatal(err)
	}
	if got.Detail != "SURAT" || !got.Amount.Equal(d("4")) {
		t.Errorf("decoded record = %+v", got)
	}
}

func TestDecodeShareToken_Malformed(t *testing.T) {
	for _, token := range []string{
		"",
		"not a token",
		"share-pjs=!!!not base64!!!",
		"share-pjs=bm90IGpzb24", // base64 of "not json"
	} {
		if _, err := DecodeShareToken(token); err == nil {
			t.Errorf("token %q must be rejected", token)
		}
	}
}
