package practice

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
)

// sharePrefix tags a token as a notarization record snapshot.
const sharePrefix = "share-pjs="

// EncodeShareToken packs one notarization record into a self-contained
// url-safe token. The token carries the full record, so the receiving
// side needs no access to the sender's data.
func EncodeShareToken(record PjsRecord) (string, error) {
	payload, err := json.Marshal(record)
	if err != nil {
		return "", fmt.Errorf("encoding share token: %w", err)
	}
	return sharePrefix + base64.URLEncoding.EncodeToString(payload), nil
}

// DecodeShareToken unpacks a token produced by EncodeShareToken. A
// malformed token is an error, never a crash: the caller reports it and
// moves on. Decoding only reads the token; it never touches the
// register.
func DecodeShareToken(token string) (PjsRecord, error) {
	var record PjsRecord
	token = strings.TrimSpace(token)
	// tolerate a token pasted with its fragment marker
	token = strings.TrimPrefix(token, "#")
	if !strings.HasPrefix(token, sharePrefix) {
		return record, fmt.Errorf("not a share token")
	}
	payload, err := base64.URLEncoding.DecodeString(strings.TrimPrefix(token, sharePrefix))
	if err != nil {
		return record, fmt.Errorf("invalid share token: %w", err)
	}
	if err := json.Unmarshal(payload, &record); err != nil {
		return record, fmt.Errorf("invalid share token: %w", err)
	}
	return record, nil
}
