// Package telegram verifies Telegram WebApp init data and extracts the
// embedded user identity.
package telegram

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/url"
	"sort"
	"strings"
)

// Verification failures. Callers must collapse all of these into a single
// generic authentication failure in responses.
var (
	ErrMissingSignature  = errors.New("init data has no hash field")
	ErrSignatureMismatch = errors.New("init data signature mismatch")
	ErrMalformedIdentity = errors.New("init data user field missing or malformed")
)

// Identity is the strictly-typed user record embedded in init data.
// ID and FirstName are required; everything else is optional.
type Identity struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	LanguageCode string `json:"language_code"`
	PhotoURL     string `json:"photo_url"`
}

// secretKeyLabel is the fixed HMAC key Telegram prescribes for deriving the
// per-bot secret from the bot token.
const secretKeyLabel = "WebAppData"

// VerifyInitData validates a WebApp init data payload against the bot token
// and returns the embedded identity. It is a pure function: no side effects,
// and every parse failure is reported as a verification error.
func VerifyInitData(initData, botToken string) (*Identity, error) {
	values, err := url.ParseQuery(initData)
	if err != nil {
		return nil, ErrMalformedIdentity
	}

	receivedHash := values.Get("hash")
	if receivedHash == "" {
		return nil, ErrMissingSignature
	}

	// Canonical check-string: every field except hash as "key=value" (first
	// value per key), sorted lexicographically, joined by newlines. The
	// original field order is irrelevant.
	lines := make([]string, 0, len(values))
	for key, vals := range values {
		if key == "hash" || len(vals) == 0 {
			continue
		}
		lines = append(lines, key+"="+vals[0])
	}
	sort.Strings(lines)
	checkString := strings.Join(lines, "\n")

	if !hmac.Equal([]byte(Sign(checkString, botToken)), []byte(receivedHash)) {
		return nil, ErrSignatureMismatch
	}

	// Query parsing already URL-decoded the value.
	userRaw := values.Get("user")
	if userRaw == "" {
		return nil, ErrMalformedIdentity
	}

	var identity Identity
	if err := json.Unmarshal([]byte(userRaw), &identity); err != nil {
		return nil, ErrMalformedIdentity
	}
	if identity.ID == 0 || identity.FirstName == "" {
		return nil, ErrMalformedIdentity
	}

	return &identity, nil
}

// Sign computes the lowercase-hex HMAC-SHA256 signature of a canonical
// check-string, keyed by the secret derived from the bot token.
func Sign(checkString, botToken string) string {
	keyMAC := hmac.New(sha256.New, []byte(secretKeyLabel))
	keyMAC.Write([]byte(botToken))
	secretKey := keyMAC.Sum(nil)

	mac := hmac.New(sha256.New, secretKey)
	mac.Write([]byte(checkString))
	return hex.EncodeToString(mac.Sum(nil))
}
