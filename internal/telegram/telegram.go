// Package telegram validates Telegram mini-app init data so checkout can
// attach a verified customer identity to orders.
package telegram

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"
)

var (
	ErrNoInitData   = errors.New("telegram: no init data")
	ErrBadSignature = errors.New("telegram: init data signature mismatch")
	ErrExpired      = errors.New("telegram: init data too old")
)

// User is the subset of the WebApp user object the storefront cares about.
type User struct {
	ID           int64  `json:"id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Username     string `json:"username"`
	LanguageCode string `json:"language_code"`
}

// Validator checks init data strings against the bot token using the WebApp
// scheme: the signing key is HMAC-SHA256("WebAppData", bot_token) and the
// signature covers the sorted key=value pairs minus the hash itself.
type Validator struct {
	botToken string
	maxAge   time.Duration
	now      func() time.Time
}

// NewValidator builds a Validator. maxAge <= 0 disables the freshness check.
func NewValidator(botToken string, maxAge time.Duration) *Validator {
	return &Validator{botToken: botToken, maxAge: maxAge, now: time.Now}
}

// Enabled reports whether a bot token is configured. Without one, every
// request is treated as anonymous.
func (v *Validator) Enabled() bool {
	return v.botToken != ""
}

// Validate verifies the signature and freshness of raw init data and
// returns the embedded user. Callers treat any error as "anonymous
// customer", never as a request failure.
func (v *Validator) Validate(raw string) (*User, error) {
	if raw == "" || !v.Enabled() {
		return nil, ErrNoInitData
	}

	values, err := url.ParseQuery(raw)
	if err != nil {
		return nil, ErrBadSignature
	}

	gotHash := values.Get("hash")
	if gotHash == "" {
		return nil, ErrBadSignature
	}

	pairs := make([]string, 0, len(values))
	for key := range values {
		if key == "hash" {
			continue
		}
		pairs = append(pairs, key+"="+values.Get(key))
	}
	sort.Strings(pairs)
	checkString := strings.Join(pairs, "\n")

	secret := hmac.New(sha256.New, []byte("WebAppData"))
	secret.Write([]byte(v.botToken))

	mac := hmac.New(sha256.New, secret.Sum(nil))
	mac.Write([]byte(checkString))
	wantHash := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(wantHash), []byte(gotHash)) {
		return nil, ErrBadSignature
	}

	if v.maxAge > 0 {
		authDate, err := strconv.ParseInt(values.Get("auth_date"), 10, 64)
		if err != nil {
			return nil, ErrExpired
		}
		if v.now().Sub(time.Unix(authDate, 0)) > v.maxAge {
			return nil, ErrExpired
		}
	}

	var user User
	if err := json.Unmarshal([]byte(values.Get("user")), &user); err != nil || user.ID == 0 {
		return nil, ErrBadSignature
	}
	return &user, nil
}
