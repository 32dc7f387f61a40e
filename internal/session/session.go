// Package session implements the cookie-carried session used by the
// dashboard pages: a JSON payload in the user_session cookie and a pure
// route gate deciding allow-or-redirect per request.
package session

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"time"
)

// CookieName matches what the frontend reads.
const CookieName = "user_session"

// MaxAge is the fixed cookie lifetime. There is no server-side session
// store, so logout does not invalidate the cookie before this expiry.
const MaxAge = 7 * 24 * time.Hour

// Payload is the session claim set. The role drives the route gate.
type Payload struct {
	ID    string `json:"id"`
	Nama  string `json:"nama"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// NewCookie serializes the payload as percent-encoded JSON, the same wire
// form the previous frontend wrote.
func NewCookie(payload Payload, secure bool) (*http.Cookie, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return &http.Cookie{
		Name:     CookieName,
		Value:    url.QueryEscape(string(raw)),
		Path:     "/",
		MaxAge:   int(MaxAge.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}, nil
}

// Decode parses a raw cookie value back into a Payload. Any failure means
// "no session"; callers fall back to the login redirect.
func Decode(value string) (Payload, error) {
	if value == "" {
		return Payload{}, errors.New("empty session value")
	}
	unescaped, err := url.QueryUnescape(value)
	if err != nil {
		unescaped = value
	}
	var payload Payload
	if err := json.Unmarshal([]byte(unescaped), &payload); err != nil {
		return Payload{}, err
	}
	if payload.Role == "" {
		return Payload{}, errors.New("session missing role")
	}
	return payload, nil
}

// FromRequest extracts and decodes the session cookie.
func FromRequest(r *http.Request) (Payload, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return Payload{}, err
	}
	return Decode(cookie.Value)
}
