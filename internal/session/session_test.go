package session

import (
	"net/url"
	"testing"
)

func TestCookieRoundTrip(t *testing.T) {
	payload := Payload{ID: "ADM01", Nama: "Budi", Email: "budi@example.com", Role: "admin"}

	cookie, err := NewCookie(payload, false)
	if err != nil {
		t.Fatalf("NewCookie: %v", err)
	}
	if cookie.Name != CookieName {
		t.Errorf("expected cookie name %q, got %q", CookieName, cookie.Name)
	}
	if !cookie.HttpOnly {
		t.Error("expected httpOnly cookie")
	}
	if cookie.MaxAge != int(MaxAge.Seconds()) {
		t.Errorf("expected max age %d, got %d", int(MaxAge.Seconds()), cookie.MaxAge)
	}

	decoded, err := Decode(cookie.Value)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if decoded != payload {
		t.Errorf("expected %+v, got %+v", payload, decoded)
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	for _, value := range []string{"", "not-json", url.QueryEscape("{\"id\":1"), url.QueryEscape(`{"id":"1"}`)} {
		if _, err := Decode(value); err == nil {
			t.Errorf("expected error decoding %q", value)
		}
	}
}

func TestGateDecide(t *testing.T) {
	gate := DefaultGate()
	adminCookie := mustCookieValue(t, Payload{ID: "1", Nama: "A", Email: "a@x.id", Role: "admin"})
	userCookie := mustCookieValue(t, Payload{ID: "2", Nama: "U", Email: "u@x.id", Role: "user"})

	tests := []struct {
		name     string
		path     string
		cookie   string
		allow    bool
		redirect string
	}{
		{"public path no cookie", "/login", "", true, ""},
		{"admin path no cookie", "/dashboard", "", false, "/login"},
		{"admin subpath no cookie", "/barang/list", "", false, "/login"},
		{"admin path bad cookie", "/dashboard", "{{{", false, "/login"},
		{"admin path user role", "/kategori", userCookie, false, "/user-dashboard"},
		{"admin path admin role", "/lokasi-penyimpanan", adminCookie, true, ""},
		{"user dashboard admin role", "/user-dashboard", adminCookie, false, "/dashboard"},
		{"user dashboard user role", "/user-dashboard", userCookie, true, ""},
		{"user dashboard no cookie", "/user-dashboard", "", false, "/login"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := gate.Decide(tt.path, tt.cookie)
			if decision.Allow != tt.allow {
				t.Fatalf("expected allow=%v, got %+v", tt.allow, decision)
			}
			if decision.Redirect != tt.redirect {
				t.Errorf("expected redirect %q, got %q", tt.redirect, decision.Redirect)
			}
		})
	}
}

func mustCookieValue(t *testing.T, payload Payload) string {
	t.Helper()
	cookie, err := NewCookie(payload, false)
	if err != nil {
		t.Fatalf("NewCookie: %v", err)
	}
	return cookie.Value
}
