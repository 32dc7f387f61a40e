package session

import "strings"

// Gate maps route prefixes to the role allowed through them. Decide is a
// pure function of (path, cookie value) so it can be tested without a
// request in flight.
type Gate struct {
	AdminPrefixes []string
	UserPrefix    string
	LoginPath     string
	AdminHome     string
	UserHome      string
}

func DefaultGate() Gate {
	return Gate{
		AdminPrefixes: []string{"/dashboard", "/barang", "/kategori", "/lokasi-penyimpanan", "/account-settings"},
		UserPrefix:    "/user-dashboard",
		LoginPath:     "/login",
		AdminHome:     "/dashboard",
		UserHome:      "/user-dashboard",
	}
}

// Decision is either allow or a redirect target.
type Decision struct {
	Allow    bool
	Redirect string
}

var allow = Decision{Allow: true}

func redirect(target string) Decision {
	return Decision{Redirect: target}
}

// Decide evaluates the gate for a request path and raw cookie value. An
// absent or unparsable cookie is treated identically: back to login.
func (g Gate) Decide(path, rawCookie string) Decision {
	isAdminRoute := false
	for _, prefix := range g.AdminPrefixes {
		if strings.HasPrefix(path, prefix) {
			isAdminRoute = true
			break
		}
	}
	isUserRoute := strings.HasPrefix(path, g.UserPrefix)
	if !isAdminRoute && !isUserRoute {
		return allow
	}

	payload, err := Decode(rawCookie)
	if err != nil {
		return redirect(g.LoginPath)
	}
	if isAdminRoute && payload.Role != "admin" {
		return redirect(g.UserHome)
	}
	if isUserRoute && payload.Role == "admin" {
		return redirect(g.AdminHome)
	}
	return allow
}
