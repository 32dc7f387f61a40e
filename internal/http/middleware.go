package httpapi

import (
	"context"
	"log"
	"net/http"
	"time"

	"inventaris-backend-go/internal/session"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Write(p []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	n, err := r.ResponseWriter.Write(p)
	r.bytes += n
	return n, err
}

func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w}
		next.ServeHTTP(recorder, r)
		if recorder.status == 0 {
			recorder.status = http.StatusOK
		}
		log.Printf("%s %s %d %dB %s", r.Method, r.URL.Path, recorder.status, recorder.bytes, time.Since(start))
	})
}

type contextKey string

const ctxSession contextKey = "session"

// SessionGate enforces the role-to-prefix mapping on the dashboard pages.
// The decision is delegated to the pure gate; on allow the decoded payload
// rides along in the context for the page handlers.
func SessionGate(gate session.Gate) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := ""
			if cookie, err := r.Cookie(session.CookieName); err == nil {
				raw = cookie.Value
			}
			decision := gate.Decide(r.URL.Path, raw)
			if !decision.Allow {
				http.Redirect(w, r, decision.Redirect, http.StatusTemporaryRedirect)
				return
			}
			payload, err := session.Decode(raw)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}
			ctx := context.WithValue(r.Context(), ctxSession, payload)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CurrentSession returns the decoded session payload, if any.
func CurrentSession(r *http.Request) (session.Payload, bool) {
	payload, ok := r.Context().Value(ctxSession).(session.Payload)
	return payload, ok
}
