package httpapi

import (
	"net/http"
	"strconv"

	"inventaris-backend-go/internal/services"
	"inventaris-backend-go/internal/session"

	"github.com/gorilla/websocket"
)

// requireAdminSession guards the ops endpoints with the same session
// cookie the gate reads; only admins see server metrics.
func requireAdminSession(r *http.Request) bool {
	payload, err := session.FromRequest(r)
	return err == nil && payload.Role == "admin"
}

func (s *Server) MetricsHistory(w http.ResponseWriter, r *http.Request) {
	if !requireAdminSession(r) {
		WriteError(w, http.StatusUnauthorized, "Autentikasi diperlukan")
		return
	}
	limit := parseInt(r.URL.Query().Get("limit"), 120)
	if limit > 500 {
		limit = 500
	}
	items, err := services.LatestMetrics(s.DB, limit)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Gagal mengambil data metrik")
		return
	}
	WriteJSON(w, http.StatusOK, Envelope{Success: true, Data: items})
}

func (s *Server) MetricsSocket(w http.ResponseWriter, r *http.Request) {
	if !requireAdminSession(r) {
		WriteError(w, http.StatusUnauthorized, "Autentikasi diperlukan")
		return
	}
	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool { return true },
	}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	s.MetricsHub.Add(conn)
	defer func() {
		s.MetricsHub.Remove(conn)
		_ = conn.Close()
	}()
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}

func parseInt(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}
