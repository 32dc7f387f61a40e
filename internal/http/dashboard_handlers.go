package httpapi

import (
	"net/http"

	"inventaris-backend-go/internal/services"
)

// AdminDashboard serves the inventory summary behind the admin gate. The
// gate has already redirected anyone without an admin session.
func (s *Server) AdminDashboard(w http.ResponseWriter, r *http.Request) {
	summary, err := services.SummarizeInventory(s.DB)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Gagal mengambil ringkasan inventaris")
		return
	}
	WriteJSON(w, http.StatusOK, Envelope{Success: true, Data: summary})
}

// UserDashboard lists what is currently available to borrow.
func (s *Server) UserDashboard(w http.ResponseWriter, r *http.Request) {
	rows, err := services.AvailableBarang(s.DB)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Gagal mengambil data barang")
		return
	}
	items := make([]BarangDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, barangDTO(row))
	}
	WriteJSON(w, http.StatusOK, Envelope{Success: true, Data: items})
}
