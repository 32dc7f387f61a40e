package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"inventaris-backend-go/internal/services"
)

type PeminjamanRequest struct {
	ID           string `json:"id_peminjaman"`
	NamaPeminjam string `json:"nama_peminjam" validate:"required"`
	Alamat       string `json:"alamat" validate:"required"`
}

type PeminjamanDTO struct {
	ID           string    `json:"id_peminjaman"`
	NamaPeminjam string    `json:"nama_peminjam"`
	Alamat       string    `json:"alamat"`
	CreatedAt    time.Time `json:"created_at"`
}

func (s *Server) CreatePeminjaman(w http.ResponseWriter, r *http.Request) {
	var req PeminjamanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Payload tidak valid")
		return
	}
	if err := s.Validate.Struct(req); err != nil {
		WriteError(w, http.StatusBadRequest, "Nama peminjam dan alamat harus diisi")
		return
	}
	row, err := services.CreatePeminjaman(s.DB, services.PeminjamanInput{
		ID:           req.ID,
		NamaPeminjam: req.NamaPeminjam,
		Alamat:       req.Alamat,
	})
	if err != nil {
		WriteServiceError(w, err, "Gagal insert data")
		return
	}
	WriteSuccess(w, http.StatusCreated, "Data berhasil disimpan", PeminjamanDTO{
		ID:           row.ID,
		NamaPeminjam: row.NamaPeminjam,
		Alamat:       row.Alamat,
		CreatedAt:    row.CreatedAt,
	})
}

func (s *Server) ListPeminjaman(w http.ResponseWriter, r *http.Request) {
	rows, err := services.ListPeminjaman(s.DB)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Gagal mengambil data peminjaman")
		return
	}
	items := make([]PeminjamanDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, PeminjamanDTO{
			ID:           row.ID,
			NamaPeminjam: row.NamaPeminjam,
			Alamat:       row.Alamat,
			CreatedAt:    row.CreatedAt,
		})
	}
	WriteJSON(w, http.StatusOK, Envelope{Success: true, Data: items})
}
