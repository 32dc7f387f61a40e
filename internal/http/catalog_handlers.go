package httpapi

import (
	"encoding/json"
	"net/http"

	"inventaris-backend-go/internal/services"
)

// Kategori and lokasi share one handler set; only the table mapping and
// the JSON field names differ.

type KategoriDTO struct {
	Kode string `json:"kode_kategori"`
	Nama string `json:"nama_kategori"`
}

type LokasiDTO struct {
	Kode string `json:"kode_lokasi"`
	Nama string `json:"nama_lokasi"`
}

type kategoriRequest struct {
	Kode     string `json:"kode_kategori"`
	Nama     string `json:"nama_kategori"`
	KodeLama string `json:"kode_kategori_lama"`
}

type lokasiRequest struct {
	Kode     string `json:"kode_lokasi"`
	Nama     string `json:"nama_lokasi"`
	KodeLama string `json:"kode_lokasi_lama"`
}

// listCatalog serves both the full listing and the ?kode= / ?nama=
// existence probes the forms use for live feedback.
func (s *Server) listCatalog(w http.ResponseWriter, r *http.Request, table services.CatalogTable, toDTO func(services.CatalogRow) any) {
	if kode := r.URL.Query().Get("kode"); kode != "" {
		exists, err := table.CodeExists(s.DB, kode)
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "Gagal mengambil data "+table.Label)
			return
		}
		WriteExists(w, exists)
		return
	}
	if nama := r.URL.Query().Get("nama"); nama != "" {
		exists, err := table.NameExists(s.DB, nama)
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "Gagal mengambil data "+table.Label)
			return
		}
		WriteExists(w, exists)
		return
	}
	rows, err := table.List(s.DB)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Gagal mengambil data "+table.Label)
		return
	}
	items := make([]any, 0, len(rows))
	for _, row := range rows {
		items = append(items, toDTO(row))
	}
	WriteJSON(w, http.StatusOK, Envelope{Success: true, Data: items})
}

func (s *Server) ListKategori(w http.ResponseWriter, r *http.Request) {
	s.listCatalog(w, r, services.KategoriTable, func(row services.CatalogRow) any {
		return KategoriDTO{Kode: row.Kode, Nama: row.Nama}
	})
}

func (s *Server) ListLokasi(w http.ResponseWriter, r *http.Request) {
	s.listCatalog(w, r, services.LokasiTable, func(row services.CatalogRow) any {
		return LokasiDTO{Kode: row.Kode, Nama: row.Nama}
	})
}

func (s *Server) CreateKategori(w http.ResponseWriter, r *http.Request) {
	var req kategoriRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Payload tidak valid")
		return
	}
	if err := services.KategoriTable.Create(s.DB, req.Kode, req.Nama); err != nil {
		WriteServiceError(w, err, "Terjadi kesalahan saat menambah kategori")
		return
	}
	WriteSuccess(w, http.StatusCreated, "Kategori berhasil ditambahkan", KategoriDTO{Kode: req.Kode, Nama: req.Nama})
}

func (s *Server) CreateLokasi(w http.ResponseWriter, r *http.Request) {
	var req lokasiRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Payload tidak valid")
		return
	}
	if err := services.LokasiTable.Create(s.DB, req.Kode, req.Nama); err != nil {
		WriteServiceError(w, err, "Terjadi kesalahan saat menambah lokasi")
		return
	}
	WriteSuccess(w, http.StatusCreated, "Lokasi berhasil ditambahkan", LokasiDTO{Kode: req.Kode, Nama: req.Nama})
}

func (s *Server) UpdateKategori(w http.ResponseWriter, r *http.Request) {
	var req kategoriRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Payload tidak valid")
		return
	}
	if err := services.KategoriTable.Update(s.DB, req.Kode, req.Nama, req.KodeLama); err != nil {
		WriteServiceError(w, err, "Terjadi kesalahan saat memperbarui kategori")
		return
	}
	WriteSuccess(w, http.StatusOK, "Kategori berhasil diperbarui", nil)
}

func (s *Server) UpdateLokasi(w http.ResponseWriter, r *http.Request) {
	var req lokasiRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Payload tidak valid")
		return
	}
	if err := services.LokasiTable.Update(s.DB, req.Kode, req.Nama, req.KodeLama); err != nil {
		WriteServiceError(w, err, "Terjadi kesalahan saat memperbarui lokasi")
		return
	}
	WriteSuccess(w, http.StatusOK, "Lokasi berhasil diperbarui", nil)
}

func (s *Server) DeleteKategori(w http.ResponseWriter, r *http.Request) {
	var req kategoriRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Payload tidak valid")
		return
	}
	if err := services.KategoriTable.Delete(s.DB, req.Kode); err != nil {
		WriteServiceError(w, err, "Terjadi kesalahan saat menghapus kategori")
		return
	}
	WriteSuccess(w, http.StatusOK, "Kategori berhasil dihapus", nil)
}

func (s *Server) DeleteLokasi(w http.ResponseWriter, r *http.Request) {
	var req lokasiRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Payload tidak valid")
		return
	}
	if err := services.LokasiTable.Delete(s.DB, req.Kode); err != nil {
		WriteServiceError(w, err, "Terjadi kesalahan saat menghapus lokasi")
		return
	}
	WriteSuccess(w, http.StatusOK, "Lokasi berhasil dihapus", nil)
}
