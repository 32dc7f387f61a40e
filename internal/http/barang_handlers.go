package httpapi

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"net/http"

	"inventaris-backend-go/internal/models"
	"inventaris-backend-go/internal/services"
)

type BarangDTO struct {
	Kode         string  `json:"kode_barang"`
	Nama         string  `json:"nama_barang"`
	KodeKategori string  `json:"kode_kategori"`
	KodeLokasi   string  `json:"kode_lokasi"`
	Kondisi      string  `json:"kondisi"`
	Status       string  `json:"status"`
	Jumlah       int     `json:"jumlah"`
	Deskripsi    *string `json:"deskripsi"`
	Gambar       *string `json:"gambar,omitempty"`
}

// barangRequest keeps gambar as raw JSON so an absent field, an explicit
// null and a base64 string stay distinguishable on update.
type barangRequest struct {
	Kode         string          `json:"kode_barang"`
	Nama         string          `json:"nama_barang"`
	KodeKategori string          `json:"kode_kategori"`
	KodeLokasi   string          `json:"kode_lokasi"`
	Kondisi      string          `json:"kondisi"`
	Status       string          `json:"status"`
	Jumlah       *int            `json:"jumlah"`
	Deskripsi    *string         `json:"deskripsi"`
	Gambar       json.RawMessage `json:"gambar"`
	KodeLama     string          `json:"kode_barang_lama"`
}

func (req barangRequest) input() services.BarangInput {
	return services.BarangInput{
		Kode:         req.Kode,
		Nama:         req.Nama,
		KodeKategori: req.KodeKategori,
		KodeLokasi:   req.KodeLokasi,
		Kondisi:      req.Kondisi,
		Status:       req.Status,
		Jumlah:       req.Jumlah,
		Deskripsi:    req.Deskripsi,
	}
}

// gambarPatch decodes the raw gambar field. nil RawMessage means the field
// was absent; JSON null or an empty string clears the stored image.
func gambarPatch(raw json.RawMessage) (services.GambarPatch, error) {
	if raw == nil {
		return services.GambarPatch{}, nil
	}
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return services.GambarPatch{Provided: true}, nil
	}
	var encoded string
	if err := json.Unmarshal(raw, &encoded); err != nil {
		return services.GambarPatch{}, err
	}
	if encoded == "" {
		return services.GambarPatch{Provided: true}, nil
	}
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return services.GambarPatch{}, err
	}
	return services.GambarPatch{Provided: true, Data: data}, nil
}

func barangDTO(row models.Barang) BarangDTO {
	dto := BarangDTO{
		Kode:         row.Kode,
		Nama:         row.Nama,
		KodeKategori: row.KodeKategori,
		KodeLokasi:   row.KodeLokasi,
		Kondisi:      row.Kondisi,
		Status:       row.Status,
		Jumlah:       row.Jumlah,
		Deskripsi:    row.Deskripsi,
	}
	if len(row.Gambar) > 0 {
		encoded := base64.StdEncoding.EncodeToString(row.Gambar)
		dto.Gambar = &encoded
	}
	return dto
}

func (s *Server) ListBarang(w http.ResponseWriter, r *http.Request) {
	if kode := r.URL.Query().Get("kode"); kode != "" {
		exists, err := services.BarangTable.CodeExists(s.DB, kode)
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "Gagal mengambil data barang")
			return
		}
		WriteExists(w, exists)
		return
	}
	rows, err := services.ListBarang(s.DB)
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

func (s *Server) CreateBarang(w http.ResponseWriter, r *http.Request) {
	var req barangRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Payload tidak valid")
		return
	}
	patch, err := gambarPatch(req.Gambar)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "Gambar tidak valid")
		return
	}
	if err := services.CreateBarang(s.DB, req.input(), patch.Data); err != nil {
		WriteServiceError(w, err, "Terjadi kesalahan saat menambah barang")
		return
	}
	WriteSuccess(w, http.StatusCreated, "Barang berhasil ditambahkan", BarangDTO{
		Kode:         req.Kode,
		Nama:         req.Nama,
		KodeKategori: req.KodeKategori,
		KodeLokasi:   req.KodeLokasi,
		Kondisi:      req.Kondisi,
		Status:       req.Status,
		Jumlah:       derefInt(req.Jumlah),
		Deskripsi:    req.Deskripsi,
	})
}

func (s *Server) UpdateBarang(w http.ResponseWriter, r *http.Request) {
	var req barangRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Payload tidak valid")
		return
	}
	patch, err := gambarPatch(req.Gambar)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "Gambar tidak valid")
		return
	}
	if err := services.UpdateBarang(s.DB, req.input(), req.KodeLama, patch); err != nil {
		WriteServiceError(w, err, "Terjadi kesalahan saat memperbarui barang")
		return
	}
	WriteSuccess(w, http.StatusOK, "Barang berhasil diperbarui", nil)
}

func (s *Server) DeleteBarang(w http.ResponseWriter, r *http.Request) {
	var req barangRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Payload tidak valid")
		return
	}
	if err := services.DeleteBarang(s.DB, req.Kode); err != nil {
		WriteServiceError(w, err, "Terjadi kesalahan saat menghapus barang")
		return
	}
	WriteSuccess(w, http.StatusOK, "Barang berhasil dihapus", nil)
}

func derefInt(value *int) int {
	if value == nil {
		return 0
	}
	return *value
}
