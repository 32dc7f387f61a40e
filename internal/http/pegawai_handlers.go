package httpapi

import (
	"encoding/json"
	"net/http"

	"inventaris-backend-go/internal/services"
)

type PegawaiRequest struct {
	IDPegawai string `json:"id_pegawai" validate:"required"`
	Nama      string `json:"nama_pegawai" validate:"required"`
	Jabatan   string `json:"jabatan" validate:"required"`
	NoHP      string `json:"no_hp" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required"`
}

func (s *Server) CreatePegawai(w http.ResponseWriter, r *http.Request) {
	var req PegawaiRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Payload tidak valid")
		return
	}
	if err := s.Validate.Struct(req); err != nil {
		if field := firstInvalidField(err); field == "Email" && req.Email != "" {
			WriteError(w, http.StatusBadRequest, "Format email tidak valid")
			return
		}
		WriteError(w, http.StatusBadRequest, "Semua field pegawai harus diisi")
		return
	}
	err := services.CreatePegawai(s.DB, services.PegawaiInput{
		IDPegawai: req.IDPegawai,
		Nama:      req.Nama,
		Jabatan:   req.Jabatan,
		NoHP:      req.NoHP,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		WriteServiceError(w, err, "Terjadi kesalahan server")
		return
	}
	WriteSuccess(w, http.StatusCreated, "Pegawai berhasil ditambahkan", nil)
}
