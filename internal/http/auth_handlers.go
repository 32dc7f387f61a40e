package httpapi

import (
	"encoding/json"
	"net/http"

	"inventaris-backend-go/internal/services"
	"inventaris-backend-go/internal/session"
)

type LoginRequest struct {
	Email string `json:"email"`
	Pass  string `json:"pass"`
}

type RegisterRequest struct {
	IDAdmin  string `json:"id_admin" validate:"required"`
	Nama     string `json:"nama" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AccountDTO struct {
	ID    string `json:"id"`
	Nama  string `json:"nama"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Email dan password harus diisi")
		return
	}
	account, err := services.Authenticate(s.DB, req.Email, req.Pass)
	if err != nil {
		WriteServiceError(w, err, "Terjadi kesalahan saat login")
		return
	}
	payload := session.Payload{ID: account.ID, Nama: account.Nama, Email: account.Email, Role: account.Role}
	cookie, err := session.NewCookie(payload, s.Config.CookieSecure)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Terjadi kesalahan saat login")
		return
	}
	http.SetCookie(w, cookie)
	WriteJSON(w, http.StatusOK, Envelope{
		Success: true,
		Message: "Login berhasil",
		Role:    account.Role,
		Data:    AccountDTO(payload),
	})
}

func (s *Server) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Payload tidak valid")
		return
	}
	if err := s.Validate.Struct(req); err != nil {
		if field := firstInvalidField(err); field == "Email" && req.Email != "" {
			WriteError(w, http.StatusBadRequest, "Format email tidak valid")
			return
		}
		WriteError(w, http.StatusBadRequest, "Semua field harus diisi: id_admin, nama, email, password")
		return
	}
	err := services.RegisterAdmin(s.DB, services.AdminInput{
		IDAdmin:  req.IDAdmin,
		Nama:     req.Nama,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		WriteServiceError(w, err, "Terjadi kesalahan server")
		return
	}
	WriteSuccess(w, http.StatusCreated, "Registrasi berhasil! Silakan login.", nil)
}
