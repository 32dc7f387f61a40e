package services

import (
	"strings"

	"inventaris-backend-go/internal/db"
	"inventaris-backend-go/internal/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type PeminjamanInput struct {
	ID           string
	NamaPeminjam string
	Alamat       string
}

// CreatePeminjaman records a loan request. The id is caller-assigned when
// the form supplies one, otherwise generated.
func CreatePeminjaman(database *sqlx.DB, input PeminjamanInput) (models.Peminjaman, error) {
	input.NamaPeminjam = strings.TrimSpace(input.NamaPeminjam)
	input.Alamat = strings.TrimSpace(input.Alamat)
	if input.NamaPeminjam == "" || input.Alamat == "" {
		return models.Peminjaman{}, ErrValidation("Nama peminjam dan alamat harus diisi")
	}
	id := strings.TrimSpace(input.ID)
	if id == "" {
		id = uuid.NewString()
	}
	insert := database.Rebind(`INSERT INTO peminjaman (id, nama_peminjam, alamat) VALUES (?, ?, ?)`)
	if _, err := database.Exec(insert, id, input.NamaPeminjam, input.Alamat); err != nil {
		if db.IsUniqueViolation(err) {
			return models.Peminjaman{}, ErrConflict("ID peminjaman sudah digunakan")
		}
		return models.Peminjaman{}, WrapError(err, "insert peminjaman")
	}
	row := models.Peminjaman{}
	query := database.Rebind(`SELECT id, nama_peminjam, alamat, created_at FROM peminjaman WHERE id = ?`)
	if err := database.Get(&row, query, id); err != nil {
		return models.Peminjaman{}, WrapError(err, "fetch peminjaman")
	}
	return row, nil
}

func ListPeminjaman(database *sqlx.DB) ([]models.Peminjaman, error) {
	rows := []models.Peminjaman{}
	err := database.Select(&rows, `
SELECT id, nama_peminjam, alamat, created_at
FROM peminjaman
ORDER BY created_at DESC`)
	if err != nil {
		return nil, WrapError(err, "list peminjaman")
	}
	return rows, nil
}
