package services

import (
	"inventaris-backend-go/internal/db"

	"github.com/jmoiron/sqlx"
)

type PegawaiInput struct {
	IDPegawai string
	Nama      string
	Jabatan   string
	NoHP      string
	Email     string
	Password  string
}

// CreatePegawai stores an employee record. The password is hashed before
// it touches the database.
func CreatePegawai(database *sqlx.DB, input PegawaiInput) error {
	var exists bool
	query := database.Rebind(`SELECT EXISTS(SELECT 1 FROM pegawai WHERE id_pegawai = ?)`)
	if err := database.Get(&exists, query, input.IDPegawai); err != nil {
		return WrapError(err, "check id pegawai")
	}
	if exists {
		return ErrConflict("ID pegawai sudah terdaftar")
	}
	query = database.Rebind(`SELECT EXISTS(SELECT 1 FROM pegawai WHERE email = ?)`)
	if err := database.Get(&exists, query, input.Email); err != nil {
		return WrapError(err, "check email pegawai")
	}
	if exists {
		return ErrConflict("Email pegawai sudah terdaftar")
	}
	hash, err := HashPassword(input.Password)
	if err != nil {
		return WrapError(err, "hash password")
	}
	insert := database.Rebind(`
INSERT INTO pegawai (id_pegawai, nama, jabatan, no_hp, email, password)
VALUES (?, ?, ?, ?, ?, ?)`)
	if _, err := database.Exec(insert, input.IDPegawai, input.Nama, input.Jabatan, input.NoHP, input.Email, hash); err != nil {
		if db.IsUniqueViolation(err) {
			return ErrConflict("ID atau email pegawai sudah terdaftar")
		}
		return WrapError(err, "insert pegawai")
	}
	return nil
}
