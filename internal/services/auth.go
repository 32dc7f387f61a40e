package services

import (
	"database/sql"
	"errors"
	"strconv"
	"strings"

	"inventaris-backend-go/internal/db"
	"inventaris-backend-go/internal/models"

	"github.com/jmoiron/sqlx"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Account is the authenticated identity handed to the session cookie.
type Account struct {
	ID    string
	Nama  string
	Email string
	Role  string
}

// Authenticate checks the admin table first, then regular users. Both a
// missing account and a wrong password yield the same message so the
// response never reveals which field was wrong.
func Authenticate(database *sqlx.DB, email, pass string) (Account, error) {
	email = strings.TrimSpace(email)
	if email == "" || pass == "" {
		return Account{}, ErrValidation("Email dan password harus diisi")
	}

	var admin models.Admin
	query := database.Rebind(`SELECT id_admin, nama, email, password FROM admin WHERE email = ?`)
	err := database.Get(&admin, query, email)
	switch {
	case err == nil:
		if !VerifyPassword(pass, admin.PasswordHash) {
			return Account{}, ErrUnauthorized("Email atau password salah")
		}
		return Account{ID: admin.IDAdmin, Nama: admin.Nama, Email: admin.Email, Role: RoleAdmin}, nil
	case !errors.Is(err, sql.ErrNoRows):
		return Account{}, WrapError(err, "lookup admin")
	}

	var user struct {
		ID           int64  `db:"id"`
		Nama         string `db:"nama"`
		Email        string `db:"email"`
		PasswordHash string `db:"password"`
	}
	query = database.Rebind(`SELECT id, nama, email, password FROM users WHERE email = ?`)
	if err := database.Get(&user, query, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Account{}, ErrUnauthorized("Email atau password salah")
		}
		return Account{}, WrapError(err, "lookup user")
	}
	if !VerifyPassword(pass, user.PasswordHash) {
		return Account{}, ErrUnauthorized("Email atau password salah")
	}
	return Account{ID: strconv.FormatInt(user.ID, 10), Nama: user.Nama, Email: user.Email, Role: RoleUser}, nil
}

type AdminInput struct {
	IDAdmin  string
	Nama     string
	Email    string
	Password string
}

// RegisterAdmin inserts a new admin account with a hashed password.
// Conflicts on email and on the admin id are reported separately.
func RegisterAdmin(database *sqlx.DB, input AdminInput) error {
	var exists bool
	query := database.Rebind(`SELECT EXISTS(SELECT 1 FROM admin WHERE email = ?)`)
	if err := database.Get(&exists, query, input.Email); err != nil {
		return WrapError(err, "check admin email")
	}
	if exists {
		return ErrConflict("Email sudah terdaftar di sistem admin")
	}
	query = database.Rebind(`SELECT EXISTS(SELECT 1 FROM admin WHERE id_admin = ?)`)
	if err := database.Get(&exists, query, input.IDAdmin); err != nil {
		return WrapError(err, "check admin id")
	}
	if exists {
		return ErrConflict("ID Admin sudah terdaftar")
	}
	hash, err := HashPassword(input.Password)
	if err != nil {
		return WrapError(err, "hash password")
	}
	insert := database.Rebind(`INSERT INTO admin (id_admin, nama, email, password) VALUES (?, ?, ?, ?)`)
	if _, err := database.Exec(insert, input.IDAdmin, input.Nama, input.Email, hash); err != nil {
		if db.IsUniqueViolation(err) {
			return ErrConflict("Email atau ID Admin sudah terdaftar")
		}
		return WrapError(err, "insert admin")
	}
	return nil
}
