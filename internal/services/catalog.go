package services

import (
	"fmt"
	"strings"

	"inventaris-backend-go/internal/db"

	"github.com/jmoiron/sqlx"
)

// CatalogTable describes a natural-key catalog entity: a short
// user-assigned kode plus a unique display name. Kategori and lokasi are
// plain instances; barang builds on the same checks in barang.go.
type CatalogTable struct {
	Table      string
	Label      string
	CodeMaxLen int
}

var (
	KategoriTable = CatalogTable{Table: "kategori", Label: "kategori", CodeMaxLen: 5}
	LokasiTable   = CatalogTable{Table: "lokasi", Label: "lokasi", CodeMaxLen: 5}
)

type CatalogRow struct {
	Kode string `db:"kode"`
	Nama string `db:"nama"`
}

func (t CatalogTable) List(database *sqlx.DB) ([]CatalogRow, error) {
	rows := []CatalogRow{}
	query := fmt.Sprintf(`SELECT kode, nama FROM %s ORDER BY kode`, t.Table)
	if err := database.Select(&rows, query); err != nil {
		return nil, WrapError(err, "list "+t.Table)
	}
	return rows, nil
}

func (t CatalogTable) CodeExists(database *sqlx.DB, kode string) (bool, error) {
	var exists bool
	query := database.Rebind(fmt.Sprintf(`SELECT EXISTS(SELECT 1 FROM %s WHERE kode = ?)`, t.Table))
	err := database.Get(&exists, query, kode)
	return exists, err
}

func (t CatalogTable) NameExists(database *sqlx.DB, nama string) (bool, error) {
	var exists bool
	query := database.Rebind(fmt.Sprintf(`SELECT EXISTS(SELECT 1 FROM %s WHERE nama = ?)`, t.Table))
	err := database.Get(&exists, query, nama)
	return exists, err
}

// Create validates the row, pre-checks both candidate keys for a
// field-specific conflict message, then inserts. The unique constraints
// remain the authoritative signal: a concurrent writer that slips past the
// pre-checks still gets a 409 from the violation.
func (t CatalogTable) Create(database *sqlx.DB, kode, nama string) error {
	kode = strings.TrimSpace(kode)
	nama = strings.TrimSpace(nama)
	if kode == "" || nama == "" {
		return ErrValidation(fmt.Sprintf("Kode dan nama %s harus diisi", t.Label))
	}
	if len(kode) > t.CodeMaxLen {
		return ErrValidation(fmt.Sprintf("Kode %s maksimal %d karakter", t.Label, t.CodeMaxLen))
	}
	exists, err := t.CodeExists(database, kode)
	if err != nil {
		return WrapError(err, "check kode "+t.Table)
	}
	if exists {
		return ErrConflict(fmt.Sprintf("Kode %s sudah digunakan", t.Label))
	}
	exists, err = t.NameExists(database, nama)
	if err != nil {
		return WrapError(err, "check nama "+t.Table)
	}
	if exists {
		return ErrConflict(fmt.Sprintf("Nama %s sudah digunakan", t.Label))
	}
	insert := database.Rebind(fmt.Sprintf(`INSERT INTO %s (kode, nama) VALUES (?, ?)`, t.Table))
	if _, err := database.Exec(insert, kode, nama); err != nil {
		if db.IsUniqueViolation(err) {
			return ErrConflict(fmt.Sprintf("Kode atau nama %s sudah digunakan", t.Label))
		}
		return WrapError(err, "insert "+t.Table)
	}
	return nil
}

// Update targets the row under kodeLama and may rename it to kode in the
// same statement. Uniqueness checks are skipped for values that did not
// change, so rewriting a row with its own kode or nama never conflicts.
func (t CatalogTable) Update(database *sqlx.DB, kode, nama, kodeLama string) error {
	kode = strings.TrimSpace(kode)
	nama = strings.TrimSpace(nama)
	kodeLama = strings.TrimSpace(kodeLama)
	if kode == "" || nama == "" || kodeLama == "" {
		return ErrValidation("Semua field harus diisi")
	}
	if len(kode) > t.CodeMaxLen {
		return ErrValidation(fmt.Sprintf("Kode %s maksimal %d karakter", t.Label, t.CodeMaxLen))
	}
	if kode != kodeLama {
		exists, err := t.CodeExists(database, kode)
		if err != nil {
			return WrapError(err, "check kode "+t.Table)
		}
		if exists {
			return ErrConflict(fmt.Sprintf("Kode %s sudah digunakan", t.Label))
		}
	}
	var oldNama string
	query := database.Rebind(fmt.Sprintf(`SELECT nama FROM %s WHERE kode = ?`, t.Table))
	if err := database.Get(&oldNama, query, kodeLama); err == nil && nama != oldNama {
		exists, err := t.NameExists(database, nama)
		if err != nil {
			return WrapError(err, "check nama "+t.Table)
		}
		if exists {
			return ErrConflict(fmt.Sprintf("Nama %s sudah digunakan", t.Label))
		}
	}
	update := database.Rebind(fmt.Sprintf(`UPDATE %s SET kode = ?, nama = ? WHERE kode = ?`, t.Table))
	if _, err := database.Exec(update, kode, nama, kodeLama); err != nil {
		if db.IsUniqueViolation(err) {
			return ErrConflict(fmt.Sprintf("Kode atau nama %s sudah digunakan", t.Label))
		}
		return WrapError(err, "update "+t.Table)
	}
	return nil
}

// Delete is keyed on kode. Deleting a missing kode is a no-op success.
func (t CatalogTable) Delete(database *sqlx.DB, kode string) error {
	kode = strings.TrimSpace(kode)
	if kode == "" {
		return ErrValidation(fmt.Sprintf("Kode %s harus diisi", t.Label))
	}
	query := database.Rebind(fmt.Sprintf(`DELETE FROM %s WHERE kode = ?`, t.Table))
	if _, err := database.Exec(query, kode); err != nil {
		return WrapError(err, "delete "+t.Table)
	}
	return nil
}
