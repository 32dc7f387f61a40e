package services

import (
	"strings"

	"inventaris-backend-go/internal/db"
	"inventaris-backend-go/internal/models"

	"github.com/jmoiron/sqlx"
)

// BarangTable reuses the catalog kode checks; nama is not unique for
// barang, so create/update live here instead of on CatalogTable.
var BarangTable = CatalogTable{Table: "barang", Label: "barang", CodeMaxLen: 10}

var validKondisi = map[string]bool{
	"baik":         true,
	"rusak ringan": true,
	"rusak berat":  true,
}

var validStatus = map[string]bool{
	"tersedia": true,
	"dipinjam": true,
}

type BarangInput struct {
	Kode         string
	Nama         string
	KodeKategori string
	KodeLokasi   string
	Kondisi      string
	Status       string
	Jumlah       *int
	Deskripsi    *string
}

// GambarPatch captures the three wire states of the gambar field on
// update: absent (keep the stored blob), explicit null/empty (clear it),
// or new bytes.
type GambarPatch struct {
	Provided bool
	Data     []byte
}

func (in *BarangInput) validate() error {
	in.Kode = strings.TrimSpace(in.Kode)
	in.Nama = strings.TrimSpace(in.Nama)
	in.KodeKategori = strings.TrimSpace(in.KodeKategori)
	in.KodeLokasi = strings.TrimSpace(in.KodeLokasi)
	in.Kondisi = strings.TrimSpace(in.Kondisi)
	in.Status = strings.TrimSpace(in.Status)
	if in.Kode == "" || in.Nama == "" || in.KodeKategori == "" || in.KodeLokasi == "" ||
		in.Kondisi == "" || in.Status == "" || in.Jumlah == nil {
		return ErrValidation("Semua field yang diperlukan harus diisi")
	}
	if len(in.Kode) > BarangTable.CodeMaxLen {
		return ErrValidation("Kode barang maksimal 10 karakter")
	}
	if !validKondisi[in.Kondisi] {
		return ErrValidation("Kondisi tidak valid")
	}
	if !validStatus[in.Status] {
		return ErrValidation("Status tidak valid")
	}
	if *in.Jumlah < 0 {
		return ErrValidation("Jumlah tidak boleh negatif")
	}
	return nil
}

func ListBarang(database *sqlx.DB) ([]models.Barang, error) {
	rows := []models.Barang{}
	err := database.Select(&rows, `
SELECT kode, nama, kode_kategori, kode_lokasi, kondisi, status, jumlah, deskripsi, gambar
FROM barang
ORDER BY kode`)
	if err != nil {
		return nil, WrapError(err, "list barang")
	}
	return rows, nil
}

func CreateBarang(database *sqlx.DB, input BarangInput, gambar []byte) error {
	if err := input.validate(); err != nil {
		return err
	}
	exists, err := BarangTable.CodeExists(database, input.Kode)
	if err != nil {
		return WrapError(err, "check kode barang")
	}
	if exists {
		return ErrConflict("Kode barang sudah digunakan")
	}
	insert := database.Rebind(`
INSERT INTO barang (kode, nama, kode_kategori, kode_lokasi, kondisi, status, jumlah, deskripsi, gambar)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	_, err = database.Exec(insert, input.Kode, input.Nama, input.KodeKategori, input.KodeLokasi,
		input.Kondisi, input.Status, *input.Jumlah, input.Deskripsi, gambar)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return ErrConflict("Kode barang sudah digunakan")
		}
		return WrapError(err, "insert barang")
	}
	return nil
}

// UpdateBarang rewrites the row under kodeLama, possibly renaming it. When
// the payload omitted gambar, the stored blob is fetched and carried over
// so an update without an image never clears one.
func UpdateBarang(database *sqlx.DB, input BarangInput, kodeLama string, gambar GambarPatch) error {
	kodeLama = strings.TrimSpace(kodeLama)
	if kodeLama == "" {
		return ErrValidation("Semua field yang diperlukan harus diisi")
	}
	if err := input.validate(); err != nil {
		return err
	}
	if input.Kode != kodeLama {
		exists, err := BarangTable.CodeExists(database, input.Kode)
		if err != nil {
			return WrapError(err, "check kode barang")
		}
		if exists {
			return ErrConflict("Kode barang sudah digunakan")
		}
	}
	data := gambar.Data
	if !gambar.Provided {
		query := database.Rebind(`SELECT gambar FROM barang WHERE kode = ?`)
		if err := database.Get(&data, query, kodeLama); err != nil {
			data = nil
		}
	}
	update := database.Rebind(`
UPDATE barang
SET kode = ?, nama = ?, kode_kategori = ?, kode_lokasi = ?, kondisi = ?, status = ?, jumlah = ?, deskripsi = ?, gambar = ?
WHERE kode = ?`)
	_, err := database.Exec(update, input.Kode, input.Nama, input.KodeKategori, input.KodeLokasi,
		input.Kondisi, input.Status, *input.Jumlah, input.Deskripsi, data, kodeLama)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return ErrConflict("Kode barang sudah digunakan")
		}
		return WrapError(err, "update barang")
	}
	return nil
}

func DeleteBarang(database *sqlx.DB, kode string) error {
	return BarangTable.Delete(database, kode)
}
