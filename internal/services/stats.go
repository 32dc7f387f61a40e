package services

import (
	"inventaris-backend-go/internal/models"

	"github.com/jmoiron/sqlx"
)

// InventorySummary backs the admin dashboard.
type InventorySummary struct {
	TotalBarang      int64               `json:"totalBarang"`
	TotalKategori    int64               `json:"totalKategori"`
	TotalLokasi      int64               `json:"totalLokasi"`
	BarangTersedia   int64               `json:"barangTersedia"`
	BarangDipinjam   int64               `json:"barangDipinjam"`
	RecentPeminjaman []models.Peminjaman `json:"recentPeminjaman"`
}

func SummarizeInventory(database *sqlx.DB) (InventorySummary, error) {
	var summary InventorySummary
	counts := []struct {
		dest  *int64
		query string
	}{
		{&summary.TotalBarang, `SELECT COUNT(*) FROM barang`},
		{&summary.TotalKategori, `SELECT COUNT(*) FROM kategori`},
		{&summary.TotalLokasi, `SELECT COUNT(*) FROM lokasi`},
		{&summary.BarangTersedia, `SELECT COUNT(*) FROM barang WHERE status = 'tersedia'`},
		{&summary.BarangDipinjam, `SELECT COUNT(*) FROM barang WHERE status = 'dipinjam'`},
	}
	for _, c := range counts {
		if err := database.Get(c.dest, c.query); err != nil {
			return InventorySummary{}, WrapError(err, "summarize inventory")
		}
	}
	rows := []models.Peminjaman{}
	err := database.Select(&rows, `
SELECT id, nama_peminjam, alamat, created_at
FROM peminjaman
ORDER BY created_at DESC
LIMIT 5`)
	if err != nil {
		return InventorySummary{}, WrapError(err, "recent peminjaman")
	}
	summary.RecentPeminjaman = rows
	return summary, nil
}

// AvailableBarang lists what a regular user can borrow.
func AvailableBarang(database *sqlx.DB) ([]models.Barang, error) {
	rows := []models.Barang{}
	err := database.Select(&rows, `
SELECT kode, nama, kode_kategori, kode_lokasi, kondisi, status, jumlah, deskripsi, gambar
FROM barang
WHERE status = 'tersedia'
ORDER BY kode`)
	if err != nil {
		return nil, WrapError(err, "list available barang")
	}
	return rows, nil
}
