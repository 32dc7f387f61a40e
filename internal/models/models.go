package models

import "time"

type Admin struct {
	IDAdmin      string `db:"id_admin"`
	Nama         string `db:"nama"`
	Email        string `db:"email"`
	PasswordHash string `db:"password"`
}

type User struct {
	ID           int64  `db:"id"`
	Nama         string `db:"nama"`
	Email        string `db:"email"`
	PasswordHash string `db:"password"`
}

type Kategori struct {
	Kode string `db:"kode"`
	Nama string `db:"nama"`
}

type Lokasi struct {
	Kode string `db:"kode"`
	Nama string `db:"nama"`
}

type Barang struct {
	Kode         string  `db:"kode"`
	Nama         string  `db:"nama"`
	KodeKategori string  `db:"kode_kategori"`
	KodeLokasi   string  `db:"kode_lokasi"`
	Kondisi      string  `db:"kondisi"`
	Status       string  `db:"status"`
	Jumlah       int     `db:"jumlah"`
	Deskripsi    *string `db:"deskripsi"`
	Gambar       []byte  `db:"gambar"`
}

type Peminjaman struct {
	ID           string    `db:"id"`
	NamaPeminjam string    `db:"nama_peminjam"`
	Alamat       string    `db:"alamat"`
	CreatedAt    time.Time `db:"created_at"`
}

type Pegawai struct {
	IDPegawai    string `db:"id_pegawai"`
	Nama         string `db:"nama"`
	Jabatan      string `db:"jabatan"`
	NoHP         string `db:"no_hp"`
	Email        string `db:"email"`
	PasswordHash string `db:"password"`
}
