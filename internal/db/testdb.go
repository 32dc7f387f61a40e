package db

import (
	"testing"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// testSchema mirrors migrations/V1__init.sql in SQLite dialect. The unique
// constraints must match production so conflict paths behave the same way.
const testSchema = `
CREATE TABLE admin (
    id_admin TEXT PRIMARY KEY,
    nama     TEXT NOT NULL,
    email    TEXT NOT NULL UNIQUE,
    password TEXT NOT NULL
);

CREATE TABLE users (
    id       INTEGER PRIMARY KEY,
    nama     TEXT NOT NULL,
    email    TEXT NOT NULL UNIQUE,
    password TEXT NOT NULL
);

CREATE TABLE kategori (
    kode TEXT PRIMARY KEY,
    nama TEXT NOT NULL UNIQUE
);

CREATE TABLE lokasi (
    kode TEXT PRIMARY KEY,
    nama TEXT NOT NULL UNIQUE
);

CREATE TABLE barang (
    kode          TEXT PRIMARY KEY,
    nama          TEXT NOT NULL,
    kode_kategori TEXT NOT NULL,
    kode_lokasi   TEXT NOT NULL,
    kondisi       TEXT NOT NULL,
    status        TEXT NOT NULL,
    jumlah        INTEGER NOT NULL,
    deskripsi     TEXT,
    gambar        BLOB
);

CREATE TABLE peminjaman (
    id            TEXT PRIMARY KEY,
    nama_peminjam TEXT NOT NULL,
    alamat        TEXT NOT NULL,
    created_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE pegawai (
    id_pegawai TEXT PRIMARY KEY,
    nama       TEXT NOT NULL,
    jabatan    TEXT NOT NULL,
    no_hp      TEXT NOT NULL,
    email      TEXT NOT NULL UNIQUE,
    password   TEXT NOT NULL
);

CREATE TABLE server_metric_samples (
    id                        TEXT PRIMARY KEY,
    captured_at               DATETIME NOT NULL,
    system_memory_total_bytes INTEGER NOT NULL,
    system_memory_used_bytes  INTEGER NOT NULL,
    disk_total_bytes          INTEGER NOT NULL,
    disk_used_bytes           INTEGER NOT NULL,
    process_cpu_load          REAL NOT NULL,
    system_cpu_load           REAL NOT NULL,
    total_barang              INTEGER NOT NULL,
    total_dipinjam            INTEGER NOT NULL
);
`

// NewTestDB creates a fresh in-memory SQLite database with the schema
// applied. SQLite accepts the same rebound queries the services issue
// against Postgres.
func NewTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	database, err := sqlx.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	database.SetMaxOpenConns(1)
	if _, err := database.Exec(testSchema); err != nil {
		_ = database.Close()
		t.Fatalf("creating test schema: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })
	return database
}
