package services

import (
	"errors"
	"testing"

	"inventaris-backend-go/internal/db"
)

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var svcErr ServiceError
	if !errors.As(err, &svcErr) {
		t.Fatalf("expected ServiceError, got %v", err)
	}
	return svcErr.Status
}

func TestCatalogCreate(t *testing.T) {
	database := db.NewTestDB(t)

	if err := KategoriTable.Create(database, "ELK", "Elektronik"); err != nil {
		t.Fatalf("create: %v", err)
	}

	// Missing fields never reach the database.
	if status := statusOf(t, KategoriTable.Create(database, "", "Mebel")); status != 400 {
		t.Errorf("expected 400 for missing kode, got %d", status)
	}
	if status := statusOf(t, KategoriTable.Create(database, "MBL", "")); status != 400 {
		t.Errorf("expected 400 for missing nama, got %d", status)
	}
	if status := statusOf(t, KategoriTable.Create(database, "TOOLNG", "Alat")); status != 400 {
		t.Errorf("expected 400 for oversized kode, got %d", status)
	}

	// Duplicate kode and duplicate nama each conflict.
	if status := statusOf(t, KategoriTable.Create(database, "ELK", "Lain")); status != 409 {
		t.Errorf("expected 409 for duplicate kode, got %d", status)
	}
	if status := statusOf(t, KategoriTable.Create(database, "ELK2", "Elektronik")); status != 409 {
		t.Errorf("expected 409 for duplicate nama, got %d", status)
	}

	rows, err := KategoriTable.List(database)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 1 || rows[0].Kode != "ELK" || rows[0].Nama != "Elektronik" {
		t.Errorf("conflicting create altered the table: %+v", rows)
	}
}

func TestCatalogUpdate(t *testing.T) {
	database := db.NewTestDB(t)
	if err := LokasiTable.Create(database, "GDG1", "Gudang Utama"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := LokasiTable.Create(database, "GDG2", "Gudang Cadangan"); err != nil {
		t.Fatalf("create: %v", err)
	}

	// Rewriting a row with its own kode and nama is not a self-collision.
	if err := LokasiTable.Update(database, "GDG1", "Gudang Utama", "GDG1"); err != nil {
		t.Fatalf("no-op update: %v", err)
	}

	// Renaming onto another row's kode or nama conflicts.
	if status := statusOf(t, LokasiTable.Update(database, "GDG2", "Gudang Utama", "GDG1")); status != 409 {
		t.Errorf("expected 409 renaming onto existing kode, got %d", status)
	}
	if status := statusOf(t, LokasiTable.Update(database, "GDG1", "Gudang Cadangan", "GDG1")); status != 409 {
		t.Errorf("expected 409 renaming onto existing nama, got %d", status)
	}

	// Key rename moves the row.
	if err := LokasiTable.Update(database, "GDG3", "Gudang Timur", "GDG1"); err != nil {
		t.Fatalf("rename: %v", err)
	}
	exists, err := LokasiTable.CodeExists(database, "GDG1")
	if err != nil {
		t.Fatalf("exists: %v", err)
	}
	if exists {
		t.Error("old kode should be gone after rename")
	}
	exists, _ = LokasiTable.CodeExists(database, "GDG3")
	if !exists {
		t.Error("new kode should exist after rename")
	}

	if status := statusOf(t, LokasiTable.Update(database, "GDG3", "Gudang Timur", "")); status != 400 {
		t.Errorf("expected 400 for missing kode lama, got %d", status)
	}
}

func TestCatalogDeleteMissingIsNoop(t *testing.T) {
	database := db.NewTestDB(t)
	if err := KategoriTable.Delete(database, "NOPE"); err != nil {
		t.Fatalf("expected no-op success, got %v", err)
	}
	if status := statusOf(t, KategoriTable.Delete(database, "")); status != 400 {
		t.Errorf("expected 400 for missing kode, got %d", status)
	}
}

func TestCatalogConstraintBackstop(t *testing.T) {
	database := db.NewTestDB(t)
	if _, err := database.Exec(`INSERT INTO kategori (kode, nama) VALUES ('ELK', 'Elektronik')`); err != nil {
		t.Fatalf("seed: %v", err)
	}
	// A writer that slips past the pre-checks hits the unique constraint,
	// which IsUniqueViolation must recognize as the conflict signal.
	_, err := database.Exec(`INSERT INTO kategori (kode, nama) VALUES ('ELK', 'Elektronik Baru')`)
	if err == nil {
		t.Fatal("expected unique violation")
	}
	if !db.IsUniqueViolation(err) {
		t.Errorf("expected IsUniqueViolation for %v", err)
	}
}
