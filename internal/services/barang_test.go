package services

import (
	"bytes"
	"testing"

	"inventaris-backend-go/internal/db"
)

func intPtr(v int) *int { return &v }

func laptopInput() BarangInput {
	return BarangInput{
		Kode:         "BRG001",
		Nama:         "Laptop",
		KodeKategori: "ELK",
		KodeLokasi:   "GDG1",
		Kondisi:      "baik",
		Status:       "tersedia",
		Jumlah:       intPtr(5),
	}
}

func TestCreateAndListBarang(t *testing.T) {
	database := db.NewTestDB(t)

	if err := CreateBarang(database, laptopInput(), nil); err != nil {
		t.Fatalf("create: %v", err)
	}

	rows, err := ListBarang(database)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	row := rows[0]
	if row.Kode != "BRG001" || row.Nama != "Laptop" || row.Jumlah != 5 {
		t.Errorf("unexpected row: %+v", row)
	}

	if status := statusOf(t, CreateBarang(database, laptopInput(), nil)); status != 409 {
		t.Errorf("expected 409 for duplicate kode, got %d", status)
	}
}

func TestCreateBarangValidation(t *testing.T) {
	database := db.NewTestDB(t)

	missing := laptopInput()
	missing.Nama = ""
	if status := statusOf(t, CreateBarang(database, missing, nil)); status != 400 {
		t.Errorf("expected 400 for missing nama, got %d", status)
	}

	long := laptopInput()
	long.Kode = "BRG00100100"
	if status := statusOf(t, CreateBarang(database, long, nil)); status != 400 {
		t.Errorf("expected 400 for oversized kode, got %d", status)
	}

	badKondisi := laptopInput()
	badKondisi.Kondisi = "hancur"
	if status := statusOf(t, CreateBarang(database, badKondisi, nil)); status != 400 {
		t.Errorf("expected 400 for invalid kondisi, got %d", status)
	}

	negative := laptopInput()
	negative.Jumlah = intPtr(-1)
	if status := statusOf(t, CreateBarang(database, negative, nil)); status != 400 {
		t.Errorf("expected 400 for negative jumlah, got %d", status)
	}

	noJumlah := laptopInput()
	noJumlah.Jumlah = nil
	if status := statusOf(t, CreateBarang(database, noJumlah, nil)); status != 400 {
		t.Errorf("expected 400 for missing jumlah, got %d", status)
	}

	rows, _ := ListBarang(database)
	if len(rows) != 0 {
		t.Errorf("validation failures must not write, got %d rows", len(rows))
	}
}

func TestUpdateBarangPreservesGambar(t *testing.T) {
	database := db.NewTestDB(t)
	image := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x01, 0x02}

	if err := CreateBarang(database, laptopInput(), image); err != nil {
		t.Fatalf("create: %v", err)
	}

	// Update without a gambar field keeps the stored bytes.
	changed := laptopInput()
	changed.Nama = "Laptop Dell"
	if err := UpdateBarang(database, changed, "BRG001", GambarPatch{}); err != nil {
		t.Fatalf("update: %v", err)
	}
	rows, _ := ListBarang(database)
	if len(rows) != 1 || rows[0].Nama != "Laptop Dell" {
		t.Fatalf("unexpected rows: %+v", rows)
	}
	if !bytes.Equal(rows[0].Gambar, image) {
		t.Errorf("gambar was not preserved: %v", rows[0].Gambar)
	}

	// An explicit clear removes it.
	if err := UpdateBarang(database, changed, "BRG001", GambarPatch{Provided: true}); err != nil {
		t.Fatalf("clear: %v", err)
	}
	rows, _ = ListBarang(database)
	if len(rows[0].Gambar) != 0 {
		t.Errorf("expected cleared gambar, got %v", rows[0].Gambar)
	}
}

func TestUpdateBarangRename(t *testing.T) {
	database := db.NewTestDB(t)
	if err := CreateBarang(database, laptopInput(), nil); err != nil {
		t.Fatalf("create: %v", err)
	}
	other := laptopInput()
	other.Kode = "BRG002"
	other.Nama = "Proyektor"
	if err := CreateBarang(database, other, nil); err != nil {
		t.Fatalf("create: %v", err)
	}

	// Renaming onto another row's kode conflicts.
	renamed := laptopInput()
	renamed.Kode = "BRG002"
	if status := statusOf(t, UpdateBarang(database, renamed, "BRG001", GambarPatch{})); status != 409 {
		t.Errorf("expected 409, got %d", status)
	}

	// Renaming to a fresh kode moves the row.
	renamed.Kode = "BRG003"
	if err := UpdateBarang(database, renamed, "BRG001", GambarPatch{}); err != nil {
		t.Fatalf("rename: %v", err)
	}
	exists, _ := BarangTable.CodeExists(database, "BRG003")
	if !exists {
		t.Error("expected renamed kode to exist")
	}
	exists, _ = BarangTable.CodeExists(database, "BRG001")
	if exists {
		t.Error("expected old kode to be gone")
	}
}

func TestDeleteBarangMissingIsNoop(t *testing.T) {
	database := db.NewTestDB(t)
	if err := DeleteBarang(database, "BRG404"); err != nil {
		t.Fatalf("expected no-op success, got %v", err)
	}
}
