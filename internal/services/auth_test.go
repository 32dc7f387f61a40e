package services

import (
	"testing"

	"inventaris-backend-go/internal/db"
)

func TestRegisterAndAuthenticateAdmin(t *testing.T) {
	database := db.NewTestDB(t)
	input := AdminInput{IDAdmin: "ADM01", Nama: "Budi", Email: "budi@example.com", Password: "rahasia123"}

	if err := RegisterAdmin(database, input); err != nil {
		t.Fatalf("register: %v", err)
	}

	// Same email and same id each conflict.
	dupEmail := input
	dupEmail.IDAdmin = "ADM02"
	if status := statusOf(t, RegisterAdmin(database, dupEmail)); status != 409 {
		t.Errorf("expected 409 for duplicate email, got %d", status)
	}
	dupID := input
	dupID.Email = "lain@example.com"
	if status := statusOf(t, RegisterAdmin(database, dupID)); status != 409 {
		t.Errorf("expected 409 for duplicate id, got %d", status)
	}

	account, err := Authenticate(database, "budi@example.com", "rahasia123")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if account.Role != RoleAdmin || account.ID != "ADM01" || account.Nama != "Budi" {
		t.Errorf("unexpected account: %+v", account)
	}

	// Stored password must not be plaintext.
	var stored string
	if err := database.Get(&stored, `SELECT password FROM admin WHERE id_admin = 'ADM01'`); err != nil {
		t.Fatalf("fetch hash: %v", err)
	}
	if stored == "rahasia123" {
		t.Error("password stored in plaintext")
	}
}

func TestAuthenticateFailures(t *testing.T) {
	database := db.NewTestDB(t)
	if err := RegisterAdmin(database, AdminInput{IDAdmin: "ADM01", Nama: "Budi", Email: "budi@example.com", Password: "rahasia123"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	// Wrong password and unknown account share one message.
	_, errWrong := Authenticate(database, "budi@example.com", "salah")
	_, errMissing := Authenticate(database, "ghost@example.com", "salah")
	if statusOf(t, errWrong) != 401 || statusOf(t, errMissing) != 401 {
		t.Fatal("expected 401 for both failures")
	}
	if errWrong.Error() != errMissing.Error() {
		t.Errorf("messages differ: %q vs %q", errWrong.Error(), errMissing.Error())
	}

	if status := statusOf(t, func() error { _, err := Authenticate(database, "", ""); return err }()); status != 400 {
		t.Errorf("expected 400 for empty credentials, got %d", status)
	}
}

func TestAuthenticateRegularUser(t *testing.T) {
	database := db.NewTestDB(t)
	hash, err := HashPassword("userpass")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if _, err := database.Exec(`INSERT INTO users (nama, email, password) VALUES ('Sari', 'sari@example.com', ?)`, hash); err != nil {
		t.Fatalf("seed user: %v", err)
	}

	account, err := Authenticate(database, "sari@example.com", "userpass")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if account.Role != RoleUser || account.Nama != "Sari" {
		t.Errorf("unexpected account: %+v", account)
	}
}
