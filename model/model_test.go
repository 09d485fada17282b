package model

import (
	"path/filepath"
	"testing"
)

func TestInitDB(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	db, err := InitDB(dbPath)
	if err != nil {
		t.Fatalf("InitDB failed: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatal(err)
	}
	defer sqlDB.Close()

	for _, table := range []string{"accounts", "conversations"} {
		var count int
		err = sqlDB.QueryRow("SELECT count(*) FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&count)
		if err != nil {
			t.Fatal(err)
		}
		if count != 1 {
			t.Errorf("%s table not created", table)
		}
	}
}

func TestCRUD(t *testing.T) {
	tmpDir := t.TempDir()
	db, err := InitDB(filepath.Join(tmpDir, "test.db"))
	if err != nil {
		t.Fatalf("InitDB failed: %v", err)
	}

	acct := Account{Email: "mother@example.com", PasswordHash: "hash"}
	if err := db.Create(&acct).Error; err != nil {
		t.Fatalf("create account failed: %v", err)
	}
	if acct.ID == 0 {
		t.Fatal("expected account id to be assigned")
	}

	conv := Conversation{
		AccountID:    acct.ID,
		Title:        "Morning sickness",
		UserInput:    "I feel nauseous every morning",
		AdviceOutput: "Try ginger tea",
	}
	if err := db.Create(&conv).Error; err != nil {
		t.Fatalf("create conversation failed: %v", err)
	}

	var loaded Conversation
	if err := db.First(&loaded, conv.ID).Error; err != nil {
		t.Fatalf("query conversation failed: %v", err)
	}
	if loaded.AccountID != acct.ID {
		t.Errorf("expected account id %d, got %d", acct.ID, loaded.AccountID)
	}
	if loaded.AdviceOutput != "Try ginger tea" {
		t.Errorf("unexpected advice output: %s", loaded.AdviceOutput)
	}
	if loaded.UpdatedAt.IsZero() {
		t.Error("expected updated_at to be set on create")
	}
}

func TestUniqueEmail(t *testing.T) {
	tmpDir := t.TempDir()
	db, err := InitDB(filepath.Join(tmpDir, "test.db"))
	if err != nil {
		t.Fatalf("InitDB failed: %v", err)
	}

	if err := db.Create(&Account{Email: "a@x.com", PasswordHash: "h1"}).Error; err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if err := db.Create(&Account{Email: "a@x.com", PasswordHash: "h2"}).Error; err == nil {
		t.Error("expected unique constraint violation on duplicate email")
	}
}

func TestCascadeDelete(t *testing.T) {
	tmpDir := t.TempDir()
	db, err := InitDB(filepath.Join(tmpDir, "test.db"))
	if err != nil {
		t.Fatalf("InitDB failed: %v", err)
	}

	acct := Account{Email: "mother@example.com", PasswordHash: "hash"}
	if err := db.Create(&acct).Error; err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		conv := Conversation{AccountID: acct.ID, UserInput: "q", AdviceOutput: "a"}
		if err := db.Create(&conv).Error; err != nil {
			t.Fatal(err)
		}
	}

	if err := db.Delete(&acct).Error; err != nil {
		t.Fatalf("delete account failed: %v", err)
	}

	var remaining int64
	if err := db.Model(&Conversation{}).Where("account_id = ?", acct.ID).Count(&remaining).Error; err != nil {
		t.Fatal(err)
	}
	if remaining != 0 {
		t.Errorf("expected cascade delete to remove conversations, %d remain", remaining)
	}
}
