package service

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"gorm.io/gorm"

	"github.com/mamtahealth/mamta-backend/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := model.InitDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("InitDB failed: %v", err)
	}
	return db
}

func TestRegisterAndAuthenticate(t *testing.T) {
	auth := NewAuthService(newTestDB(t))
	ctx := context.Background()

	acct, err := auth.Register(ctx, "a@x.com", "pw1")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if acct.ID == 0 {
		t.Fatal("expected account id to be assigned")
	}
	if acct.PasswordHash == "pw1" {
		t.Fatal("password must not be stored in plaintext")
	}

	got, err := auth.Authenticate(ctx, "a@x.com", "pw1")
	if err != nil {
		t.Fatalf("authenticate failed: %v", err)
	}
	if got.ID != acct.ID {
		t.Errorf("expected account %d, got %d", acct.ID, got.ID)
	}
}

func TestRegisterDuplicate(t *testing.T) {
	auth := NewAuthService(newTestDB(t))
	ctx := context.Background()

	if _, err := auth.Register(ctx, "a@x.com", "pw1"); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	_, err := auth.Register(ctx, "a@x.com", "pw2")
	if !errors.Is(err, ErrDuplicateAccount) {
		t.Errorf("expected ErrDuplicateAccount, got %v", err)
	}
}

func TestAuthenticateWrongPassword(t *testing.T) {
	auth := NewAuthService(newTestDB(t))
	ctx := context.Background()

	if _, err := auth.Register(ctx, "a@x.com", "pw1"); err != nil {
		t.Fatal(err)
	}
	_, err := auth.Authenticate(ctx, "a@x.com", "wrong")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthenticateUnknownEmail(t *testing.T) {
	auth := NewAuthService(newTestDB(t))

	_, err := auth.Authenticate(context.Background(), "nobody@x.com", "pw")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
