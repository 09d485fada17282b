package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/mamtahealth/mamta-backend/model"
)

// bcryptCost matches the fixed cost factor used since the first release;
// changing it would invalidate comparisons only for new hashes, but keep it
// stable anyway.
const bcryptCost = 10

// AuthService creates and verifies accounts. No session or token is issued:
// every conversation route re-checks the email it is given.
type AuthService struct {
	db *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

// Register stores a new account with a salted bcrypt hash.
func (s *AuthService) Register(ctx context.Context, email, password string) (*model.Account, error) {
	var existing model.Account
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, ErrDuplicateAccount
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("lookup account: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	acct := model.Account{Email: email, PasswordHash: string(hash)}
	if err := s.db.WithContext(ctx).Create(&acct).Error; err != nil {
		// The unique index can still fire under concurrent signups.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateAccount
		}
		return nil, fmt.Errorf("create account: %w", err)
	}

	return &acct, nil
}

// Authenticate verifies an email/password pair.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*model.Account, error) {
	var acct model.Account
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&acct).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("lookup account: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return &acct, nil
}
