package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/mamtahealth/mamta-backend/model"
)

const titleMaxRunes = 50

// ChatService owns all conversation access. Every operation resolves the
// caller's email to an account id first and filters everything else by that
// id — this scoping is the only access control in the system.
type ChatService struct {
	db *gorm.DB
}

func NewChatService(db *gorm.DB) *ChatService {
	return &ChatService{db: db}
}

// ConversationPatch holds the optional fields a PUT may carry. Nil means
// "leave unchanged".
type ConversationPatch struct {
	Title        *string
	UserInput    *string
	AdviceOutput *string
}

// Changes maps the supplied fields to a parameterized update. An empty patch
// is rejected rather than issuing a no-op UPDATE.
func (p ConversationPatch) Changes() (map[string]any, error) {
	changes := map[string]any{}
	if p.Title != nil {
		changes["title"] = *p.Title
	}
	if p.UserInput != nil {
		changes["user_input"] = *p.UserInput
	}
	if p.AdviceOutput != nil {
		changes["advice_output"] = *p.AdviceOutput
	}
	if len(changes) == 0 {
		return nil, validationf("at least one of title, userInput or adviceOutput must be provided")
	}
	return changes, nil
}

// DefaultTitle derives a title from the question: the first 50 characters,
// with an ellipsis marker when truncated. Runes, not bytes, so Urdu script
// stays intact.
func DefaultTitle(userInput string) string {
	r := []rune(userInput)
	if len(r) <= titleMaxRunes {
		return userInput
	}
	return string(r[:titleMaxRunes]) + "..."
}

func (s *ChatService) resolveAccount(ctx context.Context, email string) (uint, error) {
	if email == "" {
		return 0, validationf("email is required")
	}
	var acct model.Account
	err := s.db.WithContext(ctx).Select("id").Where("email = ?", email).First(&acct).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("resolve account: %w", err)
	}
	return acct.ID, nil
}

// List returns the account's conversations, most recently updated first.
func (s *ChatService) List(ctx context.Context, email string) ([]model.Conversation, error) {
	acctID, err := s.resolveAccount(ctx, email)
	if err != nil {
		return nil, err
	}

	convs := []model.Conversation{}
	err = s.db.WithContext(ctx).
		Where("account_id = ?", acctID).
		Order("updated_at DESC").
		Find(&convs).Error
	if err != nil {
		return nil, fmt.Errorf("list conversations: %w", err)
	}
	return convs, nil
}

func (s *ChatService) Get(ctx context.Context, email string, id uint) (*model.Conversation, error) {
	acctID, err := s.resolveAccount(ctx, email)
	if err != nil {
		return nil, err
	}

	var conv model.Conversation
	err = s.db.WithContext(ctx).
		Where("id = ? AND account_id = ?", id, acctID).
		First(&conv).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get conversation: %w", err)
	}
	return &conv, nil
}

func (s *ChatService) Create(ctx context.Context, email, userInput, adviceOutput, title string) (*model.Conversation, error) {
	if userInput == "" || adviceOutput == "" {
		return nil, validationf("userInput and adviceOutput are required")
	}

	acctID, err := s.resolveAccount(ctx, email)
	if err != nil {
		return nil, err
	}

	if title == "" {
		title = DefaultTitle(userInput)
	}

	conv := model.Conversation{
		AccountID:    acctID,
		Title:        title,
		UserInput:    userInput,
		AdviceOutput: adviceOutput,
	}
	if err := s.db.WithContext(ctx).Create(&conv).Error; err != nil {
		return nil, fmt.Errorf("create conversation: %w", err)
	}
	return &conv, nil
}

// Update applies only the supplied fields and always refreshes updated_at.
func (s *ChatService) Update(ctx context.Context, email string, id uint, patch ConversationPatch) (*model.Conversation, error) {
	changes, err := patch.Changes()
	if err != nil {
		return nil, err
	}

	acctID, err := s.resolveAccount(ctx, email)
	if err != nil {
		return nil, err
	}

	changes["updated_at"] = time.Now().UTC()
	res := s.db.WithContext(ctx).
		Model(&model.Conversation{}).
		Where("id = ? AND account_id = ?", id, acctID).
		Updates(changes)
	if res.Error != nil {
		return nil, fmt.Errorf("update conversation: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	var conv model.Conversation
	if err := s.db.WithContext(ctx).First(&conv, id).Error; err != nil {
		return nil, fmt.Errorf("reload conversation: %w", err)
	}
	return &conv, nil
}

func (s *ChatService) Delete(ctx context.Context, email string, id uint) error {
	acctID, err := s.resolveAccount(ctx, email)
	if err != nil {
		return err
	}

	res := s.db.WithContext(ctx).
		Where("id = ? AND account_id = ?", id, acctID).
		Delete(&model.Conversation{})
	if res.Error != nil {
		return fmt.Errorf("delete conversation: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
