package model

import (
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type Account struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Email        string    `gorm:"uniqueIndex;size:320;not null" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"` // bcrypt hash, never sent to the client
	CreatedAt    time.Time `json:"created_at"`

	Conversations []Conversation `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE" json:"-"`
}

type Conversation struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	AccountID    uint      `gorm:"index;not null" json:"-"`
	Title        string    `gorm:"size:255" json:"title"`
	UserInput    string    `gorm:"type:text;not null" json:"userInput"`
	AdviceOutput string    `gorm:"type:text;not null" json:"adviceOutput"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// InitDB opens the SQLite database and creates the tables if absent.
// foreign_keys is switched on so deleting an account cascades to its
// conversations.
func InitDB(dbPath string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dbPath+"?_foreign_keys=on"), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&Account{}, &Conversation{}); err != nil {
		return nil, err
	}

	return db, nil
}
