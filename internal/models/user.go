package models

import (
	"time"
)

type User struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Email       string    `gorm:"uniqueIndex;not null" json:"email"` // stored lower-cased
	Password    string    `gorm:"not null" json:"-"`                 // Hash
	Nome        string    `gorm:"not null" json:"nome"`
	Instituicao string    `json:"instituicao"`
	CreatedAt   time.Time `json:"created_at"`
	// No DeletedAt for hard delete
}
