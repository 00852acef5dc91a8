package models

import (
	"time"
)

// Like registra que um usuário curtiu uma pesquisa, no máximo uma vez.
type Like struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null;index;uniqueIndex:idx_like_user_pesquisa" json:"user_id"`
	User       User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	PesquisaID uint      `gorm:"not null;index;uniqueIndex:idx_like_user_pesquisa" json:"pesquisa_id"`
	Pesquisa   Pesquisa  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	CreatedAt  time.Time `json:"created_at"`
}
