package models

import (
	"time"
)

// Save registra que um usuário salvou uma pesquisa para ler depois.
// Mesma forma do Like, mas independente dele.
type Save struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null;index;uniqueIndex:idx_save_user_pesquisa" json:"user_id"`
	User       User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	PesquisaID uint      `gorm:"not null;index;uniqueIndex:idx_save_user_pesquisa" json:"pesquisa_id"`
	Pesquisa   Pesquisa  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	CreatedAt  time.Time `json:"created_at"`
}
