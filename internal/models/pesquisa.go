package models

import (
	"time"
)

type Pesquisa struct {
	ID            uint `gorm:"primaryKey" json:"id"`
	PesquisadorID uint `gorm:"not null;index" json:"pesquisador_id"`
	User          User `gorm:"foreignKey:PesquisadorID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	// Nome do autor desnormalizado no momento da publicação; o perfil
	// público consulta por esta coluna, não pelo ID.
	Pesquisador    string     `gorm:"not null;index" json:"pesquisador"`
	Titulo         string     `gorm:"not null" json:"titulo"`
	Area           Area       `gorm:"type:text;not null;index" json:"area"`
	Descoberta     string     `gorm:"type:text;not null" json:"descoberta"`
	Importancia    string     `gorm:"type:text" json:"importancia"`
	Aplicacao      string     `gorm:"type:text" json:"aplicacao"`
	Publico        string     `gorm:"type:text" json:"publico"`
	Evidencia      Evidencia  `gorm:"type:text;not null" json:"evidencia"`
	LinkOriginal   string     `gorm:"not null" json:"link_original"`
	ImagemURL      string     `json:"imagem_url"`
	DataPublicacao time.Time  `gorm:"autoCreateTime;index" json:"data_publicacao"`
	AtualizadaEm   *time.Time `gorm:"column:updated_at" json:"updated_at"` // nil até a primeira edição
	Views          int        `gorm:"not null;default:0" json:"views"`

	// Campos preenchidos em consulta, não persistidos
	LikesCount int `gorm:"-" json:"likes_count"`
	SavesCount int `gorm:"-" json:"saves_count"`
}
