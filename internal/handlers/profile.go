package handlers

import (
	"net/http"
	"strings"

	"ipe/internal/db"
	"ipe/internal/models"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct{}

func NewProfileHandler() *ProfileHandler {
	return &ProfileHandler{}
}

// Perfil lista as pesquisas publicadas sob um nome de pesquisador.
// A consulta é pelo nome desnormalizado, não pelo ID do dono: nomes
// repetidos se misturam e nomes antigos continuam respondendo. Limitação
// assumida do design, não um bug.
func (h *ProfileHandler) Perfil(c *gin.Context) {
	nome := strings.TrimSpace(c.Param("nome"))

	var pesquisas []models.Pesquisa
	db.DB.Where("pesquisador = ?", nome).
		Order("id DESC").
		Find(&pesquisas)

	fillReactionCounts(pesquisas)

	Render(c, http.StatusOK, "user/perfil.html", gin.H{
		"Nome":      nome,
		"Pesquisas": pesquisas,
	})
}
