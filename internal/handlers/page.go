package handlers

import (
	"net/http"

	"ipe/internal/config"

	"github.com/gin-gonic/gin"
)

type PageHandler struct {
	cfg *config.Config
}

func NewPageHandler(cfg *config.Config) *PageHandler {
	return &PageHandler{cfg: cfg}
}

// Sobre é a página institucional; com cadastro fechado ela exibe o código
// de convite vigente.
func (h *PageHandler) Sobre(c *gin.Context) {
	codigo := ""
	if h.cfg.RequireInvite {
		codigo = h.cfg.InviteCode
	}
	Render(c, http.StatusOK, "sobre.html", gin.H{
		"CodigoExemplo": codigo,
	})
}
