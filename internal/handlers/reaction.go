package handlers

import (
	"fmt"
	"net/http"

	"ipe/internal/db"
	"ipe/internal/middleware"
	"ipe/internal/models"
	"ipe/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm/clause"
)

type ReactionHandler struct{}

func NewReactionHandler() *ReactionHandler {
	return &ReactionHandler{}
}

// ToggleLike alterna o like do usuário na pesquisa.
func (h *ReactionHandler) ToggleLike(c *gin.Context) {
	h.toggle(c, "like")
}

// ToggleSave alterna o save do usuário na pesquisa.
func (h *ReactionHandler) ToggleSave(c *gin.Context) {
	h.toggle(c, "save")
}

// toggle remove a reação se existir, senão insere. O insert é tolerante a
// conflito para que dois toggles quase simultâneos do mesmo usuário não
// estourem no índice único. Falhas (pesquisa inexistente, corrida perdida)
// são absorvidas em silêncio.
func (h *ReactionHandler) toggle(c *gin.Context, kind string) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)
	pesquisaID := utils.StringToUint(c.Param("id"))

	tx := db.DB.Begin()

	switch kind {
	case "like":
		var existing models.Like
		if err := tx.Where("user_id = ? AND pesquisa_id = ?", user.ID, pesquisaID).
			First(&existing).Error; err == nil {
			tx.Delete(&existing)
		} else {
			tx.Clauses(clause.OnConflict{DoNothing: true}).
				Create(&models.Like{UserID: user.ID, PesquisaID: pesquisaID})
		}
	case "save":
		var existing models.Save
		if err := tx.Where("user_id = ? AND pesquisa_id = ?", user.ID, pesquisaID).
			First(&existing).Error; err == nil {
			tx.Delete(&existing)
		} else {
			tx.Clauses(clause.OnConflict{DoNothing: true}).
				Create(&models.Save{UserID: user.ID, PesquisaID: pesquisaID})
		}
	default:
		tx.Rollback()
		c.Status(http.StatusBadRequest)
		return
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
	}

	utils.GetCache().Delete(vitrineCacheKey)

	// Volta para a página de origem, ou para o detalhe.
	redirect := c.GetHeader("Referer")
	if redirect == "" {
		redirect = fmt.Sprintf("/pesquisa/%d", pesquisaID)
	}
	c.Redirect(http.StatusFound, redirect)
}
