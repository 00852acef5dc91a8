package handlers

import (
	"net/http"
	"strings"
	"time"

	"ipe/internal/db"
	"ipe/internal/middleware"
	"ipe/internal/models"
	"ipe/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const vitrineCacheKey = "pesquisa:vitrine:home"

type PesquisaHandler struct{}

func NewPesquisaHandler() *PesquisaHandler {
	return &PesquisaHandler{}
}

// fillReactionCounts preenche em lote as contagens de likes e saves.
func fillReactionCounts(pesquisas []models.Pesquisa) {
	if len(pesquisas) == 0 {
		return
	}

	ids := make([]uint, len(pesquisas))
	for i, p := range pesquisas {
		ids[i] = p.ID
	}

	type countResult struct {
		PesquisaID uint
		Count      int
	}

	var likeResults []countResult
	db.DB.Model(&models.Like{}).
		Select("pesquisa_id, COUNT(*) as count").
		Where("pesquisa_id IN ?", ids).
		Group("pesquisa_id").
		Scan(&likeResults)

	var saveResults []countResult
	db.DB.Model(&models.Save{}).
		Select("pesquisa_id, COUNT(*) as count").
		Where("pesquisa_id IN ?", ids).
		Group("pesquisa_id").
		Scan(&saveResults)

	likeMap := make(map[uint]int, len(likeResults))
	for _, r := range likeResults {
		likeMap[r.PesquisaID] = r.Count
	}
	saveMap := make(map[uint]int, len(saveResults))
	for _, r := range saveResults {
		saveMap[r.PesquisaID] = r.Count
	}

	for i := range pesquisas {
		pesquisas[i].LikesCount = likeMap[pesquisas[i].ID]
		pesquisas[i].SavesCount = saveMap[pesquisas[i].ID]
	}
}

// Vitrine é a listagem pública, com filtro por área e busca livre.
func (h *PesquisaHandler) Vitrine(c *gin.Context) {
	filtroArea := strings.TrimSpace(c.Query("area"))
	q := strings.TrimSpace(c.Query("q"))

	// Filtro fora do conjunto fixo é ignorado, não coagido.
	if filtroArea != "" && !models.Area(filtroArea).Valid() {
		filtroArea = ""
	}

	if filtroArea == "" && q == "" {
		if cachedData := utils.GetCache().Get(vitrineCacheKey); cachedData != nil {
			if hData, ok := cachedData.(gin.H); ok {
				// Render injeta valores por requisição (usuário, avisos);
				// copia para não vazar entre visitantes via mapa cacheado.
				data := gin.H{}
				for k, v := range hData {
					data[k] = v
				}
				Render(c, http.StatusOK, "pesquisa/list.html", data)
				return
			}
		}
	}

	query := db.DB.Model(&models.Pesquisa{}).Order("id DESC")
	if filtroArea != "" {
		query = query.Where("area = ?", filtroArea)
	}
	if q != "" {
		like := "%" + q + "%"
		query = query.Where("titulo ILIKE ? OR descoberta ILIKE ? OR pesquisador ILIKE ?", like, like, like)
	}

	var pesquisas []models.Pesquisa
	query.Find(&pesquisas)

	fillReactionCounts(pesquisas)

	renderData := gin.H{
		"Pesquisas":  pesquisas,
		"Areas":      models.Areas(),
		"FiltroArea": filtroArea,
		"Query":      q,
	}

	if filtroArea == "" && q == "" {
		// Guarda um snapshot: Render vai mutar renderData com valores da
		// requisição atual.
		snapshot := gin.H{}
		for k, v := range renderData {
			snapshot[k] = v
		}
		utils.GetCache().Set(vitrineCacheKey, snapshot, 1*time.Minute)
	}

	Render(c, http.StatusOK, "pesquisa/list.html", renderData)
}

// Detail mostra uma pesquisa e conta a visita.
func (h *PesquisaHandler) Detail(c *gin.Context) {
	id := utils.StringToUint(c.Param("id"))

	// Toda visita conta, de qualquer visitante, antes de carregar a linha.
	db.DB.Model(&models.Pesquisa{}).Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1"))

	var pesquisa models.Pesquisa
	if err := db.DB.First(&pesquisa, id).Error; err != nil {
		utils.SetFlash(c, "error", "Pesquisa não encontrada.")
		c.Redirect(http.StatusFound, "/")
		return
	}

	var likesCount int64
	db.DB.Model(&models.Like{}).Where("pesquisa_id = ?", pesquisa.ID).Count(&likesCount)
	pesquisa.LikesCount = int(likesCount)

	var savesCount int64
	db.DB.Model(&models.Save{}).Where("pesquisa_id = ?", pesquisa.ID).Count(&savesCount)
	pesquisa.SavesCount = int(savesCount)

	liked, saved, owner := false, false, false
	if user, ok := CurrentUser(c); ok {
		var like models.Like
		if err := db.DB.Where("user_id = ? AND pesquisa_id = ?", user.ID, pesquisa.ID).First(&like).Error; err == nil {
			liked = true
		}
		var save models.Save
		if err := db.DB.Where("user_id = ? AND pesquisa_id = ?", user.ID, pesquisa.ID).First(&save).Error; err == nil {
			saved = true
		}
		owner = pesquisa.PesquisadorID == user.ID
	}

	Render(c, http.StatusOK, "pesquisa/detail.html", gin.H{
		"Pesquisa": pesquisa,
		"Liked":    liked,
		"Saved":    saved,
		"Owner":    owner,
	})
}

// pesquisaForm agrupa os campos submetidos dos formulários de publicar/editar.
type pesquisaForm struct {
	Titulo      string
	Area        string
	Descoberta  string
	Link        string
	Importancia string
	Aplicacao   string
	Publico     string
	Evidencia   string
	ImagemURL   string
}

func readPesquisaForm(c *gin.Context) pesquisaForm {
	return pesquisaForm{
		Titulo:      strings.TrimSpace(c.PostForm("titulo")),
		Area:        strings.TrimSpace(c.PostForm("area")),
		Descoberta:  strings.TrimSpace(c.PostForm("descoberta")),
		Link:        strings.TrimSpace(c.PostForm("link_original")),
		Importancia: strings.TrimSpace(c.PostForm("importancia")),
		Aplicacao:   strings.TrimSpace(c.PostForm("aplicacao")),
		Publico:     strings.TrimSpace(c.PostForm("publico")),
		Evidencia:   strings.TrimSpace(c.PostForm("evidencia")),
		ImagemURL:   strings.TrimSpace(c.PostForm("imagem_url")),
	}
}

func (f pesquisaForm) missingRequired() bool {
	return f.Titulo == "" || f.Area == "" || f.Descoberta == "" || f.Link == ""
}

func (h *PesquisaHandler) ShowPublicar(c *gin.Context) {
	Render(c, http.StatusOK, "pesquisa/publicar.html", gin.H{
		"Areas":      models.Areas(),
		"Evidencias": models.Evidencias(),
		"Form":       pesquisaForm{},
	})
}

func (h *PesquisaHandler) Publicar(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	form := readPesquisaForm(c)
	if form.missingRequired() {
		Render(c, http.StatusBadRequest, "pesquisa/publicar.html", gin.H{
			"Error":      "Preencha os campos obrigatórios.",
			"Areas":      models.Areas(),
			"Evidencias": models.Evidencias(),
			"Form":       form,
		})
		return
	}

	pesquisa := models.Pesquisa{
		PesquisadorID: user.ID,
		// Nome desnormalizado no momento da escrita, não consultado depois.
		Pesquisador:  user.Nome,
		Titulo:       form.Titulo,
		Area:         models.ParseArea(form.Area),
		Descoberta:   form.Descoberta,
		Importancia:  form.Importancia,
		Aplicacao:    form.Aplicacao,
		Publico:      form.Publico,
		Evidencia:    models.ParseEvidencia(form.Evidencia),
		LinkOriginal: utils.NormalizeOriginalLink(form.Link),
		ImagemURL:    form.ImagemURL,
	}

	if err := db.DB.Create(&pesquisa).Error; err != nil {
		Render(c, http.StatusInternalServerError, "pesquisa/publicar.html", gin.H{
			"Error":      "Não foi possível publicar. Tente novamente.",
			"Areas":      models.Areas(),
			"Evidencias": models.Evidencias(),
			"Form":       form,
		})
		return
	}

	utils.GetCache().Delete(vitrineCacheKey)

	utils.SetFlash(c, "success", "Pesquisa publicada com sucesso!")
	c.Redirect(http.StatusFound, "/")
}

// Minhas lista as pesquisas do usuário logado, mais recentes primeiro.
func (h *PesquisaHandler) Minhas(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	var pesquisas []models.Pesquisa
	db.DB.Where("pesquisador_id = ?", user.ID).
		Order("data_publicacao DESC").
		Find(&pesquisas)

	fillReactionCounts(pesquisas)

	Render(c, http.StatusOK, "pesquisa/minhas.html", gin.H{
		"Pesquisas": pesquisas,
	})
}

// loadOwned carrega a pesquisa e barra quem não é o dono antes de qualquer
// formulário ser exibido.
func (h *PesquisaHandler) loadOwned(c *gin.Context, user *models.User) (*models.Pesquisa, bool) {
	id := utils.StringToUint(c.Param("id"))

	var pesquisa models.Pesquisa
	if err := db.DB.First(&pesquisa, id).Error; err != nil {
		utils.SetFlash(c, "error", "Pesquisa não encontrada.")
		c.Redirect(http.StatusFound, "/")
		return nil, false
	}

	if pesquisa.PesquisadorID != user.ID {
		utils.SetFlash(c, "error", "Você não tem permissão para editar essa pesquisa.")
		c.Redirect(http.StatusFound, "/")
		return nil, false
	}

	return &pesquisa, true
}

func (h *PesquisaHandler) ShowEditar(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	pesquisa, ok := h.loadOwned(c, user)
	if !ok {
		return
	}

	Render(c, http.StatusOK, "pesquisa/editar.html", gin.H{
		"Pesquisa":   pesquisa,
		"Areas":      models.Areas(),
		"Evidencias": models.Evidencias(),
	})
}

func (h *PesquisaHandler) Editar(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	pesquisa, ok := h.loadOwned(c, user)
	if !ok {
		return
	}

	form := readPesquisaForm(c)
	if form.missingRequired() {
		Render(c, http.StatusBadRequest, "pesquisa/editar.html", gin.H{
			"Error":      "Preencha os campos obrigatórios.",
			"Pesquisa":   pesquisa,
			"Areas":      models.Areas(),
			"Evidencias": models.Evidencias(),
		})
		return
	}

	now := time.Now()
	// O guard por dono no WHERE segura a corrida entre o load acima e o
	// update, mesmo que a posse nunca mude neste design.
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Model(&models.Pesquisa{}).
			Where("id = ? AND pesquisador_id = ?", pesquisa.ID, user.ID).
			Updates(map[string]interface{}{
				"titulo":        form.Titulo,
				"area":          models.ParseArea(form.Area),
				"descoberta":    form.Descoberta,
				"importancia":   form.Importancia,
				"aplicacao":     form.Aplicacao,
				"publico":       form.Publico,
				"evidencia":     models.ParseEvidencia(form.Evidencia),
				"link_original": utils.NormalizeOriginalLink(form.Link),
				"imagem_url":    form.ImagemURL,
				"updated_at":    &now,
			}).Error
	})
	if err != nil {
		Render(c, http.StatusInternalServerError, "pesquisa/editar.html", gin.H{
			"Error":      "Não foi possível salvar. Tente novamente.",
			"Pesquisa":   pesquisa,
			"Areas":      models.Areas(),
			"Evidencias": models.Evidencias(),
		})
		return
	}

	utils.GetCache().Delete(vitrineCacheKey)

	utils.SetFlash(c, "success", "Pesquisa atualizada!")
	c.Redirect(http.StatusFound, "/minhas")
}

// Excluir remove a pesquisa num único statement guardado por dono; excluir o
// que não existe (ou não é seu) é um no-op silencioso.
func (h *PesquisaHandler) Excluir(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)
	id := utils.StringToUint(c.Param("id"))

	db.DB.Where("id = ? AND pesquisador_id = ?", id, user.ID).
		Delete(&models.Pesquisa{})

	utils.GetCache().Delete(vitrineCacheKey)

	utils.SetFlash(c, "success", "Pesquisa excluída.")
	c.Redirect(http.StatusFound, "/minhas")
}
