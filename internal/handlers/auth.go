package handlers

import (
	"net/http"
	"strings"

	"ipe/internal/config"
	"ipe/internal/db"
	"ipe/internal/models"
	"ipe/internal/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	cfg *config.Config
}

func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{cfg: cfg}
}

func (h *AuthHandler) ShowRegister(c *gin.Context) {
	if _, ok := CurrentUser(c); ok {
		c.Redirect(http.StatusFound, "/")
		return
	}
	Render(c, http.StatusOK, "auth/register.html", gin.H{"RequireInvite": h.cfg.RequireInvite})
}

func (h *AuthHandler) Register(c *gin.Context) {
	if _, ok := CurrentUser(c); ok {
		c.Redirect(http.StatusFound, "/")
		return
	}

	nome := strings.TrimSpace(c.PostForm("nome"))
	email := strings.ToLower(strings.TrimSpace(c.PostForm("email")))
	senha := strings.TrimSpace(c.PostForm("senha"))
	senha2 := strings.TrimSpace(c.PostForm("senha2"))
	instituicao := strings.TrimSpace(c.PostForm("instituicao"))

	if h.cfg.RequireInvite {
		codigo := strings.TrimSpace(c.PostForm("codigo_convite"))
		if codigo != h.cfg.InviteCode {
			Render(c, http.StatusBadRequest, "auth/register.html", gin.H{
				"Error":         "Código de convite inválido.",
				"RequireInvite": h.cfg.RequireInvite,
			})
			return
		}
	}

	if nome == "" || email == "" || senha == "" {
		Render(c, http.StatusBadRequest, "auth/register.html", gin.H{
			"Error":         "Preencha nome, email e senha.",
			"RequireInvite": h.cfg.RequireInvite,
		})
		return
	}

	if senha != senha2 {
		Render(c, http.StatusBadRequest, "auth/register.html", gin.H{
			"Error":         "As senhas não coincidem.",
			"RequireInvite": h.cfg.RequireInvite,
		})
		return
	}

	if len(senha) < 6 {
		Render(c, http.StatusBadRequest, "auth/register.html", gin.H{
			"Error":         "Senha muito curta. Use pelo menos 6 caracteres.",
			"RequireInvite": h.cfg.RequireInvite,
		})
		return
	}

	var existing models.User
	if err := db.DB.Where("email = ?", email).First(&existing).Error; err == nil {
		Render(c, http.StatusConflict, "auth/register.html", gin.H{
			"Error":         "Este email já está cadastrado.",
			"RequireInvite": h.cfg.RequireInvite,
		})
		return
	}

	hash, err := utils.HashPassword(senha)
	if err != nil {
		Render(c, http.StatusInternalServerError, "auth/register.html", gin.H{
			"Error":         "Não foi possível criar a conta. Tente novamente.",
			"RequireInvite": h.cfg.RequireInvite,
		})
		return
	}

	user := models.User{
		Email:       email,
		Password:    hash,
		Nome:        nome,
		Instituicao: instituicao,
	}
	if err := db.DB.Create(&user).Error; err != nil {
		// Corrida com outro cadastro do mesmo email cai no índice único.
		Render(c, http.StatusConflict, "auth/register.html", gin.H{
			"Error":         "Este email já está cadastrado.",
			"RequireInvite": h.cfg.RequireInvite,
		})
		return
	}

	utils.SetFlash(c, "success", "Conta criada com sucesso! Faça login.")
	c.Redirect(http.StatusFound, "/login")
}

func (h *AuthHandler) ShowLogin(c *gin.Context) {
	if _, ok := CurrentUser(c); ok {
		c.Redirect(http.StatusFound, "/")
		return
	}
	Render(c, http.StatusOK, "auth/login.html", nil)
}

func (h *AuthHandler) Login(c *gin.Context) {
	if _, ok := CurrentUser(c); ok {
		c.Redirect(http.StatusFound, "/")
		return
	}

	email := strings.ToLower(strings.TrimSpace(c.PostForm("email")))
	senha := strings.TrimSpace(c.PostForm("senha"))

	// Mensagem única para email desconhecido e senha errada.
	var user models.User
	if err := db.DB.Where("email = ?", email).First(&user).Error; err != nil {
		Render(c, http.StatusUnauthorized, "auth/login.html", gin.H{"Error": "Email ou senha incorretos."})
		return
	}

	if !utils.CheckPasswordHash(senha, user.Password) {
		Render(c, http.StatusUnauthorized, "auth/login.html", gin.H{"Error": "Email ou senha incorretos."})
		return
	}

	// Cookie persistente ("lembrar de mim"); MaxAge vem do store.
	session := sessions.Default(c)
	session.Set("user_id", user.ID)
	session.Save()

	utils.SetFlash(c, "success", "Bem-vinda(o)!")
	c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Save()
	utils.SetFlash(c, "success", "Você saiu da conta.")
	c.Redirect(http.StatusFound, "/")
}
