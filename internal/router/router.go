package router

import (
	"ipe/internal/config"
	"ipe/internal/handlers"
	"ipe/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, cfg *config.Config) {
	// Handlers
	authHandler := handlers.NewAuthHandler(cfg)
	pesquisaHandler := handlers.NewPesquisaHandler()
	reactionHandler := handlers.NewReactionHandler()
	profileHandler := handlers.NewProfileHandler()
	pageHandler := handlers.NewPageHandler(cfg)

	// Rotas públicas
	r.GET("/", pesquisaHandler.Vitrine)            // vitrine + busca
	r.GET("/pesquisa/:id", pesquisaHandler.Detail) // detalhe (conta visita)
	r.GET("/perfil/:nome", profileHandler.Perfil)  // pesquisas por nome
	r.GET("/sobre", pageHandler.Sobre)

	r.GET("/registro", authHandler.ShowRegister)
	r.POST("/registro", authHandler.Register)
	r.GET("/login", authHandler.ShowLogin)
	r.POST("/login", authHandler.Login)
	r.GET("/logout", authHandler.Logout)

	// Rotas protegidas
	authorized := r.Group("/")
	authorized.Use(middleware.AuthRequired())
	{
		authorized.GET("/publicar", pesquisaHandler.ShowPublicar)
		authorized.POST("/publicar", pesquisaHandler.Publicar)
		authorized.GET("/minhas", pesquisaHandler.Minhas)

		authorized.GET("/pesquisa/:id/editar", pesquisaHandler.ShowEditar)
		authorized.POST("/pesquisa/:id/editar", pesquisaHandler.Editar)
		authorized.POST("/pesquisa/:id/excluir", pesquisaHandler.Excluir)

		authorized.POST("/pesquisa/:id/like", reactionHandler.ToggleLike)
		authorized.POST("/pesquisa/:id/save", reactionHandler.ToggleSave)
	}
}
