package main

import (
	"html/template"
	"log"
	"net/http"
	"net/url"
	"path/filepath"

	"ipe/internal/config"
	"ipe/internal/db"
	"ipe/internal/middleware"
	"ipe/internal/router"

	"github.com/gin-contrib/multitemplate"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const sessionMaxAge = 30 * 24 * 60 * 60 // "lembrar de mim": 30 dias

func main() {
	cfg, err := config.Load()
	if err != nil {
		// DATABASE_URL ausente derruba o processo aqui.
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger, err := zap.NewProduction()
	if cfg.Debug {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	// Initialize Database
	db.Init(cfg, logger)

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize Gin
	r := gin.Default()

	// Setup Sessions
	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   sessionMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions("ipe_session", store))

	// Load Templates using Multitemplate to avoid collision and allow handler names
	r.HTMLRender = loadTemplates("./web/templates")

	// Static Assets
	r.Static("/static", "./web/static")

	// Middleware
	r.Use(middleware.LoadUser())

	router.RegisterRoutes(r, cfg)

	logger.Info("Ipê server starting", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("Server exited", zap.Error(err))
	}
}

func loadTemplates(templatesDir string) multitemplate.Renderer {
	r := multitemplate.NewRenderer()

	layouts, err := filepath.Glob(templatesDir + "/layouts/*.html")
	if err != nil {
		panic(err)
	}

	includes, err := filepath.Glob(templatesDir + "/includes/*.html")
	if err != nil {
		panic(err)
	}

	// Helper to assemble files
	assemble := func(view string) []string {
		files := make([]string, 0)
		files = append(files, layouts...)
		files = append(files, includes...)
		files = append(files, view)
		return files
	}

	funcMap := template.FuncMap{
		"add": func(a, b int) int {
			return a + b
		},
		"urlquery": func(s string) string {
			return url.QueryEscape(s)
		},
	}

	// Auth
	r.AddFromFilesFuncs("auth/login.html", funcMap, assemble(templatesDir+"/views/auth/login.html")...)
	r.AddFromFilesFuncs("auth/register.html", funcMap, assemble(templatesDir+"/views/auth/register.html")...)

	// Pesquisa
	r.AddFromFilesFuncs("pesquisa/list.html", funcMap, assemble(templatesDir+"/views/pesquisa/list.html")...)
	r.AddFromFilesFuncs("pesquisa/detail.html", funcMap, assemble(templatesDir+"/views/pesquisa/detail.html")...)
	r.AddFromFilesFuncs("pesquisa/publicar.html", funcMap, assemble(templatesDir+"/views/pesquisa/publicar.html")...)
	r.AddFromFilesFuncs("pesquisa/editar.html", funcMap, assemble(templatesDir+"/views/pesquisa/editar.html")...)
	r.AddFromFilesFuncs("pesquisa/minhas.html", funcMap, assemble(templatesDir+"/views/pesquisa/minhas.html")...)

	// User
	r.AddFromFilesFuncs("user/perfil.html", funcMap, assemble(templatesDir+"/views/user/perfil.html")...)

	// Páginas estáticas
	r.AddFromFilesFuncs("sobre.html", funcMap, assemble(templatesDir+"/views/sobre.html")...)
	r.AddFromFilesFuncs("error.html", funcMap, assemble(templatesDir+"/views/error.html")...)

	return r
}
