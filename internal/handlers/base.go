package handlers

import (
	"ipe/internal/middleware"
	"ipe/internal/models"
	"ipe/internal/utils"

	"github.com/gin-gonic/gin"
)

const appName = "Ipê"

// Render helper to inject common variables like 'current user'
func Render(c *gin.Context, code int, name string, obj gin.H) {
	if obj == nil {
		obj = gin.H{}
	}

	// Inject Current User
	if user, exists := c.Get(middleware.CheckUserKey); exists {
		obj["CurrentUser"] = user
	}

	obj["AppName"] = appName
	obj["CurrentPath"] = c.Request.URL.Path

	if flashes := utils.PopFlashes(c); len(flashes) > 0 {
		obj["Flashes"] = flashes
	}

	c.HTML(code, name, obj)
}

// CurrentUser devolve o usuário resolvido pela sessão, se houver.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	user, exists := c.Get(middleware.CheckUserKey)
	if !exists {
		return nil, false
	}
	u, ok := user.(*models.User)
	return u, ok
}
