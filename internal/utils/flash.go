package utils

import (
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// FlashMessage é um aviso de uma requisição para a próxima (sucesso/erro),
// carregado na própria sessão.
type FlashMessage struct {
	Level   string
	Message string
}

// SetFlash enfileira um aviso para a próxima página renderizada.
func SetFlash(c *gin.Context, level, message string) {
	session := sessions.Default(c)
	session.AddFlash(level + "|" + message)
	session.Save()
}

// PopFlashes drena os avisos pendentes da sessão.
func PopFlashes(c *gin.Context) []FlashMessage {
	session := sessions.Default(c)
	raw := session.Flashes()
	if len(raw) == 0 {
		return nil
	}
	session.Save()

	flashes := make([]FlashMessage, 0, len(raw))
	for _, f := range raw {
		s, ok := f.(string)
		if !ok {
			continue
		}
		level, message, found := strings.Cut(s, "|")
		if !found {
			level, message = "success", s
		}
		flashes = append(flashes, FlashMessage{Level: level, Message: message})
	}
	return flashes
}
