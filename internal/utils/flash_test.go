package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

func flashTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	store := cookie.NewStore([]byte("test-secret"))
	r.Use(sessions.Sessions("test_session", store))

	r.GET("/set", func(c *gin.Context) {
		SetFlash(c, "error", "Pesquisa não encontrada.")
		c.Status(http.StatusOK)
	})
	r.GET("/pop", func(c *gin.Context) {
		c.JSON(http.StatusOK, PopFlashes(c))
	})
	return r
}

func TestFlashSurvivesOneRedirect(t *testing.T) {
	r := flashTestRouter()

	// Primeira requisição enfileira o aviso.
	w1 := httptest.NewRecorder()
	req1 := httptest.NewRequest("GET", "/set", nil)
	r.ServeHTTP(w1, req1)

	cookies := w1.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("expected session cookie after SetFlash")
	}

	// Segunda requisição, com o cookie, drena o aviso.
	w2 := httptest.NewRecorder()
	req2 := httptest.NewRequest("GET", "/pop", nil)
	for _, ck := range cookies {
		req2.AddCookie(ck)
	}
	r.ServeHTTP(w2, req2)

	var flashes []FlashMessage
	if err := json.Unmarshal(w2.Body.Bytes(), &flashes); err != nil {
		t.Fatalf("failed to decode flashes: %v", err)
	}
	if len(flashes) != 1 {
		t.Fatalf("expected 1 flash, got %d", len(flashes))
	}
	if flashes[0].Level != "error" || flashes[0].Message != "Pesquisa não encontrada." {
		t.Errorf("unexpected flash: %+v", flashes[0])
	}

	// Terceira requisição: o aviso já foi consumido.
	w3 := httptest.NewRecorder()
	req3 := httptest.NewRequest("GET", "/pop", nil)
	for _, ck := range w2.Result().Cookies() {
		req3.AddCookie(ck)
	}
	r.ServeHTTP(w3, req3)

	var drained []FlashMessage
	if err := json.Unmarshal(w3.Body.Bytes(), &drained); err != nil {
		t.Fatalf("failed to decode flashes: %v", err)
	}
	if len(drained) != 0 {
		t.Errorf("expected flashes drained, got %d", len(drained))
	}
}
