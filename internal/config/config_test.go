package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadRequiresDatabaseURL(t *testing.T) {
	// t.Setenv registra a restauração; Unsetenv deixa a variável ausente
	// de fato, não apenas vazia.
	t.Setenv("DATABASE_URL", "placeholder")
	os.Unsetenv("DATABASE_URL")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "host=localhost user=ipe dbname=ipe port=5432")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.False(t, cfg.RequireInvite)
	assert.Equal(t, "IPE2026", cfg.InviteCode)
	assert.Equal(t, "8080", cfg.Port)
	assert.False(t, cfg.Debug)
	assert.NotEmpty(t, cfg.SessionSecret)
}

func TestLoadInviteGating(t *testing.T) {
	t.Setenv("DATABASE_URL", "host=localhost user=ipe dbname=ipe port=5432")
	t.Setenv("IPE_REQUIRE_INVITE", "true")
	t.Setenv("IPE_INVITE_CODE", "SEGREDO")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.True(t, cfg.RequireInvite)
	assert.Equal(t, "SEGREDO", cfg.InviteCode)
}
