package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config reúne toda a configuração vinda do ambiente.
type Config struct {
	// Conexão com o Postgres (Neon). Sem ela o processo não sobe.
	DatabaseURL string `envconfig:"DATABASE_URL" required:"true"`

	SessionSecret string `envconfig:"SESSION_SECRET" default:"dev-ipe-secret-key-CHANGE-ME"`

	// Cadastro fechado por código de convite.
	RequireInvite bool   `envconfig:"IPE_REQUIRE_INVITE" default:"false"`
	InviteCode    string `envconfig:"IPE_INVITE_CODE" default:"IPE2026"`

	Port  string `envconfig:"PORT" default:"8080"`
	Debug bool   `envconfig:"DEBUG" default:"false"`
}

// Load carrega a configuração das variáveis de ambiente (.env opcional).
func Load() (*Config, error) {
	_ = godotenv.Load()
	var c Config
	err := envconfig.Process("", &c)
	return &c, err
}
