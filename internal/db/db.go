package db

import (
	"ipe/internal/config"
	"ipe/internal/models"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Init abre a conexão com o Postgres e aplica o schema.
// A migração é idempotente; se falhar, o erro é registrado e o processo
// segue rodando contra o schema que existir.
func Init(cfg *config.Config, logger *zap.Logger) {
	var err error
	DB, err = gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}

	logger.Info("Database connection established")

	// Auto Migrate
	err = DB.AutoMigrate(
		&models.User{},
		&models.Pesquisa{},
		&models.Like{},
		&models.Save{},
	)
	if err != nil {
		logger.Error("Database migration failed, continuing with existing schema", zap.Error(err))
		return
	}
	logger.Info("Database migration completed")
}
