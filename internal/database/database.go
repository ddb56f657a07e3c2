package database

import (
	"fabshop-api/config"
	"fabshop-api/models"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func NewDBConnection(appConfig *config.AppConfig, logger *zap.Logger) *gorm.DB {
	db, err := gorm.Open(postgres.Open(appConfig.DatabaseURL), &gorm.Config{})
	if err != nil {
		logger.Fatal("failed to connect database", zap.Error(err))
	}
	logger.Info("connected to database")
	return db
}

// RunMigrations creates or updates every table the service owns. The
// per-category task tables share one model and differ only by name.
func RunMigrations(db *gorm.DB, logger *zap.Logger) error {
	if err := db.AutoMigrate(
		&models.Project{},
		&models.ProjectFile{},
		&models.LedgerEntry{},
		&models.APIMessage{},
	); err != nil {
		return err
	}

	for _, cat := range models.Categories {
		if err := db.Table(cat.TaskTable()).AutoMigrate(&models.Task{}); err != nil {
			return err
		}
	}

	logger.Info("database migrations applied")
	return nil
}
