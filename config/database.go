package config

import (
	"fmt"

	"planousoapi/models"
	"planousoapi/pkg/logger"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// DB is the global GORM database instance used throughout the application.
var DB *gorm.DB

// ConnectDB opens the database selected by DB_DRIVER. MySQL is the
// production engine; sqlite serves local development.
func ConnectDB() error {
	var dialector gorm.Dialector

	switch Cfg.DBDriver {
	case "sqlite":
		logger.Infof("Connecting to sqlite database %s", Cfg.DBFile)
		dialector = sqlite.Open(Cfg.DBFile)
	default:
		logger.Infof("Connecting to database %s@%s:%d/%s", Cfg.DBUser, Cfg.DBHost, Cfg.DBPort, Cfg.DBName)
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			Cfg.DBUser,
			Cfg.DBPass,
			Cfg.DBHost,
			Cfg.DBPort,
			Cfg.DBName,
		)
		dialector = mysql.Open(dsn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		logger.Errorf("GORM connection failed: %v", err)
		return err
	}
	logger.Infof("GORM connected successfully")

	DB = db
	return nil
}

// MigrateDB creates or updates the relational schema for all entities.
func MigrateDB() error {
	return DB.AutoMigrate(
		&models.Category{},
		&models.Item{},
		&models.CommunityType{},
		&models.FormPlano{},
		&models.Profissional{},
		&models.CadeiaValor{},
		&models.Equipamento{},
	)
}
