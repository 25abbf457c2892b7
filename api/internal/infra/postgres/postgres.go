package postgres

import (
	"fmt"

	"merchant/api/internal/config"
	"merchant/api/internal/domain"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func Init(config *config.Config) *gorm.DB {
	dbConfig := config.Postgres
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s", dbConfig.Host, dbConfig.User, dbConfig.Password, dbConfig.Db_name, dbConfig.Port, dbConfig.Ssl_mode)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		panic("Gorm error: " + err.Error())
	}

	if err := db.AutoMigrate(&domain.Merchants{}); err != nil {
		panic("Auto migrate error: " + err.Error())
	}

	return db
}

// InitTest opens a private in-memory sqlite database with the merchants schema.
func InitTest() (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	// every pooled connection to :memory: is a different database
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&domain.Merchants{}); err != nil {
		return nil, err
	}

	return db, nil
}

func DropTables(db *gorm.DB) error {
	return db.Migrator().DropTable(&domain.Merchants{})
}
