package database

import (
	"fmt"
	"strings"

	"pharma-pos/internal/models"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects the store and syncs the schema.
//
// An empty dsn opens an in-memory SQLite database: every run starts from the seed
// fixtures and nothing survives the process, which matches how the terminal is
// actually operated. A MySQL DSN can be supplied for a persistent install, and a
// "file:" DSN picks SQLite explicitly (tests use per-test named memory databases).
func Open(dsn string) (*gorm.DB, error) {
	var dial gorm.Dialector
	switch {
	case dsn == "":
		dial = sqlite.Open("file::memory:?cache=shared")
	case strings.HasPrefix(dsn, "file:") || dsn == ":memory:":
		dial = sqlite.Open(dsn)
	default:
		dial = mysql.Open(dsn)
	}

	db, err := gorm.Open(dial, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Sale{},
		&models.SaleItem{},
		&models.AppSetting{},
		&models.AuditLog{},
	); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	return db, nil
}
