// Package db opens the embedded SQLite database used by FolioBoard.
package db

import (
	"fmt"
	"os"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Config holds database connection configuration
type Config struct {
	// Path is the SQLite database file (defaults to the FOLIOBOARD_DB env
	// var). ":memory:" opens an in-memory database.
	Path string
}

// Connect opens the SQLite database.
//
// TranslateError is enabled so unique constraint violations surface as
// gorm.ErrDuplicatedKey; the store layer depends on that for its conflict
// sentinels. foreign_keys is switched on per connection since SQLite
// defaults it off.
func Connect(cfg Config) (*gorm.DB, error) {
	path := cfg.Path
	if path == "" {
		path = os.Getenv("FOLIOBOARD_DB")
	}
	if path == "" {
		return nil, fmt.Errorf("FOLIOBOARD_DB environment variable is required")
	}

	logMode := logger.Silent
	if os.Getenv("FOLIOBOARD_LOG_LEVEL") == "debug" {
		logMode = logger.Info
	}

	db, err := gorm.Open(
		sqlite.Open(path+"?_foreign_keys=on&_busy_timeout=5000"),
		&gorm.Config{
			Logger:         logger.Default.LogMode(logMode),
			TranslateError: true,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return db, nil
}
