package cli

import (
	"fmt"
	"log"

	"github.com/terraincognita07/plantcare/internal/db"
	"gorm.io/gorm"
)

// openDatabase opens the SQLite store and returns a closer for its pool.
func openDatabase(path string) (*gorm.DB, func(), error) {
	database, err := db.OpenSQLite(path)
	if err != nil {
		return nil, nil, fmt.Errorf("database init failed: %w", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("database init failed: %w", err)
	}
	closeDatabase := func() {
		if err := sqlDB.Close(); err != nil {
			log.Printf("database close failed: %v", err)
		}
	}
	return database, closeDatabase, nil
}
