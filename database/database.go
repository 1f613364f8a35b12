// database.go - Handles database connection and setup

package database // Declares the package name

import ( // Import required packages
	"go-health-backend/models" // Project models

	"gorm.io/driver/sqlite" // SQLite driver for GORM
	"gorm.io/gorm"          // GORM ORM
)

// Connect opens the database and runs migrations for all tables.
// Each caller owns the returned handle; nothing is kept as package state,
// so tests can open their own throwaway databases.
func Connect(dbPath string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{}) // Open SQLite DB
	if err != nil {                                           // If error, return it
		return nil, err
	}

	// Auto-migrate all models (create tables if needed)
	if err := db.AutoMigrate(&models.User{}, &models.HealthData{}, &models.AIInsight{}); err != nil {
		return nil, err
	}

	return db, nil
}
