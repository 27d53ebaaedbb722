// Package testutil provides test helpers for setting up in-memory databases,
// creating fixtures, and making assertions.
package testutil

import (
	"testing"

	"hearth/internal/database"
	"hearth/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// allModels is the list of all GORM models to auto-migrate in tests.
var allModels = []interface{}{
	&models.User{},
	&models.Task{},
	&models.Event{},
	&models.Transaction{},
	&models.Jar{},
	&models.Achievement{},
	&models.TransactionType{},
	&models.BudgetState{},
}

// SetupTestDB creates an in-memory SQLite database with all models migrated,
// the achievement catalog loaded, and a zeroed budget row.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get underlying DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(allModels...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	catalog := database.AchievementCatalog
	if err := db.Create(&catalog).Error; err != nil {
		t.Fatalf("failed to seed achievement catalog: %v", err)
	}
	if err := db.Create(&models.BudgetState{ID: models.BudgetStateID, Amount: 0}).Error; err != nil {
		t.Fatalf("failed to seed budget row: %v", err)
	}

	return db
}

// TeardownTestDB closes the underlying database connection.
func TeardownTestDB(t *testing.T, db *gorm.DB) {
	t.Helper()

	sqlDB, err := db.DB()
	if err != nil {
		t.Errorf("failed to get underlying DB for teardown: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		t.Errorf("failed to close test database: %v", err)
	}
}
