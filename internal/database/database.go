// Package database constructs the in-memory entity store. All state lives
// in a process-local SQLite database and is gone when the process exits;
// there is no persistence layer.
package database

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"hearth/internal/models"
)

// allModels is the list of all GORM models migrated at startup.
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

// Manager owns the store handle.
type Manager struct {
	db *gorm.DB
}

// NewManager opens the volatile in-memory store.
func NewManager() (*Manager, error) {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open in-memory store: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying DB: %w", err)
	}
	// Single connection: mutations to the budget scalar, a jar's balance and
	// its transaction list must be applied as one unit relative to other
	// operations, so writes are serialized on one writer.
	sqlDB.SetMaxOpenConns(1)

	return &Manager{db: db}, nil
}

// Migrate creates the schema. Auto-increment primary keys hand out
// monotonically increasing ids that are never reused after deletion.
func (m *Manager) Migrate() error {
	if err := m.db.AutoMigrate(allModels...); err != nil {
		return fmt.Errorf("failed to migrate store: %w", err)
	}
	return nil
}

// DB returns the underlying GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}
