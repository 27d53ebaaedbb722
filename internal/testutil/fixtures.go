package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"hearth/internal/models"

	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

func localMidnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// CreateTestUser creates a household member with zeroed counters.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()

	n := nextID()
	user := &models.User{
		AvatarID:     "1.png",
		Name:         fmt.Sprintf("Member%d", n),
		Surname:      "Tester",
		Role:         "Parent",
		DOB:          time.Date(1980, time.June, 15, 0, 0, 0, 0, time.UTC),
		Achievements: []uint{},
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestTask creates an open task owned by the given user.
func CreateTestTask(t *testing.T, db *gorm.DB, createdBy uint) *models.Task {
	t.Helper()

	task := &models.Task{
		Name:         fmt.Sprintf("Test Task %d", nextID()),
		Description:  "Just a chore",
		DateCreation: localMidnight(time.Now()),
		Deadline:     time.Now().Add(48 * time.Hour),
		Priority:     models.PriorityMedium,
		Participants: []uint{createdBy},
		CreatedBy:    createdBy,
	}
	if err := db.Create(task).Error; err != nil {
		t.Fatalf("failed to create test task: %v", err)
	}
	return task
}

// CreateTestEvent creates an event starting at the given time.
func CreateTestEvent(t *testing.T, db *gorm.DB, createdBy uint, start time.Time) *models.Event {
	t.Helper()

	end := start.Add(2 * time.Hour)
	event := &models.Event{
		Name:         fmt.Sprintf("Test Event %d", nextID()),
		StartTime:    start,
		EndTime:      &end,
		Participants: []uint{createdBy},
		CreatedBy:    createdBy,
	}
	if err := db.Create(event).Error; err != nil {
		t.Fatalf("failed to create test event: %v", err)
	}
	return event
}

// CreateTestJar creates a savings jar with the given goal and balance.
func CreateTestJar(t *testing.T, db *gorm.DB, totalAmount, currentAmount float64) *models.Jar {
	t.Helper()

	jar := &models.Jar{
		Target:        fmt.Sprintf("Test Goal %d", nextID()),
		TotalAmount:   totalAmount,
		CurrentAmount: currentAmount,
	}
	if err := db.Create(jar).Error; err != nil {
		t.Fatalf("failed to create test jar: %v", err)
	}
	return jar
}

// CreateTestTransaction creates a stored transaction as-is, without the
// normalization or budget bookkeeping the service applies.
func CreateTestTransaction(t *testing.T, db *gorm.DB, amount float64, isIncome bool, jarID *uint) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		Amount:       amount,
		DateCreation: time.Now(),
		IsIncome:     isIncome,
		JarID:        jarID,
		DType:        "Groceries",
	}
	if jarID != nil {
		tx.DType = models.DTypeJar
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}

// SetTestBudget overwrites the budget row's amount directly.
func SetTestBudget(t *testing.T, db *gorm.DB, amount float64) {
	t.Helper()

	if err := db.Model(&models.BudgetState{}).Where("id = ?", models.BudgetStateID).Update("amount", amount).Error; err != nil {
		t.Fatalf("failed to set test budget: %v", err)
	}
}
