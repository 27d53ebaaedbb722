package services

import (
	"time"

	"gorm.io/gorm"

	"hearth/internal/models"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(avatarID, name, surname, role string, dob time.Time) (*models.User, error)
	GetUsers() ([]models.User, error)
	GetUserByID(id uint) (*models.User, error)
	GetUserAchievements(userID uint) ([]models.Achievement, error)
	UpdateAvatar(userID uint, avatarID string) (*models.User, error)
}

// TaskWithCreator is a task enriched with its creator's display name
// ("Unknown" when the creator id no longer resolves).
type TaskWithCreator struct {
	models.Task
	CreatorName string
}

// Task feed filter modes.
const (
	TaskFilterDeadline = "deadline"
	TaskFilterPriority = "priority"
	TaskFilterDone     = "done"
)

// TaskServicer defines the contract for task-related business logic.
type TaskServicer interface {
	CreateTask(creatorID uint, name, description string, deadline time.Time, priority int, repeatable bool, repeatType int, participants []uint) (*models.Task, error)
	GetTaskByID(id uint) (*TaskWithCreator, error)
	GetUserTasks(userID uint, filter string) ([]TaskWithCreator, error)
	UpdateTask(taskID uint, name, description string, deadline time.Time, priority int, repeatable bool, repeatType int, participants []uint) (*models.Task, error)
	ToggleTaskDone(userID, taskID uint) (*models.Task, error)
	DeleteTask(taskID uint) error
}

// EventWithCreator is an event enriched with its creator's display name.
type EventWithCreator struct {
	models.Event
	CreatorName string
}

// EventGroup is one calendar day's worth of a user's events.
type EventGroup struct {
	Date   time.Time
	Events []EventWithCreator
}

// EventServicer defines the contract for event-related business logic.
type EventServicer interface {
	CreateEvent(creatorID uint, name string, start time.Time, end *time.Time, description string, participants []uint) (*models.Event, error)
	GetEventByID(id uint) (*EventWithCreator, error)
	GetUserEvents(userID uint) ([]EventGroup, error)
	GetEarliestUserEvent(userID uint) (*EventWithCreator, error)
	UpdateEvent(eventID uint, name string, start time.Time, end *time.Time, description string, participants []uint) (*models.Event, error)
	DeleteEvent(eventID uint) error
}

// Transaction listing splits.
const (
	TranTypeAll     = "all"
	TranTypeIncome  = "income"
	TranTypeOutcome = "outcome"
)

// TransactionFilterAmount sorts a listing by amount instead of matching a
// category label.
const TransactionFilterAmount = "amount"

// TransactionServicer defines the contract for transaction-related business logic.
type TransactionServicer interface {
	CreateTransaction(amount float64, isIncome bool, jarID *uint, dtype string) (*models.Transaction, error)
	GetTransactionByID(id uint) (*models.Transaction, error)
	GetLastTransaction() (*models.Transaction, error)
	GetTransactions(filter, tranType string) ([]models.Transaction, error)
	DeleteTransaction(id uint) error
}

// JarView is a jar with its derived progress percentage and its linked
// transactions joined in.
type JarView struct {
	Percent      int
	Jar          models.Jar
	Transactions []models.Transaction
}

// JarServicer defines the contract for jar-related business logic.
type JarServicer interface {
	CreateJar(target string, totalAmount float64, deadline *time.Time) (*models.Jar, error)
	GetJars() ([]JarView, error)
	GetJarByID(id uint) (*JarView, error)
	GetHighestProgressJar() (*JarView, error)
	UpdateDeadline(jarID uint, deadline time.Time) (*models.Jar, error)
	UpdateAmounts(jarID uint, totalAmount, currentAmount float64) (*models.Jar, error)
	DeleteJar(jarID uint) error
}

// BudgetStatistics holds the current calendar month's income and outcome
// totals, each rounded to two decimals.
type BudgetStatistics struct {
	TotalIncome  float64 `json:"total_income"`
	TotalOutcome float64 `json:"total_outcome"`
	Total        float64 `json:"total"`
}

// BudgetServicer defines the contract for the running budget total.
type BudgetServicer interface {
	GetBudget() (float64, error)
	GetStatistics() (*BudgetStatistics, error)
	SetBudget(amount float64) (float64, error)
	// Add applies a signed delta to the running total on an open store
	// transaction so ledger updates commit atomically with the entity
	// mutation that caused them.
	Add(tx *gorm.DB, delta float64) error
}

// TypeServicer defines the contract for the category-label catalog.
type TypeServicer interface {
	CreateType(name, relate string) (*models.TransactionType, error)
	GetTypesByRelation(relate string) ([]models.TransactionType, error)
}
