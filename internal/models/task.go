package models

import "time"

// Task priorities, easy to hard.
const (
	PriorityEasy   = 1
	PriorityMedium = 2
	PriorityHard   = 3
)

// Repeat types for repeatable tasks.
const (
	RepeatNone    = 0
	RepeatDaily   = 1
	RepeatWeekly  = 2
	RepeatMonthly = 3
)

// Task represents a household task.
//
// Repeatable is derived: it is forced true whenever RepeatType is non-zero.
// Participants are weak user-id references resolved at read time.
type Task struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string    `gorm:"size:50;not null" json:"name"`
	Description  string    `gorm:"size:450" json:"description"`
	DateCreation time.Time `json:"datecreation"`
	Deadline     time.Time `gorm:"not null" json:"deadline"`
	Priority     int       `gorm:"not null" json:"priority"`
	Repeatable   bool      `json:"repeatable"`
	RepeatType   int       `json:"repeatabletype"`
	Participants []uint    `gorm:"serializer:json" json:"participating"`
	Done         bool      `gorm:"default:false" json:"done"`
	CreatedBy    uint      `gorm:"not null" json:"created_by"`
}
