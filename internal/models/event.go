package models

import "time"

// Event represents a household calendar event. EndTime is optional.
type Event struct {
	ID           uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string     `gorm:"size:50;not null" json:"name"`
	StartTime    time.Time  `gorm:"not null" json:"starttime"`
	EndTime      *time.Time `json:"endtime"`
	Description  string     `gorm:"size:450" json:"description"`
	Participants []uint     `gorm:"serializer:json" json:"participating"`
	CreatedBy    uint       `gorm:"not null" json:"created_by"`
}
