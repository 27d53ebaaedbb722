package models

import "time"

// User represents a household member.
//
// DoneTasks, CreatedEvents and CreatedTasks are the counters the achievement
// thresholds are evaluated against. Achievements holds unlocked achievement
// ids in unlock order; entries are plain ids with no referential integrity.
type User struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	AvatarID      string    `json:"avatar_id"`
	Name          string    `gorm:"not null" json:"name"`
	Surname       string    `json:"surname"`
	Role          string    `json:"role"`
	DOB           time.Time `json:"dob"`
	DoneTasks     int       `gorm:"default:0" json:"done_tasks"`
	CreatedEvents int       `gorm:"default:0" json:"created_events"`
	CreatedTasks  int       `gorm:"default:0" json:"created_tasks"`
	Achievements  []uint    `gorm:"serializer:json" json:"has_achievement"`
}
