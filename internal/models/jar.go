package models

import "time"

// Jar is an earmarked sub-budget with a savings goal.
//
// CurrentAmount is maintained incrementally by the transaction and jar
// services and equals the sum of magnitudes of the jar's linked
// transactions' amounts. The linked set is the transactions whose JarID
// points here, ordered by id.
type Jar struct {
	ID            uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Target        string     `gorm:"not null" json:"target"`
	TotalAmount   float64    `gorm:"not null" json:"totalamount"`
	CurrentAmount float64    `gorm:"default:0" json:"currentamount"`
	Deadline      *time.Time `json:"deadline"`
}
