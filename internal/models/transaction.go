package models

import "time"

// DTypeJar is the category label given to transactions synthesized by jar
// balance updates.
const DTypeJar = "Jar"

// Transaction represents a single signed movement of money.
//
// Amount and IsIncome are kept consistent on create: outflows are stored
// negative, and a transaction linked to a jar is always a negative outflow.
// JarID is a weak back-reference; deleting a jar clears it rather than
// cascading.
type Transaction struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Amount       float64   `gorm:"not null" json:"amount"`
	DateCreation time.Time `gorm:"not null" json:"datecreation"`
	IsIncome     bool      `json:"isIncome"`
	JarID        *uint     `json:"jarId"`
	DType        string    `json:"dtype"`
}
