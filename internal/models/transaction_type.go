package models

// TransactionType is a catalog entry grouping free-text category labels by
// the entity kind they apply to (Relate, e.g. "transaction"). Append-only.
type TransactionType struct {
	ID     uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name   string `gorm:"not null" json:"name"`
	Relate string `gorm:"not null" json:"relate"`
}
