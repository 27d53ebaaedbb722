package models

// Achievement is a static reward definition from the catalog. Read-only
// reference data, seeded at startup.
type Achievement struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
}
