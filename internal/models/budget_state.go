package models

// BudgetStateID is the primary key of the single budget row.
const BudgetStateID uint = 1

// BudgetState holds the process-wide running budget total as a singleton
// row. Amount equals the signed sum of all live transaction amounts unless
// an administrative override reset the baseline.
type BudgetState struct {
	ID     uint    `gorm:"primaryKey" json:"id"`
	Amount float64 `gorm:"not null" json:"amount"`
}
