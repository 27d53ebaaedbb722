package services

import (
	"math"
	"time"

	"gorm.io/gorm"

	apperrors "hearth/internal/errors"
	"hearth/internal/models"
)

// budgetService maintains the running budget total. The scalar equals the
// signed sum of all live transaction amounts; it is updated incrementally
// by the transaction and jar flows, never recomputed.
type budgetService struct {
	db *gorm.DB
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(db *gorm.DB) BudgetServicer {
	return &budgetService{db: db}
}

// round2 rounds to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// GetBudget returns the running total rounded to two decimals. A zero
// scalar is returned as exactly 0 so no negative-zero artifact leaks out.
func (s *budgetService) GetBudget() (float64, error) {
	var state models.BudgetState
	if err := s.db.First(&state, models.BudgetStateID).Error; err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if state.Amount == 0 {
		return 0, nil
	}
	return round2(state.Amount), nil
}

// GetStatistics sums the current calendar month's incomes and outcomes
// separately. The month window is evaluated at call time.
func (s *budgetService) GetStatistics() (*BudgetStatistics, error) {
	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := monthStart.AddDate(0, 1, 0)

	sumFor := func(isIncome bool) (float64, error) {
		var total float64
		err := s.db.Model(&models.Transaction{}).
			Select("COALESCE(SUM(amount), 0)").
			Where("is_income = ? AND date_creation >= ? AND date_creation < ?", isIncome, monthStart, monthEnd).
			Scan(&total).Error
		if err != nil {
			return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return total, nil
	}

	income, err := sumFor(true)
	if err != nil {
		return nil, err
	}
	outcome, err := sumFor(false)
	if err != nil {
		return nil, err
	}

	return &BudgetStatistics{
		TotalIncome:  round2(income),
		TotalOutcome: round2(outcome),
		Total:        round2(income + outcome),
	}, nil
}

// SetBudget overwrites the running total. This is an administrative
// override: it intentionally resets the sum-of-transactions baseline.
func (s *budgetService) SetBudget(amount float64) (float64, error) {
	if amount < 0 {
		return 0, apperrors.ErrNegativeBudget
	}

	err := s.db.Model(&models.BudgetState{}).
		Where("id = ?", models.BudgetStateID).
		Update("amount", amount).Error
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return amount, nil
}

// Add applies a signed delta to the running total on an open store
// transaction.
func (s *budgetService) Add(tx *gorm.DB, delta float64) error {
	err := tx.Model(&models.BudgetState{}).
		Where("id = ?", models.BudgetStateID).
		Update("amount", gorm.Expr("amount + ?", delta)).Error
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
