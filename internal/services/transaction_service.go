package services

import (
	"errors"
	"math"
	"time"

	"gorm.io/gorm"

	apperrors "hearth/internal/errors"
	"hearth/internal/models"
)

// transactionService handles transaction creation, normalization and the
// jar/budget bookkeeping tied to it.
type transactionService struct {
	db            *gorm.DB
	budgetService BudgetServicer
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB, budgetService BudgetServicer) TransactionServicer {
	return &transactionService{db: db, budgetService: budgetService}
}

// CreateTransaction normalizes and stores a transaction.
//
// Sign normalization: a non-income submitted positive is stored negated; an
// income submitted negative keeps its amount but is reclassified as an
// outflow. A jar-linked transaction is always stored as a negative outflow
// regardless of the declared sign, its magnitude is added to the jar's
// balance, and the final signed amount is added to the running budget. The
// jar must exist before anything is written.
func (s *transactionService) CreateTransaction(amount float64, isIncome bool, jarID *uint, dtype string) (*models.Transaction, error) {
	if amount == 0 {
		return nil, apperrors.ErrZeroAmount
	}

	var jar *models.Jar
	if jarID != nil {
		var found models.Jar
		if err := s.db.First(&found, *jarID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrJarNotFound
			}
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		jar = &found
	}

	transaction := &models.Transaction{
		Amount:       amount,
		DateCreation: time.Now(),
		IsIncome:     isIncome,
		JarID:        jarID,
		DType:        dtype,
	}

	switch {
	case !isIncome && amount > 0:
		transaction.Amount = -amount
	case isIncome && amount < 0:
		// An income claim with a negative amount is an outflow, not an error.
		transaction.IsIncome = false
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if jar != nil {
			jar.CurrentAmount += math.Abs(transaction.Amount)
			if err := tx.Save(jar).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}

			transaction.IsIncome = false
			transaction.Amount = -math.Abs(transaction.Amount)
		}

		if err := tx.Create(transaction).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return s.budgetService.Add(tx, transaction.Amount)
	})
	if err != nil {
		return nil, err
	}
	return transaction, nil
}

// GetTransactionByID returns a transaction by id.
func (s *transactionService) GetTransactionByID(id uint) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := s.db.First(&transaction, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &transaction, nil
}

// GetLastTransaction returns the most recent transaction by creation
// timestamp, or nil when none exist.
func (s *transactionService) GetLastTransaction() (*models.Transaction, error) {
	var transactions []models.Transaction
	if err := s.db.Order("date_creation DESC, id ASC").Limit(1).Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if len(transactions) == 0 {
		return nil, nil
	}
	return &transactions[0], nil
}

// GetTransactions lists transactions within an income/outcome/all split,
// in reverse insertion order. The "amount" filter sorts the outcome split
// by absolute amount descending and the other splits by raw amount
// descending; any other non-empty filter matches the category label.
func (s *transactionService) GetTransactions(filter, tranType string) ([]models.Transaction, error) {
	query := s.db.Model(&models.Transaction{})

	switch tranType {
	case TranTypeIncome:
		query = query.Where("is_income = ?", true)
	case TranTypeOutcome:
		query = query.Where("is_income = ?", false)
	}

	switch {
	case filter == TransactionFilterAmount && tranType == TranTypeOutcome:
		query = query.Order("ABS(amount) DESC, id DESC")
	case filter == TransactionFilterAmount:
		query = query.Order("amount DESC, id DESC")
	case filter != "":
		query = query.Where("d_type = ?", filter).Order("id DESC")
	default:
		query = query.Order("id DESC")
	}

	var transactions []models.Transaction
	if err := query.Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transactions, nil
}

// DeleteTransaction removes a transaction, subtracting its amount from the
// running budget. A jar-linked transaction's signed amount is added back
// onto the jar's balance.
func (s *transactionService) DeleteTransaction(id uint) error {
	transaction, err := s.GetTransactionByID(id)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if transaction.JarID != nil {
			var jar models.Jar
			if err := tx.First(&jar, *transaction.JarID).Error; err != nil {
				// The jar reference was validated at creation and jar deletion
				// detaches its transactions, so this should not occur.
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			jar.CurrentAmount += transaction.Amount
			if err := tx.Save(&jar).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		}

		if err := s.budgetService.Add(tx, -transaction.Amount); err != nil {
			return err
		}
		if err := tx.Delete(transaction).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
}
