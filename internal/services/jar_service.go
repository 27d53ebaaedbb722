package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "hearth/internal/errors"
	"hearth/internal/models"
)

// jarService handles jar-related business logic, including the synthetic
// transactions that keep jar balances and the running budget consistent.
type jarService struct {
	db            *gorm.DB
	budgetService BudgetServicer
}

// NewJarService creates a new JarServicer.
func NewJarService(db *gorm.DB, budgetService BudgetServicer) JarServicer {
	return &jarService{db: db, budgetService: budgetService}
}

// CreateJar creates a jar with a zero balance.
func (s *jarService) CreateJar(target string, totalAmount float64, deadline *time.Time) (*models.Jar, error) {
	if totalAmount < 0 {
		return nil, apperrors.ErrNegativeJarTarget
	}

	jar := &models.Jar{
		Target:        target,
		TotalAmount:   totalAmount,
		CurrentAmount: 0,
		Deadline:      deadline,
	}
	if err := s.db.Create(jar).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return jar, nil
}

// progress is the jar's completion ratio as a percentage, 0 when the goal
// amount is zero.
func progress(jar models.Jar) float64 {
	if jar.TotalAmount <= 0 {
		return 0
	}
	return jar.CurrentAmount / jar.TotalAmount * 100
}

// view assembles a JarView: truncated percent plus the jar's own
// transactions joined by id.
func (s *jarService) view(jar models.Jar) (*JarView, error) {
	var transactions []models.Transaction
	if err := s.db.Where("jar_id = ?", jar.ID).Order("id").Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &JarView{Percent: int(progress(jar)), Jar: jar, Transactions: transactions}, nil
}

// GetJars returns all jars with their progress views, or nil when there are
// none.
func (s *jarService) GetJars() ([]JarView, error) {
	var jars []models.Jar
	if err := s.db.Order("id").Find(&jars).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if len(jars) == 0 {
		return nil, nil
	}

	views := make([]JarView, 0, len(jars))
	for _, jar := range jars {
		view, err := s.view(jar)
		if err != nil {
			return nil, err
		}
		views = append(views, *view)
	}
	return views, nil
}

// GetJarByID returns one jar's progress view.
func (s *jarService) GetJarByID(id uint) (*JarView, error) {
	var jar models.Jar
	if err := s.db.First(&jar, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrJarNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return s.view(jar)
}

// GetHighestProgressJar returns the jar with the highest completion
// percentage, or nil when there are no jars. Ties keep the first jar in
// store order.
func (s *jarService) GetHighestProgressJar() (*JarView, error) {
	var jars []models.Jar
	if err := s.db.Order("id").Find(&jars).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if len(jars) == 0 {
		return nil, nil
	}

	highest := jars[0]
	for _, jar := range jars[1:] {
		if progress(jar) > progress(highest) {
			highest = jar
		}
	}
	return s.view(highest)
}

// UpdateDeadline changes a jar's deadline.
func (s *jarService) UpdateDeadline(jarID uint, deadline time.Time) (*models.Jar, error) {
	jar, err := s.getJar(jarID)
	if err != nil {
		return nil, err
	}

	jar.Deadline = &deadline
	if err := s.db.Save(jar).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return jar, nil
}

// UpdateAmounts applies a jar amount update. First match wins: a changed
// goal amount updates only the goal. Otherwise a changed balance is
// reconciled by synthesizing a transaction for the difference — a balance
// decrease is recorded as income flowing back to the budget, an increase as
// an outflow into the jar — and the delta is added to the running budget.
// If neither differs the call is a no-op.
func (s *jarService) UpdateAmounts(jarID uint, totalAmount, currentAmount float64) (*models.Jar, error) {
	jar, err := s.getJar(jarID)
	if err != nil {
		return nil, err
	}

	if jar.TotalAmount != totalAmount {
		jar.TotalAmount = totalAmount
		if err := s.db.Save(jar).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return jar, nil
	}

	if jar.CurrentAmount != currentAmount {
		delta := jar.CurrentAmount - currentAmount
		transaction := &models.Transaction{
			Amount:       delta,
			DateCreation: time.Now(),
			IsIncome:     delta > 0,
			JarID:        &jarID,
			DType:        models.DTypeJar,
		}

		err := s.db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(transaction).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}

			jar.CurrentAmount = currentAmount
			if err := tx.Save(jar).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			return s.budgetService.Add(tx, transaction.Amount)
		})
		if err != nil {
			return nil, err
		}
	}
	return jar, nil
}

// DeleteJar removes a jar. Its linked transactions are detached, not
// deleted, so the running budget is unaffected.
func (s *jarService) DeleteJar(jarID uint) error {
	jar, err := s.getJar(jarID)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&models.Transaction{}).
			Where("jar_id = ?", jarID).
			Update("jar_id", nil).Error
		if err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		if err := tx.Delete(jar).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
}

func (s *jarService) getJar(jarID uint) (*models.Jar, error) {
	var jar models.Jar
	if err := s.db.First(&jar, jarID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrJarNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &jar, nil
}
