package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "hearth/internal/errors"
	"hearth/internal/services"
)

// BudgetHandler handles household budget requests.
type BudgetHandler struct {
	budgetService services.BudgetServicer
}

// NewBudgetHandler creates a new BudgetHandler.
func NewBudgetHandler(budgetService services.BudgetServicer) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService}
}

// SetBudgetRequest represents the request payload for overwriting the budget
type SetBudgetRequest struct {
	Amount float64 `json:"amount"`
}

// GetBudget returns the current budget amount
func (h *BudgetHandler) GetBudget(c *gin.Context) {
	amount, err := h.budgetService.GetBudget()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"amount": amount})
}

// GetStatistics returns income, outcome and net totals for the current
// calendar month
func (h *BudgetHandler) GetStatistics(c *gin.Context) {
	stats, err := h.budgetService.GetStatistics()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// SetBudget overwrites the budget amount
func (h *BudgetHandler) SetBudget(c *gin.Context) {
	var req SetBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	amount, err := h.budgetService.SetBudget(req.Amount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"amount": amount})
}
