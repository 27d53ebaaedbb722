package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "hearth/internal/errors"
	"hearth/internal/models"
	"hearth/internal/services"
)

// TransactionHandler handles transaction-related requests.
type TransactionHandler struct {
	transactionService services.TransactionServicer
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transactionService services.TransactionServicer) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// CreateTransactionRequest represents the request payload for creating a transaction
type CreateTransactionRequest struct {
	Amount   float64 `json:"amount"`
	IsIncome bool    `json:"isIncome"`
	JarID    *uint   `json:"jarId"`
	DType    string  `json:"dtype" binding:"required"`
}

// TransactionResponse represents a transaction in the response
type TransactionResponse struct {
	ID           uint    `json:"id"`
	Amount       float64 `json:"amount"`
	DateCreation string  `json:"datecreation"`
	IsIncome     bool    `json:"isIncome"`
	JarID        *uint   `json:"jarId"`
	DType        string  `json:"dtype"`
}

func newTransactionResponse(transaction *models.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:           transaction.ID,
		Amount:       transaction.Amount,
		DateCreation: formatDateTime(transaction.DateCreation),
		IsIncome:     transaction.IsIncome,
		JarID:        transaction.JarID,
		DType:        transaction.DType,
	}
}

// CreateTransaction handles the creation of a new transaction
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	transaction, err := h.transactionService.CreateTransaction(req.Amount, req.IsIncome, req.JarID, req.DType)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newTransactionResponse(transaction))
}

// GetTransactions lists transactions with an optional category filter or
// amount sort, within an income/outcome/all split
func (h *TransactionHandler) GetTransactions(c *gin.Context) {
	tranType := c.DefaultQuery("trantype", services.TranTypeAll)

	transactions, err := h.transactionService.GetTransactions(c.Query("filter"), tranType)
	if err != nil {
		respondWithError(c, err)
		return
	}

	response := make([]TransactionResponse, 0, len(transactions))
	for i := range transactions {
		response = append(response, newTransactionResponse(&transactions[i]))
	}
	c.JSON(http.StatusOK, response)
}

// GetLastTransaction returns the most recent transaction, or null when
// there are none
func (h *TransactionHandler) GetLastTransaction(c *gin.Context) {
	transaction, err := h.transactionService.GetLastTransaction()
	if err != nil {
		respondWithError(c, err)
		return
	}
	if transaction == nil {
		c.JSON(http.StatusOK, nil)
		return
	}

	c.JSON(http.StatusOK, newTransactionResponse(transaction))
}

// GetTransactionByID returns a single transaction
func (h *TransactionHandler) GetTransactionByID(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	transaction, err := h.transactionService.GetTransactionByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, newTransactionResponse(transaction))
}

// DeleteTransaction removes a transaction and reverses its budget and jar
// effects
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.transactionService.DeleteTransaction(id); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Transaction deleted successfully"})
}
