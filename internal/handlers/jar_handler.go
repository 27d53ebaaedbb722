package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "hearth/internal/errors"
	"hearth/internal/services"
)

// JarHandler handles jar-related requests.
type JarHandler struct {
	jarService services.JarServicer
}

// NewJarHandler creates a new JarHandler.
func NewJarHandler(jarService services.JarServicer) *JarHandler {
	return &JarHandler{jarService: jarService}
}

// CreateJarRequest represents the request payload for creating a jar
type CreateJarRequest struct {
	Target      string  `json:"target" binding:"required"`
	TotalAmount float64 `json:"totalamount"`
	Deadline    string  `json:"deadline"`
}

// UpdateJarDeadlineRequest represents the request payload for moving a jar's deadline
type UpdateJarDeadlineRequest struct {
	Deadline string `json:"deadline" binding:"required"`
}

// UpdateJarAmountsRequest represents the request payload for a jar amount update
type UpdateJarAmountsRequest struct {
	TotalAmount   float64 `json:"totalamount"`
	CurrentAmount float64 `json:"currentamount"`
}

// JarData represents a jar's own fields in the response
type JarData struct {
	ID            uint    `json:"id"`
	Target        string  `json:"target"`
	TotalAmount   float64 `json:"totalamount"`
	CurrentAmount float64 `json:"currentamount"`
	Deadline      *string `json:"deadline"`
	Transactions  []uint  `json:"has_transactions"`
}

// JarViewResponse represents a jar with progress and joined transactions
type JarViewResponse struct {
	Percent      int                   `json:"percent"`
	Data         JarData               `json:"data"`
	Transactions []TransactionResponse `json:"transactions"`
}

func newJarViewResponse(view *services.JarView) JarViewResponse {
	ids := make([]uint, 0, len(view.Transactions))
	transactions := make([]TransactionResponse, 0, len(view.Transactions))
	for i := range view.Transactions {
		ids = append(ids, view.Transactions[i].ID)
		transactions = append(transactions, newTransactionResponse(&view.Transactions[i]))
	}

	return JarViewResponse{
		Percent: view.Percent,
		Data: JarData{
			ID:            view.Jar.ID,
			Target:        view.Jar.Target,
			TotalAmount:   view.Jar.TotalAmount,
			CurrentAmount: view.Jar.CurrentAmount,
			Deadline:      formatDatePtr(view.Jar.Deadline),
			Transactions:  ids,
		},
		Transactions: transactions,
	}
}

// CreateJar handles the creation of a new jar
func (h *JarHandler) CreateJar(c *gin.Context) {
	var req CreateJarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	deadline, ok := parseOptionalDate(c, req.Deadline)
	if !ok {
		return
	}

	jar, err := h.jarService.CreateJar(req.Target, req.TotalAmount, deadline)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":            jar.ID,
		"target":        jar.Target,
		"totalamount":   jar.TotalAmount,
		"currentamount": jar.CurrentAmount,
		"deadline":      formatDatePtr(jar.Deadline),
	})
}

// GetJars lists all jars with progress, or null when there are none
func (h *JarHandler) GetJars(c *gin.Context) {
	views, err := h.jarService.GetJars()
	if err != nil {
		respondWithError(c, err)
		return
	}
	if views == nil {
		c.JSON(http.StatusOK, nil)
		return
	}

	response := make([]JarViewResponse, 0, len(views))
	for i := range views {
		response = append(response, newJarViewResponse(&views[i]))
	}
	c.JSON(http.StatusOK, response)
}

// GetHighestProgressJar returns the jar closest to its goal, or null when
// there are no jars
func (h *JarHandler) GetHighestProgressJar(c *gin.Context) {
	view, err := h.jarService.GetHighestProgressJar()
	if err != nil {
		respondWithError(c, err)
		return
	}
	if view == nil {
		c.JSON(http.StatusOK, nil)
		return
	}

	c.JSON(http.StatusOK, newJarViewResponse(view))
}

// GetJarByID returns one jar with progress
func (h *JarHandler) GetJarByID(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	view, err := h.jarService.GetJarByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, newJarViewResponse(view))
}

// UpdateJarDeadline moves a jar's deadline
func (h *JarHandler) UpdateJarDeadline(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateJarDeadlineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	deadline, err := parseDate(req.Deadline)
	if err != nil {
		respondWithError(c, err)
		return
	}

	jar, err := h.jarService.UpdateDeadline(id, deadline)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":            jar.ID,
		"target":        jar.Target,
		"totalamount":   jar.TotalAmount,
		"currentamount": jar.CurrentAmount,
		"deadline":      formatDatePtr(jar.Deadline),
	})
}

// UpdateJarAmounts applies a goal or balance update to a jar
func (h *JarHandler) UpdateJarAmounts(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateJarAmountsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	jar, err := h.jarService.UpdateAmounts(id, req.TotalAmount, req.CurrentAmount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":            jar.ID,
		"target":        jar.Target,
		"totalamount":   jar.TotalAmount,
		"currentamount": jar.CurrentAmount,
		"deadline":      formatDatePtr(jar.Deadline),
	})
}

// DeleteJar removes a jar, detaching its transactions
func (h *JarHandler) DeleteJar(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.jarService.DeleteJar(id); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Jar deleted successfully"})
}

// parseOptionalDate parses an optional date string, responding with an
// error itself when the value is present but malformed.
func parseOptionalDate(c *gin.Context, value string) (*time.Time, bool) {
	if value == "" {
		return nil, true
	}
	parsed, err := parseDate(value)
	if err != nil {
		respondWithError(c, err)
		return nil, false
	}
	return &parsed, true
}
