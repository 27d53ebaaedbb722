package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "hearth/internal/errors"
	"hearth/internal/services"
)

// TypeHandler handles transaction type catalog requests.
type TypeHandler struct {
	typeService services.TypeServicer
}

// NewTypeHandler creates a new TypeHandler.
func NewTypeHandler(typeService services.TypeServicer) *TypeHandler {
	return &TypeHandler{typeService: typeService}
}

// CreateTypeRequest represents the request payload for adding a catalog entry
type CreateTypeRequest struct {
	Name   string `json:"name" binding:"required"`
	Relate string `json:"relate" binding:"required,catalog_relation"`
}

// CreateType adds an entry to the type catalog
func (h *TypeHandler) CreateType(c *gin.Context) {
	var req CreateTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	entry, err := h.typeService.CreateType(req.Name, req.Relate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// GetTypesByRelation lists catalog entries for one relation
func (h *TypeHandler) GetTypesByRelation(c *gin.Context) {
	entries, err := h.typeService.GetTypesByRelation(c.Param("relate"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}
