// File: menagio/handlers/quote.go
package handlers

import (
	"net/http"
	"time"

	"menagio/models"

	quoteRepo "menagio/database/repository/quote"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// QuoteHandler exposes the public business-quote request endpoint.
type QuoteHandler struct {
	Repo   quoteRepo.QuoteRepository
	Logger *zap.Logger
}

// NewQuoteHandler wires the quote repository into HTTP handlers.
func NewQuoteHandler(repo quoteRepo.QuoteRepository, logger *zap.Logger) *QuoteHandler {
	return &QuoteHandler{Repo: repo, Logger: logger}
}

// CreateQuoteRequest accepts a quote request from the business contact form.
func (h *QuoteHandler) CreateQuoteRequest(c *gin.Context) {
	var input struct {
		CompanyName string `json:"companyName" binding:"required"`
		ContactName string `json:"contactName" binding:"required"`
		Email       string `json:"email" binding:"required,email"`
		Phone       string `json:"phone"`
		Address     string `json:"address"`
		SurfaceM2   int    `json:"surfaceM2"`
		Frequency   string `json:"frequency"`
		Message     string `json:"message"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	now := time.Now()
	quote := &models.QuoteRequest{
		ID:          uuid.New().String(),
		CompanyName: input.CompanyName,
		ContactName: input.ContactName,
		Email:       input.Email,
		Phone:       input.Phone,
		Address:     input.Address,
		SurfaceM2:   input.SurfaceM2,
		Frequency:   input.Frequency,
		Message:     input.Message,
		Status:      models.QuoteStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := h.Repo.CreateQuote(quote); err != nil {
		h.Logger.Error("failed to create quote request", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to submit quote request"})
		return
	}
	c.JSON(http.StatusCreated, quote)
}
