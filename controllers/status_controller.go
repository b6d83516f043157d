package controllers

import (
	"context"
	"errors"
	"net/http"

	"debatecoach/internal/logger"
	"debatecoach/models"
	"debatecoach/services"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type StatusRecorder interface {
	Record(ctx context.Context, clientName string) (*models.StatusCheck, error)
	List(ctx context.Context) ([]models.StatusCheck, error)
}

type StatusController struct {
	status StatusRecorder
	log    zerolog.Logger
}

func NewStatusController(log zerolog.Logger, status StatusRecorder) *StatusController {
	return &StatusController{status: status, log: log}
}

// Root handles GET /api/
func (sc *StatusController) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Hello World"})
}

// CreateStatusCheck handles POST /api/status
func (sc *StatusController) CreateStatusCheck(c *gin.Context) {
	var req models.StatusCheckCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}
	check, err := sc.status.Record(c.Request.Context(), req.ClientName)
	if errors.Is(err, services.ErrEmptyClientName) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "client_name must not be empty"})
		return
	}
	if err != nil {
		logger.From(c.Request.Context(), sc.log).Error().Err(err).Msg("Error saving status check")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save status check"})
		return
	}
	c.JSON(http.StatusOK, check)
}

// GetStatusChecks handles GET /api/status
func (sc *StatusController) GetStatusChecks(c *gin.Context) {
	checks, err := sc.status.List(c.Request.Context())
	if err != nil {
		logger.From(c.Request.Context(), sc.log).Error().Err(err).Msg("Error listing status checks")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch status checks"})
		return
	}
	c.JSON(http.StatusOK, checks)
}
