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

type DebateGenerator interface {
	Generate(ctx context.Context, topic string) (*models.DebateResult, error)
}

type TextGenerator interface {
	Generate(ctx context.Context, req models.TextRequest) (*models.TextResponse, error)
}

// DebateController serves debate generation and the text passthrough
type DebateController struct {
	debates DebateGenerator
	text    TextGenerator
	log     zerolog.Logger
}

func NewDebateController(log zerolog.Logger, debates DebateGenerator, text TextGenerator) *DebateController {
	return &DebateController{debates: debates, text: text, log: log}
}

// GenerateDebate handles POST /api/generate-debate
func (dc *DebateController) GenerateDebate(c *gin.Context) {
	var req models.DebateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	result, err := dc.debates.Generate(c.Request.Context(), req.Topic)
	switch {
	case errors.Is(err, services.ErrEmptyTopic):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Topic must not be empty"})
		return
	case err != nil:
		logger.From(c.Request.Context(), dc.log).Error().Err(err).Msg("Error generating debate arguments")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate debate arguments"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// GenerateText handles POST /api/generate-text
func (dc *DebateController) GenerateText(c *gin.Context) {
	var req models.TextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	resp, err := dc.text.Generate(c.Request.Context(), req)
	switch {
	case errors.Is(err, services.ErrProviderUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Text generation provider is not available. Set GEMINI_API_KEY to enable it."})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate content: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}
