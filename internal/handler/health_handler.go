package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"inboxpulse/internal/dataset"
)

type HealthHandler struct {
	data             *dataset.Dataset
	openAIConfigured bool
}

func NewHealthHandler(data *dataset.Dataset, openAIConfigured bool) *HealthHandler {
	return &HealthHandler{
		data:             data,
		openAIConfigured: openAIConfigured,
	}
}

// Health handles GET /api/health
func (h *HealthHandler) Health(c *gin.Context) {
	openaiState := "not configured"
	if h.openAIConfigured {
		openaiState = "configured"
	}

	enhanced := "no"
	if h.data.Enhanced {
		enhanced = "yes"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":           "ok",
		"openai":           openaiState,
		"dataLoaded":       h.data.Loaded,
		"emailCount":       len(h.data.Emails),
		"enhancedAnalysis": enhanced,
	})
}
