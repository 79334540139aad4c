package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"inboxpulse/internal/dataset"
	"inboxpulse/internal/query"
)

type EmailHandler struct {
	data   *dataset.Dataset
	logger *zap.Logger
}

func NewEmailHandler(data *dataset.Dataset, logger *zap.Logger) *EmailHandler {
	return &EmailHandler{
		data:   data,
		logger: logger,
	}
}

// GetEmails handles GET /api/emails
func (h *EmailHandler) GetEmails(c *gin.Context) {
	if !h.data.Loaded {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "email data not loaded"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"emails":  h.data.Emails,
		"summary": h.data.Summary,
	})
}

// GetStats handles GET /api/stats
func (h *EmailHandler) GetStats(c *gin.Context) {
	if !h.data.Loaded {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "summary data not available"})
		return
	}
	c.JSON(http.StatusOK, h.data.Summary)
}

// GetQuickViews handles GET /api/quick-views
func (h *EmailHandler) GetQuickViews(c *gin.Context) {
	c.JSON(http.StatusOK, h.data.QuickViews)
}

// FilterByPriority handles GET /api/emails/priority/:level
func (h *EmailHandler) FilterByPriority(c *gin.Context) {
	c.JSON(http.StatusOK, query.ByPriorityBand(h.data.Emails, c.Param("level")))
}

// FilterBySentiment handles GET /api/emails/sentiment/:sentiment
func (h *EmailHandler) FilterBySentiment(c *gin.Context) {
	c.JSON(http.StatusOK, query.BySentiment(h.data.Emails, c.Param("sentiment")))
}

// FilterByResponse handles GET /api/emails/response/:type
func (h *EmailHandler) FilterByResponse(c *gin.Context) {
	c.JSON(http.StatusOK, query.ByResponseType(h.data.Emails, c.Param("type")))
}

// FilterByTopic handles GET /api/emails/topic/:category
func (h *EmailHandler) FilterByTopic(c *gin.Context) {
	c.JSON(http.StatusOK, query.ByTopic(h.data.Emails, c.Param("category")))
}

// GetSender handles GET /api/senders/:email
func (h *EmailHandler) GetSender(c *gin.Context) {
	address := c.Param("email")
	// the dashboard percent-encodes the address in the path
	if decoded, err := url.PathUnescape(address); err == nil {
		address = decoded
	}

	stats, err := query.SenderLookup(h.data.Summary, address)
	if err != nil {
		if errors.Is(err, query.ErrSenderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "sender not found"})
			return
		}
		h.logger.Error("sender lookup failed", zap.String("address", address), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "sender lookup failed"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetActionItems handles GET /api/action-items
func (h *EmailHandler) GetActionItems(c *gin.Context) {
	c.JSON(http.StatusOK, query.ActionItemsReport(h.data.Emails))
}
