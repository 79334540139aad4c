package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"inboxpulse/internal/service/chat"
)

type ChatHandler struct {
	chatService  *chat.Service
	systemPrompt string
	logger       *zap.Logger
}

// NewChatHandler wires the chat proxy. The system prompt is rendered once at
// startup; the dataset is immutable so rebuilding it per request would only
// produce the same string.
func NewChatHandler(chatService *chat.Service, systemPrompt string, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		chatService:  chatService,
		systemPrompt: systemPrompt,
		logger:       logger,
	}
}

// Chat handles POST /api/chat
func (h *ChatHandler) Chat(c *gin.Context) {
	var req struct {
		Message string `json:"message"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}

	answer, err := h.chatService.Ask(c.Request.Context(), h.systemPrompt, req.Message)
	if err != nil {
		if errors.Is(err, chat.ErrNotConfigured) {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "OpenAI API key not configured. Set OPENAI_API_KEY to enable chat.",
			})
			return
		}
		// upstream details stay server-side
		h.logger.Error("chat completion failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to process chat request. Please try again.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"response": answer})
}
