package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aryan1752/GovBridge-AI/domain"
)

// ChatHandlers handles chatbot HTTP requests
type ChatHandlers struct {
	chatSvc domain.ChatService
}

// NewChatHandlers creates new chat handlers
func NewChatHandlers(chatSvc domain.ChatService) *ChatHandlers {
	return &ChatHandlers{chatSvc: chatSvc}
}

// ChatRequest represents a single chatbot turn
type ChatRequest struct {
	Message string `json:"message" binding:"required,max=4000"`
}

// Chat forwards the message to the assistant backend and returns its reply.
func (h *ChatHandlers) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reply, err := h.chatSvc.Reply(c.Request.Context(), req.Message)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"reply": reply}})
}
