package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/aryan1752/GovBridge-AI/domain"
)

// ContactHandlers handles contact-inbox HTTP requests
type ContactHandlers struct {
	contactSvc domain.ContactService
	authSvc    domain.AuthService
}

// NewContactHandlers creates new contact handlers
func NewContactHandlers(contactSvc domain.ContactService, authSvc domain.AuthService) *ContactHandlers {
	return &ContactHandlers{contactSvc: contactSvc, authSvc: authSvc}
}

// SubmitRequest represents a contact submission
type SubmitRequest struct {
	Subject string `json:"subject" binding:"required,max=200"`
	Message string `json:"message" binding:"required,max=2000"`
}

// StatusRequest represents a status change
type StatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ReplyRequest represents an admin reply
type ReplyRequest struct {
	Reply string `json:"reply" binding:"required,max=2000"`
}

// Submit stores a new contact message from the authenticated user.
func (h *ContactHandlers) Submit(c *gin.Context) {
	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.authSvc.GetProfile(c.Request.Context(), c.GetUint("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	msg, err := h.contactSvc.Submit(c.Request.Context(), user, req.Subject, req.Message)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": gin.H{"message": msg}})
}

// MyMessages lists the authenticated user's own messages.
func (h *ContactHandlers) MyMessages(c *gin.Context) {
	messages, err := h.contactSvc.MyMessages(c.Request.Context(), c.GetUint("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"messages": messages}})
}

// All lists messages across users with optional status filter and paging.
func (h *ContactHandlers) All(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	filter := domain.ContactFilter{
		Status: c.Query("status"),
		Page:   page,
		Limit:  limit,
	}
	if filter.Status != "" && !domain.ValidContactStatus(filter.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown status filter"})
		return
	}

	messages, total, err := h.contactSvc.All(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"messages": messages,
			"total":    total,
			"page":     filter.Page,
			"limit":    filter.Limit,
		},
	})
}

// Stats returns per-status message counts.
func (h *ContactHandlers) Stats(c *gin.Context) {
	stats, err := h.contactSvc.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"stats": stats}})
}

// UpdateStatus moves a message to a new lifecycle state.
func (h *ContactHandlers) UpdateStatus(c *gin.Context) {
	id, err := messageID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid message id"})
		return
	}

	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.contactSvc.UpdateStatus(c.Request.Context(), id, req.Status); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"message": "Status updated"}})
}

// Reply records an admin reply and emails the submitter.
func (h *ContactHandlers) Reply(c *gin.Context) {
	id, err := messageID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid message id"})
		return
	}

	var req ReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.contactSvc.Reply(c.Request.Context(), id, req.Reply, c.GetUint("user_id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"message": "Reply sent"}})
}

// Delete removes a message.
func (h *ContactHandlers) Delete(c *gin.Context) {
	id, err := messageID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid message id"})
		return
	}

	if err := h.contactSvc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"message": "Message deleted"}})
}

func messageID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	return uint(id), err
}
