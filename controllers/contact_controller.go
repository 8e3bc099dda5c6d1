package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Mucyo-Papy-Blaise/hong-kong-backend/logger"
	"github.com/Mucyo-Papy-Blaise/hong-kong-backend/models"
	"github.com/Mucyo-Papy-Blaise/hong-kong-backend/repository"
	"github.com/Mucyo-Papy-Blaise/hong-kong-backend/sender"
	"github.com/Mucyo-Papy-Blaise/hong-kong-backend/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ContactController struct {
	Contacts repository.ContactRepository
	Mail     sender.EmailSender
}

func NewContactController(contacts repository.ContactRepository, mail sender.EmailSender) *ContactController {
	return &ContactController{Contacts: contacts, Mail: mail}
}

// Create stores an inbound contact message and acknowledges it by email.
// The message stands even if the acknowledgement cannot be sent.
func (cnc *ContactController) Create(c *gin.Context) {
	var req models.CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "First name, last name, email and message are required"})
		return
	}

	contact := &models.Contact{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Message:   req.Message,
	}
	if err := cnc.Contacts.Create(c.Request.Context(), contact); err != nil {
		logger.Log.Error("contact create failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to send message"})
		return
	}

	body := sender.ContactReceivedTemplate(contact.FirstName, contact.Message)
	if _, err := cnc.Mail.SendEmail(c.Request.Context(), contact.Email, "We received your message", body); err != nil {
		logger.Log.Error("contact acknowledgement failed", zap.String("contact", contact.ID.Hex()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Message was saved but the confirmation email could not be sent"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "contact": contact})
}

// List returns one searchable page of contact threads. Admin only.
func (cnc *ContactController) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	pagination := utils.CalculatePagination(page, limit, 0)

	contacts, total, err := cnc.Contacts.List(c.Request.Context(), pagination.Page, pagination.Limit, c.Query("search"))
	if err != nil {
		logger.Log.Error("contact listing failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch messages"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"contacts":   contacts,
		"pagination": utils.CalculatePagination(pagination.Page, pagination.Limit, total),
	})
}

// Get returns one contact thread. Admin only.
func (cnc *ContactController) Get(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("contactId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid message id"})
		return
	}

	contact, err := cnc.Contacts.Get(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Message not found"})
		return
	}
	if err != nil {
		logger.Log.Error("contact lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch message"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "contact": contact})
}

// Reply appends an admin reply to a thread and forwards it to the
// sender's email. Admin only.
func (cnc *ContactController) Reply(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("contactId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid message id"})
		return
	}

	var req models.ReplyContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Reply message is required"})
		return
	}

	contact, err := cnc.Contacts.AddReply(c.Request.Context(), id, models.Reply{
		Message: req.ReplyMessage,
		From:    models.ReplyFromAdmin,
		Date:    time.Now().UTC(),
	})
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Message not found"})
		return
	}
	if err != nil {
		logger.Log.Error("contact reply failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to send reply"})
		return
	}

	body := sender.AdminReplyTemplate(contact.FirstName, req.ReplyMessage)
	if _, err := cnc.Mail.SendEmail(c.Request.Context(), contact.Email, "Reply to your message", body); err != nil {
		logger.Log.Error("reply email failed", zap.String("contact", contact.ID.Hex()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Reply was saved but the email could not be sent"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "contact": contact})
}

// MarkRead marks a thread as read. Admin only.
func (cnc *ContactController) MarkRead(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("contactId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid message id"})
		return
	}

	contact, err := cnc.Contacts.MarkRead(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Message not found"})
		return
	}
	if err != nil {
		logger.Log.Error("mark read failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update message"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "contact": contact})
}

// UnreadCount returns the number of unread threads. Admin only.
func (cnc *ContactController) UnreadCount(c *gin.Context) {
	count, err := cnc.Contacts.UnreadCount(c.Request.Context())
	if err != nil {
		logger.Log.Error("unread count failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to count messages"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "count": count})
}

// Delete removes a contact thread. Admin only.
func (cnc *ContactController) Delete(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("contactId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid message id"})
		return
	}

	err = cnc.Contacts.Delete(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Message not found"})
		return
	}
	if err != nil {
		logger.Log.Error("contact delete failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to delete message"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Message deleted"})
}
