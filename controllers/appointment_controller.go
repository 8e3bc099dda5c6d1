package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Mucyo-Papy-Blaise/hong-kong-backend/logger"
	"github.com/Mucyo-Papy-Blaise/hong-kong-backend/models"
	"github.com/Mucyo-Papy-Blaise/hong-kong-backend/repository"
	"github.com/Mucyo-Papy-Blaise/hong-kong-backend/sender"
	"github.com/Mucyo-Papy-Blaise/hong-kong-backend/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AppointmentController struct {
	Appointments repository.AppointmentRepository
	Mail         sender.EmailSender
	AdminEmail   string
}

func NewAppointmentController(appointments repository.AppointmentRepository, mail sender.EmailSender, adminEmail string) *AppointmentController {
	return &AppointmentController{Appointments: appointments, Mail: mail, AdminEmail: adminEmail}
}

// Create books a slot. The compound unique index decides collisions;
// there is no advisory pre-check. The booking stands even if the
// confirmation email cannot be sent.
func (apc *AppointmentController) Create(c *gin.Context) {
	userID, ok := principalID(c)
	if !ok {
		return
	}

	var req models.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "All appointment fields are required"})
		return
	}

	appt := &models.Appointment{
		User:        userID,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Phone:       req.Phone,
		Date:        req.Date,
		Time:        req.Time,
		ServiceType: req.ServiceType,
		Status:      models.AppointmentPending,
	}

	err := apc.Appointments.Create(c.Request.Context(), appt)
	if errors.Is(err, repository.ErrDuplicateSlot) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "You already have an appointment for this service at this date and time"})
		return
	}
	if err != nil {
		logger.Log.Error("appointment create failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to book appointment"})
		return
	}

	body := sender.AppointmentConfirmationTemplate(appt.FirstName, appt.ServiceType, appt.Date, appt.Time)
	if _, err := apc.Mail.SendEmail(c.Request.Context(), appt.Email, "Appointment request received", body); err != nil {
		logger.Log.Error("confirmation email failed", zap.String("appointment", appt.ID.Hex()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Appointment was booked but the confirmation email could not be sent"})
		return
	}

	if apc.AdminEmail != "" {
		body := sender.NewAppointmentAdminTemplate(appt.FirstName, appt.LastName, appt.ServiceType, appt.Date, appt.Time, appt.Email, appt.Phone)
		if _, err := apc.Mail.SendEmail(c.Request.Context(), apc.AdminEmail, "New appointment request", body); err != nil {
			logger.Log.Warn("admin notification failed", zap.String("appointment", appt.ID.Hex()), zap.Error(err))
		}
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "appointment": appt})
}

// MyAppointments returns the logged-in user's appointments, newest first.
func (apc *AppointmentController) MyAppointments(c *gin.Context) {
	userID, ok := principalID(c)
	if !ok {
		return
	}

	appts, err := apc.Appointments.UserList(c.Request.Context(), userID, c.Query("search"))
	if err != nil {
		logger.Log.Error("appointment listing failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch appointments"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "appointments": appts})
}

// AdminList returns one page of the appointment report. Admin only.
func (apc *AppointmentController) AdminList(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	pagination := utils.CalculatePagination(page, limit, 0)

	rows, total, err := apc.Appointments.AdminList(c.Request.Context(), pagination.Page, pagination.Limit, c.Query("search"))
	if err != nil {
		logger.Log.Error("appointment report failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch appointments"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"appointments": rows,
		"pagination":   utils.CalculatePagination(pagination.Page, pagination.Limit, total),
	})
}

// Get returns one appointment. Admin only.
func (apc *AppointmentController) Get(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid appointment id"})
		return
	}

	appt, err := apc.Appointments.Get(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Appointment not found"})
		return
	}
	if err != nil {
		logger.Log.Error("appointment lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch appointment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "appointment": appt})
}

// UpdateStatus approves or rejects a slot and/or records an admin reply,
// then notifies the booking email. Admin only.
func (apc *AppointmentController) UpdateStatus(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid appointment id"})
		return
	}

	var req models.UpdateAppointmentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil || (req.Status == "" && req.AdminReply == "") {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Status or reply is required"})
		return
	}

	set := bson.M{}
	if req.Status != "" {
		switch req.Status {
		case models.AppointmentPending, models.AppointmentApproved, models.AppointmentReplied, models.AppointmentRejected:
		default:
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid appointment status"})
			return
		}
		set["status"] = req.Status
	}
	if req.AdminReply != "" {
		set["adminReply"] = req.AdminReply
		if req.Status == "" {
			set["status"] = models.AppointmentReplied
		}
	}

	appt, err := apc.Appointments.Update(c.Request.Context(), id, set)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Appointment not found"})
		return
	}
	if err != nil {
		logger.Log.Error("appointment update failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update appointment"})
		return
	}

	var body, subject string
	if req.AdminReply != "" && req.Status == "" {
		subject = "Reply to your appointment request"
		body = sender.AppointmentReplyTemplate(appt.ServiceType, appt.Date, appt.Time, appt.AdminReply)
	} else {
		subject = "Your appointment status has changed"
		body = sender.AppointmentStatusTemplate(appt.ServiceType, appt.Date, appt.Time, appt.Status, appt.AdminReply)
	}
	if _, err := apc.Mail.SendEmail(c.Request.Context(), appt.Email, subject, body); err != nil {
		logger.Log.Error("status email failed", zap.String("appointment", appt.ID.Hex()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Appointment was updated but the notification email could not be sent"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "appointment": appt})
}

// Delete removes an appointment. Admin only.
func (apc *AppointmentController) Delete(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid appointment id"})
		return
	}

	err = apc.Appointments.Delete(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Appointment not found"})
		return
	}
	if err != nil {
		logger.Log.Error("appointment delete failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to delete appointment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Appointment deleted"})
}
