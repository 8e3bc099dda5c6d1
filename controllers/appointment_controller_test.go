package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Mucyo-Papy-Blaise/hong-kong-backend/models"
	"github.com/Mucyo-Papy-Blaise/hong-kong-backend/repository"
	"github.com/Mucyo-Papy-Blaise/hong-kong-backend/sender"
)

func appointmentRouter(appts *MockAppointmentRepo, mail *MockSender, userID primitive.ObjectID) *gin.Engine {
	r := gin.New()
	ctrl := NewAppointmentController(appts, mail, "admin@example.com")
	grp := r.Group("/appointments", asUser(userID.Hex(), models.RoleUser))
	grp.POST("", ctrl.Create)
	grp.GET("/my-appointments", ctrl.MyAppointments)
	grp.PATCH("/:id/status", ctrl.UpdateStatus)
	return r
}

func bookingPayload() gin.H {
	return gin.H{
		"firstName":   "Ana",
		"lastName":    "Lima",
		"email":       "ana@example.com",
		"phone":       "555-0100",
		"date":        "2026-09-15",
		"time":        "10:30",
		"serviceType": "eye-exam",
	}
}

func TestCreateAppointment(t *testing.T) {
	userID := primitive.NewObjectID()

	t.Run("books pending slot and emails both parties", func(t *testing.T) {
		appts := new(MockAppointmentRepo)
		mail := new(MockSender)

		appts.On("Create", mock.Anything, mock.MatchedBy(func(a *models.Appointment) bool {
			return a.User == userID && a.Status == models.AppointmentPending
		})).Return(nil)
		mail.On("SendEmail", mock.Anything, "ana@example.com", mock.Anything, mock.Anything).Return(sender.SendResult{}, nil)
		mail.On("SendEmail", mock.Anything, "admin@example.com", mock.Anything, mock.Anything).Return(sender.SendResult{}, nil)

		r := appointmentRouter(appts, mail, userID)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, jsonRequest(t, http.MethodPost, "/appointments", bookingPayload()))

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, []string{"ana@example.com", "admin@example.com"}, mail.Sent)
		appts.AssertExpectations(t)
	})

	t.Run("duplicate slot is a client error", func(t *testing.T) {
		appts := new(MockAppointmentRepo)
		mail := new(MockSender)
		appts.On("Create", mock.Anything, mock.Anything).Return(repository.ErrDuplicateSlot)

		r := appointmentRouter(appts, mail, userID)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, jsonRequest(t, http.MethodPost, "/appointments", bookingPayload()))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		body := decodeBody(t, w)
		assert.Contains(t, body["error"], "already have an appointment")
		mail.AssertNotCalled(t, "SendEmail")
	})

	t.Run("booking stands when confirmation email fails", func(t *testing.T) {
		appts := new(MockAppointmentRepo)
		mail := new(MockSender)
		appts.On("Create", mock.Anything, mock.Anything).Return(nil)
		mail.On("SendEmail", mock.Anything, "ana@example.com", mock.Anything, mock.Anything).
			Return(sender.SendResult{}, assert.AnError)

		r := appointmentRouter(appts, mail, userID)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, jsonRequest(t, http.MethodPost, "/appointments", bookingPayload()))

		// The write is committed; only the notification failed.
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		appts.AssertExpectations(t)
	})

	t.Run("missing fields rejected", func(t *testing.T) {
		appts := new(MockAppointmentRepo)
		r := appointmentRouter(appts, new(MockSender), userID)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, jsonRequest(t, http.MethodPost, "/appointments", gin.H{"firstName": "Ana"}))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		appts.AssertNotCalled(t, "Create")
	})
}

func TestUpdateAppointmentStatus(t *testing.T) {
	userID := primitive.NewObjectID()
	apptID := primitive.NewObjectID()

	t.Run("approval notifies the booking email", func(t *testing.T) {
		appts := new(MockAppointmentRepo)
		mail := new(MockSender)
		appts.On("Update", mock.Anything, apptID, mock.Anything).Return(&models.Appointment{
			ID:     apptID,
			Email:  "ana@example.com",
			Status: models.AppointmentApproved,
		}, nil)
		mail.On("SendEmail", mock.Anything, "ana@example.com", mock.Anything, mock.Anything).Return(sender.SendResult{}, nil)

		r := appointmentRouter(appts, mail, userID)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, jsonRequest(t, http.MethodPatch, "/appointments/"+apptID.Hex()+"/status", gin.H{"status": "approved"}))

		assert.Equal(t, http.StatusOK, w.Code)
		mail.AssertExpectations(t)
	})

	t.Run("reply without status marks replied", func(t *testing.T) {
		appts := new(MockAppointmentRepo)
		mail := new(MockSender)
		appts.On("Update", mock.Anything, apptID, mock.MatchedBy(func(set map[string]interface{}) bool {
			return set["status"] == models.AppointmentReplied && set["adminReply"] == "See you Tuesday"
		})).Return(&models.Appointment{ID: apptID, Email: "ana@example.com", Status: models.AppointmentReplied, AdminReply: "See you Tuesday"}, nil)
		mail.On("SendEmail", mock.Anything, "ana@example.com", mock.Anything, mock.Anything).Return(sender.SendResult{}, nil)

		r := appointmentRouter(appts, mail, userID)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, jsonRequest(t, http.MethodPatch, "/appointments/"+apptID.Hex()+"/status", gin.H{"adminReply": "See you Tuesday"}))

		assert.Equal(t, http.StatusOK, w.Code)
		appts.AssertExpectations(t)
	})

	t.Run("empty update rejected", func(t *testing.T) {
		r := appointmentRouter(new(MockAppointmentRepo), new(MockSender), userID)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, jsonRequest(t, http.MethodPatch, "/appointments/"+apptID.Hex()+"/status", gin.H{}))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
