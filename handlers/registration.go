package handlers

import (
	"net/http"

	"github.com/fierogr/findfarewells-sub000/models"
	"github.com/fierogr/findfarewells-sub000/services/registration"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RegistrationHandler serves the public registration form and the admin
// review surface.
type RegistrationHandler struct {
	Svc registration.RegistrationService
}

// NewRegistrationHandler creates a new RegistrationHandler instance.
func NewRegistrationHandler(svc registration.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{Svc: svc}
}

// SubmitHandler records a new registration request from a prospective partner.
func (h *RegistrationHandler) SubmitHandler(c *gin.Context) {
	logger := getLogger(c)
	var sub models.RegistrationSubmission
	if err := c.ShouldBindJSON(&sub); err != nil {
		logger.Warn("invalid registration payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Συμπληρώστε σωστά τα υποχρεωτικά πεδία"})
		return
	}
	req, err := h.Svc.Submit(&sub)
	if err != nil {
		logger.Error("failed to record registration request", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Αδυναμία υποβολής αίτησης. Δοκιμάστε ξανά."})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Η αίτησή σας καταχωρήθηκε",
		"request": req,
	})
}

// ListHandler returns all registration requests (admin).
func (h *RegistrationHandler) ListHandler(c *gin.Context) {
	logger := getLogger(c)
	requests, err := h.Svc.GetAll()
	if err != nil {
		logger.Error("failed to list registration requests", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Αδυναμία φόρτωσης αιτήσεων"})
		return
	}
	if requests == nil {
		requests = []models.RegistrationRequest{}
	}
	c.JSON(http.StatusOK, gin.H{"requests": requests})
}

// ApproveHandler converts a pending request into a partner (admin).
func (h *RegistrationHandler) ApproveHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")
	p, err := h.Svc.Approve(id)
	if err != nil {
		logger.Error("failed to approve registration request",
			zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Αδυναμία έγκρισης αίτησης"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Η αίτηση εγκρίθηκε",
		"partner": p,
	})
}

// RejectHandler marks a pending request rejected (admin).
func (h *RegistrationHandler) RejectHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")
	if err := h.Svc.Reject(id); err != nil {
		logger.Error("failed to reject registration request",
			zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Αδυναμία απόρριψης αίτησης"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Η αίτηση απορρίφθηκε"})
}
