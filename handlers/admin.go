package handlers

import (
	"net/http"

	"github.com/fierogr/findfarewells-sub000/database/repository"
	"github.com/fierogr/findfarewells-sub000/models"
	"github.com/fierogr/findfarewells-sub000/services/admin"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler serves admin login, settings and search-request analytics.
type AdminHandler struct {
	Svc     admin.AdminService
	LogRepo repository.SearchLogRepository
}

// NewAdminHandler creates a new AdminHandler instance.
func NewAdminHandler(svc admin.AdminService, logRepo repository.SearchLogRepository) *AdminHandler {
	return &AdminHandler{Svc: svc, LogRepo: logRepo}
}

// LoginHandler authenticates the configured admin account.
func (h *AdminHandler) LoginHandler(c *gin.Context) {
	logger := getLogger(c)
	var creds models.AdminCredentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Συμπληρώστε email και κωδικό"})
		return
	}
	resp, err := h.Svc.Authenticate(creds)
	if err != nil {
		logger.Warn("admin login rejected", zap.String("email", creds.Email))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Λανθασμένα στοιχεία σύνδεσης"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetAdminEmailHandler returns the notification mailbox setting.
func (h *AdminHandler) GetAdminEmailHandler(c *gin.Context) {
	logger := getLogger(c)
	email, err := h.Svc.GetAdminEmail()
	if err != nil {
		logger.Error("failed to read admin email setting", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Αδυναμία ανάγνωσης ρύθμισης"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"adminEmail": email})
}

// SetAdminEmailHandler stores the notification mailbox setting.
func (h *AdminHandler) SetAdminEmailHandler(c *gin.Context) {
	logger := getLogger(c)
	var body struct {
		AdminEmail string `json:"adminEmail" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Μη έγκυρη διεύθυνση email"})
		return
	}
	if err := h.Svc.SetAdminEmail(body.AdminEmail); err != nil {
		logger.Error("failed to store admin email setting", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Αδυναμία αποθήκευσης ρύθμισης"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"adminEmail": body.AdminEmail})
}

// GetSearchRequestsHandler lists logged user searches (analytics).
func (h *AdminHandler) GetSearchRequestsHandler(c *gin.Context) {
	logger := getLogger(c)
	requests, err := h.LogRepo.GetSearches()
	if err != nil {
		logger.Error("failed to list search requests", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Αδυναμία φόρτωσης αναζητήσεων"})
		return
	}
	if requests == nil {
		requests = []models.SearchRequest{}
	}
	c.JSON(http.StatusOK, gin.H{"searchRequests": requests})
}

// DeleteSearchRequestHandler removes a logged search.
func (h *AdminHandler) DeleteSearchRequestHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")
	if err := h.LogRepo.DeleteSearch(id); err != nil {
		logger.Error("failed to delete search request", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Αδυναμία διαγραφής αναζήτησης"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Η αναζήτηση διαγράφηκε"})
}
