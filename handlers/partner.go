package handlers

import (
	"net/http"

	"github.com/fierogr/findfarewells-sub000/models"
	"github.com/fierogr/findfarewells-sub000/services/partner"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PartnerHandler serves public directory reads and admin partner CRUD.
type PartnerHandler struct {
	Svc partner.PartnerService
}

// NewPartnerHandler creates a new PartnerHandler instance.
func NewPartnerHandler(svc partner.PartnerService) *PartnerHandler {
	return &PartnerHandler{Svc: svc}
}

// GetPartnersHandler returns the full directory listing.
func (h *PartnerHandler) GetPartnersHandler(c *gin.Context) {
	logger := getLogger(c)
	partners, err := h.Svc.GetAllPartners()
	if err != nil {
		logger.Error("failed to retrieve partners", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Αδυναμία φόρτωσης καταχωρήσεων"})
		return
	}
	if partners == nil {
		partners = []models.Partner{}
	}
	c.JSON(http.StatusOK, gin.H{"partners": partners})
}

// GetPartnerByIDHandler returns details for a specific partner.
func (h *PartnerHandler) GetPartnerByIDHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")
	p, err := h.Svc.GetPartnerByID(id)
	if err != nil {
		logger.Error("partner lookup failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Αδυναμία φόρτωσης καταχώρησης"})
		return
	}
	if p == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Η καταχώρηση δεν βρέθηκε"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// CreatePartnerHandler creates a new partner (admin).
func (h *PartnerHandler) CreatePartnerHandler(c *gin.Context) {
	logger := getLogger(c)
	var p models.Partner
	if err := c.ShouldBindJSON(&p); err != nil {
		logger.Warn("invalid partner creation request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Μη έγκυρα στοιχεία καταχώρησης: " + err.Error()})
		return
	}
	created, err := h.Svc.CreatePartner(&p)
	if err != nil {
		logger.Error("failed to create partner", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Αδυναμία δημιουργίας καταχώρησης"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdatePartnerHandler patches partner fields (admin).
func (h *PartnerHandler) UpdatePartnerHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")
	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		logger.Warn("invalid partner update request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Μη έγκυρα στοιχεία ενημέρωσης: " + err.Error()})
		return
	}
	updated, err := h.Svc.UpdatePartner(id, updates)
	if err != nil {
		logger.Error("failed to update partner", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Αδυναμία ενημέρωσης καταχώρησης"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeletePartnerHandler deletes a partner (admin).
func (h *PartnerHandler) DeletePartnerHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")
	if err := h.Svc.DeletePartner(id); err != nil {
		logger.Error("failed to delete partner", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Αδυναμία διαγραφής καταχώρησης"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Η καταχώρηση διαγράφηκε"})
}

// SelectPackageHandler logs a visitor's package selection.
func (h *PartnerHandler) SelectPackageHandler(c *gin.Context) {
	logger := getLogger(c)
	var sel models.PackageSelection
	if err := c.ShouldBindJSON(&sel); err != nil {
		logger.Warn("invalid package selection payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Μη έγκυρη επιλογή πακέτου"})
		return
	}
	sel.PartnerID = c.Param("id")
	if err := h.Svc.LogPackageSelection(&sel); err != nil {
		logger.Error("failed to log package selection",
			zap.String("partnerId", sel.PartnerID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Αδυναμία καταγραφής επιλογής"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Η επιλογή καταγράφηκε"})
}
