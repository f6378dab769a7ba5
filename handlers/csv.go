package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/fierogr/findfarewells-sub000/services/partner"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CSVHandler serves the admin partner import/export endpoints.
type CSVHandler struct {
	Svc partner.PartnerService
}

// NewCSVHandler creates a new CSVHandler instance.
func NewCSVHandler(svc partner.PartnerService) *CSVHandler {
	return &CSVHandler{Svc: svc}
}

// ImportHandler ingests a multipart CSV upload of partner rows and reports a
// per-batch summary. Bad rows are counted, not fatal.
func (h *CSVHandler) ImportHandler(c *gin.Context) {
	logger := getLogger(c)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Δεν επιλέχθηκε αρχείο", "detail": err.Error()})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		logger.Error("failed to open uploaded CSV", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Αδυναμία ανάγνωσης αρχείου"})
		return
	}
	defer file.Close()

	summary, err := h.Svc.ImportCSV(file)
	if err != nil {
		logger.Error("CSV import failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Μη έγκυρο αρχείο CSV"})
		return
	}

	logger.Info("CSV import finished",
		zap.Int("success", summary.Success),
		zap.Int("errors", summary.Errors),
		zap.Int("total", summary.Total))
	c.JSON(http.StatusOK, summary)
}

// ExportHandler streams the full directory as a CSV download.
func (h *CSVHandler) ExportHandler(c *gin.Context) {
	logger := getLogger(c)

	filename := fmt.Sprintf("partners-%s.csv", time.Now().Format("2006-01-02"))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := h.Svc.ExportCSV(c.Writer); err != nil {
		logger.Error("CSV export failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Αδυναμία εξαγωγής αρχείου"})
		return
	}
}
