package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/fierogr/findfarewells-sub000/services/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StorageHandler handles partner media uploads.
type StorageHandler struct {
	StorageSvc storage.StorageService
}

// NewStorageHandler creates a new StorageHandler instance.
func NewStorageHandler(svc storage.StorageService) *StorageHandler {
	return &StorageHandler{StorageSvc: svc}
}

// allowedBuckets defines permitted upload folders.
var allowedBuckets = map[string]bool{
	"partners": true,
	"packages": true,
}

// UploadFileHandler uploads a partner image and returns its public URL.
func (h *StorageHandler) UploadFileHandler(c *gin.Context) {
	logger := getLogger(c)

	bucket := c.Param("bucket")
	if !allowedBuckets[bucket] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid bucket; allowed values are 'partners' and 'packages'"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file not provided", "detail": err.Error()})
		return
	}

	tempDir := os.TempDir()
	tempFilePath := filepath.Join(tempDir, filepath.Base(fileHeader.Filename))
	if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
		logger.Error("failed to persist upload", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store uploaded file"})
		return
	}
	defer os.Remove(tempFilePath)

	publicID, err := h.StorageSvc.UploadFile(c.Request.Context(), tempFilePath, bucket)
	if err != nil {
		logger.Error("upload to storage failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload file"})
		return
	}

	url, err := h.StorageSvc.GetDownloadURL(publicID)
	if err != nil {
		logger.Error("failed to build download URL", zap.String("publicID", publicID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve file URL"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"publicId": publicID, "url": url})
}
