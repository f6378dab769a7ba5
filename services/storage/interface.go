package storage

import (
	"context"

	"github.com/cloudinary/cloudinary-go/v2"
)

// StorageService uploads and serves partner media.
type StorageService interface {
	// UploadFile uploads a local file into the given folder and returns its
	// permanent public identifier.
	UploadFile(ctx context.Context, localFilePath, destFolder string) (string, error)
	// DeleteFile removes a stored file by its public ID.
	DeleteFile(ctx context.Context, publicID string) error
	// GetDownloadURL constructs the public URL for a stored image.
	GetDownloadURL(publicID string) (string, error)
}

// StorageServiceImpl is the Cloudinary-backed implementation.
type StorageServiceImpl struct {
	cld       *cloudinary.Cloudinary
	cloudName string
}
