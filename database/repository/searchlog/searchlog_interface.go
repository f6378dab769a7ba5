package searchlogRepo

import (
	"github.com/fierogr/findfarewells-sub000/models"
)

// SearchLogRepository records user searches and package selections for admin
// analytics. Both logs are append-only from the public surface; search
// requests may be deleted by an admin.
type SearchLogRepository interface {
	// LogSearch records a user search.
	LogSearch(req *models.SearchRequest) error
	// GetSearches retrieves all logged searches, newest first.
	GetSearches() ([]models.SearchRequest, error)
	// DeleteSearch removes a logged search by its ID.
	DeleteSearch(id string) error
	// LogPackageSelection records that a visitor selected a package.
	LogPackageSelection(sel *models.PackageSelection) error
}
