package partnerRepo

import (
	"github.com/fierogr/findfarewells-sub000/models"
)

// PartnerRepository defines methods for partner (directory entry) data access.
type PartnerRepository interface {
	// GetByID retrieves a partner by its unique ID.
	GetByID(id string) (*models.Partner, error)
	// GetAll retrieves all partners.
	GetAll() ([]models.Partner, error)
	// Create inserts a new partner record and assigns its ID.
	Create(partner *models.Partner) error
	// Update modifies an existing partner record.
	Update(partner *models.Partner) error
	// UpdateFields patches selected fields of a partner document.
	UpdateFields(id string, fields map[string]interface{}) error
	// Delete removes a partner record by its ID.
	Delete(id string) error
}
