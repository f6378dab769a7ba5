package registrationRepo

import (
	"github.com/fierogr/findfarewells-sub000/models"
)

// RegistrationRepository defines methods for registration-request data access.
type RegistrationRepository interface {
	// GetByID retrieves a registration request by its UUID.
	GetByID(id string) (*models.RegistrationRequest, error)
	// GetAll retrieves all registration requests, newest first.
	GetAll() ([]models.RegistrationRequest, error)
	// Create inserts a new registration request.
	Create(req *models.RegistrationRequest) error
	// UpdateStatus transitions a request to the given status.
	UpdateStatus(id, status string) error
}
