package registration

import (
	"github.com/fierogr/findfarewells-sub000/database/repository"
	"github.com/fierogr/findfarewells-sub000/models"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// RegistrationService manages the partner registration workflow: public
// submission, admin review, and conversion of approved requests into
// directory entries.
type RegistrationService interface {
	// Submit records a new registration request and queues the admin
	// notification email. The email is fire-and-forget: a queueing failure
	// is logged but does not block the registration.
	Submit(sub *models.RegistrationSubmission) (*models.RegistrationRequest, error)
	// GetAll lists registration requests, newest first.
	GetAll() ([]models.RegistrationRequest, error)
	// Approve converts a pending request into a partner and marks it approved.
	Approve(id string) (*models.Partner, error)
	// Reject marks a pending request rejected. No partner is created.
	Reject(id string) error
}

// DefaultRegistrationService is the production implementation.
type DefaultRegistrationService struct {
	Repo        repository.RegistrationRepository
	PartnerRepo repository.PartnerRepository
	QueueClient *asynq.Client
	Logger      *zap.Logger
}
