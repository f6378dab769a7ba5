package registration

import (
	"fmt"
	"strings"
	"time"

	"github.com/fierogr/findfarewells-sub000/models"
	"github.com/fierogr/findfarewells-sub000/services/tasks"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Submit records a registration request and queues the notification email.
func (s *DefaultRegistrationService) Submit(sub *models.RegistrationSubmission) (*models.RegistrationRequest, error) {
	if len(strings.TrimSpace(sub.BusinessName)) < 2 {
		return nil, fmt.Errorf("business name must be at least 2 characters")
	}
	if strings.TrimSpace(sub.OwnerName) == "" {
		return nil, fmt.Errorf("owner name is required")
	}

	regions := sub.Regions
	if regions == nil {
		regions = []string{}
	}

	req := &models.RegistrationRequest{
		ID:           uuid.NewString(),
		BusinessName: strings.TrimSpace(sub.BusinessName),
		OwnerName:    strings.TrimSpace(sub.OwnerName),
		Email:        sub.Email,
		Phone:        sub.Phone,
		Address:      sub.Address,
		City:         sub.City,
		State:        sub.State,
		Zip:          sub.Zip,
		Website:      sub.Website,
		ServicesText: sub.ServicesText,
		Regions:      regions,
		Status:       models.RegistrationPending,
		CreatedAt:    time.Now(),
	}

	if err := s.Repo.Create(req); err != nil {
		return nil, err
	}

	s.enqueueNotification(req)
	return req, nil
}

// enqueueNotification queues the admin email. Failure to queue is logged but
// never surfaced: the registration itself has already been recorded.
func (s *DefaultRegistrationService) enqueueNotification(req *models.RegistrationRequest) {
	if s.QueueClient == nil {
		return
	}
	payload := models.RegistrationEmailPayload{
		RequestID:    req.ID,
		BusinessName: req.BusinessName,
		OwnerName:    req.OwnerName,
		Email:        req.Email,
		Phone:        req.Phone,
		City:         req.City,
		State:        req.State,
		Website:      req.Website,
		ServicesText: req.ServicesText,
		Regions:      req.Regions,
	}
	task, opts, err := tasks.NewRegistrationEmailTask(payload)
	if err != nil {
		s.Logger.Warn("failed to build registration email task",
			zap.String("requestId", req.ID), zap.Error(err))
		return
	}
	if _, err := s.QueueClient.Enqueue(task, opts...); err != nil {
		s.Logger.Warn("failed to enqueue registration email",
			zap.String("requestId", req.ID), zap.Error(err))
	}
}

// GetAll lists registration requests, newest first.
func (s *DefaultRegistrationService) GetAll() ([]models.RegistrationRequest, error) {
	return s.Repo.GetAll()
}

// Approve converts a pending request into a directory entry, then marks the
// request approved. When the status update fails after the partner was
// created, the partner is deleted again so a retry cannot produce duplicate
// listings.
func (s *DefaultRegistrationService) Approve(id string) (*models.Partner, error) {
	req, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, fmt.Errorf("registration request %s not found", id)
	}
	if req.Status != models.RegistrationPending {
		return nil, fmt.Errorf("registration request %s is already %s", id, req.Status)
	}

	regions := req.Regions
	if regions == nil {
		regions = []string{}
	}

	partner := &models.Partner{
		Name:     req.BusinessName,
		Address:  req.Address,
		City:     req.City,
		State:    req.State,
		Zip:      req.Zip,
		Phone:    req.Phone,
		Email:    req.Email,
		Website:  req.Website,
		Services: splitServicesText(req.ServicesText),
		Regions:  regions,
	}

	if err := s.PartnerRepo.Create(partner); err != nil {
		return nil, fmt.Errorf("failed to create partner from request %s: %w", id, err)
	}

	if err := s.Repo.UpdateStatus(id, models.RegistrationApproved); err != nil {
		// Compensate so the request can be re-approved cleanly later.
		if delErr := s.PartnerRepo.Delete(partner.ID); delErr != nil {
			s.Logger.Error("failed to roll back partner after approve failure",
				zap.String("requestId", id),
				zap.String("partnerId", partner.ID),
				zap.Error(delErr))
		}
		return nil, fmt.Errorf("failed to mark request %s approved: %w", id, err)
	}

	return partner, nil
}

// Reject marks a pending request rejected.
func (s *DefaultRegistrationService) Reject(id string) error {
	req, err := s.Repo.GetByID(id)
	if err != nil {
		return err
	}
	if req == nil {
		return fmt.Errorf("registration request %s not found", id)
	}
	if req.Status != models.RegistrationPending {
		return fmt.Errorf("registration request %s is already %s", id, req.Status)
	}
	return s.Repo.UpdateStatus(id, models.RegistrationRejected)
}

// splitServicesText turns the free-text services field into a service list,
// accepting both ";" and "," as separators.
func splitServicesText(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}
	raw = strings.ReplaceAll(raw, ",", ";")
	parts := strings.Split(raw, ";")
	services := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			services = append(services, trimmed)
		}
	}
	return services
}
