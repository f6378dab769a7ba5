package partner

import (
	"fmt"
	"time"

	"github.com/fierogr/findfarewells-sub000/models"

	"github.com/google/uuid"
)

// GetPartnerByID returns a partner, or nil when the id is unknown.
func (s *DefaultPartnerService) GetPartnerByID(id string) (*models.Partner, error) {
	p, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("partner lookup failed: %w", err)
	}
	return p, nil
}

// GetAllPartners returns the full directory with regions normalized.
func (s *DefaultPartnerService) GetAllPartners() ([]models.Partner, error) {
	partners, err := s.Repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list partners: %w", err)
	}
	return partners, nil
}

// CreatePartner validates and stores a new directory entry.
func (s *DefaultPartnerService) CreatePartner(p *models.Partner) (*models.Partner, error) {
	if p.Name == "" {
		return nil, fmt.Errorf("partner name is required")
	}
	if p.BasicPrice < 0 {
		return nil, fmt.Errorf("basic price must not be negative")
	}
	for i := range p.Packages {
		if p.Packages[i].Price < 0 {
			return nil, fmt.Errorf("package price must not be negative")
		}
		if p.Packages[i].ID == "" {
			p.Packages[i].ID = uuid.NewString()
		}
	}
	for i := range p.AdditionalServices {
		if p.AdditionalServices[i].ID == "" {
			p.AdditionalServices[i].ID = uuid.NewString()
		}
	}
	if err := s.Repo.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

// UpdatePartner merges allowed updates and returns the updated record.
// It implements patch-style updates.
func (s *DefaultPartnerService) UpdatePartner(id string, updates map[string]interface{}) (*models.Partner, error) {
	existing, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("partner lookup failed: %w", err)
	}
	if existing == nil {
		return nil, fmt.Errorf("partner with id %s not found", id)
	}

	fields := map[string]interface{}{}

	for _, key := range []string{
		"name", "address", "city", "state", "zip", "phone", "email",
		"website", "hours", "description", "about", "imageUrl",
	} {
		if v, ok := updates[key].(string); ok {
			fields[key] = v
		}
	}
	if v, ok := updates["featured"].(bool); ok {
		fields["featured"] = v
	}
	if v, ok := toFloat(updates["basicPrice"]); ok {
		if v < 0 {
			return nil, fmt.Errorf("basic price must not be negative")
		}
		fields["basicPrice"] = v
	}
	if v, ok := toFloat(updates["rating"]); ok {
		fields["rating"] = v
	}
	if v, ok := updates["services"]; ok {
		fields["services"] = toStringSlice(v)
	}
	if v, ok := updates["regions"]; ok {
		// nil becomes [] in the repository; never written back as null.
		fields["regions"] = toStringSlice(v)
	}
	if v, ok := updates["packages"]; ok {
		fields["packages"] = v
	}
	if v, ok := updates["additionalServices"]; ok {
		fields["additionalServices"] = v
	}

	if len(fields) == 0 {
		return existing, nil
	}

	if err := s.Repo.UpdateFields(id, fields); err != nil {
		return nil, fmt.Errorf("failed to update partner: %w", err)
	}
	return s.Repo.GetByID(id)
}

// DeletePartner removes a partner record by its ID.
func (s *DefaultPartnerService) DeletePartner(id string) error {
	if err := s.Repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete partner with id %s: %w", id, err)
	}
	return nil
}

// LogPackageSelection records a visitor's package pick against a partner.
func (s *DefaultPartnerService) LogPackageSelection(sel *models.PackageSelection) error {
	if sel.PartnerID == "" || sel.Phone == "" {
		return fmt.Errorf("partner id and phone are required")
	}
	if sel.ID == "" {
		sel.ID = uuid.NewString()
	}
	sel.CreatedAt = time.Now()
	return s.LogRepo.LogPackageSelection(sel)
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	}
	return 0, false
}

func toStringSlice(v interface{}) []string {
	out := []string{}
	switch vs := v.(type) {
	case []string:
		out = append(out, vs...)
	case []interface{}:
		for _, item := range vs {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
	}
	return out
}
