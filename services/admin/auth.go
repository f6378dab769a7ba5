package admin

import (
	"fmt"
	"strings"
	"time"

	"github.com/fierogr/findfarewells-sub000/config"
	"github.com/fierogr/findfarewells-sub000/database/repository"
	"github.com/fierogr/findfarewells-sub000/models"
	"github.com/fierogr/findfarewells-sub000/utils"

	"golang.org/x/crypto/bcrypt"
)

// RoleAdmin is the role claim required by the admin middleware.
const RoleAdmin = "admin"

const sessionDuration = 12 * time.Hour

// AdminService authenticates the configured admin account and manages the
// settings table.
type AdminService interface {
	Authenticate(creds models.AdminCredentials) (*models.AdminAuthResponse, error)
	GetAdminEmail() (string, error)
	SetAdminEmail(email string) error
}

// DefaultAdminService is the production implementation. The admin account is
// seeded from configuration; there is no self-service signup.
type DefaultAdminService struct {
	Settings repository.SettingsRepository
}

// Authenticate verifies the configured credentials and issues a session token
// carrying an admin role claim.
func (s *DefaultAdminService) Authenticate(creds models.AdminCredentials) (*models.AdminAuthResponse, error) {
	cfg := config.AppConfig
	if cfg.AdminEmail == "" || cfg.AdminPasswordHash == "" {
		return nil, fmt.Errorf("admin account is not configured")
	}
	if !strings.EqualFold(creds.Email, cfg.AdminEmail) {
		return nil, fmt.Errorf("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(cfg.AdminPasswordHash), []byte(creds.Password)); err != nil {
		return nil, fmt.Errorf("invalid credentials")
	}

	token, err := utils.GenerateToken(cfg.AdminEmail, RoleAdmin, sessionDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to issue session token: %w", err)
	}
	return &models.AdminAuthResponse{Token: token, Email: cfg.AdminEmail}, nil
}

// GetAdminEmail returns the notification mailbox, falling back to the
// configured admin address when the setting is unset.
func (s *DefaultAdminService) GetAdminEmail() (string, error) {
	value, err := s.Settings.Get(models.SettingAdminEmail)
	if err != nil {
		return "", err
	}
	if value == "" {
		value = config.AppConfig.AdminEmail
	}
	return value, nil
}

// SetAdminEmail stores the notification mailbox.
func (s *DefaultAdminService) SetAdminEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		return fmt.Errorf("invalid email address")
	}
	return s.Settings.Set(models.SettingAdminEmail, email)
}
