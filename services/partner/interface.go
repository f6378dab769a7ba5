package partner

import (
	"io"

	"github.com/fierogr/findfarewells-sub000/database/repository"
	"github.com/fierogr/findfarewells-sub000/models"

	"go.uber.org/zap"
)

// PartnerService defines operations over the partner directory.
type PartnerService interface {
	GetPartnerByID(id string) (*models.Partner, error)
	GetAllPartners() ([]models.Partner, error)
	CreatePartner(p *models.Partner) (*models.Partner, error)
	UpdatePartner(id string, updates map[string]interface{}) (*models.Partner, error)
	DeletePartner(id string) error
	LogPackageSelection(sel *models.PackageSelection) error

	// ImportCSV ingests partner rows from a header-driven CSV stream.
	// Malformed rows are counted, not fatal to the batch.
	ImportCSV(r io.Reader) (*models.CSVImportSummary, error)
	// ExportCSV writes all partners as CSV.
	ExportCSV(w io.Writer) error
}

// DefaultPartnerService is the production implementation.
type DefaultPartnerService struct {
	Repo    repository.PartnerRepository
	LogRepo repository.SearchLogRepository
	Logger  *zap.Logger
}
