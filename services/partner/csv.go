package partner

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fierogr/findfarewells-sub000/models"

	"go.uber.org/zap"
)

// csvHeaders are the recognized import columns, matched case-insensitively.
var csvHeaders = []string{
	"name", "city", "state", "address", "zip", "phone",
	"email", "website", "description", "services",
}

// ImportCSV parses header-driven partner rows. A row missing any of the
// required columns (name, city, state) increments the error counter and is
// skipped; the batch itself survives.
func (s *DefaultPartnerService) ImportCSV(r io.Reader) (*models.CSVImportSummary, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	// Map recognized header names to their column positions.
	columns := map[string]int{}
	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(strings.Trim(h, `"`)))
		for _, known := range csvHeaders {
			if name == known {
				columns[known] = i
			}
		}
	}

	summary := &models.CSVImportSummary{}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			summary.Errors++
			summary.Total++
			s.Logger.Warn("skipping malformed CSV row", zap.Error(err))
			continue
		}
		summary.Total++

		field := func(name string) string {
			idx, ok := columns[name]
			if !ok || idx >= len(record) {
				return ""
			}
			return strings.TrimSpace(strings.Trim(record[idx], `"`))
		}

		name := field("name")
		city := field("city")
		state := field("state")
		if name == "" || city == "" || state == "" {
			summary.Errors++
			continue
		}

		p := &models.Partner{
			Name:        name,
			City:        city,
			State:       state,
			Address:     field("address"),
			Zip:         field("zip"),
			Phone:       field("phone"),
			Email:       field("email"),
			Website:     field("website"),
			Description: field("description"),
			Services:    splitServices(field("services")),
			Regions:     []string{},
		}
		if _, err := s.CreatePartner(p); err != nil {
			summary.Errors++
			s.Logger.Warn("failed to import partner row",
				zap.String("name", name), zap.Error(err))
			continue
		}
		summary.Success++
	}

	return summary, nil
}

// splitServices splits a services cell on ";" and drops empty fragments.
func splitServices(raw string) []string {
	if raw == "" {
		return []string{}
	}
	parts := strings.Split(raw, ";")
	services := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			services = append(services, trimmed)
		}
	}
	return services
}

// ExportCSV writes one row per partner, mirroring the entry's display fields.
func (s *DefaultPartnerService) ExportCSV(w io.Writer) error {
	partners, err := s.Repo.GetAll()
	if err != nil {
		return fmt.Errorf("failed to load partners for export: %w", err)
	}

	writer := csv.NewWriter(w)
	header := append([]string{}, csvHeaders...)
	header = append(header, "regions", "basic_price", "rating", "featured")
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for i := range partners {
		p := partners[i]
		row := []string{
			p.Name, p.City, p.State, p.Address, p.Zip, p.Phone,
			p.Email, p.Website, p.Description,
			strings.Join(p.Services, ";"),
			strings.Join(p.Regions, ";"),
			strconv.FormatFloat(p.BasicPrice, 'f', -1, 64),
			strconv.FormatFloat(p.Rating, 'f', -1, 64),
			strconv.FormatBool(p.Featured),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
