package search

import (
	"strings"

	"github.com/fierogr/findfarewells-sub000/models"
)

// FilterCriteria is the set of optional filters applied to the directory.
// Categories compose with logical AND; an unset category is an identity.
type FilterCriteria struct {
	Prefecture string   // single prefecture resolved from free text or picked explicitly
	Regions    []string // multi-select region filter, OR within the list
	Services   []string // requested services, AND within the list
}

// regionMatches applies the deliberately lenient bidirectional substring
// match, tolerating naming variants like "Νομός Θεσσαλονίκης" vs "Θεσσαλονίκη".
// Both sides go through normalizePlace: plain ToLower turns an uppercase final
// sigma into "σ" while the stored label keeps "ς", which would break matching
// for all-caps queries.
func regionMatches(region, target string) bool {
	a := normalizePlace(region)
	b := normalizePlace(target)
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// matchesPrefecture reports whether any of the partner's served regions
// matches the target prefecture.
func matchesPrefecture(p *models.Partner, prefecture string) bool {
	for _, region := range p.Regions {
		if regionMatches(region, prefecture) {
			return true
		}
	}
	return false
}

// matchesAnyRegion is the multi-select region filter: ANY selected region
// matching is enough. Looser than the service filter since users broaden
// rather than narrow by region.
func matchesAnyRegion(p *models.Partner, regions []string) bool {
	for _, target := range regions {
		if matchesPrefecture(p, target) {
			return true
		}
	}
	return false
}

// matchesService reports whether the requested service name appears, after
// normalization, in the partner's services or in the included services of any
// of its packages.
func matchesService(p *models.Partner, service string) bool {
	want := normalizePlace(service)
	if want == "" {
		return true
	}
	for _, s := range p.Services {
		if strings.Contains(normalizePlace(s), want) {
			return true
		}
	}
	for _, pkg := range p.Packages {
		for _, s := range pkg.IncludedServices {
			if strings.Contains(normalizePlace(s), want) {
				return true
			}
		}
	}
	return false
}

// matchesAllServices requires every requested service to match. Precision
// over recall for the "pick exact package" flow.
func matchesAllServices(p *models.Partner, services []string) bool {
	for _, svc := range services {
		if !matchesService(p, svc) {
			return false
		}
	}
	return true
}

// FilterPartners applies the criteria to the partner list. Regions are
// normalized before filtering so a stored nil list behaves as empty. An empty
// result is not an error.
func FilterPartners(partners []models.Partner, c FilterCriteria) []models.Partner {
	var matched []models.Partner
	for i := range partners {
		p := partners[i]
		p.NormalizeRegions()

		if c.Prefecture != "" && !matchesPrefecture(&p, c.Prefecture) {
			continue
		}
		if len(c.Regions) > 0 && !matchesAnyRegion(&p, c.Regions) {
			continue
		}
		if len(c.Services) > 0 && !matchesAllServices(&p, c.Services) {
			continue
		}
		matched = append(matched, p)
	}
	return matched
}
