package search

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/fierogr/findfarewells-sub000/models"

	"go.uber.org/zap"
)

// fakePartnerRepo is an in-memory PartnerRepository constructed with initial
// data. failures makes the first N GetAll calls fail.
type fakePartnerRepo struct {
	partners []models.Partner
	failures int
	calls    int
}

func (f *fakePartnerRepo) GetAll() ([]models.Partner, error) {
	f.calls++
	if f.calls <= f.failures {
		return nil, fmt.Errorf("backend unavailable")
	}
	return append([]models.Partner(nil), f.partners...), nil
}

func (f *fakePartnerRepo) GetByID(id string) (*models.Partner, error) {
	for i := range f.partners {
		if f.partners[i].ID == id {
			p := f.partners[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (f *fakePartnerRepo) Create(p *models.Partner) error {
	if p.ID == "" {
		p.ID = fmt.Sprintf("%d", len(f.partners)+1)
	}
	f.partners = append(f.partners, *p)
	return nil
}

func (f *fakePartnerRepo) Update(p *models.Partner) error { return nil }

func (f *fakePartnerRepo) UpdateFields(id string, fields map[string]interface{}) error { return nil }

func (f *fakePartnerRepo) Delete(id string) error {
	for i := range f.partners {
		if f.partners[i].ID == id {
			f.partners = append(f.partners[:i], f.partners[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("partner with id %s not found", id)
}

type fakeSearchLog struct {
	mu       sync.Mutex
	searches []models.SearchRequest
}

func (f *fakeSearchLog) LogSearch(req *models.SearchRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.searches = append(f.searches, *req)
	return nil
}

func (f *fakeSearchLog) GetSearches() ([]models.SearchRequest, error) { return f.searches, nil }
func (f *fakeSearchLog) DeleteSearch(id string) error                 { return nil }
func (f *fakeSearchLog) LogPackageSelection(sel *models.PackageSelection) error {
	return nil
}

func newTestService(repo *fakePartnerRepo) *DefaultSearchService {
	return &DefaultSearchService{
		PartnerRepo: repo,
		LogRepo:     &fakeSearchLog{},
		Geo:         NewStaticGeocoder(),
		Logger:      zap.NewNop(),
	}
}

func TestSearchResolvesLocationToPrefecture(t *testing.T) {
	repo := &fakePartnerRepo{partners: []models.Partner{
		{ID: "1", Name: "Θεσσαλονίκη ΟΤ", Regions: []string{PrefThessaloniki}, BasicPrice: 2000},
		{ID: "2", Name: "Εκτός Περιοχής", Regions: []string{}, City: "Σπάρτη", State: "Λακωνία", BasicPrice: 1500},
	}}
	svc := newTestService(repo)

	page, err := svc.Search(context.Background(), models.SearchQuery{Location: "Περαία"})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}

	if page.Prefecture != PrefThessaloniki || !page.PrefectureResolved {
		t.Errorf("prefecture = (%q, %v), want (%q, true)",
			page.Prefecture, page.PrefectureResolved, PrefThessaloniki)
	}
	if page.Total != 1 || page.Rows[0].Partner.ID != "1" {
		t.Errorf("expected only the Thessaloniki entry, got %+v", page.Rows)
	}
}

func TestSearchProximityFallback(t *testing.T) {
	// The region label does not substring-match the resolved prefecture, but
	// geocodes within 50km of the search location.
	repo := &fakePartnerRepo{partners: []models.Partner{
		{ID: "1", Name: "Καλαμαριά ΟΤ", Regions: []string{"Καλαμαριά"}, BasicPrice: 2000},
		{ID: "2", Name: "Αθήνα ΟΤ", Regions: []string{"Αθήνα"}, BasicPrice: 1000},
	}}
	svc := newTestService(repo)

	page, err := svc.Search(context.Background(), models.SearchQuery{Location: "Περαία"})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if page.Total != 1 || page.Rows[0].Partner.ID != "1" {
		t.Errorf("proximity fallback: got %+v, want only the nearby entry", page.Rows)
	}
}

func TestSearchUnknownLocationIsEmptyNotError(t *testing.T) {
	repo := &fakePartnerRepo{partners: []models.Partner{
		{ID: "1", Regions: []string{PrefThessaloniki}},
	}}
	svc := newTestService(repo)

	page, err := svc.Search(context.Background(), models.SearchQuery{Location: "Ουαγκαντούγκου"})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if page.PrefectureResolved {
		t.Errorf("unknown location should not resolve a prefecture")
	}
	if page.Total != 0 || page.TotalPages != 1 || page.Page != 1 {
		t.Errorf("got total=%d page=%d of %d, want an empty first page", page.Total, page.Page, page.TotalPages)
	}
	if len(page.Rows) != 0 {
		t.Errorf("unknown location must not return the unfiltered directory")
	}
}

func TestSearchReportsClampedPage(t *testing.T) {
	repo := &fakePartnerRepo{partners: []models.Partner{
		{ID: "1", Regions: []string{PrefThessaloniki}, BasicPrice: 2000},
	}}
	svc := newTestService(repo)

	page, err := svc.Search(context.Background(), models.SearchQuery{
		Prefecture: PrefThessaloniki,
		Page:       99,
	})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if page.Page != 1 || page.TotalPages != 1 {
		t.Errorf("reported page %d of %d, want the served page 1 of 1", page.Page, page.TotalPages)
	}
	if len(page.Rows) != 1 {
		t.Errorf("clamped request should serve the last page's rows, got %d", len(page.Rows))
	}
}

func TestSearchSortsByEffectivePrice(t *testing.T) {
	a := models.Partner{ID: "A", Regions: []string{PrefThessaloniki}, Packages: []models.ServicePackage{
		{ID: "a1", Price: 4950}, {ID: "a2", Price: 2950}, {ID: "a3", Price: 6450},
	}}
	b := models.Partner{ID: "B", Regions: []string{PrefThessaloniki}, BasicPrice: 3050}
	repo := &fakePartnerRepo{partners: []models.Partner{b, a}}
	svc := newTestService(repo)

	page, err := svc.Search(context.Background(), models.SearchQuery{Prefecture: PrefThessaloniki})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(page.Rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(page.Rows))
	}
	if page.Rows[0].Partner.ID != "A" || page.Rows[0].Price != 2950 {
		t.Errorf("first row = %s at %v, want A at 2950", page.Rows[0].Partner.ID, page.Rows[0].Price)
	}
	if page.Rows[1].Partner.ID != "B" || page.Rows[1].Price != 3050 {
		t.Errorf("second row = %s at %v, want B at 3050", page.Rows[1].Partner.ID, page.Rows[1].Price)
	}

	desc, err := svc.Search(context.Background(), models.SearchQuery{
		Prefecture: PrefThessaloniki,
		Sort:       models.SortDescending,
	})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if desc.Rows[0].Partner.ID != "B" || desc.Rows[1].Partner.ID != "A" {
		t.Errorf("descending sort did not reverse the order")
	}
}

func TestFetchPartnersRetries(t *testing.T) {
	repo := &fakePartnerRepo{
		partners: []models.Partner{{ID: "1"}},
		failures: 2,
	}
	svc := newTestService(repo)

	partners, err := svc.fetchPartners(context.Background())
	if err != nil {
		t.Fatalf("fetchPartners failed after retries: %v", err)
	}
	if len(partners) != 1 {
		t.Errorf("got %d partners, want 1", len(partners))
	}
	if repo.calls != 3 {
		t.Errorf("repo called %d times, want 3 (initial + 2 retries)", repo.calls)
	}

	exhausted := &fakePartnerRepo{failures: 10}
	svcFail := newTestService(exhausted)
	if _, err := svcFail.fetchPartners(context.Background()); err == nil {
		t.Errorf("expected terminal error after retry budget exhausted")
	}
	if exhausted.calls != 3 {
		t.Errorf("failing repo called %d times, want exactly 3", exhausted.calls)
	}
}
