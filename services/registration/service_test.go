package registration

import (
	"fmt"
	"sort"
	"testing"

	"github.com/fierogr/findfarewells-sub000/models"

	"go.uber.org/zap"
)

type fakeRegistrationRepo struct {
	requests         map[string]*models.RegistrationRequest
	failUpdateStatus bool
}

func newFakeRegistrationRepo(reqs ...*models.RegistrationRequest) *fakeRegistrationRepo {
	repo := &fakeRegistrationRepo{requests: make(map[string]*models.RegistrationRequest)}
	for _, r := range reqs {
		repo.requests[r.ID] = r
	}
	return repo
}

func (f *fakeRegistrationRepo) Create(req *models.RegistrationRequest) error {
	f.requests[req.ID] = req
	return nil
}

func (f *fakeRegistrationRepo) GetByID(id string) (*models.RegistrationRequest, error) {
	if req, ok := f.requests[id]; ok {
		copied := *req
		return &copied, nil
	}
	return nil, nil
}

func (f *fakeRegistrationRepo) GetAll() ([]models.RegistrationRequest, error) {
	out := make([]models.RegistrationRequest, 0, len(f.requests))
	for _, req := range f.requests {
		out = append(out, *req)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeRegistrationRepo) UpdateStatus(id string, status string) error {
	if f.failUpdateStatus {
		return fmt.Errorf("status update failed")
	}
	req, ok := f.requests[id]
	if !ok {
		return fmt.Errorf("registration request %s not found", id)
	}
	req.Status = status
	return nil
}

type fakePartnerRepo struct {
	partners []models.Partner
	deleted  []string
}

func (f *fakePartnerRepo) GetAll() ([]models.Partner, error) {
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
	p.NormalizeRegions()
	f.partners = append(f.partners, *p)
	return nil
}

func (f *fakePartnerRepo) Update(p *models.Partner) error { return nil }

func (f *fakePartnerRepo) UpdateFields(id string, fields map[string]interface{}) error { return nil }

func (f *fakePartnerRepo) Delete(id string) error {
	f.deleted = append(f.deleted, id)
	for i := range f.partners {
		if f.partners[i].ID == id {
			f.partners = append(f.partners[:i], f.partners[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("partner with id %s not found", id)
}

func newTestService(regRepo *fakeRegistrationRepo, partnerRepo *fakePartnerRepo) *DefaultRegistrationService {
	return &DefaultRegistrationService{
		Repo:        regRepo,
		PartnerRepo: partnerRepo,
		Logger:      zap.NewNop(),
	}
}

func pendingRequest(id string) *models.RegistrationRequest {
	return &models.RegistrationRequest{
		ID:           id,
		BusinessName: "Οίκος Τελετών Δοκιμή",
		OwnerName:    "Γιώργος Παπαδόπουλος",
		Email:        "info@example.gr",
		Phone:        "2310123456",
		City:         "Θεσσαλονίκη",
		State:        "Νομός Θεσσαλονίκης",
		ServicesText: "Αποτέφρωση; Μεταφορά σορού",
		Regions:      []string{"Νομός Θεσσαλονίκης"},
		Status:       models.RegistrationPending,
	}
}

func TestSubmit(t *testing.T) {
	regRepo := newFakeRegistrationRepo()
	svc := newTestService(regRepo, &fakePartnerRepo{})

	req, err := svc.Submit(&models.RegistrationSubmission{
		BusinessName: "  Οίκος Τελετών Δοκιμή  ",
		OwnerName:    "Γιώργος",
		Email:        "info@example.gr",
	})
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if req.ID == "" {
		t.Errorf("submitted request has no id")
	}
	if req.Status != models.RegistrationPending {
		t.Errorf("status = %q, want %q", req.Status, models.RegistrationPending)
	}
	if req.BusinessName != "Οίκος Τελετών Δοκιμή" {
		t.Errorf("business name not trimmed: %q", req.BusinessName)
	}
	if req.Regions == nil {
		t.Errorf("regions should be an empty slice, not nil")
	}
	if len(regRepo.requests) != 1 {
		t.Errorf("stored %d requests, want 1", len(regRepo.requests))
	}
}

func TestSubmitValidation(t *testing.T) {
	svc := newTestService(newFakeRegistrationRepo(), &fakePartnerRepo{})

	tests := []struct {
		name string
		sub  models.RegistrationSubmission
	}{
		{"short business name", models.RegistrationSubmission{BusinessName: "A", OwnerName: "Γιώργος"}},
		{"missing owner name", models.RegistrationSubmission{BusinessName: "Οίκος Α", OwnerName: "  "}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Submit(&tt.sub); err == nil {
				t.Errorf("expected validation error")
			}
		})
	}
}

func TestApprove(t *testing.T) {
	regRepo := newFakeRegistrationRepo(pendingRequest("req-1"))
	partnerRepo := &fakePartnerRepo{}
	svc := newTestService(regRepo, partnerRepo)

	partner, err := svc.Approve("req-1")
	if err != nil {
		t.Fatalf("Approve failed: %v", err)
	}

	if len(partnerRepo.partners) != 1 {
		t.Fatalf("created %d partners, want exactly 1", len(partnerRepo.partners))
	}
	if partner.Name != "Οίκος Τελετών Δοκιμή" || partner.City != "Θεσσαλονίκη" {
		t.Errorf("partner fields not carried over: %+v", partner)
	}
	wantServices := []string{"Αποτέφρωση", "Μεταφορά σορού"}
	if len(partner.Services) != len(wantServices) {
		t.Fatalf("services = %v, want %v", partner.Services, wantServices)
	}
	for i, want := range wantServices {
		if partner.Services[i] != want {
			t.Errorf("services[%d] = %q, want %q", i, partner.Services[i], want)
		}
	}
	if len(partner.Regions) != 1 || partner.Regions[0] != "Νομός Θεσσαλονίκης" {
		t.Errorf("regions = %v, want the request regions", partner.Regions)
	}

	stored, _ := regRepo.GetByID("req-1")
	if stored.Status != models.RegistrationApproved {
		t.Errorf("request status = %q, want %q", stored.Status, models.RegistrationApproved)
	}
}

func TestApproveNilRegions(t *testing.T) {
	req := pendingRequest("req-1")
	req.Regions = nil
	regRepo := newFakeRegistrationRepo(req)
	partnerRepo := &fakePartnerRepo{}
	svc := newTestService(regRepo, partnerRepo)

	partner, err := svc.Approve("req-1")
	if err != nil {
		t.Fatalf("Approve failed: %v", err)
	}
	if partner.Regions == nil || len(partner.Regions) != 0 {
		t.Errorf("regions = %v, want empty slice for a request without regions", partner.Regions)
	}
}

func TestApproveRollsBackOnStatusFailure(t *testing.T) {
	regRepo := newFakeRegistrationRepo(pendingRequest("req-1"))
	regRepo.failUpdateStatus = true
	partnerRepo := &fakePartnerRepo{}
	svc := newTestService(regRepo, partnerRepo)

	if _, err := svc.Approve("req-1"); err == nil {
		t.Fatalf("expected error when status update fails")
	}
	if len(partnerRepo.partners) != 0 {
		t.Errorf("partner not rolled back, %d remain", len(partnerRepo.partners))
	}
	if len(partnerRepo.deleted) != 1 {
		t.Errorf("expected exactly one compensating delete, got %d", len(partnerRepo.deleted))
	}

	stored, _ := regRepo.GetByID("req-1")
	if stored.Status != models.RegistrationPending {
		t.Errorf("request status = %q, want still pending", stored.Status)
	}
}

func TestApproveAlreadyReviewed(t *testing.T) {
	approved := pendingRequest("req-1")
	approved.Status = models.RegistrationApproved
	rejected := pendingRequest("req-2")
	rejected.Status = models.RegistrationRejected

	regRepo := newFakeRegistrationRepo(approved, rejected)
	partnerRepo := &fakePartnerRepo{}
	svc := newTestService(regRepo, partnerRepo)

	for _, id := range []string{"req-1", "req-2"} {
		if _, err := svc.Approve(id); err == nil {
			t.Errorf("approving already-reviewed request %s should fail", id)
		}
	}
	if len(partnerRepo.partners) != 0 {
		t.Errorf("no partner should be created for reviewed requests")
	}
}

func TestApproveUnknownRequest(t *testing.T) {
	svc := newTestService(newFakeRegistrationRepo(), &fakePartnerRepo{})
	if _, err := svc.Approve("missing"); err == nil {
		t.Errorf("expected error for unknown request id")
	}
}

func TestReject(t *testing.T) {
	regRepo := newFakeRegistrationRepo(pendingRequest("req-1"))
	partnerRepo := &fakePartnerRepo{}
	svc := newTestService(regRepo, partnerRepo)

	if err := svc.Reject("req-1"); err != nil {
		t.Fatalf("Reject failed: %v", err)
	}
	stored, _ := regRepo.GetByID("req-1")
	if stored.Status != models.RegistrationRejected {
		t.Errorf("request status = %q, want %q", stored.Status, models.RegistrationRejected)
	}
	if len(partnerRepo.partners) != 0 {
		t.Errorf("rejecting must not create a partner")
	}

	if err := svc.Reject("req-1"); err == nil {
		t.Errorf("rejecting twice should fail")
	}
}

func TestSplitServicesText(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"Αποτέφρωση; Μεταφορά σορού", []string{"Αποτέφρωση", "Μεταφορά σορού"}},
		{"A, B, C", []string{"A", "B", "C"}},
		{"A; B, C", []string{"A", "B", "C"}},
		{"  ", []string{}},
		{";;", []string{}},
	}
	for _, tt := range tests {
		got := splitServicesText(tt.input)
		if len(got) != len(tt.want) {
			t.Errorf("splitServicesText(%q) = %v, want %v", tt.input, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("splitServicesText(%q)[%d] = %q, want %q", tt.input, i, got[i], tt.want[i])
			}
		}
	}
}
