package search

import (
	"testing"

	"github.com/fierogr/findfarewells-sub000/models"
)

func testPartners() []models.Partner {
	return []models.Partner{
		{
			ID:      "1",
			Name:    "Οίκος Τελετών Παπαδόπουλος",
			Regions: []string{PrefThessaloniki},
			Services: []string{"Αποτέφρωση", "Μεταφορά σορού"},
			Packages: []models.ServicePackage{
				{ID: "p1", Name: "Βασικό", Price: 2950, IncludedServices: []string{"Φαγητό", "Στολισμός"}},
			},
		},
		{
			ID:       "2",
			Name:     "Γραφείο Τελετών Αθηνά",
			Regions:  []string{PrefAttiki},
			Services: []string{"Ταρίχευση"},
		},
		{
			ID:      "3",
			Name:    "Χωρίς Περιοχές",
			Regions: nil,
		},
	}
}

func TestFilterPartnersByPrefecture(t *testing.T) {
	partners := testPartners()

	tests := []struct {
		name       string
		prefecture string
		wantIDs    []string
	}{
		{"exact label", PrefThessaloniki, []string{"1"}},
		{"uppercase query", "ΝΟΜΌΣ ΘΕΣΣΑΛΟΝΊΚΗΣ", []string{"1"}},
		{"unaccented query", "νομος θεσσαλονικης", []string{"1"}},
		{"short variant contained in region", "Θεσσαλονίκης", []string{"1"}},
		{"no matches", "Νομός Χανίων", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterPartners(partners, FilterCriteria{Prefecture: tt.prefecture})
			assertIDs(t, got, tt.wantIDs)
		})
	}
}

// An entry whose regions list literally contains the queried prefecture must
// always match, regardless of casing.
func TestFilterPartnersReflexive(t *testing.T) {
	partners := testPartners()
	for _, q := range []string{PrefThessaloniki, "νομός θεσσαλονίκης"} {
		got := FilterPartners(partners, FilterCriteria{Prefecture: q})
		if len(got) != 1 || got[0].ID != "1" {
			t.Errorf("prefecture %q did not match entry with that exact region", q)
		}
	}
}

// An empty criteria set is the identity filter.
func TestFilterPartnersIdentity(t *testing.T) {
	partners := testPartners()
	got := FilterPartners(partners, FilterCriteria{})
	if len(got) != len(partners) {
		t.Fatalf("empty criteria returned %d of %d entries", len(got), len(partners))
	}
	// Nil regions must come back normalized.
	for _, p := range got {
		if p.Regions == nil {
			t.Errorf("entry %s regions not normalized to empty slice", p.ID)
		}
	}
}

func TestFilterPartnersByServices(t *testing.T) {
	partners := testPartners()

	tests := []struct {
		name     string
		services []string
		wantIDs  []string
	}{
		{"service from services list", []string{"Αποτέφρωση"}, []string{"1"}},
		{"service from package includes", []string{"Φαγητό"}, []string{"1"}},
		{"case-insensitive substring", []string{"αποτέφρωση"}, []string{"1"}},
		{"all must match", []string{"Αποτέφρωση", "Ταρίχευση"}, nil},
		{"both satisfied by one entry", []string{"Αποτέφρωση", "Φαγητό"}, []string{"1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterPartners(partners, FilterCriteria{Services: tt.services})
			assertIDs(t, got, tt.wantIDs)
		})
	}
}

// Adding a requested service can only narrow the result set.
func TestServiceFilterMonotonicNarrowing(t *testing.T) {
	partners := testPartners()
	broad := FilterPartners(partners, FilterCriteria{Services: []string{"Αποτέφρωση"}})
	narrow := FilterPartners(partners, FilterCriteria{Services: []string{"Αποτέφρωση", "Φαγητό"}})

	if len(narrow) > len(broad) {
		t.Fatalf("narrowing grew the result set: %d > %d", len(narrow), len(broad))
	}
	for _, n := range narrow {
		found := false
		for _, b := range broad {
			if b.ID == n.ID {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("entry %s in narrow result but not in broad result", n.ID)
		}
	}
}

func TestFilterPartnersByRegionList(t *testing.T) {
	partners := testPartners()

	// Multi-select regions are OR: either prefecture matches.
	got := FilterPartners(partners, FilterCriteria{
		Regions: []string{PrefThessaloniki, PrefAttiki},
	})
	assertIDs(t, got, []string{"1", "2"})

	// Categories compose with AND: region OR within, services on top.
	got = FilterPartners(partners, FilterCriteria{
		Regions:  []string{PrefThessaloniki, PrefAttiki},
		Services: []string{"Ταρίχευση"},
	})
	assertIDs(t, got, []string{"2"})
}

func assertIDs(t *testing.T, got []models.Partner, wantIDs []string) {
	t.Helper()
	if len(got) != len(wantIDs) {
		t.Fatalf("got %d entries, want %d", len(got), len(wantIDs))
	}
	for i, want := range wantIDs {
		if got[i].ID != want {
			t.Errorf("entry %d: got id %s, want %s", i, got[i].ID, want)
		}
	}
}
