package models

import "testing"

func TestEffectivePrice(t *testing.T) {
	tests := []struct {
		name    string
		partner Partner
		want    float64
	}{
		{
			"lowest package wins over basic price",
			Partner{BasicPrice: 2000, Packages: []ServicePackage{
				{ID: "a", Price: 4950}, {ID: "b", Price: 2950}, {ID: "c", Price: 6450},
			}},
			2950,
		},
		{"basic price when no packages", Partner{BasicPrice: 3050}, 3050},
		{"zero when nothing is priced", Partner{}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.partner.EffectivePrice(); got != tt.want {
				t.Errorf("EffectivePrice() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCheapestPackage(t *testing.T) {
	p := Partner{Packages: []ServicePackage{
		{ID: "a", Price: 4950}, {ID: "b", Price: 2950}, {ID: "c", Price: 6450},
	}}
	pkg := p.CheapestPackage()
	if pkg == nil || pkg.ID != "b" {
		t.Errorf("CheapestPackage() = %+v, want package b", pkg)
	}

	// Returned package is a copy, not a pointer into the slice.
	pkg.Price = 1
	if p.Packages[1].Price != 2950 {
		t.Errorf("mutating the returned package changed the partner")
	}

	if (&Partner{}).CheapestPackage() != nil {
		t.Errorf("partner without packages should return nil")
	}
}

func TestNormalizeRegions(t *testing.T) {
	p := Partner{}
	p.NormalizeRegions()
	if p.Regions == nil || len(p.Regions) != 0 {
		t.Errorf("nil regions not coerced to empty slice")
	}

	p.Regions = []string{"Νομός Αττικής"}
	p.NormalizeRegions()
	if len(p.Regions) != 1 {
		t.Errorf("existing regions must be left untouched")
	}
}
