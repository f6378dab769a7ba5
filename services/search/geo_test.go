package search

import (
	"math"
	"testing"
)

func TestResolvePrefecture(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{"greek accented city", "Περαία", PrefThessaloniki, true},
		{"greek unaccented city", "περαια", PrefThessaloniki, true},
		{"latin transliteration", "Thessaloniki", PrefThessaloniki, true},
		{"city inside sentence", "κηδεία στην Καλαμαριά", PrefThessaloniki, true},
		{"athens latin", "Athens", PrefAttiki, true},
		{"piraeus accented", "Πειραιάς", PrefAttiki, true},
		{"patra", "Πάτρα", PrefAchaia, true},
		{"heraklion", "Ηράκλειο Κρήτης", PrefIrakleio, true},
		{"kalamata", "καλαμάτα", PrefMessinia, true},
		{"prefecture label resolves to itself", PrefThessaloniki, PrefThessaloniki, true},
		{"three-char prefix fallback", "θεσ", PrefThessaloniki, true},
		{"unknown place", "Ουαγκαντούγκου", "", false},
		{"empty input", "   ", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ResolvePrefecture(tt.input)
			if ok != tt.ok || got != tt.want {
				t.Errorf("ResolvePrefecture(%q) = (%q, %v), want (%q, %v)",
					tt.input, got, ok, tt.want, tt.ok)
			}
		})
	}
}

// Resolving a prefecture label must map back to the same label, so a resolved
// value can be fed into downstream filtering without changing behavior.
func TestResolvePrefectureIdempotent(t *testing.T) {
	for _, pref := range []string{
		PrefThessaloniki, PrefAttiki, PrefAchaia, PrefIrakleio, PrefLarisa,
		PrefMagnisia, PrefIoannina, PrefKavala, PrefEvoia, PrefMessinia, PrefKozani,
	} {
		got, ok := ResolvePrefecture(pref)
		if !ok || got != pref {
			t.Errorf("ResolvePrefecture(%q) = (%q, %v), want (%q, true)", pref, got, ok, pref)
		}
	}
}

func TestHaversine(t *testing.T) {
	// Thessaloniki to Peraia is roughly 15-16km.
	d := Haversine(40.6401, 22.9444, 40.4997, 22.9244)
	if d < 13 || d > 19 {
		t.Errorf("Haversine Thessaloniki-Peraia = %.1fkm, want ~15km", d)
	}

	// Identical points.
	if d := Haversine(40.0, 22.0, 40.0, 22.0); math.Abs(d) > 1e-9 {
		t.Errorf("Haversine of identical points = %v, want 0", d)
	}

	// Thessaloniki to Athens is far beyond any widening radius.
	if d := Haversine(40.6401, 22.9444, 37.9838, 23.7275); d < 250 {
		t.Errorf("Haversine Thessaloniki-Athens = %.1fkm, want > 250km", d)
	}
}

func TestWithinDistance(t *testing.T) {
	geo := NewStaticGeocoder()

	tests := []struct {
		name     string
		location string
		regions  []string
		want     bool
	}{
		{"peraia near thessaloniki prefecture", "Περαία", []string{PrefThessaloniki}, true},
		{"peraia far from attiki", "Περαία", []string{PrefAttiki}, false},
		{"unknown regions are skipped", "Περαία", []string{"Άγνωστη Περιοχή", PrefThessaloniki}, true},
		{"only unknown regions", "Περαία", []string{"Άγνωστη Περιοχή"}, false},
		{"unknown origin", "Ουαγκαντούγκου", []string{PrefThessaloniki}, false},
		{"no regions", "Περαία", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WithinDistance(geo, tt.location, tt.regions, ProximityRadiusKm)
			if got != tt.want {
				t.Errorf("WithinDistance(%q, %v) = %v, want %v", tt.location, tt.regions, got, tt.want)
			}
		})
	}
}
