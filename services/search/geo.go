package search

import (
	"math"
	"strings"
)

// Coordinates is a geographic point.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Geocoder resolves a place name to coordinates. The static implementation
// below is a stand-in for a real geocoding provider; swapping providers must
// not touch the matching logic.
type Geocoder interface {
	CoordinatesFor(name string) (Coordinates, bool)
}

// accentReplacer strips Greek diacritics and folds the final sigma so that
// accented, unaccented and uppercase spellings all normalize identically.
var accentReplacer = strings.NewReplacer(
	"ά", "α", "έ", "ε", "ή", "η", "ί", "ι", "ϊ", "ι", "ΐ", "ι",
	"ό", "ο", "ύ", "υ", "ϋ", "υ", "ΰ", "υ", "ώ", "ω", "ς", "σ",
)

// normalizePlace lower-cases, trims and de-accents a free-text place name.
func normalizePlace(s string) string {
	return accentReplacer.Replace(strings.ToLower(strings.TrimSpace(s)))
}

// Prefecture labels served by the directory.
const (
	PrefThessaloniki = "Νομός Θεσσαλονίκης"
	PrefAttiki       = "Νομός Αττικής"
	PrefAchaia       = "Νομός Αχαΐας"
	PrefIrakleio     = "Νομός Ηρακλείου"
	PrefLarisa       = "Νομός Λάρισας"
	PrefMagnisia     = "Νομός Μαγνησίας"
	PrefIoannina     = "Νομός Ιωαννίνων"
	PrefKavala       = "Νομός Καβάλας"
	PrefEvoia        = "Νομός Εύβοιας"
	PrefMessinia     = "Νομός Μεσσηνίας"
	PrefKozani       = "Νομός Κοζάνης"
)

type prefectureKeyword struct {
	key        string // normalized (lowercase, unaccented)
	prefecture string
}

// prefectureKeywords maps place-name tokens, Greek and transliterated, to a
// prefecture. Scanned in declaration order; the first containment wins. The
// table is a heuristic, not a gazetteer.
var prefectureKeywords = []prefectureKeyword{
	{"θεσσαλονικη", PrefThessaloniki},
	{"thessaloniki", PrefThessaloniki},
	{"περαια", PrefThessaloniki},
	{"peraia", PrefThessaloniki},
	{"καλαμαρια", PrefThessaloniki},
	{"kalamaria", PrefThessaloniki},
	{"ευοσμοσ", PrefThessaloniki},
	{"evosmos", PrefThessaloniki},
	{"αθηνα", PrefAttiki},
	{"athina", PrefAttiki},
	{"athens", PrefAttiki},
	{"πειραιασ", PrefAttiki},
	{"piraeus", PrefAttiki},
	{"peiraias", PrefAttiki},
	{"μαρουσι", PrefAttiki},
	{"marousi", PrefAttiki},
	{"γλυφαδα", PrefAttiki},
	{"glyfada", PrefAttiki},
	{"αττικη", PrefAttiki},
	{"attiki", PrefAttiki},
	{"πατρα", PrefAchaia},
	{"patra", PrefAchaia},
	{"patras", PrefAchaia},
	{"αιγιο", PrefAchaia},
	{"aigio", PrefAchaia},
	{"αχαια", PrefAchaia},
	{"achaia", PrefAchaia},
	{"ηρακλειο", PrefIrakleio},
	{"irakleio", PrefIrakleio},
	{"heraklion", PrefIrakleio},
	{"λαρισα", PrefLarisa},
	{"larisa", PrefLarisa},
	{"larissa", PrefLarisa},
	{"βολοσ", PrefMagnisia},
	{"volos", PrefMagnisia},
	{"μαγνησια", PrefMagnisia},
	{"magnisia", PrefMagnisia},
	{"ιωαννινα", PrefIoannina},
	{"ioannina", PrefIoannina},
	{"γιαννενα", PrefIoannina},
	{"giannena", PrefIoannina},
	// Stem, so the genitive label "Ιωαννίνων" resolves too.
	{"ιωαννιν", PrefIoannina},
	{"καβαλα", PrefKavala},
	{"kavala", PrefKavala},
	{"χαλκιδα", PrefEvoia},
	{"chalkida", PrefEvoia},
	{"ευβοια", PrefEvoia},
	{"evia", PrefEvoia},
	{"καλαματα", PrefMessinia},
	{"kalamata", PrefMessinia},
	{"μεσσηνια", PrefMessinia},
	{"messinia", PrefMessinia},
	{"κοζανη", PrefKozani},
	{"kozani", PrefKozani},
}

// ResolvePrefecture maps a free-text Greek place name to a prefecture label.
// First pass: the input contains a table key (declaration order, first match
// wins). Second, looser pass: a table key contains the input, or shares its
// first three runes. Returns false when nothing matches; the caller surfaces
// that as "prefecture unknown", not as an error.
func ResolvePrefecture(freeText string) (string, bool) {
	q := normalizePlace(freeText)
	if q == "" {
		return "", false
	}

	for _, e := range prefectureKeywords {
		if strings.Contains(q, e.key) {
			return e.prefecture, true
		}
	}

	qr := []rune(q)
	for _, e := range prefectureKeywords {
		if strings.Contains(e.key, q) {
			return e.prefecture, true
		}
		if len(qr) >= 3 && strings.HasPrefix(e.key, string(qr[:3])) {
			return e.prefecture, true
		}
	}

	return "", false
}

// staticGeocoder is a hand-authored coordinate table for the place names the
// directory recognizes. Mock data standing in for a live geocoding API.
type staticGeocoder struct {
	coords map[string]Coordinates
}

// NewStaticGeocoder returns the built-in Geocoder.
func NewStaticGeocoder() Geocoder {
	return &staticGeocoder{coords: map[string]Coordinates{
		"θεσσαλονικη": {40.6401, 22.9444},
		"περαια":      {40.4997, 22.9244},
		"καλαμαρια":   {40.5825, 22.9508},
		"αθηνα":       {37.9838, 23.7275},
		"πειραιασ":    {37.9429, 23.6469},
		"πατρα":       {38.2466, 21.7346},
		"ηρακλειο":    {35.3387, 25.1442},
		"λαρισα":      {39.6390, 22.4191},
		"βολοσ":       {39.3622, 22.9422},
		"ιωαννινα":    {39.6650, 20.8537},
		"καβαλα":      {40.9396, 24.4069},
		"χαλκιδα":     {38.4636, 23.6028},
		"καλαματα":    {37.0389, 22.1142},
		"κοζανη":      {40.3007, 21.7888},
		// Prefecture labels geocode to their capital.
		normalizePlace(PrefThessaloniki): {40.6401, 22.9444},
		normalizePlace(PrefAttiki):       {37.9838, 23.7275},
		normalizePlace(PrefAchaia):       {38.2466, 21.7346},
		normalizePlace(PrefIrakleio):     {35.3387, 25.1442},
		normalizePlace(PrefLarisa):       {39.6390, 22.4191},
		normalizePlace(PrefMagnisia):     {39.3622, 22.9422},
		normalizePlace(PrefIoannina):     {39.6650, 20.8537},
		normalizePlace(PrefKavala):       {40.9396, 24.4069},
		normalizePlace(PrefEvoia):        {38.4636, 23.6028},
		normalizePlace(PrefMessinia):     {37.0389, 22.1142},
		normalizePlace(PrefKozani):       {40.3007, 21.7888},
	}}
}

func (g *staticGeocoder) CoordinatesFor(name string) (Coordinates, bool) {
	c, ok := g.coords[normalizePlace(name)]
	return c, ok
}

// Haversine calculates the great-circle distance (in km) between two lat/lng points.
func Haversine(lat1, lng1, lat2, lng2 float64) float64 {
	const R = 6371
	dLat := (lat2 - lat1) * math.Pi / 180
	dLng := (lng2 - lng1) * math.Pi / 180
	lat1Rad := lat1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return R * c
}

// WithinDistance reports whether at least one candidate region geocodes to a
// point within maxKm of the search location. Regions without coordinates are
// skipped rather than counted as misses.
func WithinDistance(geo Geocoder, location string, candidateRegions []string, maxKm float64) bool {
	origin, ok := geo.CoordinatesFor(location)
	if !ok {
		return false
	}
	for _, region := range candidateRegions {
		c, ok := geo.CoordinatesFor(region)
		if !ok {
			continue
		}
		if Haversine(origin.Lat, origin.Lng, c.Lat, c.Lng) <= maxKm {
			return true
		}
	}
	return false
}
