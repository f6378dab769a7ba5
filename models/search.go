package models

import "time"

// Sort orders accepted by the search endpoint.
const (
	SortAscending  = "asc"
	SortDescending = "desc"
)

// SearchQuery is the public search payload. All filters are optional and
// compose with logical AND across categories.
type SearchQuery struct {
	Location   string   `json:"location,omitempty"`   // free-text place name
	Prefecture string   `json:"prefecture,omitempty"` // explicit prefecture label
	Regions    []string `json:"regions,omitempty"`    // multi-select, OR within
	Services   []string `json:"services,omitempty"`   // AND within
	Phone      string   `json:"phone,omitempty"`      // contact number to log with the request
	Page       int      `json:"page,omitempty"`       // 1-indexed
	Sort       string   `json:"sort,omitempty"`       // "asc" (default) or "desc"
}

// ResultRow pairs a partner with its single lowest-priced package, or with no
// package at all for basic-price-only listings. One row per partner.
type ResultRow struct {
	Partner Partner         `json:"partner"`
	Package *ServicePackage `json:"package,omitempty"`
	Price   float64         `json:"price"`
}

// ResultPage is one page of sorted search results.
type ResultPage struct {
	Rows               []ResultRow `json:"rows"`
	Page               int         `json:"page"`
	TotalPages         int         `json:"totalPages"`
	Total              int         `json:"total"`
	Prefecture         string      `json:"prefecture,omitempty"`
	PrefectureResolved bool        `json:"prefectureResolved"`
}

// SearchRequest is a logged user search, kept for admin analytics only.
type SearchRequest struct {
	ID         string    `bson:"id" json:"id"`
	Location   string    `bson:"location" json:"location,omitempty"`
	Prefecture string    `bson:"prefecture" json:"prefecture,omitempty"`
	Services   []string  `bson:"services" json:"services,omitempty"`
	Phone      string    `bson:"phone" json:"phone"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
}

// PackageSelection records that a visitor picked a specific package from a
// specific partner. Write-only from the application's perspective.
type PackageSelection struct {
	ID          string    `bson:"id" json:"id"`
	PartnerID   string    `bson:"partnerId" json:"partnerId"`
	PackageID   string    `bson:"packageId" json:"packageId,omitempty"`
	PackageName string    `bson:"packageName" json:"packageName,omitempty"`
	Price       float64   `bson:"price" json:"price"`
	Phone       string    `bson:"phone" json:"phone"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}
