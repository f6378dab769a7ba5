package models

import (
	"time"
)

// Review is a customer review attached to a partner listing.
type Review struct {
	ID      string    `bson:"id" json:"id"`
	Name    string    `bson:"name" json:"name"`
	Rating  float64   `bson:"rating" json:"rating"` // Expected value between 1 and 5.
	Date    time.Time `bson:"date" json:"date"`
	Comment string    `bson:"comment" json:"comment"`
}

// ServicePackage is a named, priced bundle of included services.
type ServicePackage struct {
	ID               string   `bson:"id" json:"id"`
	Name             string   `bson:"name" json:"name"`
	Price            float64  `bson:"price" json:"price"`
	Description      string   `bson:"description" json:"description,omitempty"`
	IncludedServices []string `bson:"includedServices" json:"includedServices"`
}

// AdditionalService is an optional extra a partner offers outside its packages.
type AdditionalService struct {
	ID          string  `bson:"id" json:"id"`
	Name        string  `bson:"name" json:"name"`
	Price       float64 `bson:"price" json:"price"`
	Description string  `bson:"description,omitempty" json:"description,omitempty"`
}

// Partner is a funeral-home directory entry.
// ID is an opaque string at the application layer; the store keeps a numeric
// sequence underneath (see the partner repository).
type Partner struct {
	ID                 string              `bson:"id" json:"id"`
	Name               string              `bson:"name" json:"name"`
	Address            string              `bson:"address" json:"address,omitempty"`
	City               string              `bson:"city" json:"city,omitempty"`
	State              string              `bson:"state" json:"state,omitempty"` // prefecture label
	Zip                string              `bson:"zip" json:"zip,omitempty"`
	Phone              string              `bson:"phone" json:"phone,omitempty"`
	Email              string              `bson:"email" json:"email,omitempty"`
	Website            string              `bson:"website" json:"website,omitempty"`
	Hours              string              `bson:"hours" json:"hours,omitempty"`
	Description        string              `bson:"description" json:"description,omitempty"`
	About              string              `bson:"about" json:"about,omitempty"`
	ImageURL           string              `bson:"imageUrl" json:"imageUrl,omitempty"`
	Rating             float64             `bson:"rating" json:"rating"`
	ReviewCount        int                 `bson:"reviewCount" json:"reviewCount"`
	Featured           bool                `bson:"featured" json:"featured"`
	BasicPrice         float64             `bson:"basicPrice" json:"basicPrice"`
	Services           []string            `bson:"services" json:"services"`
	Packages           []ServicePackage    `bson:"packages" json:"packages"`
	AdditionalServices []AdditionalService `bson:"additionalServices" json:"additionalServices,omitempty"`
	Regions            []string            `bson:"regions" json:"regions"`
	Reviews            []Review            `bson:"reviews" json:"reviews,omitempty"`
	CreatedAt          time.Time           `bson:"createdAt" json:"createdAt,omitzero"`
	UpdatedAt          time.Time           `bson:"updatedAt" json:"updatedAt,omitzero"`
}

// EffectivePrice is the partner's representative price: the lowest package
// price when packages exist, otherwise the basic price.
func (p *Partner) EffectivePrice() float64 {
	if len(p.Packages) == 0 {
		return p.BasicPrice
	}
	min := p.Packages[0].Price
	for _, pkg := range p.Packages[1:] {
		if pkg.Price < min {
			min = pkg.Price
		}
	}
	return min
}

// CheapestPackage returns the lowest-priced package, or nil when the partner
// only advertises a basic price.
func (p *Partner) CheapestPackage() *ServicePackage {
	if len(p.Packages) == 0 {
		return nil
	}
	best := 0
	for i := 1; i < len(p.Packages); i++ {
		if p.Packages[i].Price < p.Packages[best].Price {
			best = i
		}
	}
	pkg := p.Packages[best]
	return &pkg
}

// NormalizeRegions coerces a stored nil regions list to an empty slice so the
// filtering layer never has to distinguish "absent" from "empty".
func (p *Partner) NormalizeRegions() {
	if p.Regions == nil {
		p.Regions = []string{}
	}
}
