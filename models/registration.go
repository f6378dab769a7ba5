package models

import "time"

// Registration request lifecycle states.
const (
	RegistrationPending  = "pending"
	RegistrationApproved = "approved"
	RegistrationRejected = "rejected"
)

// RegistrationRequest is a pending submission from a prospective partner.
// Requests are reviewed by an admin and never deleted automatically.
type RegistrationRequest struct {
	ID           string    `bson:"id" json:"id"`
	BusinessName string    `bson:"businessName" json:"businessName"`
	OwnerName    string    `bson:"ownerName" json:"ownerName"`
	Email        string    `bson:"email" json:"email"`
	Phone        string    `bson:"phone" json:"phone"`
	Address      string    `bson:"address" json:"address,omitempty"`
	City         string    `bson:"city" json:"city,omitempty"`
	State        string    `bson:"state" json:"state,omitempty"`
	Zip          string    `bson:"zip" json:"zip,omitempty"`
	Website      string    `bson:"website" json:"website,omitempty"`
	ServicesText string    `bson:"servicesText" json:"servicesText,omitempty"`
	Regions      []string  `bson:"regions" json:"regions"`
	Status       string    `bson:"status" json:"status"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
}

// RegistrationSubmission is the public registration form payload.
type RegistrationSubmission struct {
	BusinessName string   `json:"businessName" binding:"required,min=2"`
	OwnerName    string   `json:"ownerName" binding:"required"`
	Email        string   `json:"email" binding:"required,email"`
	Phone        string   `json:"phone" binding:"required"`
	Address      string   `json:"address,omitempty"`
	City         string   `json:"city,omitempty"`
	State        string   `json:"state,omitempty"`
	Zip          string   `json:"zip,omitempty"`
	Website      string   `json:"website,omitempty" binding:"omitempty,url"`
	ServicesText string   `json:"servicesText,omitempty"`
	Regions      []string `json:"regions,omitempty"`
}

// RegistrationEmailPayload is the queued notification sent to the admin
// mailbox when a new registration request is recorded.
type RegistrationEmailPayload struct {
	RequestID    string   `json:"requestId"`
	BusinessName string   `json:"businessName"`
	OwnerName    string   `json:"ownerName"`
	Email        string   `json:"email"`
	Phone        string   `json:"phone"`
	City         string   `json:"city,omitempty"`
	State        string   `json:"state,omitempty"`
	Website      string   `json:"website,omitempty"`
	ServicesText string   `json:"servicesText,omitempty"`
	Regions      []string `json:"regions,omitempty"`
}
