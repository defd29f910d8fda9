package models

import "time"

// QuoteStatus is the lifecycle state of a business quote request.
type QuoteStatus string

const (
	QuoteStatusPending   QuoteStatus = "pending"
	QuoteStatusContacted QuoteStatus = "contacted"
	QuoteStatusQuoted    QuoteStatus = "quoted"
	QuoteStatusAccepted  QuoteStatus = "accepted"
	QuoteStatusRejected  QuoteStatus = "rejected"
)

// QuoteStatuses lists every valid quote status.
var QuoteStatuses = []QuoteStatus{
	QuoteStatusPending,
	QuoteStatusContacted,
	QuoteStatusQuoted,
	QuoteStatusAccepted,
	QuoteStatusRejected,
}

// Valid reports whether s is a member of the quote status enum.
func (s QuoteStatus) Valid() bool {
	for _, v := range QuoteStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// QuoteRequest is a business customer's request for a cleaning quote.
type QuoteRequest struct {
	ID          string      `bson:"id" json:"id"`
	CompanyName string      `bson:"company_name" json:"companyName"`
	ContactName string      `bson:"contact_name" json:"contactName"`
	Email       string      `bson:"email" json:"email"`
	Phone       string      `bson:"phone" json:"phone"`
	Address     string      `bson:"address" json:"address"`
	SurfaceM2   int         `bson:"surface_m2" json:"surfaceM2"`
	Frequency   string      `bson:"frequency" json:"frequency"`
	Message     string      `bson:"message,omitempty" json:"message,omitempty"`
	Status      QuoteStatus `bson:"status" json:"status"`
	CreatedAt   time.Time   `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time   `bson:"updated_at" json:"updatedAt"`
}
