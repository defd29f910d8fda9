package models

import "time"

// BookingStatus is the lifecycle state of a booking record.
type BookingStatus string

const (
	BookingStatusPending    BookingStatus = "pending"
	BookingStatusConfirmed  BookingStatus = "confirmed"
	BookingStatusInProgress BookingStatus = "in_progress"
	BookingStatusCompleted  BookingStatus = "completed"
	BookingStatusCancelled  BookingStatus = "cancelled"
)

// BookingStatuses lists every valid booking status.
var BookingStatuses = []BookingStatus{
	BookingStatusPending,
	BookingStatusConfirmed,
	BookingStatusInProgress,
	BookingStatusCompleted,
	BookingStatusCancelled,
}

// Valid reports whether s is a member of the booking status enum.
func (s BookingStatus) Valid() bool {
	for _, v := range BookingStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// ServiceType identifies the kind of service being booked.
type ServiceType string

const (
	ServiceCleaning         ServiceType = "cleaning"
	ServiceLaundry          ServiceType = "laundry"
	ServiceIroning          ServiceType = "ironing"
	ServiceBusinessCleaning ServiceType = "business_cleaning"
)

// Valid reports whether t is a known service type.
func (t ServiceType) Valid() bool {
	switch t {
	case ServiceCleaning, ServiceLaundry, ServiceIroning, ServiceBusinessCleaning:
		return true
	}
	return false
}

// GeoPoint is an optional GPS position attached to the booking address.
type GeoPoint struct {
	Lat float64 `bson:"lat" json:"lat"`
	Lng float64 `bson:"lng" json:"lng"`
}

// Booking represents a confirmed booking record.
type Booking struct {
	ID          string         `bson:"id" json:"id"`
	UserID      string         `bson:"user_id" json:"userId"`
	ServiceType ServiceType    `bson:"service_type" json:"serviceType"`
	Address     string         `bson:"address" json:"address"`
	HomeType    string         `bson:"home_type,omitempty" json:"homeType,omitempty"`
	HomeSizeM2  int            `bson:"home_size_m2,omitempty" json:"homeSizeM2,omitempty"`
	Date        string         `bson:"date" json:"date"` // "YYYY-MM-DD"
	Time        string         `bson:"time" json:"time"` // "HH:MM"
	Hours       int            `bson:"hours" json:"hours"`
	Tasks       []string       `bson:"tasks" json:"tasks"`
	Details     BookingDetails `bson:"details" json:"details"`
	Location    *GeoPoint      `bson:"location,omitempty" json:"location,omitempty"`
	Status      BookingStatus  `bson:"status" json:"status"`
	TotalPrice  float64        `bson:"total_price" json:"totalPrice"`
	ProviderID  string         `bson:"provider_id,omitempty" json:"providerId,omitempty"`

	// Customer snapshot taken at submission time.
	FirstName string `bson:"first_name" json:"firstName"`
	LastName  string `bson:"last_name" json:"lastName"`
	Email     string `bson:"email" json:"email"`
	Phone     string `bson:"phone" json:"phone"`

	PaymentMethod PaymentMethod `bson:"payment_method,omitempty" json:"paymentMethod,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// ScheduledStart resolves the booking's date and time into a concrete instant.
func (b *Booking) ScheduledStart() (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", b.Date+" "+b.Time, time.Local)
}
