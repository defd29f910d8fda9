package models

import "time"

// PaymentMethod identifies one of the supported checkout methods.
type PaymentMethod string

const (
	PaymentMethodCard      PaymentMethod = "card"
	PaymentMethodTwint     PaymentMethod = "twint"
	PaymentMethodApplePay  PaymentMethod = "apple_pay"
	PaymentMethodGooglePay PaymentMethod = "google_pay"
)

// Valid reports whether m is a supported payment method.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCard, PaymentMethodTwint, PaymentMethodApplePay, PaymentMethodGooglePay:
		return true
	}
	return false
}

// PaymentState is the per-method sub-flow state.
type PaymentState string

const (
	PaymentStatePending PaymentState = "pending"
	PaymentStateSuccess PaymentState = "success"
	PaymentStateError   PaymentState = "error"
)

// PaymentProgress tracks the payment sub-flow inside a wizard session.
type PaymentProgress struct {
	Method  PaymentMethod `json:"method,omitempty"`
	State   PaymentState  `json:"state,omitempty"`
	Message string        `json:"message,omitempty"`
}

// PaymentRequest describes a single authorization attempt.
type PaymentRequest struct {
	UserID      string
	Amount      float64
	Method      PaymentMethod
	Currency    string
	Idempotency string
	Metadata    map[string]string
	Description string
}

// Invoice records the outcome of a payment authorization.
type Invoice struct {
	InvoiceID string    `bson:"invoice_id" json:"invoiceId"`
	BookingID string    `bson:"booking_id" json:"bookingId"`
	UserID    string    `bson:"user_id" json:"userId"`
	Amount    float64   `bson:"amount" json:"amount"`
	Currency  string    `bson:"currency" json:"currency"`
	Status    string    `bson:"status" json:"status"`
	Method    string    `bson:"method" json:"method"`
	PaymentID string    `bson:"payment_id,omitempty" json:"paymentId,omitempty"`
	Error     string    `bson:"error,omitempty" json:"error,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
