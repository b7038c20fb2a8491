package models

import "time"

// Invoice statuses.
const (
	InvoicePending     = "pending"
	InvoicePayAtClinic = "pay_at_clinic"
)

// Invoice records the charge raised for a confirmed booking. When Stripe
// is configured a PaymentIntent is attached; otherwise the invoice is
// settled at the clinic.
type Invoice struct {
	InvoiceID       string    `bson:"invoiceId" json:"invoiceId"`
	AppointmentID   string    `bson:"appointmentId" json:"appointmentId"`
	UserID          string    `bson:"userId" json:"userId"`
	Amount          int       `bson:"amount" json:"amount"` // total in currency units
	Currency        string    `bson:"currency" json:"currency"`
	Status          string    `bson:"status" json:"status"`
	PaymentIntentID string    `bson:"paymentIntentId,omitempty" json:"paymentIntentId,omitempty"`
	ClientSecret    string    `bson:"-" json:"clientSecret,omitempty"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
}
