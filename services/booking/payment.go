package booking

import (
	"context"
	"fmt"
	"time"

	"apexcare/models"

	"github.com/google/uuid"
	stripe "github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// PaymentHandler raises the charge for a confirmed booking.
type PaymentHandler interface {
	RaiseInvoice(ctx context.Context, appointment *models.Appointment) (*models.Invoice, error)
}

// StripePaymentHandler creates a PaymentIntent for the booking total.
// When no Stripe key is configured the invoice falls back to settlement
// at the clinic, so a missing payment setup never blocks bookings.
type StripePaymentHandler struct {
	logger  *zap.Logger
	enabled bool
}

// NewPaymentHandler constructs the payment handler. Pass enabled=false
// when no Stripe key is configured.
func NewPaymentHandler(logger *zap.Logger, enabled bool) *StripePaymentHandler {
	return &StripePaymentHandler{logger: logger, enabled: enabled}
}

func (h *StripePaymentHandler) RaiseInvoice(ctx context.Context, appointment *models.Appointment) (*models.Invoice, error) {
	inv := &models.Invoice{
		InvoiceID:     uuid.New().String(),
		AppointmentID: appointment.ID,
		UserID:        appointment.PatientID,
		Amount:        appointment.Fees.Total,
		Currency:      "usd",
		Status:        models.InvoicePayAtClinic,
		CreatedAt:     time.Now(),
	}

	if !h.enabled {
		return inv, nil
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(appointment.Fees.Total) * 100), // cents
		Currency: stripe.String(string(stripe.CurrencyUSD)),
		Metadata: map[string]string{
			"appointmentId": appointment.ID,
			"doctorId":      fmt.Sprintf("%d", appointment.DoctorID),
		},
	}
	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}

	h.logger.Info("payment intent created",
		zap.String("appointmentId", appointment.ID),
		zap.String("paymentIntentId", pi.ID))

	inv.Status = models.InvoicePending
	inv.PaymentIntentID = pi.ID
	inv.ClientSecret = pi.ClientSecret
	return inv, nil
}
