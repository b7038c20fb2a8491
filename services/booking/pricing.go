package booking

import "apexcare/models"

// DefaultPlatformFee is charged on top of the consultation fee. The
// effective value comes from configuration; this is the fallback.
const DefaultPlatformFee = 5

// ComputeFees builds the charge breakdown for a booking.
func ComputeFees(consultationFee, platformFee int) models.FeeBreakdown {
	return models.FeeBreakdown{
		Consultation: consultationFee,
		Platform:     platformFee,
		Total:        consultationFee + platformFee,
	}
}
