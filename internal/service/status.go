package service

import (
	"strings"

	"wedding-registry-backend/internal/model"
)

// MapPaymentStatus converts a Mercado Pago status token to one of the
// canonical sale statuses. Unknown tokens map to pending. This is the single
// mapping used wherever a Mercado Pago status is persisted.
func MapPaymentStatus(status string) string {
	switch strings.ToLower(status) {
	case "approved", "accredited":
		return model.StatusPaid
	case "pending", "in_process", "authorized":
		return model.StatusPending
	case "cancelled", "rejected", "refunded", "charged_back":
		return model.StatusCancelled
	default:
		return model.StatusPending
	}
}
