package service

import (
	"testing"

	"wedding-registry-backend/internal/model"
)

func TestMapPaymentStatus(t *testing.T) {
	cases := []struct {
		token string
		want  string
	}{
		{"approved", model.StatusPaid},
		{"accredited", model.StatusPaid},
		{"pending", model.StatusPending},
		{"in_process", model.StatusPending},
		{"authorized", model.StatusPending},
		{"cancelled", model.StatusCancelled},
		{"rejected", model.StatusCancelled},
		{"refunded", model.StatusCancelled},
		{"charged_back", model.StatusCancelled},

		// unknown tokens fall back to pending
		{"", model.StatusPending},
		{"something_new", model.StatusPending},
		{"chargeback", model.StatusPending},
	}

	for _, tc := range cases {
		if got := MapPaymentStatus(tc.token); got != tc.want {
			t.Errorf("MapPaymentStatus(%q) = %q, want %q", tc.token, got, tc.want)
		}
	}
}

func TestMapPaymentStatusIsCaseInsensitive(t *testing.T) {
	if got := MapPaymentStatus("APPROVED"); got != model.StatusPaid {
		t.Errorf("MapPaymentStatus(APPROVED) = %q, want %q", got, model.StatusPaid)
	}
	if got := MapPaymentStatus("Charged_Back"); got != model.StatusCancelled {
		t.Errorf("MapPaymentStatus(Charged_Back) = %q, want %q", got, model.StatusCancelled)
	}
}
