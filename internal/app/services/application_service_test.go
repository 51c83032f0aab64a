package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sykli/college-backend/internal/app/models"
)

func TestTransitionAllowed(t *testing.T) {
	tests := []struct {
		name string
		from models.ApplicationStatus
		to   models.ApplicationStatus
		want bool
	}{
		{"submitted can be accepted", models.ApplicationSubmitted, models.ApplicationAccepted, true},
		{"submitted can be rejected", models.ApplicationSubmitted, models.ApplicationRejected, true},
		{"submitted cannot skip to payment", models.ApplicationSubmitted, models.ApplicationPaymentSubmitted, false},
		{"accepted can record payment", models.ApplicationAccepted, models.ApplicationPaymentSubmitted, true},
		{"accepted can be rejected", models.ApplicationAccepted, models.ApplicationRejected, true},
		{"accepted cannot go back to submitted", models.ApplicationAccepted, models.ApplicationSubmitted, false},
		{"paid can still be rejected", models.ApplicationPaymentSubmitted, models.ApplicationRejected, true},
		{"enrolled is unreachable via status update", models.ApplicationPaymentSubmitted, models.ApplicationEnrolled, false},
		{"rejected is terminal", models.ApplicationRejected, models.ApplicationSubmitted, false},
		{"enrolled is terminal", models.ApplicationEnrolled, models.ApplicationRejected, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, transitionAllowed(tt.from, tt.to))
		})
	}
}
