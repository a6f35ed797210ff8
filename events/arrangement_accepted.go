package events

import (
	"time"

	"arrangement-service/domain"
)

// ArrangementAccepted is published when a consumer commits to an arrangement.
type ArrangementAccepted struct {
	AcceptanceID        string    `json:"acceptance_id"`
	TenantID            string    `json:"tenant_id"`
	AccountID           string    `json:"account_id"`
	ArrangementID       string    `json:"arrangement_id"`
	MonthlyBaseCents    int64     `json:"monthly_base_cents"`
	Frequency           string    `json:"frequency"`
	PeriodicAmountCents int64     `json:"periodic_amount_cents"`
	AcceptedAt          time.Time `json:"accepted_at"`
}

// NewArrangementAccepted builds the event payload for a recorded acceptance.
func NewArrangementAccepted(acc domain.Acceptance) ArrangementAccepted {
	return ArrangementAccepted{
		AcceptanceID:        acc.ID,
		TenantID:            acc.TenantID,
		AccountID:           acc.AccountID,
		ArrangementID:       acc.ArrangementID,
		MonthlyBaseCents:    int64(acc.MonthlyBase),
		Frequency:           string(acc.Frequency),
		PeriodicAmountCents: int64(acc.PeriodicAmount),
		AcceptedAt:          acc.AcceptedAt,
	}
}
