package domain

import "time"

// QuoteInput is a request to price a payment plan against a balance. Exactly
// one of TermMonths or CustomAmountCents must be set.
type QuoteInput struct {
	TenantID          string
	BalanceCents      Money
	TermMonths        int
	CustomAmountCents Money
	Frequency         PaymentFrequency
}

// Quote is a priced payment plan: the canonical monthly base, the amount per
// period at the requested cadence, and a short schedule preview.
type Quote struct {
	ID             string
	MonthlyBase    Money
	Frequency      PaymentFrequency
	PeriodicAmount Money
	FloorApplied   bool
	Schedule       []PaymentScheduleEntry
	CreatedAt      time.Time
}

// AcceptanceRequest is a consumer's commitment to an arrangement template
// with their chosen term or custom amount and cadence.
type AcceptanceRequest struct {
	TenantID          string
	AccountID         string
	ArrangementID     string
	BalanceCents      Money
	TermMonths        int
	CustomAmountCents Money
	Frequency         PaymentFrequency
}

// Acceptance is a recorded commitment.
type Acceptance struct {
	ID             string
	TenantID       string
	AccountID      string
	ArrangementID  string
	MonthlyBase    Money
	Frequency      PaymentFrequency
	PeriodicAmount Money
	AcceptedAt     time.Time
}
