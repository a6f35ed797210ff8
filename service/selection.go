package service

import (
	"fmt"
	"time"

	"arrangement-service/domain"
)

// PlanSelection is the ephemeral state a consumer builds before submitting an
// arrangement: the canonical monthly base plus cadence and chosen term. The
// monthly base is the single source of truth; periodic amounts are always
// derived from it, so switching frequency repeatedly cannot accumulate
// rounding drift. Values are immutable; every update returns a new selection.
type PlanSelection struct {
	MonthlyBase domain.Money
	Frequency   domain.PaymentFrequency
	TermMonths  int // 0 when the base came from a custom amount
}

// NewPlanSelection starts at a monthly cadence with no amount chosen.
func NewPlanSelection() PlanSelection {
	return PlanSelection{Frequency: domain.FrequencyMonthly}
}

// WithTerm derives the monthly base from an installment term and sets both
// base and term in one transition.
func (s PlanSelection) WithTerm(balance domain.Money, termMonths int, minimum domain.Money) (PlanSelection, error) {
	if !AllowedTerm(termMonths) {
		return s, fmt.Errorf("unsupported term: %d months", termMonths)
	}
	s.MonthlyBase = TermPayment(balance, termMonths, minimum)
	s.TermMonths = termMonths
	return s, nil
}

// WithCustomAmount sets the monthly base from a consumer-entered amount,
// clearing any chosen term in the same transition.
func (s PlanSelection) WithCustomAmount(amount, minimum domain.Money) PlanSelection {
	s.MonthlyBase = Normalize(amount, minimum)
	s.TermMonths = 0
	return s
}

// WithFrequency changes cadence only. The monthly base is untouched.
func (s PlanSelection) WithFrequency(f domain.PaymentFrequency) (PlanSelection, error) {
	if !f.Valid() {
		return s, fmt.Errorf("invalid payment frequency: %q", f)
	}
	s.Frequency = f
	return s, nil
}

// PeriodicAmount converts the stored monthly base to the selected cadence.
func (s PlanSelection) PeriodicAmount() domain.Money {
	return ToFrequency(s.MonthlyBase, s.Frequency)
}

// Preview projects the next count payments for the current selection.
func (s PlanSelection) Preview(start time.Time, count int) []domain.PaymentScheduleEntry {
	return GenerateSchedule(s.PeriodicAmount(), s.Frequency, start, count)
}
