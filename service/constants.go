package service

import "arrangement-service/domain"

const (
	// DefaultMinimumMonthlyPayment applies when a tenant has not configured
	// a floor ($50).
	DefaultMinimumMonthlyPayment domain.Money = 5000

	// MaxBalanceCents caps quotable balances ($10 million).
	MaxBalanceCents domain.Money = 1_000_000_000

	MonthsPerYear  = 12
	WeeksPerYear   = 52
	BiweeksPerYear = 26

	DefaultPreviewEntries = 4
	MaxPreviewEntries     = 60

	daysPerWeekStep   = 7
	daysPerBiweekStep = 14
	// daysPerMonthStep is a fixed-day approximation of a month; the preview
	// does not track calendar-month boundaries.
	daysPerMonthStep = 30
)

// AllowedTermMonths are the installment terms offered for term plans.
var AllowedTermMonths = []int{3, 6, 12}

// AllowedTerm reports whether term is one of the offered installment terms.
func AllowedTerm(term int) bool {
	for _, t := range AllowedTermMonths {
		if term == t {
			return true
		}
	}
	return false
}
