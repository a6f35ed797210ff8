package service

import "arrangement-service/domain"

// Normalize enforces the tenant's minimum monthly payment floor. It is total
// and idempotent; callers surface a notice when the floor raised the amount.
func Normalize(requested, minimum domain.Money) domain.Money {
	if requested < minimum {
		return minimum
	}
	return requested
}

// TermPayment computes the steady monthly installment that retires balance
// within termMonths. The division rounds up so payment * termMonths always
// covers the balance; the final installment may be smaller in the
// authoritative server-side schedule. A zero balance yields the floor.
func TermPayment(balance domain.Money, termMonths int, minimum domain.Money) domain.Money {
	return Normalize(BillingRounding.Divide(balance, int64(termMonths)), minimum)
}

// ToFrequency converts the stored monthly base to the requested cadence by
// annualized proration: 12 months against 52 weekly or 26 biweekly periods
// per year. A naive monthly/4 would overcharge weekly payers. Callers must
// pass the monthly base, never an already-converted amount.
func ToFrequency(monthly domain.Money, f domain.PaymentFrequency) domain.Money {
	switch f {
	case domain.FrequencyWeekly:
		return BillingRounding.Scale(monthly, MonthsPerYear, WeeksPerYear)
	case domain.FrequencyBiweekly:
		return BillingRounding.Scale(monthly, MonthsPerYear, BiweeksPerYear)
	default:
		return monthly
	}
}
