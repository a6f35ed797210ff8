package service

import "arrangement-service/domain"

// RoundingPolicy decides how inexact billing divisions resolve.
type RoundingPolicy int

const (
	// RoundUp rounds toward the collector: a periodic amount may overshoot by
	// at most one cent, never undershoot.
	RoundUp RoundingPolicy = iota
	// RoundDown truncates. Not used for billing; kept so the policy is
	// testable against its alternative.
	RoundDown
)

// BillingRounding is the policy applied to every billing division in this
// service.
const BillingRounding = RoundUp

// Divide splits amount into parts equal installments.
func (p RoundingPolicy) Divide(amount domain.Money, parts int64) domain.Money {
	if parts <= 0 {
		return 0
	}
	q := int64(amount) / parts
	if p == RoundUp && int64(amount)%parts != 0 {
		q++
	}
	return domain.Money(q)
}

// Scale multiplies amount by num/den.
func (p RoundingPolicy) Scale(amount domain.Money, num, den int64) domain.Money {
	if den <= 0 {
		return 0
	}
	product := int64(amount) * num
	q := product / den
	if p == RoundUp && product%den != 0 {
		q++
	}
	return domain.Money(q)
}
