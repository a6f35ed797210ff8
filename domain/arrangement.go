package domain

import "time"

// PlanType is the billing strategy category of an arrangement. It determines
// which Terms variant is meaningful.
type PlanType string

const (
	PlanRange          PlanType = "range"
	PlanFixedMonthly   PlanType = "fixed_monthly"
	PlanPayInFull      PlanType = "pay_in_full"
	PlanSettlement     PlanType = "settlement"
	PlanOneTimePayment PlanType = "one_time_payment"
	PlanCustomTerms    PlanType = "custom_terms"
)

// Installment reports whether the plan is billed as recurring installments,
// so a term or recurring-amount selection is meaningful for it.
func (p PlanType) Installment() bool {
	return p == PlanRange || p == PlanFixedMonthly
}

func (p PlanType) Valid() bool {
	switch p {
	case PlanRange, PlanFixedMonthly, PlanPayInFull, PlanSettlement,
		PlanOneTimePayment, PlanCustomTerms:
		return true
	}
	return false
}

// PaymentFrequency is the cadence a monthly base amount is converted to.
type PaymentFrequency string

const (
	FrequencyWeekly   PaymentFrequency = "weekly"
	FrequencyBiweekly PaymentFrequency = "biweekly"
	FrequencyMonthly  PaymentFrequency = "monthly"
)

func (f PaymentFrequency) Valid() bool {
	switch f {
	case FrequencyWeekly, FrequencyBiweekly, FrequencyMonthly:
		return true
	}
	return false
}

// Terms holds the plan-type-specific computed fields of an arrangement.
// Exactly one variant applies per plan type; nil means the template was
// stored without computed fields and summaries degrade to a generic one.
type Terms interface {
	isTerms()
}

// InstallmentTerms backs range and fixed_monthly plans.
type InstallmentTerms struct {
	MonthlyPayment Money
	TermMonths     int
	TotalAmount    Money
}

// PayInFullTerms backs pay_in_full plans. PayoffPercent is 0 when the
// template carries no percentage.
type PayInFullTerms struct {
	PayoffAmount  Money
	PayoffPercent int
}

// SettlementTerms backs settlement plans.
type SettlementTerms struct {
	PayoffAmount  Money
	PayoffPercent int
}

// OneTimeTerms backs one_time_payment plans. MinimumPayment is the floor for
// a custom one-time payment.
type OneTimeTerms struct {
	MinimumPayment Money
}

// CustomTerms backs custom_terms plans.
type CustomTerms struct {
	Text string
}

func (InstallmentTerms) isTerms() {}
func (PayInFullTerms) isTerms()   {}
func (SettlementTerms) isTerms()  {}
func (OneTimeTerms) isTerms()     {}
func (CustomTerms) isTerms()      {}

// Arrangement is a payment plan template matched against an account balance.
// Records are created server-side from tenant configuration and are read-only
// here; only the ephemeral PlanSelection changes before submission.
type Arrangement struct {
	ID         string
	TenantID   string
	Name       string
	PlanType   PlanType
	MinBalance Money
	MaxBalance Money
	Terms      Terms
	CreatedAt  time.Time
}

// AppliesTo reports whether the template's balance range covers balance.
func (a Arrangement) AppliesTo(balance Money) bool {
	return balance >= a.MinBalance && balance <= a.MaxBalance
}

// PaymentScheduleEntry is one projected future payment in a preview. Previews
// are never persisted; the authoritative schedule lives server-side.
type PaymentScheduleEntry struct {
	Date   time.Time
	Amount Money
}

// PlanSummary is the consumer-facing headline/detail pair for an arrangement.
type PlanSummary struct {
	Headline string
	Detail   string
}

// Offer is an arrangement template paired with its resolved summary.
type Offer struct {
	Arrangement Arrangement
	Summary     PlanSummary
}

// TermOption is one candidate installment term quoted against a balance.
type TermOption struct {
	TermMonths     int
	MonthlyPayment Money
	TotalAmount    Money
}
