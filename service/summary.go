package service

import (
	"fmt"
	"strings"

	"arrangement-service/domain"
)

// Summarize renders the consumer-facing headline/detail pair for an
// arrangement. Missing or mismatched computed terms degrade to a generic
// summary; a partially populated record must still render something rather
// than block the page.
func Summarize(arr domain.Arrangement, balance domain.Money) domain.PlanSummary {
	switch arr.PlanType {
	case domain.PlanRange, domain.PlanFixedMonthly:
		if t, ok := arr.Terms.(domain.InstallmentTerms); ok {
			return domain.PlanSummary{
				Headline: fmt.Sprintf("%s per month", t.MonthlyPayment.Format()),
				Detail:   fmt.Sprintf("%d months • Total: %s", t.TermMonths, t.TotalAmount.Format()),
			}
		}

	case domain.PlanPayInFull:
		if t, ok := arr.Terms.(domain.PayInFullTerms); ok {
			detail := "Full payment"
			if t.PayoffPercent > 0 {
				detail = fmt.Sprintf("%d%% of balance", t.PayoffPercent)
			}
			return domain.PlanSummary{
				Headline: fmt.Sprintf("Pay %s today", t.PayoffAmount.Format()),
				Detail:   detail,
			}
		}

	case domain.PlanSettlement:
		if t, ok := arr.Terms.(domain.SettlementTerms); ok {
			if t.PayoffPercent > 0 {
				return domain.PlanSummary{
					Headline: fmt.Sprintf("Settle for %d%% of balance", t.PayoffPercent),
					Detail:   fmt.Sprintf("Pay %s to settle", t.PayoffAmount.Format()),
				}
			}
			return domain.PlanSummary{
				Headline: fmt.Sprintf("Settle for %s", t.PayoffAmount.Format()),
			}
		}

	case domain.PlanOneTimePayment:
		if t, ok := arr.Terms.(domain.OneTimeTerms); ok {
			return domain.PlanSummary{
				Headline: fmt.Sprintf("Minimum payment: %s", t.MinimumPayment.Format()),
				Detail:   "Make a single payment without setting up a plan",
			}
		}

	case domain.PlanCustomTerms:
		if t, ok := arr.Terms.(domain.CustomTerms); ok && strings.TrimSpace(t.Text) != "" {
			return domain.PlanSummary{Headline: t.Text}
		}
		return domain.PlanSummary{Headline: "Contact us to discuss terms"}
	}

	return genericSummary(balance)
}

func genericSummary(balance domain.Money) domain.PlanSummary {
	return domain.PlanSummary{
		Headline: "Payment plan available",
		Detail:   fmt.Sprintf("Based on your current balance of %s", balance.Format()),
	}
}
