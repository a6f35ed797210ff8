package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arrangement-service/domain"
)

func TestPlanSelectionWithTerm(t *testing.T) {
	sel, err := NewPlanSelection().WithTerm(100000, 3, 5000)
	require.NoError(t, err)

	assert.Equal(t, domain.Money(33334), sel.MonthlyBase)
	assert.Equal(t, 3, sel.TermMonths)
	assert.Equal(t, domain.FrequencyMonthly, sel.Frequency)
	assert.Equal(t, domain.Money(33334), sel.PeriodicAmount())
}

func TestPlanSelectionWithTermRejectsUnsupported(t *testing.T) {
	_, err := NewPlanSelection().WithTerm(100000, 5, 5000)
	assert.Error(t, err)
}

func TestPlanSelectionWithCustomAmountClearsTerm(t *testing.T) {
	sel, err := NewPlanSelection().WithTerm(100000, 6, 5000)
	require.NoError(t, err)

	sel = sel.WithCustomAmount(3000, 5000)
	assert.Equal(t, domain.Money(5000), sel.MonthlyBase, "floor applies")
	assert.Equal(t, 0, sel.TermMonths)
}

// Switching cadence back and forth must never change the stored monthly base:
// periodic amounts always derive from the base, so no rounding drift can
// accumulate.
func TestPlanSelectionFrequencySwitchesDoNotDrift(t *testing.T) {
	sel, err := NewPlanSelection().WithTerm(100000, 3, 5000)
	require.NoError(t, err)
	base := sel.MonthlyBase

	sequence := []domain.PaymentFrequency{
		domain.FrequencyWeekly,
		domain.FrequencyBiweekly,
		domain.FrequencyMonthly,
		domain.FrequencyWeekly,
		domain.FrequencyBiweekly,
		domain.FrequencyMonthly,
	}
	for _, f := range sequence {
		sel, err = sel.WithFrequency(f)
		require.NoError(t, err)
		assert.Equal(t, base, sel.MonthlyBase)
		assert.Equal(t, ToFrequency(base, f), sel.PeriodicAmount())
	}

	// Back at monthly the periodic amount equals the original base exactly.
	assert.Equal(t, base, sel.PeriodicAmount())
}

func TestPlanSelectionRejectsInvalidFrequency(t *testing.T) {
	_, err := NewPlanSelection().WithFrequency("quarterly")
	assert.Error(t, err)
}

func TestPlanSelectionPreview(t *testing.T) {
	sel, err := NewPlanSelection().WithTerm(100000, 3, 5000)
	require.NoError(t, err)
	sel, err = sel.WithFrequency(domain.FrequencyBiweekly)
	require.NoError(t, err)

	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	entries := sel.Preview(start, 4)
	require.Len(t, entries, 4)
	assert.Equal(t, domain.Money(15386), entries[0].Amount)
}
