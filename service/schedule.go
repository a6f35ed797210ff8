package service

import (
	"time"

	"arrangement-service/domain"
)

// GenerateSchedule projects the next count payments at the given cadence,
// starting at start (now when zero). Every entry carries the same amount; the
// preview models no balance reduction. Deterministic for an explicit start,
// so callers can regenerate it freely.
func GenerateSchedule(amount domain.Money, f domain.PaymentFrequency, start time.Time, count int) []domain.PaymentScheduleEntry {
	if count <= 0 {
		count = DefaultPreviewEntries
	}
	if count > MaxPreviewEntries {
		count = MaxPreviewEntries
	}
	if start.IsZero() {
		start = time.Now()
	}

	step := stepDays(f)
	entries := make([]domain.PaymentScheduleEntry, 0, count)
	date := start
	for i := 0; i < count; i++ {
		entries = append(entries, domain.PaymentScheduleEntry{Date: date, Amount: amount})
		date = date.AddDate(0, 0, step)
	}
	return entries
}

func stepDays(f domain.PaymentFrequency) int {
	switch f {
	case domain.FrequencyWeekly:
		return daysPerWeekStep
	case domain.FrequencyBiweekly:
		return daysPerBiweekStep
	default:
		return daysPerMonthStep
	}
}
