package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"arrangement-service/domain"
	"arrangement-service/repository"
)

type QuoteService struct {
	quotes   repository.QuoteRepository
	settings repository.SettingsRepository
	cache    repository.CacheRepository

	// defaultMinimum applies when a tenant has no configured floor.
	defaultMinimum domain.Money
}

// NewQuoteService creates a QuoteService. A zero defaultMinimum falls back to
// DefaultMinimumMonthlyPayment.
func NewQuoteService(
	quotes repository.QuoteRepository,
	settings repository.SettingsRepository,
	cache repository.CacheRepository,
	defaultMinimum domain.Money,
) *QuoteService {
	if defaultMinimum <= 0 {
		defaultMinimum = DefaultMinimumMonthlyPayment
	}
	return &QuoteService{
		quotes:         quotes,
		settings:       settings,
		cache:          cache,
		defaultMinimum: defaultMinimum,
	}
}

// Quote prices a payment plan for a balance: the monthly base from either an
// installment term or a consumer-entered amount, the periodic amount at the
// requested cadence, and a short schedule preview anchored to today.
func (s *QuoteService) Quote(ctx context.Context, input domain.QuoteInput) (domain.Quote, error) {
	if input.BalanceCents < 0 {
		return domain.Quote{}, errors.New("balance cannot be negative")
	}
	if input.BalanceCents > MaxBalanceCents {
		return domain.Quote{}, fmt.Errorf("balance exceeds the maximum of %s", MaxBalanceCents.Format())
	}
	if !input.Frequency.Valid() {
		return domain.Quote{}, fmt.Errorf("invalid payment frequency: %q", input.Frequency)
	}
	if input.CustomAmountCents < 0 {
		return domain.Quote{}, errors.New("custom amount cannot be negative")
	}

	hasTerm := input.TermMonths != 0
	hasCustom := input.CustomAmountCents != 0
	if hasTerm == hasCustom {
		return domain.Quote{}, errors.New("specify either a term or a custom amount, not both")
	}
	if hasTerm && !AllowedTerm(input.TermMonths) {
		return domain.Quote{}, fmt.Errorf("unsupported term: %d months (want 3, 6 or 12)", input.TermMonths)
	}

	minimum := s.minimumFor(ctx, input.TenantID)

	key := quoteCacheKey(input, minimum)
	if cached, ok := s.cache.Get(key); ok {
		var quote domain.Quote
		if err := json.Unmarshal([]byte(cached), &quote); err == nil {
			return quote, nil
		}
	}

	var base domain.Money
	if hasTerm {
		base = BillingRounding.Divide(input.BalanceCents, int64(input.TermMonths))
	} else {
		base = input.CustomAmountCents
	}
	normalized := Normalize(base, minimum)

	quote := domain.Quote{
		ID:             uuid.NewString(),
		MonthlyBase:    normalized,
		Frequency:      input.Frequency,
		PeriodicAmount: ToFrequency(normalized, input.Frequency),
		FloorApplied:   normalized > base,
		CreatedAt:      time.Now(),
	}
	quote.Schedule = GenerateSchedule(quote.PeriodicAmount, quote.Frequency, time.Time{}, DefaultPreviewEntries)

	// Persistence is not critical for quoting
	if err := s.quotes.SaveQuote(ctx, input, quote); err != nil {
		log.Printf("warning: failed to save quote: %v", err)
	}

	if data, err := json.Marshal(quote); err == nil {
		if err := s.cache.Set(key, string(data)); err != nil {
			log.Printf("warning: failed to cache quote: %v", err)
		}
	}

	return quote, nil
}

// minimumFor resolves the tenant's payment floor, falling back to the default
// when the tenant has none configured or the lookup fails.
func (s *QuoteService) minimumFor(ctx context.Context, tenantID string) domain.Money {
	minimum, err := s.settings.MinimumMonthlyPayment(ctx, tenantID)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			log.Printf("warning: failed to load settings for tenant %q: %v", tenantID, err)
		}
		return s.defaultMinimum
	}
	if minimum <= 0 {
		return s.defaultMinimum
	}
	return minimum
}

// quoteCacheKey includes the quote day because schedule previews anchor to
// the day they were generated.
func quoteCacheKey(input domain.QuoteInput, minimum domain.Money) string {
	return fmt.Sprintf("quote:%s:%d:%d:%d:%s:%d:%s",
		input.TenantID, input.BalanceCents, input.TermMonths, input.CustomAmountCents,
		input.Frequency, minimum, time.Now().Format("2006-01-02"))
}
