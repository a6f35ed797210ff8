package repository

import (
	"context"
	"errors"

	"arrangement-service/domain"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// TemplateRepository reads tenant-configured arrangement templates.
type TemplateRepository interface {
	ListForBalance(ctx context.Context, tenantID string, balance domain.Money) ([]domain.Arrangement, error)
	GetByID(ctx context.Context, id string) (domain.Arrangement, error)
}

// QuoteRepository persists issued quotes.
type QuoteRepository interface {
	SaveQuote(ctx context.Context, input domain.QuoteInput, quote domain.Quote) error
}

// AcceptanceRepository persists consumer commitments to an arrangement.
type AcceptanceRepository interface {
	SaveAcceptance(ctx context.Context, acceptance domain.Acceptance) error
}

// SettingsRepository reads tenant billing settings. MinimumMonthlyPayment
// returns ErrNotFound when the tenant has no configured floor.
type SettingsRepository interface {
	MinimumMonthlyPayment(ctx context.Context, tenantID string) (domain.Money, error)
}
