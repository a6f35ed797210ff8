package repository

import (
	"context"
	"sync"

	"arrangement-service/domain"
)

// MemoryRepository is an in-memory implementation of the template, quote,
// acceptance and settings repositories. Safe for concurrent use; intended for
// development and tests.
type MemoryRepository struct {
	mu          sync.Mutex
	templates   []domain.Arrangement
	quotes      []domain.Quote
	acceptances []domain.Acceptance
	settings    map[string]domain.Money // tenantID -> minimum monthly payment
}

// NewMemoryRepository creates an empty in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		settings: make(map[string]domain.Money),
	}
}

// AddTemplate registers an arrangement template.
func (r *MemoryRepository) AddTemplate(arr domain.Arrangement) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.templates = append(r.templates, arr)
}

// SetMinimumMonthlyPayment configures a tenant's payment floor.
func (r *MemoryRepository) SetMinimumMonthlyPayment(tenantID string, minimum domain.Money) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.settings[tenantID] = minimum
}

func (r *MemoryRepository) ListForBalance(ctx context.Context, tenantID string, balance domain.Money) ([]domain.Arrangement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matched []domain.Arrangement
	for _, arr := range r.templates {
		if tenantID != "" && arr.TenantID != tenantID {
			continue
		}
		if arr.AppliesTo(balance) {
			matched = append(matched, arr)
		}
	}
	return matched, nil
}

func (r *MemoryRepository) GetByID(ctx context.Context, id string) (domain.Arrangement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, arr := range r.templates {
		if arr.ID == id {
			return arr, nil
		}
	}
	return domain.Arrangement{}, ErrNotFound
}

func (r *MemoryRepository) SaveQuote(ctx context.Context, input domain.QuoteInput, quote domain.Quote) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.quotes = append(r.quotes, quote)
	return nil
}

func (r *MemoryRepository) SaveAcceptance(ctx context.Context, acceptance domain.Acceptance) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.acceptances = append(r.acceptances, acceptance)
	return nil
}

func (r *MemoryRepository) MinimumMonthlyPayment(ctx context.Context, tenantID string) (domain.Money, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	minimum, ok := r.settings[tenantID]
	if !ok {
		return 0, ErrNotFound
	}
	return minimum, nil
}

// Acceptances returns a copy of the recorded acceptances.
func (r *MemoryRepository) Acceptances() []domain.Acceptance {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := make([]domain.Acceptance, len(r.acceptances))
	copy(copied, r.acceptances)
	return copied
}

var (
	_ TemplateRepository   = (*MemoryRepository)(nil)
	_ QuoteRepository      = (*MemoryRepository)(nil)
	_ AcceptanceRepository = (*MemoryRepository)(nil)
	_ SettingsRepository   = (*MemoryRepository)(nil)
)
