package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arrangement-service/domain"
)

func TestMemoryRepositoryListForBalance(t *testing.T) {
	repo := NewMemoryRepository()
	repo.AddTemplate(domain.Arrangement{
		ID: "low", TenantID: "acme", MinBalance: 0, MaxBalance: 49999, CreatedAt: time.Now(),
	})
	repo.AddTemplate(domain.Arrangement{
		ID: "high", TenantID: "acme", MinBalance: 50000, MaxBalance: 500000, CreatedAt: time.Now(),
	})
	repo.AddTemplate(domain.Arrangement{
		ID: "other-tenant", TenantID: "globex", MinBalance: 0, MaxBalance: 500000, CreatedAt: time.Now(),
	})

	matched, err := repo.ListForBalance(context.Background(), "acme", 100000)
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "high", matched[0].ID)

	// empty tenant matches across tenants
	matched, err = repo.ListForBalance(context.Background(), "", 100000)
	require.NoError(t, err)
	assert.Len(t, matched, 2)
}

func TestMemoryRepositoryGetByID(t *testing.T) {
	repo := NewMemoryRepository()
	repo.AddTemplate(domain.Arrangement{ID: "tmpl-1", TenantID: "acme"})

	arr, err := repo.GetByID(context.Background(), "tmpl-1")
	require.NoError(t, err)
	assert.Equal(t, "tmpl-1", arr.ID)

	_, err = repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryRepositorySettings(t *testing.T) {
	repo := NewMemoryRepository()

	_, err := repo.MinimumMonthlyPayment(context.Background(), "acme")
	assert.ErrorIs(t, err, ErrNotFound)

	repo.SetMinimumMonthlyPayment("acme", 10000)
	minimum, err := repo.MinimumMonthlyPayment(context.Background(), "acme")
	require.NoError(t, err)
	assert.Equal(t, domain.Money(10000), minimum)
}
