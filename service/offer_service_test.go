package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arrangement-service/domain"
	"arrangement-service/events"
	"arrangement-service/repository"
)

type recordingPublisher struct {
	Topics []string
	Events []any
}

func (p *recordingPublisher) Publish(topic string, event any) error {
	p.Topics = append(p.Topics, topic)
	p.Events = append(p.Events, event)
	return nil
}

func seedTemplates(repo *repository.MemoryRepository) {
	repo.AddTemplate(domain.Arrangement{
		ID:         "tmpl-installment",
		TenantID:   "acme",
		PlanType:   domain.PlanRange,
		MinBalance: 50000,
		MaxBalance: 500000,
		Terms: domain.InstallmentTerms{
			MonthlyPayment: 33334,
			TermMonths:     3,
			TotalAmount:    100002,
		},
		CreatedAt: time.Now(),
	})
	repo.AddTemplate(domain.Arrangement{
		ID:         "tmpl-settlement",
		TenantID:   "acme",
		PlanType:   domain.PlanSettlement,
		MinBalance: 100000,
		MaxBalance: 1000000,
		Terms: domain.SettlementTerms{
			PayoffAmount:  50000,
			PayoffPercent: 50,
		},
		CreatedAt: time.Now(),
	})
	repo.AddTemplate(domain.Arrangement{
		ID:         "tmpl-small-balances",
		TenantID:   "acme",
		PlanType:   domain.PlanOneTimePayment,
		MinBalance: 0,
		MaxBalance: 49999,
		Terms:      domain.OneTimeTerms{MinimumPayment: 2500},
		CreatedAt:  time.Now(),
	})
}

func newTestOfferService(repo *repository.MemoryRepository, pub events.Publisher) *OfferService {
	return NewOfferService(repo, repo, repo, pub, 0)
}

func TestOffersForBalanceFiltersByRange(t *testing.T) {
	repo := repository.NewMemoryRepository()
	seedTemplates(repo)
	svc := newTestOfferService(repo, events.NoopPublisher{})

	offers, err := svc.OffersForBalance(context.Background(), "acme", 100000)
	require.NoError(t, err)
	require.Len(t, offers, 2)

	assert.Equal(t, "tmpl-installment", offers[0].Arrangement.ID)
	assert.Equal(t, "$333.34 per month", offers[0].Summary.Headline)
	assert.Equal(t, "tmpl-settlement", offers[1].Arrangement.ID)
	assert.Equal(t, "Settle for 50% of balance", offers[1].Summary.Headline)
	assert.Equal(t, "Pay $500.00 to settle", offers[1].Summary.Detail)
}

func TestOffersForBalanceRejectsNegative(t *testing.T) {
	svc := newTestOfferService(repository.NewMemoryRepository(), events.NoopPublisher{})
	_, err := svc.OffersForBalance(context.Background(), "acme", -1)
	assert.Error(t, err)
}

func TestTermOptions(t *testing.T) {
	svc := newTestOfferService(repository.NewMemoryRepository(), events.NoopPublisher{})

	options, err := svc.TermOptions(context.Background(), "", 100000)
	require.NoError(t, err)
	require.Len(t, options, 3)

	assert.Equal(t, 3, options[0].TermMonths)
	assert.Equal(t, domain.Money(33334), options[0].MonthlyPayment)
	assert.Equal(t, domain.Money(100002), options[0].TotalAmount)

	for _, opt := range options {
		assert.GreaterOrEqual(t, opt.TotalAmount, domain.Money(100000),
			"every term fully retires the balance")
	}
}

func TestAcceptRecordsAndPublishes(t *testing.T) {
	repo := repository.NewMemoryRepository()
	seedTemplates(repo)
	pub := &recordingPublisher{}
	svc := newTestOfferService(repo, pub)

	acc, err := svc.Accept(context.Background(), domain.AcceptanceRequest{
		TenantID:      "acme",
		AccountID:     "acct-42",
		ArrangementID: "tmpl-installment",
		BalanceCents:  100000,
		TermMonths:    3,
		Frequency:     domain.FrequencyBiweekly,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, acc.ID)
	assert.Equal(t, domain.Money(33334), acc.MonthlyBase)
	assert.Equal(t, domain.Money(15386), acc.PeriodicAmount)

	saved := repo.Acceptances()
	require.Len(t, saved, 1)
	assert.Equal(t, acc.ID, saved[0].ID)

	require.Len(t, pub.Topics, 1)
	assert.Equal(t, events.TopicArrangementAccepted, pub.Topics[0])
	evt, ok := pub.Events[0].(events.ArrangementAccepted)
	require.True(t, ok)
	assert.Equal(t, acc.ID, evt.AcceptanceID)
	assert.Equal(t, "acct-42", evt.AccountID)
	assert.Equal(t, int64(15386), evt.PeriodicAmountCents)
}

func TestAcceptWithCustomAmount(t *testing.T) {
	repo := repository.NewMemoryRepository()
	seedTemplates(repo)
	svc := newTestOfferService(repo, events.NoopPublisher{})

	acc, err := svc.Accept(context.Background(), domain.AcceptanceRequest{
		TenantID:          "acme",
		AccountID:         "acct-42",
		ArrangementID:     "tmpl-installment",
		BalanceCents:      100000,
		CustomAmountCents: 4000,
		Frequency:         domain.FrequencyMonthly,
	})
	require.NoError(t, err)
	assert.Equal(t, DefaultMinimumMonthlyPayment, acc.MonthlyBase, "floor applies")
}

func TestAcceptUnknownArrangement(t *testing.T) {
	svc := newTestOfferService(repository.NewMemoryRepository(), events.NoopPublisher{})

	_, err := svc.Accept(context.Background(), domain.AcceptanceRequest{
		AccountID:     "acct-42",
		ArrangementID: "missing",
		BalanceCents:  100000,
		TermMonths:    3,
		Frequency:     domain.FrequencyMonthly,
	})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestAcceptRequiresExactlyOneSelection(t *testing.T) {
	repo := repository.NewMemoryRepository()
	seedTemplates(repo)
	pub := &recordingPublisher{}
	svc := newTestOfferService(repo, pub)
	ctx := context.Background()

	// Neither a term nor an amount: nothing may be recorded, least of all a
	// floor-amount plan the consumer never chose.
	_, err := svc.Accept(ctx, domain.AcceptanceRequest{
		TenantID:      "acme",
		AccountID:     "acct-42",
		ArrangementID: "tmpl-installment",
		BalanceCents:  100000,
		Frequency:     domain.FrequencyMonthly,
	})
	assert.Error(t, err)

	// Both at once: ambiguous, rejected rather than guessed.
	_, err = svc.Accept(ctx, domain.AcceptanceRequest{
		TenantID:          "acme",
		AccountID:         "acct-42",
		ArrangementID:     "tmpl-installment",
		BalanceCents:      100000,
		TermMonths:        3,
		CustomAmountCents: 5000,
		Frequency:         domain.FrequencyMonthly,
	})
	assert.Error(t, err)

	assert.Empty(t, repo.Acceptances())
	assert.Empty(t, pub.Topics)
}

func TestAcceptRejectsTermForNonInstallmentPlan(t *testing.T) {
	repo := repository.NewMemoryRepository()
	seedTemplates(repo)
	svc := newTestOfferService(repo, events.NoopPublisher{})
	ctx := context.Background()

	_, err := svc.Accept(ctx, domain.AcceptanceRequest{
		TenantID:      "acme",
		AccountID:     "acct-42",
		ArrangementID: "tmpl-settlement",
		BalanceCents:  100000,
		TermMonths:    3,
		Frequency:     domain.FrequencyMonthly,
	})
	assert.Error(t, err)
	assert.Empty(t, repo.Acceptances())

	// A consumer-chosen amount is still valid on a settlement plan.
	acc, err := svc.Accept(ctx, domain.AcceptanceRequest{
		TenantID:          "acme",
		AccountID:         "acct-42",
		ArrangementID:     "tmpl-settlement",
		BalanceCents:      100000,
		CustomAmountCents: 50000,
		Frequency:         domain.FrequencyMonthly,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.Money(50000), acc.MonthlyBase)
}

func TestAcceptRequiresAccount(t *testing.T) {
	svc := newTestOfferService(repository.NewMemoryRepository(), events.NoopPublisher{})

	_, err := svc.Accept(context.Background(), domain.AcceptanceRequest{
		ArrangementID: "tmpl-installment",
		BalanceCents:  100000,
		TermMonths:    3,
		Frequency:     domain.FrequencyMonthly,
	})
	assert.Error(t, err)
}
