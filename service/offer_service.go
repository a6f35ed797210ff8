package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"arrangement-service/domain"
	"arrangement-service/events"
	"arrangement-service/repository"
)

type OfferService struct {
	templates   repository.TemplateRepository
	acceptances repository.AcceptanceRepository
	settings    repository.SettingsRepository
	publisher   events.Publisher

	defaultMinimum domain.Money
}

func NewOfferService(
	templates repository.TemplateRepository,
	acceptances repository.AcceptanceRepository,
	settings repository.SettingsRepository,
	publisher events.Publisher,
	defaultMinimum domain.Money,
) *OfferService {
	if defaultMinimum <= 0 {
		defaultMinimum = DefaultMinimumMonthlyPayment
	}
	return &OfferService{
		templates:      templates,
		acceptances:    acceptances,
		settings:       settings,
		publisher:      publisher,
		defaultMinimum: defaultMinimum,
	}
}

// OffersForBalance lists the arrangement templates whose balance range covers
// the account's balance, each with its resolved summary.
func (s *OfferService) OffersForBalance(ctx context.Context, tenantID string, balance domain.Money) ([]domain.Offer, error) {
	if balance < 0 {
		return nil, errors.New("balance cannot be negative")
	}

	templates, err := s.templates.ListForBalance(ctx, tenantID, balance)
	if err != nil {
		return nil, err
	}

	offers := make([]domain.Offer, 0, len(templates))
	for _, arr := range templates {
		offers = append(offers, domain.Offer{
			Arrangement: arr,
			Summary:     Summarize(arr, balance),
		})
	}
	return offers, nil
}

// TermOptions quotes every offered installment term against a balance, so a
// consumer can compare 3, 6 and 12 month plans side by side.
func (s *OfferService) TermOptions(ctx context.Context, tenantID string, balance domain.Money) ([]domain.TermOption, error) {
	if balance < 0 {
		return nil, errors.New("balance cannot be negative")
	}
	if balance > MaxBalanceCents {
		return nil, fmt.Errorf("balance exceeds the maximum of %s", MaxBalanceCents.Format())
	}

	minimum := s.minimumFor(ctx, tenantID)

	options := make([]domain.TermOption, 0, len(AllowedTermMonths))
	for _, term := range AllowedTermMonths {
		monthly := TermPayment(balance, term, minimum)
		options = append(options, domain.TermOption{
			TermMonths:     term,
			MonthlyPayment: monthly,
			TotalAmount:    monthly * domain.Money(term),
		})
	}
	return options, nil
}

// Accept records a consumer's commitment to an arrangement and publishes an
// acceptance event. The selection is rebuilt server-side from the balance and
// the chosen term or amount; client-computed figures are never trusted.
func (s *OfferService) Accept(ctx context.Context, req domain.AcceptanceRequest) (domain.Acceptance, error) {
	if req.AccountID == "" {
		return domain.Acceptance{}, errors.New("account id is required")
	}
	if req.BalanceCents < 0 {
		return domain.Acceptance{}, errors.New("balance cannot be negative")
	}
	if req.CustomAmountCents < 0 {
		return domain.Acceptance{}, errors.New("custom amount cannot be negative")
	}

	hasTerm := req.TermMonths != 0
	hasCustom := req.CustomAmountCents != 0
	if hasTerm == hasCustom {
		return domain.Acceptance{}, errors.New("specify either a term or a custom amount, not both")
	}

	arr, err := s.templates.GetByID(ctx, req.ArrangementID)
	if err != nil {
		return domain.Acceptance{}, err
	}
	if hasTerm && !arr.PlanType.Installment() {
		return domain.Acceptance{}, fmt.Errorf("term selections apply to installment plans only, not %s", arr.PlanType)
	}

	minimum := s.minimumFor(ctx, req.TenantID)

	sel := NewPlanSelection()
	if hasTerm {
		sel, err = sel.WithTerm(req.BalanceCents, req.TermMonths, minimum)
		if err != nil {
			return domain.Acceptance{}, err
		}
	} else {
		sel = sel.WithCustomAmount(req.CustomAmountCents, minimum)
	}
	sel, err = sel.WithFrequency(req.Frequency)
	if err != nil {
		return domain.Acceptance{}, err
	}

	acc := domain.Acceptance{
		ID:             uuid.NewString(),
		TenantID:       req.TenantID,
		AccountID:      req.AccountID,
		ArrangementID:  arr.ID,
		MonthlyBase:    sel.MonthlyBase,
		Frequency:      sel.Frequency,
		PeriodicAmount: sel.PeriodicAmount(),
		AcceptedAt:     time.Now(),
	}

	if err := s.acceptances.SaveAcceptance(ctx, acc); err != nil {
		return domain.Acceptance{}, err
	}

	// Delivery is at-least-once downstream; a failed publish must not undo a
	// recorded acceptance
	if err := s.publisher.Publish(events.TopicArrangementAccepted, events.NewArrangementAccepted(acc)); err != nil {
		log.Printf("warning: failed to publish acceptance event: %v", err)
	}

	return acc, nil
}

func (s *OfferService) minimumFor(ctx context.Context, tenantID string) domain.Money {
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
