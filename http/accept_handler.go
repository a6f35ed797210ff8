package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"arrangement-service/domain"
	"arrangement-service/repository"
	"arrangement-service/service"
)

type AcceptHandler struct {
	service *service.OfferService
}

func NewAcceptHandler(service *service.OfferService) *AcceptHandler {
	return &AcceptHandler{service: service}
}

type acceptRequest struct {
	TenantID          string `json:"tenant_id"`
	AccountID         string `json:"account_id" validate:"required"`
	ArrangementID     string `json:"arrangement_id" validate:"required"`
	BalanceCents      int64  `json:"balance_cents" validate:"gte=0"`
	TermMonths        int    `json:"term_months" validate:"omitempty,oneof=3 6 12"`
	CustomAmountCents int64  `json:"custom_amount_cents" validate:"gte=0"`
	Frequency         string `json:"frequency" validate:"required,oneof=weekly biweekly monthly"`
}

type acceptResponse struct {
	AcceptanceID        string `json:"acceptance_id"`
	ArrangementID       string `json:"arrangement_id"`
	MonthlyBaseCents    int64  `json:"monthly_base_cents"`
	Frequency           string `json:"frequency"`
	PeriodicAmountCents int64  `json:"periodic_amount_cents"`
	AcceptedAt          string `json:"accepted_at"`
}

func (h *AcceptHandler) Accept(w http.ResponseWriter, r *http.Request) {
	var req acceptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if (req.TermMonths != 0) == (req.CustomAmountCents != 0) {
		http.Error(w, "specify either a term or a custom amount, not both", http.StatusBadRequest)
		return
	}

	acc, err := h.service.Accept(r.Context(), domain.AcceptanceRequest{
		TenantID:          req.TenantID,
		AccountID:         req.AccountID,
		ArrangementID:     req.ArrangementID,
		BalanceCents:      domain.Money(req.BalanceCents),
		TermMonths:        req.TermMonths,
		CustomAmountCents: domain.Money(req.CustomAmountCents),
		Frequency:         domain.PaymentFrequency(req.Frequency),
	})
	if errors.Is(err, repository.ErrNotFound) {
		http.Error(w, "arrangement not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Printf("Error accepting arrangement: %v", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusCreated, acceptResponse{
		AcceptanceID:        acc.ID,
		ArrangementID:       acc.ArrangementID,
		MonthlyBaseCents:    int64(acc.MonthlyBase),
		Frequency:           string(acc.Frequency),
		PeriodicAmountCents: int64(acc.PeriodicAmount),
		AcceptedAt:          acc.AcceptedAt.Format(time.RFC3339),
	})
}
