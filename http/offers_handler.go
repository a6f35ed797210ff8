package http

import (
	"net/http"
	"strconv"

	"arrangement-service/domain"
	"arrangement-service/service"
)

type OffersHandler struct {
	service *service.OfferService
}

func NewOffersHandler(service *service.OfferService) *OffersHandler {
	return &OffersHandler{service: service}
}

type offerResponse struct {
	ArrangementID string `json:"arrangement_id"`
	Name          string `json:"name,omitempty"`
	PlanType      string `json:"plan_type"`
	Headline      string `json:"headline"`
	Detail        string `json:"detail,omitempty"`
}

type offersResponse struct {
	BalanceCents int64           `json:"balance_cents"`
	Offers       []offerResponse `json:"offers"`
}

type termOptionResponse struct {
	TermMonths          int    `json:"term_months"`
	MonthlyPaymentCents int64  `json:"monthly_payment_cents"`
	MonthlyPayment      string `json:"monthly_payment"`
	TotalAmountCents    int64  `json:"total_amount_cents"`
}

// Offers lists the arrangement templates applicable to an account balance,
// each with its consumer-facing summary.
func (h *OffersHandler) Offers(w http.ResponseWriter, r *http.Request) {
	balance, ok := balanceFromQuery(w, r)
	if !ok {
		return
	}
	tenantID := r.URL.Query().Get("tenant_id")

	offers, err := h.service.OffersForBalance(r.Context(), tenantID, balance)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	out := offersResponse{
		BalanceCents: int64(balance),
		Offers:       make([]offerResponse, 0, len(offers)),
	}
	for _, offer := range offers {
		out.Offers = append(out.Offers, offerResponse{
			ArrangementID: offer.Arrangement.ID,
			Name:          offer.Arrangement.Name,
			PlanType:      string(offer.Arrangement.PlanType),
			Headline:      offer.Summary.Headline,
			Detail:        offer.Summary.Detail,
		})
	}

	writeJSON(w, http.StatusOK, out)
}

// TermOptions quotes the offered installment terms against a balance.
func (h *OffersHandler) TermOptions(w http.ResponseWriter, r *http.Request) {
	balance, ok := balanceFromQuery(w, r)
	if !ok {
		return
	}
	tenantID := r.URL.Query().Get("tenant_id")

	options, err := h.service.TermOptions(r.Context(), tenantID, balance)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	out := make([]termOptionResponse, 0, len(options))
	for _, opt := range options {
		out = append(out, termOptionResponse{
			TermMonths:          opt.TermMonths,
			MonthlyPaymentCents: int64(opt.MonthlyPayment),
			MonthlyPayment:      opt.MonthlyPayment.Format(),
			TotalAmountCents:    int64(opt.TotalAmount),
		})
	}

	writeJSON(w, http.StatusOK, out)
}

func balanceFromQuery(w http.ResponseWriter, r *http.Request) (domain.Money, bool) {
	raw := r.URL.Query().Get("balance_cents")
	if raw == "" {
		http.Error(w, "balance_cents is a mandatory field", http.StatusBadRequest)
		return 0, false
	}
	cents, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || cents < 0 {
		http.Error(w, "balance_cents must be a non-negative integer", http.StatusBadRequest)
		return 0, false
	}
	return domain.Money(cents), true
}
