package http

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"arrangement-service/domain"
	"arrangement-service/service"
)

type QuoteHandler struct {
	service *service.QuoteService
}

func NewQuoteHandler(service *service.QuoteService) *QuoteHandler {
	return &QuoteHandler{service: service}
}

type quoteRequest struct {
	TenantID          string `json:"tenant_id"`
	BalanceCents      int64  `json:"balance_cents" validate:"gte=0"`
	TermMonths        int    `json:"term_months" validate:"omitempty,oneof=3 6 12"`
	CustomAmountCents int64  `json:"custom_amount_cents" validate:"gte=0"`
	Frequency         string `json:"frequency" validate:"required,oneof=weekly biweekly monthly"`
}

type scheduleEntryResponse struct {
	Date        string `json:"date"`
	AmountCents int64  `json:"amount_cents"`
	Amount      string `json:"amount"`
}

type quoteResponse struct {
	QuoteID             string                  `json:"quote_id"`
	MonthlyBaseCents    int64                   `json:"monthly_base_cents"`
	MonthlyBase         string                  `json:"monthly_base"`
	Frequency           string                  `json:"frequency"`
	PeriodicAmountCents int64                   `json:"periodic_amount_cents"`
	PeriodicAmount      string                  `json:"periodic_amount"`
	FloorApplied        bool                    `json:"floor_applied"`
	Schedule            []scheduleEntryResponse `json:"schedule"`
}

func (h *QuoteHandler) Quote(w http.ResponseWriter, r *http.Request) {
	contentType := r.Header.Get("Content-Type")
	if !strings.Contains(contentType, "application/json") {
		http.Error(w, "Content-Type must be application/json", http.StatusUnsupportedMediaType)
		return
	}

	var req quoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	quote, err := h.service.Quote(r.Context(), domain.QuoteInput{
		TenantID:          req.TenantID,
		BalanceCents:      domain.Money(req.BalanceCents),
		TermMonths:        req.TermMonths,
		CustomAmountCents: domain.Money(req.CustomAmountCents),
		Frequency:         domain.PaymentFrequency(req.Frequency),
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, quoteToResponse(quote))
}

func quoteToResponse(q domain.Quote) quoteResponse {
	return quoteResponse{
		QuoteID:             q.ID,
		MonthlyBaseCents:    int64(q.MonthlyBase),
		MonthlyBase:         q.MonthlyBase.Format(),
		Frequency:           string(q.Frequency),
		PeriodicAmountCents: int64(q.PeriodicAmount),
		PeriodicAmount:      q.PeriodicAmount.Format(),
		FloorApplied:        q.FloorApplied,
		Schedule:            scheduleToResponse(q.Schedule),
	}
}

func scheduleToResponse(entries []domain.PaymentScheduleEntry) []scheduleEntryResponse {
	out := make([]scheduleEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, scheduleEntryResponse{
			Date:        e.Date.Format("2006-01-02"),
			AmountCents: int64(e.Amount),
			Amount:      e.Amount.Format(),
		})
	}
	return out
}

// writeJSON encodes into a buffer first so a failed encode never writes a
// partial body after the header.
func writeJSON(w http.ResponseWriter, status int, payload any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		log.Printf("Error encoding response: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("Error writing response: %v", err)
	}
}
