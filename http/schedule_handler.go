package http

import (
	"encoding/json"
	"net/http"
	"time"

	"arrangement-service/domain"
	"arrangement-service/service"
)

type ScheduleHandler struct{}

func NewScheduleHandler() *ScheduleHandler {
	return &ScheduleHandler{}
}

type scheduleRequest struct {
	AmountCents int64  `json:"amount_cents" validate:"gt=0"`
	Frequency   string `json:"frequency" validate:"required,oneof=weekly biweekly monthly"`
	StartDate   string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	Count       int    `json:"count" validate:"omitempty,gte=1,lte=60"`
}

type scheduleResponse struct {
	Entries []scheduleEntryResponse `json:"entries"`
}

// Preview projects upcoming payment dates and amounts. The result is a
// client-side preview only; the authoritative schedule is produced when the
// arrangement is activated.
func (h *ScheduleHandler) Preview(w http.ResponseWriter, r *http.Request) {
	var req scheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var start time.Time
	if req.StartDate != "" {
		parsed, err := time.Parse("2006-01-02", req.StartDate)
		if err != nil {
			http.Error(w, "start_date must be formatted as YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		start = parsed
	}

	entries := service.GenerateSchedule(
		domain.Money(req.AmountCents),
		domain.PaymentFrequency(req.Frequency),
		start,
		req.Count,
	)

	writeJSON(w, http.StatusOK, scheduleResponse{Entries: scheduleToResponse(entries)})
}
