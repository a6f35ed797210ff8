package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestScheduleHandler_OK(t *testing.T) {
	handler := NewScheduleHandler()

	body := []byte(`{
		"amount_cents": 15386,
		"frequency": "biweekly",
		"start_date": "2026-03-01",
		"count": 4
	}`)

	req := httptest.NewRequest(http.MethodPost, "/arrangements/schedule-preview", bytes.NewBuffer(body))
	w := httptest.NewRecorder()

	handler.Preview(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var out struct {
		Entries []struct {
			Date        string `json:"date"`
			AmountCents int64  `json:"amount_cents"`
		} `json:"entries"`
	}
	if err := json.NewDecoder(w.Body).Decode(&out); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(out.Entries) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(out.Entries))
	}
	if out.Entries[0].Date != "2026-03-01" {
		t.Errorf("expected first entry on the start date, got %s", out.Entries[0].Date)
	}
	if out.Entries[1].Date != "2026-03-15" {
		t.Errorf("expected 14 day step, got %s", out.Entries[1].Date)
	}
	if out.Entries[0].AmountCents != 15386 {
		t.Errorf("expected amount 15386, got %d", out.Entries[0].AmountCents)
	}
}

func TestScheduleHandler_RejectsBadStartDate(t *testing.T) {
	handler := NewScheduleHandler()

	for _, startDate := range []string{"03/01/2026", "not-a-date"} {
		body := []byte(`{"amount_cents": 5000, "frequency": "weekly", "start_date": "` + startDate + `"}`)
		req := httptest.NewRequest(http.MethodPost, "/arrangements/schedule-preview", bytes.NewBuffer(body))
		w := httptest.NewRecorder()

		handler.Preview(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("start_date %q: expected 400, got %d", startDate, w.Code)
		}
	}
}
