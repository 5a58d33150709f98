package response

import (
	"testing"
	"time"

	"repairdesk/internal/domain/entities"
)

func TestFromTicket_StatusReachedAt(t *testing.T) {
	at := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	tk := entities.NewTicket("t-1", "TKT-000001", "cust-1", entities.Device{Brand: "Apple"}, "screen", at)

	if r := FromTicket(tk); r.StatusReachedAt == nil || !r.StatusReachedAt.Equal(at) {
		t.Fatalf("intake ticket should report its intake time, got %v", r.StatusReachedAt)
	}

	diagnosed := at.Add(2 * time.Hour)
	tk, err := tk.Advance(entities.TicketStatusDiagnosed, diagnosed)
	if err != nil {
		t.Fatalf("advance: %v", err)
	}
	tk, _ = tk.Advance(entities.TicketStatusInProgress, at.Add(3*time.Hour))
	tk, err = tk.Advance(entities.TicketStatusDiagnosed, at.Add(4*time.Hour))
	if err != nil {
		t.Fatalf("move back: %v", err)
	}

	r := FromTicket(tk)
	if r.StatusReachedAt == nil || !r.StatusReachedAt.Equal(diagnosed) {
		t.Fatalf("moving back keeps the first stamp, got %v", r.StatusReachedAt)
	}
	if r.Status != string(entities.TicketStatusDiagnosed) {
		t.Fatalf("unexpected status %s", r.Status)
	}
}
