package entities

import (
	"fmt"
	"repairdesk/internal/domain/errs"
	"strconv"
	"strings"
	"time"
)

// WarrantyPolicy maps a repair type to its warranty length in days. A zero
// period means the repair type carries no warranty.
type WarrantyPolicy struct {
	Periods     map[string]int
	DefaultDays int
}

func DefaultWarrantyPolicy() WarrantyPolicy {
	return WarrantyPolicy{
		Periods: map[string]int{
			"screen":        90,
			"battery":       30,
			"charging-port": 60,
			"water-damage":  0,
		},
		DefaultDays: 30,
	}
}

func normalizeRepairType(t string) string {
	return strings.ToLower(strings.TrimSpace(t))
}

func (p WarrantyPolicy) PeriodDays(repairType string) int {
	if days, ok := p.Periods[normalizeRepairType(repairType)]; ok {
		return days
	}
	return p.DefaultDays
}

// Window returns the warranty period and expiry for a ticket, or NotEligible
// when the ticket was never handed back or its repair type has no warranty.
func (p WarrantyPolicy) Window(t Ticket) (days int, expiresAt time.Time, err error) {
	if !t.WarrantyEligible() {
		return 0, time.Time{}, errs.New(errs.KindNotEligible, "warranty_claim", "ticket %s is %s, not picked up", t.TicketNumber, t.Status)
	}
	days = p.PeriodDays(t.RepairType)
	if days <= 0 {
		return 0, time.Time{}, errs.New(errs.KindNotEligible, "warranty_claim", "repair type %q carries no warranty", t.RepairType)
	}
	return days, t.PickedUpAt.AddDate(0, 0, days), nil
}

// ParseWarrantyPolicy reads overrides such as "screen=90,battery=30" on top of base.
func ParseWarrantyPolicy(overrides string, base WarrantyPolicy) (WarrantyPolicy, error) {
	out := WarrantyPolicy{Periods: make(map[string]int, len(base.Periods)), DefaultDays: base.DefaultDays}
	for k, v := range base.Periods {
		out.Periods[k] = v
	}
	for _, pair := range strings.Split(overrides, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		k, v, ok := strings.Cut(pair, "=")
		if !ok {
			return WarrantyPolicy{}, fmt.Errorf("warranty policy entry %q: expected type=days", pair)
		}
		days, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil || days < 0 {
			return WarrantyPolicy{}, fmt.Errorf("warranty policy entry %q: days must be a non-negative integer", pair)
		}
		out.Periods[normalizeRepairType(k)] = days
	}
	return out, nil
}
