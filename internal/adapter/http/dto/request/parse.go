package request

import (
	"strings"
	"time"

	"repairdesk/internal/domain/errs"
	"repairdesk/internal/domain/money"

	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// optionalMoney parses a two-decimal amount; an empty string means absent.
func optionalMoney(field, s string) (*decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	d, err := money.Parse(field, s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func moneyOrZero(field, s string) (decimal.Decimal, error) {
	d, err := optionalMoney(field, s)
	if err != nil || d == nil {
		return decimal.Zero, err
	}
	return *d, nil
}

// rate parses tax rates and quantities, which may carry more than two
// fractional digits.
func rate(field, s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}
	return money.ParseDecimal(field, s)
}

// optionalTime accepts RFC 3339 timestamps or plain dates (read as UTC
// midnight).
func optionalTime(field, s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, errs.Validation("request", "%s: %q is not a date", field, s)
	}
	return &t, nil
}
