package response

import (
	"repairdesk/internal/domain/money"

	"github.com/shopspring/decimal"
)

func formatMoneyPtr(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := money.Format(*d)
	return &s
}
