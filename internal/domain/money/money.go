// Package money is the single place where line items, tax and discounts are
// turned into totals. Every engine calls ComputeTotals so rounding happens the
// same way everywhere: half away from zero, two decimal places.
package money

import (
	"repairdesk/internal/domain/errs"

	"github.com/shopspring/decimal"
)

const Scale = 2

// Limits on parsed input. Rounding rescales by 10^exponent, so values outside
// them never reach arithmetic.
const (
	maxExponent      = 12
	minExponent      = -(Scale + 8)
	maxIntegerDigits = 12
)

var (
	one = decimal.NewFromInt(1)
)

// Line is the pricing view of a line item.
type Line struct {
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
}

type Totals struct {
	Subtotal  decimal.Decimal
	Discount  decimal.Decimal
	TaxAmount decimal.Decimal
	Total     decimal.Decimal
}

// Round rounds to cents.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(Scale)
}

// Format renders d as a fixed two-digit decimal string ("0.00", "237.07").
func Format(d decimal.Decimal) string {
	return d.StringFixed(Scale)
}

// CheckBounds rejects values no amount, rate or quantity can take: exponents
// outside [-10, 12] or more than twelve integer digits.
func CheckBounds(field string, d decimal.Decimal) error {
	exp := int(d.Exponent())
	if exp > maxExponent || exp < minExponent || d.NumDigits()+exp > maxIntegerDigits {
		return errs.Validation("money", "%s is out of range", field)
	}
	return nil
}

// ParseDecimal reads any bounded decimal string.
func ParseDecimal(field, s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, errs.Validation("money", "%s: %q is not a decimal", field, s)
	}
	if err := CheckBounds(field, d); err != nil {
		return decimal.Zero, err
	}
	return d, nil
}

// Parse reads a decimal string and rejects more than two fractional digits.
func Parse(field, s string) (decimal.Decimal, error) {
	d, err := ParseDecimal(field, s)
	if err != nil {
		return decimal.Zero, err
	}
	if !d.Equal(Round(d)) {
		return decimal.Zero, errs.Validation("money", "%s: %q has more than %d decimal places", field, s, Scale)
	}
	return d, nil
}

// LineTotal is quantity*unitPrice rounded to cents.
func LineTotal(l Line) decimal.Decimal {
	return Round(l.Quantity.Mul(l.UnitPrice))
}

// ComputeTotals applies discount before tax:
//
//	subtotal  = Σ round(qty*unitPrice)
//	taxAmount = round((subtotal - discount) * taxRate)
//	total     = subtotal - discount + taxAmount
func ComputeTotals(lines []Line, taxRate, discount decimal.Decimal) (Totals, error) {
	if err := ValidateTaxRate(taxRate); err != nil {
		return Totals{}, err
	}
	if discount.IsNegative() {
		return Totals{}, errs.Validation("money", "discount must not be negative")
	}

	subtotal := decimal.Zero
	for i, l := range lines {
		if !l.Quantity.IsPositive() {
			return Totals{}, errs.Validation("money", "item %d: quantity must be greater than zero", i)
		}
		if l.UnitPrice.IsNegative() {
			return Totals{}, errs.Validation("money", "item %d: unit price must not be negative", i)
		}
		subtotal = subtotal.Add(LineTotal(l))
	}
	if discount.GreaterThan(subtotal) {
		return Totals{}, errs.Validation("money", "discount %s exceeds subtotal %s", Format(discount), Format(subtotal))
	}

	discount = Round(discount)
	taxable := subtotal.Sub(discount)
	tax := Round(taxable.Mul(taxRate))
	return Totals{
		Subtotal:  subtotal,
		Discount:  discount,
		TaxAmount: tax,
		Total:     Round(taxable.Add(tax)),
	}, nil
}

func ValidateTaxRate(rate decimal.Decimal) error {
	if rate.IsNegative() || rate.GreaterThan(one) {
		return errs.Validation("money", "tax rate %s must be between 0 and 1", rate.String())
	}
	return nil
}

// Due is max(0, total - paid).
func Due(total, paid decimal.Decimal) decimal.Decimal {
	due := total.Sub(paid)
	if due.IsNegative() {
		return decimal.Zero
	}
	return due
}

// FeeSchedule prices card processing as percent*amount + fixed.
type FeeSchedule struct {
	CardPercent decimal.Decimal
	CardFixed   decimal.Decimal
}

// ProcessorFee is zero for anything but card payments and never exceeds the amount.
func ProcessorFee(cardPayment bool, amount decimal.Decimal, s FeeSchedule) decimal.Decimal {
	if !cardPayment || !amount.IsPositive() {
		return decimal.Zero
	}
	fee := Round(amount.Mul(s.CardPercent).Add(s.CardFixed))
	if fee.IsNegative() {
		return decimal.Zero
	}
	if fee.GreaterThan(amount) {
		return amount
	}
	return fee
}
