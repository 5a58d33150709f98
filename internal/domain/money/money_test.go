package money

import (
	"errors"
	"testing"

	"repairdesk/internal/domain/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestComputeTotals_Scenario(t *testing.T) {
	lines := []Line{
		{Quantity: d("1"), UnitPrice: d("180.00")},
		{Quantity: d("1"), UnitPrice: d("39.00")},
	}

	totals, err := ComputeTotals(lines, d("0.0825"), decimal.Zero)
	require.NoError(t, err)
	assert.Equal(t, "219.00", Format(totals.Subtotal))
	assert.Equal(t, "18.07", Format(totals.TaxAmount))
	assert.Equal(t, "237.07", Format(totals.Total))
}

func TestComputeTotals_Reconciles(t *testing.T) {
	cases := []struct {
		name     string
		lines    []Line
		tax      string
		discount string
	}{
		{name: "empty", lines: nil, tax: "0.0825", discount: "0"},
		{name: "single", lines: []Line{{Quantity: d("3"), UnitPrice: d("19.99")}}, tax: "0.07", discount: "0"},
		{name: "fractional labor", lines: []Line{{Quantity: d("1.5"), UnitPrice: d("45.33")}}, tax: "0.0825", discount: "0"},
		{
			name: "many with discount",
			lines: []Line{
				{Quantity: d("1"), UnitPrice: d("89.95")},
				{Quantity: d("2"), UnitPrice: d("12.49")},
				{Quantity: d("0.25"), UnitPrice: d("60.00")},
				{Quantity: d("1"), UnitPrice: d("0.00")},
			},
			tax:      "0.0875",
			discount: "10.01",
		},
		{name: "discount equals subtotal", lines: []Line{{Quantity: d("1"), UnitPrice: d("50")}}, tax: "0.2", discount: "50"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			totals, err := ComputeTotals(tc.lines, d(tc.tax), d(tc.discount))
			require.NoError(t, err)

			expected := totals.Subtotal.Sub(totals.Discount).Add(totals.TaxAmount)
			assert.True(t, totals.Total.Equal(expected), "total %s != %s", totals.Total, expected)
			assert.True(t, totals.Total.Equal(Round(totals.Total)))
			if len(tc.lines) == 0 {
				assert.True(t, totals.Subtotal.IsZero())
				assert.True(t, totals.Total.IsZero())
			}
		})
	}
}

func TestComputeTotals_RoundsEachLine(t *testing.T) {
	// 3 * 0.335 = 1.005 -> 1.01 per line, so two lines are 2.02 rather than round(2.01).
	lines := []Line{
		{Quantity: d("3"), UnitPrice: d("0.335")},
		{Quantity: d("3"), UnitPrice: d("0.335")},
	}
	totals, err := ComputeTotals(lines, decimal.Zero, decimal.Zero)
	require.NoError(t, err)
	assert.Equal(t, "2.02", Format(totals.Subtotal))
}

func TestComputeTotals_Rejects(t *testing.T) {
	cases := []struct {
		name     string
		lines    []Line
		tax      string
		discount string
	}{
		{name: "negative quantity", lines: []Line{{Quantity: d("-1"), UnitPrice: d("1")}}, tax: "0", discount: "0"},
		{name: "zero quantity", lines: []Line{{Quantity: d("0"), UnitPrice: d("1")}}, tax: "0", discount: "0"},
		{name: "negative price", lines: []Line{{Quantity: d("1"), UnitPrice: d("-0.01")}}, tax: "0", discount: "0"},
		{name: "tax above one", lines: nil, tax: "1.01", discount: "0"},
		{name: "negative tax", lines: nil, tax: "-0.1", discount: "0"},
		{name: "discount above subtotal", lines: []Line{{Quantity: d("1"), UnitPrice: d("10")}}, tax: "0", discount: "10.01"},
		{name: "negative discount", lines: []Line{{Quantity: d("1"), UnitPrice: d("10")}}, tax: "0", discount: "-1"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ComputeTotals(tc.lines, d(tc.tax), d(tc.discount))
			require.Error(t, err)
			assert.True(t, errors.Is(err, errs.ErrValidation))
		})
	}
}

func TestParse(t *testing.T) {
	v, err := Parse("amount", "237.07")
	require.NoError(t, err)
	assert.Equal(t, "237.07", Format(v))

	_, err = Parse("amount", "1.005")
	assert.True(t, errors.Is(err, errs.ErrValidation))

	_, err = Parse("amount", "abc")
	assert.True(t, errors.Is(err, errs.ErrValidation))
}

func TestParse_OutOfRange(t *testing.T) {
	for _, s := range []string{"1e400000000", "1e-400000000", "-1e13", "1000000000000", "0.00000000001"} {
		t.Run(s, func(t *testing.T) {
			_, err := Parse("amount", s)
			assert.True(t, errors.Is(err, errs.ErrValidation), "got %v", err)
			_, err = ParseDecimal("quantity", s)
			assert.True(t, errors.Is(err, errs.ErrValidation), "got %v", err)
		})
	}

	v, err := Parse("amount", "999999999999.99")
	require.NoError(t, err)
	assert.Equal(t, "999999999999.99", Format(v))

	v, err = Parse("amount", "1e3")
	require.NoError(t, err)
	assert.Equal(t, "1000.00", Format(v))

	r, err := ParseDecimal("tax_rate", "0.0825")
	require.NoError(t, err)
	assert.Equal(t, "0.0825", r.String())
}

func TestDue(t *testing.T) {
	assert.Equal(t, "0.00", Format(Due(d("10"), d("12"))))
	assert.Equal(t, "2.50", Format(Due(d("10"), d("7.5"))))
}

func TestProcessorFee(t *testing.T) {
	s := FeeSchedule{CardPercent: d("0.029"), CardFixed: d("0.30")}

	assert.Equal(t, "0.00", Format(ProcessorFee(false, d("100"), s)))
	assert.Equal(t, "3.20", Format(ProcessorFee(true, d("100"), s)))
	assert.Equal(t, "0.20", Format(ProcessorFee(true, d("0.20"), s)))
}
