package usecase

import (
	"repairdesk/internal/domain/entities"
	"repairdesk/internal/domain/money"
	"time"

	"github.com/shopspring/decimal"
)

// Option tunes a usecase. Every usecase accepts the same set and ignores the
// fields it does not use.
type Option func(*options)

type options struct {
	now                  func() time.Time
	shopID               string
	estimateValidityDays int
	invoiceDueDays       int
	fees                 money.FeeSchedule
	warranty             entities.WarrantyPolicy
	sandboxPayer         SandboxPayer
}

// SandboxPayer fills a payer on Mercado Pago test charges that carry none.
type SandboxPayer struct {
	AccessToken string
	Email       string
	UserID      string
}

func newOptions(opts []Option) options {
	o := options{
		now:                  func() time.Time { return time.Now().UTC() },
		shopID:               "default",
		estimateValidityDays: 30,
		invoiceDueDays:       7,
		fees: money.FeeSchedule{
			CardPercent: decimal.RequireFromString("0.029"),
			CardFixed:   decimal.RequireFromString("0.30"),
		},
		warranty: entities.DefaultWarrantyPolicy(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithClock pins "now"; tests use it to sit exactly on a boundary.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// WithShopID scopes the human-readable number sequences.
func WithShopID(id string) Option {
	return func(o *options) {
		if id != "" {
			o.shopID = id
		}
	}
}

func WithEstimateValidityDays(days int) Option {
	return func(o *options) {
		if days > 0 {
			o.estimateValidityDays = days
		}
	}
}

func WithInvoiceDueDays(days int) Option {
	return func(o *options) {
		if days > 0 {
			o.invoiceDueDays = days
		}
	}
}

func WithFeeSchedule(s money.FeeSchedule) Option {
	return func(o *options) { o.fees = s }
}

func WithWarrantyPolicy(p entities.WarrantyPolicy) Option {
	return func(o *options) { o.warranty = p }
}

func WithSandboxPayer(p SandboxPayer) Option {
	return func(o *options) { o.sandboxPayer = p }
}
