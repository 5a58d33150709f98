package main

import (
	"context"
	"fmt"

	"repairdesk/internal/adapter/persistence/memory"
	"repairdesk/internal/adapter/persistence/repository"
	"repairdesk/internal/adapter/persistence/sequence"
	"repairdesk/internal/config"
	"repairdesk/internal/domain/entities"
	"repairdesk/internal/domain/money"
	"repairdesk/internal/infrastructure/database"
	"repairdesk/internal/infrastructure/payments"
	"repairdesk/internal/usecase"
	"repairdesk/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
)

type storage struct {
	tickets   interfaces.ITicketRepository
	estimates interfaces.IEstimateRepository
	invoices  interfaces.IInvoiceRepository
	payments  interfaces.IPaymentRepository
	claims    interfaces.IWarrantyClaimRepository

	// mem is set for the memory backend so the sequence can share it.
	mem *memory.Store
}

func newStorage(ctx context.Context, cfg *config.Config) (storage, error) {
	if cfg.StorageBackend == "memory" {
		log.Warn().Msg("[wiring] memory storage backend: data is lost on restart")
		s := memory.NewStore()
		return storage{
			tickets:   s.Tickets(),
			estimates: s.Estimates(),
			invoices:  s.Invoices(),
			payments:  s.Payments(),
			claims:    s.Claims(),
			mem:       s,
		}, nil
	}

	ddb, err := database.NewDynamoDBClient(ctx, *cfg)
	if err != nil {
		return storage{}, err
	}
	t := repository.Tables{
		Tickets:   cfg.TicketsTable,
		Estimates: cfg.EstimatesTable,
		Invoices:  cfg.InvoicesTable,
		Payments:  cfg.PaymentsTable,
		Claims:    cfg.ClaimsTable,
	}
	return storage{
		tickets:   repository.NewTicketDynamoRepository(ddb, t.Tickets),
		estimates: repository.NewEstimateDynamoRepository(ddb, t.Estimates),
		invoices:  repository.NewInvoiceDynamoRepository(ddb, t.Invoices, t.Payments),
		payments:  repository.NewPaymentDynamoRepository(ddb, t.Payments),
		claims:    repository.NewWarrantyClaimDynamoRepository(ddb, t.Claims),
	}, nil
}

func newSequence(ctx context.Context, cfg *config.Config, store storage) (interfaces.ISequenceGenerator, func(), error) {
	if cfg.SequenceBackend == "memory" {
		mem := store.mem
		if mem == nil {
			log.Warn().Msg("[wiring] memory sequences over durable storage: numbers restart with the process")
			mem = memory.NewStore()
		}
		return mem.Sequence(), func() {}, nil
	}
	rdb, err := database.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		return nil, nil, err
	}
	return sequence.NewRedisSequence(rdb), func() {
		if err := rdb.Close(); err != nil {
			log.Warn().Err(err).Msg("[wiring] closing redis")
		}
	}, nil
}

// newGateway returns nil when card payments cannot be charged; the payment
// usecase then refuses CARD with PAYMENT_GATEWAY_NOT_CONFIGURED.
func newGateway(cfg *config.Config) interfaces.IPaymentGateway {
	gw, err := payments.NewMercadoPagoGateway(payments.GatewayConfig{
		AccessToken: cfg.MercadoPagoAccessToken,
		Mock:        cfg.PaymentGatewayMock,
	})
	if err != nil {
		log.Warn().Err(err).Msg("[wiring] Mercado Pago gateway not configured; CARD payments disabled")
		return nil
	}
	return gw
}

func usecaseOptions(cfg *config.Config) ([]usecase.Option, error) {
	percent, err := money.ParseDecimal("CARD_FEE_PERCENT", cfg.CardFeePercent)
	if err != nil || percent.IsNegative() {
		return nil, fmt.Errorf("CARD_FEE_PERCENT must be a non-negative decimal, got %q", cfg.CardFeePercent)
	}
	fixed, err := money.Parse("CARD_FEE_FIXED", cfg.CardFeeFixed)
	if err != nil {
		return nil, err
	}
	base := entities.DefaultWarrantyPolicy()
	if cfg.WarrantyDefaultDays > 0 {
		base.DefaultDays = cfg.WarrantyDefaultDays
	}
	policy, err := entities.ParseWarrantyPolicy(cfg.WarrantyPolicy, base)
	if err != nil {
		return nil, fmt.Errorf("WARRANTY_POLICY: %w", err)
	}
	return []usecase.Option{
		usecase.WithShopID(cfg.ShopID),
		usecase.WithEstimateValidityDays(cfg.EstimateValidityDays),
		usecase.WithInvoiceDueDays(cfg.InvoiceDueDays),
		usecase.WithFeeSchedule(money.FeeSchedule{CardPercent: percent, CardFixed: fixed}),
		usecase.WithWarrantyPolicy(policy),
		usecase.WithSandboxPayer(usecase.SandboxPayer{
			AccessToken: cfg.MercadoPagoAccessToken,
			Email:       cfg.SandboxPayerEmail,
			UserID:      cfg.SandboxPayerUserID,
		}),
	}, nil
}
