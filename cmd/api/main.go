package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "repairdesk/docs"
	"repairdesk/internal/adapter/http/handlers"
	"repairdesk/internal/adapter/http/routes"
	"repairdesk/internal/config"
	"repairdesk/internal/usecase"

	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// @title           RepairDesk API
// @version         1.0
// @description     Repair ticket, estimate, invoice, payment and warranty lifecycle backed by DynamoDB.

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	setupLogger(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, err := newStorage(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.StorageBackend).Msg("failed to open storage")
	}

	seq, closeSeq, err := newSequence(ctx, cfg, store)
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.SequenceBackend).Msg("failed to open sequence backend")
	}
	defer closeSeq()

	opts, err := usecaseOptions(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid business configuration")
	}

	gateway := newGateway(cfg)

	ticketUC := usecase.NewTicketUseCase(store.tickets, seq, opts...)
	estimateUC := usecase.NewEstimateUseCase(store.estimates, store.tickets, seq, opts...)
	invoiceUC := usecase.NewInvoiceUseCase(store.invoices, store.tickets, store.estimates, seq, opts...)
	paymentUC := usecase.NewPaymentUseCase(store.payments, store.invoices, gateway, opts...)
	warrantyUC := usecase.NewWarrantyUseCase(store.claims, store.tickets, store.invoices, store.payments, paymentUC, seq, opts...)
	customerUC := usecase.NewCustomerUseCase(store.tickets, store.estimates, store.invoices, store.claims, opts...)

	r := routes.New(cfg, routes.Handlers{
		Ticket:   handlers.NewTicketHandler(ticketUC),
		Estimate: handlers.NewEstimateHandler(estimateUC),
		Invoice:  handlers.NewInvoiceHandler(invoiceUC),
		Payment:  handlers.NewPaymentHandler(paymentUC),
		Warranty: handlers.NewWarrantyHandler(warrantyUC),
		Customer: handlers.NewCustomerHandler(customerUC),
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().
			Int("port", cfg.Port).
			Str("storage", cfg.StorageBackend).
			Str("sequence", cfg.SequenceBackend).
			Str("shop_id", cfg.ShopID).
			Msg("repairdesk listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server exited")
}

// setupLogger writes pretty console output in development and JSON elsewhere.
func setupLogger(cfg *config.Config) {
	zerolog.TimeFieldFormat = time.RFC3339
	if !cfg.IsProduction() {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
}
