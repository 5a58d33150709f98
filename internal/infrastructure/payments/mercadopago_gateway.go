package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"repairdesk/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/rs/zerolog/log"
)

var (
	ErrMissingMercadoPagoAccessToken   = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
	ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
)

// GatewayConfig selects between the live Mercado Pago client and a local
// mock that approves every charge.
type GatewayConfig struct {
	AccessToken string
	Mock        bool
}

// MercadoPagoGateway charges cards through Mercado Pago's payments API.
type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
	now      func() time.Time
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(cfg GatewayConfig) (*MercadoPagoGateway, error) {
	if cfg.Mock {
		log.Warn().Msg("[payment][gateway] mock mode enabled, card charges are not sent to Mercado Pago")
		return &MercadoPagoGateway{mockMode: true, now: time.Now}, nil
	}

	token := strings.TrimSpace(cfg.AccessToken)
	if token == "" {
		log.Error().Msg("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	sdkCfg, err := config.New(token)
	if err != nil {
		log.Error().Err(err).Msg("[payment][gateway] failed creating sdk config")
		return nil, err
	}
	log.Info().Bool("sandbox", strings.HasPrefix(token, "TEST-")).Msg("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(sdkCfg), now: time.Now}, nil
}

func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error) {
	if g != nil && g.mockMode {
		return g.mockCreate(requestPayload)
	}
	if g == nil || g.client == nil {
		log.Error().Msg("[payment][gateway] gateway not configured")
		return "", "", nil, ErrMercadoPagoGatewayNotConfigured
	}

	var req payment.Request
	if err := json.Unmarshal(requestPayload, &req); err != nil {
		log.Warn().Err(err).Msg("[payment][gateway] payload unmarshal failed")
		return "", "", nil, err
	}
	log.Debug().Int("payload_len", len(requestPayload)).Msg("[payment][gateway] create start")

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		log.Warn().Err(err).Msg("[payment][gateway] sdk create failed")
		return "", "", nil, err
	}

	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	id := fmt.Sprintf("%d", resp.ID)
	log.Info().Str("provider_payment_id", id).Str("provider_status", resp.Status).Msg("[payment][gateway] create success")
	return id, resp.Status, b, nil
}

// mockCreate echoes the request back as an approved payment. It leaves
// fee_details out, so the caller's own fee schedule applies.
func (g *MercadoPagoGateway) mockCreate(requestPayload json.RawMessage) (string, string, json.RawMessage, error) {
	resp := map[string]any{}
	if len(requestPayload) > 0 {
		if err := json.Unmarshal(requestPayload, &resp); err != nil || resp == nil {
			resp = map[string]any{"request_payload_raw": string(requestPayload)}
		}
	}

	id := "mock-" + uuid.NewString()
	now := g.now().UTC().Format(time.RFC3339Nano)
	resp["id"] = id
	resp["status"] = "approved"
	resp["status_detail"] = "accredited"
	if _, ok := resp["date_created"]; !ok {
		resp["date_created"] = now
	}
	if _, ok := resp["date_approved"]; !ok {
		resp["date_approved"] = now
	}

	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	log.Info().Str("provider_payment_id", id).Msg("[payment][gateway] mock create approved")
	return id, "approved", b, nil
}
