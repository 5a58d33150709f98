package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	// Server
	Port     int    `mapstructure:"PORT"`
	Env      string `mapstructure:"APP_ENV"` // development | production
	LogLevel string `mapstructure:"LOG_LEVEL"`
	ShopID   string `mapstructure:"SHOP_ID"`

	// Storage
	StorageBackend   string `mapstructure:"STORAGE_BACKEND"` // dynamodb | memory
	AWSRegion        string `mapstructure:"AWS_REGION"`
	AWSAccessKeyID   string `mapstructure:"AWS_ACCESS_KEY_ID"`
	AWSSecretKey     string `mapstructure:"AWS_SECRET_ACCESS_KEY"`
	DynamoDBEndpoint string `mapstructure:"DYNAMODB_ENDPOINT"`
	TicketsTable     string `mapstructure:"TICKETS_TABLE"`
	EstimatesTable   string `mapstructure:"ESTIMATES_TABLE"`
	InvoicesTable    string `mapstructure:"INVOICES_TABLE"`
	PaymentsTable    string `mapstructure:"PAYMENTS_TABLE"`
	ClaimsTable      string `mapstructure:"CLAIMS_TABLE"`

	// Sequences
	SequenceBackend string `mapstructure:"SEQUENCE_BACKEND"` // redis | memory
	RedisURL        string `mapstructure:"REDIS_URL"`

	// Payments
	MercadoPagoAccessToken string `mapstructure:"MERCADOPAGO_ACCESS_TOKEN"`
	PaymentGatewayMock     bool   `mapstructure:"PAYMENT_GATEWAY_MOCK"`
	SandboxPayerEmail      string `mapstructure:"MERCADOPAGO_TEST_PAYER_EMAIL"`
	SandboxPayerUserID     string `mapstructure:"MERCADOPAGO_TEST_PAYER_USER_ID"`
	CardFeePercent         string `mapstructure:"CARD_FEE_PERCENT"`
	CardFeeFixed           string `mapstructure:"CARD_FEE_FIXED"`

	// Business
	EstimateValidityDays int    `mapstructure:"ESTIMATE_VALIDITY_DAYS"`
	InvoiceDueDays       int    `mapstructure:"INVOICE_DUE_DAYS"`
	WarrantyDefaultDays  int    `mapstructure:"WARRANTY_DEFAULT_DAYS"`
	WarrantyPolicy       string `mapstructure:"WARRANTY_POLICY"`
}

var defaults = map[string]any{
	"PORT":                           8080,
	"APP_ENV":                        "development",
	"LOG_LEVEL":                      "info",
	"SHOP_ID":                        "default",
	"STORAGE_BACKEND":                "dynamodb",
	"AWS_REGION":                     "us-east-1",
	"AWS_ACCESS_KEY_ID":              "local",
	"AWS_SECRET_ACCESS_KEY":          "local",
	"DYNAMODB_ENDPOINT":              "",
	"TICKETS_TABLE":                  "tickets",
	"ESTIMATES_TABLE":                "estimates",
	"INVOICES_TABLE":                 "invoices",
	"PAYMENTS_TABLE":                 "payments",
	"CLAIMS_TABLE":                   "warranty_claims",
	"SEQUENCE_BACKEND":               "redis",
	"REDIS_URL":                      "redis://localhost:6379/0",
	"MERCADOPAGO_ACCESS_TOKEN":       "",
	"PAYMENT_GATEWAY_MOCK":           false,
	"MERCADOPAGO_TEST_PAYER_EMAIL":   "",
	"MERCADOPAGO_TEST_PAYER_USER_ID": "",
	"CARD_FEE_PERCENT":               "0.029",
	"CARD_FEE_FIXED":                 "0.30",
	"ESTIMATE_VALIDITY_DAYS":         30,
	"INVOICE_DUE_DAYS":               7,
	"WARRANTY_DEFAULT_DAYS":          30,
	"WARRANTY_POLICY":                "",
}

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AutomaticEnv()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}

	// Optional .env file for local development; a missing file is fine.
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	c.StorageBackend = strings.ToLower(strings.TrimSpace(c.StorageBackend))
	c.SequenceBackend = strings.ToLower(strings.TrimSpace(c.SequenceBackend))
	switch c.StorageBackend {
	case "dynamodb", "memory":
	default:
		return fmt.Errorf("STORAGE_BACKEND must be dynamodb or memory, got %q", c.StorageBackend)
	}
	switch c.SequenceBackend {
	case "redis", "memory":
	default:
		return fmt.Errorf("SEQUENCE_BACKEND must be redis or memory, got %q", c.SequenceBackend)
	}
	if c.Port <= 0 {
		return fmt.Errorf("PORT must be positive, got %d", c.Port)
	}
	if c.EstimateValidityDays <= 0 {
		return fmt.Errorf("ESTIMATE_VALIDITY_DAYS must be positive, got %d", c.EstimateValidityDays)
	}
	if c.InvoiceDueDays <= 0 {
		return fmt.Errorf("INVOICE_DUE_DAYS must be positive, got %d", c.InvoiceDueDays)
	}
	if c.WarrantyDefaultDays < 0 {
		return fmt.Errorf("WARRANTY_DEFAULT_DAYS must not be negative, got %d", c.WarrantyDefaultDays)
	}
	if c.StorageBackend == "dynamodb" {
		for name, table := range map[string]string{
			"TICKETS_TABLE":   c.TicketsTable,
			"ESTIMATES_TABLE": c.EstimatesTable,
			"INVOICES_TABLE":  c.InvoicesTable,
			"PAYMENTS_TABLE":  c.PaymentsTable,
			"CLAIMS_TABLE":    c.ClaimsTable,
		} {
			if strings.TrimSpace(table) == "" {
				return fmt.Errorf("%s is required with the dynamodb backend", name)
			}
		}
	}
	if c.SequenceBackend == "redis" && strings.TrimSpace(c.RedisURL) == "" {
		return fmt.Errorf("REDIS_URL is required with the redis sequence backend")
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}
