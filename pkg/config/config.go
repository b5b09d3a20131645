package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App      AppConfig
	Redis    RedisConfig
	Catalog  CatalogConfig
	Cart     CartConfig
	Pricing  PricingConfig
	Checkout CheckoutConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"SNEAKHUB_APP_ENV" required:"true"`
	Port         string `envconfig:"SNEAKHUB_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"SNEAKHUB_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"SNEAKHUB_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type RedisConfig struct {
	URL          string        `envconfig:"SNEAKHUB_REDIS_URL" required:"true"`
	Address      string        `envconfig:"SNEAKHUB_REDIS_ADDR"`
	Password     string        `envconfig:"SNEAKHUB_REDIS_PASSWORD"`
	DB           int           `envconfig:"SNEAKHUB_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"SNEAKHUB_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"SNEAKHUB_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"SNEAKHUB_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"SNEAKHUB_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"SNEAKHUB_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type CatalogConfig struct {
	BaseURL        string        `envconfig:"SNEAKHUB_CATALOG_BASE_URL" required:"true"`
	RequestTimeout time.Duration `envconfig:"SNEAKHUB_CATALOG_REQUEST_TIMEOUT" default:"10s"`
	DefaultPerPage int           `envconfig:"SNEAKHUB_CATALOG_DEFAULT_PER_PAGE" default:"20"`
}

type CartConfig struct {
	SnapshotTTL time.Duration `envconfig:"SNEAKHUB_CART_SNAPSHOT_TTL" default:"720h"`
	SessionTTL  time.Duration `envconfig:"SNEAKHUB_CART_SESSION_TTL" default:"720h"`
}

type PricingConfig struct {
	ShippingFee           string `envconfig:"SNEAKHUB_PRICING_SHIPPING_FEE" default:"9.99"`
	FreeShippingThreshold string `envconfig:"SNEAKHUB_PRICING_FREE_SHIPPING_THRESHOLD" default:"100"`
	TaxRate               string `envconfig:"SNEAKHUB_PRICING_TAX_RATE" default:"0.08"`
	PromoPercent          string `envconfig:"SNEAKHUB_PRICING_PROMO_PERCENT" default:"0.10"`
	PromoCodes            string `envconfig:"SNEAKHUB_PRICING_PROMO_CODES" default:"FLASH10,SAVE10,FIRST10"`
}

// PromoCodeList splits the configured allow-list into normalized codes.
func (p PricingConfig) PromoCodeList() []string {
	parts := strings.Split(p.PromoCodes, ",")
	codes := make([]string, 0, len(parts))
	for _, part := range parts {
		code := strings.ToUpper(strings.TrimSpace(part))
		if code != "" {
			codes = append(codes, code)
		}
	}
	return codes
}

type CheckoutConfig struct {
	OrderEndpoint  string        `envconfig:"SNEAKHUB_CHECKOUT_ORDER_ENDPOINT" required:"true"`
	RequestTimeout time.Duration `envconfig:"SNEAKHUB_CHECKOUT_REQUEST_TIMEOUT" default:"10s"`
}
