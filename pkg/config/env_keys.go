package config

// EnvPrefix namespaces every environment variable consumed by the service.
const EnvPrefix = "SNEAKHUB"

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

const (
	EnvAppEnv              = "SNEAKHUB_APP_ENV"
	EnvPort                = "SNEAKHUB_APP_PORT"
	EnvRedisURL            = "SNEAKHUB_REDIS_URL"
	EnvCatalogBaseURL      = "SNEAKHUB_CATALOG_BASE_URL"
	EnvCheckoutOrderURL    = "SNEAKHUB_CHECKOUT_ORDER_ENDPOINT"
	EnvPricingPromoCodes   = "SNEAKHUB_PRICING_PROMO_CODES"
	EnvPricingShippingFee  = "SNEAKHUB_PRICING_SHIPPING_FEE"
	EnvPricingTaxRate      = "SNEAKHUB_PRICING_TAX_RATE"
	EnvPricingPromoPercent = "SNEAKHUB_PRICING_PROMO_PERCENT"
)
