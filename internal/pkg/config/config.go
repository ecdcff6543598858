// Package config reads service settings from the environment, after an
// optional .env file in the working directory.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/jcmexdev/bookstore-cart/internal/cart-service/domain"
)

type CartService struct {
	ServiceName string
	Port        string

	// RedisAddr empty keeps snapshots and idempotent replies in process.
	RedisAddr   string
	SnapshotTTL time.Duration
	ReplayTTL   time.Duration

	// JournalPath empty disables the mutation journal.
	JournalPath string

	// PromoTablePath empty selects the built-in promo codes.
	PromoTablePath string

	Pricing     domain.PricingConfig
	MaxQuantity int
}

type Gateway struct {
	ServiceName     string
	HTTPAddr        string
	CartServiceAddr string
	RequestTimeout  time.Duration
}

// LoadCartService fails only on values that are present but malformed.
func LoadCartService() (CartService, error) {
	_ = godotenv.Load()

	cfg := CartService{
		ServiceName:    getenv("OTEL_SERVICE_NAME", "cart-service"),
		Port:           getenv("PORT", "9090"),
		RedisAddr:      strings.TrimSpace(getenv("REDIS_ADDR", "")),
		JournalPath:    strings.TrimSpace(getenv("CART_JOURNAL_PATH", "")),
		PromoTablePath: strings.TrimSpace(getenv("PROMO_TABLE_PATH", "")),
		MaxQuantity:    getenvInt("MAX_LINE_QUANTITY", domain.DefaultMaxQuantity),
	}

	var err error
	if cfg.SnapshotTTL, err = getenvDuration("CART_SNAPSHOT_TTL", 30*24*time.Hour); err != nil {
		return CartService{}, err
	}
	if cfg.ReplayTTL, err = getenvDuration("IDEMPOTENCY_TTL", 24*time.Hour); err != nil {
		return CartService{}, err
	}

	def := domain.DefaultPricingConfig()
	if cfg.Pricing.FreeShippingThreshold, err = getenvDecimal("FREE_SHIPPING_THRESHOLD", def.FreeShippingThreshold); err != nil {
		return CartService{}, err
	}
	if cfg.Pricing.StandardShippingFee, err = getenvDecimal("STANDARD_SHIPPING_FEE", def.StandardShippingFee); err != nil {
		return CartService{}, err
	}
	if cfg.Pricing.TaxRate, err = getenvDecimal("TAX_RATE", def.TaxRate); err != nil {
		return CartService{}, err
	}
	if err := cfg.Pricing.Validate(); err != nil {
		return CartService{}, err
	}
	return cfg, nil
}

func LoadGateway() (Gateway, error) {
	_ = godotenv.Load()

	cfg := Gateway{
		ServiceName:     getenv("OTEL_SERVICE_NAME", "api-gateway"),
		HTTPAddr:        getenv("HTTP_ADDR", ":8080"),
		CartServiceAddr: getenv("CART_SERVICE_ADDR", "cart-service:9090"),
	}
	var err error
	if cfg.RequestTimeout, err = getenvDuration("REQUEST_TIMEOUT", 5*time.Second); err != nil {
		return Gateway{}, err
	}
	return cfg, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return def
	}
	return parsed
}

func getenvDuration(key string, def time.Duration) (time.Duration, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	return d, nil
}

func getenvDecimal(key string, def decimal.Decimal) (decimal.Decimal, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def, nil
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("config: %s: %w", key, err)
	}
	return d, nil
}
