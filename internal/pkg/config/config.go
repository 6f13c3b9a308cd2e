package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between deployments (reservation id, secrets)
// - default: Values shared by every environment (paths, timeouts, pricing defaults)
// -----------------------------------------------------------------------------

type Config struct {
	Authority AuthorityConfig
	Checkout  CheckoutConfig
	Sandbox   SandboxConfig
	RateLimit RateLimitConfig
	Queue     QueueConfig
	CORS      CORSConfig
	Log       LogConfig
}

// AuthorityConfig describes where the reservation authority lives and which
// endpoint serves each request kind.
type AuthorityConfig struct {
	BaseURL         string        `envconfig:"AUTHORITY_BASE_URL" default:"http://localhost:8080"`
	SeatStatusPath  string        `envconfig:"AUTHORITY_SEAT_STATUS_PATH" default:"/update-seat-status"`
	AgeDiscountPath string        `envconfig:"AUTHORITY_AGE_DISCOUNT_PATH" default:"/update-age-discount"`
	CouponPath      string        `envconfig:"AUTHORITY_COUPON_PATH" default:"/apply-coupon"`
	PurchasePath    string        `envconfig:"AUTHORITY_PURCHASE_PATH" default:"/buy"`
	CheckoutPath    string        `envconfig:"AUTHORITY_CHECKOUT_INFO_PATH" default:"/get-checkout-info"`
	OpenPath        string        `envconfig:"AUTHORITY_OPEN_RESERVATION_PATH" default:"/reservations"`
	Timeout         time.Duration `envconfig:"AUTHORITY_TIMEOUT" default:"10s"`
}

// CheckoutConfig drives one checkout session. Without a reservation id the
// client opens a fresh reservation for ProjectionDay.
type CheckoutConfig struct {
	ReservationID      string   `envconfig:"CHECKOUT_RESERVATION_ID"`
	ProjectionDay      string   `envconfig:"CHECKOUT_PROJECTION_DAY"`
	Seats              []string `envconfig:"CHECKOUT_SEATS" default:"A1,A2,A3,A4,A5,A6,B1,B2,B3,B4,B5,B6,C1,C2,C3,C4,C5,C6"`
	AgeDiscountEnabled bool     `envconfig:"CHECKOUT_AGE_DISCOUNT_ENABLED" default:"true"`
}

type SandboxConfig struct {
	Port             string        `envconfig:"SANDBOX_PORT" default:"8080"`
	SeatPriceCents   int64         `envconfig:"SANDBOX_SEAT_PRICE_CENTS" default:"1000"`
	Seats            []string      `envconfig:"SANDBOX_SEATS" default:"A1,A2,A3,A4,A5,A6,B1,B2,B3,B4,B5,B6,C1,C2,C3,C4,C5,C6"`
	DiscountDays     []string      `envconfig:"SANDBOX_DISCOUNT_DAYS"`
	Coupons          []string      `envconfig:"SANDBOX_COUPONS" default:"WELCOME2026:500,CINEFORUM10:1000"`
	JWTSecret        string        `envconfig:"SANDBOX_JWT_SECRET" default:"sandbox-secret-change-me"`
	ReservationTTL   time.Duration `envconfig:"SANDBOX_RESERVATION_TTL" default:"2h"`
	ProjectionLayout string        `envconfig:"SANDBOX_PROJECTION_DAY_LAYOUT" default:"2006-01-02"`
	JanitorInterval  time.Duration `envconfig:"SANDBOX_JANITOR_INTERVAL" default:"1m"`
}

// RateLimitConfig throttles the sandbox per client address. An empty
// RedisAddr disables the limiter.
type RateLimitConfig struct {
	RedisAddr      string        `envconfig:"RATE_LIMIT_REDIS_ADDR"`
	RedisPassword  string        `envconfig:"RATE_LIMIT_REDIS_PASSWORD"`
	RedisDB        int           `envconfig:"RATE_LIMIT_REDIS_DB" default:"0"`
	Capacity       int           `envconfig:"RATE_LIMIT_CAPACITY" default:"60"`
	RefillTokens   int           `envconfig:"RATE_LIMIT_REFILL_TOKENS" default:"1"`
	RefillInterval time.Duration `envconfig:"RATE_LIMIT_REFILL_INTERVAL" default:"1s"`
	KeyPrefix      string        `envconfig:"RATE_LIMIT_KEY_PREFIX" default:"cinema:rl"`
	KeyTTL         time.Duration `envconfig:"RATE_LIMIT_KEY_TTL" default:"10m"`
}

func (c RateLimitConfig) Enabled() bool {
	return c.RedisAddr != ""
}

// QueueConfig points the purchase event dispatcher at a broker. An empty
// AMQPURL makes the dispatcher log events instead of publishing them.
type QueueConfig struct {
	AMQPURL      string        `envconfig:"QUEUE_AMQP_URL"`
	QueueName    string        `envconfig:"QUEUE_NAME" default:"cinema.purchases"`
	PollInterval time.Duration `envconfig:"QUEUE_POLL_INTERVAL" default:"2s"`
	BatchSize    int           `envconfig:"QUEUE_BATCH_SIZE" default:"20"`
	MaxAttempts  int           `envconfig:"QUEUE_MAX_ATTEMPTS" default:"5"`
	RetryDelay   time.Duration `envconfig:"QUEUE_RETRY_DELAY" default:"10s"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,X-Request-ID"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Europe/Rome"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"3600"` // 1*60*60
}

// LoadConfig reads an optional .env file and then the process environment.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env file: %w", err)
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

// Validate checks the settings only the checkout client needs.
func (c CheckoutConfig) Validate() error {
	if c.ReservationID == "" {
		return errors.New("CHECKOUT_RESERVATION_ID is required")
	}
	if len(c.Seats) == 0 {
		return errors.New("CHECKOUT_SEATS must list at least one seat")
	}
	return nil
}

func NewTestConfig() Config {
	return Config{
		Authority: AuthorityConfig{
			BaseURL:         "http://localhost:18080",
			SeatStatusPath:  "/update-seat-status",
			AgeDiscountPath: "/update-age-discount",
			CouponPath:      "/apply-coupon",
			PurchasePath:    "/buy",
			CheckoutPath:    "/get-checkout-info",
			OpenPath:        "/reservations",
			Timeout:         2 * time.Second,
		},
		Checkout: CheckoutConfig{
			ReservationID:      "test-reservation",
			Seats:              []string{"A1", "A2", "A3"},
			AgeDiscountEnabled: true,
		},
		Sandbox: SandboxConfig{
			Port:             "18080",
			SeatPriceCents:   1000,
			Seats:            []string{"A1", "A2", "A3", "B1", "B2", "B3"},
			Coupons:          []string{"WELCOME2026:500", "CINEFORUM10:1000"},
			JWTSecret:        "test-secret",
			ReservationTTL:   time.Hour,
			ProjectionLayout: "2006-01-02",
			JanitorInterval:  time.Minute,
		},
		CORS: CORSConfig{
			AllowOrigins:  []string{"http://localhost:3000"},
			AllowMethods:  []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
			ExposeHeaders: []string{"Content-Length"},
			MaxAge:        12 * time.Hour,
		},
		RateLimit: RateLimitConfig{
			Capacity:       60,
			RefillTokens:   1,
			RefillInterval: time.Second,
			KeyPrefix:      "cinema:rl:test",
			KeyTTL:         time.Minute,
		},
		Queue: QueueConfig{
			QueueName:    "cinema.purchases.test",
			PollInterval: 10 * time.Millisecond,
			BatchSize:    10,
			MaxAttempts:  3,
			RetryDelay:   time.Second,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Europe/Rome",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 3600,
		},
	}
}
