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
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Cookie    CookieConfig
	Booking   BookingConfig
	Sweeper   SweeperConfig
	Gateway   GatewayConfig
	Redis     RedisConfig
	Outbox    OutboxConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Ho_Chi_Minh"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,X-Booking-Token"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Location,Retry-After"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Ho_Chi_Minh"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"25200"` // 7*60*60
}

// JWT secret signs guest booking tokens and verifies staff tokens issued by the
// back-office identity service.
type JWTConfig struct {
	Secret        string        `envconfig:"JWT_SECRET" required:"true"`
	StaffDuration time.Duration `envconfig:"JWT_STAFF_DURATION" default:"12h"`
	GuestTokenTTL time.Duration `envconfig:"JWT_GUEST_TOKEN_TTL" default:"720h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"true"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

type BookingConfig struct {
	PaymentWindow time.Duration `envconfig:"BOOKING_PAYMENT_WINDOW" default:"15m"`
	// shown to guests as a warning only; PaymentWindow drives expiry
	HoldWarning   time.Duration `envconfig:"BOOKING_HOLD_WARNING" default:"10m"`
	CheckInGrace  time.Duration `envconfig:"BOOKING_CHECK_IN_GRACE" default:"24h"`
	TimeZone      string        `envconfig:"BOOKING_TIMEZONE" default:"Asia/Ho_Chi_Minh"`
}

type SweeperConfig struct {
	Enabled   bool          `envconfig:"SWEEPER_ENABLED" default:"true"`
	Interval  time.Duration `envconfig:"SWEEPER_INTERVAL" default:"1m"`
	BatchSize int32         `envconfig:"SWEEPER_BATCH_SIZE" default:"100"`
}

type GatewayConfig struct {
	PaymentURL    string `envconfig:"GATEWAY_PAYMENT_URL" default:"https://qr.sepay.vn/img"`
	BankCode      string `envconfig:"GATEWAY_BANK_CODE" default:"MB"`
	AccountNumber string `envconfig:"GATEWAY_ACCOUNT_NUMBER" required:"true"`
	AccountName   string `envconfig:"GATEWAY_ACCOUNT_NAME" default:""`
	ReferencePfx  string `envconfig:"GATEWAY_REFERENCE_PREFIX" default:"HB"`
	WebhookSecret string `envconfig:"GATEWAY_WEBHOOK_SECRET" required:"true"`
}

type RedisConfig struct {
	Enabled  bool   `envconfig:"REDIS_ENABLED" default:"false"`
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
	Stream   string `envconfig:"REDIS_STREAM" default:"booking-events"`
}

type OutboxConfig struct {
	Interval    time.Duration `envconfig:"OUTBOX_INTERVAL" default:"5s"`
	BatchSize   int32         `envconfig:"OUTBOX_BATCH_SIZE" default:"50"`
	MaxAttempts int32         `envconfig:"OUTBOX_MAX_ATTEMPTS" default:"5"`
}

type RateLimitConfig struct {
	GuestRPS   float64 `envconfig:"RATE_LIMIT_GUEST_RPS" default:"2"`
	GuestBurst int     `envconfig:"RATE_LIMIT_GUEST_BURST" default:"10"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

// Location resolves the hotel time zone used to turn instants into stay dates.
func (c *BookingConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// LoadConfig reads an optional .env file before processing the environment.
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

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 20,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		JWT: JWTConfig{
			Secret:        "test-secret",
			StaffDuration: time.Hour,
			GuestTokenTTL: 720 * time.Hour,
		},
		Booking: BookingConfig{
			PaymentWindow: 15 * time.Minute,
			HoldWarning:   10 * time.Minute,
			CheckInGrace:  24 * time.Hour,
			TimeZone:      "UTC",
		},
		Sweeper: SweeperConfig{
			Enabled:   false,
			Interval:  time.Minute,
			BatchSize: 100,
		},
		Gateway: GatewayConfig{
			PaymentURL:    "https://qr.example.test/img",
			BankCode:      "MB",
			AccountNumber: "0001112223",
			AccountName:   "HOTEL TEST",
			ReferencePfx:  "HB",
			WebhookSecret: "webhook-secret",
		},
		Redis: RedisConfig{
			Enabled: false,
			Stream:  "booking-events",
		},
		Outbox: OutboxConfig{
			Interval:    time.Second,
			BatchSize:   50,
			MaxAttempts: 5,
		},
		RateLimit: RateLimitConfig{
			GuestRPS:   100,
			GuestBurst: 100,
		},
	}
}
