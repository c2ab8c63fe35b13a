package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection,
//   gateway credentials), security settings
// - default: Values common across all environments (timezone, retry policy,
//   timeouts), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
	Gateway GatewayConfig
	Mail    MailConfig
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
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Europe/Warsaw"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Europe/Warsaw"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"3600"` // 1*60*60
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

// GatewayConfig holds the Przelewy24 merchant credentials and the
// reconciliation policy. MerchantID/PosID/CRC/APIKey absence is a fatal
// precondition: the payment initiator refuses to do any network I/O without
// them.
type GatewayConfig struct {
	MerchantID int    `envconfig:"P24_MERCHANT_ID"`
	PosID      int    `envconfig:"P24_POS_ID"`
	CRC        string `envconfig:"P24_CRC"`
	APIKey     string `envconfig:"P24_API_KEY"`
	BaseURL    string `envconfig:"P24_BASE_URL" default:"https://secure.przelewy24.pl"`
	Currency   string `envconfig:"P24_CURRENCY" default:"PLN"`
	ReturnURL  string `envconfig:"P24_RETURN_URL" required:"true"`
	StatusURL  string `envconfig:"P24_STATUS_URL" required:"true"`
	// Minutes the buyer has to complete the hosted checkout.
	TimeLimitMin int `envconfig:"P24_TIME_LIMIT_MIN" default:"15"`
	// Bounded re-poll policy applied when the buyer returns from checkout
	// while the gateway read model is still catching up.
	StatusRecheckAttempts int           `envconfig:"P24_STATUS_RECHECK_ATTEMPTS" default:"1"`
	StatusRecheckDelay    time.Duration `envconfig:"P24_STATUS_RECHECK_DELAY" default:"5s"`
	// Controlled-testing escape hatch only. Never set in production.
	SkipWebhookSignature bool `envconfig:"P24_SKIP_WEBHOOK_SIGNATURE" default:"false"`
}

func (g GatewayConfig) HasCredentials() bool {
	return g.MerchantID != 0 && g.PosID != 0 && g.CRC != "" && g.APIKey != ""
}

type MailConfig struct {
	Host          string `envconfig:"SMTP_HOST" default:"localhost"`
	Port          int    `envconfig:"SMTP_PORT" default:"587"`
	User          string `envconfig:"SMTP_USER"`
	Password      string `envconfig:"SMTP_PASSWORD"`
	From          string `envconfig:"MAIL_FROM" default:"rezerwacje@smakownia.pl"`
	OperatorEmail string `envconfig:"MAIL_OPERATOR" default:"kontakt@smakownia.pl"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
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
			TimeZone: "Europe/Warsaw",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Europe/Warsaw",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 3600,
		},
		Gateway: GatewayConfig{
			MerchantID:            64195,
			PosID:                 64195,
			CRC:                   "d27c3f1b0e14a8c2",
			APIKey:                "test-api-key",
			BaseURL:               "https://sandbox.przelewy24.pl",
			Currency:              "PLN",
			ReturnURL:             "http://localhost:3000/payment-status",
			StatusURL:             "http://localhost:8889/api/payment-webhook",
			TimeLimitMin:          15,
			StatusRecheckAttempts: 1,
			StatusRecheckDelay:    time.Millisecond, // keep tests fast
		},
	}
}
