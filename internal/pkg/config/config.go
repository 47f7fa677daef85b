package config

import (
	"fmt"
	"time"

	"goalkick/internal/pkg/errs"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, secrets)
// - default: Values common across all environments (timezone, timeouts, code format)
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
	Cookie  CookieConfig
	Redis   RedisConfig
	Gateway GatewayConfig
	Ticket  TicketConfig
	Notify  NotifyConfig
	Metrics MetricsConfig
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
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Kathmandu"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
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
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Kathmandu"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"20700"` // 5*60*60 + 45*60
}

type JWTConfig struct {
	Secret   string        `envconfig:"JWT_SECRET" required:"true"`
	Duration time.Duration `envconfig:"JWT_DURATION" default:"12h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite string `envconfig:"COOKIE_SAMESITE" default:"Lax"`
}

type RedisConfig struct {
	URL           string `envconfig:"REDIS_URL" default:""`
	NotifyChannel string `envconfig:"REDIS_NOTIFY_CHANNEL" default:"admin_notifications"`
}

// GatewayMode selects how buyers pay: "merchant" posts a signed form to the
// gateway, "manual" asks the buyer to transfer to a personal wallet and
// submit the transaction reference.
type GatewayConfig struct {
	Mode          string        `envconfig:"GATEWAY_MODE" default:"manual"`
	MerchantCode  string        `envconfig:"ESEWA_MERCHANT_CODE" default:"EPAYTEST"`
	PaymentURL    string        `envconfig:"ESEWA_PAYMENT_URL" default:"https://uat.esewa.com.np/epay/main"`
	VerifyURL     string        `envconfig:"ESEWA_VERIFY_URL" default:"https://uat.esewa.com.np/epay/transrec"`
	SuccessURL    string        `envconfig:"ESEWA_SUCCESS_URL" default:"http://localhost:8080/api/payments/success"`
	FailureURL    string        `envconfig:"ESEWA_FAILURE_URL" default:"http://localhost:8080/api/payments/failure"`
	PersonalID    string        `envconfig:"ESEWA_PERSONAL_ID" default:""`
	VerifyTimeout time.Duration `envconfig:"GATEWAY_VERIFY_TIMEOUT" default:"10s"`
}

type TicketConfig struct {
	CodePrefix      string `envconfig:"TICKET_CODE_PREFIX" default:"NEP"`
	CodeLength      int    `envconfig:"TICKET_CODE_LENGTH" default:"6"`
	CodeMaxAttempts int    `envconfig:"TICKET_CODE_MAX_ATTEMPTS" default:"5"`
}

type NotifyConfig struct {
	QueueSize      int           `envconfig:"NOTIFY_QUEUE_SIZE" default:"256"`
	PublishTimeout time.Duration `envconfig:"NOTIFY_PUBLISH_TIMEOUT" default:"3s"`
	TelegramToken  string        `envconfig:"TELEGRAM_BOT_TOKEN" default:""`
	TelegramChatID int64         `envconfig:"TELEGRAM_CHAT_ID" default:"0"`
}

type MetricsConfig struct {
	Enabled bool `envconfig:"METRICS_ENABLED" default:"true"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c GatewayConfig) IsMerchant() bool {
	return c.Mode == "merchant"
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, errs.Wrap(err, "failed to process env config")
	}
	return cfg, nil
}

// LoadDBConfig reads only the DB_* variables, for tools that do not serve HTTP.
func LoadDBConfig() (DBConfig, error) {
	var cfg DBConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return DBConfig{}, errs.Wrap(err, "failed to process db env config")
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
			TimeZone: "Asia/Kathmandu",
			MaxConns: 10,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Kathmandu",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 20700,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: time.Hour,
		},
		Cookie: CookieConfig{
			SameSite: "Lax",
		},
		Redis: RedisConfig{
			NotifyChannel: "admin_notifications",
		},
		Gateway: GatewayConfig{
			Mode:          "manual",
			MerchantCode:  "EPAYTEST",
			PaymentURL:    "http://localhost/epay/main",
			VerifyURL:     "http://localhost/epay/transrec",
			SuccessURL:    "http://localhost:8889/api/payments/success",
			FailureURL:    "http://localhost:8889/api/payments/failure",
			PersonalID:    "9800000000",
			VerifyTimeout: 2 * time.Second,
		},
		Ticket: TicketConfig{
			CodePrefix:      "NEP",
			CodeLength:      6,
			CodeMaxAttempts: 5,
		},
		Notify: NotifyConfig{
			QueueSize:      16,
			PublishTimeout: time.Second,
		},
	}
}
