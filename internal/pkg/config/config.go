package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
	Cookie  CookieConfig
	O365    O365Config
	Sync    SyncConfig
	Payment PaymentConfig
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
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Europe/Helsinki"`
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
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Europe/Helsinki"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"7200"` // 2*60*60
}

type JWTConfig struct {
	Secret               string `envconfig:"JWT_SECRET" required:"true"`
	AccessTokenDuration  string `envconfig:"JWT_ACCESS_TOKEN_DURATION" default:"15m"`
	RefreshTokenDuration string `envconfig:"JWT_REFRESH_TOKEN_DURATION" default:"720h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

// O365Config holds the Microsoft Graph OAuth2 client configuration.
// Scopes are fixed in code (offline_access, User.Read, Calendars.ReadWrite).
type O365Config struct {
	ClientID       string        `envconfig:"O365_CLIENT_ID" required:"true"`
	ClientSecret   string        `envconfig:"O365_CLIENT_SECRET" required:"true"`
	AuthURL        string        `envconfig:"O365_AUTH_URL" default:"https://login.microsoftonline.com/common/oauth2/v2.0/authorize"`
	TokenURL       string        `envconfig:"O365_TOKEN_URL" default:"https://login.microsoftonline.com/common/oauth2/v2.0/token"`
	CallbackURL    string        `envconfig:"O365_CALLBACK_URL" required:"true"`
	APIBaseURL     string        `envconfig:"O365_API_BASE_URL" default:"https://graph.microsoft.com/v1.0"`
	RequestTimeout time.Duration `envconfig:"O365_REQUEST_TIMEOUT" default:"30s"`
}

type SyncConfig struct {
	// Consecutive failures before the one-shot escalation notification fires.
	FailureThreshold int `envconfig:"O365_SYNC_FAILURE_THRESHOLD" default:"3"`
}

type PaymentConfig struct {
	// Fallback waiting time in hours when neither resource nor unit define one.
	// Value 0 means the setting is not in use.
	RequestedWaitingTime int `envconfig:"PAYMENT_REQUESTED_WAITING_TIME" default:"0"`
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
			TimeZone: "Europe/Helsinki",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Europe/Helsinki",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 7200,
		},
		JWT: JWTConfig{
			Secret:               "test-secret",
			AccessTokenDuration:  "15m",
			RefreshTokenDuration: "720h",
		},
		Cookie: CookieConfig{
			SameSite: "Lax",
		},
		O365: O365Config{
			ClientID:       "test-client",
			ClientSecret:   "test-secret",
			AuthURL:        "https://login.example.test/authorize",
			TokenURL:       "https://login.example.test/token",
			CallbackURL:    "http://localhost:8889/o365/login/callback",
			APIBaseURL:     "https://graph.example.test/v1.0",
			RequestTimeout: 5 * time.Second,
		},
		Sync: SyncConfig{
			FailureThreshold: 3,
		},
	}
}
