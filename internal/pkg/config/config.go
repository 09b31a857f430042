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
// - optional integrations (Redis, AMQP, Web Push) are disabled when their URL/key is empty
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Cookie    CookieConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	AMQP      AMQPConfig
	Storage   StorageConfig
	Push      PushConfig
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
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Jakarta"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,Idempotency-Key"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,X-RateLimit-Limit,X-RateLimit-Remaining,Retry-After"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Jakarta"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"25200"` // 7*60*60
}

type JWTConfig struct {
	Secret               string `envconfig:"JWT_SECRET" required:"true"`
	AccessTokenDuration  string `envconfig:"JWT_ACCESS_TOKEN_DURATION" default:"15m"`
	RefreshTokenDuration string `envconfig:"JWT_REFRESH_TOKEN_DURATION" default:"168h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"true"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"lax"`
}

type RedisConfig struct {
	URL string `envconfig:"REDIS_URL" default:""`
}

type RateLimitConfig struct {
	// Tokens refilled per second and bucket size, per client IP.
	Rate  float64 `envconfig:"RATE_LIMIT_RATE" default:"1"`
	Burst int     `envconfig:"RATE_LIMIT_BURST" default:"10"`
}

type AMQPConfig struct {
	URL       string `envconfig:"AMQP_URL" default:""`
	Queue     string `envconfig:"AMQP_QUEUE" default:"booking.events"`
	Prefetch  int    `envconfig:"AMQP_PREFETCH" default:"10"`
	QueueSize int    `envconfig:"NOTIFY_QUEUE_SIZE" default:"256"`
	Workers   int    `envconfig:"NOTIFY_WORKERS" default:"2"`
}

type StorageConfig struct {
	PublicBaseURL string `envconfig:"PUBLIC_BASE_URL" default:"http://localhost:8080"`
	MaxProofBytes int    `envconfig:"MAX_PROOF_BYTES" default:"5242880"` // 5 MiB
}

type PushConfig struct {
	VAPIDPublicKey  string        `envconfig:"VAPID_PUBLIC_KEY" default:""`
	VAPIDPrivateKey string        `envconfig:"VAPID_PRIVATE_KEY" default:""`
	Subscriber      string        `envconfig:"VAPID_SUBSCRIBER" default:"admin@studio.local"`
	TTL             time.Duration `envconfig:"PUSH_TTL" default:"24h"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c PushConfig) Enabled() bool {
	return c.VAPIDPublicKey != "" && c.VAPIDPrivateKey != ""
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
			TimeZone: "Asia/Jakarta",
			MaxConns: 10,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Jakarta",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 25200,
		},
		JWT: JWTConfig{
			Secret:               "test-secret-key-for-studio-booking",
			AccessTokenDuration:  "15m",
			RefreshTokenDuration: "168h",
		},
		Cookie: CookieConfig{
			Secure:   false,
			SameSite: "lax",
		},
		RateLimit: RateLimitConfig{
			Rate:  100,
			Burst: 100,
		},
		AMQP: AMQPConfig{
			Queue:     "booking.events",
			Prefetch:  10,
			QueueSize: 64,
			Workers:   1,
		},
		Storage: StorageConfig{
			PublicBaseURL: "http://localhost:8889",
			MaxProofBytes: 1 << 20,
		},
		Push: PushConfig{
			Subscriber: "test@studio.local",
			TTL:        time.Hour,
		},
	}
}
