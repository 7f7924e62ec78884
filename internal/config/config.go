package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

// Config holds all application configuration
type Config struct {
	Server    ServerConfig    `env:",prefix=SERVER_"`
	Database  DatabaseConfig  `env:",prefix=DB_"`
	Redis     RedisConfig     `env:",prefix=REDIS_"`
	Auth      AuthConfig      `env:",prefix=AUTH_"`
	Kafka     KafkaConfig     `env:",prefix=KAFKA_"`
	RateLimit RateLimitConfig `env:",prefix=RATE_LIMIT_"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port        int    `env:"PORT,default=8080"`
	WebAppURI   string `env:"WEBAPP_URI,default=http://localhost:3000"`
	Environment string `env:"ENVIRONMENT,default=development"`
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string `env:"HOST,required"`
	Port     int    `env:"PORT,default=5432"`
	Username string `env:"USERNAME,required"`
	Password string `env:"PASSWORD,required"`
	Name     string `env:"NAME,required"`
	SSLMode  string `env:"SSL_MODE,default=disable"`
	MaxConns int    `env:"MAX_CONNS,default=25"`
}

// RedisConfig holds session storage settings
type RedisConfig struct {
	Addr     string `env:"ADDR,default=localhost:6379"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB,default=0"`
}

// AuthConfig holds session settings
type AuthConfig struct {
	SessionSecret string        `env:"SESSION_SECRET,required"`
	SessionTTL    time.Duration `env:"SESSION_TTL,default=168h"`
}

// KafkaConfig holds engagement event streaming configuration.
// An empty broker list disables publishing.
type KafkaConfig struct {
	Brokers string `env:"BROKERS"`
	Topic   string `env:"TOPIC,default=engagement-events"`
}

// RateLimitConfig holds per-IP throttling settings
type RateLimitConfig struct {
	TrackingRPS   float64 `env:"TRACKING_RPS,default=5"`
	TrackingBurst int     `env:"TRACKING_BURST,default=20"`
	AuthRPS       float64 `env:"AUTH_RPS,default=1"`
	AuthBurst     int     `env:"AUTH_BURST,default=5"`
}

// Load reads env.local outside production and decodes the environment into a Config.
func Load(ctx context.Context) (*Config, error) {
	if os.Getenv("SERVER_ENVIRONMENT") != "production" {
		if err := godotenv.Load("env.local"); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env.local: %w", err)
		}
	}

	return process(ctx, envconfig.OsLookuper())
}

func process(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("failed to process environment config: %w", err)
	}
	return &cfg, nil
}

// ConnectionString returns a PostgreSQL connection URL
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Username, c.Password, c.Host, c.Port, c.Name, c.SSLMode)
}

// BrokerList splits the comma separated broker setting, dropping blanks.
func (c *KafkaConfig) BrokerList() []string {
	var brokers []string
	for _, b := range strings.Split(c.Brokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

// IsProduction reports whether the server runs with production settings.
func (c *ServerConfig) IsProduction() bool {
	return c.Environment == "production"
}
