package config

import (
	"fmt"
	"log"
	"net/url"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port string `envconfig:"PORT" default:"5000"`

	// Store
	DBDriver     string        `envconfig:"DB_DRIVER" default:"mongo"` // mongo | sqlite
	DBURI        string        `envconfig:"DB_URI"`
	DBUser       string        `envconfig:"DB_USER"`
	DBPass       string        `envconfig:"DB_PASS"`
	DBHost       string        `envconfig:"DB_HOST" default:"cluster0.mongodb.net"`
	DBName       string        `envconfig:"DB_NAME" default:"mobileHut"`
	DBDSN        string        `envconfig:"DB_DSN" default:"mobilehut.db"`
	StoreTimeout time.Duration `envconfig:"STORE_TIMEOUT" default:"10s"`

	// Tokens
	AccessToken string        `envconfig:"ACCESS_TOKEN" required:"true"`
	TokenTTL    time.Duration `envconfig:"TOKEN_TTL" default:"24h"`
	RequireAuth bool          `envconfig:"REQUIRE_AUTH" default:"false"`

	// Payments
	StripeSecretKey string `envconfig:"STRIPE_SECRET_KEY"`
	Currency        string `envconfig:"PAYMENT_CURRENCY" default:"usd"`

	// Events
	AMQPURL        string `envconfig:"AMQP_URL"`
	EventsExchange string `envconfig:"EVENTS_EXCHANGE" default:"mobilehut.events"`

	LogFile string `envconfig:"LOG_FILE"`
}

// Load reads an optional .env file and then the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	log.Printf("[config] PORT=%s DB_DRIVER=%s DB_NAME=%s REQUIRE_AUTH=%t EVENTS=%t LOG_FILE=%s",
		cfg.Port, cfg.DBDriver, cfg.DBName, cfg.RequireAuth, cfg.AMQPURL != "", cfg.LogFile)
	return cfg, nil
}

// MongoURI returns DB_URI when set, otherwise an SRV URI built from the credential parts.
func (c Config) MongoURI() string {
	if c.DBURI != "" {
		return c.DBURI
	}
	u := url.URL{
		Scheme:   "mongodb+srv",
		Host:     c.DBHost,
		Path:     "/",
		RawQuery: "retryWrites=true&w=majority",
	}
	if c.DBUser != "" {
		u.User = url.UserPassword(c.DBUser, c.DBPass)
	}
	return u.String()
}
