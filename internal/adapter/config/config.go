package config

import (
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	Database *Database
	HTTP     *HTTP
	Redis    *Redis
	Gateway  *Gateway
	Checkout *Checkout
	Auth     *Auth
	App      *App
}

const AppModeProduction = "PROD"
const AppModeDevelop = "DEV"

type App struct {
	LogLevel string `env:"LOG_LEVEL"`
	Mode     string
}

type Database struct {
	DSN string `env:"DATABASE_URI"`
}

type HTTP struct {
	HostString string `env:"RUN_ADDRESS"`
}

type Redis struct {
	Addr string `env:"REDIS_ADDRESS"`
}

type Gateway struct {
	HostString string `env:"PAYMENT_GATEWAY_ADDRESS"`
	ClientID   string `env:"PAYMENT_GATEWAY_CLIENT_ID"`
	Secret     string `env:"PAYMENT_GATEWAY_SECRET"`
}

type Checkout struct {
	TTL            time.Duration `env:"CHECKOUT_TTL" envDefault:"15m"`
	ReaperInterval time.Duration `env:"REAPER_INTERVAL" envDefault:"1m"`
}

// Auth carries the symmetric key shared with the accounts service that
// issues the tokens.
type Auth struct {
	TokenKey string `env:"AUTH_TOKEN_KEY"`
}

func NewConfig() (*Config, error) {
	var db Database
	var http HTTP
	var rds Redis
	var gateway Gateway
	var checkout Checkout
	var authc Auth
	var app App

	flag.StringVar(&db.DSN, "d", "", "Database string")
	flag.StringVar(&http.HostString, "a", `localhost:8080`, "HTTP server endpoint")
	flag.StringVar(&rds.Addr, "q", `localhost:6379`, "Redis address for task queues")
	flag.StringVar(&gateway.HostString, "g", "", "Payment gateway address")
	flag.StringVar(&authc.TokenKey, "k", "", "Shared token key (hex)")
	flag.StringVar(&app.LogLevel, "l", `error`, "Log level")
	flag.StringVar(&app.Mode, "m", `DEV`, "PROD / DEV")
	flag.Parse()

	err := env.Parse(&db)
	if err != nil {
		return nil, fmt.Errorf("error parsing env database config: %w", err)
	}
	err = env.Parse(&http)
	if err != nil {
		return nil, fmt.Errorf("error parsing http config: %w", err)
	}
	err = env.Parse(&rds)
	if err != nil {
		return nil, fmt.Errorf("error parsing redis config: %w", err)
	}
	err = env.Parse(&gateway)
	if err != nil {
		return nil, fmt.Errorf("error parsing gateway config: %w", err)
	}
	err = env.Parse(&checkout)
	if err != nil {
		return nil, fmt.Errorf("error parsing checkout config: %w", err)
	}
	err = env.Parse(&authc)
	if err != nil {
		return nil, fmt.Errorf("error parsing auth config: %w", err)
	}
	err = env.Parse(&app)
	if err != nil {
		return nil, fmt.Errorf("error parsing app config: %w", err)
	}

	config := Config{
		Database: &db,
		HTTP:     &http,
		Redis:    &rds,
		Gateway:  &gateway,
		Checkout: &checkout,
		Auth:     &authc,
		App:      &app,
	}

	return &config, nil
}
