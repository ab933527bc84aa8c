// Package config loads the agent settings: .env file (if present), then
// environment, then flags, later sources winning.
package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// API stores REST gateway settings.
type API struct {
	BaseURL string
	Timeout time.Duration
}

// Broker stores push channel settings. Empty brokers disable the push path.
type Broker struct {
	Brokers             []string
	GroupID             string
	TopicNewOrders      string
	TopicAcceptances    string
	TopicPersonalPrefix string
	ReconnectDelay      time.Duration
}

// Driver stores the local driver session settings.
type Driver struct {
	ID           int64
	Token        string
	RefreshToken string
}

// Refresh stores pull reconciliation settings.
type Refresh struct {
	Interval    time.Duration
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// Config stores the complete agent configuration.
type Config struct {
	Port    int
	API     API
	Broker  Broker
	Driver  Driver
	Refresh Refresh
}

// PersonalTopic returns the driver's personal topic name.
func (c *Config) PersonalTopic() string {
	return c.Broker.TopicPersonalPrefix + strconv.FormatInt(c.Driver.ID, 10)
}

// Load reads configuration in order: .env (if present) → environment → flags.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: .env not loaded: %v", err)
	}

	cfg := &Config{
		Port:    DefaultPort(),
		API:     DefaultAPI(),
		Broker:  DefaultBroker(),
		Refresh: DefaultRefresh(),
	}

	if v := os.Getenv("OPS_PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid OPS_PORT: %q", v)
		}
		cfg.Port = p
	}
	if v := os.Getenv("API_BASE_URL"); v != "" {
		cfg.API.BaseURL = v
	}
	if v := os.Getenv("API_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid API_TIMEOUT: %q", v)
		}
		cfg.API.Timeout = d
	}
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		cfg.Broker.Brokers = splitList(v)
	}
	if v := os.Getenv("KAFKA_GROUP_ID"); v != "" {
		cfg.Broker.GroupID = v
	}
	if v := os.Getenv("KAFKA_TOPIC_NEW_ORDERS"); v != "" {
		cfg.Broker.TopicNewOrders = v
	}
	if v := os.Getenv("KAFKA_TOPIC_ACCEPTANCES"); v != "" {
		cfg.Broker.TopicAcceptances = v
	}
	if v := os.Getenv("KAFKA_TOPIC_PERSONAL_PREFIX"); v != "" {
		cfg.Broker.TopicPersonalPrefix = v
	}
	if v := os.Getenv("KAFKA_RECONNECT_DELAY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid KAFKA_RECONNECT_DELAY: %q", v)
		}
		cfg.Broker.ReconnectDelay = d
	}
	if v := os.Getenv("LIVREUR_ID"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid LIVREUR_ID: %q", v)
		}
		cfg.Driver.ID = id
	}
	cfg.Driver.Token = os.Getenv("LIVREUR_TOKEN")
	cfg.Driver.RefreshToken = os.Getenv("LIVREUR_REFRESH_TOKEN")
	if v := os.Getenv("REFRESH_INTERVAL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid REFRESH_INTERVAL: %q", v)
		}
		cfg.Refresh.Interval = d
	}

	pflag.IntVarP(&cfg.Port, "port", "p", cfg.Port, "ops server port")
	pflag.StringVar(&cfg.API.BaseURL, "api-url", cfg.API.BaseURL, "backend base URL")
	pflag.Int64Var(&cfg.Driver.ID, "livreur-id", cfg.Driver.ID, "driver id")
	pflag.StringSliceVar(&cfg.Broker.Brokers, "brokers", cfg.Broker.Brokers, "kafka broker list")
	if err := parseFlags(); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port: %d", cfg.Port)
	}
	if cfg.Driver.ID <= 0 {
		return nil, fmt.Errorf("driver id required, got %d", cfg.Driver.ID)
	}
	if cfg.API.BaseURL == "" {
		return nil, fmt.Errorf("api base url required")
	}
	return cfg, nil
}

func parseFlags() error {
	return pflag.CommandLine.Parse(os.Args[1:])
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
