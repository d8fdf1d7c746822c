package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Database  DatabaseConfig  `yaml:"database"`
	API       APIConfig       `yaml:"api"`
	RabbitMQ  RabbitMQConfig  `yaml:"rabbitmq"`
	Reconcile ReconcileConfig `yaml:"reconcile"`
	LogLevel  string          `yaml:"log_level"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

type APIConfig struct {
	BaseURL  string        `yaml:"base_url"`
	APIKey   string        `yaml:"api_key"`
	PageSize int           `yaml:"page_size"`
	Timeout  time.Duration `yaml:"timeout"`
	Retry    RetryConfig   `yaml:"retry"`
}

type RetryConfig struct {
	MaxAttempts    int           `yaml:"max_attempts"`
	InitialBackoff time.Duration `yaml:"initial_backoff"`
	MaxBackoff     time.Duration `yaml:"max_backoff"`
}

type RabbitMQConfig struct {
	URL        string `yaml:"url"`
	Exchange   string `yaml:"exchange"`
	RoutingKey string `yaml:"routing_key"`
	QueueName  string `yaml:"queue_name"`
}

type ReconcileConfig struct {
	LookbackDays int           `yaml:"lookback_days"`
	Workers      int           `yaml:"workers"`
	Interval     time.Duration `yaml:"interval"`
	BaselinePath string        `yaml:"baseline_path"`
	// Enabled scan frequency per product line.
	StandardScansPerDay int `yaml:"standard_scans_per_day"`
	AddonScansPerDay    int `yaml:"addon_scans_per_day"`
}

func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.API.PageSize == 0 {
		c.API.PageSize = 1000
	}
	if c.API.Timeout == 0 {
		c.API.Timeout = 30 * time.Second
	}
	if c.API.Retry.MaxAttempts == 0 {
		c.API.Retry.MaxAttempts = 3
	}
	if c.API.Retry.InitialBackoff == 0 {
		c.API.Retry.InitialBackoff = 1 * time.Second
	}
	if c.API.Retry.MaxBackoff == 0 {
		c.API.Retry.MaxBackoff = 30 * time.Second
	}
	if c.RabbitMQ.Exchange == "" {
		c.RabbitMQ.Exchange = "scan_reconciler"
	}
	if c.RabbitMQ.RoutingKey == "" {
		c.RabbitMQ.RoutingKey = "run_reports"
	}
	if c.RabbitMQ.QueueName == "" {
		c.RabbitMQ.QueueName = "scan_reconciler_reports"
	}
	if c.Reconcile.LookbackDays == 0 {
		c.Reconcile.LookbackDays = 30
	}
	if c.Reconcile.Workers == 0 {
		c.Reconcile.Workers = 8
	}
	if c.Reconcile.BaselinePath == "" {
		c.Reconcile.BaselinePath = "reconciler_baseline.json"
	}
	if c.Reconcile.StandardScansPerDay == 0 {
		c.Reconcile.StandardScansPerDay = 72
	}
	if c.Reconcile.AddonScansPerDay == 0 {
		c.Reconcile.AddonScansPerDay = 12
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}
