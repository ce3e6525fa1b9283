package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config defines server configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Roster  RosterConfig  `yaml:"roster"`
	Data    DataConfig    `yaml:"data"`
	Sync    SyncConfig    `yaml:"sync"`
	Payment PaymentConfig `yaml:"payment"`
	Log     LogConfig     `yaml:"log"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// RosterConfig points at the static base roster document.
type RosterConfig struct {
	Path string `yaml:"path"`
}

// DataConfig points at the local JSON document file.
type DataConfig struct {
	Path string `yaml:"path"`
}

// SyncConfig carries the remote blob store credentials and the auto-sync
// cadence. Sync is disabled when BinID or APIKey is empty.
type SyncConfig struct {
	APIURL               string `yaml:"api_url"`
	BinID                string `yaml:"bin_id"`
	APIKey               string `yaml:"api_key"`
	IntervalMinutes      int    `yaml:"interval_minutes"`
	CheckIntervalSeconds int    `yaml:"check_interval_seconds"`
}

// PaymentConfig names the two payers and the fixed contribution the first
// payer absorbs.
type PaymentConfig struct {
	PayerOneName string `yaml:"payer_one_name"`
	PayerTwoName string `yaml:"payer_two_name"`
	Contribution int64  `yaml:"contribution"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Load reads configuration from an optional YAML file and environment variables.
func Load() (Config, error) {
	cfg := Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Roster: RosterConfig{
			Path: "guests.json",
		},
		Data: DataConfig{
			Path: "bday-data.json",
		},
		Sync: SyncConfig{
			IntervalMinutes:      1,
			CheckIntervalSeconds: 60,
		},
		Payment: PaymentConfig{
			PayerOneName: "Host",
			PayerTwoName: "Co-host",
			Contribution: 3000000,
		},
		Log: LogConfig{
			Level: "info",
		},
	}

	if path := os.Getenv("BDAY_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if host := os.Getenv("BDAY_SERVER_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if portStr := os.Getenv("BDAY_SERVER_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid BDAY_SERVER_PORT: %w", err)
		}
		cfg.Server.Port = port
	}
	if rosterPath := os.Getenv("BDAY_ROSTER_PATH"); rosterPath != "" {
		cfg.Roster.Path = rosterPath
	}
	if dataPath := os.Getenv("BDAY_DATA_PATH"); dataPath != "" {
		cfg.Data.Path = dataPath
	}
	if apiURL := os.Getenv("BDAY_SYNC_API_URL"); apiURL != "" {
		cfg.Sync.APIURL = apiURL
	}
	if binID := os.Getenv("BDAY_SYNC_BIN_ID"); binID != "" {
		cfg.Sync.BinID = binID
	}
	if apiKey := os.Getenv("BDAY_SYNC_API_KEY"); apiKey != "" {
		cfg.Sync.APIKey = apiKey
	}
	if contributionStr := os.Getenv("BDAY_PAYMENT_CONTRIBUTION"); contributionStr != "" {
		contribution, err := strconv.ParseInt(contributionStr, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("invalid BDAY_PAYMENT_CONTRIBUTION: %w", err)
		}
		cfg.Payment.Contribution = contribution
	}
	if level := os.Getenv("BDAY_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}

	return cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
