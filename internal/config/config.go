package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Storage StorageConfig `yaml:"storage"`
	Coach   CoachConfig   `yaml:"coach"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type StorageConfig struct {
	Path           string `yaml:"path"`
	MigrationsPath string `yaml:"migrations_path"`
}

type CoachConfig struct {
	APIKey  string `yaml:"api_key"`
	Model   string `yaml:"model"`
	BaseURL string `yaml:"base_url"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
// Env vars use the prefix LIFTFLOW_ and underscore-separated paths:
//
//	LIFTFLOW_SERVER_HOST, LIFTFLOW_SERVER_PORT,
//	LIFTFLOW_STORAGE_PATH, LIFTFLOW_STORAGE_MIGRATIONS_PATH,
//	LIFTFLOW_COACH_API_KEY, LIFTFLOW_COACH_MODEL, LIFTFLOW_COACH_BASE_URL
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	applyEnvOverrides(cfg)
	applyDefaults(cfg)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("LIFTFLOW_SERVER_HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv("LIFTFLOW_SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("LIFTFLOW_STORAGE_PATH"); v != "" {
		cfg.Storage.Path = v
	}
	if v := os.Getenv("LIFTFLOW_STORAGE_MIGRATIONS_PATH"); v != "" {
		cfg.Storage.MigrationsPath = v
	}
	if v := os.Getenv("LIFTFLOW_COACH_API_KEY"); v != "" {
		cfg.Coach.APIKey = v
	}
	if v := os.Getenv("LIFTFLOW_COACH_MODEL"); v != "" {
		cfg.Coach.Model = v
	}
	if v := os.Getenv("LIFTFLOW_COACH_BASE_URL"); v != "" {
		cfg.Coach.BaseURL = v
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Storage.MigrationsPath == "" {
		cfg.Storage.MigrationsPath = "migrations"
	}
	if cfg.Coach.Model == "" {
		cfg.Coach.Model = "gemini-2.5-flash"
	}
}

func (c *Config) validate() error {
	if c.Server.Port == 0 {
		return fmt.Errorf("server.port is required")
	}
	if c.Storage.Path == "" {
		return fmt.Errorf("storage.path is required")
	}
	return nil
}
