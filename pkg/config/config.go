package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment"`
	Server      struct {
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
		CORSOrigins     []string      `yaml:"cors_origins"`
	} `yaml:"server"`
	Metrics struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	} `yaml:"metrics"`
	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		Output string `yaml:"output"`
	} `yaml:"logging"`
	Ephemeris struct {
		ServiceURL         string        `yaml:"service_url"`
		DataPath           string        `yaml:"data_path"`
		Adapter            string        `yaml:"adapter"`
		Timeout            time.Duration `yaml:"timeout"`
		DefaultHouseSystem string        `yaml:"default_house_system"`
	} `yaml:"ephemeris"`
	Cache struct {
		Enabled bool          `yaml:"enabled"`
		TTL     time.Duration `yaml:"ttl"`
		MaxSize int           `yaml:"max_size"`
		Redis   struct {
			Enabled  bool   `yaml:"enabled"`
			Addr     string `yaml:"addr"`
			Password string `yaml:"password"`
			DB       int    `yaml:"db"`
		} `yaml:"redis"`
	} `yaml:"cache"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("EPHEMERIS_URL"); v != "" {
		c.Ephemeris.ServiceURL = v
	}
	if v := os.Getenv("EPHEMERIS_DATA_PATH"); v != "" {
		c.Ephemeris.DataPath = v
	}
	if v := os.Getenv("EPHEMERIS_ADAPTER"); v != "" {
		c.Ephemeris.Adapter = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Cache.Redis.Addr = v
		c.Cache.Redis.Enabled = true
	}
	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.Server.Port = p
		}
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return c, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if c.Ephemeris.ServiceURL == "" {
		return fmt.Errorf("ephemeris.service_url is required")
	}
	if c.Ephemeris.Adapter == "" {
		c.Ephemeris.Adapter = "legacy"
	}
	if c.Ephemeris.Adapter != "legacy" && c.Ephemeris.Adapter != "v2" {
		return fmt.Errorf("ephemeris.adapter must be 'legacy' or 'v2', got '%s'", c.Ephemeris.Adapter)
	}
	if c.Ephemeris.DefaultHouseSystem == "" {
		c.Ephemeris.DefaultHouseSystem = "P"
	}
	if len(c.Ephemeris.DefaultHouseSystem) != 1 {
		return fmt.Errorf("ephemeris.default_house_system must be a single letter, got '%s'", c.Ephemeris.DefaultHouseSystem)
	}
	if c.Cache.Redis.Enabled && c.Cache.Redis.Addr == "" {
		return fmt.Errorf("cache.redis.addr is required when redis is enabled")
	}
	return nil
}
