// Package config loads htscan configuration from file and environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Device    DeviceConfig
	Collector CollectorConfig
	Database  DatabaseConfig
	Audit     AuditConfig
}

// DeviceConfig identifies this handheld terminal.
type DeviceConfig struct {
	ID string
}

// CollectorConfig holds the remote collector settings.
type CollectorConfig struct {
	BaseURL             string `mapstructure:"base_url"`
	ScannedDataPath     string `mapstructure:"scanned_data_path"`
	CheckMasterPath     string `mapstructure:"check_master_path"`
	ProbeTimeoutSeconds int    `mapstructure:"probe_timeout_seconds"`
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// AuditConfig holds audit sink settings. An empty Path writes to stderr.
type AuditConfig struct {
	Path  string
	Level string
}

// Load reads configuration from file and env. Env var overrides use
// prefix HTSCAN_, e.g. HTSCAN_COLLECTOR_BASE_URL.
func Load() (Config, error) {
	v := viper.New()

	hostname, _ := os.Hostname()

	// default values
	v.SetDefault("device.id", hostname)
	v.SetDefault("collector.base_url", "http://localhost:8080")
	v.SetDefault("collector.scanned_data_path", "/api/scanned-data")
	v.SetDefault("collector.check_master_path", "/api/check-master")
	v.SetDefault("collector.probe_timeout_seconds", 5)
	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".htscan", "htscan.db"))
	v.SetDefault("audit.path", "")
	v.SetDefault("audit.level", "info")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("HTSCAN_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "htscan"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("HTSCAN")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}
