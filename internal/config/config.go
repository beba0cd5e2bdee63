// Package config loads and validates service configuration via Viper.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config captures all service configuration knobs loaded via Viper.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Source  SourceConfig  `mapstructure:"source"`
	Geocode GeocodeConfig `mapstructure:"geocode"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// ServerConfig controls HTTP server behavior.
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// SourceConfig points at the fish-planting schedule page and governs
// how it is fetched and cached.
type SourceConfig struct {
	URL                    string `mapstructure:"url"`
	UserAgent              string `mapstructure:"user_agent"`
	CountyTimeoutSeconds   int    `mapstructure:"county_timeout_seconds"`
	ScheduleTimeoutSeconds int    `mapstructure:"schedule_timeout_seconds"`
	CountyTTLSeconds       int    `mapstructure:"county_ttl_seconds"`
}

// GeocodeConfig governs the Nominatim client. UserAgent must identify
// the deployment with a contact address per the Nominatim usage policy.
type GeocodeConfig struct {
	URL               string  `mapstructure:"url"`
	UserAgent         string  `mapstructure:"user_agent"`
	TimeoutSeconds    int     `mapstructure:"timeout_seconds"`
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
}

// LoggingConfig toggles zap development features.
type LoggingConfig struct {
	Development bool `mapstructure:"development"`
}

// Load builds a Config from disk/environment.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("FISHPLANTS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("source.url", "https://nrm.dfg.ca.gov/FishPlants/")
	v.SetDefault("source.user_agent", "fishplants-web/1.0")
	v.SetDefault("source.county_timeout_seconds", 10)
	v.SetDefault("source.schedule_timeout_seconds", 15)
	v.SetDefault("source.county_ttl_seconds", 3600)
	v.SetDefault("geocode.url", "https://nominatim.openstreetmap.org/search")
	v.SetDefault("geocode.user_agent", "fishplants-web/1.0 (contact: ops@example.com)")
	v.SetDefault("geocode.timeout_seconds", 5)
	v.SetDefault("geocode.requests_per_second", 1)
	v.SetDefault("logging.development", true)
}

// Validate enforces required values and reasonable limits.
func (c Config) Validate() error {
	if c.Server.Port <= 0 {
		return fmt.Errorf("server.port must be > 0")
	}
	if c.Source.URL == "" {
		return fmt.Errorf("source.url is required")
	}
	if c.Source.CountyTimeoutSeconds <= 0 {
		return fmt.Errorf("source.county_timeout_seconds must be > 0")
	}
	if c.Source.ScheduleTimeoutSeconds <= 0 {
		return fmt.Errorf("source.schedule_timeout_seconds must be > 0")
	}
	if c.Source.CountyTTLSeconds <= 0 {
		return fmt.Errorf("source.county_ttl_seconds must be > 0")
	}
	if c.Geocode.URL == "" {
		return fmt.Errorf("geocode.url is required")
	}
	if c.Geocode.UserAgent == "" {
		return fmt.Errorf("geocode.user_agent is required")
	}
	if c.Geocode.TimeoutSeconds <= 0 {
		return fmt.Errorf("geocode.timeout_seconds must be > 0")
	}
	if c.Geocode.RequestsPerSecond <= 0 {
		return fmt.Errorf("geocode.requests_per_second must be > 0")
	}
	return nil
}

// CountyTimeout returns the county list fetch timeout as a Duration.
func (c Config) CountyTimeout() time.Duration {
	return time.Duration(c.Source.CountyTimeoutSeconds) * time.Second
}

// ScheduleTimeout returns the schedule fetch timeout as a Duration.
func (c Config) ScheduleTimeout() time.Duration {
	return time.Duration(c.Source.ScheduleTimeoutSeconds) * time.Second
}

// CountyTTL returns the county list cache lifetime as a Duration.
func (c Config) CountyTTL() time.Duration {
	return time.Duration(c.Source.CountyTTLSeconds) * time.Second
}

// GeocodeTimeout returns the geocode request timeout as a Duration.
func (c Config) GeocodeTimeout() time.Duration {
	return time.Duration(c.Geocode.TimeoutSeconds) * time.Second
}
