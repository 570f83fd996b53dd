package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config service configuration loaded from a TOML file
type Config struct {
	Server     ServerConfig     `toml:"server"`
	Database   DatabaseConfig   `toml:"database"`
	Logs       LogsConfig       `toml:"logs"`
	Metrics    MetricsConfig    `toml:"metrics"`
	Maps       MapsConfig       `toml:"maps"`
	Pricing    PricingConfig    `toml:"pricing"`
	Scheduling SchedulingConfig `toml:"scheduling"`
}

// ServerConfig HTTP server settings
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig PostgreSQL connection settings
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN builds the PostgreSQL connection string
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// LogsConfig logging settings
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig Prometheus settings
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// MapsConfig Google Maps client settings
type MapsConfig struct {
	APIKey  string `toml:"api_key"`
	Timeout int    `toml:"timeout"` // seconds, per request
}

// PricingConfig quote engine amounts, in whole COP.
// The fallback price applies both when no tariff rule matches a trip and
// when a BY_DISTANCE_TIER rule has no tier covering the distance.
type PricingConfig struct {
	FallbackPrice         float64 `toml:"fallback_price"`
	NightSurcharge        float64 `toml:"night_surcharge"`
	SundaySurcharge       float64 `toml:"sunday_surcharge"`
	FloorSurchargePerStep float64 `toml:"floor_surcharge_per_step"`
	FloorThreshold        int     `toml:"floor_threshold"`
	NightStartHour        int     `toml:"night_start_hour"`
	NightEndHour          int     `toml:"night_end_hour"`
}

// SchedulingConfig availability and slot enumeration settings
type SchedulingConfig struct {
	DayStart                string `toml:"day_start"` // HH:MM
	DayEnd                  string `toml:"day_end"`   // HH:MM
	SlotStepMinutes         int    `toml:"slot_step_minutes"`
	SlotBufferMinutes       int    `toml:"slot_buffer_minutes"`
	ConflictLookbackMinutes int    `toml:"conflict_lookback_minutes"`
}

// Load reads and validates the configuration file
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// defaultConfig values applied before decoding, matching the legacy tariff constants
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{Level: "info"},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "dispatch-service",
		},
		Maps: MapsConfig{Timeout: 5},
		Pricing: PricingConfig{
			FallbackPrice:         15000,
			NightSurcharge:        35000,
			SundaySurcharge:       35000,
			FloorSurchargePerStep: 5000,
			FloorThreshold:        3,
			NightStartHour:        18,
			NightEndHour:          6,
		},
		Scheduling: SchedulingConfig{
			DayStart:                "06:00",
			DayEnd:                  "22:00",
			SlotStepMinutes:         30,
			SlotBufferMinutes:       30,
			ConflictLookbackMinutes: 120,
		},
	}
}

func (c *Config) validate() error {
	if c.Database.Host == "" {
		return fmt.Errorf("config: database.host is required")
	}
	if c.Database.User == "" || c.Database.DBName == "" {
		return fmt.Errorf("config: database.user and database.dbname are required")
	}
	if c.Pricing.FallbackPrice < 0 {
		return fmt.Errorf("config: pricing.fallback_price must not be negative")
	}
	if c.Scheduling.SlotStepMinutes <= 0 {
		return fmt.Errorf("config: scheduling.slot_step_minutes must be positive")
	}
	if c.Scheduling.DayStart >= c.Scheduling.DayEnd {
		return fmt.Errorf("config: scheduling.day_start must be before day_end")
	}
	return nil
}
