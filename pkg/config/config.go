package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-pkgz/lgr"
	"gopkg.in/yaml.v3"

	"github.com/sivaratrisrinivas/tabHibernate/pkg/domain"
)

//go:generate go run ../../cmd/schema -o schema.json

// Config holds the application configuration
type Config struct {
	Server   ServerConfig   `yaml:"server" json:"server" jsonschema:"description=HTTP API server configuration"`
	Database DatabaseConfig `yaml:"database" json:"database" jsonschema:"description=Database configuration"`
	Browser  BrowserConfig  `yaml:"browser" json:"browser" jsonschema:"description=Browser connection configuration"`
	Schedule ScheduleConfig `yaml:"schedule" json:"schedule" jsonschema:"description=Scheduler configuration"`
	Defaults SettingsConfig `yaml:"defaults" json:"defaults" jsonschema:"description=Default hibernation settings (stored settings take precedence)"`
}

// ServerConfig holds HTTP API settings
type ServerConfig struct {
	Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=127.0.0.1:8780,description=HTTP server listen address"`
	Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
}

// DatabaseConfig holds sqlite settings
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn" json:"dsn" jsonschema:"default=file:tabhibernate.db?cache=shared&mode=rwc&_txlock=immediate,description=Database connection string"`
	MaxOpenConns    int           `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=4,minimum=1,description=Maximum number of open connections"`
	MaxIdleConns    int           `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=2,description=Maximum number of idle connections"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=1h,description=Connection maximum lifetime"`
}

// BrowserConfig holds the DevTools connection settings
type BrowserConfig struct {
	CDPURL           string        `yaml:"cdp_url" json:"cdp_url" jsonschema:"default=http://127.0.0.1:9222,description=DevTools endpoint of the browser (http or ws url)"`
	ConnectTimeout   time.Duration `yaml:"connect_timeout" json:"connect_timeout" jsonschema:"default=10s,description=Timeout for connecting to the browser"`
	CommandTimeout   time.Duration `yaml:"command_timeout" json:"command_timeout" jsonschema:"default=5s,description=Timeout for a single page command such as state capture"`
	ActivityDebounce time.Duration `yaml:"activity_debounce" json:"activity_debounce" jsonschema:"default=1s,description=Coalescing window for page activity reports"`
}

// ScheduleConfig holds timer settings of the engine
type ScheduleConfig struct {
	CheckInterval    time.Duration `yaml:"check_interval" json:"check_interval" jsonschema:"default=1m,description=How often inactive tabs are checked"`
	AnalysisInterval time.Duration `yaml:"analysis_interval" json:"analysis_interval" jsonschema:"default=1h,description=How often usage patterns are analyzed"`
	PersistDelay     time.Duration `yaml:"persist_delay" json:"persist_delay" jsonschema:"default=2s,description=Coalescing window for usage and activity writes"`
	ManualThreshold  time.Duration `yaml:"manual_threshold" json:"manual_threshold" jsonschema:"default=0s,description=Inactivity threshold for manual unload requests (0 uses the regular threshold)"`
}

// SettingsConfig holds the defaults merged under the stored settings
type SettingsConfig struct {
	Enabled                   bool          `yaml:"enabled" json:"enabled" jsonschema:"default=true,description=Enable automatic hibernation"`
	InactivityThreshold       time.Duration `yaml:"inactivity_threshold" json:"inactivity_threshold" jsonschema:"default=30m,description=Inactivity before a tab is unloaded"`
	ExcludePinnedTabs         bool          `yaml:"exclude_pinned_tabs" json:"exclude_pinned_tabs" jsonschema:"default=true,description=Never unload pinned tabs"`
	ExcludedDomains           []string      `yaml:"excluded_domains" json:"excluded_domains" jsonschema:"description=Domains never unloaded including their subdomains"`
	AdaptiveMode              bool          `yaml:"adaptive_mode" json:"adaptive_mode" jsonschema:"default=false,description=Skip tabs of frequently used domains"`
	LearningPeriod            bool          `yaml:"learning_period" json:"learning_period" jsonschema:"default=true,description=Collect usage before adaptive decisions apply"`
	LearningPeriodDuration    time.Duration `yaml:"learning_period_duration" json:"learning_period_duration" jsonschema:"default=168h,description=Length of the learning period"`
	MaxHibernatedTabs         int           `yaml:"max_hibernated_tabs" json:"max_hibernated_tabs" jsonschema:"default=0,minimum=0,description=Maximum number of unloaded tabs (0 for no limit)"`
	DiscardInsteadOfHibernate bool          `yaml:"discard_instead_of_hibernate" json:"discard_instead_of_hibernate" jsonschema:"default=false,description=Unload without capturing page state"`
}

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		Server: ServerConfig{Listen: "127.0.0.1:8780", Timeout: 30 * time.Second},
		Database: DatabaseConfig{
			DSN:             "file:tabhibernate.db?cache=shared&mode=rwc&_txlock=immediate",
			MaxOpenConns:    4,
			MaxIdleConns:    2,
			ConnMaxLifetime: time.Hour,
		},
		Browser: BrowserConfig{
			CDPURL:           "http://127.0.0.1:9222",
			ConnectTimeout:   10 * time.Second,
			CommandTimeout:   5 * time.Second,
			ActivityDebounce: time.Second,
		},
		Schedule: ScheduleConfig{
			CheckInterval:    time.Minute,
			AnalysisInterval: time.Hour,
			PersistDelay:     2 * time.Second,
		},
		Defaults: SettingsConfig{
			Enabled:                true,
			InactivityThreshold:    30 * time.Minute,
			ExcludePinnedTabs:      true,
			AdaptiveMode:           false,
			LearningPeriod:         true,
			LearningPeriodDuration: 7 * 24 * time.Hour,
		},
	}
}

// Load reads configuration from a YAML file. Values missing in the file keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	// booleans can't be told from missing ones after parsing, so defaults go in first
	cfg := Default()
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.fillZeroValues()

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		lgr.Printf("[WARN] schema validation failed: %v", err)
	}

	return cfg, nil
}

// fillZeroValues restores defaults for values explicitly set to zero where zero makes no sense
func (c *Config) fillZeroValues() {
	def := Default()
	if c.Server.Listen == "" {
		c.Server.Listen = def.Server.Listen
	}
	if c.Server.Timeout == 0 {
		c.Server.Timeout = def.Server.Timeout
	}
	if c.Database.DSN == "" {
		c.Database.DSN = def.Database.DSN
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = def.Database.MaxOpenConns
	}
	if c.Browser.CDPURL == "" {
		c.Browser.CDPURL = def.Browser.CDPURL
	}
	if c.Browser.ConnectTimeout == 0 {
		c.Browser.ConnectTimeout = def.Browser.ConnectTimeout
	}
	if c.Browser.CommandTimeout == 0 {
		c.Browser.CommandTimeout = def.Browser.CommandTimeout
	}
	if c.Schedule.CheckInterval == 0 {
		c.Schedule.CheckInterval = def.Schedule.CheckInterval
	}
	if c.Schedule.AnalysisInterval == 0 {
		c.Schedule.AnalysisInterval = def.Schedule.AnalysisInterval
	}
	if c.Defaults.InactivityThreshold == 0 {
		c.Defaults.InactivityThreshold = def.Defaults.InactivityThreshold
	}
	if c.Defaults.LearningPeriodDuration == 0 {
		c.Defaults.LearningPeriodDuration = def.Defaults.LearningPeriodDuration
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}
	if cfg.Database.MaxOpenConns < 1 {
		return fmt.Errorf("database max_open_conns must be at least 1")
	}
	if cfg.Schedule.CheckInterval < time.Second {
		return fmt.Errorf("schedule check_interval must be at least 1 second")
	}
	if cfg.Schedule.AnalysisInterval < cfg.Schedule.CheckInterval {
		return fmt.Errorf("schedule analysis_interval must not be shorter than check_interval")
	}
	if cfg.Schedule.PersistDelay < 0 || cfg.Schedule.ManualThreshold < 0 || cfg.Browser.ActivityDebounce < 0 {
		return fmt.Errorf("delays and thresholds must be non-negative")
	}
	if cfg.Defaults.InactivityThreshold < time.Minute {
		return fmt.Errorf("defaults inactivity_threshold must be at least 1 minute")
	}
	if cfg.Defaults.MaxHibernatedTabs < 0 {
		return fmt.Errorf("defaults max_hibernated_tabs must be non-negative")
	}
	return nil
}

// DefaultSettings converts the defaults section to engine settings
func (c *Config) DefaultSettings() domain.Settings {
	d := c.Defaults
	s := domain.Settings{
		Enabled:                   d.Enabled,
		InactivityThreshold:       d.InactivityThreshold,
		ExcludePinnedTabs:         d.ExcludePinnedTabs,
		AdaptiveMode:              d.AdaptiveMode,
		LearningPeriod:            d.LearningPeriod,
		LearningPeriodDuration:    d.LearningPeriodDuration,
		MaxHibernatedTabs:         d.MaxHibernatedTabs,
		DiscardInsteadOfHibernate: d.DiscardInsteadOfHibernate,
	}
	s.AddExcludedDomains(d.ExcludedDomains...)
	return s
}

// GetServerConfig returns the HTTP server listen address and timeout
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}
