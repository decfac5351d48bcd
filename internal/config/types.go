package config

import "time"

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Mode values accepted in the config file.
const (
	ModeMock   = "mock"
	ModeRemote = "remote"
)

// Config represents the complete .tlens.yaml configuration file.
type Config struct {
	Version int `yaml:"version" mapstructure:"version"`

	// Mode selects the data source: "mock" for synthesized demo data,
	// "remote" to talk to a TrustLens API server.
	Mode string `yaml:"mode" mapstructure:"mode"`

	// APIBase is the base URL of the TrustLens API (remote mode only).
	APIBase string `yaml:"api_base" mapstructure:"api_base"`

	// RotateInterval is how often the trend window rotates.
	RotateInterval time.Duration `yaml:"rotate_interval" mapstructure:"rotate_interval"`

	// AlertLimit caps how many alerts are requested per refresh.
	AlertLimit int `yaml:"alert_limit" mapstructure:"alert_limit"`

	// TrendWindow is the window parameter sent to the null-rate endpoint.
	TrendWindow string `yaml:"trend_window" mapstructure:"trend_window"`

	// TrendPoints is the number of points kept in the trend window.
	TrendPoints int `yaml:"trend_points" mapstructure:"trend_points"`

	Output OutputConfig `yaml:"output" mapstructure:"output"`
}

// OutputConfig controls terminal output formatting.
type OutputConfig struct {
	// Color mode: "auto", "always", or "never".
	// "auto" disables color when output is piped.
	Color string `yaml:"color" mapstructure:"color"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version:        CurrentConfigVersion,
		Mode:           ModeMock,
		APIBase:        "http://localhost:8000",
		RotateInterval: 6 * time.Second,
		AlertLimit:     20,
		TrendWindow:    "30min",
		TrendPoints:    30,
		Output: OutputConfig{
			Color: "auto",
		},
	}
}
