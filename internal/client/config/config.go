// Package config handles configuration for the calculator client, including
// defaults, environment, JSON overlay, and command-line flags.
package config

// Config holds runtime settings for the client.
//
// Fields:
//   - APIBaseURL: base URL of the calculator backend (e.g. http://localhost:8080).
//   - DatabasePath: path of the local sqlite database holding the session.
type Config struct {
	APIBaseURL   string
	DatabasePath string
}

// LoadDefaults populates c with development defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:8080"
	c.DatabasePath = "calcfront.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), environment variables, and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
