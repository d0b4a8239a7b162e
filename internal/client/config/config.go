package config

import "time"

// Config holds runtime settings for the RecipeKeeper CLI.
//
// Fields:
//   - ServerEndpointAddr: base URL of the server's JSON API.
//   - HealthEndpointAddr: host:port of the server's gRPC health endpoint.
//   - OnlineCheckInterval: how often the client checks server reachability.
//   - RequestTimeout: upper bound for a single API call.
type Config struct {
	ServerEndpointAddr  string
	HealthEndpointAddr  string
	OnlineCheckInterval time.Duration
	RequestTimeout      time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "http://127.0.0.1:8080"
	c.HealthEndpointAddr = "127.0.0.1:50051"
	c.OnlineCheckInterval = 3 * time.Second
	c.RequestTimeout = 10 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// a config file (if given) and command-line flags. Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg)
	parseFlags(cfg)
	return cfg
}
