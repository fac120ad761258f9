package config

import "time"

// Config holds runtime settings for the shop CLI.
type Config struct {
	ServerEndpointAddr  string
	OnlineCheckInterval time.Duration
	// PingTimeout bounds a single reachability probe of the server.
	PingTimeout time.Duration
	LogFormat   string
	LogLevel    string
}

func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.OnlineCheckInterval = 3 * time.Second
	c.PingTimeout = 3 * time.Second
	c.LogFormat = "console"
	c.LogLevel = "info"
}

// LoadConfig returns defaults overlaid by SHOP_* environment variables, the
// optional JSON file and finally command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
