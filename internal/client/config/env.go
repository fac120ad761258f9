package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

var envFile = ".env"

// parseEnv reads SHOP_SERVER_ADDR, SHOP_ONLINE_CHECK_INTERVAL, SHOP_PING_TIMEOUT,
// SHOP_LOG_FORMAT and SHOP_LOG_LEVEL. Durations use Go syntax ("5s") and a
// malformed one panics.
func parseEnv(cfg *Config) {
	_ = godotenv.Load(envFile)

	if v, ok := os.LookupEnv("SHOP_SERVER_ADDR"); ok {
		cfg.ServerEndpointAddr = v
	}
	if v, ok := os.LookupEnv("SHOP_LOG_FORMAT"); ok {
		cfg.LogFormat = v
	}
	if v, ok := os.LookupEnv("SHOP_LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}

	durations := map[string]*time.Duration{
		"SHOP_ONLINE_CHECK_INTERVAL": &cfg.OnlineCheckInterval,
		"SHOP_PING_TIMEOUT":          &cfg.PingTimeout,
	}
	for key, dst := range durations {
		v, ok := os.LookupEnv(key)
		if !ok {
			continue
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		*dst = d
	}
}
