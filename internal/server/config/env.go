package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// envFile is loaded (if present) before reading SHOP_* variables.
// Variables already set in the process environment win.
var envFile = ".env"

// parseEnv overlays Config with SHOP_* environment variables.
//
//	SHOP_GRPC_ADDR, SHOP_DATABASE_DRIVER, SHOP_DATABASE_DSN, SHOP_SECRET_KEY,
//	SHOP_ACCESS_TOKEN_TTL (Go duration), SHOP_HASH_ALGORITHM, SHOP_HASH_PEPPER,
//	SHOP_LOG_FORMAT, SHOP_LOG_LEVEL
//
// A malformed SHOP_ACCESS_TOKEN_TTL panics, like the other loaders do on bad input.
func parseEnv(cfg *Config) {
	_ = godotenv.Load(envFile)

	bindings := map[string]*string{
		"SHOP_GRPC_ADDR":       &cfg.EndpointAddrGRPC,
		"SHOP_DATABASE_DRIVER": &cfg.DatabaseDriver,
		"SHOP_DATABASE_DSN":    &cfg.DatabaseDSN,
		"SHOP_SECRET_KEY":      &cfg.SecretKey,
		"SHOP_HASH_ALGORITHM":  &cfg.HashAlgorithm,
		"SHOP_HASH_PEPPER":     &cfg.HashPepper,
		"SHOP_LOG_FORMAT":      &cfg.LogFormat,
		"SHOP_LOG_LEVEL":       &cfg.LogLevel,
	}
	for key, dst := range bindings {
		if v, ok := os.LookupEnv(key); ok {
			*dst = v
		}
	}

	if v, ok := os.LookupEnv("SHOP_ACCESS_TOKEN_TTL"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		cfg.AccessTokenValidityDuration = d
	}
}
