// Package config handles configuration for the server component,
// including defaults, environment (.env), JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the shopkeeper server.
//
// Fields:
//   - EndpointAddrGRPC: bind address for the public gRPC endpoint.
//   - DatabaseDriver: "sqlite" (modernc) or "pgx" (PostgreSQL).
//   - DatabaseDSN: driver specific DSN.
//   - SecretKey: HMAC secret for signing JWTs (HS256). Do not use test defaults in prod.
//   - AccessTokenValidityDuration: access token lifetime.
//   - HashAlgorithm / HashPepper: credential digest ("sha256" or "argon2").
//   - LogFormat / LogLevel: "json", "text" or "console"; slog level names.
type Config struct {
	EndpointAddrGRPC            string
	DatabaseDriver              string
	DatabaseDSN                 string
	SecretKey                   string
	AccessTokenValidityDuration time.Duration
	HashAlgorithm               string
	HashPepper                  string
	LogFormat                   string
	LogLevel                    string
}

// LoadDefaults populates Config with sensible development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.EndpointAddrGRPC = ":50051"
	c.DatabaseDriver = "sqlite"
	c.DatabaseDSN = "file:shop.db?_pragma=busy_timeout(5000)&_txlock=immediate"
	c.SecretKey = "secretKey"
	c.AccessTokenValidityDuration = 15 * time.Minute
	c.HashAlgorithm = "sha256"
	c.HashPepper = ""
	c.LogFormat = "json"
	c.LogLevel = "info"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from the environment, an optional JSON file and finally command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
