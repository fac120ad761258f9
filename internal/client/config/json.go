package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/shopkeeper/internal/flagx"
	"github.com/dmitrijs2005/shopkeeper/internal/timex"
)

// fileConfig is the on-disk shape of the CLI config file.
type fileConfig struct {
	ServerEndpointAddr  string         `json:"server_endpoint_addr"`
	OnlineCheckInterval timex.Duration `json:"online_check_interval"`
	PingTimeout         timex.Duration `json:"ping_timeout"`
	LogFormat           string         `json:"log_format"`
	LogLevel            string         `json:"log_level"`
}

// parseJson overlays cfg with the non-empty fields of the file named by
// -c/-config. Read or decode errors panic.
func parseJson(cfg *Config) {
	path := flagx.ConfigFile()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var fc fileConfig
	if err := json.Unmarshal(data, &fc); err != nil {
		panic(err)
	}

	for dst, v := range map[*string]string{
		&cfg.ServerEndpointAddr: fc.ServerEndpointAddr,
		&cfg.LogFormat:          fc.LogFormat,
		&cfg.LogLevel:           fc.LogLevel,
	} {
		if v != "" {
			*dst = v
		}
	}
	if fc.OnlineCheckInterval.Duration != 0 {
		cfg.OnlineCheckInterval = fc.OnlineCheckInterval.Duration
	}
	if fc.PingTimeout.Duration != 0 {
		cfg.PingTimeout = fc.PingTimeout.Duration
	}
}
