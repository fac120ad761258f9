package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, Config{
		ServerEndpointAddr:  "127.0.0.1:50051",
		OnlineCheckInterval: 3 * time.Second,
		PingTimeout:         3 * time.Second,
		LogFormat:           "console",
		LogLevel:            "info",
	}, c)
}

func TestLoadConfig_Layering(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	useEnvFile(t, filepath.Join(t.TempDir(), "missing.env"))

	t.Setenv("SHOP_SERVER_ADDR", "env:1")
	t.Setenv("SHOP_LOG_LEVEL", "debug")

	path := writeTempJSON(t, "", "", map[string]any{
		"server_endpoint_addr": "json:2",
		"ping_timeout":         "1s",
	})
	os.Args = []string{"shop", "-c", path, "-l", "json"}

	cfg := LoadConfig()

	assert.Equal(t, "json:2", cfg.ServerEndpointAddr)
	assert.Equal(t, time.Second, cfg.PingTimeout)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 3*time.Second, cfg.OnlineCheckInterval)
}
