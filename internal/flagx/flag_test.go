package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		allowedFlags []string
		want         []string
	}{
		{
			name:         "short flag with separate value",
			args:         []string{"-c", "conf.json", "-a", "localhost"},
			allowedFlags: []string{"-c", "--config"},
			want:         []string{"-c", "conf.json"},
		},
		{
			name:         "long flag with equals",
			args:         []string{"--config=alt.json", "-a", "localhost"},
			allowedFlags: []string{"-c", "--config"},
			want:         []string{"--config=alt.json"},
		},
		{
			name:         "both short and long present, preserve order",
			args:         []string{"--config=first.json", "-c", "second.json", "-x", "1"},
			allowedFlags: []string{"-c", "--config"},
			want:         []string{"--config=first.json", "-c", "second.json"},
		},
		{
			name:         "unknown flags ignored",
			args:         []string{"-x", "1", "--y=2", "positional"},
			allowedFlags: []string{"-c", "--config"},
			want:         []string{},
		},
		{
			name:         "flag without value at end is kept as-is",
			args:         []string{"-c"},
			allowedFlags: []string{"-c", "--config"},
			want:         []string{"-c"},
		},
		{
			name:         "flag followed by another flag (no value)",
			args:         []string{"-c", "-notvalue"},
			allowedFlags: []string{"-c", "--config"},
			want:         []string{"-c"},
		},
		{
			name:         "value that looks like a flag but with equals form",
			args:         []string{"--config=--weird.json"},
			allowedFlags: []string{"--config"},
			want:         []string{"--config=--weird.json"},
		},
		{
			name:         "multiple allowed flags kept",
			args:         []string{"-a", "localhost:50051", "-d", "shop.db", "--other", "x"},
			allowedFlags: []string{"-d", "-a"},
			want:         []string{"-a", "localhost:50051", "-d", "shop.db"},
		},
		{
			name:         "positional value equal to a flag name is not a flag",
			args:         []string{"-a", "host", "x=-c"},
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
		{
			name:         "empty args",
			args:         []string{},
			allowedFlags: []string{"-c", "--config"},
			want:         []string{},
		},
		{
			name:         "path with spaces remains single arg",
			args:         []string{"-c", "/home/user/my shop/conf.json"},
			allowedFlags: []string{"-c"},
			want:         []string{"-c", "/home/user/my shop/conf.json"},
		},
		{
			name:         "do not treat next dash-starting token as value",
			args:         []string{"-c", "--config=alt.json"},
			allowedFlags: []string{"-c", "--config"},
			want:         []string{"-c", "--config=alt.json"},
		},
		{
			name:         "repeated allowed flag is preserved in order",
			args:         []string{"-c", "one.json", "-c", "two.json"},
			allowedFlags: []string{"-c"},
			want:         []string{"-c", "one.json", "-c", "two.json"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowedFlags))
		})
	}
}

func TestConfigFile(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		name string
		args []string
		env  string
		want string
	}{
		{name: "short flag", args: []string{"-c", "/etc/shop/short.json"}, want: "/etc/shop/short.json"},
		{name: "long flag", args: []string{"-config", "/etc/shop/long.json"}, want: "/etc/shop/long.json"},
		{name: "equals form", args: []string{"--config=/etc/shop/eq.json", "-a", ":50051"}, want: "/etc/shop/eq.json"},
		{name: "last flag wins", args: []string{"-c", "1.json", "-config", "2.json"}, want: "2.json"},
		{name: "env fallback", args: []string{"-a", ":50051"}, env: "/etc/shop/env.json", want: "/etc/shop/env.json"},
		{name: "flag beats env", args: []string{"-c", "flag.json"}, env: "env.json", want: "flag.json"},
		{name: "nothing set", args: []string{"-x", "1"}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(ConfigEnv, tt.env)
			os.Args = append([]string{"shop"}, tt.args...)
			assert.Equal(t, tt.want, ConfigFile())
		})
	}
}
