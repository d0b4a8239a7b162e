package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{name: "all flags", args: []string{"cmd",
			"-a", "127.0.0.1:9090", "-g", ":6000", "-D", "sqlite", "-d", "file:recipes.db", "-s", "secret",
			"-t", "30", "-b", "12", "-i", "5", "-l", "debug",
		}, expectPanic: false,
			expected: &Config{
				EndpointAddrHTTP:            "127.0.0.1:9090",
				EndpointAddrGRPC:            ":6000",
				DatabaseDriver:              "sqlite",
				DatabaseDSN:                 "file:recipes.db",
				SecretKey:                   "secret",
				AccessTokenValidityDuration: 30 * time.Minute,
				BcryptCost:                  12,
				HealthCheckInterval:         5 * time.Second,
				LogLevel:                    "debug",
			}},
		{name: "unrelated flags ignored", args: []string{"cmd", "-test.v", "-x", "1"},
			expected: &Config{
				AccessTokenValidityDuration: 90 * time.Second,
				HealthCheckInterval:         1500 * time.Millisecond,
			}},
		{name: "non-numeric ttl panics", args: []string{"cmd", "-t", "soon"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			config := &Config{
				AccessTokenValidityDuration: 90 * time.Second,
				HealthCheckInterval:         1500 * time.Millisecond,
			}

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config) })
				assert.Empty(t, cmp.Diff(config, tt.expected))
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}
