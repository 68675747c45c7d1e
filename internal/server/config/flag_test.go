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
			"-a", "127.0.0.1:3001", "-g", ":50051", "-d", "db", "-s", "secret",
			"-t", "60", "-b", "12", "-o", "https://app", "-l", "debug", "-r", "redis:6379",
			"-c", "ignored.json",
		}, expected: &Config{
			EndpointAddrHTTP:      "127.0.0.1:3001",
			EndpointAddrGRPC:      ":50051",
			DatabaseDSN:           "db",
			SecretKey:             "secret",
			TokenValidityDuration: time.Hour,
			BcryptCost:            12,
			AllowedOrigin:         "https://app",
			LogLevel:              "debug",
			RedisAddr:             "redis:6379",
		}},
		{name: "bad int", args: []string{"cmd", "-b", "many"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			config := &Config{}

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config) })
				assert.Empty(t, cmp.Diff(config, tt.expected))
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}

func TestParseFlags_KeepsSubMinuteValidityWithoutFlag(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"cmd", "-a", ":4000"}

	config := &Config{TokenValidityDuration: 90 * time.Second}
	parseFlags(config)

	assert.Equal(t, 90*time.Second, config.TokenValidityDuration)
	assert.Equal(t, ":4000", config.EndpointAddrHTTP)
}
