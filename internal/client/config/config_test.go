package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://localhost:3000", c.ServerURL)
	assert.Equal(t, "foundrmate.db", c.DBPath)
	assert.Equal(t, 10*time.Second, c.RequestTimeout)
}

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name:     "all flags",
			args:     []string{"cmd", "-a", "https://api.example", "-f", "/tmp/fm.db", "-t", "3", "-x", "ignored"},
			expected: &Config{ServerURL: "https://api.example", DBPath: "/tmp/fm.db", RequestTimeout: 3 * time.Second},
		},
		{name: "bad timeout", args: []string{"cmd", "-t", "soon"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args
			cfg := &Config{}
			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(cfg) })
				return
			}
			require.NotPanics(t, func() { parseFlags(cfg) })
			assert.Empty(t, cmp.Diff(tt.expected, cfg))
		})
	}
}

func Test_parseJson(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := filepath.Join(t.TempDir(), "client.json")
	b, err := json.Marshal(map[string]any{"server_url": "http://10.0.0.1:3000", "request_timeout": "2s"})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))

	os.Args = []string{"cli", "-config", path}

	var c Config
	c.LoadDefaults()
	parseJson(&c)

	assert.Equal(t, "http://10.0.0.1:3000", c.ServerURL)
	assert.Equal(t, "foundrmate.db", c.DBPath, "absent field keeps default")
	assert.Equal(t, 2*time.Second, c.RequestTimeout)

	os.Args = []string{"cli", "-c", filepath.Join(t.TempDir(), "missing.json")}
	assert.Panics(t, func() { parseJson(&c) })
}

func TestParseFlags_KeepsSubSecondTimeoutWithoutFlag(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := filepath.Join(t.TempDir(), "client.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"request_timeout":"500ms"}`), 0o600))
	os.Args = []string{"cli", "-c", path}

	var c Config
	c.LoadDefaults()
	parseJson(&c)
	parseFlags(&c)

	assert.Equal(t, 500*time.Millisecond, c.RequestTimeout)
}
