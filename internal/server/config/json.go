package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/foundrmate/internal/flagx"
	"github.com/dmitrijs2005/foundrmate/internal/timex"
)

// JsonConfig is the on-disk shape of the server config file. Every field is
// optional; zero values leave the current setting untouched.
type JsonConfig struct {
	EndpointAddrHTTP      string         `json:"endpoint_addr_http"`
	EndpointAddrGRPC      string         `json:"endpoint_addr_grpc"`
	DatabaseDSN           string         `json:"database_dsn"`
	SecretKey             string         `json:"secret_key"`
	TokenValidityDuration timex.Duration `json:"token_validity_duration"`
	BcryptCost            int            `json:"bcrypt_cost"`
	AllowedOrigin         string         `json:"allowed_origin"`
	LogLevel              string         `json:"log_level"`
	RedisAddr             string         `json:"redis_addr"`
	RateLimitRequests     int            `json:"rate_limit_requests"`
	RateLimitWindow       timex.Duration `json:"rate_limit_window"`
	TrustedProxies        []string       `json:"trusted_proxies"`
}

// parseJson overlays the file named by -c/-config, if any. An unreadable or
// invalid file panics: the server must not start on a half-read config.
func parseJson(config *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	file, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	setString(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.SecretKey, c.SecretKey)
	setString(&config.AllowedOrigin, c.AllowedOrigin)
	setString(&config.LogLevel, c.LogLevel)
	setString(&config.RedisAddr, c.RedisAddr)

	if c.TokenValidityDuration.Duration != 0 {
		config.TokenValidityDuration = c.TokenValidityDuration.Duration
	}
	if c.BcryptCost != 0 {
		config.BcryptCost = c.BcryptCost
	}
	if c.RateLimitRequests != 0 {
		config.RateLimitRequests = c.RateLimitRequests
	}
	if c.RateLimitWindow.Duration != 0 {
		config.RateLimitWindow = c.RateLimitWindow.Duration
	}
	if len(c.TrustedProxies) != 0 {
		config.TrustedProxies = c.TrustedProxies
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
