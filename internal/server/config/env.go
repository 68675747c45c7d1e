package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays values from the process environment. Variables missing
// from the environment are looked up in the given dotenv files (".env" when
// none are given); a missing file is not an error.
//
// Recognised variables:
//
//	PORT                 HTTP port or address (":3000", "3000")
//	GRPC_ADDR            gRPC bind address
//	DATABASE_URL         PostgreSQL DSN
//	JWT_SECRET           token signing secret
//	TOKEN_TTL            token lifetime, Go duration ("168h")
//	BCRYPT_COST          password hashing cost
//	CLIENT_URL           allowed CORS origin
//	LOG_LEVEL            log level
//	REDIS_ADDR           Redis address for rate limiting
//	RATE_LIMIT_REQUESTS  auth requests per window
//	RATE_LIMIT_WINDOW    rate limit window, Go duration
//	TRUSTED_PROXIES      comma-separated proxy IPs or CIDRs
func parseEnv(cfg *Config, files ...string) {
	fromFile, err := godotenv.Read(files...)
	if err != nil {
		fromFile = map[string]string{}
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v), true
		}
		v, ok := fromFile[key]
		v = strings.TrimSpace(v)
		return v, ok && v != ""
	}

	if v, ok := lookup("PORT"); ok {
		cfg.EndpointAddrHTTP = httpAddr(v)
	}
	if v, ok := lookup("GRPC_ADDR"); ok {
		cfg.EndpointAddrGRPC = v
	}
	if v, ok := lookup("DATABASE_URL"); ok {
		cfg.DatabaseDSN = v
	}
	if v, ok := lookup("JWT_SECRET"); ok {
		cfg.SecretKey = v
	}
	if v, ok := lookup("TOKEN_TTL"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.TokenValidityDuration = d
		}
	}
	if v, ok := lookup("BCRYPT_COST"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.BcryptCost = n
		}
	}
	if v, ok := lookup("CLIENT_URL"); ok {
		cfg.AllowedOrigin = v
	}
	if v, ok := lookup("LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
	if v, ok := lookup("REDIS_ADDR"); ok {
		cfg.RedisAddr = v
	}
	if v, ok := lookup("RATE_LIMIT_REQUESTS"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.RateLimitRequests = n
		}
	}
	if v, ok := lookup("RATE_LIMIT_WINDOW"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RateLimitWindow = d
		}
	}
	if v, ok := lookup("TRUSTED_PROXIES"); ok {
		cfg.TrustedProxies = splitList(v)
	}
}

func splitList(v string) []string {
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// httpAddr accepts a bare port the way PORT is usually set.
func httpAddr(v string) string {
	if strings.Contains(v, ":") {
		return v
	}
	return ":" + v
}
