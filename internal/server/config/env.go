package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Environment variables read by parseEnv.
const (
	EnvHTTPAddr            = "RECIPEKEEPER_HTTP_ADDR"
	EnvGRPCAddr            = "RECIPEKEEPER_GRPC_ADDR"
	EnvDatabaseDriver      = "RECIPEKEEPER_DATABASE_DRIVER"
	EnvDatabaseDSN         = "RECIPEKEEPER_DATABASE_DSN"
	EnvSecretKey           = "RECIPEKEEPER_SECRET_KEY"
	EnvTokenValidity       = "RECIPEKEEPER_TOKEN_VALIDITY"
	EnvBcryptCost          = "RECIPEKEEPER_BCRYPT_COST"
	EnvHealthCheckInterval = "RECIPEKEEPER_HEALTH_CHECK_INTERVAL"
	EnvLogLevel            = "RECIPEKEEPER_LOG_LEVEL"
)

// parseEnv overlays non-empty RECIPEKEEPER_* variables. Malformed numbers or
// durations panic, matching how bad config files are treated.
func parseEnv(config *Config) {
	setString(&config.EndpointAddrHTTP, os.Getenv(EnvHTTPAddr))
	setString(&config.EndpointAddrGRPC, os.Getenv(EnvGRPCAddr))
	setString(&config.DatabaseDriver, os.Getenv(EnvDatabaseDriver))
	setString(&config.DatabaseDSN, os.Getenv(EnvDatabaseDSN))
	setString(&config.SecretKey, os.Getenv(EnvSecretKey))
	setString(&config.LogLevel, os.Getenv(EnvLogLevel))

	if v := os.Getenv(EnvTokenValidity); v != "" {
		config.AccessTokenValidityDuration = mustDuration(EnvTokenValidity, v)
	}
	if v := os.Getenv(EnvHealthCheckInterval); v != "" {
		config.HealthCheckInterval = mustDuration(EnvHealthCheckInterval, v)
	}
	if v := os.Getenv(EnvBcryptCost); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			panic(fmt.Errorf("%s: %w", EnvBcryptCost, err))
		}
		config.BcryptCost = n
	}
}

func mustDuration(name, v string) time.Duration {
	d, err := time.ParseDuration(v)
	if err != nil {
		panic(fmt.Errorf("%s: %w", name, err))
	}
	return d
}
