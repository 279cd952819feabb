package cmd

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"ordertaking/internal/pkg/errs"
)

const (
	defaultHTTPPort = "8080"
	defaultFrom     = "orders@widgets.example"
)

type Config struct {
	HTTPPort               string
	LogLevel               slog.Level
	CatalogPath            string
	CatalogRefreshSchedule string
	AcknowledgmentsEnabled bool
	AcknowledgmentFrom     string
}

// NewConfig reads the configuration through getenv, applying defaults for unset keys.
func NewConfig(getenv func(string) string) (Config, error) {
	config := Config{
		HTTPPort:               valueOr(getenv("HTTP_PORT"), defaultHTTPPort),
		LogLevel:               slog.LevelInfo,
		CatalogPath:            strings.TrimSpace(getenv("CATALOG_PATH")),
		CatalogRefreshSchedule: strings.TrimSpace(getenv("CATALOG_REFRESH_SCHEDULE")),
		AcknowledgmentsEnabled: true,
		AcknowledgmentFrom:     valueOr(getenv("ACKNOWLEDGMENT_FROM"), defaultFrom),
	}

	if raw := strings.TrimSpace(getenv("LOG_LEVEL")); raw != "" {
		if err := config.LogLevel.UnmarshalText([]byte(raw)); err != nil {
			return Config{}, errs.NewValueIsInvalidErrorWithCause("LOG_LEVEL", err)
		}
	}

	if raw := strings.TrimSpace(getenv("ACKNOWLEDGMENTS_ENABLED")); raw != "" {
		enabled, err := strconv.ParseBool(raw)
		if err != nil {
			return Config{}, errs.NewValueIsInvalidErrorWithCause("ACKNOWLEDGMENTS_ENABLED", err)
		}
		config.AcknowledgmentsEnabled = enabled
	}

	if _, err := strconv.ParseUint(config.HTTPPort, 10, 16); err != nil {
		return Config{}, errs.NewValueIsInvalidErrorWithCause("HTTP_PORT", fmt.Errorf("%q is not a port", config.HTTPPort))
	}
	return config, nil
}

func valueOr(raw, fallback string) string {
	if v := strings.TrimSpace(raw); v != "" {
		return v
	}
	return fallback
}
