package cmd

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"barista/internal/core/ports"
	"barista/internal/pkg/errs"
)

const (
	MenuSourceFile     = "file"
	MenuSourcePostgres = "postgres"

	envDevelopment = "development"
)

type Config struct {
	HTTPPort       string
	AppEnv         string
	LogLevel       slog.Level
	TickInterval   time.Duration
	AutoStartClock bool
	MenuSource     string
	MenuFile       string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBSslMode      string
}

// LoadConfig reads the configuration through getenv, usually os.Getenv after the optional
// .env file has been applied. Unset keys take their defaults.
func LoadConfig(getenv func(string) string) (Config, error) {
	lookup := func(key, fallback string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return fallback
	}

	config := Config{
		HTTPPort:   lookup("HTTP_PORT", "8080"),
		AppEnv:     lookup("APP_ENV", "production"),
		MenuSource: strings.ToLower(lookup("MENU_SOURCE", MenuSourceFile)),
		MenuFile:   lookup("MENU_FILE", "menu.yaml"),
		DBHost:     lookup("DB_HOST", "localhost"),
		DBPort:     lookup("DB_PORT", "5432"),
		DBUser:     getenv("DB_USER"),
		DBPassword: getenv("DB_PASSWORD"),
		DBName:     getenv("DB_NAME"),
		DBSslMode:  lookup("DB_SSLMODE", "disable"),
	}

	var err error
	if err = config.LogLevel.UnmarshalText([]byte(lookup("LOG_LEVEL", "info"))); err != nil {
		return Config{}, errs.NewValueIsInvalidErrorWithCause("LOG_LEVEL", err)
	}

	tickMs, err := strconv.Atoi(lookup("TICK_INTERVAL_MS", "100"))
	if err != nil {
		return Config{}, errs.NewValueIsInvalidErrorWithCause("TICK_INTERVAL_MS", err)
	}
	config.TickInterval = time.Duration(tickMs) * time.Millisecond
	if config.TickInterval < ports.MinTickInterval || config.TickInterval > ports.MaxTickInterval {
		return Config{}, errs.NewValueIsOutOfRangeError("TICK_INTERVAL_MS", tickMs,
			ports.MinTickInterval.Milliseconds(), ports.MaxTickInterval.Milliseconds())
	}

	if config.AutoStartClock, err = strconv.ParseBool(lookup("AUTO_START_CLOCK", "true")); err != nil {
		return Config{}, errs.NewValueIsInvalidErrorWithCause("AUTO_START_CLOCK", err)
	}

	switch config.MenuSource {
	case MenuSourceFile, MenuSourcePostgres:
	default:
		return Config{}, errs.NewValueIsInvalidErrorWithCause("MENU_SOURCE",
			fmt.Errorf("%q is not one of %q, %q", config.MenuSource, MenuSourceFile, MenuSourcePostgres))
	}

	return config, nil
}

// IsDevelopment enables engine invariant assertions.
func (c Config) IsDevelopment() bool {
	return strings.EqualFold(c.AppEnv, envDevelopment)
}

// DSN is the Postgres connection string for the menu catalog.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
