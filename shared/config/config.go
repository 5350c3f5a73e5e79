// Package config resolves the dotted configuration keys of chainhash from an
// environment style lookup.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

var ErrInvalidValue = errors.New("invalid config value")

// LookupFunc reports the raw value of an environment variable.
type LookupFunc func(name string) (string, bool)

type Config struct {
	InitialBuckets int
	LogLevel       string
	Top            int
	Hash           string
}

func Default() Config {
	return Config{
		InitialBuckets: 16,
		LogLevel:       "info",
		Top:            10,
		Hash:           "fnv",
	}
}

// EnvName maps a dotted key to its variable name,
// e.g. config.log.level becomes CONFIG_LOG_LEVEL.
func EnvName(key string) string {
	return strings.ToUpper(strings.ReplaceAll(key, delimiter, "_"))
}

// FromEnv loads the configuration from the process environment.
func FromEnv() (Config, error) {
	return Load(os.LookupEnv)
}

// Load overlays the values found through lookup on Default.
func Load(lookup LookupFunc) (Config, error) {
	cfg := Default()

	var err error
	if cfg.InitialBuckets, err = positiveInt(lookup, ConfigHashTableInitialBuckets, cfg.InitialBuckets); err != nil {
		return Config{}, err
	}
	if cfg.Top, err = positiveInt(lookup, ConfigWordFreqTop, cfg.Top); err != nil {
		return Config{}, err
	}
	if v, ok := lookup(EnvName(ConfigLogLevel)); ok {
		cfg.LogLevel = v
	}
	if v, ok := lookup(EnvName(ConfigWordFreqHash)); ok {
		switch v {
		case "fnv", "xxhash":
			cfg.Hash = v
		default:
			return Config{}, fmt.Errorf("%s=%q: %w", ConfigWordFreqHash, v, ErrInvalidValue)
		}
	}
	return cfg, nil
}

func positiveInt(lookup LookupFunc, key string, fallback int) (int, error) {
	raw, ok := lookup(EnvName(key))
	if !ok {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s=%q: %w: %w", key, raw, ErrInvalidValue, err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%s=%d must be positive: %w", key, n, ErrInvalidValue)
	}
	return n, nil
}
