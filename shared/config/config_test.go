package config_test

import (
	"testing"

	"github.com/on-the-ground/chainhash/shared/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupFrom(env map[string]string) config.LookupFunc {
	return func(name string) (string, bool) {
		v, ok := env[name]
		return v, ok
	}
}

func TestEnvName(t *testing.T) {
	assert.Equal(t, "CONFIG_HASHTABLE_INITIAL_BUCKETS", config.EnvName(config.ConfigHashTableInitialBuckets))
	assert.Equal(t, "CONFIG_LOG_LEVEL", config.EnvName(config.ConfigLogLevel))
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(lookupFrom(nil))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_Overrides(t *testing.T) {
	cfg, err := config.Load(lookupFrom(map[string]string{
		"CONFIG_HASHTABLE_INITIAL_BUCKETS": "3",
		"CONFIG_LOG_LEVEL":                 "debug",
		"CONFIG_WORDFREQ_TOP":              "25",
		"CONFIG_WORDFREQ_HASH":             "xxhash",
	}))
	require.NoError(t, err)
	assert.Equal(t, config.Config{
		InitialBuckets: 3,
		LogLevel:       "debug",
		Top:            25,
		Hash:           "xxhash",
	}, cfg)
}

func TestLoad_InvalidValues(t *testing.T) {
	for name, env := range map[string]map[string]string{
		"not a number": {"CONFIG_HASHTABLE_INITIAL_BUCKETS": "many"},
		"zero buckets": {"CONFIG_HASHTABLE_INITIAL_BUCKETS": "0"},
		"negative top": {"CONFIG_WORDFREQ_TOP": "-1"},
		"unknown hash": {"CONFIG_WORDFREQ_HASH": "md5"},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := config.Load(lookupFrom(env))
			assert.ErrorIs(t, err, config.ErrInvalidValue)
		})
	}
}
