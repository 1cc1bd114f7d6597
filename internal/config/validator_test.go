package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appmodel/apphost/internal/config"
)

func TestValidate(t *testing.T) {
	validator, err := config.NewValidator()
	require.NoError(t, err)

	t.Run("default config is valid", func(t *testing.T) {
		assert.NoError(t, validator.Validate(config.DefaultConfig()))
	})

	t.Run("empty config is valid", func(t *testing.T) {
		assert.NoError(t, validator.Validate(&config.Config{}))
	})

	t.Run("registry with port is valid", func(t *testing.T) {
		cfg := config.DefaultConfig()
		cfg.Registry = "registry.example.com:5000"
		assert.NoError(t, validator.Validate(cfg))
	})

	t.Run("registry with scheme is rejected", func(t *testing.T) {
		cfg := config.DefaultConfig()
		cfg.Registry = "https://registry.example.com"

		err := validator.Validate(cfg)
		require.Error(t, err)

		var verrs config.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.NotEmpty(t, verrs)
	})

	t.Run("host with spaces is rejected", func(t *testing.T) {
		cfg := config.DefaultConfig()
		cfg.Run.Host = "not a host"
		assert.Error(t, validator.Validate(cfg))
	})

	t.Run("timestamps setting is accepted", func(t *testing.T) {
		cfg := config.DefaultConfig()
		cfg.Log.Timestamps = boolPtr(false)
		assert.NoError(t, validator.Validate(cfg))
	})
}

func boolPtr(b bool) *bool { return &b }
