package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, "vozip-billing", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 2024, cfg.Arrears.EpochYear)
	assert.Equal(t, 1, cfg.Arrears.DefaultMinMonths)

	require.NoError(t, cfg.validate())
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		cfg := &Config{}
		applyDefaults(cfg)
		return cfg
	}

	t.Run("rejects idle conns above open conns", func(t *testing.T) {
		cfg := base()
		cfg.Database.MaxIdleConns = 50
		assert.Error(t, cfg.validate())
	})

	t.Run("rejects threshold outside 1..5", func(t *testing.T) {
		cfg := base()
		cfg.Arrears.DefaultMinMonths = 6
		assert.Error(t, cfg.validate())
	})

	t.Run("rejects pre-2000 epoch", func(t *testing.T) {
		cfg := base()
		cfg.Arrears.EpochYear = 1999
		assert.Error(t, cfg.validate())
	})

	t.Run("production requires a password and ssl", func(t *testing.T) {
		cfg := base()
		cfg.App.Env = "production"
		assert.Error(t, cfg.validate())

		cfg.Database.Password = "secret"
		assert.Error(t, cfg.validate())

		cfg.Database.SSLMode = "require"
		assert.NoError(t, cfg.validate())
	})
}

func TestArrearsConfig_Epoch(t *testing.T) {
	epoch := (&ArrearsConfig{EpochYear: 2024}).Epoch()
	assert.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), epoch)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	dsn := (&DatabaseConfig{
		Host:     "db.internal",
		Port:     5432,
		User:     "vozip",
		Password: "p@ss/word",
		DBName:   "billing",
		SSLMode:  "require",
	}).DSN()

	assert.Contains(t, dsn, "postgres://")
	assert.Contains(t, dsn, "db.internal:5432")
	assert.Contains(t, dsn, "sslmode=require")
	assert.NotContains(t, dsn, "p@ss/word") // escaped
}
