package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.Mode)

	assert.Equal(t, "redis", cfg.Storage.Driver)
	assert.Equal(t, "sandbox_wallet", cfg.Storage.SnapshotKey)

	assert.Equal(t, "localhost", cfg.Redis.Host)
	assert.Equal(t, 6379, cfg.Redis.Port)
	assert.Equal(t, 0, cfg.Redis.DB)

	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "sandbox_wallet", cfg.Database.DBName)

	assert.Equal(t, "ethereum", cfg.Chain.DefaultNetwork)
	assert.Equal(t, 10*time.Second, cfg.Chain.RequestTimeout)
	assert.Equal(t, 60*time.Second, cfg.Chain.ConfirmTimeout)
	assert.Empty(t, cfg.Chain.APIKey)

	assert.Equal(t, 500*time.Millisecond, cfg.Simulator.Latency)

	assert.Equal(t, 24*time.Hour, cfg.JWT.Expiry)
	assert.Equal(t, "sandbox-wallet", cfg.JWT.Issuer)
	assert.Empty(t, cfg.AES.Key)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Log.Pretty)
}

func TestLoad_FromYAMLFile(t *testing.T) {
	content := []byte(`
server:
  host: "127.0.0.1"
  port: 9090
  mode: "release"
storage:
  driver: "postgres"
  snapshot_key: "wallet_v2"
chain:
  api_key: "proj-abc123"
  default_network: "polygon"
  confirm_timeout: "90s"
simulator:
  latency: "0s"
log:
  level: "debug"
  pretty: true
`)
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, content, 0644))

	cfg, err := Load(cfgPath)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "postgres", cfg.Storage.Driver)
	assert.Equal(t, "wallet_v2", cfg.Storage.SnapshotKey)
	assert.Equal(t, "proj-abc123", cfg.Chain.APIKey)
	assert.Equal(t, "polygon", cfg.Chain.DefaultNetwork)
	assert.Equal(t, 90*time.Second, cfg.Chain.ConfirmTimeout)
	assert.Equal(t, time.Duration(0), cfg.Simulator.Latency)
	assert.True(t, cfg.Log.Pretty)

	// Unset keys keep their defaults.
	assert.Equal(t, 10*time.Second, cfg.Chain.RequestTimeout)
	assert.Equal(t, "localhost", cfg.Redis.Host)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("SWT_CHAIN_API_KEY", "env-key")
	t.Setenv("SWT_REDIS_PORT", "7000")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "env-key", cfg.Chain.APIKey)
	assert.Equal(t, 7000, cfg.Redis.Port)
	assert.Equal(t, "localhost:7000", cfg.Redis.Addr())
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{
		Host: "db", Port: 5433, User: "u", Password: "p",
		DBName: "wallet", SSLMode: "require",
	}
	assert.Equal(t, "postgres://u:p@db:5433/wallet?sslmode=require", d.DSN())
}
