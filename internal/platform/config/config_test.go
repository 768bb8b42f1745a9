package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViper(overrides map[string]any) *viper.Viper {
	v := viper.New()
	setDefaults(v)
	for k, val := range overrides {
		v.Set(k, val)
	}
	return v
}

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := fromViper(newViper(nil))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, StoreMemory, cfg.StoreBackend)
	assert.Equal(t, time.Hour, cfg.JWTExpiryDuration)
	assert.Equal(t, "erp-ledger", cfg.JWTIssuer)
	assert.Equal(t, "1000", cfg.SalesCashAccountCode)
	assert.Equal(t, "4000", cfg.SalesRevenueCode)
	assert.False(t, cfg.LedgerStrictAccounts)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "5-M", cfg.LoginRateLimit)
	assert.Equal(t, "data/erp_ledger.db", cfg.SQLitePath)
}

func TestFromViper_SQLite(t *testing.T) {
	cfg, err := fromViper(newViper(map[string]any{"STORE_BACKEND": " SQLite ", "SQLITE_PATH": "/var/lib/ledger.db"}))
	require.NoError(t, err)
	assert.Equal(t, StoreSQLite, cfg.StoreBackend)
	assert.Equal(t, "/var/lib/ledger.db", cfg.SQLitePath)
}

func TestFromViper_Overrides(t *testing.T) {
	cfg, err := fromViper(newViper(map[string]any{
		"STORE_BACKEND":          "Postgres",
		"PGSQL_URL":              "postgres://localhost/ledger",
		"JWT_EXPIRY_DURATION":    "15m",
		"LEDGER_STRICT_ACCOUNTS": true,
		"CORS_ALLOWED_ORIGINS":   "https://a.example, https://b.example,,",
	}))
	require.NoError(t, err)

	assert.Equal(t, StorePostgres, cfg.StoreBackend)
	assert.Equal(t, 15*time.Minute, cfg.JWTExpiryDuration)
	assert.True(t, cfg.LedgerStrictAccounts)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
}

func TestFromViper_InvalidExpiryFallsBack(t *testing.T) {
	cfg, err := fromViper(newViper(map[string]any{"JWT_EXPIRY_DURATION": "soon"}))
	require.NoError(t, err)
	assert.Equal(t, time.Hour, cfg.JWTExpiryDuration)
}

func TestFromViper_Errors(t *testing.T) {
	_, err := fromViper(newViper(map[string]any{"STORE_BACKEND": "postgres"}))
	assert.ErrorContains(t, err, "PGSQL_URL")

	_, err = fromViper(newViper(map[string]any{"STORE_BACKEND": "bolt"}))
	assert.ErrorContains(t, err, "unknown STORE_BACKEND")

	_, err = fromViper(newViper(map[string]any{"STORE_BACKEND": "sqlite", "SQLITE_PATH": ""}))
	assert.ErrorContains(t, err, "SQLITE_PATH")

	_, err = fromViper(newViper(map[string]any{"IS_PRODUCTION": true}))
	assert.ErrorContains(t, err, "JWT_SECRET")
}
