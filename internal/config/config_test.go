package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CBH-BookingService/internal/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
[database]
host = "localhost"
dbname = "cbh_booking"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, "info", cfg.Logs.Level)

	// Ставки по умолчанию соответствуют прайс-листу отеля
	assert.Equal(t, 300.0, cfg.Rates.Standard)
	assert.Equal(t, 800.0, cfg.Rates.Penthouse)
}

func TestLoadOverridesRates(t *testing.T) {
	path := writeConfig(t, `
[database]
host = "localhost"
dbname = "cbh_booking"

[rates]
standard = 250.0
vip = 700.0
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	table := cfg.Rates.RateTable()
	assert.Equal(t, 250.0, table.Rate(domain.RoomStandard))
	assert.Equal(t, 700.0, table.Rate(domain.RoomVIP))
	// Незатронутые ставки остаются дефолтными
	assert.Equal(t, 350.0, table.Rate(domain.RoomDeluxe))
}

func TestLoadRejectsMissingDatabase(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090
`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestDSN(t *testing.T) {
	db := DatabaseConfig{
		Host:     "db.local",
		Port:     5433,
		User:     "cbh",
		Password: "secret",
		DBName:   "cbh_booking",
		SSLMode:  "require",
	}

	assert.Equal(t,
		"host=db.local port=5433 user=cbh password=secret dbname=cbh_booking sslmode=require",
		db.DSN())
}
