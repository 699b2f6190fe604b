package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"HTTP_ADDRESS", "DATABASE_URL", "REDIS_ADDR", "KAFKA_BROKERS", "JWT_SECRET", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
http:
  address: ":9090"
database:
  host: db
  port: 5432
  user: app
  password: secret
  name: hotels
kafka:
  brokers: ["kafka:9092"]
auth:
  jwt_secret: s3cret
booking:
  hotels_cache_ttl_seconds: 30
  recheck_eligibility_on_change: true
`)

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.HTTP.Address)
	assert.Equal(t, "host=db port=5432 user=app password=secret dbname=hotels sslmode=disable", cfg.Database.DSN())
	assert.Equal(t, []string{"kafka:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "booking-events", cfg.Kafka.BookingEventsTopic)
	assert.Equal(t, 30, cfg.Booking.HotelsCacheTTL)
	assert.True(t, cfg.Booking.RecheckEligibilityOnChange)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 24, cfg.Auth.TokenTTLHours)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	path := writeConfig(t, `
auth:
  jwt_secret: from-file
`)
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/hotels")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("REDIS_ADDR", "redis:6379")

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "postgres://u:p@localhost:5432/hotels", cfg.Database.DSN())
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "from-env", cfg.Auth.JWTSecret)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
}

func TestLoadConfig_Errors(t *testing.T) {
	clearEnv(t)
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.ErrorContains(t, err, "failed to read config")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := LoadConfig(writeConfig(t, "http: ["))
		assert.ErrorContains(t, err, "failed to parse config")
	})

	t.Run("missing jwt secret", func(t *testing.T) {
		_, err := LoadConfig(writeConfig(t, "http:\n  address: \":1\"\n"))
		assert.ErrorContains(t, err, "jwt_secret")
	})

	t.Run("bad log format", func(t *testing.T) {
		_, err := LoadConfig(writeConfig(t, "auth:\n  jwt_secret: x\nlog:\n  format: xml\n"))
		assert.ErrorContains(t, err, "log.format")
	})
}
