package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViper(values map[string]any) *viper.Viper {
	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("REPOSITORY", RepositoryMemory)
	v.SetDefault("EVENT_BUS", EventBusNone)
	v.SetDefault("SUMMARY_CACHE_TTL", "5m")
	for key, value := range values {
		v.Set(key, value)
	}
	return v
}

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := fromViper(newViper(nil))

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, RepositoryMemory, cfg.Repository)
	assert.Equal(t, EventBusNone, cfg.EventBus)
	assert.Equal(t, 5*time.Minute, cfg.SummaryCacheTTL)
	assert.Empty(t, cfg.CORSAllowedOrigins)
}

func TestFromViper_PostgresRequiresURL(t *testing.T) {
	_, err := fromViper(newViper(map[string]any{"REPOSITORY": "postgres"}))
	assert.Error(t, err)

	cfg, err := fromViper(newViper(map[string]any{
		"REPOSITORY": "Postgres",
		"PGSQL_URL":  "postgres://localhost/cards",
	}))
	require.NoError(t, err)
	assert.Equal(t, RepositoryPostgres, cfg.Repository)
}

func TestFromViper_RejectsUnknownBackends(t *testing.T) {
	_, err := fromViper(newViper(map[string]any{"REPOSITORY": "sqlite"}))
	assert.Error(t, err)

	_, err = fromViper(newViper(map[string]any{"EVENT_BUS": "kafka"}))
	assert.Error(t, err)
}

func TestFromViper_ParsesListsAndDurations(t *testing.T) {
	cfg, err := fromViper(newViper(map[string]any{
		"CORS_ALLOWED_ORIGINS": "http://a.example, http://b.example ,",
		"SUMMARY_CACHE_TTL":    "30s",
	}))

	require.NoError(t, err)
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 30*time.Second, cfg.SummaryCacheTTL)
}

func TestFromViper_InvalidTTLFallsBack(t *testing.T) {
	cfg, err := fromViper(newViper(map[string]any{"SUMMARY_CACHE_TTL": "soon"}))

	require.NoError(t, err)
	assert.Equal(t, 5*time.Minute, cfg.SummaryCacheTTL)
}
