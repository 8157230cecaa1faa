package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "")
	t.Setenv("DATA_SOURCE", "")
	t.Setenv("SESSION_STORE", "")
	t.Setenv("ORG_HEADCOUNT", "")
	t.Setenv("SESSION_TTL_HOURS", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")

	cfg := Load()

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, DataSourceFixtures, cfg.DataSource)
	assert.Equal(t, SessionStoreMemory, cfg.SessionStore)
	assert.Equal(t, 120, cfg.OrgHeadcount)
	assert.Equal(t, 7*24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.CORSOrigins)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("DATA_SOURCE", "Postgres")
	t.Setenv("ORG_HEADCOUNT", "not-a-number")
	t.Setenv("SESSION_TTL_HOURS", "2")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example,")

	cfg := Load()

	assert.Equal(t, "9000", cfg.ServerPort)
	assert.Equal(t, DataSourcePostgres, cfg.DataSource)
	assert.Equal(t, 120, cfg.OrgHeadcount)
	assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
}
