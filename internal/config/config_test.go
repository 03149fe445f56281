package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		// Setenv registers the restore on cleanup before the variable is dropped.
		t.Setenv(key, "")
		_ = os.Unsetenv(key)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	unsetEnv(t, "APP_PORT", "PORT", "STORE_DRIVER", "SQLITE_PATH", "MONGODB_URI", "MONGODB_DATABASE",
		"CORS_ALLOWED_ORIGINS", "TRUSTED_PROXIES", "TRANSLATION_FOLDER")

	cfg := LoadConfig()
	assert.Equal(t, "5000", cfg.AppPort)
	assert.Equal(t, StoreDriverSQLite, cfg.StoreDriver)
	assert.Equal(t, "taskmanager.db", cfg.SqlitePath)
	assert.Equal(t, "mongodb://localhost:27017/taskmanager", cfg.MongoURI)
	assert.Equal(t, "taskmanager", cfg.MongoDatabase)
	assert.Empty(t, cfg.TranslationFolder)
	assert.Equal(t, []string{"*"}, cfg.CorsAllowedOrigins)
	assert.Nil(t, cfg.TrustedProxies)
}

func TestLoadConfig_PortFallsBackToPORT(t *testing.T) {
	unsetEnv(t, "APP_PORT")
	t.Setenv("PORT", "8081")
	t.Setenv("STORE_DRIVER", "MySQL")

	cfg := LoadConfig()
	assert.Equal(t, "8081", cfg.AppPort)
	assert.Equal(t, StoreDriverMySQL, cfg.StoreDriver)
}

func TestGetEnv(t *testing.T) {
	t.Setenv("TASKMANAGER_TEST_KEY", "value")
	assert.Equal(t, "value", getEnv("TASKMANAGER_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", getEnv("TASKMANAGER_TEST_MISSING_KEY", "fallback"))
}

func TestParseList(t *testing.T) {
	assert.Nil(t, parseList(""))
	assert.Nil(t, parseList(" , ,"))
	assert.Equal(t, []string{"http://localhost:3000", "https://tasks.example.com"},
		parseList(" http://localhost:3000, ,https://tasks.example.com "))
}
