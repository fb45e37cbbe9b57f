package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv resets every variable Load reads so tests do not leak into each other
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"STORE_DRIVER", "SQLITE_PATH", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME",
		"SERVER_PORT", "LOG_LEVEL", "CORS_ALLOWED_ORIGINS", "JWT_SECRET", "JWT_ACCESS_TOKEN_EXPIRY",
		"GROQ_API_KEY", "VITE_GROQ_API_KEY", "GROQ_MODEL", "VITE_GROQ_MODEL", "COMPLETION_URL",
		"NEWS_RSS_URL", "NEWS_CACHE_TTL", "NEWS_REFRESH_CRON", "RATE_LIMIT_PER_MINUTE",
		"AI_RATE_LIMIT_PER_MINUTE", "REDIS_HOST", "REDIS_PORT", "REDIS_PASSWORD", "REDIS_DB",
		"SMTP_HOST", "SMTP_PORT", "SMTP_USERNAME", "SMTP_PASSWORD", "SMTP_FROM", "SMS_GATEWAY_URL",
		"CONTEXT_ALLOWED_HOSTS",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET", "secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StoreDriverSQLite, cfg.Store.Driver)
	assert.Equal(t, "./data/navigator.db", cfg.Store.SQLitePath)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, 24*time.Hour, cfg.JWT.AccessTokenExpiry)
	assert.Equal(t, "", cfg.Completion.APIKey)
	assert.Equal(t, "llama-3.3-70b-versatile", cfg.Completion.Model)
	assert.Equal(t, defaultCompletionURL, cfg.Completion.URL)
	assert.Equal(t, "https://lex.uz/rss", cfg.News.RSSURL)
	assert.Equal(t, 10*time.Minute, cfg.News.CacheTTL)
	assert.Equal(t, 100, cfg.RateLimit.PerMinute)
	assert.Equal(t, 20, cfg.RateLimit.AIPerMinute)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr())
	assert.Equal(t, "", cfg.DSN())
	assert.Equal(t, []string{"lex.uz"}, cfg.Context.AllowedHosts)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{
			name: "missing jwt secret",
			env:  map[string]string{},
		},
		{
			name: "invalid store driver",
			env:  map[string]string{"JWT_SECRET": "s", "STORE_DRIVER": "postgres"},
		},
		{
			name: "mysql without host",
			env:  map[string]string{"JWT_SECRET": "s", "STORE_DRIVER": "mysql"},
		},
		{
			name: "invalid server port",
			env:  map[string]string{"JWT_SECRET": "s", "SERVER_PORT": "abc"},
		},
		{
			name: "invalid token expiry",
			env:  map[string]string{"JWT_SECRET": "s", "JWT_ACCESS_TOKEN_EXPIRY": "forever"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := Load()

			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}

func TestLoad_CompletionFallbackVariables(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("VITE_GROQ_API_KEY", "vite-key")
	t.Setenv("VITE_GROQ_MODEL", "mixtral")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "vite-key", cfg.Completion.APIKey)
	assert.Equal(t, "mixtral", cfg.Completion.Model)
}

func TestLoad_MySQL(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("STORE_DRIVER", "MySQL")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "3306")
	t.Setenv("DB_USER", "user")
	t.Setenv("DB_PASSWORD", "pass")
	t.Setenv("DB_NAME", "navigator")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StoreDriverMySQL, cfg.Store.Driver)
	assert.Equal(t, "user:pass@tcp(db:3306)/navigator?parseTime=true&charset=utf8mb4&multiStatements=true", cfg.DSN())
}

func TestParseOrigins(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected []string
	}{
		{name: "empty", raw: "", expected: []string{"*"}},
		{name: "only separators", raw: " , ,", expected: []string{"*"}},
		{name: "list", raw: "http://localhost:5173, http://127.0.0.1:5174", expected: []string{"http://localhost:5173", "http://127.0.0.1:5174"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseOrigins(tt.raw))
		})
	}
}

func TestParseHosts(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected []string
	}{
		{name: "empty", raw: "", expected: []string{"lex.uz"}},
		{name: "only separators", raw: " ,", expected: []string{"lex.uz"}},
		{name: "list is lowercased", raw: "Lex.uz, GOV.uz", expected: []string{"lex.uz", "gov.uz"}},
		{name: "wildcard", raw: "*", expected: []string{"*"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseHosts(tt.raw))
		})
	}
}
