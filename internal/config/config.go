// Package config provides configuration for the application
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Store drivers supported by the document store
const (
	StoreDriverSQLite = "sqlite"
	StoreDriverMySQL  = "mysql"
	StoreDriverRedis  = "redis"
	StoreDriverMemory = "memory"
)

// Config holds all configuration for the application
type Config struct {
	Store      StoreConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	Server     ServerConfig
	Logging    LoggingConfig
	CORS       CORSConfig
	JWT        JWTConfig
	Completion CompletionConfig
	News       NewsConfig
	RateLimit  RateLimitConfig
	SMTP       SMTPConfig
	SMS        SMSConfig
	Context    ContextConfig
}

// StoreConfig selects the document store backend
type StoreConfig struct {
	Driver     string
	SQLitePath string
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
}

// RedisConfig holds Redis connection settings
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// ServerConfig holds server settings
type ServerConfig struct {
	Port int
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level string
}

// CORSConfig holds CORS settings
type CORSConfig struct {
	AllowedOrigins []string
}

// JWTConfig holds JWT token configuration
type JWTConfig struct {
	Secret            string
	AccessTokenExpiry time.Duration
}

// CompletionConfig holds settings of the hosted chat-completion API
type CompletionConfig struct {
	APIKey string
	Model  string
	URL    string
}

// NewsConfig holds settings of the official news feed
type NewsConfig struct {
	RSSURL      string
	CacheTTL    time.Duration
	RefreshCron string
}

// RateLimitConfig holds per-IP request limits
type RateLimitConfig struct {
	PerMinute   int
	AIPerMinute int
}

// SMTPConfig holds SMTP server configuration
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// SMSConfig holds SMS gateway configuration
type SMSConfig struct {
	GatewayURL string
}

// ContextConfig limits the hosts the context endpoint may fetch from
type ContextConfig struct {
	AllowedHosts []string
}

const (
	defaultModel         = "llama-3.3-70b-versatile"
	defaultCompletionURL = "https://api.groq.com/openai/v1/chat/completions"
	defaultRSSURL        = "https://lex.uz/rss"
	defaultContextHost   = "lex.uz"
)

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (optional)
	godotenv.Load()

	cfg := &Config{}

	// Store configuration
	driver := strings.ToLower(strings.TrimSpace(os.Getenv("STORE_DRIVER")))
	if driver == "" {
		driver = StoreDriverSQLite
	}
	switch driver {
	case StoreDriverSQLite, StoreDriverMySQL, StoreDriverRedis, StoreDriverMemory:
	default:
		return nil, fmt.Errorf("invalid STORE_DRIVER: %s, must be 'sqlite', 'mysql', 'redis' or 'memory'", driver)
	}
	cfg.Store.Driver = driver

	cfg.Store.SQLitePath = os.Getenv("SQLITE_PATH")
	if cfg.Store.SQLitePath == "" {
		cfg.Store.SQLitePath = "./data/navigator.db"
	}

	// Database configuration is required only for the MySQL store
	if driver == StoreDriverMySQL {
		if err := loadDatabase(cfg); err != nil {
			return nil, err
		}
	}

	// Server configuration
	serverPort, err := getEnvInt("SERVER_PORT", 8080)
	if err != nil {
		return nil, err
	}
	cfg.Server.Port = serverPort

	// Logging configuration
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info" // default level
	}
	cfg.Logging.Level = logLevel

	cfg.CORS.AllowedOrigins = parseOrigins(os.Getenv("CORS_ALLOWED_ORIGINS"))

	// JWT configuration
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	cfg.JWT.Secret = jwtSecret

	accessExpiry, err := getEnvDuration("JWT_ACCESS_TOKEN_EXPIRY", 24*time.Hour)
	if err != nil {
		return nil, err
	}
	cfg.JWT.AccessTokenExpiry = accessExpiry

	// Completion API configuration; a missing key is not fatal, the relay answers with a fallback
	cfg.Completion.APIKey = firstNonEmpty(os.Getenv("GROQ_API_KEY"), os.Getenv("VITE_GROQ_API_KEY"))
	cfg.Completion.Model = firstNonEmpty(os.Getenv("GROQ_MODEL"), os.Getenv("VITE_GROQ_MODEL"), defaultModel)
	cfg.Completion.URL = firstNonEmpty(os.Getenv("COMPLETION_URL"), defaultCompletionURL)

	// News configuration
	cfg.News.RSSURL = firstNonEmpty(os.Getenv("NEWS_RSS_URL"), defaultRSSURL)
	cacheTTL, err := getEnvDuration("NEWS_CACHE_TTL", 10*time.Minute)
	if err != nil {
		return nil, err
	}
	cfg.News.CacheTTL = cacheTTL
	cfg.News.RefreshCron = firstNonEmpty(os.Getenv("NEWS_REFRESH_CRON"), "*/10 * * * *")

	// Rate limits
	if cfg.RateLimit.PerMinute, err = getEnvInt("RATE_LIMIT_PER_MINUTE", 100); err != nil {
		return nil, err
	}
	if cfg.RateLimit.AIPerMinute, err = getEnvInt("AI_RATE_LIMIT_PER_MINUTE", 20); err != nil {
		return nil, err
	}

	// Redis configuration (document store with the redis driver, notification queue)
	cfg.Redis.Host = firstNonEmpty(os.Getenv("REDIS_HOST"), "localhost")
	if cfg.Redis.Port, err = getEnvInt("REDIS_PORT", 6379); err != nil {
		return nil, err
	}
	cfg.Redis.Password = os.Getenv("REDIS_PASSWORD") // optional
	if cfg.Redis.DB, err = getEnvInt("REDIS_DB", 0); err != nil {
		return nil, err
	}

	// SMTP configuration (optional, for the notification worker)
	cfg.SMTP.Host = firstNonEmpty(os.Getenv("SMTP_HOST"), "localhost")
	if cfg.SMTP.Port, err = getEnvInt("SMTP_PORT", 587); err != nil {
		return nil, err
	}
	cfg.SMTP.Username = os.Getenv("SMTP_USERNAME") // optional
	cfg.SMTP.Password = os.Getenv("SMTP_PASSWORD") // optional
	cfg.SMTP.From = firstNonEmpty(os.Getenv("SMTP_FROM"), "noreply@benefitnavigator.uz")

	cfg.SMS.GatewayURL = os.Getenv("SMS_GATEWAY_URL") // optional

	// Context documents are fetched from lex.uz and its subdomains unless configured otherwise
	cfg.Context.AllowedHosts = parseHosts(os.Getenv("CONTEXT_ALLOWED_HOSTS"))

	return cfg, nil
}

// loadDatabase reads the MySQL connection settings
func loadDatabase(cfg *Config) error {
	dbHost := os.Getenv("DB_HOST")
	if dbHost == "" {
		return fmt.Errorf("DB_HOST is required")
	}
	cfg.Database.Host = dbHost

	dbPortStr := os.Getenv("DB_PORT")
	if dbPortStr == "" {
		return fmt.Errorf("DB_PORT is required")
	}
	dbPort, err := strconv.Atoi(dbPortStr)
	if err != nil {
		return fmt.Errorf("invalid DB_PORT: %w", err)
	}
	cfg.Database.Port = dbPort

	dbUser := os.Getenv("DB_USER")
	if dbUser == "" {
		return fmt.Errorf("DB_USER is required")
	}
	cfg.Database.User = dbUser

	dbPassword := os.Getenv("DB_PASSWORD")
	if dbPassword == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	cfg.Database.Password = dbPassword

	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		return fmt.Errorf("DB_NAME is required")
	}
	cfg.Database.DBName = dbName

	return nil
}

// parseOrigins parses comma-separated CORS origins, defaulting to allow all
func parseOrigins(raw string) []string {
	origins := splitList(raw)
	if len(origins) == 0 {
		// Default to allow all origins if not specified (for development)
		return []string{"*"}
	}
	return origins
}

// parseHosts parses comma-separated host names, defaulting to lex.uz
func parseHosts(raw string) []string {
	hosts := splitList(strings.ToLower(raw))
	if len(hosts) == 0 {
		return []string{defaultContextHost}
	}
	return hosts
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	items := make([]string, 0, len(parts))
	for _, item := range parts {
		item = strings.TrimSpace(item)
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}

func getEnvInt(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getEnvDuration(key string, fallback time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

// DSN returns the database connection string
func (c *Config) DSN() string {
	if c.Database.Host == "" {
		return ""
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&charset=utf8mb4&multiStatements=true",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
	)
}

// RedisAddr returns the Redis address in host:port form
func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
