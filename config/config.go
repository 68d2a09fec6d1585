package config

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// AppConfig holds environment driven configuration values.
// Sensitive data should never have defaults inside code and must be provided via env files or the environment.
type AppConfig struct {
	AppPort            string
	JWTSecret          string
	TokenTTLHours      int
	SiteName           string
	PublicURL          string
	AdminPath          string
	RateLimitPerMinute int
	AllowedOrigins     []string
	// Gin framework configuration
	GinMode string
	GinPath string
	// Primary database (admin users, inquiries, posts)
	DBDriver    string
	DatabaseURI string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	SQLitePath  string
	// PostStoreURL points the blog catalog at a Postgres database (e.g. Supabase).
	// When empty the catalog is read from the primary database.
	PostStoreURL string
	// Redis for catalog caching and token revocation
	RedisEnabled    bool
	RedisHost       string
	RedisPort       int
	RedisDB         int
	RedisPassword   string
	CacheTTLSeconds int
	// Logging configuration
	LogLevel      string
	LogPath       string
	LogMaxSizeMB  int
	LogMaxBackups int
	LogMaxAgeDays int
	LogCompress   bool
	// SMTP for contact notifications
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string
	SMTPFromName string
	SMTPTLS      bool
	// Contact form
	ContactNotifyEmail    string
	ContactCaptchaEnabled bool
}

var cfg AppConfig
var loaded bool

// Load loads the application configuration. It should be called once during boot.
func Load() AppConfig {
	if loaded {
		return cfg
	}

	// Precedence: .env -> config/config.json -> defaults -> environment variable overrides
	_ = godotenv.Load()

	if err := loadJSONConfig(filepath.Join("config", "config.json"), &cfg); err != nil {
		log.Printf("ignoring invalid config/config.json: %v", err)
	}

	applyDefaults(&cfg)

	applyEnvOverrides(&cfg)

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set in environment variables")
	}

	loaded = true
	return cfg
}

// Get returns the cached configuration, loading it if necessary.
func Get() AppConfig {
	if !loaded {
		return Load()
	}
	return cfg
}

// Set replaces the cached configuration. Used by commands that build the config themselves and by tests.
func Set(c AppConfig) {
	applyDefaults(&c)
	cfg = c
	loaded = true
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// loadJSONConfig reads JSON file into cfg if present. Returns error only for invalid JSON.
func loadJSONConfig(path string, out *AppConfig) error {
	f, err := os.Open(path)
	if err != nil {
		return nil // silently ignore missing file
	}
	defer f.Close()

	var raw section
	dec := json.NewDecoder(f)
	if err := dec.Decode(&raw); err != nil {
		return err
	}

	if app, ok := raw.sub("app"); ok {
		out.AppPort = app.str("AppPort")
		out.JWTSecret = app.str("JWTSecret")
		out.SiteName = app.str("SiteName")
		out.PublicURL = app.str("PublicURL")
		out.AdminPath = app.str("AdminPath")
		if v := app.integer("TokenTTLHours"); v != 0 {
			out.TokenTTLHours = v
		}
		if v := app.integer("RateLimitPerMinute"); v != 0 {
			out.RateLimitPerMinute = v
		}
		if list := app.strings("AllowedOrigins"); len(list) > 0 {
			out.AllowedOrigins = list
		}
	}

	if g, ok := raw.sub("gin"); ok {
		if v := g.str("Mode"); v != "" {
			out.GinMode = v
		}
		if v := g.str("LogPath"); v != "" {
			out.GinPath = v
		}
	}

	if dbs, ok := raw.sub("database"); ok {
		out.DBDriver = dbs.str("Driver")
		out.DatabaseURI = dbs.str("DatabaseURI")
		out.DBHost = dbs.str("DBHost")
		out.DBPort = dbs.str("DBPort")
		out.DBUser = dbs.str("DBUser")
		out.DBPassword = dbs.str("DBPassword")
		out.DBName = dbs.str("DBName")
		out.SQLitePath = dbs.str("SQLitePath")
		out.PostStoreURL = dbs.str("PostStoreURL")
	}

	if rds, ok := raw.sub("redis"); ok {
		out.RedisEnabled = rds.boolean("Enabled")
		out.RedisHost = rds.str("RedisHost")
		if v := rds.integer("RedisPort"); v != 0 {
			out.RedisPort = v
		}
		if v := rds.integer("RedisDB"); v != 0 {
			out.RedisDB = v
		}
		out.RedisPassword = rds.str("RedisPassword")
		if v := rds.integer("CacheTTLSeconds"); v != 0 {
			out.CacheTTLSeconds = v
		}
	}

	if sm, ok := raw.sub("smtp"); ok {
		out.SMTPHost = sm.str("SMTPHost")
		if v := sm.integer("SMTPPort"); v != 0 {
			out.SMTPPort = v
		}
		out.SMTPUsername = sm.str("SMTPUsername")
		out.SMTPPassword = sm.str("SMTPPassword")
		out.SMTPFrom = sm.str("SMTPFrom")
		out.SMTPFromName = sm.str("SMTPFromName")
		out.SMTPTLS = sm.boolean("SMTPTLS")
	}

	if ct, ok := raw.sub("contact"); ok {
		out.ContactNotifyEmail = ct.str("NotifyEmail")
		out.ContactCaptchaEnabled = ct.boolean("CaptchaEnabled")
	}

	if lg, ok := raw.sub("log"); ok {
		if v := lg.str("Level"); v != "" {
			out.LogLevel = v
		}
		if v := lg.str("Path"); v != "" {
			out.LogPath = v
		}
		if v := lg.str("GinMode"); v != "" {
			out.GinMode = v
		}
		if v := lg.str("GinPath"); v != "" {
			out.GinPath = v
		}
		if v := lg.integer("MaxSizeMB"); v != 0 {
			out.LogMaxSizeMB = v
		}
		if v := lg.integer("MaxBackups"); v != 0 {
			out.LogMaxBackups = v
		}
		if v := lg.integer("MaxAgeDays"); v != 0 {
			out.LogMaxAgeDays = v
		}
		out.LogCompress = lg.boolean("Compress")
	}

	// Flat keys for the few settings people tend to put at the top level
	if out.AppPort == "" {
		out.AppPort = raw.str("AppPort")
	}
	if out.JWTSecret == "" {
		out.JWTSecret = raw.str("JWTSecret")
	}
	if out.DatabaseURI == "" {
		out.DatabaseURI = raw.str("DatabaseURI")
	}
	if out.PostStoreURL == "" {
		out.PostStoreURL = raw.str("PostStoreURL")
	}
	if out.LogLevel == "" {
		out.LogLevel = raw.str("LogLevel")
	}

	return nil
}

// section is one object of config.json.
type section map[string]any

func (m section) sub(key string) (section, bool) {
	v, ok := m[key].(map[string]any)
	return section(v), ok
}

func (m section) str(key string) string {
	s, _ := m[key].(string)
	return s
}

func (m section) integer(key string) int {
	switch t := m[key].(type) {
	case float64:
		return int(t)
	case json.Number:
		i, _ := t.Int64()
		return int(i)
	}
	return 0
}

func (m section) boolean(key string) bool {
	b, _ := m[key].(bool)
	return b
}

func (m section) strings(key string) []string {
	arr, _ := m[key].([]any)
	out := make([]string, 0, len(arr))
	for _, it := range arr {
		if s, ok := it.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// applyDefaults sets sane defaults for zero-value fields.
func applyDefaults(c *AppConfig) {
	if c.AppPort == "" {
		c.AppPort = "8080"
	}
	if c.TokenTTLHours == 0 {
		c.TokenTTLHours = 72
	}
	if c.SiteName == "" {
		c.SiteName = "Phoenix Writes"
	}
	if c.PublicURL == "" {
		c.PublicURL = "http://localhost:8080"
	}
	if c.AdminPath == "" {
		c.AdminPath = "/admin-phoenix-panel"
	}
	if !strings.HasPrefix(c.AdminPath, "/") {
		c.AdminPath = "/" + c.AdminPath
	}
	if c.GinMode == "" {
		c.GinMode = "release"
	}
	if c.GinPath == "" {
		c.GinPath = "logs/go_gin.log"
	}
	if c.RateLimitPerMinute == 0 {
		c.RateLimitPerMinute = 60
	}
	if len(c.AllowedOrigins) == 0 {
		c.AllowedOrigins = []string{"*"}
	}
	if c.DBDriver == "" {
		c.DBDriver = "mysql"
	}
	if c.DBHost == "" {
		c.DBHost = "127.0.0.1"
	}
	if c.DBPort == "" {
		c.DBPort = "3306"
	}
	if c.DBUser == "" {
		c.DBUser = "root"
	}
	if c.DBName == "" {
		c.DBName = "phoenix"
	}
	if c.SQLitePath == "" {
		c.SQLitePath = "data/phoenix.db"
	}
	if c.SMTPPort == 0 {
		c.SMTPPort = 587
	}
	if c.RedisHost == "" {
		c.RedisHost = "127.0.0.1"
	}
	if c.RedisPort == 0 {
		c.RedisPort = 6379
	}
	if c.CacheTTLSeconds == 0 {
		c.CacheTTLSeconds = 300
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.LogMaxSizeMB == 0 {
		c.LogMaxSizeMB = 100
	}
	if c.LogMaxBackups == 0 {
		c.LogMaxBackups = 3
	}
	if c.LogMaxAgeDays == 0 {
		c.LogMaxAgeDays = 7
	}
}

// applyEnvOverrides maps known environment variables onto config values when present.
func applyEnvOverrides(c *AppConfig) {
	if v := getEnv("APP_PORT", ""); v != "" {
		c.AppPort = v
	}
	if v := getEnv("JWT_SECRET", ""); v != "" {
		c.JWTSecret = v
	}
	if v := getEnv("TOKEN_TTL_HOURS", ""); v != "" {
		c.TokenTTLHours = mustParseInt(v)
	}
	if v := getEnv("SITE_NAME", ""); v != "" {
		c.SiteName = v
	}
	if v := getEnv("PUBLIC_URL", ""); v != "" {
		c.PublicURL = v
	}
	if v := getEnv("ADMIN_PATH", ""); v != "" {
		c.AdminPath = "/" + strings.TrimPrefix(v, "/")
	}
	if v := getEnv("GIN_MODE", ""); v != "" {
		c.GinMode = v
	}
	if v := getEnv("GIN_PATH", ""); v != "" {
		c.GinPath = v
	}
	if v := getEnv("RATE_LIMIT_PER_MINUTE", ""); v != "" {
		c.RateLimitPerMinute = mustParseInt(v)
	}
	if v := getEnv("CORS_ALLOWED_ORIGINS", ""); v != "" {
		c.AllowedOrigins = readListEnv("CORS_ALLOWED_ORIGINS", c.AllowedOrigins)
	}
	if v := getEnv("DB_DRIVER", ""); v != "" {
		c.DBDriver = strings.ToLower(v)
	}
	if v := getEnv("DATABASE_URI", ""); v != "" {
		c.DatabaseURI = v
	}
	if v := getEnv("DB_HOST", ""); v != "" {
		c.DBHost = v
	}
	if v := getEnv("DB_PORT", ""); v != "" {
		c.DBPort = v
	}
	if v := getEnv("DB_USER", ""); v != "" {
		c.DBUser = v
	}
	if v := getEnv("DB_PASSWORD", ""); v != "" {
		c.DBPassword = v
	}
	if v := getEnv("DB_NAME", ""); v != "" {
		c.DBName = v
	}
	if v := getEnv("SQLITE_PATH", ""); v != "" {
		c.SQLitePath = v
	}
	if v := getEnv("POST_STORE_URL", ""); v != "" {
		c.PostStoreURL = v
	}
	if v := getEnv("REDIS_ENABLED", ""); v != "" {
		c.RedisEnabled = v == "true"
	}
	if v := getEnv("REDIS_HOST", ""); v != "" {
		c.RedisHost = v
	}
	if v := getEnv("REDIS_PORT", ""); v != "" {
		c.RedisPort = mustParseInt(v)
	}
	if v := getEnv("REDIS_DB", ""); v != "" {
		c.RedisDB = mustParseInt(v)
	}
	if v := getEnv("REDIS_PASSWORD", ""); v != "" {
		c.RedisPassword = v
	}
	if v := getEnv("CACHE_TTL_SECONDS", ""); v != "" {
		c.CacheTTLSeconds = mustParseInt(v)
	}
	if v := getEnv("SMTP_HOST", ""); v != "" {
		c.SMTPHost = v
	}
	if v := getEnv("SMTP_PORT", ""); v != "" {
		c.SMTPPort = mustParseInt(v)
	}
	if v := getEnv("SMTP_USERNAME", ""); v != "" {
		c.SMTPUsername = v
	}
	if v := getEnv("SMTP_PASSWORD", ""); v != "" {
		c.SMTPPassword = v
	}
	if v := getEnv("SMTP_FROM", ""); v != "" {
		c.SMTPFrom = v
	}
	if v := getEnv("SMTP_FROM_NAME", ""); v != "" {
		c.SMTPFromName = v
	}
	if v := getEnv("SMTP_TLS", ""); v != "" {
		c.SMTPTLS = v == "true"
	}
	if v := getEnv("CONTACT_NOTIFY_EMAIL", ""); v != "" {
		c.ContactNotifyEmail = v
	}
	if v := getEnv("CONTACT_CAPTCHA_ENABLED", ""); v != "" {
		c.ContactCaptchaEnabled = v == "true"
	}
	if v := getEnv("LOG_LEVEL", ""); v != "" {
		c.LogLevel = v
	}
	if v := getEnv("LOG_PATH", ""); v != "" {
		c.LogPath = v
	}
	if v := getEnv("LOG_MAX_SIZE_MB", ""); v != "" {
		c.LogMaxSizeMB = mustParseInt(v)
	}
	if v := getEnv("LOG_MAX_BACKUPS", ""); v != "" {
		c.LogMaxBackups = mustParseInt(v)
	}
	if v := getEnv("LOG_MAX_AGE_DAYS", ""); v != "" {
		c.LogMaxAgeDays = mustParseInt(v)
	}
	if v := getEnv("LOG_COMPRESS", ""); v != "" {
		c.LogCompress = v == "true"
	}
}

func mustParseInt(val string) int {
	i, err := strconv.Atoi(val)
	if err != nil {
		log.Fatalf("invalid integer value %s: %v", val, err)
	}
	return i
}

func readListEnv(key string, defaults []string) []string {
	if raw := os.Getenv(key); raw != "" {
		return splitAndTrim(raw)
	}
	return defaults
}

func splitAndTrim(raw string) []string {
	items := []string{}
	for _, item := range strings.Split(raw, ",") {
		trimmed := strings.TrimSpace(item)
		if trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}
