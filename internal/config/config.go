package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	DB        DBConfig
	JWT       JWTConfig
	S3        S3Config
	Log       LogConfig
	Email     EmailConfig
	Dashboard DashboardConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`

	// AllowedOrigins lists the browser origins accepted by CORS.
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// JWTConfig holds the settings used to verify caller identity tokens.
type JWTConfig struct {
	Secret string `mapstructure:"secret"`
	Issuer string `mapstructure:"issuer"`
}

// S3Config holds document storage settings.
type S3Config struct {
	Region        string `mapstructure:"region"`
	Bucket        string `mapstructure:"bucket"`
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	MaxFileSizeMB int64  `mapstructure:"max_file_size_mb"`
	PresignExpiry int64  `mapstructure:"presign_expiry"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// EmailConfig holds outbound email settings.
type EmailConfig struct {
	Provider    string `mapstructure:"provider"`
	Region      string `mapstructure:"region"`
	FromAddress string `mapstructure:"from_address"`
	FromName    string `mapstructure:"from_name"`
}

// DashboardConfig tunes the aggregation views.
type DashboardConfig struct {
	TrendMonths      int `mapstructure:"trend_months"`
	UpcomingDays     int `mapstructure:"upcoming_days"`
	RecentClientRows int `mapstructure:"recent_client_rows"`
}

// Load reads configuration from environment variables with the TAXDESK_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("TAXDESK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "taxdesk")
	v.SetDefault("db.password", "taxdesk_secret")
	v.SetDefault("db.name", "taxdesk_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.issuer", "taxdesk")

	v.SetDefault("s3.region", "ap-south-1")
	v.SetDefault("s3.bucket", "taxdesk-documents")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.max_file_size_mb", 25)
	v.SetDefault("s3.presign_expiry", 900)

	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	v.SetDefault("email.provider", "noop")
	v.SetDefault("email.region", "ap-south-1")
	v.SetDefault("email.from_address", "office@taxdesk.local")
	v.SetDefault("email.from_name", "Taxdesk")

	v.SetDefault("dashboard.trend_months", 6)
	v.SetDefault("dashboard.upcoming_days", 7)
	v.SetDefault("dashboard.recent_client_rows", 5)

	// Nested keys are not picked up by AutomaticEnv alone.
	envBindings := map[string]string{
		"server.port":                  "TAXDESK_SERVER_PORT",
		"server.read_timeout":          "TAXDESK_SERVER_READ_TIMEOUT",
		"server.write_timeout":         "TAXDESK_SERVER_WRITE_TIMEOUT",
		"server.environment":           "TAXDESK_SERVER_ENVIRONMENT",
		"server.allowed_origins":       "TAXDESK_SERVER_ALLOWED_ORIGINS",
		"db.host":                      "TAXDESK_DB_HOST",
		"db.port":                      "TAXDESK_DB_PORT",
		"db.user":                      "TAXDESK_DB_USER",
		"db.password":                  "TAXDESK_DB_PASSWORD",
		"db.name":                      "TAXDESK_DB_NAME",
		"db.sslmode":                   "TAXDESK_DB_SSLMODE",
		"db.max_open":                  "TAXDESK_DB_MAX_OPEN",
		"db.max_idle":                  "TAXDESK_DB_MAX_IDLE",
		"jwt.secret":                   "TAXDESK_JWT_SECRET",
		"jwt.issuer":                   "TAXDESK_JWT_ISSUER",
		"s3.region":                    "TAXDESK_S3_REGION",
		"s3.bucket":                    "TAXDESK_S3_BUCKET",
		"s3.endpoint":                  "TAXDESK_S3_ENDPOINT",
		"s3.access_key":                "TAXDESK_S3_ACCESS_KEY",
		"s3.secret_key":                "TAXDESK_S3_SECRET_KEY",
		"s3.max_file_size_mb":          "TAXDESK_S3_MAX_FILE_SIZE_MB",
		"s3.presign_expiry":            "TAXDESK_S3_PRESIGN_EXPIRY",
		"log.level":                    "TAXDESK_LOG_LEVEL",
		"log.format":                   "TAXDESK_LOG_FORMAT",
		"email.provider":               "TAXDESK_EMAIL_PROVIDER",
		"email.region":                 "TAXDESK_EMAIL_REGION",
		"email.from_address":           "TAXDESK_EMAIL_FROM_ADDRESS",
		"email.from_name":              "TAXDESK_EMAIL_FROM_NAME",
		"dashboard.trend_months":       "TAXDESK_DASHBOARD_TREND_MONTHS",
		"dashboard.upcoming_days":      "TAXDESK_DASHBOARD_UPCOMING_DAYS",
		"dashboard.recent_client_rows": "TAXDESK_DASHBOARD_RECENT_CLIENT_ROWS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Hosting platforms inject PORT; honour it unless the prefixed variable is set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("TAXDESK_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:           serverPort,
		ReadTimeout:    v.GetDuration("server.read_timeout"),
		WriteTimeout:   v.GetDuration("server.write_timeout"),
		Environment:    v.GetString("server.environment"),
		AllowedOrigins: splitList(v.GetString("server.allowed_origins")),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.JWT = JWTConfig{
		Secret: v.GetString("jwt.secret"),
		Issuer: v.GetString("jwt.issuer"),
	}
	cfg.S3 = S3Config{
		Region:        v.GetString("s3.region"),
		Bucket:        v.GetString("s3.bucket"),
		Endpoint:      v.GetString("s3.endpoint"),
		AccessKey:     v.GetString("s3.access_key"),
		SecretKey:     v.GetString("s3.secret_key"),
		MaxFileSizeMB: v.GetInt64("s3.max_file_size_mb"),
		PresignExpiry: v.GetInt64("s3.presign_expiry"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	cfg.Email = EmailConfig{
		Provider:    v.GetString("email.provider"),
		Region:      v.GetString("email.region"),
		FromAddress: v.GetString("email.from_address"),
		FromName:    v.GetString("email.from_name"),
	}
	cfg.Dashboard = DashboardConfig{
		TrendMonths:      v.GetInt("dashboard.trend_months"),
		UpcomingDays:     v.GetInt("dashboard.upcoming_days"),
		RecentClientRows: v.GetInt("dashboard.recent_client_rows"),
	}

	if cfg.Dashboard.TrendMonths <= 0 {
		return nil, fmt.Errorf("dashboard.trend_months must be positive, got %d", cfg.Dashboard.TrendMonths)
	}

	return cfg, nil
}

// splitList parses a comma-separated environment value, dropping blanks.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
