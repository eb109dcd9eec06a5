package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig

	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	Postgres PostgresConfig
	Auth     AuthConfig
	SMTP     SMTPConfig
	CORS     CORSConfig

	// LLM Provider Abstraction
	LLM LLMConfig

	GoogleCalendar GoogleCalendarConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type AuthConfig struct {
	JWTSecret      string
	TokenTTL       time.Duration
	CookieName     string
	CookieDomain   string
	CookieSecure   bool
	ResetTokenTTL  time.Duration
	AdminEmail     string
	AdminPassword  string
	AdminUsername  string
	SeedAdmin      bool
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type CORSConfig struct {
	AllowedOrigins []string
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"`
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name              string `yaml:"name"`
	Enabled           bool   `yaml:"enabled"`
	Priority          int    `yaml:"priority"`
	APIKey            string `yaml:"api_key"`
	BaseURL           string `yaml:"base_url,omitempty"`
	Model             string `yaml:"model"`
	RequestsPerMinute int    `yaml:"requests_per_minute"`
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
	Timezone        string
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/taskmate/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/taskmate/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.Postgres.Host = viper.GetString("postgres.host")
	cfg.Postgres.Port = viper.GetInt("postgres.port")
	cfg.Postgres.User = viper.GetString("postgres.user")
	cfg.Postgres.Password = viper.GetString("postgres.password")
	cfg.Postgres.DBName = viper.GetString("postgres.dbname")
	cfg.Postgres.SSLMode = viper.GetString("postgres.sslmode")

	cfg.Auth.JWTSecret = viper.GetString("auth.jwt_secret")
	cfg.Auth.TokenTTL = viper.GetDuration("auth.token_ttl")
	cfg.Auth.CookieName = viper.GetString("auth.cookie_name")
	cfg.Auth.CookieDomain = viper.GetString("auth.cookie_domain")
	cfg.Auth.CookieSecure = viper.GetBool("auth.cookie_secure")
	cfg.Auth.ResetTokenTTL = viper.GetDuration("auth.reset_token_ttl")
	cfg.Auth.SeedAdmin = viper.GetBool("auth.seed_admin")
	cfg.Auth.AdminEmail = viper.GetString("auth.admin_email")
	cfg.Auth.AdminUsername = viper.GetString("auth.admin_username")
	cfg.Auth.AdminPassword = viper.GetString("auth.admin_password")

	cfg.SMTP.Host = viper.GetString("smtp.host")
	cfg.SMTP.Port = viper.GetInt("smtp.port")
	cfg.SMTP.Username = viper.GetString("smtp.username")
	cfg.SMTP.Password = viper.GetString("smtp.password")
	cfg.SMTP.From = viper.GetString("smtp.from")

	cfg.CORS.AllowedOrigins = viper.GetStringSlice("cors.allowed_origins")

	if err := viper.UnmarshalKey("llm", &cfg.LLM); err != nil {
		return nil, fmt.Errorf("error parsing llm config: %w", err)
	}

	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	cfg.GoogleCalendar.Timezone = viper.GetString("google_calendar.timezone")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.mode", "development")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("postgres.host", "localhost")
	viper.SetDefault("postgres.port", 5432)
	viper.SetDefault("postgres.user", "taskmate")
	viper.SetDefault("postgres.dbname", "taskmate")
	viper.SetDefault("postgres.sslmode", "disable")

	viper.SetDefault("auth.token_ttl", "24h")
	viper.SetDefault("auth.cookie_name", "jwt")
	viper.SetDefault("auth.cookie_secure", true)
	viper.SetDefault("auth.reset_token_ttl", "30m")
	viper.SetDefault("auth.seed_admin", false)

	viper.SetDefault("smtp.port", 587)

	viper.SetDefault("cors.allowed_origins", []string{"http://localhost:3000"})

	viper.SetDefault("llm.fallback_enabled", true)
	viper.SetDefault("llm.retry_attempts", 2)
	viper.SetDefault("llm.retry_delay", "1s")
	viper.SetDefault("llm.max_total_timeout", "90s")

	viper.SetDefault("google_calendar.timezone", "UTC")
}

// RetryDelayDuration parses the retry delay string, defaulting to 1s.
func (c LLMConfig) RetryDelayDuration() time.Duration {
	d, err := time.ParseDuration(c.RetryDelay)
	if err != nil || d <= 0 {
		return time.Second
	}
	return d
}

// MaxTotalTimeoutDuration parses the global timeout string, defaulting to 90s.
func (c LLMConfig) MaxTotalTimeoutDuration() time.Duration {
	d, err := time.ParseDuration(c.MaxTotalTimeout)
	if err != nil || d <= 0 {
		return 90 * time.Second
	}
	return d
}
