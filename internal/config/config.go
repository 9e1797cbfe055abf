package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"
)

// Config holds the main configuration for the application.
type Config struct {
	Server   Server         `mapstructure:"server"`
	Database Database       `mapstructure:"database"`
	Redis    Redis          `mapstructure:"redis"`
	Email    Email          `mapstructure:"email"`
	Notify   Notify         `mapstructure:"notify"`
	Admin    Admin          `mapstructure:"admin"`
	Session  Session        `mapstructure:"session"`
	Uploads  Uploads        `mapstructure:"uploads"`
	Retry    retry.Strategy `mapstructure:"retry"`
}

// Server holds HTTP server-related configuration.
type Server struct {
	HTTPPort       string   `mapstructure:"http_port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"` // CORS; empty allows any origin
}

// Database holds database master and slave configuration.
type Database struct {
	Master DatabaseNode   `mapstructure:"master"`
	Slaves []DatabaseNode `mapstructure:"slaves"`

	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DatabaseNode holds connection parameters for a single database node.
type DatabaseNode struct {
	Host    string `mapstructure:"host"`
	Port    string `mapstructure:"port"`
	User    string `mapstructure:"user"`
	Pass    string `mapstructure:"pass"`
	Name    string `mapstructure:"name"`
	SSLMode string `mapstructure:"ssl_mode"`
}

// Redis holds Redis connection parameters.
type Redis struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	Database int    `mapstructure:"database"`
}

// Email holds SMTP configuration shared by email endpoints.
type Email struct {
	SMTPHost string        `mapstructure:"smtp_host"`
	SMTPPort int           `mapstructure:"smtp_port"`
	Username string        `mapstructure:"username"`
	Password string        `mapstructure:"password"`
	From     string        `mapstructure:"from"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// Notify holds the two notification endpoints.
type Notify struct {
	General Endpoint `mapstructure:"general"` // contact form
	HR      Endpoint `mapstructure:"hr"`      // vacancy applications
}

// Endpoint describes where one category of events is delivered.
type Endpoint struct {
	Channel        string        `mapstructure:"channel"` // "telegram" or "email"
	Token          string        `mapstructure:"token"`
	ChatID         string        `mapstructure:"chat_id"`
	APIBase        string        `mapstructure:"api_base"`
	To             string        `mapstructure:"to"`
	Subject        string        `mapstructure:"subject"`
	MessageTimeout time.Duration `mapstructure:"message_timeout"`
	FileTimeout    time.Duration `mapstructure:"file_timeout"`
}

// Admin holds the bootstrap administrator credentials.
type Admin struct {
	Login    string `mapstructure:"login"`
	Password string `mapstructure:"password"`
}

// Session holds admin session settings.
type Session struct {
	TTL        time.Duration `mapstructure:"ttl"`
	CookieName string        `mapstructure:"cookie_name"`
	Secure     bool          `mapstructure:"secure"`
}

// Uploads holds the upload directory settings.
type Uploads struct {
	Dir     string `mapstructure:"dir"`
	MaxSize int64  `mapstructure:"max_size"` // bytes
}

// DSN returns the PostgreSQL DSN string for connecting to this database node.
func (n DatabaseNode) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		n.User, n.Pass, n.Host, n.Port, n.Name, n.SSLMode,
	)
}

// mustBindEnv binds secrets and deployment-specific values to Viper keys.
//
// It panics if any environment variable cannot be bound.
func mustBindEnv() {
	bindings := map[string]string{
		"database.master.host": "DB_HOST",
		"database.master.port": "DB_PORT",
		"database.master.user": "DB_USER",
		"database.master.pass": "DB_PASSWORD",
		"database.master.name": "DB_NAME",

		"redis.address":  "REDIS_ADDRESS",
		"redis.password": "REDIS_PASSWORD",
		"redis.database": "REDIS_DATABASE",

		"email.smtp_host": "SMTP_HOST",
		"email.smtp_port": "SMTP_PORT",
		"email.username":  "SMTP_USER",
		"email.password":  "SMTP_PASS",
		"email.from":      "SMTP_FROM",

		"notify.general.token":   "TELEGRAM_TOKEN",
		"notify.general.chat_id": "TELEGRAM_CHAT_ID",
		"notify.general.to":      "CONTACT_EMAIL_TO",
		"notify.hr.token":        "HR_TELEGRAM_TOKEN",
		"notify.hr.chat_id":      "HR_TELEGRAM_CHAT_ID",
		"notify.hr.to":           "HR_EMAIL_TO",

		"admin.login":    "ADMIN_LOGIN",
		"admin.password": "ADMIN_PASSWORD",

		"uploads.dir": "UPLOAD_DIR",
	}

	for key, env := range bindings {
		if err := viper.BindEnv(key, env); err != nil {
			zlog.Logger.Panic().Err(err).Msgf("failed to bind env %s", env)
		}
	}
}

func setDefaults() {
	viper.SetDefault("server.http_port", "8080")
	viper.SetDefault("session.ttl", 12*time.Hour)
	viper.SetDefault("session.cookie_name", "admin_session")
	viper.SetDefault("uploads.dir", "static/uploads")
	viper.SetDefault("uploads.max_size", 25<<20)
	viper.SetDefault("notify.general.channel", "telegram")
	viper.SetDefault("notify.hr.channel", "telegram")
	viper.SetDefault("email.timeout", 30*time.Second)
}

// Must loads and validates the configuration from file and environment variables.
//
// It panics if configuration cannot be read or unmarshalled.
func Must() *Config {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		zlog.Logger.Panic().Err(err).Msg("failed to read config")
	}

	mustBindEnv()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		zlog.Logger.Panic().Err(err).Msgf("failed to unmarshal config: %v", err)
	}

	if err := cfg.validate(); err != nil {
		zlog.Logger.Panic().Err(err).Msg("invalid config")
	}

	return &cfg
}

func (c *Config) validate() error {
	for name, ep := range map[string]Endpoint{"general": c.Notify.General, "hr": c.Notify.HR} {
		switch ep.Channel {
		case "telegram", "email":
		default:
			return fmt.Errorf("notify.%s.channel: unknown channel %q", name, ep.Channel)
		}
	}

	if c.Admin.Login == "" || c.Admin.Password == "" {
		return fmt.Errorf("admin.login and admin.password must be set")
	}

	return nil
}
