package config

import (
	"time"

	"github.com/spf13/viper"
)

const DefaultDatabasePath = "./booklog.db"

type (
	Config struct {
		HTTP
		Database
		Auth
		Global
		Seed
		ReadOnly
		SummaryLog
	}

	HTTP struct {
		Port int32
		Host string
	}
	Database struct {
		Path string
	}
	Auth struct {
		TokenSecret string
		TokenTTL    time.Duration
		BcryptCost  int
	}
	Global struct {
		ShutdownTimeoutInSeconds int
		Diagnostics              bool // include error detail in 500 responses
	}
	Seed struct {
		AdminUsername string
		AdminPassword string
	}
	ReadOnly struct {
		Enabled bool
	}
	SummaryLog struct {
		Enabled  bool
		Schedule string // Cron format: "0 8 * * *" = daily at 08:00
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 5000)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("diagnostics", false)
	v.SetDefault("database_path", DefaultDatabasePath)

	// Auth defaults
	v.SetDefault("auth_token_secret", "") // Auto-generated if empty
	v.SetDefault("auth_token_ttl", "24h")
	v.SetDefault("auth_bcrypt_cost", 10)

	// Bootstrap admin account, created only when the users table is empty
	v.SetDefault("seed_admin_username", "admin")
	v.SetDefault("seed_admin_password", "admin123")

	// Read-only (guest) mode defaults
	v.SetDefault("read_only_mode", false)

	// Summary snapshot log defaults
	v.SetDefault("summary_log_enabled", false)
	v.SetDefault("summary_log_schedule", "0 8 * * *") // Daily at 08:00

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		Auth: Auth{
			TokenSecret: v.GetString("AUTH_TOKEN_SECRET"),
			TokenTTL:    v.GetDuration("AUTH_TOKEN_TTL"),
			BcryptCost:  v.GetInt("AUTH_BCRYPT_COST"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
			Diagnostics:              v.GetBool("DIAGNOSTICS"),
		},
		Seed: Seed{
			AdminUsername: v.GetString("SEED_ADMIN_USERNAME"),
			AdminPassword: v.GetString("SEED_ADMIN_PASSWORD"),
		},
		ReadOnly: ReadOnly{
			Enabled: v.GetBool("READ_ONLY_MODE"),
		},
		SummaryLog: SummaryLog{
			Enabled:  v.GetBool("SUMMARY_LOG_ENABLED"),
			Schedule: v.GetString("SUMMARY_LOG_SCHEDULE"),
		},
	}
}
