package config

import (
	"time"

	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Global
		Database
		Audit
		Tasks
		Auth
		Demo
		Reset
	}

	HTTP struct {
		Port int32
		Host string
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
	Database struct {
		Path          string
		SchemaVersion int
		LogSQL        bool // Log every statement through gorm's logger
	}
	Audit struct {
		Dir string // Snapshot directory; empty disables snapshots
	}
	Tasks struct {
		Enabled         bool
		Workers         int
		ReleaseAfter    time.Duration
		CleanupInterval time.Duration
	}
	Auth struct {
		TokenHash  string // bcrypt hash of the API token; empty disables the write guard
		BcryptCost int
	}
	Demo struct {
		Enabled bool // Reject every write request
	}
	Reset struct {
		Schedule string // Cron format: "0 * * * *" = hourly; empty disables
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8188)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("schema_version", DefaultSchemaVersion)
	v.SetDefault("database_log_sql", false)
	v.SetDefault("audit_dir", "")

	// Task queue defaults
	v.SetDefault("tasks_enabled", true)
	v.SetDefault("task_workers", 1)
	v.SetDefault("task_release_after", "15m")
	v.SetDefault("task_cleanup_interval", "1h")

	// Auth defaults
	v.SetDefault("api_token_hash", "")
	v.SetDefault("api_token_bcrypt_cost", DefaultBcryptCost)

	v.SetDefault("demo_mode", false)
	v.SetDefault("reset_schedule", "")

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Database: Database{
			Path:          v.GetString("DATABASE_PATH"),
			SchemaVersion: v.GetInt("SCHEMA_VERSION"),
			LogSQL:        v.GetBool("DATABASE_LOG_SQL"),
		},
		Audit: Audit{
			Dir: v.GetString("AUDIT_DIR"),
		},
		Tasks: Tasks{
			Enabled:         v.GetBool("TASKS_ENABLED"),
			Workers:         v.GetInt("TASK_WORKERS"),
			ReleaseAfter:    v.GetDuration("TASK_RELEASE_AFTER"),
			CleanupInterval: v.GetDuration("TASK_CLEANUP_INTERVAL"),
		},
		Auth: Auth{
			TokenHash:  v.GetString("API_TOKEN_HASH"),
			BcryptCost: v.GetInt("API_TOKEN_BCRYPT_COST"),
		},
		Demo: Demo{
			Enabled: v.GetBool("DEMO_MODE"),
		},
		Reset: Reset{
			Schedule: v.GetString("RESET_SCHEDULE"),
		},
	}
}
