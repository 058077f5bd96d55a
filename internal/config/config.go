package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all runtime settings for the application. Values come from
// environment variables, optionally loaded from a .env file for local
// development.
type Config struct {
	// Database settings
	DBType       string // "sqlite" or "postgres"
	DatabasePath string // sqlite file path
	DatabaseURL  string // postgres connection string

	// Telegram settings
	TelegramToken string

	// Reminder scheduler settings
	SchedulerEnabled  bool
	ReminderStartHour int // earliest hour reminders may be delivered
	ReminderEndHour   int // latest hour reminders may be delivered
	ReminderMessage   string

	// Session engine settings
	FeedbackFrequency int // ask for feedback after every N exercises
	ResumeWindowDays  int // days an incomplete session stays resumable
}

// Load reads configuration from the environment. A missing .env file is
// not an error.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		DBType:            getEnv("DB_TYPE", "sqlite"),
		DatabasePath:      getEnv("DATABASE_PATH", "data/rehabbuddy.db"),
		DatabaseURL:       getEnv("DATABASE_URL", ""),
		TelegramToken:     getEnv("TELEGRAM_BOT_TOKEN", ""),
		SchedulerEnabled:  getEnvBool("ENABLE_SCHEDULER", true),
		ReminderStartHour: getEnvInt("REMINDER_START_HOUR", 8),
		ReminderEndHour:   getEnvInt("REMINDER_END_HOUR", 21),
		ReminderMessage:   getEnv("REMINDER_MESSAGE", "Time for your rehabilitation exercises"),
		FeedbackFrequency: getEnvInt("FEEDBACK_FREQUENCY", 2),
		ResumeWindowDays:  getEnvInt("RESUME_WINDOW_DAYS", 7),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
