package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

func LoadEnv() error {
	// Try to load .env file if it exists (for local development).
	// On production, environment variables are set directly.
	err := godotenv.Load()
	if err != nil {
		// .env file not found is not an error - the variables may already
		// be present in the environment.
		return nil
	}
	return nil
}

// ValidateEnv checks that critical environment variables are set.
// Returns an error if any critical variable is missing.
func ValidateEnv() error {
	var missing []string

	// Critical variables - application cannot function without these
	if os.Getenv("JWT_SECRET") == "" {
		missing = append(missing, "JWT_SECRET")
	}
	if os.Getenv("DATABASE_URL") == "" {
		missing = append(missing, "DATABASE_URL")
	}

	if len(missing) > 0 {
		return fmt.Errorf("critical environment variables not set: %v", missing)
	}

	// Non-critical variables - log warnings but don't fail
	if os.Getenv("TELEGRAM_BOT_TOKEN") == "" {
		log.Println("WARNING: TELEGRAM_BOT_TOKEN not set - order notifications will not be sent")
	}
	if os.Getenv("TELEGRAM_CHAT_ID") == "" {
		log.Println("WARNING: TELEGRAM_CHAT_ID not set - order notifications will not be sent")
	}
	if os.Getenv("FRONTEND_URL") == "" {
		log.Println("WARNING: FRONTEND_URL not set - CORS may not work correctly")
	}

	return nil
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// RewardDailyLimit reads REWARD_DAILY_LIMIT, defaulting to one spin per
// calendar day. Invalid values fall back to the default with a warning.
func RewardDailyLimit() int {
	raw := os.Getenv("REWARD_DAILY_LIMIT")
	if raw == "" {
		return 1
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 {
		log.Printf("WARNING: invalid REWARD_DAILY_LIMIT %q, using 1", raw)
		return 1
	}
	return limit
}

// Timezone resolves the TIMEZONE env var (IANA name) used for the daily
// reward rollover. Unset or invalid values fall back to the system zone.
func Timezone() *time.Location {
	name := os.Getenv("TIMEZONE")
	if name == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("WARNING: invalid TIMEZONE %q, using system local time: %v", name, err)
		return time.Local
	}
	return loc
}
