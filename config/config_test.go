package config

import (
	"os"
	"testing"
	"time"
)

func TestLoadEnv(t *testing.T) {
	// LoadEnv returns nil when no .env file exists
	err := LoadEnv()
	if err != nil {
		t.Errorf("expected nil, got %v", err)
	}
}

func TestValidateEnvAllSet(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret")
	os.Setenv("DATABASE_URL", "test-db-url")
	defer os.Unsetenv("JWT_SECRET")
	defer os.Unsetenv("DATABASE_URL")

	err := ValidateEnv()
	if err != nil {
		t.Errorf("expected nil, got %v", err)
	}
}

func TestValidateEnvMissingJWTSecret(t *testing.T) {
	os.Unsetenv("JWT_SECRET")
	os.Setenv("DATABASE_URL", "test-db-url")
	defer os.Unsetenv("DATABASE_URL")

	err := ValidateEnv()
	if err == nil {
		t.Error("expected error for missing JWT_SECRET")
	}
}

func TestValidateEnvMissingDatabaseURL(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret")
	os.Unsetenv("DATABASE_URL")
	defer os.Unsetenv("JWT_SECRET")

	err := ValidateEnv()
	if err == nil {
		t.Error("expected error for missing DATABASE_URL")
	}
}

func TestGetEnvExisting(t *testing.T) {
	os.Setenv("TEST_GET_ENV_KEY", "test-value")
	defer os.Unsetenv("TEST_GET_ENV_KEY")

	result := GetEnv("TEST_GET_ENV_KEY", "default")
	if result != "test-value" {
		t.Errorf("expected 'test-value', got '%s'", result)
	}
}

func TestGetEnvMissing(t *testing.T) {
	os.Unsetenv("TEST_GET_ENV_MISSING")
	result := GetEnv("TEST_GET_ENV_MISSING", "fallback")
	if result != "fallback" {
		t.Errorf("expected 'fallback', got '%s'", result)
	}
}

func TestRewardDailyLimitDefault(t *testing.T) {
	os.Unsetenv("REWARD_DAILY_LIMIT")
	if got := RewardDailyLimit(); got != 1 {
		t.Errorf("expected default limit 1, got %d", got)
	}
}

func TestRewardDailyLimitFromEnv(t *testing.T) {
	os.Setenv("REWARD_DAILY_LIMIT", "2")
	defer os.Unsetenv("REWARD_DAILY_LIMIT")

	if got := RewardDailyLimit(); got != 2 {
		t.Errorf("expected limit 2, got %d", got)
	}
}

func TestRewardDailyLimitInvalidFallsBack(t *testing.T) {
	for _, raw := range []string{"zero", "0", "-3"} {
		os.Setenv("REWARD_DAILY_LIMIT", raw)
		if got := RewardDailyLimit(); got != 1 {
			t.Errorf("REWARD_DAILY_LIMIT=%q: expected fallback 1, got %d", raw, got)
		}
	}
	os.Unsetenv("REWARD_DAILY_LIMIT")
}

func TestTimezoneFromEnv(t *testing.T) {
	os.Setenv("TIMEZONE", "Europe/Istanbul")
	defer os.Unsetenv("TIMEZONE")

	loc := Timezone()
	if loc.String() != "Europe/Istanbul" {
		t.Errorf("expected Europe/Istanbul, got %s", loc)
	}
}

func TestTimezoneInvalidFallsBack(t *testing.T) {
	os.Setenv("TIMEZONE", "Not/AZone")
	defer os.Unsetenv("TIMEZONE")

	if loc := Timezone(); loc != time.Local {
		t.Errorf("expected fallback to time.Local, got %s", loc)
	}
}
