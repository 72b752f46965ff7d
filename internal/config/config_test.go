package config

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("APP_NAME", "skill-trade")
	t.Setenv("APP_ENV", "test")
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("JWT_ACCESS_SECRET", "access")
	t.Setenv("JWT_REFRESH_SECRET", "refresh")
}

func TestLoad_MissingRequired(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("JWT_ACCESS_SECRET", "")

	_, err := Load()
	if err == nil {
		t.Fatalf("expected error for missing required env")
	}
	if !errors.Is(err, errMissingRequiredEnv) {
		t.Fatalf("expected errMissingRequiredEnv, got %v", err)
	}
	if !strings.Contains(err.Error(), "JWT_ACCESS_SECRET") {
		t.Fatalf("error must name the missing variable, got %q", err.Error())
	}
}

func TestLoad_LimitDefaults(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SKILL_FIELD_MAX_LEN", "")
	t.Setenv("MESSAGE_BODY_MAX_LEN", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.Limits.SkillFieldMaxLen != 100 {
		t.Fatalf("expected default skill field limit 100, got %d", cfg.Limits.SkillFieldMaxLen)
	}
	if cfg.Limits.MessageBodyMaxLen != 300 {
		t.Fatalf("expected default message body limit 300, got %d", cfg.Limits.MessageBodyMaxLen)
	}
}

func TestLoad_LimitOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SKILL_FIELD_MAX_LEN", "80")
	t.Setenv("MESSAGE_BODY_MAX_LEN", "500")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.Limits.SkillFieldMaxLen != 80 || cfg.Limits.MessageBodyMaxLen != 500 {
		t.Fatalf("expected overridden limits 80/500, got %+v", cfg.Limits)
	}
}

func TestLoad_BadLimitFallsBack(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SKILL_FIELD_MAX_LEN", "not-a-number")
	t.Setenv("MESSAGE_BODY_MAX_LEN", "-5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.Limits.SkillFieldMaxLen != 100 || cfg.Limits.MessageBodyMaxLen != 300 {
		t.Fatalf("invalid limit values must fall back to defaults, got %+v", cfg.Limits)
	}
}

func TestLoad_JWTExpiryDefaults(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("JWT_ACCESS_EXPIRES_IN", "")
	t.Setenv("JWT_REFRESH_EXPIRES_IN", "30m")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.JWT.AccessExpiresIn != 15*time.Minute {
		t.Fatalf("expected 15m default access expiry, got %v", cfg.JWT.AccessExpiresIn)
	}
	if cfg.JWT.RefreshExpiresIn != 30*time.Minute {
		t.Fatalf("expected 30m refresh expiry, got %v", cfg.JWT.RefreshExpiresIn)
	}
}
