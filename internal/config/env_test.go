package config

import (
	"os"
	"testing"
)

// unsetEnv clears keys for the duration of the test.
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestParseEnvDefaults(t *testing.T) {
	unsetEnv(t, "WILDREALM_SEED", "WILDREALM_SIGHT_RADIUS", "WILDREALM_LOCALE")

	cfg, err := ParseEnv()
	if err != nil {
		t.Fatalf("ParseEnv() error = %v", err)
	}
	if cfg.Seed != 0 {
		t.Errorf("Seed = %d, want 0", cfg.Seed)
	}
	if cfg.SightRadius != 8 {
		t.Errorf("SightRadius = %d, want 8", cfg.SightRadius)
	}
	if cfg.Locale != "en_US" {
		t.Errorf("Locale = %q, want %q", cfg.Locale, "en_US")
	}
}

func TestParseEnvOverrides(t *testing.T) {
	t.Setenv("WILDREALM_SEED", "42")
	t.Setenv("WILDREALM_SIGHT_RADIUS", "12")
	t.Setenv("WILDREALM_TELEMETRY", "false")

	cfg, err := ParseEnv()
	if err != nil {
		t.Fatalf("ParseEnv() error = %v", err)
	}
	if cfg.Seed != 42 {
		t.Errorf("Seed = %d, want 42", cfg.Seed)
	}
	if cfg.SightRadius != 12 {
		t.Errorf("SightRadius = %d, want 12", cfg.SightRadius)
	}
	if cfg.Telemetry {
		t.Error("Telemetry = true, want false")
	}
}

func TestParseEnvRejectsBadRadius(t *testing.T) {
	t.Setenv("WILDREALM_SIGHT_RADIUS", "0")
	if _, err := ParseEnv(); err == nil {
		t.Error("ParseEnv() with zero radius should fail")
	}
}

func TestParseEnvRejectsBadSeed(t *testing.T) {
	t.Setenv("WILDREALM_SEED", "not-a-number")
	if _, err := ParseEnv(); err == nil {
		t.Error("ParseEnv() with malformed seed should fail")
	}
}
