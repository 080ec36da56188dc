package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig_DerivesBudget(t *testing.T) {
	cfg := DefaultConfig()

	b := cfg.Profile.Budget()
	if b.TDEE != 2050 || b.TargetDeficit != 500 {
		t.Errorf("budget = %+v, want TDEE 2050 deficit 500", b)
	}
	if b.DailyBudget != 1550 {
		t.Errorf("DailyBudget = %d, want 1550", b.DailyBudget)
	}
	if cfg.Oracle.Model != "gemini-2.5-flash" {
		t.Errorf("oracle model = %q", cfg.Oracle.Model)
	}
}

func TestContextString(t *testing.T) {
	p := ProfileConfig{WeightKg: 81, Age: 44, Gender: "male", TDEE: 2050, TargetDeficit: 500}
	want := "Male, 44 years old, 81kg. TDEE approx 2050."
	if got := p.ContextString(); got != want {
		t.Errorf("ContextString = %q, want %q", got, want)
	}
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("Load = %+v, want defaults", cfg)
	}
	if Exists() {
		t.Error("Exists = true with no config on disk")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.Profile.WeightKg = 92.5
	cfg.Profile.TDEE = 2400
	cfg.Oracle.APIKey = "secret"
	cfg.Appearance.Theme = "catppuccin-mocha"

	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Fatal("Exists = false after Save")
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded != cfg {
		t.Errorf("round trip = %+v, want %+v", loaded, cfg)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path := filepath.Join(dir, "calburn", "config.toml")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("[profile]\ntdee = 1900\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Profile.TDEE != 1900 {
		t.Errorf("TDEE = %d, want 1900", cfg.Profile.TDEE)
	}
	// Unset fields keep their defaults.
	if cfg.Profile.TargetDeficit != 500 {
		t.Errorf("TargetDeficit = %d, want default 500", cfg.Profile.TargetDeficit)
	}
	if cfg.Oracle.Model != "gemini-2.5-flash" {
		t.Errorf("oracle model = %q, want default", cfg.Oracle.Model)
	}
}

func TestGetOracleAPIKey_Precedence(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Oracle.APIKey = "from-config"

	t.Setenv("CALBURN_GEMINI_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")
	if got := GetOracleAPIKey(cfg); got != "from-config" {
		t.Errorf("key = %q, want from-config", got)
	}

	t.Setenv("GEMINI_API_KEY", "from-gemini-env")
	if got := GetOracleAPIKey(cfg); got != "from-gemini-env" {
		t.Errorf("key = %q, want from-gemini-env", got)
	}

	t.Setenv("CALBURN_GEMINI_API_KEY", "from-calburn-env")
	if got := GetOracleAPIKey(cfg); got != "from-calburn-env" {
		t.Errorf("key = %q, want from-calburn-env", got)
	}
}
