// Package config handles calburn configuration loading and saving.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/theirongolddev/calburn/internal/model"
)

// Config holds all calburn configuration.
type Config struct {
	Profile    ProfileConfig    `toml:"profile"`
	Oracle     OracleConfig     `toml:"oracle"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// ProfileConfig holds the user stats that drive the daily budget and bias
// the oracle's calorie estimates.
type ProfileConfig struct {
	WeightKg      float64 `toml:"weight_kg"`
	Age           int     `toml:"age"`
	Gender        string  `toml:"gender"` // "male" or "female"
	TDEE          int     `toml:"tdee"`
	TargetDeficit int     `toml:"target_deficit"`
}

// OracleConfig holds the natural-language extraction service settings.
type OracleConfig struct {
	APIKey string `toml:"api_key,omitempty"`
	Model  string `toml:"model"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DefaultConfig returns the default configuration.
// Profile defaults: 44y male, 81kg. BMR (Mifflin-St Jeor) ~1750, TDEE
// (sedentary 1.2) ~2050, 500 kcal deficit goal -> 1550 net daily target.
func DefaultConfig() Config {
	return Config{
		Profile: ProfileConfig{
			WeightKg:      81,
			Age:           44,
			Gender:        "male",
			TDEE:          2050,
			TargetDeficit: 500,
		},
		Oracle: OracleConfig{
			Model: "gemini-2.5-flash",
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// Budget derives the read-only budget record from the profile.
func (p ProfileConfig) Budget() model.Budget {
	return model.Budget{
		TDEE:          p.TDEE,
		TargetDeficit: p.TargetDeficit,
		DailyBudget:   p.TDEE - p.TargetDeficit,
	}
}

// ContextString renders the short user-context line embedded in oracle
// requests. Used only to bias calorie estimates.
func (p ProfileConfig) ContextString() string {
	gender := p.Gender
	if gender != "" {
		gender = strings.ToUpper(gender[:1]) + gender[1:]
	}
	return fmt.Sprintf("%s, %d years old, %.0fkg. TDEE approx %d.", gender, p.Age, p.WeightKg, p.TDEE)
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "calburn")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "calburn")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// DataDir returns the XDG-compliant data directory holding the ledger.
func DataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "calburn")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "calburn")
}

// LedgerPath returns the default path of the ledger database.
func LedgerPath() string {
	return filepath.Join(DataDir(), "ledger.db")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// GetOracleAPIKey returns the API key from env var or config, in that order.
func GetOracleAPIKey(cfg Config) string {
	if key := os.Getenv("CALBURN_GEMINI_API_KEY"); key != "" {
		return key
	}
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}
	return cfg.Oracle.APIKey
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}
