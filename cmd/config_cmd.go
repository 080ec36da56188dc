package cmd

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/calburn/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	RunE: func(_ *cobra.Command, _ []string) error {
		fmt.Println(config.ConfigPath())
		return nil
	},
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the config file in $EDITOR",
	RunE:  runConfigEdit,
}

func init() {
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configEditCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigEdit(_ *cobra.Command, _ []string) error {
	if !config.Exists() {
		// Seed the file so the editor has the full structure to work with.
		if err := config.Save(config.DefaultConfig()); err != nil {
			return err
		}
	}

	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "vi"
	}

	c := exec.Command(editor, config.ConfigPath())
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	return c.Run()
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	budget := cfg.Profile.Budget()
	fmt.Println("  [Profile]")
	fmt.Printf("    Weight:         %.0f kg\n", cfg.Profile.WeightKg)
	fmt.Printf("    Age:            %d\n", cfg.Profile.Age)
	fmt.Printf("    Gender:         %s\n", cfg.Profile.Gender)
	fmt.Printf("    TDEE:           %d kcal\n", budget.TDEE)
	fmt.Printf("    Target deficit: %d kcal\n", budget.TargetDeficit)
	fmt.Printf("    Daily budget:   %d kcal (derived)\n", budget.DailyBudget)
	fmt.Println()

	fmt.Println("  [Oracle]")
	apiKey := config.GetOracleAPIKey(cfg)
	if apiKey != "" {
		fmt.Printf("    API key: %s\n", maskAPIKey(apiKey))
	} else {
		fmt.Println("    API key: not configured")
	}
	fmt.Printf("    Model:   %s\n", cfg.Oracle.Model)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  Run `calburn setup` to reconfigure.")
	return nil
}

func maskAPIKey(key string) string {
	if len(key) > 16 {
		return key[:8] + "..." + key[len(key)-4:]
	}
	if len(key) > 4 {
		return key[:4] + "..."
	}
	return "****"
}
