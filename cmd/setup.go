package cmd

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/calburn/internal/config"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	// Load existing config or defaults so re-running keeps prior answers.
	cfg, _ := config.Load()

	weight := strconv.FormatFloat(cfg.Profile.WeightKg, 'f', -1, 64)
	age := strconv.Itoa(cfg.Profile.Age)
	gender := cfg.Profile.Gender
	if cfg.Profile.TDEE == 0 {
		cfg.Profile.TDEE = estimateTDEE(cfg.Profile.WeightKg, cfg.Profile.Age, gender)
	}
	tdee := strconv.Itoa(cfg.Profile.TDEE)
	deficit := strconv.Itoa(cfg.Profile.TargetDeficit)
	apiKey := cfg.Oracle.APIKey
	themeName := cfg.Appearance.Theme

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Weight (kg)").
				Value(&weight).
				Validate(validateFloat),
			huh.NewInput().
				Title("Age").
				Value(&age).
				Validate(validateInt),
			huh.NewSelect[string]().
				Title("Gender").
				Options(
					huh.NewOption("Male", "male"),
					huh.NewOption("Female", "female"),
				).
				Value(&gender),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Daily energy expenditure (TDEE, kcal)").
				Description("Rough maintenance estimate. ~2050 for a sedentary 44y/81kg male (Mifflin-St Jeor).").
				Value(&tdee).
				Validate(validateInt),
			huh.NewInput().
				Title("Target daily deficit (kcal)").
				Description("Your net budget is TDEE minus this.").
				Value(&deficit).
				Validate(validateInt),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Gemini API key").
				Description("Used to interpret phrases like \"2 eggs\". Env CALBURN_GEMINI_API_KEY overrides.").
				Value(&apiKey).
				EchoMode(huh.EchoModePassword),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(
					huh.NewOption("Flexoki Dark", "flexoki-dark"),
					huh.NewOption("Catppuccin Mocha", "catppuccin-mocha"),
					huh.NewOption("Terminal (ANSI 16)", "terminal"),
				).
				Value(&themeName),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	cfg.Profile.WeightKg, _ = strconv.ParseFloat(weight, 64)
	cfg.Profile.Age, _ = strconv.Atoi(age)
	cfg.Profile.Gender = gender
	cfg.Profile.TDEE, _ = strconv.Atoi(tdee)
	cfg.Profile.TargetDeficit, _ = strconv.Atoi(deficit)
	cfg.Oracle.APIKey = apiKey
	cfg.Appearance.Theme = themeName

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	budget := cfg.Profile.Budget()
	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Printf("  Daily budget: %d kcal (%d TDEE - %d deficit)\n",
		budget.DailyBudget, budget.TDEE, budget.TargetDeficit)
	fmt.Println("  Run `calburn setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}

// estimateTDEE suggests a sedentary maintenance estimate via Mifflin-St Jeor,
// assuming average height (175cm male, 162cm female) since height is not part
// of the profile.
func estimateTDEE(weightKg float64, age int, gender string) int {
	height := 175.0
	offset := 5.0
	if gender == "female" {
		height = 162.0
		offset = -161.0
	}
	bmr := 10*weightKg + 6.25*height - 5*float64(age) + offset
	return int(bmr * 1.2)
}

func validateInt(s string) error {
	if _, err := strconv.Atoi(s); err != nil {
		return fmt.Errorf("enter a whole number")
	}
	return nil
}

func validateFloat(s string) error {
	if _, err := strconv.ParseFloat(s, 64); err != nil {
		return fmt.Errorf("enter a number")
	}
	return nil
}
