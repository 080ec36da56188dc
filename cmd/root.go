// Package cmd implements the calburn CLI commands.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/calburn/internal/cli"
	"github.com/theirongolddev/calburn/internal/config"
	"github.com/theirongolddev/calburn/internal/ledger"
	"github.com/theirongolddev/calburn/internal/oracle"
	"github.com/theirongolddev/calburn/internal/session"
)

var (
	flagDataDir string
	flagDate    string
	flagQuiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "calburn",
	Short: "Natural-language calorie tracker",
	Long:  "Log food and exercise in plain words and track calories against your daily budget.",
	RunE:  runToday,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Data directory (default: XDG data dir)")
	rootCmd.PersistentFlags().StringVar(&flagDate, "date", "", "View date, YYYY-MM-DD (default: today)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress diagnostic output")
}

// appSession bundles everything a command needs for one invocation.
type appSession struct {
	cfg   config.Config
	store *ledger.SQLiteStore
	ctrl  *session.Controller
	log   zerolog.Logger
}

// newSession is the shared bootstrap path used by all commands: config,
// snapshot store, ledger, oracle client, controller.
func newSession() (*appSession, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log := newLogger()

	dbPath := config.LedgerPath()
	if flagDataDir != "" {
		dbPath = filepath.Join(flagDataDir, "ledger.db")
	}
	store, err := ledger.OpenSQLite(dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening ledger: %w", err)
	}

	lg := ledger.Load(store, log)

	opts, err := oracle.OptionsFromEnv()
	if err != nil {
		_ = store.Close()
		return nil, err
	}
	if opts.APIKey == "" {
		opts.APIKey = config.GetOracleAPIKey(cfg)
	}
	if cfg.Oracle.Model != "" {
		opts.Model = cfg.Oracle.Model
	}
	client := oracle.NewClient(opts, log)

	ctrl := session.New(lg, client, cfg.Profile.Budget(), cfg.Profile.ContextString(), log)

	if flagDate != "" {
		day, err := time.ParseInLocation("2006-01-02", flagDate, time.Local)
		if err != nil {
			_ = store.Close()
			return nil, fmt.Errorf("invalid --date %q (want YYYY-MM-DD)", flagDate)
		}
		ctrl.SetViewDate(day)
	}

	return &appSession{cfg: cfg, store: store, ctrl: ctrl, log: log}, nil
}

func (s *appSession) Close() {
	_ = s.store.Close()
}

func newLogger() zerolog.Logger {
	level := zerolog.WarnLevel
	if flagQuiet {
		level = zerolog.Disabled
	}
	return zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()
}

func runToday(_ *cobra.Command, _ []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}
	defer s.Close()

	printSummary(s)
	return nil
}

// printSummary renders the day header, budget bar, and balance readout.
func printSummary(s *appSession) {
	summary := s.ctrl.Summary()
	budget := s.ctrl.Budget()
	dateLabel := cli.FormatViewDate(s.ctrl.ViewDate(), time.Now())

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("ENERGY BUDGET  %s", dateLabel)))
	fmt.Println()
	fmt.Printf("  %s\n", cli.RenderBudgetBar(summary, 40))
	fmt.Println()
	fmt.Printf("  Eaten    %6s kcal\n", cli.FormatCalories(summary.Consumed))
	fmt.Printf("  Burned   %6s kcal\n", cli.FormatCalories(summary.Burned))
	fmt.Printf("  Left     %6s of %s  (%s)\n",
		cli.FormatCalories(summary.Remaining),
		cli.FormatCalories(budget.DailyBudget),
		cli.TierLabel(summary.Tier),
	)
	fmt.Println()
}
