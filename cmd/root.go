// Package cmd implements the pennyquest command line interface.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"pennyquest/internal/auth"
	"pennyquest/internal/cli"
	"pennyquest/internal/config"
	"pennyquest/internal/quest"
	"pennyquest/internal/store"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	flagDataDir string
	flagBackend string
	flagQuiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "pennyquest",
	Short: "Gamified personal finance tracker",
	Long:  "Track daily spending through morning and evening quests, keep your streak alive, and stay under your weekly goal.",
	RunE:  runToday,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Data directory (default: XDG data home)")
	rootCmd.PersistentFlags().StringVar(&flagBackend, "store", "", "Storage backend: sqlite or file (default from config)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress log output")
}

// openService is the shared setup path used by all commands: config, logger,
// storage backend, quest service, identity.
func openService() (*quest.Service, auth.Provider, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, err
	}

	log := newLogger(cfg)

	dataDir := cfg.ResolvedDataDir()
	if flagDataDir != "" {
		dataDir = flagDataDir
	}
	backend := cfg.Storage.Backend
	if flagBackend != "" {
		backend = flagBackend
	}

	var kv store.KeyValueStore
	switch backend {
	case "", "sqlite":
		kv, err = store.OpenSQLite(filepath.Join(dataDir, "pennyquest.db"))
	case "file":
		kv, err = store.OpenFileStore(dataDir)
	default:
		err = fmt.Errorf("unknown storage backend %q", backend)
	}
	if err != nil {
		return nil, nil, nil, err
	}

	svc := quest.NewService(store.NewGateway(kv, log), log)
	provider := auth.NewLocal(cfg.Profile.Name, cfg.Profile.Email)
	cleanup := func() { _ = kv.Close() }
	return svc, provider, cleanup, nil
}

func newLogger(cfg config.Config) zerolog.Logger {
	if flagQuiet || cfg.General.Quiet {
		return zerolog.Nop()
	}
	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	return zerolog.New(out).Level(zerolog.WarnLevel).With().Timestamp().Logger()
}

func runToday(_ *cobra.Command, _ []string) error {
	svc, provider, cleanup, err := openService()
	if err != nil {
		return err
	}
	defer cleanup()

	status := svc.Today()
	stats := status.Stats

	fmt.Println()
	fmt.Println(cli.RenderTitle("PENNYQUEST  " + cli.FormatDateKey(status.Date)))
	fmt.Println()

	if user, ok := provider.CurrentUser(); ok {
		fmt.Printf("  %s, %s\n\n", greeting(), user.Name)
	}

	rows := [][]string{
		{"Morning Quest", questMark(status.MorningDone)},
		{"Evening Quest", questMark(status.EveningDone)},
		{"---"},
		{"Current Streak", cli.FormatStreak(stats.CurrentStreak)},
		{"Longest Streak", fmt.Sprintf("%d days", stats.LongestStreak)},
		{"Total Check-ins", cli.FormatNumber(int64(stats.TotalCheckIns))},
		{"Badges", fmt.Sprintf("%d", len(stats.Badges))},
	}

	week, err := svc.Week()
	if err == nil {
		rows = append(rows, []string{"---"})
		spent := cli.FormatCurrency(week.Spent)
		if week.Goal > 0 {
			spent += " of " + cli.FormatCurrency(week.Goal)
		}
		rows = append(rows, []string{"This Week", spent})
		if week.OverBudget {
			rows = append(rows, []string{"", cli.FormatCurrency(week.Spent-week.Goal) + " over budget"})
		}
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"", ""},
		Rows:    rows,
	}))
	fmt.Println()
	return nil
}

func questMark(done bool) string {
	if done {
		return "✓ complete"
	}
	return "· pending"
}

// greeting picks a message by hour of day.
func greeting() string {
	hour := time.Now().Hour()
	switch {
	case hour < 12:
		return "Ready for today's adventure"
	case hour < 18:
		return "How's your quest going"
	default:
		return "Ready for today's spenditure"
	}
}
