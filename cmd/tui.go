package cmd

import (
	"pennyquest/internal/auth"
	"pennyquest/internal/config"
	"pennyquest/internal/tui"
	"pennyquest/internal/tui/theme"

	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive dashboard",
	RunE: func(_ *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		theme.Select(cfg.Appearance.Theme)

		// The dashboard owns the terminal; drop log output entirely.
		flagQuiet = true

		svc, provider, cleanup, err := openService()
		if err != nil {
			return err
		}
		defer cleanup()

		user, ok := provider.CurrentUser()
		if !ok {
			user = auth.User{Name: "adventurer"}
		}
		return tui.Run(svc, user)
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
