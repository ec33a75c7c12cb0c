package cmd

import (
	"fmt"

	"pennyquest/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show configuration",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value (name, email, theme, backend, data_dir)",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

func init() {
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("  Config file:  %s\n", config.ConfigPath())
	fmt.Printf("  Data dir:     %s\n", cfg.ResolvedDataDir())
	fmt.Printf("  Backend:      %s\n", cfg.Storage.Backend)
	fmt.Printf("  Theme:        %s\n", cfg.Appearance.Theme)
	if cfg.Profile.Name != "" {
		fmt.Printf("  Profile:      %s <%s>\n", cfg.Profile.Name, cfg.Profile.Email)
	}
	fmt.Println()
	return nil
}

func runConfigSet(_ *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	key, value := args[0], args[1]
	switch key {
	case "name":
		cfg.Profile.Name = value
	case "email":
		cfg.Profile.Email = value
	case "theme":
		cfg.Appearance.Theme = value
	case "backend":
		if value != "sqlite" && value != "file" {
			return fmt.Errorf("backend must be sqlite or file")
		}
		cfg.Storage.Backend = value
	case "data_dir":
		cfg.General.DataDir = value
	default:
		return fmt.Errorf("unknown config key %q", key)
	}

	if err := config.Save(cfg); err != nil {
		return err
	}
	fmt.Printf("\n  %s = %s\n\n", key, value)
	return nil
}
