package setup

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/shsenroll/internal/config"
	"github.com/thenoetrevino/shsenroll/internal/config/colors"
	"github.com/thenoetrevino/shsenroll/internal/database"
	"gopkg.in/yaml.v3"
)

// ConfigCmd returns the setup config subcommand
func ConfigCmd() *cobra.Command {
	var checkFlag bool
	var forceFlag bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Write the default configuration file",
		Long: `Write a configuration file with every default filled in, so the
database path, log level and theme colors can be edited by hand.

Examples:
  # Create the file if it does not exist
  shsenroll setup config

  # Show where the file lives and the effective settings
  shsenroll setup config --check

  # Overwrite an existing file with defaults
  shsenroll setup config --force
`,
		Annotations: map[string]string{SkipCLIAnnotation: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.Path()
			if err != nil {
				return err
			}
			if checkFlag {
				return CheckConfig(cmd.OutOrStdout(), path)
			}
			return InstallConfig(cmd.OutOrStdout(), path, forceFlag)
		},
	}

	cmd.Flags().BoolVar(&checkFlag, "check", false, "Show the config path and effective settings")
	cmd.Flags().BoolVar(&forceFlag, "force", false, "Overwrite an existing config file")

	return cmd
}

// InstallConfig writes the default configuration to path
func InstallConfig(w io.Writer, path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		fmt.Fprintf(w, "Config already exists at %s (use --force to overwrite)\n", path)
		return nil
	}

	cfg := config.Default()
	if dbPath, err := database.DefaultPath(); err == nil {
		cfg.Database.Path = dbPath
	}

	if err := EnsureDir(filepath.Dir(path), 0755); err != nil {
		return err
	}
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	fmt.Fprintf(w, "✓ Wrote default config to %s\n", path)
	return nil
}

// CheckConfig reports whether the file exists and prints the effective config
func CheckConfig(w io.Writer, path string) error {
	if _, err := os.Stat(path); err == nil {
		fmt.Fprintf(w, "✓ Config file: %s\n", path)
	} else {
		fmt.Fprintf(w, "✗ No config file at %s (defaults in use)\n", path)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "\n%s", out)
	fmt.Fprintf(w, "\nTheme presets: %s\n", strings.Join(colors.Presets(), ", "))
	return nil
}

// EnsureDir creates a directory if it doesn't exist
func EnsureDir(path string, perm os.FileMode) error {
	if err := os.MkdirAll(path, perm); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", path, err)
	}
	return nil
}
