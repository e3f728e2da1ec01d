package setup

import (
	"github.com/spf13/cobra"
)

// SkipCLIAnnotation marks commands that run without opening the database
const SkipCLIAnnotation = "shsenroll/skip-cli"

// SetupCmd returns the setup command
func SetupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:         "setup",
		Short:       "Set up shsenroll on this machine",
		Long:        `Create and inspect the shsenroll configuration file.`,
		Annotations: map[string]string{SkipCLIAnnotation: "true"},
	}

	cmd.AddCommand(ConfigCmd())

	return cmd
}
