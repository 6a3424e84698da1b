package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/sidelaunch/launchpad/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the resolved launchpad configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadDefault()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		if errs := config.Validate(cfg); len(errs) > 0 {
			fmt.Fprintln(cmd.ErrOrStderr(), "Config has validation errors:")
			for _, e := range errs {
				fmt.Fprintf(cmd.ErrOrStderr(), "  - %s\n", e)
			}
		}

		data, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("marshal config: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), string(data))
		return nil
	},
}
