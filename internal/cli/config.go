package cli

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/agentx-labs/stylescan/internal/config"
	"github.com/agentx-labs/stylescan/internal/logging"
	"github.com/spf13/cobra"
)

var settingKeys = []string{
	config.KeyLogLevel,
	config.KeyLogFormat,
	config.KeyScanConcurrency,
	config.KeyScanIgnore,
}

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configListCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage user settings",
	Long: `Read and write settings stored at ~/.stylescan/config.yaml.

Keys: ` + strings.Join(settingKeys, ", ") + `.
Each key can be overridden with an environment variable, for example
STYLESCAN_LOG_LEVEL for log.level.`,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		if err := checkSetting(key, value); err != nil {
			return err
		}
		if err := config.Set(key, value); err != nil {
			return fmt.Errorf("setting config key %q: %w", key, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !slices.Contains(settingKeys, args[0]) {
			return fmt.Errorf("unknown config key %q", args[0])
		}
		if args[0] == config.KeyScanIgnore {
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(config.ScanIgnore(), ","))
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), config.Get(args[0]))
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all configuration values",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		for _, key := range settingKeys {
			value := config.Get(key)
			if key == config.KeyScanIgnore {
				value = strings.Join(config.ScanIgnore(), ",")
			}
			fmt.Fprintf(out, "%s = %s\n", key, value)
		}
		return nil
	},
}

// checkSetting rejects unknown keys and values the CLI could not use.
func checkSetting(key, value string) error {
	switch key {
	case config.KeyLogLevel:
		switch value {
		case "debug", "info", "warn", "error":
			return nil
		}
		return fmt.Errorf("invalid log level %q (use debug, info, warn, or error)", value)
	case config.KeyLogFormat:
		if value == logging.FormatPretty || value == logging.FormatJSON {
			return nil
		}
		return fmt.Errorf("invalid log format %q (use pretty or json)", value)
	case config.KeyScanConcurrency:
		if n, err := strconv.Atoi(value); err != nil || n < 1 {
			return fmt.Errorf("invalid concurrency %q (use a positive integer)", value)
		}
		return nil
	case config.KeyScanIgnore:
		return nil
	}
	return fmt.Errorf("unknown config key %q", key)
}
