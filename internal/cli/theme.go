package cli

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/agentx-labs/stylescan/internal/theme"
	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"
)

var (
	themeFormat  string
	themeSection string
)

func init() {
	themeCmd.Flags().StringVar(&themeFormat, "format", "yaml", "Output format (yaml, json)")
	themeCmd.Flags().StringVar(&themeSection, "section", "", "Print only one theme section (e.g., colors)")
	rootCmd.AddCommand(themeCmd)
}

var themeCmd = &cobra.Command{
	Use:   "theme [path]",
	Short: "Print the resolved theme",
	Long: `Layer the manifest's theme over the built-in defaults and print the result.
Top-level theme keys replace a default section; keys under "extend" are merged
into it.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, _, err := loadManifest(args, "")
		if err != nil {
			return err
		}

		resolved, err := theme.Resolve(theme.Defaults(), m.Theme())
		if err != nil {
			return fmt.Errorf("resolving theme in %s: %w", relPath(m.Source()), err)
		}

		var value interface{} = resolved
		if themeSection != "" {
			section, ok := resolved[themeSection]
			if !ok {
				return fmt.Errorf("theme has no section %q", themeSection)
			}
			value = section
		}

		out, err := encodeValue(value, themeFormat)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	},
}

func encodeValue(v interface{}, format string) ([]byte, error) {
	switch format {
	case "json":
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling theme: %w", err)
		}
		return append(data, '\n'), nil
	case "yaml", "yml":
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return nil, fmt.Errorf("marshaling theme: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("marshaling theme: %w", err)
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("unsupported output format %q (use yaml or json)", format)
	}
}
