package cli

import (
	"github.com/agentx-labs/stylescan/internal/manifest"
	"github.com/spf13/cobra"
)

var showFormat string

func init() {
	showCmd.Flags().StringVar(&showFormat, "format", string(manifest.FormatYAML), "Output notation (yaml, json, js)")
	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show [path]",
	Short: "Print the normalized manifest",
	Long: `Load a content manifest and print it with defaults filled in. Converting
between notations is a matter of choosing --format.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := manifest.ParseFormat(showFormat)
		if err != nil {
			return err
		}
		m, _, err := loadManifest(args, "")
		if err != nil {
			return err
		}
		return manifest.Encode(cmd.OutOrStdout(), m, format)
	},
}
