package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

var validateStrict bool

func init() {
	validateCmd.Flags().BoolVar(&validateStrict, "strict", false, "Treat warnings as errors")
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a content manifest",
	Long: `Load a content manifest and check its content globs, theme, and plugins.

Without a path, the nearest stylescan.config.* or tailwind.config.* in the
current directory or one of its parents is used. Warnings are logged; errors
exit non-zero.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, warnings, err := loadManifest(args, "")
		if err != nil {
			return err
		}

		if validateStrict && len(warnings) > 0 {
			return fmt.Errorf("%s has %d warning(s)", relPath(m.Source()), len(warnings))
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s is valid: %d content pattern(s), %d plugin(s)\n",
			filepath.Base(m.Source()), len(m.Content()), len(m.Plugins()))
		return nil
	},
}
