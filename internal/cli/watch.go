package cli

import (
	"path/filepath"

	"github.com/agentx-labs/stylescan/internal/logging"
	"github.com/agentx-labs/stylescan/internal/watch"
	"github.com/spf13/cobra"
)

var watchScan bool

func init() {
	watchCmd.Flags().BoolVar(&watchScan, "scan", false, "Rescan content files after every reload")
	rootCmd.AddCommand(watchCmd)
}

var watchCmd = &cobra.Command{
	Use:   "watch [path]",
	Short: "Reload the manifest whenever it changes",
	Long: `Load the manifest, then reload and re-validate it each time the file is saved.
Errors are logged and watching continues. Interrupt to stop.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveManifest(args, "")
		if err != nil {
			return err
		}

		log.Info().Str("file", path).Msg("watching manifest")
		return watch.Run(cmd.Context(), path, func(ev watch.Event) {
			if ev.Err != nil {
				log.Error().Err(ev.Err).Msg("manifest reload failed")
				return
			}

			m := ev.Manifest
			logging.Warnings(log, m.Source(), ev.Warnings)
			log.Info().
				Int("patterns", len(m.Content())).
				Int("plugins", len(m.Plugins())).
				Msg("manifest loaded")

			if !watchScan {
				return
			}
			result, err := runScan(cmd, m, filepath.Dir(m.Source()), 0)
			if err != nil {
				log.Error().Err(err).Msg("scan failed")
				return
			}
			log.Info().Int("files", len(result.Files)).Msg("scan complete")
		})
	},
}
