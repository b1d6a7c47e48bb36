package cli

import (
	"fmt"

	"github.com/agentx-labs/stylescan/internal/manifest"
	"github.com/agentx-labs/stylescan/internal/scaffold"
	"github.com/spf13/cobra"
)

var initFormat string

func init() {
	initCmd.Flags().StringVar(&initFormat, "format", string(manifest.FormatYAML), "Manifest notation (yaml, json, js)")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Create a starter content manifest",
	Long: `Write a starter manifest into dir (default: the current directory). Content
globs are seeded from the project layout, for example templates/ and
manage.py for Django projects or src/ for frontend projects.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := manifest.ParseFormat(initFormat)
		if err != nil {
			return err
		}

		dir := "."
		if len(args) > 0 {
			dir = args[0]
		}

		result, err := scaffold.Generate(dir, scaffold.NewData(dir), format)
		if err != nil {
			return err
		}
		for _, w := range result.Warnings {
			log.Warn().Str("file", result.Path).Msg(w)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", relPath(result.Path))
		return nil
	},
}
