package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/agentx-labs/stylescan/internal/config"
	"github.com/agentx-labs/stylescan/internal/manifest"
	"github.com/agentx-labs/stylescan/internal/scan"
	"github.com/spf13/cobra"
)

var (
	scanRoot        string
	scanConcurrency int
	scanJSON        bool
)

func init() {
	scanCmd.Flags().StringVar(&scanRoot, "root", "", "Project root the content globs are relative to (default: the manifest's directory)")
	scanCmd.Flags().IntVar(&scanConcurrency, "concurrency", 0, "Pattern bases walked at once (default: scan.concurrency setting)")
	scanCmd.Flags().BoolVar(&scanJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(scanCmd)
}

// scanOutput is the JSON shape of a scan.
type scanOutput struct {
	Manifest  string         `json:"manifest"`
	Root      string         `json:"root"`
	Files     []string       `json:"files"`
	Matches   map[string]int `json:"matches"`
	Unmatched []string       `json:"unmatched"`
}

var scanCmd = &cobra.Command{
	Use:   "scan [path]",
	Short: "List the files matched by the manifest's content globs",
	Long: `Resolve every content glob against the project root and print the matched
files, one per line. Patterns that match nothing are logged as warnings.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, _, err := loadManifest(args, scanRoot)
		if err != nil {
			return err
		}

		root := scanRoot
		if root == "" {
			root = filepath.Dir(m.Source())
		}

		result, err := runScan(cmd, m, root, scanConcurrency)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if scanJSON {
			payload := scanOutput{
				Manifest:  m.Source(),
				Root:      root,
				Files:     result.Files,
				Matches:   result.Matches,
				Unmatched: result.Unmatched,
			}
			if payload.Files == nil {
				payload.Files = []string{}
			}
			if payload.Unmatched == nil {
				payload.Unmatched = []string{}
			}
			data, err := json.MarshalIndent(payload, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling scan result: %w", err)
			}
			fmt.Fprintln(out, string(data))
			return nil
		}

		for _, f := range result.Files {
			fmt.Fprintln(out, f)
		}
		return nil
	},
}

// runScan scans root with the configured limits and logs unmatched patterns.
func runScan(cmd *cobra.Command, m *manifest.Manifest, root string, concurrency int) (*scan.Result, error) {
	if concurrency <= 0 {
		concurrency = config.ScanConcurrency()
	}
	scanner := scan.New(root,
		scan.WithConcurrency(concurrency),
		scan.WithIgnore(config.ScanIgnore()...),
	)

	result, err := scanner.Scan(cmd.Context(), m)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", root, err)
	}

	for _, p := range result.Unmatched {
		log.Warn().Str("code", "unmatched-pattern").Str("pattern", p).Msg("content pattern matched no files")
	}
	log.Debug().Int("files", len(result.Files)).Str("root", root).Msg("scan complete")
	return result, nil
}
