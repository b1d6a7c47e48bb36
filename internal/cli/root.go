package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/agentx-labs/stylescan/internal/branding"
	"github.com/agentx-labs/stylescan/internal/config"
	"github.com/agentx-labs/stylescan/internal/logging"
	"github.com/agentx-labs/stylescan/internal/manifest"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	verbose bool
	log     = zerolog.Nop()
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` loads utility-CSS content manifests (tailwind.config.js,
stylescan.config.yaml, stylescan.config.json), validates their content globs,
theme, and plugins, and resolves the files a style purger would scan.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
		level := config.LogLevel()
		if verbose {
			level = "debug"
		}
		log = logging.New(logging.Options{
			Level:   level,
			Format:  config.LogFormat(),
			Output:  cmd.ErrOrStderr(),
			NoColor: os.Getenv("NO_COLOR") != "",
		})
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	flags.String("log-format", "", "Log format (pretty, json)")
	_ = viper.BindPFlag(config.KeyLogFormat, flags.Lookup("log-format"))
}

// Execute runs the root command with build info injected via ldflags.
// Interrupts cancel the command context.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		reportError(rootCmd.ErrOrStderr(), err)
	}
	return err
}

// reportError prints err to w, one line per shape issue.
func reportError(w io.Writer, err error) {
	var se *manifest.ShapeError
	if errors.As(err, &se) {
		where := ""
		if se.Path != "" {
			where = " in " + se.Path
		}
		fmt.Fprintf(w, "Error: %s%s\n", manifest.ErrConfigShape, where)
		for _, issue := range se.Issues {
			fmt.Fprintf(w, "  - %s\n", issue)
		}
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}

// resolveManifest returns the manifest path named in args, or searches
// upward from dir when none was given.
func resolveManifest(args []string, dir string) (string, error) {
	if len(args) > 0 && args[0] != "" {
		return args[0], nil
	}
	if dir == "" {
		dir = "."
	}
	return manifest.Find(dir)
}

// loadManifest resolves and loads a manifest, logging its warnings.
func loadManifest(args []string, dir string) (*manifest.Manifest, []manifest.Warning, error) {
	path, err := resolveManifest(args, dir)
	if err != nil {
		return nil, nil, err
	}
	log.Debug().Str("file", path).Msg("loading manifest")

	m, warnings, err := manifest.Load(path)
	if err != nil {
		return nil, nil, err
	}
	logging.Warnings(log, m.Source(), warnings)
	return m, warnings, nil
}

// relPath shortens path relative to the working directory for display.
func relPath(path string) string {
	cwd, err := os.Getwd()
	if err != nil {
		return path
	}
	if rel, err := filepath.Rel(cwd, path); err == nil && !strings.HasPrefix(rel, "..") {
		return rel
	}
	return path
}
