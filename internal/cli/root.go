// Package cli provides the command-line interface for bbpie.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/ppiankov/bbpie/internal/config"
	"github.com/ppiankov/bbpie/internal/logging"
	"github.com/ppiankov/bbpie/internal/selftest"
)

// Version and Commit are set via ldflags at build time.
var (
	Version = "dev"
	Commit  = "none"
)

var (
	configDir string
	verbose   bool
	unitTest  bool

	// logOutput receives all log records; stdout carries only rendered output.
	logOutput io.Writer = os.Stderr
)

var rootCmd = &cobra.Command{
	Use:           "bbpie [status-url]",
	Short:         "Render tweets as Blackbird Pie embed HTML",
	Long:          "bbpie fetches a tweet by its status URL and renders it as a self-contained HTML and CSS embed fragment in the Blackbird Pie style.",
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.MaximumNArgs(1),
	RunE:          rootAction,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("bbpie %s (%s)\n", Version, Commit)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", config.DefaultDir, "directory holding config.yaml and .env")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log at debug level")
	rootCmd.Flags().BoolVar(&unitTest, "unittest", false, "run the built-in self-test suite")
	_ = rootCmd.Flags().MarkHidden("unittest")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(embedCmd)
	rootCmd.AddCommand(feedCmd)
	rootCmd.AddCommand(selftestCmd)
}

// rootAction renders a bare "bbpie <status-url>" like the embed command.
func rootAction(cmd *cobra.Command, args []string) error {
	if unitTest {
		return selftest.Run(os.Stdout, selftest.Checks())
	}
	if len(args) == 1 {
		return embedAction(cmd, args)
	}
	return cmd.Help()
}

// Execute runs the root command. SIGINT cancels in-flight fetches.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

// loadRuntime loads the config and builds the run's logger.
func loadRuntime() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(configDir)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	level := cfg.Log.SlogLevel()
	if verbose {
		level = slog.LevelDebug
	}
	log := logging.New(logOutput, logging.Options{
		Level:  level,
		Format: cfg.Log.Format,
		Color:  isTerminal(logOutput),
	})
	return cfg, log.With("run_id", uuid.NewString()), nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && logging.IsTerminal(f)
}
