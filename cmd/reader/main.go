package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"headliner/internal/config"
	"headliner/internal/reader"
	"headliner/internal/tui"
)

var version = "dev"

var (
	flagServer  string
	flagConfig  string
	flagTimeout time.Duration
	flagTab     string
)

var rootCmd = &cobra.Command{
	Use:          "headliner",
	Short:        "Terminal reader for the headliner news service",
	Long:         "headliner shows the latest Korean and tech headlines served by the headliner API.",
	SilenceUsage: true,
	RunE:         runReader,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("headliner %s\n", version)
	},
}

func init() {
	rootCmd.Flags().StringVar(&flagServer, "server", "", "news service base URL (overrides config)")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "path to config file")
	rootCmd.Flags().DurationVar(&flagTimeout, "timeout", 0, "request timeout (e.g., 10s)")
	rootCmd.Flags().StringVar(&flagTab, "tab", "", "initial tab: korean or tech")

	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runReader(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadReader(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := applyFlags(cfg, flagServer, flagTimeout, flagTab); err != nil {
		return err
	}

	closeLog := setupLogging(config.ReaderLogPath())
	defer closeLog()

	slog.Info("starting reader", "server", cfg.ServerURL, "timeout", cfg.TimeoutDuration())

	return tui.Run(tui.RunOpts{
		Fetcher:    reader.New(cfg.ServerURL, cfg.TimeoutDuration()),
		Timeout:    cfg.TimeoutDuration(),
		DefaultTab: cfg.DefaultTab,
	})
}

// applyFlags overlays command-line values on cfg and revalidates it.
func applyFlags(cfg *config.Reader, server string, timeout time.Duration, tab string) error {
	if server != "" {
		cfg.ServerURL = server
	}
	if timeout > 0 {
		cfg.Timeout = timeout.String()
	}
	if tab != "" {
		cfg.DefaultTab = tab
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}
	return nil
}

// setupLogging sends slog output to path. The alternate screen owns stdout,
// so when the file cannot be opened logs are dropped.
func setupLogging(path string) func() {
	discard := func() {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		discard()
		return func() {}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		discard()
		return func() {}
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(f, nil)))
	return func() { f.Close() }
}
