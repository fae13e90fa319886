// Package cli wires the command surface: argument validation, one-time
// setup checks, and handing the terminal to the display loop.
package cli

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/marcin-skalski/gitagotchi/internal/config"
	"github.com/marcin-skalski/gitagotchi/internal/frames"
	"github.com/marcin-skalski/gitagotchi/internal/git"
	"github.com/marcin-skalski/gitagotchi/internal/logging"
	"github.com/marcin-skalski/gitagotchi/internal/tui"
	"github.com/marcin-skalski/gitagotchi/internal/watch"
)

var (
	flagConfig   string
	flagAssets   string
	flagLogLevel string
)

var rootCmd = &cobra.Command{
	Use:   "gitagotchi <repo-path>",
	Short: "A terminal pet that feeds on your commit activity",
	Long: `gitagotchi watches a local git repository and renders an ASCII pet whose
mood tracks your recent commits. Commit within the hour to keep it fed.`,
	Args: cobra.ExactArgs(1),
	RunE: run,
}

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "path to config file")
	rootCmd.Flags().StringVar(&flagAssets, "assets", "", "override assets directory")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "", "override log level (debug|info|warn|error)")
}

// Execute runs the root command. Exits with code 1 on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	// Past argument validation; setup failures get an error, not usage.
	cmd.SilenceUsage = true

	cfgPath := flagConfig
	explicit := cfgPath != ""
	if !explicit {
		cfgPath = config.DefaultPath()
	}
	cfg, err := config.Load(cfgPath, explicit)
	if err != nil {
		return err
	}
	if flagAssets != "" {
		cfg.AssetsDir = flagAssets
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}

	isTUI := isatty.IsTerminal(os.Stdout.Fd())
	logger, err := logging.SetupLogger(cfg.LogFile, cfg.Log.Level, isTUI)
	if err != nil {
		return fmt.Errorf("setup logger: %w", err)
	}
	defer logging.CloseFile()

	repoPath := args[0]
	info, err := os.Stat(repoPath)
	if err != nil {
		return fmt.Errorf("repo path %s: %w", repoPath, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("repo path %s is not a directory", repoPath)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sampler := git.NewClient(repoPath, logger)
	if err := sampler.CheckWorkTree(ctx); err != nil {
		return err
	}

	manifest, err := frames.Discover(cfg.AssetsDir)
	if err != nil {
		return err
	}

	rt := config.NewRuntime(cfg, repoPath)

	var changes <-chan struct{}
	watcher, err := watch.New(rt.RepoPath, logger)
	if err != nil {
		// Not fatal: the refresh tick covers it.
		logger.Warn("repo watcher unavailable", "err", err)
	} else {
		changes = watcher.Events()
		defer watcher.Close()
	}

	logger.Info("gitagotchi starting",
		"repo", rt.RepoName, "assets", cfg.AssetsDir, "refresh", cfg.RefreshInterval)

	m := tui.NewModel(rt, sampler, manifest, cfg.RefreshInterval, changes, logger)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))

	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("display error: %w", err)
	}

	// Interrupt-driven shutdown is the normal way out.
	logger.Info("gitagotchi stopped")
	return nil
}
