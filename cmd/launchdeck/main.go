// LaunchDeck - simulated missile launch operations dashboard
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/ntnucsie/launchdeck/internal/app"
	"github.com/ntnucsie/launchdeck/internal/catalog"
	"github.com/ntnucsie/launchdeck/internal/config"
	"github.com/ntnucsie/launchdeck/internal/state"
	"github.com/ntnucsie/launchdeck/internal/theme"
)

// flags holds the root command's flag values
type flags struct {
	code       string
	title      string
	themeName  string
	tickRate   time.Duration
	catalog    string
	seed       uint64
	configPath string
	listThemes bool
	logFile    string
	debug      bool
}

func newRootCmd() *cobra.Command {
	f := &flags{}

	cmd := &cobra.Command{
		Use:   "launchdeck",
		Short: "LaunchDeck - Missile Launch Operations Dashboard",
		Long: `LaunchDeck - Missile Launch Operations Dashboard

A simulated launch console: system health, live signals, packet
traffic and a world map of launch sites.
Settings are read from ~/.config/launchdeck/config.toml

Keys:
  ←/→                             Switch tabs
  ↑/↓                             Move the task cursor
  t                               Enter the launch code
  q                               Quit

Examples:
  launchdeck --theme amber
  launchdeck --code OPENSESAME --tick-rate 100ms
  launchdeck --catalog sites.yaml --seed 42
  launchdeck config init`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, f)
		},
	}

	f.bind(cmd)
	cmd.AddCommand(newConfigCmd())
	return cmd
}

// bind registers the flags on cmd
func (f *flags) bind(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVar(&f.code, "code", "", "launch code required to confirm (default "+config.DefaultCode+")")
	fl.StringVar(&f.title, "title", "", "dashboard title")
	fl.StringVarP(&f.themeName, "theme", "t", "", "color theme (see --list-themes)")
	fl.DurationVar(&f.tickRate, "tick-rate", 0, "simulation tick interval (e.g. 250ms)")
	fl.StringVar(&f.catalog, "catalog", "", "catalog file (.toml or .yaml)")
	fl.Uint64Var(&f.seed, "seed", 0, "random seed, 0 for a random run")
	fl.StringVarP(&f.configPath, "config", "c", "", "config file path")
	fl.BoolVar(&f.listThemes, "list-themes", false, "list available themes")
	fl.StringVar(&f.logFile, "log-file", "", "write logs to this file")
	fl.BoolVar(&f.debug, "debug", false, "enable debug logging")
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, f *flags) error {
	if f.listThemes {
		printThemes(cmd.OutOrStdout())
		return nil
	}

	cfg, err := loadConfig(cmd, f)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg, f.debug)
	if err != nil {
		return err
	}
	defer closeLog()

	model, err := buildModel(cfg, logger)
	if err != nil {
		logger.Error("startup failed", "err", err)
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}

	if model.State().LaunchConfirmed() {
		fmt.Fprintf(cmd.OutOrStdout(), "\n  Launch confirmed. Godspeed.\n\n")
	}
	return nil
}

func printThemes(w io.Writer) {
	fmt.Fprintln(w, "\nAvailable Themes:")
	for _, info := range theme.GetInfo() {
		fmt.Fprintf(w, "  %-15s %-15s - %s\n", info.Key, info.Name, info.Description)
	}
	fmt.Fprintln(w)
}

// loadConfig reads the config file and applies explicitly set flags on top
func loadConfig(cmd *cobra.Command, f *flags) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if f.configPath != "" {
		cfg, err = config.LoadFromFile(f.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	fl := cmd.Flags()
	if fl.Changed("code") {
		cfg.Launch.Code = f.code
	}
	if fl.Changed("title") {
		cfg.Launch.Title = f.title
	}
	if fl.Changed("theme") {
		cfg.Display.Theme = f.themeName
	}
	if fl.Changed("tick-rate") {
		cfg.Display.TickRate = config.Duration{Duration: f.tickRate}
	}
	if fl.Changed("catalog") {
		cfg.Catalog.Path = f.catalog
	}
	if fl.Changed("seed") {
		cfg.Simulation.Seed = f.seed
	}
	if fl.Changed("log-file") {
		cfg.Log.File = f.logFile
	}
	if f.debug {
		cfg.Log.Level = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger returns a text logger writing to the configured file, or
// discarding output when none is set. The terminal belongs to the TUI.
func newLogger(cfg *config.Config, debug bool) (*slog.Logger, func(), error) {
	level, err := cfg.LogLevel()
	if err != nil {
		return nil, nil, err
	}
	if debug {
		level = slog.LevelDebug
	}

	var w io.Writer = io.Discard
	closeFn := func() {}
	if cfg.Log.File != "" {
		file, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = file
		closeFn = func() { _ = file.Close() }
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), closeFn, nil
}

func buildModel(cfg *config.Config, logger *slog.Logger) (*app.Model, error) {
	cat := catalog.Default()
	if cfg.Catalog.Path != "" {
		loaded, err := catalog.Load(cfg.Catalog.Path)
		if err != nil {
			return nil, fmt.Errorf("load catalog: %w", err)
		}
		cat = loaded
		logger.Info("catalog loaded", "path", cfg.Catalog.Path,
			"tasks", len(cat.Tasks), "launchers", len(cat.Launchers))
	}

	st, err := state.New(cfg.Launch.Title, cfg.Launch.Code, cat,
		state.WithSeed(cfg.Simulation.Seed),
		state.WithPeriods(state.Periods{
			LogRotate:    cfg.Simulation.LogRotateEvery,
			PacketRotate: cfg.Simulation.PacketRotateEvery,
			PowerWalk:    cfg.Simulation.PowerWalkEvery,
		}),
	)
	if err != nil {
		return nil, err
	}

	return app.NewModel(st, app.Options{
		Theme:    cfg.Display.Theme,
		TickRate: cfg.Display.TickRate.Duration,
		Logger:   logger,
	}), nil
}
