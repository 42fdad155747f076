package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nhle/marketing-hub/internal/app"
	"github.com/nhle/marketing-hub/internal/fixtures"
	"github.com/nhle/marketing-hub/internal/logging"
	"github.com/nhle/marketing-hub/internal/model"
	"github.com/nhle/marketing-hub/internal/state"
	"github.com/nhle/marketing-hub/internal/store"
)

var version = "dev"

var (
	configPath string
	startView  string
	darkMode   bool
	debugMode  bool
)

var rootCmd = &cobra.Command{
	Use:   "marketinghub",
	Short: "Terminal dashboard for marketing operations",
	Long: `Marketing Hub shows campaigns, tasks, content, team, analytics and
approvals from built-in sample data. Nothing is saved between sessions.`,
	Version:       version,
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", model.DefaultConfigPath(), "Path to the YAML config file")
	rootCmd.Flags().StringVar(&startView, "view", "", "View to open at startup (dashboard, campaigns, tasks, content, team, analytics, feedback)")
	rootCmd.Flags().BoolVar(&darkMode, "dark", false, "Start in dark mode")
	rootCmd.Flags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := model.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger, err := logging.New(logging.Options{
		File:  cfg.Log.File,
		Level: cfg.Log.Level,
		Debug: debugMode,
	})
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	seed, err := fixtures.Load()
	if err != nil {
		return fmt.Errorf("loading fixtures: %w", err)
	}

	s, err := store.NewMemoryStore(context.Background(), seed)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer s.Close()

	view := cfg.Display.StartView
	if cmd.Flags().Changed("view") {
		view = startView
	}
	prefs := displayPrefs(cfg.Display, cmd.Flags().Changed("dark"), darkMode)

	controller := state.NewController(
		state.WithView(state.ParseView(view)),
		state.WithPrefs(prefs),
		state.WithTaskView(state.ParseTaskView(cfg.Display.TaskView)),
		state.WithNotifications(seed.Notifications),
	)

	logger.Info("starting",
		zap.String("version", version),
		zap.String("view", string(controller.View.Current())),
		zap.Bool("dark", prefs.DarkMode))

	m := app.New(s, controller, cfg.User, logger)
	defer m.Close()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running app: %w", err)
	}
	return nil
}

// displayPrefs applies the --dark flag over the configured theme only when
// the flag was given, so --dark=false can override a dark config.
func displayPrefs(d model.DisplayConfig, darkSet, dark bool) state.DisplayPrefs {
	prefs := state.DisplayPrefs{
		SidebarCollapsed: d.SidebarCollapsed,
		DarkMode:         d.DarkMode(),
	}
	if darkSet {
		prefs.DarkMode = dark
	}
	return prefs
}
