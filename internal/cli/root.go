package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"holdscroll/internal/config"
	"holdscroll/internal/eventbus"
	"holdscroll/internal/logging"
	"holdscroll/internal/ui"
)

// ErrNotTerminal is returned when the TUI is started without a terminal
var ErrNotTerminal = errors.New("holdscroll needs an interactive terminal")

// isTerminal checks if the given file is a terminal.
var isTerminal = func(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

type rootFlags struct {
	configPath string
	items      int
	debug      bool
}

// NewRootCmd creates the root command. Without a subcommand it runs the list.
func NewRootCmd(ver string) *cobra.Command {
	var flags rootFlags

	cmd := &cobra.Command{
		Use:   "holdscroll",
		Short: "Scrollable list with a hold-to-repeat scrollbar",
		Long: `holdscroll shows a list of framed items with a custom scrollbar.

Hold the ↑ or ↓ button to keep scrolling, drag the thumb for proportional
control, or click the track to jump. The scrollbar hides itself once the
list has been idle for a moment.`,
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}
			if !isTerminal(os.Stdout) {
				return ErrNotTerminal
			}
			return runTUI(cmd.Context(), cfg, flags)
		},
	}

	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "config file (default "+config.DefaultPath()+")")
	cmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "enable debug logging")
	cmd.Flags().IntVar(&flags.items, "items", 0, "number of list items (overrides list.item_count)")

	cmd.AddCommand(newConfigCmd(&flags))
	return cmd
}

const rootCmdExample = `  # Scroll through the default 50 items
  holdscroll

  # Use a longer list and log debug output
  holdscroll --items 500 --debug

  # Write the default configuration
  holdscroll config init`

// loadConfig reads the config file and applies flag overrides
func loadConfig(cmd *cobra.Command, flags rootFlags) (*config.Config, error) {
	cfg, err := config.NewConfigService(flags.configPath).Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if cmd.Flags().Changed("items") {
		cfg.List.ItemCount = flags.items
	}
	if flags.debug {
		cfg.Logging.Level = zerolog.DebugLevel.String()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runTUI(ctx context.Context, cfg *config.Config, flags rootFlags) error {
	logger, closer, err := logging.New(logging.Config{Level: cfg.Logging.Level, File: cfg.Logging.File})
	if err != nil {
		return err
	}
	defer closer.Close()

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	bus := eventbus.New(logging.Component(logger, "eventbus"))
	configSvc := config.NewConfigServiceWithBus(flags.configPath, bus)

	model := ui.NewModel(bus, cfg,
		ui.WithConfigService(configSvc),
		ui.WithLogger(logging.Component(logger, "ui")),
	)

	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	model.SetProgram(p)

	logger.Info().
		Int("items", cfg.List.ItemCount).
		Str("repeat_mode", cfg.Repeat.Mode).
		Msg("starting UI")

	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		logger.Error().Err(err).Msg("error running program")
		return fmt.Errorf("failed to run UI: %w", err)
	}

	logger.Info().Msg("UI exited normally")
	return nil
}
