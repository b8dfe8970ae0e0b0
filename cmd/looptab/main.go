package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"looptab/internal/config"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		cfgPath  string
		fixed    bool
		fraction float64
		logPath  string
	)
	cmd := &cobra.Command{
		Use:           "looptab",
		Short:         "Demo for the looptab infinite scroll tab view",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("fixed-width") {
				cfg.UI.ForceFixedTabWidth = fixed
			}
			if cmd.Flags().Changed("fraction") {
				cfg.UI.FixedTabWidthFraction = fraction
			}
			if cmd.Flags().Changed("log") {
				cfg.Log.Path = logPath
			}

			logger, closeLog, err := newLogger(cfg.Log.Path)
			if err != nil {
				return err
			}
			defer closeLog()
			logger = logger.With().Str("session", uuid.NewString()).Logger()

			app, err := newApp(cfg, logger)
			if err != nil {
				return err
			}
			p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseAllMotion())
			_, err = p.Run()
			return err
		},
	}
	cmd.Flags().StringVarP(&cfgPath, "config", "c", "", "path to config file")
	cmd.Flags().BoolVar(&fixed, "fixed-width", false, "force every tab to the same width")
	cmd.Flags().Float64Var(&fraction, "fraction", 0.5, "tab width as a fraction of the viewport (fixed-width mode)")
	cmd.Flags().StringVar(&logPath, "log", "", "append events to this file as JSON lines")
	return cmd
}

// newLogger opens the event log. An empty path discards events.
func newLogger(path string) (zerolog.Logger, func(), error) {
	if path == "" {
		return zerolog.New(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return zerolog.Logger{}, nil, fmt.Errorf("open log: %w", err)
	}
	return zerolog.New(f).With().Timestamp().Logger(), func() { _ = f.Close() }, nil
}
