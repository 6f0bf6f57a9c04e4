package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/iburimskiy/globe-visualization/internal/config"
	"github.com/iburimskiy/globe-visualization/internal/game"
	"github.com/iburimskiy/globe-visualization/internal/logger"
	"github.com/iburimskiy/globe-visualization/internal/theme"
)

type rootFlags struct {
	theme      string
	themeFile  string
	configPath string
	logLevel   string
	humanLogs  bool
	hud        bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "globe",
		Short:         "Interactive rotating globe. Drag to spin, T toggles the theme",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), flags)
		},
	}

	cmd.Flags().StringVar(&flags.theme, "theme", "", "Initial theme: light, dark, or empty to resolve later")
	cmd.Flags().StringVar(&flags.themeFile, "theme-file", "", "File containing light or dark, watched for changes")
	cmd.Flags().StringVarP(&flags.configPath, "config", "c", "", "YAML visual config overriding the theme palettes")
	cmd.Flags().StringVar(&flags.logLevel, "log-level", "info", "Log level")
	cmd.Flags().BoolVar(&flags.humanLogs, "human-logs", true, "Human readable log output")
	cmd.Flags().BoolVar(&flags.hud, "hud", false, "Show the debug overlay")
	cmd.MarkFlagsMutuallyExclusive("theme", "theme-file")

	return cmd
}

func run(ctx context.Context, flags *rootFlags) error {
	log, err := logger.New(logger.Options{Level: flags.logLevel, HumanReadable: flags.humanLogs})
	if err != nil {
		return fmt.Errorf("configure logging: %w", err)
	}

	themes, err := themeSource(ctx, flags, log)
	if err != nil {
		return err
	}

	var override *config.VisualConfig
	if flags.configPath != "" {
		override, err = config.LoadOverride(flags.configPath)
		if err != nil {
			return err
		}
		log.Info().Str("path", flags.configPath).Msg("using visual override")
	}

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("Globe - drag to rotate, T: theme, O: open config, Esc/Q: quit")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.TicksPerSecond)

	g := game.New(game.Options{
		Themes:   themes,
		Override: override,
		HUD:      flags.hud,
		Log:      log,
	})
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

func themeSource(ctx context.Context, flags *rootFlags, log zerolog.Logger) (theme.Source, error) {
	if flags.themeFile == "" {
		t, err := theme.Parse(flags.theme)
		if err != nil {
			return nil, err
		}
		return theme.Static(t), nil
	}

	w, err := theme.NewFileWatcher(flags.themeFile, log)
	if err != nil {
		return nil, err
	}
	go func() {
		if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Error().Err(err).Msg("theme watcher stopped")
		}
	}()
	return w, nil
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		cancel()
		os.Exit(1)
	}
}
