package main

import (
	"context"
	"fmt"

	"tourdeck/cmd/tourdeck/ui"
	"tourdeck/internal/catalog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// runInteractive loads the catalog and runs the bubbletea program until quit.
func runInteractive(cmd *cobra.Command, startPage string) error {
	c, err := catalog.Load(cfg.DataPath)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	opts := ui.Options{
		UI:        cfg.UI,
		StartPage: ui.PageFromName(startPage),
	}

	if cfg.Watch {
		w, err := catalog.NewWatcher(cfg.DataPath)
		if err != nil {
			return err
		}
		if err := w.Start(ctx); err != nil {
			return err
		}
		defer w.Stop()
		opts.Updates = w.Updates()
	}

	logger.Info("starting ui",
		zap.String("page", startPage),
		zap.Int("tours", len(c.Tours)),
		zap.Int("reviews", len(c.Reviews)))

	p := tea.NewProgram(ui.NewModel(c, opts), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("ui: %w", err)
	}
	return nil
}
