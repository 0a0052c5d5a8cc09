package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mmynk/evenup/internal/service"
	"github.com/mmynk/evenup/internal/storage/jsonfile"
	"github.com/mmynk/evenup/internal/tui"
	"github.com/mmynk/evenup/pkg/logging"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Start the interactive terminal UI (default)",
	Args:  cobra.NoArgs,
	RunE:  runTUI,
}

func runTUI(cmd *cobra.Command, args []string) error {
	// logs go to a file while the UI owns the terminal
	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer logFile.Close()
	logging.SetupWriter(logFile, logging.ParseLevel(cfg.LogLevel))

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	screen := tui.NewScreen(cfg.MessageDuration)
	board := service.NewBoard(store, screen, service.WithMessageDuration(cfg.MessageDuration))
	board.Start(cmd.Context())

	var watch func(context.Context, func()) error
	if fs, ok := store.(*jsonfile.Store); ok {
		watch = fs.Watch
	}
	return tui.Run(cmd.Context(), board, screen, watch)
}
