package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mmynk/evenup/internal/config"
	"github.com/mmynk/evenup/internal/storage"
	"github.com/mmynk/evenup/internal/storage/jsonfile"
	"github.com/mmynk/evenup/internal/storage/memory"
	"github.com/mmynk/evenup/internal/storage/sqlite"
	"github.com/mmynk/evenup/pkg/logging"
)

// cfg is loaded before any init so every command can bind flags to it.
var cfg = config.Load()

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "evenup",
	Short: "Track who is above or below the group average",
	Long: `evenup keeps a list of people and how much money each of them put in,
and shows how far every person is from the group average.

Run without arguments to start the interactive terminal UI.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.Validate(); err != nil {
			return err
		}
		// the terminal UI (root or tui) sets up its own logging
		if cmd.HasParent() && cmd.Name() != "tui" {
			logging.SetupWithLevel(logging.ParseLevel(cfg.LogLevel))
		}
		return nil
	},
	RunE: runTUI,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfg.Store, "store", cfg.Store, "persistence backend: json, sqlite or memory")
	flags.StringVar(&cfg.DataFile, "file", cfg.DataFile, "data file for the json store")
	flags.StringVar(&cfg.DBPath, "db", cfg.DBPath, "database path for the sqlite store")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")

	rootCmd.AddCommand(tuiCmd, listCmd, addCmd, removeCmd, setCmd, clearCmd, serveCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openStore builds the configured persistence backend.
func openStore() (storage.Store, error) {
	switch cfg.Store {
	case config.StoreSQLite:
		return sqlite.New(cfg.DBPath)
	case config.StoreMemory:
		return memory.New(), nil
	default:
		return jsonfile.New(cfg.DataFile)
	}
}
