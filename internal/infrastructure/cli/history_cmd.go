package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"shellrig/internal/app"
	"shellrig/internal/infrastructure/history"
	"shellrig/internal/pkg/filesystem"
)

// newHistoryCommand manages the imported-history database.
func newHistoryCommand(container *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Import and inspect shell history",
	}
	cmd.AddCommand(newHistoryImportCommand(container))
	cmd.AddCommand(newHistoryStatsCommand(container))
	cmd.AddCommand(newHistoryClearCommand(container))
	return cmd
}

func newHistoryImportCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "import [file]",
		Short: "Import a zsh history file (defaults to the configured one)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			path := ""
			if len(args) == 1 {
				path = args[0]
			} else {
				cfg, err := container.ConfigLoader.Load(ctx)
				if err != nil {
					return err
				}
				path = cfg.History.File
			}
			if strings.HasPrefix(path, "~/") {
				path = filepath.Join(filesystem.UserHomeDir(), path[2:])
			}

			entries, err := history.ParseZshHistory(path)
			if err != nil {
				return fmt.Errorf("parse history: %w", err)
			}

			store, err := container.NewHistoryStore()
			if err != nil {
				return err
			}
			defer store.Close()

			batchID := uuid.NewString()
			imported, err := store.Import(ctx, batchID, entries)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %s of %s entries (batch %s)\n",
				humanize.Comma(int64(imported)), humanize.Comma(int64(len(entries))), batchID)
			return nil
		},
	}
}

func newHistoryStatsCommand(container *app.Container) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show the most-used commands",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := container.NewHistoryStore()
			if err != nil {
				return err
			}
			defer store.Close()

			stats, err := store.Stats(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(stats) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No history imported yet. Run `shellrig history import` first.")
				return nil
			}
			for _, stat := range stats {
				fmt.Fprintf(cmd.OutOrStdout(), "%8s  %-50s  last used %s\n",
					humanize.Comma(stat.Count), truncate(stat.Command, 50), humanize.Time(stat.LastUsed))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Number of commands to show")
	return cmd
}

func newHistoryClearCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete all imported history",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := container.NewHistoryStore()
			if err != nil {
				return err
			}
			defer store.Close()
			if err := store.Clear(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "History cleared.")
			return nil
		},
	}
}

func truncate(s string, max int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
