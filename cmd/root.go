package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rmaia/aprovado/internal/session"
	"github.com/rmaia/aprovado/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "aprovado",
	Short: "Adaptive review and scheduling engine for concurso prep",
	Long: "Aprovado — terminal study companion for Brazilian public-service exams:\n" +
		"spaced repetition, adaptive difficulty ratings, daily schedules and\n" +
		"score forecasts, all from the command line.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides APROVADO_DB env var)")

	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(queueCmd)
	rootCmd.AddCommand(pretestCmd)
	rootCmd.AddCommand(answerCmd)
	rootCmd.AddCommand(scheduleCmd)
	rootCmd.AddCommand(suggestCmd)
	rootCmd.AddCommand(studyCmd)
	rootCmd.AddCommand(predictCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then APROVADO_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openService opens the store and restores the learner from the latest
// snapshot. The caller must Close the returned store.
func openService(cmd *cobra.Command) (*store.Store, *session.Service, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}

	snap, err := st.SnapshotRepo().Latest(cmd.Context())
	if err != nil {
		st.Close()
		return nil, nil, fmt.Errorf("load snapshot: %w", err)
	}

	var data *store.SnapshotData
	if snap != nil {
		data = &snap.Data
	}
	return st, session.NewService(data, st.EventRepo()), nil
}

// snapshotKeep is how many snapshots survive pruning after a save.
const snapshotKeep = 20

// saveState snapshots the current learner state and prunes old copies.
func saveState(ctx context.Context, st *store.Store, svc *session.Service) error {
	seq, err := st.LastSequence(ctx)
	if err != nil {
		return fmt.Errorf("read sequence: %w", err)
	}
	repo := st.SnapshotRepo()
	err = repo.Save(ctx, &store.Snapshot{
		Sequence:  seq,
		Timestamp: time.Now().UTC(),
		Data:      svc.SnapshotData(),
	})
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return repo.Prune(ctx, snapshotKeep)
}
