package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ieltsvocab/vocabquiz/internal/config"
	"github.com/ieltsvocab/vocabquiz/internal/store"
)

// cfg is loaded once before any command runs.
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "vocabquiz",
	Short: "IELTS vocabulary quiz",
	Long:  "vocabquiz: AI-assisted IELTS vocabulary practice in the terminal, with an HTTP backend for question generation and sentence feedback.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg = config.Load()
		config.InitLogger(cfg.LogLevel, cfg.LogFormat)
	},
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd)
	},
}

// Execute runs the root command. ctx is cancelled on interrupt.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides VOCABQUIZ_DB env var)")
	addPlayFlags(rootCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then the loaded config (VOCABQUIZ_DB, .env included), then the default
// XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	p, _ := cmd.Flags().GetString("db")
	if p == "" && cfg != nil {
		p = cfg.DBPath
	}
	if p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore opens the audit log database selected by the flags.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}
