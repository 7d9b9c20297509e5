// Package cli implements the aurum CLI commands.
package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/aurumlife/aurum/internal/scoring"
	"github.com/aurumlife/aurum/internal/store"
	"github.com/spf13/cobra"
)

var (
	dbPath      string
	weightsPath string
	formatFlag  string
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "aurum",
	Short: "Personal task prioritization from your pillars down",
	Long:  "A tiny CLI for the Aurum Life hierarchy: Pillars, Areas, Projects, Tasks, and a deterministic daily focus list. SQLite-backed, single binary.",
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "Database path (default: $AURUM_DB or ~/.aurum/aurum.db)")
	RootCmd.PersistentFlags().StringVarP(&weightsPath, "weights", "w", "", "Scoring weights YAML (default: $AURUM_WEIGHTS or ~/.aurum/weights.yaml if present)")
	RootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "json", "Output format: json or text")
}

func getDBPath() string {
	if dbPath != "" {
		return dbPath
	}
	if env := os.Getenv("AURUM_DB"); env != "" {
		return env
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".aurum", "aurum.db")
}

func openStore() (*store.SQLiteStore, error) {
	return store.NewSQLiteStore(getDBPath())
}

func loadWeights() (scoring.Weights, error) {
	path := weightsPath
	if path == "" {
		path = os.Getenv("AURUM_WEIGHTS")
	}
	if path == "" {
		home, _ := os.UserHomeDir()
		candidate := filepath.Join(home, ".aurum", "weights.yaml")
		if _, err := os.Stat(candidate); err == nil {
			path = candidate
		}
	}
	return scoring.LoadWeights(path)
}

func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	if t, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
		return &t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t, nil
	}
	return nil, fmt.Errorf("invalid date %q (use YYYY-MM-DD or RFC3339)", s)
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
