package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/aurumlife/aurum/internal/scoring"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "score [task-id]",
		Short: "Show a task's priority score and breakdown",
		Args:  cobra.ExactArgs(1),
		Run:   runScore,
	}

	RootCmd.AddCommand(cmd)
}

func runScore(cmd *cobra.Command, args []string) {
	weights, err := loadWeights()
	if err != nil {
		exitErr("load weights", err)
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	snapshot, err := s.TodaySnapshot(cmd.Context())
	if err != nil {
		exitErr("score", err)
	}

	engine := scoring.NewEngine(weights)
	for _, in := range snapshot {
		if in.Task.ID != args[0] {
			continue
		}
		ts, err := engine.ScoreTask(in, time.Now())
		if err != nil {
			exitErr("score", err)
		}
		b, _ := json.MarshalIndent(ts, "", "  ")
		fmt.Println(string(b))
		return
	}

	exitErr("score", fmt.Errorf("task not scoreable: %s (missing, completed, or in an archived project)", args[0]))
}
