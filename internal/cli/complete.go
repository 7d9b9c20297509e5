package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	completeCmd := &cobra.Command{
		Use:   "complete [task-id]",
		Short: "Mark a task completed",
		Args:  cobra.ExactArgs(1),
		Run:   runComplete,
	}

	reopenCmd := &cobra.Command{
		Use:   "reopen [task-id]",
		Short: "Reopen a completed task",
		Args:  cobra.ExactArgs(1),
		Run:   runReopen,
	}

	RootCmd.AddCommand(completeCmd, reopenCmd)
}

func runComplete(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	task, err := s.CompleteTask(cmd.Context(), args[0])
	if err != nil {
		exitErr("complete", err)
	}

	b, _ := json.Marshal(task)
	fmt.Println(string(b))
}

func runReopen(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	task, err := s.ReopenTask(cmd.Context(), args[0])
	if err != nil {
		exitErr("reopen", err)
	}

	b, _ := json.Marshal(task)
	fmt.Println(string(b))
}
