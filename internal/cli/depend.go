package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "depend [task-id]",
		Short: "Manage task dependencies",
		Long:  "Record that a task is blocked until another task completes. Blocked tasks never appear in the focus list.",
		Args:  cobra.ExactArgs(1),
		Run:   runDepend,
	}

	cmd.Flags().String("on", "", "Id of the prerequisite task")
	cmd.Flags().String("remove", "", "Remove the dependency on this task id")
	cmd.Flags().Bool("show", false, "Show the task's dependencies")

	RootCmd.AddCommand(cmd)
}

func runDepend(cmd *cobra.Command, args []string) {
	taskID := args[0]
	on, _ := cmd.Flags().GetString("on")
	remove, _ := cmd.Flags().GetString("remove")
	show, _ := cmd.Flags().GetBool("show")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	switch {
	case show:
		deps, err := s.Dependencies(cmd.Context(), taskID)
		if err != nil {
			exitErr("depend", err)
		}
		b, _ := json.Marshal(deps)
		fmt.Println(string(b))
	case remove != "":
		if err := s.RemoveDependency(cmd.Context(), taskID, remove); err != nil {
			exitErr("depend", err)
		}
		fmt.Printf(`{"ok":true,"task":%q,"removed":%q}`+"\n", taskID, remove)
	case on != "":
		if err := s.AddDependency(cmd.Context(), taskID, on); err != nil {
			exitErr("depend", err)
		}
		fmt.Printf(`{"ok":true,"task":%q,"depends_on":%q}`+"\n", taskID, on)
	default:
		exitErr("depend", fmt.Errorf("one of --on, --remove, or --show is required"))
	}
}
