package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aurumlife/aurum/internal/store"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Create a task",
		Args:  cobra.MinimumNArgs(1),
		Run:   runAdd,
	}

	cmd.Flags().StringP("project", "p", "", "Parent project id (required)")
	cmd.Flags().String("priority", "medium", "Priority: low, medium, high")
	cmd.Flags().String("due", "", "Due date (YYYY-MM-DD or RFC3339)")
	cmd.Flags().String("scheduled", "", "Scheduled date (YYYY-MM-DD or RFC3339)")
	cmd.Flags().String("desc", "", "Description")

	cmd.MarkFlagRequired("project")

	RootCmd.AddCommand(cmd)
}

func runAdd(cmd *cobra.Command, args []string) {
	projectID, _ := cmd.Flags().GetString("project")
	priority, _ := cmd.Flags().GetString("priority")
	dueStr, _ := cmd.Flags().GetString("due")
	scheduledStr, _ := cmd.Flags().GetString("scheduled")
	desc, _ := cmd.Flags().GetString("desc")

	due, err := parseDate(dueStr)
	if err != nil {
		exitErr("add", err)
	}
	scheduled, err := parseDate(scheduledStr)
	if err != nil {
		exitErr("add", err)
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	task, err := s.CreateTask(cmd.Context(), store.CreateTaskParams{
		ProjectID:     projectID,
		Name:          strings.Join(args, " "),
		Description:   desc,
		Priority:      priority,
		DueDate:       due,
		ScheduledDate: scheduled,
	})
	if err != nil {
		exitErr("add", err)
	}

	b, _ := json.Marshal(task)
	fmt.Println(string(b))
}
