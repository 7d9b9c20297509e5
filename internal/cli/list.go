package cli

import (
	"encoding/json"
	"fmt"

	"github.com/aurumlife/aurum/internal/store"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Run:   runList,
	}

	cmd.Flags().StringP("project", "p", "", "Filter by project id")
	cmd.Flags().String("priority", "", "Filter by priority: low, medium, high")
	cmd.Flags().StringP("search", "s", "", "Substring match on name/description")
	cmd.Flags().Bool("all", false, "Include completed tasks")
	cmd.Flags().IntP("limit", "l", 50, "Max results")

	RootCmd.AddCommand(cmd)
}

func runList(cmd *cobra.Command, args []string) {
	projectID, _ := cmd.Flags().GetString("project")
	priority, _ := cmd.Flags().GetString("priority")
	search, _ := cmd.Flags().GetString("search")
	all, _ := cmd.Flags().GetBool("all")
	limit, _ := cmd.Flags().GetInt("limit")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	tasks, err := s.ListTasks(cmd.Context(), store.ListTasksParams{
		ProjectID:        projectID,
		Priority:         priority,
		Search:           search,
		IncludeCompleted: all,
		Limit:            limit,
	})
	if err != nil {
		exitErr("list", err)
	}

	if formatFlag == "text" {
		for _, t := range tasks {
			due := ""
			if t.DueDate != nil {
				due = " due " + t.DueDate.Format("2006-01-02")
			}
			fmt.Printf("%s  [%s]%s  %s\n", t.ID, t.Priority, due, t.Name)
		}
		return
	}

	b, _ := json.MarshalIndent(tasks, "", "  ")
	fmt.Println(string(b))
}
