package cli

import (
	"encoding/json"
	"fmt"

	"github.com/aurumlife/aurum/internal/store"
	"github.com/spf13/cobra"
)

func init() {
	projectCmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
	}

	addCmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Create a project under an area",
		Args:  cobra.ExactArgs(1),
		Run:   runProjectAdd,
	}
	addCmd.Flags().StringP("area", "a", "", "Parent area id (required)")
	addCmd.Flags().StringP("priority", "p", "medium", "Priority: low, medium, high")
	addCmd.MarkFlagRequired("area")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		Run:   runProjectList,
	}
	listCmd.Flags().StringP("area", "a", "", "Filter by area id")
	listCmd.Flags().Bool("archived", false, "Include archived projects")

	archiveCmd := &cobra.Command{
		Use:   "archive [id]",
		Short: "Archive a project (its tasks leave the focus pool)",
		Args:  cobra.ExactArgs(1),
		Run:   runProjectArchive,
	}

	projectCmd.AddCommand(addCmd, listCmd, archiveCmd)
	RootCmd.AddCommand(projectCmd)
}

func runProjectAdd(cmd *cobra.Command, args []string) {
	areaID, _ := cmd.Flags().GetString("area")
	priority, _ := cmd.Flags().GetString("priority")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	project, err := s.CreateProject(cmd.Context(), store.CreateProjectParams{
		AreaID:   areaID,
		Name:     args[0],
		Priority: priority,
	})
	if err != nil {
		exitErr("project add", err)
	}

	b, _ := json.Marshal(project)
	fmt.Println(string(b))
}

func runProjectList(cmd *cobra.Command, args []string) {
	areaID, _ := cmd.Flags().GetString("area")
	archived, _ := cmd.Flags().GetBool("archived")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	projects, err := s.ListProjects(cmd.Context(), areaID, archived)
	if err != nil {
		exitErr("project list", err)
	}

	b, _ := json.MarshalIndent(projects, "", "  ")
	fmt.Println(string(b))
}

func runProjectArchive(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	if err := s.ArchiveProject(cmd.Context(), args[0]); err != nil {
		exitErr("project archive", err)
	}

	fmt.Printf(`{"ok":true,"id":%q,"status":"archived"}`+"\n", args[0])
}
