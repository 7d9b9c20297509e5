package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "rm [id]",
		Short: "Delete a record",
		Long:  "Delete a task by default, or a pillar/area/project with the matching flag. Levels with children refuse to delete.",
		Args:  cobra.ExactArgs(1),
		Run:   runRm,
	}

	cmd.Flags().Bool("pillar", false, "Delete a pillar")
	cmd.Flags().Bool("area", false, "Delete an area")
	cmd.Flags().Bool("project", false, "Delete a project")

	RootCmd.AddCommand(cmd)
}

func runRm(cmd *cobra.Command, args []string) {
	id := args[0]
	pillar, _ := cmd.Flags().GetBool("pillar")
	area, _ := cmd.Flags().GetBool("area")
	project, _ := cmd.Flags().GetBool("project")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	ctx := cmd.Context()
	switch {
	case pillar:
		err = s.DeletePillar(ctx, id)
	case area:
		err = s.DeleteArea(ctx, id)
	case project:
		err = s.DeleteProject(ctx, id)
	default:
		err = s.DeleteTask(ctx, id)
	}
	if err != nil {
		exitErr("rm", err)
	}

	fmt.Printf(`{"ok":true,"id":%q}`+"\n", id)
}
