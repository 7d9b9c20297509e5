package cli

import (
	"encoding/json"
	"fmt"

	"github.com/aurumlife/aurum/internal/store"
	"github.com/spf13/cobra"
)

func init() {
	areaCmd := &cobra.Command{
		Use:   "area",
		Short: "Manage areas (focus areas within a pillar)",
	}

	addCmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Create an area under a pillar",
		Args:  cobra.ExactArgs(1),
		Run:   runAreaAdd,
	}
	addCmd.Flags().StringP("pillar", "p", "", "Parent pillar id (required)")
	addCmd.Flags().IntP("importance", "i", 3, "Strategic importance (1-5)")
	addCmd.MarkFlagRequired("pillar")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List areas",
		Run:   runAreaList,
	}
	listCmd.Flags().StringP("pillar", "p", "", "Filter by pillar id")

	areaCmd.AddCommand(addCmd, listCmd)
	RootCmd.AddCommand(areaCmd)
}

func runAreaAdd(cmd *cobra.Command, args []string) {
	pillarID, _ := cmd.Flags().GetString("pillar")
	importance, _ := cmd.Flags().GetInt("importance")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	area, err := s.CreateArea(cmd.Context(), store.CreateAreaParams{
		PillarID:   pillarID,
		Name:       args[0],
		Importance: importance,
	})
	if err != nil {
		exitErr("area add", err)
	}

	b, _ := json.Marshal(area)
	fmt.Println(string(b))
}

func runAreaList(cmd *cobra.Command, args []string) {
	pillarID, _ := cmd.Flags().GetString("pillar")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	areas, err := s.ListAreas(cmd.Context(), pillarID)
	if err != nil {
		exitErr("area list", err)
	}

	b, _ := json.MarshalIndent(areas, "", "  ")
	fmt.Println(string(b))
}
