package cli

import (
	"encoding/json"
	"fmt"

	"github.com/aurumlife/aurum/internal/store"
	"github.com/spf13/cobra"
)

func init() {
	pillarCmd := &cobra.Command{
		Use:   "pillar",
		Short: "Manage pillars (top-level life domains)",
	}

	addCmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Create a pillar",
		Args:  cobra.ExactArgs(1),
		Run:   runPillarAdd,
	}
	addCmd.Flags().IntP("importance", "i", 3, "Strategic importance (1-5)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List pillars",
		Run:   runPillarList,
	}

	pillarCmd.AddCommand(addCmd, listCmd)
	RootCmd.AddCommand(pillarCmd)
}

func runPillarAdd(cmd *cobra.Command, args []string) {
	importance, _ := cmd.Flags().GetInt("importance")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	pillar, err := s.CreatePillar(cmd.Context(), store.CreatePillarParams{
		Name:       args[0],
		Importance: importance,
	})
	if err != nil {
		exitErr("pillar add", err)
	}

	b, _ := json.Marshal(pillar)
	fmt.Println(string(b))
}

func runPillarList(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	pillars, err := s.ListPillars(cmd.Context())
	if err != nil {
		exitErr("pillar list", err)
	}

	b, _ := json.MarshalIndent(pillars, "", "  ")
	fmt.Println(string(b))
}
