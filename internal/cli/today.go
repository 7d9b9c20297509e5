package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/aurumlife/aurum/internal/model"
	"github.com/aurumlife/aurum/internal/scoring"
	"github.com/aurumlife/aurum/internal/store"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "today",
		Short: "Show today's focus list",
		Long:  "Score every open task and show the bounded focus list for today: overdue and due-today work first, weighted by priority and hierarchy importance, blocked tasks excluded. Pins override the order for the current day only.",
		Run:   runToday,
	}

	cmd.Flags().IntP("top", "t", scoring.DefaultFocusCount, "Number of tasks to surface")
	cmd.Flags().String("pin", "", "Comma-separated task ids to pin first today")
	cmd.Flags().Bool("clear-pins", false, "Drop today's pins and return to automatic order")

	RootCmd.AddCommand(cmd)
}

type todayTask struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Priority    model.Priority    `json:"priority"`
	DueDate     *time.Time        `json:"due_date,omitempty"`
	ProjectName string            `json:"project_name"`
	AreaName    string            `json:"area_name"`
	Pinned      bool              `json:"pinned,omitempty"`
	Score       float64           `json:"score"`
	Breakdown   scoring.Breakdown `json:"breakdown"`
}

type todayResponse struct {
	Date     string      `json:"date"`
	Ordering string      `json:"ordering"` // "auto" or "overridden"
	Tasks    []todayTask `json:"tasks"`
}

func runToday(cmd *cobra.Command, args []string) {
	top, _ := cmd.Flags().GetInt("top")
	pinStr, _ := cmd.Flags().GetString("pin")
	clearPins, _ := cmd.Flags().GetBool("clear-pins")

	weights, err := loadWeights()
	if err != nil {
		exitErr("load weights", err)
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	ctx := cmd.Context()
	now := time.Now()
	day := store.DayKey(now)

	if clearPins {
		if err := s.ClearPins(ctx, day); err != nil {
			exitErr("clear pins", err)
		}
	}
	if pinStr != "" {
		var ids []string
		for _, id := range strings.Split(pinStr, ",") {
			if id = strings.TrimSpace(id); id != "" {
				ids = append(ids, id)
			}
		}
		if err := s.Pin(ctx, day, ids); err != nil {
			exitErr("pin", err)
		}
	}

	snapshot, err := s.TodaySnapshot(ctx)
	if err != nil {
		exitErr("today", err)
	}

	// One malformed task must never block the rest of the list: warn
	// and keep going.
	engine := scoring.NewEngine(weights)
	var scored []scoring.ScoredTask
	byID := map[string]todayTask{}
	for _, in := range snapshot {
		ts, err := engine.ScoreTask(in, now)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: skipping task %s: %v\n", in.Task.ID, err)
			continue
		}
		scored = append(scored, scoring.ScoredTask{Task: in.Task, Score: ts})
		byID[in.Task.ID] = todayTask{
			ID:          in.Task.ID,
			Name:        in.Task.Name,
			Priority:    in.Task.Priority,
			DueDate:     in.Task.DueDate,
			ProjectName: in.Project.Name,
			AreaName:    in.Area.Name,
			Score:       ts.Score,
			Breakdown:   ts.Breakdown,
		}
	}

	pinned, err := s.Pins(ctx, day)
	if err != nil {
		exitErr("today", err)
	}

	resp := todayResponse{Date: day, Ordering: "auto", Tasks: []todayTask{}}
	if len(pinned) > 0 {
		resp.Ordering = "overridden"
	}
	isPinned := map[string]bool{}
	for _, id := range pinned {
		isPinned[id] = true
	}

	for _, id := range scoring.SelectFocus(scored, top, pinned) {
		t := byID[id]
		t.Pinned = isPinned[id]
		resp.Tasks = append(resp.Tasks, t)
	}

	if formatFlag == "text" {
		fmt.Printf("Focus for %s\n", resp.Date)
		for i, t := range resp.Tasks {
			pin := ""
			if t.Pinned {
				pin = " (pinned)"
			}
			fmt.Printf("%d. [%.0f] %s (%s / %s)%s\n", i+1, t.Score, t.Name, t.ProjectName, t.AreaName, pin)
		}
		return
	}

	b, _ := json.MarshalIndent(resp, "", "  ")
	fmt.Println(string(b))
}
