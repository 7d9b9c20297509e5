package scoring

import (
	"sort"

	"github.com/aurumlife/aurum/internal/model"
)

// DefaultFocusCount bounds the daily focus list when the caller does
// not ask for a specific size.
const DefaultFocusCount = 5

// ScoredTask pairs a task with its computed score for selection.
type ScoredTask struct {
	Task  model.Task
	Score TaskScore
}

// SelectFocus produces today's ordered focus list: up to count task
// ids, completed and blocked tasks excluded, pinned ids first.
//
// Pinned ids keep their given order and only count when they refer to
// an eligible task in the input. The remainder is ordered by score
// descending, then due date (dated before undated, earlier first),
// then task id, so identical inputs always yield identical output.
// A non-positive count means no focus was requested and returns an
// empty list. SelectFocus never fails.
func SelectFocus(scored []ScoredTask, count int, pinned []string) []string {
	if count <= 0 {
		return []string{}
	}

	eligible := make([]ScoredTask, 0, len(scored))
	seen := map[string]bool{}
	for _, st := range scored {
		if st.Task.Completed || st.Score.Breakdown.Blocked || seen[st.Task.ID] {
			continue
		}
		seen[st.Task.ID] = true
		eligible = append(eligible, st)
	}

	sort.Slice(eligible, func(i, j int) bool {
		a, b := eligible[i], eligible[j]
		if a.Score.Score != b.Score.Score {
			return a.Score.Score > b.Score.Score
		}
		ad, bd := a.Task.DueDate, b.Task.DueDate
		switch {
		case ad != nil && bd == nil:
			return true
		case ad == nil && bd != nil:
			return false
		case ad != nil && bd != nil && !ad.Equal(*bd):
			return ad.Before(*bd)
		}
		return a.Task.ID < b.Task.ID
	})

	eligibleIDs := map[string]bool{}
	for _, st := range eligible {
		eligibleIDs[st.Task.ID] = true
	}

	out := make([]string, 0, count)
	taken := map[string]bool{}
	for _, id := range pinned {
		if len(out) == count {
			break
		}
		if eligibleIDs[id] && !taken[id] {
			taken[id] = true
			out = append(out, id)
		}
	}
	for _, st := range eligible {
		if len(out) == count {
			break
		}
		if !taken[st.Task.ID] {
			taken[st.Task.ID] = true
			out = append(out, st.Task.ID)
		}
	}
	return out
}
