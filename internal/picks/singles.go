package picks

import (
	"errors"
	"fmt"
	"sort"
)

// ErrNotEnoughPlayers reports that the requested machine count cannot be
// staffed from the available players. This is deliberately distinct from an
// empty recommendation, which means no advantageous machines were found.
var ErrNotEnoughPlayers = errors.New("not enough players available for the requested machine count")

// Assignment is one recommended machine with the player(s) to put on it.
type Assignment struct {
	Machine string   `json:"machine"`
	Players []string `json:"players"`
	Score   float64  `json:"score"`
}

// Selection is the full recommendation: the machines to pick, in descending
// order of expected advantage, with their assignments.
type Selection struct {
	Machines    []string     `json:"machines"`
	Assignments []Assignment `json:"assignments"`
	TotalScore  float64      `json:"total_score"`
}

// AssignSingles picks k machines and one player for each, maximizing the
// summed advantage weights. It computes an optimal full 1:1 matching over the
// complete players×machines weight matrix and then keeps the top k
// assignments by weight. The truncation step means the result is optimal for
// the matching but not necessarily for the choice of which k machines to
// keep; this mirrors the source system's behavior and keeps the solve
// bounded.
//
// Returns ErrNotEnoughPlayers when fewer than k players are available. A
// candidate machine list shorter than k clamps k instead: machines are what
// is being chosen, players are a hard resource.
func AssignSingles(scores map[string]map[string]float64, machines, players []string,
	k int) (Selection, error) {

	if k < 1 {
		return Selection{}, fmt.Errorf("machine count must be positive, got %d", k)
	}
	if len(players) < k {
		return Selection{}, ErrNotEnoughPlayers
	}
	if len(machines) < k {
		k = len(machines)
	}
	if k == 0 {
		return Selection{}, nil
	}

	// Square matrix padded with zero-weight dummy cells so the matching is
	// always feasible.
	n := len(players)
	if len(machines) > n {
		n = len(machines)
	}
	cost := make([][]float64, n)
	for i := range cost {
		cost[i] = make([]float64, n)
		for j := range cost[i] {
			if i < len(players) && j < len(machines) {
				cost[i][j] = -scores[players[i]][machines[j]]
			}
		}
	}

	matched := hungarian(cost)

	assignments := make([]Assignment, 0, len(players))
	for i, j := range matched {
		if i >= len(players) || j >= len(machines) {
			continue
		}
		assignments = append(assignments, Assignment{
			Machine: machines[j],
			Players: []string{players[i]},
			Score:   scores[players[i]][machines[j]],
		})
	}

	sort.SliceStable(assignments, func(i, j int) bool {
		if assignments[i].Score != assignments[j].Score {
			return assignments[i].Score > assignments[j].Score
		}
		return assignments[i].Machine < assignments[j].Machine
	})
	if len(assignments) > k {
		assignments = assignments[:k]
	}

	return newSelection(assignments), nil
}

func newSelection(assignments []Assignment) Selection {
	selection := Selection{
		Machines:    make([]string, 0, len(assignments)),
		Assignments: assignments,
	}
	for _, a := range assignments {
		selection.Machines = append(selection.Machines, a.Machine)
		selection.TotalScore += a.Score
	}
	return selection
}
