package picks

import (
	"fmt"
	"sort"
)

// PairScore scores a player pair on a machine. The minimum term rewards
// balanced pairs: one strong and one weak player score below two solid
// players with the same sum.
func PairScore(a, b float64) float64 {
	min := a
	if b < a {
		min = b
	}
	return 0.5*(a+b) + 0.5*min
}

// AssignDoubles picks k machines and a disjoint player pair for each.
// Candidates are every unordered pair on every machine; the solver sorts all
// (pair, machine) triples by score and greedily keeps the best whose machine
// and players are still free. This is a heuristic, not an exact optimum: the
// pair-machine space is factorial and exact optimization is impractical at
// typical roster sizes.
//
// Returns ErrNotEnoughPlayers when fewer than 2k players are available.
func AssignDoubles(scores map[string]map[string]float64, machines, players []string,
	k int) (Selection, error) {

	if k < 1 {
		return Selection{}, fmt.Errorf("machine count must be positive, got %d", k)
	}
	if len(machines) < k {
		k = len(machines)
	}
	if len(players) < 2*k {
		return Selection{}, ErrNotEnoughPlayers
	}
	if k == 0 {
		return Selection{}, nil
	}

	type triple struct {
		machine string
		a, b    string
		score   float64
	}

	triples := make([]triple, 0, len(machines)*len(players)*len(players)/2)
	for _, machine := range machines {
		for i := 0; i < len(players); i++ {
			for j := i + 1; j < len(players); j++ {
				triples = append(triples, triple{
					machine: machine,
					a:       players[i],
					b:       players[j],
					score:   PairScore(scores[players[i]][machine], scores[players[j]][machine]),
				})
			}
		}
	}

	sort.SliceStable(triples, func(i, j int) bool {
		if triples[i].score != triples[j].score {
			return triples[i].score > triples[j].score
		}
		return triples[i].machine < triples[j].machine
	})

	usedMachine := make(map[string]bool)
	usedPlayer := make(map[string]bool)
	assignments := make([]Assignment, 0, k)

	for _, t := range triples {
		if len(assignments) == k {
			break
		}
		if usedMachine[t.machine] || usedPlayer[t.a] || usedPlayer[t.b] {
			continue
		}
		usedMachine[t.machine] = true
		usedPlayer[t.a] = true
		usedPlayer[t.b] = true
		assignments = append(assignments, Assignment{
			Machine: t.machine,
			Players: []string{t.a, t.b},
			Score:   t.score,
		})
	}

	return newSelection(assignments), nil
}
