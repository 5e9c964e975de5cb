// Package picks builds per-player machine performance profiles and
// machine-level advantage comparisons against an opponent, and recommends
// machine selections (singles) or player-pair assignments (doubles).
//
// Everything here is a pure computation over a flattened event table; the
// caller supplies a fresh configuration snapshot per invocation.
package picks

import (
	"sort"

	"PinStatsApi/internal/league"
)

// Composite score blend: performance gap dominates, experience gap breaks
// close calls. Five extra plays swing the normalized experience term by 20
// points.
const (
	statisticalWeight  = 0.7
	experienceWeight   = 0.3
	pointsPerExtraPlay = 4.0
	compositeCeiling   = 100.0
)

// Advantage labels, descriptive only; ranking uses the composite score.
const (
	LevelTeamAdvantage     = "Team Advantage"
	LevelOpponentAdvantage = "Opponent Advantage"
	LevelNeutral           = "Slight/No Advantage"
)

const statisticalLabelThreshold = 20.0

// MachineStats is one player's record on one machine at the analyzed venue.
type MachineStats struct {
	Average    float64 `json:"average"`
	PctOfVenue float64 `json:"pct_of_venue"`
	Plays      int     `json:"plays"`
	TeamRank   int     `json:"team_rank"`
}

// PlayerProfile is one roster player's performance profile, rebuilt in full
// on every analysis invocation.
type PlayerProfile struct {
	Player string `json:"player"`
	// Machines maps canonical machine name to the player's record on it.
	Machines map[string]*MachineStats `json:"machines"`
	// OverallPct is the mean of the per-machine percent-of-venue values,
	// uniform across machines regardless of play counts.
	OverallPct float64 `json:"overall_pct"`
	// Breadth is the number of distinct machines the player has history on.
	Breadth int `json:"breadth"`
}

// MachineAdvantage compares the analyzed team against the reference team on
// one machine.
type MachineAdvantage struct {
	Machine          string   `json:"machine"`
	VenueAverage     float64  `json:"venue_average"`
	TeamAverage      float64  `json:"team_average"`
	TeamPct          float64  `json:"team_pct"`
	TeamPlays        int      `json:"team_plays"`
	ReferenceAverage float64  `json:"reference_average"`
	ReferencePct     float64  `json:"reference_pct"`
	ReferencePlays   int      `json:"reference_plays"`
	StatAdvantage    float64  `json:"stat_advantage"`
	CompositeScore   float64  `json:"composite_score"`
	Level            string   `json:"level"`
	TopPerformers    []string `json:"top_performers"`
}

// BuildAdvantage builds the per-player profiles for team's current roster and
// the machine advantage table against referenceTeam, both restricted to venue
// and the season window. Candidate machines are those observed at the venue
// in the window, plus the snapshot's included list, minus its exclusions.
//
// Both sides are measured by their current roster players, matching the
// roster policy of the report engine. The table returns sorted by composite
// score, best machines for the analyzed team first.
func BuildAdvantage(events []league.ScoredEvent, team, referenceTeam, venue string,
	seasons league.SeasonRange, snap league.Snapshot) (map[string]*PlayerProfile,
	[]MachineAdvantage) {

	venueEvents := league.FilterEvents(events, league.Filter{
		Venue:   venue,
		Seasons: &seasons,
	})

	machines := candidateMachines(venueEvents, snap)
	teamEvents := league.FilterEvents(venueEvents, league.Filter{Team: team, RosterOnly: true})
	referenceEvents := league.FilterEvents(venueEvents, league.Filter{
		Team:       referenceTeam,
		RosterOnly: true,
	})

	profiles := make(map[string]*PlayerProfile)
	table := make([]MachineAdvantage, 0, len(machines))

	for _, machine := range machines {
		venueAvg, _ := machineAverage(venueEvents, machine)
		refAvg, refPlays := machineAverage(referenceEvents, machine)
		teamAvg, teamPlays := machineAverage(teamEvents, machine)

		adv := MachineAdvantage{
			Machine:      machine,
			VenueAverage: venueAvg,
		}

		if teamPlays > 0 {
			adv.TeamAverage = teamAvg
			adv.TeamPlays = teamPlays
			if venueAvg > 0 {
				adv.TeamPct = 100 * teamAvg / venueAvg
			}
		}
		if refPlays > 0 {
			adv.ReferenceAverage = refAvg
			adv.ReferencePlays = refPlays
			if venueAvg > 0 {
				adv.ReferencePct = 100 * refAvg / venueAvg
			}
		}

		adv.StatAdvantage, adv.CompositeScore = compositeScore(
			adv.TeamPct, adv.ReferencePct, teamPlays, refPlays)
		adv.Level = advantageLevel(adv.StatAdvantage, teamPlays, refPlays)

		rankPlayersOnMachine(profiles, teamEvents, machine, venueAvg)
		adv.TopPerformers = topPerformers(profiles, machine, 3)

		table = append(table, adv)
	}

	finalizeProfiles(profiles)

	sort.SliceStable(table, func(i, j int) bool {
		return table[i].CompositeScore > table[j].CompositeScore
	})

	return profiles, table
}

// candidateMachines is (machines observed at the venue in the window) plus
// the included list, minus the excluded list, sorted.
func candidateMachines(venueEvents []league.ScoredEvent, snap league.Snapshot) []string {
	set := make(map[string]bool)
	for _, e := range venueEvents {
		set[e.Machine] = true
	}
	for _, machine := range snap.Included {
		set[league.Normalize(machine, snap.Aliases)] = true
	}
	for _, machine := range snap.Excluded {
		delete(set, league.Normalize(machine, snap.Aliases))
	}

	machines := make([]string, 0, len(set))
	for machine := range set {
		machines = append(machines, machine)
	}
	sort.Strings(machines)
	return machines
}

func machineAverage(events []league.ScoredEvent, machine string) (avg float64, plays int) {
	var total float64
	for _, e := range events {
		if e.Machine == machine {
			total += float64(e.Score)
			plays++
		}
	}
	if plays == 0 {
		return 0, 0
	}
	return total / float64(plays), plays
}

// compositeScore blends the percent-of-venue gap with the experience gap.
// One-sided history pins the score to the ceiling for whichever side has it.
func compositeScore(teamPct, refPct float64, teamPlays, refPlays int) (stat, composite float64) {
	switch {
	case teamPlays > 0 && refPlays == 0:
		return 0, compositeCeiling
	case refPlays > 0 && teamPlays == 0:
		return 0, -compositeCeiling
	case teamPlays == 0 && refPlays == 0:
		return 0, 0
	}

	stat = teamPct - refPct
	experience := float64(teamPlays-refPlays) * pointsPerExtraPlay
	experience = clamp(experience, -compositeCeiling, compositeCeiling)
	return stat, statisticalWeight*stat + experienceWeight*experience
}

func advantageLevel(stat float64, teamPlays, refPlays int) string {
	if teamPlays == 0 || refPlays == 0 {
		return LevelNeutral
	}
	switch {
	case stat > statisticalLabelThreshold:
		return LevelTeamAdvantage
	case stat < -statisticalLabelThreshold:
		return LevelOpponentAdvantage
	default:
		return LevelNeutral
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// rankPlayersOnMachine fills per-player stats for one machine and assigns
// 1-based team ranks by percent descending (stable sort, no further tie
// handling).
func rankPlayersOnMachine(profiles map[string]*PlayerProfile, teamEvents []league.ScoredEvent,
	machine string, venueAvg float64) {

	totals := make(map[string]float64)
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, e := range teamEvents {
		if e.Machine != machine {
			continue
		}
		if _, seen := counts[e.PlayerName]; !seen {
			order = append(order, e.PlayerName)
		}
		totals[e.PlayerName] += float64(e.Score)
		counts[e.PlayerName]++
	}

	for _, player := range order {
		profile, ok := profiles[player]
		if !ok {
			profile = &PlayerProfile{
				Player:   player,
				Machines: make(map[string]*MachineStats),
			}
			profiles[player] = profile
		}

		stats := &MachineStats{
			Average: totals[player] / float64(counts[player]),
			Plays:   counts[player],
		}
		if venueAvg > 0 {
			stats.PctOfVenue = 100 * stats.Average / venueAvg
		}
		profile.Machines[machine] = stats
	}

	sort.SliceStable(order, func(i, j int) bool {
		return profiles[order[i]].Machines[machine].PctOfVenue >
			profiles[order[j]].Machines[machine].PctOfVenue
	})
	for rank, player := range order {
		profiles[player].Machines[machine].TeamRank = rank + 1
	}
}

func topPerformers(profiles map[string]*PlayerProfile, machine string, n int) []string {
	type ranked struct {
		player string
		rank   int
	}
	players := make([]ranked, 0)
	for name, profile := range profiles {
		if stats, ok := profile.Machines[machine]; ok {
			players = append(players, ranked{player: name, rank: stats.TeamRank})
		}
	}
	sort.Slice(players, func(i, j int) bool { return players[i].rank < players[j].rank })

	top := make([]string, 0, n)
	for _, p := range players {
		if len(top) == n {
			break
		}
		top = append(top, p.player)
	}
	return top
}

func finalizeProfiles(profiles map[string]*PlayerProfile) {
	for _, profile := range profiles {
		var total float64
		for _, stats := range profile.Machines {
			total += stats.PctOfVenue
		}
		profile.Breadth = len(profile.Machines)
		if profile.Breadth > 0 {
			profile.OverallPct = total / float64(profile.Breadth)
		}
	}
}
