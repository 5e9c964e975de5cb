package league

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrNoMatches = errors.New("no match records supplied")

// awayPickRounds reflects league structure: the away team picks the machines
// for rounds 1 and 3, the home team for rounds 2 and 4.
func picksRound(isAway bool, round int) bool {
	if isAway {
		return round == 1 || round == 3
	}
	return round == 2 || round == 4
}

// matchSeason extracts the season number from a match key such as
// "mnp-21-3-ABC-DEF" (second dash-separated field).
func matchSeason(key string) (int, error) {
	parts := strings.Split(key, "-")
	if len(parts) < 2 {
		return 0, fmt.Errorf("match %q: malformed key", key)
	}
	season, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("match %q: malformed season in key: %w", key, err)
	}
	return season, nil
}

// Flatten walks every match, round, game and score slot and emits one
// ScoredEvent per valid play, together with the set of machines currently in
// rotation at venue (machines seen there in the latest supplied season, less
// the snapshot's exclusions, plus its inclusions).
//
// Pick flags are role-relative: IsPick is true on the events of the first
// game on a machine within a round when primaryTeam held picking rights for
// that round, IsReferencePick likewise for referenceTeam. When both teams
// would qualify the primary team wins; the flags are never both true.
//
// Structural problems (no matches, malformed match key, match without
// rounds) are returned as errors naming the offending match. Data-quality
// problems degrade per slot: unused and over-limit scores are dropped,
// unknown player keys fall back to the raw key, unknown rosters mean
// IsRosterPlayer is false.
func Flatten(matches []MatchRecord, primaryTeam, referenceTeam, venue string,
	snap Snapshot) ([]ScoredEvent, map[string]bool, error) {

	if len(matches) == 0 {
		return nil, nil, ErrNoMatches
	}

	latestSeason := 0
	for _, match := range matches {
		season, err := matchSeason(match.Key)
		if err != nil {
			return nil, nil, err
		}
		if season > latestSeason {
			latestSeason = season
		}
	}

	recentMachines := make(map[string]bool)
	for _, machine := range snap.Included {
		recentMachines[Normalize(machine, snap.Aliases)] = true
	}
	excluded := make(map[string]bool)
	for _, machine := range snap.Excluded {
		excluded[Normalize(machine, snap.Aliases)] = true
	}

	events := make([]ScoredEvent, 0)

	for _, match := range matches {
		if len(match.Rounds) == 0 {
			return nil, nil, fmt.Errorf("match %q: record has no rounds", match.Key)
		}
		season, err := matchSeason(match.Key)
		if err != nil {
			return nil, nil, err
		}

		matchVenue := match.Venue.Name
		homeTeam := match.Home.Name
		awayTeam := match.Away.Name

		primaryAway := teamEqual(primaryTeam, awayTeam)
		primaryHome := teamEqual(primaryTeam, homeTeam)
		referenceAway := teamEqual(referenceTeam, awayTeam)
		referenceHome := teamEqual(referenceTeam, homeTeam)

		for _, round := range match.Rounds {
			pickedBy := homeTeam
			if round.N == 1 || round.N == 3 {
				pickedBy = awayTeam
			}
			playedThisRound := make(map[string]bool)

			for _, game := range round.Games {
				machine := Normalize(game.Machine, snap.Aliases)
				if machine == "" {
					continue
				}

				if season == latestSeason && teamEqual(matchVenue, venue) && !excluded[machine] {
					recentMachines[machine] = true
				}

				// First game on a machine in a round carries the pick; repeat
				// plays of the same machine in the round do not.
				isPick := false
				isReferencePick := false
				if !playedThisRound[machine] {
					switch {
					case primaryAway && picksRound(true, round.N),
						primaryHome && picksRound(false, round.N):
						isPick = true
					case referenceAway && picksRound(true, round.N),
						referenceHome && picksRound(false, round.N):
						isReferencePick = true
					}
				}
				playedThisRound[machine] = true

				for _, slot := range game.slots() {
					if slot.score == 0 {
						continue
					}
					if limit, ok := snap.scoreLimit(machine); ok && slot.score > limit {
						// Presumed data-entry error; dropped from every
						// downstream count, Times Played included.
						continue
					}

					playerName := lineupName(match, slot.playerKey)
					playerTeam := awayTeam
					if inLineup(match.Home.Lineup, slot.playerKey) {
						playerTeam = homeTeam
					}

					events = append(events, ScoredEvent{
						Season:          season,
						Machine:         machine,
						PlayerName:      playerName,
						Score:           slot.score,
						Team:            playerTeam,
						Match:           match.Key,
						Round:           round.N,
						GameNumber:      game.N,
						Venue:           matchVenue,
						PickedBy:        pickedBy,
						IsPick:          isPick,
						IsReferencePick: isReferencePick,
						IsRosterPlayer:  snap.rosterContains(playerTeam, playerName),
					})
				}
			}
		}
	}

	return events, recentMachines, nil
}

func teamEqual(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

func lineupName(match MatchRecord, playerKey string) string {
	for _, lineup := range [][]LineupPlayer{match.Home.Lineup, match.Away.Lineup} {
		for _, player := range lineup {
			if player.Key == playerKey {
				return player.Name
			}
		}
	}
	return playerKey
}

func inLineup(lineup []LineupPlayer, playerKey string) bool {
	for _, player := range lineup {
		if player.Key == playerKey {
			return true
		}
	}
	return false
}
