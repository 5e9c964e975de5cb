package league

import (
	"fmt"
	"strconv"
	"strings"
)

// SeasonRange is an inclusive window of season numbers.
type SeasonRange struct {
	From int `json:"from" yaml:"from"`
	To   int `json:"to" yaml:"to"`
}

func (r SeasonRange) contains(season int) bool {
	return season >= r.From && season <= r.To
}

// ParseSeasonRange parses a season expression from user input: a single
// season ("19") or an inclusive range ("20-21").
func ParseSeasonRange(expr string) (SeasonRange, error) {
	expr = strings.ReplaceAll(expr, " ", "")

	if from, to, found := strings.Cut(expr, "-"); found {
		start, err := strconv.Atoi(from)
		if err != nil {
			return SeasonRange{}, fmt.Errorf("invalid season range %q", expr)
		}
		end, err := strconv.Atoi(to)
		if err != nil {
			return SeasonRange{}, fmt.Errorf("invalid season range %q", expr)
		}
		if start > end {
			return SeasonRange{}, fmt.Errorf("season range %q is backwards", expr)
		}
		return SeasonRange{From: start, To: end}, nil
	}

	season, err := strconv.Atoi(expr)
	if err != nil {
		return SeasonRange{}, fmt.Errorf("invalid season %q", expr)
	}
	return SeasonRange{From: season, To: season}, nil
}

// Filter restricts a flattened event table. All fields are optional and
// compose by conjunction. Team and Venue compare case-insensitively with
// surrounding whitespace ignored; Seasons is inclusive on both ends;
// RosterOnly keeps only events scored by current roster players and applies
// whether or not Team is set.
type Filter struct {
	Team       string
	Seasons    *SeasonRange
	Venue      string
	RosterOnly bool
}

func FilterEvents(events []ScoredEvent, f Filter) []ScoredEvent {
	filtered := make([]ScoredEvent, 0, len(events))
	for _, e := range events {
		if f.Team != "" && !teamEqual(e.Team, f.Team) {
			continue
		}
		if f.Seasons != nil && !f.Seasons.contains(e.Season) {
			continue
		}
		if f.Venue != "" && !teamEqual(e.Venue, f.Venue) {
			continue
		}
		if f.RosterOnly && !e.IsRosterPlayer {
			continue
		}
		filtered = append(filtered, e)
	}
	return filtered
}
