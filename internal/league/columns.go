package league

import (
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"
)

// ColumnKind enumerates the report statistics. Each kind carries its own
// filter and aggregation behavior: which team it looks at, whether it is
// restricted to roster players, and which pick flag it counts.
type ColumnKind int8

const (
	ColTeamAverage ColumnKind = iota
	ColReferenceAverage
	ColVenueAverage
	ColTeamHighestScore
	ColTimesPlayed
	ColReferenceTimesPlayed
	ColTimesPicked
	ColReferenceTimesPicked
)

// ColumnSpec describes one configured report column. Seasons is the window
// the statistic is computed over; VenueSpecific restricts it to the report's
// venue; Backfill substitutes the nearest earlier season's value when the
// windowed value is missing or zero.
type ColumnSpec struct {
	Name          string
	Kind          ColumnKind
	Include       bool
	Seasons       SeasonRange
	VenueSpecific bool
	Backfill      bool
}

type teamSelector int8

const (
	teamNone teamSelector = iota
	teamPrimary
	teamReference
)

type aggregate int8

const (
	aggAverage aggregate = iota
	aggHighest
	aggTimesPlayed
	aggTimesPicked
)

type columnTraits struct {
	team          teamSelector
	rosterOnly    bool
	agg           aggregate
	referencePick bool
}

func (k ColumnKind) traits() columnTraits {
	switch k {
	case ColTeamAverage:
		return columnTraits{team: teamPrimary, rosterOnly: true, agg: aggAverage}
	case ColReferenceAverage:
		return columnTraits{team: teamReference, rosterOnly: true, agg: aggAverage}
	case ColVenueAverage:
		return columnTraits{team: teamNone, agg: aggAverage}
	case ColTeamHighestScore:
		return columnTraits{team: teamPrimary, rosterOnly: true, agg: aggHighest}
	case ColTimesPlayed:
		return columnTraits{team: teamPrimary, rosterOnly: true, agg: aggTimesPlayed}
	case ColReferenceTimesPlayed:
		return columnTraits{team: teamReference, rosterOnly: true, agg: aggTimesPlayed}
	case ColTimesPicked:
		return columnTraits{team: teamPrimary, rosterOnly: true, agg: aggTimesPicked}
	case ColReferenceTimesPicked:
		return columnTraits{team: teamReference, rosterOnly: true, agg: aggTimesPicked,
			referencePick: true}
	default:
		return columnTraits{}
	}
}

// machineStats are the raw aggregates for one machine over a filtered table.
type machineStats struct {
	average     float64
	hasScores   bool
	highest     int64
	timesPlayed int
	timesPicked int
}

// calcStats aggregates the events for one machine. Times played and times
// picked count distinct (match, round) pairs: a machine replayed within a
// round counts once.
func calcStats(events []ScoredEvent, machine string, referencePick bool) machineStats {
	var stats machineStats
	var total float64
	var scored int

	playedRounds := make(map[string]bool)
	pickedRounds := make(map[string]bool)

	for _, e := range events {
		if e.Machine != machine {
			continue
		}

		total += float64(e.Score)
		scored++
		if e.Score > stats.highest {
			stats.highest = e.Score
		}

		key := e.Match + "#" + strconv.Itoa(e.Round)
		playedRounds[key] = true

		picked := e.IsPick
		if referencePick {
			picked = e.IsReferencePick
		}
		if picked {
			pickedRounds[key] = true
		}
	}

	if scored > 0 {
		stats.average = total / float64(scored)
		stats.hasScores = true
	}
	stats.timesPlayed = len(playedRounds)
	stats.timesPicked = len(pickedRounds)
	return stats
}

// cellValue is a resolved report cell before formatting. present is false
// only when an average has no qualifying scores; counts and highest scores
// resolve to zero instead.
type cellValue struct {
	value          float64
	present        bool
	backfillSeason int
}

func computeColumn(events []ScoredEvent, machine string, spec ColumnSpec,
	primaryTeam, referenceTeam, venue string) cellValue {

	traits := spec.Kind.traits()

	team := ""
	switch traits.team {
	case teamPrimary:
		team = primaryTeam
	case teamReference:
		team = referenceTeam
	}

	venueFilter := ""
	if spec.VenueSpecific {
		venueFilter = venue
	}

	window := spec.Seasons
	filtered := FilterEvents(events, Filter{
		Team:       team,
		Seasons:    &window,
		Venue:      venueFilter,
		RosterOnly: traits.rosterOnly,
	})
	stats := calcStats(filtered, machine, traits.referencePick)
	cell := resolveAggregate(stats, traits.agg)

	if spec.Backfill && (!cell.present || cell.value == 0) {
		if value, season, ok := backfillColumn(events, machine, spec, team, venueFilter,
			traits); ok {
			cell = cellValue{value: value, present: true, backfillSeason: season}
		}
	}

	return cell
}

func resolveAggregate(stats machineStats, agg aggregate) cellValue {
	switch agg {
	case aggAverage:
		return cellValue{value: stats.average, present: stats.hasScores}
	case aggHighest:
		return cellValue{value: float64(stats.highest), present: true}
	case aggTimesPlayed:
		return cellValue{value: float64(stats.timesPlayed), present: true}
	case aggTimesPicked:
		return cellValue{value: float64(stats.timesPicked), present: true}
	default:
		return cellValue{}
	}
}

// backfillColumn walks seasons backwards from just before the spec's window,
// returning the first season with a positive value for the column's
// aggregate.
func backfillColumn(events []ScoredEvent, machine string, spec ColumnSpec,
	team, venueFilter string, traits columnTraits) (float64, int, bool) {

	for season := spec.Seasons.From - 1; season >= 1; season-- {
		window := SeasonRange{From: season, To: season}
		filtered := FilterEvents(events, Filter{
			Team:       team,
			Seasons:    &window,
			Venue:      venueFilter,
			RosterOnly: traits.rosterOnly,
		})
		stats := calcStats(filtered, machine, traits.referencePick)
		cell := resolveAggregate(stats, traits.agg)
		if cell.present && cell.value > 0 {
			return cell.value, season, true
		}
	}
	return 0, 0, false
}

// NotAvailable is the sentinel cell for "no data for this machine/team/venue
// combination", a normal outcome distinct from a request-level error.
const NotAvailable = "N/A"

func formatCell(cell cellValue, agg aggregate) string {
	if !cell.present {
		return NotAvailable
	}

	var formatted string
	if agg == aggAverage {
		formatted = humanize.FormatFloat("#,###.##", cell.value)
	} else {
		formatted = humanize.Comma(int64(cell.value))
	}

	if cell.backfillSeason != 0 {
		formatted += fmt.Sprintf("*S%d", cell.backfillSeason)
	}
	return formatted
}
