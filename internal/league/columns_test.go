package league

import (
	"testing"

	"PinStatsApi/internal/assert"
)

func TestCalcStatsDistinctRounds(t *testing.T) {
	// The same machine played twice within one round counts once for times
	// played and once for times picked; a different round counts again.
	events := []ScoredEvent{
		{Machine: "medieval madness", Match: "mnp-21-1-A-B", Round: 1, GameNumber: 1,
			Score: 100, IsPick: true},
		{Machine: "medieval madness", Match: "mnp-21-1-A-B", Round: 1, GameNumber: 2,
			Score: 200, IsPick: true},
		{Machine: "medieval madness", Match: "mnp-21-1-A-B", Round: 3, GameNumber: 1,
			Score: 300},
		{Machine: "medieval madness", Match: "mnp-21-2-A-C", Round: 1, GameNumber: 1,
			Score: 400, IsPick: true},
		{Machine: "twilight zone", Match: "mnp-21-1-A-B", Round: 2, GameNumber: 1,
			Score: 999},
	}

	stats := calcStats(events, "medieval madness", false)

	assert.Equal(t, stats.timesPlayed, 3)
	assert.Equal(t, stats.timesPicked, 2)
	assert.Equal(t, stats.highest, int64(400))
	assert.Float64Near(t, stats.average, 250, 0.001)
	assert.Equal(t, stats.hasScores, true)
}

func TestCalcStatsReferencePicks(t *testing.T) {
	events := []ScoredEvent{
		{Machine: "medieval madness", Match: "m1", Round: 1, Score: 100, IsPick: true},
		{Machine: "medieval madness", Match: "m1", Round: 2, Score: 100, IsReferencePick: true},
	}

	assert.Equal(t, calcStats(events, "medieval madness", false).timesPicked, 1)
	assert.Equal(t, calcStats(events, "medieval madness", true).timesPicked, 1)
}

func TestCalcStatsNoEvents(t *testing.T) {
	stats := calcStats(nil, "medieval madness", false)

	assert.Equal(t, stats.hasScores, false)
	assert.Equal(t, stats.timesPlayed, 0)
	assert.Equal(t, stats.timesPicked, 0)
}

func TestFormatCell(t *testing.T) {
	tests := []struct {
		name string
		cell cellValue
		agg  aggregate
		want string
	}{
		{
			name: "missing average",
			cell: cellValue{},
			agg:  aggAverage,
			want: NotAvailable,
		},
		{
			name: "average gets separators and two decimals",
			cell: cellValue{value: 1234567.5, present: true},
			agg:  aggAverage,
			want: "1,234,567.50",
		},
		{
			name: "count stays an integer",
			cell: cellValue{value: 12, present: true},
			agg:  aggTimesPlayed,
			want: "12",
		},
		{
			name: "highest score gets separators",
			cell: cellValue{value: 2500000, present: true},
			agg:  aggHighest,
			want: "2,500,000",
		},
		{
			name: "backfilled value carries its season marker",
			cell: cellValue{value: 900000, present: true, backfillSeason: 19},
			agg:  aggAverage,
			want: "900,000.00*S19",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, formatCell(tt.cell, tt.agg), tt.want)
		})
	}
}

func TestComputeColumnBackfill(t *testing.T) {
	// No events in the 20-21 window; season 18 has data, season 17 too.
	// Backfill must land on 18, the nearest earlier season with a positive
	// value.
	events := []ScoredEvent{
		{Machine: "medieval madness", Match: "mnp-17-1-A-B", Round: 1, Season: 17,
			Score: 400, Team: "The Wrecking Crew", Venue: "Olaf's", IsRosterPlayer: true},
		{Machine: "medieval madness", Match: "mnp-18-1-A-B", Round: 1, Season: 18,
			Score: 800, Team: "The Wrecking Crew", Venue: "Olaf's", IsRosterPlayer: true},
	}

	spec := ColumnSpec{
		Name:          "Team Average",
		Kind:          ColTeamAverage,
		Include:       true,
		Seasons:       SeasonRange{From: 20, To: 21},
		VenueSpecific: true,
		Backfill:      true,
	}

	cell := computeColumn(events, "medieval madness", spec,
		"The Wrecking Crew", "Death Save Divas", "Olaf's")

	assert.Equal(t, cell.present, true)
	assert.Float64Near(t, cell.value, 800, 0.001)
	assert.Equal(t, cell.backfillSeason, 18)
}

func TestComputeColumnNoBackfillWhenDisabled(t *testing.T) {
	events := []ScoredEvent{
		{Machine: "medieval madness", Match: "mnp-18-1-A-B", Round: 1, Season: 18,
			Score: 800, Team: "The Wrecking Crew", Venue: "Olaf's", IsRosterPlayer: true},
	}

	spec := ColumnSpec{
		Name:          "Team Average",
		Kind:          ColTeamAverage,
		Include:       true,
		Seasons:       SeasonRange{From: 20, To: 21},
		VenueSpecific: true,
	}

	cell := computeColumn(events, "medieval madness", spec,
		"The Wrecking Crew", "Death Save Divas", "Olaf's")

	assert.Equal(t, cell.present, false)
}

func TestComputeColumnRosterPolicy(t *testing.T) {
	// The venue average counts every player; the team average counts only
	// current roster players.
	events := []ScoredEvent{
		{Machine: "medieval madness", Match: "mnp-21-1-A-B", Round: 1, Season: 21,
			Score: 600, Team: "The Wrecking Crew", Venue: "Olaf's", IsRosterPlayer: true},
		{Machine: "medieval madness", Match: "mnp-21-1-A-B", Round: 1, Season: 21,
			Score: 200, Team: "The Wrecking Crew", Venue: "Olaf's"},
	}

	window := SeasonRange{From: 20, To: 21}
	teamSpec := ColumnSpec{Kind: ColTeamAverage, Include: true, Seasons: window,
		VenueSpecific: true}
	venueSpec := ColumnSpec{Kind: ColVenueAverage, Include: true, Seasons: window,
		VenueSpecific: true}

	teamCell := computeColumn(events, "medieval madness", teamSpec,
		"The Wrecking Crew", "", "Olaf's")
	venueCell := computeColumn(events, "medieval madness", venueSpec,
		"The Wrecking Crew", "", "Olaf's")

	assert.Float64Near(t, teamCell.value, 600, 0.001)
	assert.Float64Near(t, venueCell.value, 400, 0.001)
}
