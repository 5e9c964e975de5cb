package league

import (
	"errors"
	"reflect"
	"testing"

	"PinStatsApi/internal/assert"
)

func testMatch() MatchRecord {
	return MatchRecord{
		Key:   "mnp-21-3-DSD-WRK",
		Venue: VenueRecord{Name: "Olaf's"},
		Home: TeamRecord{
			Name: "The Wrecking Crew",
			Key:  "WRK",
			Lineup: []LineupPlayer{
				{Key: "wrk-1", Name: "Alice Chen"},
				{Key: "wrk-2", Name: "Bob Ortiz"},
			},
		},
		Away: TeamRecord{
			Name: "Death Save Divas",
			Key:  "DSD",
			Lineup: []LineupPlayer{
				{Key: "dsd-1", Name: "Cara Lund"},
				{Key: "dsd-2", Name: "Dev Patel"},
			},
		},
		Rounds: []RoundRecord{
			{N: 1, Games: []GameRecord{
				{N: 1, Machine: "Medieval Madness",
					Player1: "dsd-1", Score1: 1_200_000,
					Player2: "wrk-1", Score2: 900_000},
				{N: 2, Machine: "Medieval Madness",
					Player1: "dsd-2", Score1: 750_000,
					Player2: "wrk-2", Score2: 600_000},
			}},
			{N: 2, Games: []GameRecord{
				{N: 1, Machine: "Twilight Zone",
					Player1: "wrk-1", Score1: 40_000_000,
					Player2: "dsd-1", Score2: 25_000_000},
			}},
		},
	}
}

func testSnapshot() Snapshot {
	return Snapshot{
		Aliases: map[string]string{"mm": "medieval madness"},
		TeamKeys: map[string]string{
			"The Wrecking Crew": "WRK",
			"Death Save Divas":  "DSD",
		},
		Rosters: map[string][]string{
			"WRK": {"Alice Chen", "Bob Ortiz"},
			"DSD": {"Cara Lund"},
		},
	}
}

func TestFlattenPickFlags(t *testing.T) {
	matches := []MatchRecord{testMatch()}

	events, _, err := Flatten(matches, "Death Save Divas", "The Wrecking Crew", "Olaf's",
		testSnapshot())
	assert.NilError(t, err)

	// Three games, two scored slots each.
	assert.Equal(t, len(events), 6)

	for _, e := range events {
		switch {
		case e.Round == 1 && e.GameNumber == 1:
			// Away team picked round 1; first game on the machine carries it.
			assert.Equal(t, e.IsPick, true)
			assert.Equal(t, e.IsReferencePick, false)
			assert.Equal(t, e.PickedBy, "Death Save Divas")
		case e.Round == 1 && e.GameNumber == 2:
			// Repeat play of the same machine in the round is not a pick.
			assert.Equal(t, e.IsPick, false)
			assert.Equal(t, e.IsReferencePick, false)
		case e.Round == 2:
			assert.Equal(t, e.IsPick, false)
			assert.Equal(t, e.IsReferencePick, true)
			assert.Equal(t, e.PickedBy, "The Wrecking Crew")
		}
	}
}

func TestFlattenPickFlagsNeverBothTrue(t *testing.T) {
	// Primary and reference set to the same match's two teams: every event
	// must carry at most one pick flag, with the primary team winning the
	// rounds it picked.
	matches := []MatchRecord{testMatch()}

	events, _, err := Flatten(matches, "The Wrecking Crew", "Death Save Divas", "Olaf's",
		testSnapshot())
	assert.NilError(t, err)

	for _, e := range events {
		if e.IsPick && e.IsReferencePick {
			t.Errorf("event %s round %d game %d: both pick flags set",
				e.Machine, e.Round, e.GameNumber)
		}
		if e.Round == 2 && e.GameNumber == 1 {
			assert.Equal(t, e.IsPick, true)
		}
	}
}

func TestFlattenIsIdempotent(t *testing.T) {
	matches := []MatchRecord{testMatch()}
	snap := testSnapshot()

	first, firstMachines, err := Flatten(matches, "Death Save Divas", "The Wrecking Crew",
		"Olaf's", snap)
	assert.NilError(t, err)
	second, secondMachines, err := Flatten(matches, "Death Save Divas", "The Wrecking Crew",
		"Olaf's", snap)
	assert.NilError(t, err)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated flatten produced different events")
	}
	if !reflect.DeepEqual(firstMachines, secondMachines) {
		t.Errorf("repeated flatten produced different machine sets")
	}
}

func TestFlattenScoreLimit(t *testing.T) {
	match := testMatch()
	match.Rounds = []RoundRecord{
		{N: 1, Games: []GameRecord{
			{N: 1, Machine: "Medieval Madness",
				Player1: "dsd-1", Score1: 2_000_000_000, // over the limit, dropped
				Player2: "wrk-1", Score2: 1_000_000_000, // exactly the limit, kept
				Player3: "dsd-2", Score3: 500_000,
				Player4: "wrk-2", Score4: 0, // unused slot
			},
		}},
	}
	snap := testSnapshot()
	snap.ScoreLimits = map[string]int64{"medieval madness": 1_000_000_000}

	events, _, err := Flatten([]MatchRecord{match}, "Death Save Divas", "The Wrecking Crew",
		"Olaf's", snap)
	assert.NilError(t, err)

	assert.Equal(t, len(events), 2)
	scores := []int64{events[0].Score, events[1].Score}
	assert.Int64SliceEqual(t, scores, []int64{1_000_000_000, 500_000})
}

func TestFlattenNoMatches(t *testing.T) {
	_, _, err := Flatten(nil, "Death Save Divas", "The Wrecking Crew", "Olaf's", testSnapshot())
	if !errors.Is(err, ErrNoMatches) {
		t.Errorf("got %v; want ErrNoMatches", err)
	}
}

func TestFlattenMalformedKey(t *testing.T) {
	match := testMatch()
	match.Key = "garbage"

	_, _, err := Flatten([]MatchRecord{match}, "Death Save Divas", "The Wrecking Crew",
		"Olaf's", testSnapshot())
	if err == nil {
		t.Fatal("expected error for malformed match key")
	}
	assert.StringContains(t, err.Error(), `"garbage"`)
}

func TestFlattenNoRounds(t *testing.T) {
	match := testMatch()
	match.Rounds = nil

	_, _, err := Flatten([]MatchRecord{match}, "Death Save Divas", "The Wrecking Crew",
		"Olaf's", testSnapshot())
	if err == nil {
		t.Fatal("expected error for match without rounds")
	}
	assert.StringContains(t, err.Error(), match.Key)
}

func TestFlattenRecentMachines(t *testing.T) {
	older := testMatch()
	older.Key = "mnp-20-5-DSD-WRK"
	older.Rounds = []RoundRecord{
		{N: 1, Games: []GameRecord{
			{N: 1, Machine: "Attack From Mars", Player1: "dsd-1", Score1: 100},
		}},
	}

	snap := testSnapshot()
	snap.Included = []string{"Godzilla"}
	snap.Excluded = []string{"Twilight Zone"}

	_, recent, err := Flatten([]MatchRecord{older, testMatch()}, "Death Save Divas",
		"The Wrecking Crew", "Olaf's", snap)
	assert.NilError(t, err)

	// Latest season at the venue, minus exclusions, plus inclusions. The
	// older season's machine does not qualify.
	assert.Equal(t, recent["medieval madness"], true)
	assert.Equal(t, recent["godzilla"], true)
	assert.Equal(t, recent["twilight zone"], false)
	assert.Equal(t, recent["attack from mars"], false)
}

func TestFlattenRosterFlag(t *testing.T) {
	events, _, err := Flatten([]MatchRecord{testMatch()}, "Death Save Divas",
		"The Wrecking Crew", "Olaf's", testSnapshot())
	assert.NilError(t, err)

	for _, e := range events {
		switch e.PlayerName {
		case "Alice Chen", "Bob Ortiz", "Cara Lund":
			assert.Equal(t, e.IsRosterPlayer, true)
		case "Dev Patel":
			// In the match lineup but no longer on the current roster.
			assert.Equal(t, e.IsRosterPlayer, false)
		}
	}
}

func TestFlattenUnknownPlayerKey(t *testing.T) {
	match := testMatch()
	match.Rounds = []RoundRecord{
		{N: 1, Games: []GameRecord{
			{N: 1, Machine: "Medieval Madness", Player1: "sub-9", Score1: 314_000},
		}},
	}

	events, _, err := Flatten([]MatchRecord{match}, "Death Save Divas", "The Wrecking Crew",
		"Olaf's", testSnapshot())
	assert.NilError(t, err)

	assert.Equal(t, len(events), 1)
	assert.Equal(t, events[0].PlayerName, "sub-9")
	// A key in neither lineup attributes to the away team.
	assert.Equal(t, events[0].Team, "Death Save Divas")
}

func TestMatchSeason(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		want    int
		wantErr bool
	}{
		{name: "standard key", key: "mnp-21-3-DSD-WRK", want: 21},
		{name: "short key", key: "mnp-9", want: 9},
		{name: "no season field", key: "mnp", wantErr: true},
		{name: "non-numeric season", key: "mnp-xx-3", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			season, err := matchSeason(tt.key)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				assert.StringContains(t, err.Error(), tt.key)
				return
			}
			assert.NilError(t, err)
			assert.Equal(t, season, tt.want)
		})
	}
}
