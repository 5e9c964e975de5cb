package league

// MatchRecord is one parsed match document from the league data archive. A
// match is a single game night between two teams at one venue, played over
// four rounds. Records are treated as immutable once loaded.
type MatchRecord struct {
	Key    string        `json:"key"`
	Venue  VenueRecord   `json:"venue"`
	Home   TeamRecord    `json:"home"`
	Away   TeamRecord    `json:"away"`
	Rounds []RoundRecord `json:"rounds"`
}

type VenueRecord struct {
	Name string `json:"name"`
}

type TeamRecord struct {
	Name   string         `json:"name"`
	Key    string         `json:"key"`
	Lineup []LineupPlayer `json:"lineup"`
}

type LineupPlayer struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

type RoundRecord struct {
	N     int          `json:"n"`
	Games []GameRecord `json:"games"`
}

// GameRecord is one game within a round: a machine and up to four scored
// player slots. A slot with a zero score is unused.
type GameRecord struct {
	N       int    `json:"n"`
	Machine string `json:"machine"`
	Player1 string `json:"player_1"`
	Player2 string `json:"player_2"`
	Player3 string `json:"player_3"`
	Player4 string `json:"player_4"`
	Score1  int64  `json:"score_1"`
	Score2  int64  `json:"score_2"`
	Score3  int64  `json:"score_3"`
	Score4  int64  `json:"score_4"`
}

func (g GameRecord) slots() [4]scoreSlot {
	return [4]scoreSlot{
		{g.Player1, g.Score1},
		{g.Player2, g.Score2},
		{g.Player3, g.Score3},
		{g.Player4, g.Score4},
	}
}

type scoreSlot struct {
	playerKey string
	score     int64
}

// ScoredEvent is one valid scored play, the unit every aggregation in this
// package and in the picks package works from. Events are immutable once
// flattened.
type ScoredEvent struct {
	Season          int    `json:"season"`
	Machine         string `json:"machine"`
	PlayerName      string `json:"player_name"`
	Score           int64  `json:"score"`
	Team            string `json:"team"`
	Match           string `json:"match"`
	Round           int    `json:"round"`
	GameNumber      int    `json:"game_number"`
	Venue           string `json:"venue"`
	PickedBy        string `json:"picked_by"`
	IsPick          bool   `json:"is_pick"`
	IsReferencePick bool   `json:"is_reference_pick"`
	IsRosterPlayer  bool   `json:"is_roster_player"`
}

// Snapshot is a point-in-time copy of the operator-editable configuration the
// engine needs. Callers materialize a fresh Snapshot per invocation; the
// engine never caches or mutates one.
//
// Rosters holds the *current* roster per team key and is applied uniformly to
// all historical events: roster membership means "currently plays for this
// team", not "played for it in that event's season".
type Snapshot struct {
	Aliases     map[string]string
	ScoreLimits map[string]int64
	Included    []string
	Excluded    []string
	TeamKeys    map[string]string
	Rosters     map[string][]string
}

func (s Snapshot) rosterContains(teamName, playerName string) bool {
	key, ok := s.TeamKeys[teamName]
	if !ok {
		return false
	}
	for _, name := range s.Rosters[key] {
		if name == playerName {
			return true
		}
	}
	return false
}

func (s Snapshot) scoreLimit(machine string) (int64, bool) {
	limit, ok := s.ScoreLimits[machine]
	return limit, ok
}
