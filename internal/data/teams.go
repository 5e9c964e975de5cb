package data

import (
	"PinStatsApi/internal/validator"
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"
)

var ErrTeamNotFound = errors.New("team not found")

// Team pairs a full team name with the league's short key (abbreviation).
// Rosters are stored against the key because the public league site keys
// rosters that way; the engine translates names to keys through this mapping.
type Team struct {
	Key    string   `json:"key"`
	Name   string   `json:"name"`
	Roster []string `json:"roster,omitempty"`
}

type TeamModel struct {
	db *sql.DB
}

func (m *TeamModel) GetAll() ([]*Team, error) {
	stmt := `
		SELECT key, name
		FROM teams
		ORDER BY name`

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := m.db.QueryContext(ctx, stmt)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	teams := make([]*Team, 0)
	for rows.Next() {
		team := &Team{}
		if err := rows.Scan(&team.Key, &team.Name); err != nil {
			return nil, err
		}
		teams = append(teams, team)
	}
	return teams, rows.Err()
}

// KeysByName returns the full-name to key mapping used to resolve a team
// name from a match record into its roster key.
func (m *TeamModel) KeysByName() (map[string]string, error) {
	teams, err := m.GetAll()
	if err != nil {
		return nil, err
	}

	keys := make(map[string]string, len(teams))
	for _, team := range teams {
		keys[team.Name] = team.Key
	}
	return keys, nil
}

func (m *TeamModel) Get(key string) (*Team, error) {
	stmt := `
		SELECT key, name
		FROM teams
		WHERE key = $1`

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	team := &Team{}
	err := m.db.QueryRowContext(ctx, stmt, key).Scan(&team.Key, &team.Name)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrTeamNotFound
		default:
			return nil, err
		}
	}

	roster, err := m.getRoster(key)
	if err != nil {
		return nil, err
	}
	team.Roster = roster
	return team, nil
}

// Upsert stores the team and replaces its roster in one transaction. The
// roster is a full snapshot of "who currently plays for this team"; partial
// updates are not supported.
func (m *TeamModel) Upsert(team *Team) error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	stmt := `
		INSERT INTO teams (key, name)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET name = EXCLUDED.name`

	if _, err := tx.ExecContext(ctx, stmt, team.Key, team.Name); err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			return rollbackErr
		}
		return err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM rosters WHERE team_key = $1`,
		team.Key); err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			return rollbackErr
		}
		return err
	}

	for _, player := range team.Roster {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO rosters (team_key, player_name) VALUES ($1, $2)
			 ON CONFLICT DO NOTHING`, team.Key, player); err != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				return rollbackErr
			}
			return err
		}
	}

	return tx.Commit()
}

// Rosters returns every stored roster keyed by team key.
func (m *TeamModel) Rosters() (map[string][]string, error) {
	stmt := `
		SELECT team_key, player_name
		FROM rosters
		ORDER BY team_key, player_name`

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := m.db.QueryContext(ctx, stmt)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rosters := make(map[string][]string)
	for rows.Next() {
		var key, player string
		if err := rows.Scan(&key, &player); err != nil {
			return nil, err
		}
		rosters[key] = append(rosters[key], player)
	}
	return rosters, rows.Err()
}

func (m *TeamModel) getRoster(key string) ([]string, error) {
	stmt := `
		SELECT player_name
		FROM rosters
		WHERE team_key = $1
		ORDER BY player_name`

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := m.db.QueryContext(ctx, stmt, key)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	roster := make([]string, 0)
	for rows.Next() {
		var player string
		if err := rows.Scan(&player); err != nil {
			return nil, err
		}
		roster = append(roster, player)
	}
	return roster, rows.Err()
}

func ValidateTeam(v *validator.Validator, team *Team) {
	v.Check(strings.TrimSpace(team.Key) != "", "key", "must be provided")
	v.Check(len(team.Key) <= 10, "key", "must be 10 characters or less")
	v.Check(strings.TrimSpace(team.Name) != "", "name", "must be provided")
	v.Check(validator.Unique(team.Roster), "roster", "must not contain duplicate players")
}
