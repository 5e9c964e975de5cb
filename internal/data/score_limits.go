package data

import (
	"PinStatsApi/internal/validator"
	"context"
	"database/sql"
	"strings"
	"time"
)

// ScoreLimit is a per-machine score ceiling. Scores above the limit are
// presumed data-entry errors and are dropped during flattening; scores equal
// to the limit are kept.
type ScoreLimit struct {
	Machine string `json:"machine"`
	Limit   int64  `json:"limit"`
}

type ScoreLimitModel struct {
	db *sql.DB
}

func (m *ScoreLimitModel) GetAll() (map[string]int64, error) {
	stmt := `
		SELECT machine, score_limit
		FROM score_limits`

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := m.db.QueryContext(ctx, stmt)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	limits := make(map[string]int64)
	for rows.Next() {
		var machine string
		var limit int64
		if err := rows.Scan(&machine, &limit); err != nil {
			return nil, err
		}
		limits[machine] = limit
	}
	return limits, rows.Err()
}

func (m *ScoreLimitModel) Set(limit *ScoreLimit) error {
	limit.Machine = normalizeMachineKey(limit.Machine)

	stmt := `
		INSERT INTO score_limits (machine, score_limit)
		VALUES ($1, $2)
		ON CONFLICT (machine) DO UPDATE SET score_limit = EXCLUDED.score_limit`

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	_, err := m.db.ExecContext(ctx, stmt, limit.Machine, limit.Limit)
	return err
}

func (m *ScoreLimitModel) Delete(machine string) error {
	stmt := `
		DELETE FROM score_limits
		WHERE machine = $1`

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	result, err := m.db.ExecContext(ctx, stmt, normalizeMachineKey(machine))
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func ValidateScoreLimit(v *validator.Validator, limit *ScoreLimit) {
	v.Check(strings.TrimSpace(limit.Machine) != "", "machine", "must be provided")
	v.Check(limit.Limit > 0, "limit", "must be greater than zero")
}

// normalizeMachineKey matches the flattener's canonical form so limits and
// list entries written through the API line up with flattened event machines.
func normalizeMachineKey(machine string) string {
	return strings.ToLower(strings.TrimSpace(machine))
}
