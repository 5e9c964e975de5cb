package data

import (
	"PinStatsApi/internal/validator"
	"context"
	"database/sql"
	"strings"
	"time"
)

// Venue machine lists curate which machines count as "in rotation" at a
// venue: the included list seeds the report's machine set, the excluded list
// keeps retired machines out of it.
const (
	ListIncluded = "included"
	ListExcluded = "excluded"
)

type VenueMachineModel struct {
	db *sql.DB
}

func (m *VenueMachineModel) List(venue, listType string) ([]string, error) {
	stmt := `
		SELECT machine
		FROM venue_machine_lists
		WHERE venue = $1 AND list_type = $2
		ORDER BY machine`

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := m.db.QueryContext(ctx, stmt, venue, listType)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	machines := make([]string, 0)
	for rows.Next() {
		var machine string
		if err := rows.Scan(&machine); err != nil {
			return nil, err
		}
		machines = append(machines, machine)
	}
	return machines, rows.Err()
}

func (m *VenueMachineModel) Add(venue, listType, machine string) error {
	stmt := `
		INSERT INTO venue_machine_lists (venue, list_type, machine)
		VALUES ($1, $2, $3)
		ON CONFLICT DO NOTHING`

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	_, err := m.db.ExecContext(ctx, stmt, venue, listType, normalizeMachineKey(machine))
	return err
}

func (m *VenueMachineModel) Delete(venue, listType, machine string) error {
	stmt := `
		DELETE FROM venue_machine_lists
		WHERE venue = $1 AND list_type = $2 AND machine = $3`

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	result, err := m.db.ExecContext(ctx, stmt, venue, listType, normalizeMachineKey(machine))
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

func ValidateListType(v *validator.Validator, listType string) {
	v.Check(validator.PermittedValue(listType, ListIncluded, ListExcluded), "list",
		`must be "included" or "excluded"`)
}

func ValidateVenueMachine(v *validator.Validator, venue, machine string) {
	v.Check(strings.TrimSpace(venue) != "", "venue", "must be provided")
	v.Check(strings.TrimSpace(machine) != "", "machine", "must be provided")
}
