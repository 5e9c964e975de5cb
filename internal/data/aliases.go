package data

import (
	"PinStatsApi/internal/validator"
	"context"
	"database/sql"
	"strings"
	"time"
)

// MachineAlias maps a free-text machine label, as it appears in match
// records, to its canonical name. Operators add mappings as new misspellings
// turn up, so consumers must fetch a fresh table per run.
type MachineAlias struct {
	Alias   string `json:"alias"`
	Machine string `json:"machine"`
}

type AliasModel struct {
	db *sql.DB
}

func (m *AliasModel) GetAll() (map[string]string, error) {
	stmt := `
		SELECT alias, machine
		FROM machine_aliases`

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := m.db.QueryContext(ctx, stmt)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	aliases := make(map[string]string)
	for rows.Next() {
		var alias, machine string
		if err := rows.Scan(&alias, &machine); err != nil {
			return nil, err
		}
		aliases[alias] = machine
	}
	return aliases, rows.Err()
}

func (m *AliasModel) Set(alias *MachineAlias) error {
	alias.Alias = normalizeMachineKey(alias.Alias)
	alias.Machine = normalizeMachineKey(alias.Machine)

	stmt := `
		INSERT INTO machine_aliases (alias, machine)
		VALUES ($1, $2)
		ON CONFLICT (alias) DO UPDATE SET machine = EXCLUDED.machine`

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	_, err := m.db.ExecContext(ctx, stmt, alias.Alias, alias.Machine)
	return err
}

func (m *AliasModel) Delete(alias string) error {
	stmt := `
		DELETE FROM machine_aliases
		WHERE alias = $1`

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	result, err := m.db.ExecContext(ctx, stmt, normalizeMachineKey(alias))
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

func ValidateMachineAlias(v *validator.Validator, alias *MachineAlias) {
	v.Check(strings.TrimSpace(alias.Alias) != "", "alias", "must be provided")
	v.Check(strings.TrimSpace(alias.Machine) != "", "machine", "must be provided")
	v.Check(!strings.EqualFold(strings.TrimSpace(alias.Alias), strings.TrimSpace(alias.Machine)),
		"alias", "must differ from the canonical name")
}
