package data

import (
	"testing"

	"PinStatsApi/internal/assert"
	"PinStatsApi/internal/validator"
)

func TestValidateTeam(t *testing.T) {
	tests := []struct {
		name  string
		team  Team
		valid bool
	}{
		{
			name:  "Valid Team",
			team:  Team{Key: "WRK", Name: "The Wrecking Crew", Roster: []string{"Alice Chen"}},
			valid: true,
		},
		{
			name:  "Missing Key",
			team:  Team{Name: "The Wrecking Crew"},
			valid: false,
		},
		{
			name:  "Key Too Long",
			team:  Team{Key: "WRECKINGCREW", Name: "The Wrecking Crew"},
			valid: false,
		},
		{
			name:  "Missing Name",
			team:  Team{Key: "WRK"},
			valid: false,
		},
		{
			name: "Duplicate Roster Entry",
			team: Team{Key: "WRK", Name: "The Wrecking Crew",
				Roster: []string{"Alice Chen", "Alice Chen"}},
			valid: false,
		},
		{
			name:  "Empty Roster Allowed",
			team:  Team{Key: "WRK", Name: "The Wrecking Crew"},
			valid: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := validator.New()
			ValidateTeam(v, &tt.team)
			assert.Equal(t, v.Valid(), tt.valid)
		})
	}
}

func TestValidateScoreLimit(t *testing.T) {
	tests := []struct {
		name  string
		limit ScoreLimit
		valid bool
	}{
		{name: "Valid Limit", limit: ScoreLimit{Machine: "medieval madness", Limit: 1_000_000},
			valid: true},
		{name: "Missing Machine", limit: ScoreLimit{Limit: 1_000_000}, valid: false},
		{name: "Zero Limit", limit: ScoreLimit{Machine: "medieval madness"}, valid: false},
		{name: "Negative Limit", limit: ScoreLimit{Machine: "medieval madness", Limit: -1},
			valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := validator.New()
			ValidateScoreLimit(v, &tt.limit)
			assert.Equal(t, v.Valid(), tt.valid)
		})
	}
}

func TestValidateMachineAlias(t *testing.T) {
	tests := []struct {
		name  string
		alias MachineAlias
		valid bool
	}{
		{name: "Valid Alias", alias: MachineAlias{Alias: "mm", Machine: "medieval madness"},
			valid: true},
		{name: "Missing Alias", alias: MachineAlias{Machine: "medieval madness"}, valid: false},
		{name: "Missing Machine", alias: MachineAlias{Alias: "mm"}, valid: false},
		{name: "Self Alias", alias: MachineAlias{Alias: "Medieval Madness",
			Machine: "medieval madness"}, valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := validator.New()
			ValidateMachineAlias(v, &tt.alias)
			assert.Equal(t, v.Valid(), tt.valid)
		})
	}
}

func TestValidateListType(t *testing.T) {
	for _, listType := range []string{ListIncluded, ListExcluded} {
		v := validator.New()
		ValidateListType(v, listType)
		assert.Equal(t, v.Valid(), true)
	}

	v := validator.New()
	ValidateListType(v, "banned")
	assert.Equal(t, v.Valid(), false)
}

func TestNormalizeMachineKey(t *testing.T) {
	assert.Equal(t, normalizeMachineKey("  Medieval Madness "), "medieval madness")
}
