package league

import (
	"testing"

	"PinStatsApi/internal/assert"
)

func TestNormalize(t *testing.T) {
	aliases := map[string]string{
		"mm":       "medieval madness",
		"tz":       "twilight zone",
		"godzilla": "godzilla (premium)",
	}

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "alias key maps to canonical name",
			raw:  "mm",
			want: "medieval madness",
		},
		{
			name: "alias lookup is case-insensitive",
			raw:  "MM",
			want: "medieval madness",
		},
		{
			name: "alias lookup trims whitespace",
			raw:  "  tz ",
			want: "twilight zone",
		},
		{
			name: "canonical value passes through",
			raw:  "Medieval Madness",
			want: "medieval madness",
		},
		{
			name: "unmapped label is its own canonical name",
			raw:  "Attack From Mars",
			want: "attack from mars",
		},
		{
			name: "empty input stays empty",
			raw:  "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, Normalize(tt.raw, aliases), tt.want)
		})
	}
}

func TestNormalizeNilAliases(t *testing.T) {
	assert.Equal(t, Normalize("  Twilight Zone ", nil), "twilight zone")
}

func TestMachineInventory(t *testing.T) {
	aliases := map[string]string{"mm": "medieval madness"}
	matches := []MatchRecord{
		{
			Key: "mnp-21-1-ABC-DEF",
			Rounds: []RoundRecord{
				{N: 1, Games: []GameRecord{
					{N: 1, Machine: "MM"},
					{N: 2, Machine: "Twilight Zone"},
				}},
				{N: 2, Games: []GameRecord{
					{N: 1, Machine: "twilight zone"},
					{N: 2, Machine: ""},
				}},
			},
		},
		{
			Key: "mnp-21-2-ABC-GHI",
			Rounds: []RoundRecord{
				{N: 1, Games: []GameRecord{{N: 1, Machine: "Godzilla"}}},
			},
		},
	}

	got := MachineInventory(matches, aliases)
	assert.StringSliceEqual(t, got, []string{"godzilla", "medieval madness", "twilight zone"})
}

func TestTitleCase(t *testing.T) {
	tests := []struct {
		machine string
		want    string
	}{
		{"medieval madness", "Medieval Madness"},
		{"godzilla (premium)", "Godzilla (premium)"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, titleCase(tt.machine), tt.want)
	}
}
