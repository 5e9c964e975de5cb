package league

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var columnKindsByName = map[string]ColumnKind{
	"team_average":           ColTeamAverage,
	"reference_average":      ColReferenceAverage,
	"venue_average":          ColVenueAverage,
	"team_highest_score":     ColTeamHighestScore,
	"times_played":           ColTimesPlayed,
	"reference_times_played": ColReferenceTimesPlayed,
	"times_picked":           ColTimesPicked,
	"reference_times_picked": ColReferenceTimesPicked,
}

type layoutFile struct {
	Columns []struct {
		Name          string `yaml:"name"`
		Kind          string `yaml:"kind"`
		Include       *bool  `yaml:"include"`
		Seasons       string `yaml:"seasons"`
		VenueSpecific *bool  `yaml:"venue_specific"`
		Backfill      bool   `yaml:"backfill"`
	} `yaml:"columns"`
}

// LoadColumnLayout reads a YAML column layout file, replacing the default
// report shape. Include and venue_specific default to true when omitted.
func LoadColumnLayout(path string) ([]ColumnSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read column layout file: %w", err)
	}
	return ParseColumnLayout(data)
}

func ParseColumnLayout(data []byte) ([]ColumnSpec, error) {
	var file layoutFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse column layout file: %w", err)
	}
	if len(file.Columns) == 0 {
		return nil, fmt.Errorf("column layout file declares no columns")
	}

	layout := make([]ColumnSpec, 0, len(file.Columns))
	for _, col := range file.Columns {
		kind, ok := columnKindsByName[col.Kind]
		if !ok {
			return nil, fmt.Errorf("column %q: unknown kind %q", col.Name, col.Kind)
		}
		seasons, err := ParseSeasonRange(col.Seasons)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", col.Name, err)
		}

		spec := ColumnSpec{
			Name:          col.Name,
			Kind:          kind,
			Include:       true,
			Seasons:       seasons,
			VenueSpecific: true,
			Backfill:      col.Backfill,
		}
		if col.Include != nil {
			spec.Include = *col.Include
		}
		if col.VenueSpecific != nil {
			spec.VenueSpecific = *col.VenueSpecific
		}
		layout = append(layout, spec)
	}
	return layout, nil
}
