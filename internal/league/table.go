package league

import (
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"
)

// Names of the two ratio columns appended to every report.
const (
	PctOfVenueColumn          = "% of Venue Avg."
	ReferencePctOfVenueColumn = "Opp. % of Venue Avg."
)

type ResultTable struct {
	Columns []string    `json:"columns"`
	Rows    []ResultRow `json:"rows"`
}

type ResultRow struct {
	Machine string            `json:"machine"`
	Cells   map[string]string `json:"cells"`

	pct    float64
	hasPct bool
}

// DefaultColumnLayout is the standard report shape: the primary team, the
// reference (opponent-of-interest) team and the venue baseline over the two
// most recent seasons observed by the league at the time of writing.
func DefaultColumnLayout() []ColumnSpec {
	window := SeasonRange{From: 20, To: 21}
	kinds := []struct {
		name string
		kind ColumnKind
	}{
		{"Team Average", ColTeamAverage},
		{"Opp. Average", ColReferenceAverage},
		{"Venue Average", ColVenueAverage},
		{"Team Highest Score", ColTeamHighestScore},
		{"Times Played", ColTimesPlayed},
		{"Opp. Times Played", ColReferenceTimesPlayed},
		{"Times Picked", ColTimesPicked},
		{"Opp. Times Picked", ColReferenceTimesPicked},
	}

	layout := make([]ColumnSpec, 0, len(kinds))
	for _, k := range kinds {
		layout = append(layout, ColumnSpec{
			Name:          k.name,
			Kind:          k.kind,
			Include:       true,
			Seasons:       window,
			VenueSpecific: true,
			Backfill:      false,
		})
	}
	return layout
}

// BuildResultTable computes one row per machine in recentMachines with one
// cell per included column, plus the two percent-of-venue-average columns.
// The percent columns derive from the team/reference/venue average cells of
// the same row, so they resolve only when those columns are included and have
// data. Rows sort descending by the primary percent column, "N/A" rows last.
func BuildResultTable(events []ScoredEvent, recentMachines map[string]bool,
	primaryTeam, referenceTeam, venue string, layout []ColumnSpec) ResultTable {

	machines := make([]string, 0, len(recentMachines))
	for machine := range recentMachines {
		machines = append(machines, machine)
	}
	sort.Strings(machines)

	columns := []string{"Machine"}
	for _, spec := range layout {
		if spec.Include {
			columns = append(columns, spec.Name)
		}
	}
	columns = append(columns, PctOfVenueColumn, ReferencePctOfVenueColumn)

	rows := make([]ResultRow, 0, len(machines))
	for _, machine := range machines {
		row := ResultRow{
			Machine: titleCase(machine),
			Cells:   make(map[string]string),
		}

		var teamAvg, refAvg, venueAvg cellValue
		for _, spec := range layout {
			if !spec.Include {
				continue
			}
			cell := computeColumn(events, machine, spec, primaryTeam, referenceTeam, venue)
			row.Cells[spec.Name] = formatCell(cell, spec.Kind.traits().agg)

			switch spec.Kind {
			case ColTeamAverage:
				teamAvg = cell
			case ColReferenceAverage:
				refAvg = cell
			case ColVenueAverage:
				venueAvg = cell
			}
		}

		row.Cells[PctOfVenueColumn] = NotAvailable
		if teamAvg.present && venueAvg.present && venueAvg.value != 0 {
			row.pct = 100 * teamAvg.value / venueAvg.value
			row.hasPct = true
			row.Cells[PctOfVenueColumn] = fmt.Sprintf("%.2f%%", row.pct)
		}

		row.Cells[ReferencePctOfVenueColumn] = NotAvailable
		if refAvg.present && venueAvg.present && venueAvg.value != 0 {
			refPct := 100 * refAvg.value / venueAvg.value
			row.Cells[ReferencePctOfVenueColumn] = fmt.Sprintf("%.2f%%", refPct)
		}

		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].hasPct != rows[j].hasPct {
			return rows[i].hasPct
		}
		return rows[i].pct > rows[j].pct
	})

	return ResultTable{Columns: columns, Rows: rows}
}

// RenderText renders the table as aligned plain text, used for report mail.
func (t ResultTable) RenderText() string {
	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 4, 2, ' ', 0)

	fmt.Fprintln(w, strings.Join(t.Columns, "\t"))
	for _, row := range t.Rows {
		cells := make([]string, 0, len(t.Columns))
		cells = append(cells, row.Machine)
		for _, column := range t.Columns[1:] {
			cells = append(cells, row.Cells[column])
		}
		fmt.Fprintln(w, strings.Join(cells, "\t"))
	}
	w.Flush()
	return sb.String()
}
