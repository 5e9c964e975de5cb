package data

import "PinStatsApi/internal/league"

// Snapshot materializes the full operator configuration for one venue into
// the value the engine consumes. Handlers call this once per request so every
// computation sees a consistent, current copy; the engine itself never reads
// the store.
func (m Models) Snapshot(venue string) (league.Snapshot, error) {
	aliases, err := m.Aliases.GetAll()
	if err != nil {
		return league.Snapshot{}, err
	}
	limits, err := m.ScoreLimits.GetAll()
	if err != nil {
		return league.Snapshot{}, err
	}
	included, err := m.VenueMachines.List(venue, ListIncluded)
	if err != nil {
		return league.Snapshot{}, err
	}
	excluded, err := m.VenueMachines.List(venue, ListExcluded)
	if err != nil {
		return league.Snapshot{}, err
	}
	teamKeys, err := m.Teams.KeysByName()
	if err != nil {
		return league.Snapshot{}, err
	}
	rosters, err := m.Teams.Rosters()
	if err != nil {
		return league.Snapshot{}, err
	}

	return league.Snapshot{
		Aliases:     aliases,
		ScoreLimits: limits,
		Included:    included,
		Excluded:    excluded,
		TeamKeys:    teamKeys,
		Rosters:     rosters,
	}, nil
}
