package picks

// Per-player machine weights for the optimizers. A weight is the player's
// percent-of-venue edge (their percent minus the 100% baseline) discounted by
// how much history backs it up: machine-specific history reaches full
// confidence at three plays, and a player with no history on a machine falls
// back to their overall percent at a fixed discount since it is an estimate.
const (
	fullConfidencePlays = 3
	noHistoryDiscount   = 0.6
)

// BuildPlayerScores expands profiles into a complete player-by-machine weight
// table over the candidate machines.
func BuildPlayerScores(profiles map[string]*PlayerProfile,
	machines []string) map[string]map[string]float64 {

	scores := make(map[string]map[string]float64, len(profiles))
	for player, profile := range profiles {
		row := make(map[string]float64, len(machines))
		for _, machine := range machines {
			row[machine] = playerMachineWeight(profile, machine)
		}
		scores[player] = row
	}
	return scores
}

func playerMachineWeight(profile *PlayerProfile, machine string) float64 {
	if stats, ok := profile.Machines[machine]; ok && stats.Plays > 0 {
		confidence := float64(stats.Plays) / fullConfidencePlays
		if confidence > 1 {
			confidence = 1
		}
		return (stats.PctOfVenue - 100) * confidence
	}
	return (profile.OverallPct - 100) * noHistoryDiscount
}
