package league

import (
	"sort"
	"strings"
)

// Normalize maps a raw machine label to its canonical name. The lookup is
// case-insensitive and whitespace-trimmed. If the label is itself one of the
// table's canonical values it is returned as-is; an unmapped label is a valid
// canonical name in its own right. Total over strings, never errors.
//
// The alias table is passed on every call rather than held by the package:
// operators edit aliases between runs and a cached copy would go stale.
func Normalize(raw string, aliases map[string]string) string {
	name := strings.ToLower(strings.TrimSpace(raw))

	if canonical, ok := aliases[name]; ok {
		return canonical
	}
	for _, canonical := range aliases {
		if strings.EqualFold(name, canonical) {
			return canonical
		}
	}
	return name
}

// MachineInventory returns the sorted set of canonical machine names seen
// anywhere in the supplied matches. Used by settings surfaces to offer
// machines for limits and venue lists.
func MachineInventory(matches []MatchRecord, aliases map[string]string) []string {
	seen := make(map[string]bool)
	for _, match := range matches {
		for _, round := range match.Rounds {
			for _, game := range round.Games {
				name := Normalize(game.Machine, aliases)
				if name != "" {
					seen[name] = true
				}
			}
		}
	}

	machines := make([]string, 0, len(seen))
	for name := range seen {
		machines = append(machines, name)
	}
	sort.Strings(machines)
	return machines
}

func titleCase(machine string) string {
	words := strings.Fields(machine)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
