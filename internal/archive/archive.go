// Package archive reads parsed match records from a local copy of the league
// data archive: a directory tree of season-N/matches/**/*.json documents.
// Keeping the archive current (cloning, pulling) is someone else's job; this
// package only loads what is on disk.
package archive

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"PinStatsApi/internal/league"
)

var seasonDirPattern = regexp.MustCompile(`^season-(\d+)$`)

// Seasons lists the season numbers present in the archive directory, sorted
// ascending.
func Seasons(dir string) ([]int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read archive directory: %w", err)
	}

	seasons := make([]int, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		m := seasonDirPattern.FindStringSubmatch(entry.Name())
		if m == nil {
			continue
		}
		season, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		seasons = append(seasons, season)
	}
	sort.Ints(seasons)
	return seasons, nil
}

// Load reads every match document for the requested seasons. A nil or empty
// seasons slice loads every season present. A season directory that does not
// exist is skipped; a file that exists but does not parse is an error naming
// the file, because a silently dropped match corrupts every aggregate built
// from the result.
func Load(dir string, seasons []int) ([]league.MatchRecord, error) {
	if len(seasons) == 0 {
		all, err := Seasons(dir)
		if err != nil {
			return nil, err
		}
		seasons = all
	}

	matches := make([]league.MatchRecord, 0)
	for _, season := range seasons {
		seasonDir := filepath.Join(dir, fmt.Sprintf("season-%d", season), "matches")
		info, err := os.Stat(seasonDir)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			continue
		}

		err = filepath.WalkDir(seasonDir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || !strings.HasSuffix(d.Name(), ".json") {
				return nil
			}

			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", path, err)
			}
			var match league.MatchRecord
			if err := json.Unmarshal(data, &match); err != nil {
				return fmt.Errorf("failed to parse %s: %w", path, err)
			}
			matches = append(matches, match)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return matches, nil
}
