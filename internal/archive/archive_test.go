package archive

import (
	"os"
	"path/filepath"
	"testing"

	"PinStatsApi/internal/assert"
)

func writeMatch(t *testing.T, dir, season, name, body string) {
	t.Helper()

	matchDir := filepath.Join(dir, season, "matches", "week-1")
	if err := os.MkdirAll(matchDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(matchDir, name), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

const matchBody = `{
	"key": "mnp-21-1-DSD-WRK",
	"venue": {"name": "Olaf's"},
	"home": {"name": "The Wrecking Crew", "key": "WRK", "lineup": []},
	"away": {"name": "Death Save Divas", "key": "DSD", "lineup": []},
	"rounds": [{"n": 1, "games": [{"n": 1, "machine": "Medieval Madness"}]}]
}`

func TestSeasons(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"season-3", "season-21", "season-x", "notes"} {
		if err := os.Mkdir(filepath.Join(dir, name), 0o755); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.WriteFile(filepath.Join(dir, "season-9"), nil, 0o644); err != nil {
		t.Fatal(err)
	}

	seasons, err := Seasons(dir)
	assert.NilError(t, err)

	// Only season-N directories count, sorted numerically.
	assert.Equal(t, len(seasons), 2)
	assert.Equal(t, seasons[0], 3)
	assert.Equal(t, seasons[1], 21)
}

func TestSeasonsMissingDir(t *testing.T) {
	_, err := Seasons(filepath.Join(t.TempDir(), "nope"))
	if err == nil {
		t.Fatal("expected error for missing archive directory")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeMatch(t, dir, "season-20", "match-a.json", matchBody)
	writeMatch(t, dir, "season-21", "match-b.json", matchBody)
	writeMatch(t, dir, "season-21", "README.txt", "not a match")

	matches, err := Load(dir, nil)
	assert.NilError(t, err)

	assert.Equal(t, len(matches), 2)
	assert.Equal(t, matches[0].Key, "mnp-21-1-DSD-WRK")
	assert.Equal(t, matches[0].Venue.Name, "Olaf's")
	assert.Equal(t, len(matches[0].Rounds), 1)
}

func TestLoadSelectedSeasons(t *testing.T) {
	dir := t.TempDir()
	writeMatch(t, dir, "season-20", "match-a.json", matchBody)
	writeMatch(t, dir, "season-21", "match-b.json", matchBody)

	matches, err := Load(dir, []int{21})
	assert.NilError(t, err)
	assert.Equal(t, len(matches), 1)

	// A requested season with no directory is skipped, not an error.
	matches, err = Load(dir, []int{21, 99})
	assert.NilError(t, err)
	assert.Equal(t, len(matches), 1)
}

func TestLoadBadDocument(t *testing.T) {
	dir := t.TempDir()
	writeMatch(t, dir, "season-21", "broken.json", "{not json")

	_, err := Load(dir, nil)
	if err == nil {
		t.Fatal("expected parse error")
	}
	assert.StringContains(t, err.Error(), "broken.json")
}
