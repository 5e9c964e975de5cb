package main

import (
	"PinStatsApi/internal/league"
	"PinStatsApi/internal/picks"
	"PinStatsApi/internal/validator"
	"errors"
	"net/http"
)

func (app *application) GetAdvantage(w http.ResponseWriter, r *http.Request) {
	v := validator.New()
	input := app.readAnalysisInput(r, v)
	if !v.Valid() {
		app.failedValidationResponse(w, r, v.Errors)
		return
	}

	events, _, snap, err := app.flattenForInput(input)
	if err != nil {
		switch {
		case errors.Is(err, league.ErrNoMatches):
			v.AddError("seasons", "no match records found for the requested seasons")
			app.failedValidationResponse(w, r, v.Errors)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	profiles, table := picks.BuildAdvantage(events, input.team, input.reference, input.venue,
		seasonWindow(input, events), snap)

	err = app.writeJSON(w, http.StatusOK, envelope{
		"player_profiles": profiles,
		"advantage":       table,
	}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

type picksRequest struct {
	Team      string   `json:"team"`
	Venue     string   `json:"venue"`
	Reference string   `json:"reference"`
	Seasons   string   `json:"seasons"`
	Players   []string `json:"players"`
	Machines  int      `json:"machines"`
}

func (app *application) PostSinglesPicks(w http.ResponseWriter, r *http.Request) {
	app.recommendPicks(w, r, picks.AssignSingles)
}

func (app *application) PostDoublesPicks(w http.ResponseWriter, r *http.Request) {
	app.recommendPicks(w, r, picks.AssignDoubles)
}

func (app *application) recommendPicks(w http.ResponseWriter, r *http.Request,
	assign func(scores map[string]map[string]float64, machines, players []string,
		k int) (picks.Selection, error)) {

	var body picksRequest
	err := app.readJSON(w, r, &body)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	v := validator.New()
	v.Check(body.Team != "", "team", "must be provided")
	v.Check(body.Venue != "", "venue", "must be provided")
	v.Check(len(body.Players) > 0, "players", "must be provided")
	v.Check(validator.Unique(body.Players), "players", "must not contain duplicates")
	v.Check(body.Machines > 0, "machines", "must be greater than zero")

	input := analysisInput{
		team:      body.Team,
		venue:     body.Venue,
		reference: body.Reference,
	}
	if input.reference == "" {
		input.reference = app.config.report.referenceTeam
	}
	if body.Seasons != "" {
		sr, err := league.ParseSeasonRange(body.Seasons)
		if err != nil {
			v.AddError("seasons", err.Error())
		} else {
			input.seasons = &sr
		}
	}
	if !v.Valid() {
		app.failedValidationResponse(w, r, v.Errors)
		return
	}

	events, _, snap, err := app.flattenForInput(input)
	if err != nil {
		switch {
		case errors.Is(err, league.ErrNoMatches):
			v.AddError("seasons", "no match records found for the requested seasons")
			app.failedValidationResponse(w, r, v.Errors)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	profiles, table := picks.BuildAdvantage(events, input.team, input.reference, input.venue,
		seasonWindow(input, events), snap)

	machines := make([]string, 0, len(table))
	for _, adv := range table {
		machines = append(machines, adv.Machine)
	}
	scores := picks.BuildPlayerScores(ensureProfiles(profiles, body.Players), machines)

	selection, err := assign(scores, machines, body.Players, body.Machines)
	if err != nil {
		switch {
		case errors.Is(err, picks.ErrNotEnoughPlayers):
			v.AddError("players", err.Error())
			app.failedValidationResponse(w, r, v.Errors)
		default:
			app.badRequestResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"selection": selection}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// seasonWindow is the advantage window: the requested range, or everything up
// to the latest flattened season when the request had none.
func seasonWindow(input analysisInput, events []league.ScoredEvent) league.SeasonRange {
	if input.seasons != nil {
		return *input.seasons
	}
	window := league.SeasonRange{From: 1}
	for _, e := range events {
		if e.Season > window.To {
			window.To = e.Season
		}
	}
	return window
}

// ensureProfiles guarantees every requested player has a profile, so players
// with no history at the venue still receive (heavily discounted) weights
// instead of disappearing from the matrix.
func ensureProfiles(profiles map[string]*picks.PlayerProfile,
	players []string) map[string]*picks.PlayerProfile {
	for _, player := range players {
		if _, ok := profiles[player]; !ok {
			profiles[player] = &picks.PlayerProfile{
				Player:   player,
				Machines: make(map[string]*picks.MachineStats),
			}
		}
	}
	return profiles
}
