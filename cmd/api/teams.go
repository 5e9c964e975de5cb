package main

import (
	"PinStatsApi/internal/data"
	"PinStatsApi/internal/validator"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

func (app *application) GetAllTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := app.models.Teams.GetAll()
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"teams": teams}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) GetTeam(w http.ResponseWriter, r *http.Request) {
	key := strings.ToUpper(chi.URLParam(r, "key"))

	team, err := app.models.Teams.Get(key)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrTeamNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"team": team}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// UpsertTeam stores a team's name and replaces its roster wholesale. Rosters
// arrive from an external scraper as complete current snapshots.
func (app *application) UpsertTeam(w http.ResponseWriter, r *http.Request) {
	key := strings.ToUpper(chi.URLParam(r, "key"))

	var input struct {
		Name   string   `json:"name"`
		Roster []string `json:"roster"`
	}

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	team := &data.Team{
		Key:    key,
		Name:   input.Name,
		Roster: input.Roster,
	}

	v := validator.New()
	if data.ValidateTeam(v, team); !v.Valid() {
		app.failedValidationResponse(w, r, v.Errors)
		return
	}

	err = app.models.Teams.Upsert(team)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"team": team}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
