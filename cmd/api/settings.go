package main

import (
	"PinStatsApi/internal/data"
	"PinStatsApi/internal/validator"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (app *application) GetScoreLimits(w http.ResponseWriter, r *http.Request) {
	limits, err := app.models.ScoreLimits.GetAll()
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"score_limits": limits}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) SetScoreLimit(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Machine string `json:"machine"`
		Limit   int64  `json:"limit"`
	}

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	limit := &data.ScoreLimit{
		Machine: input.Machine,
		Limit:   input.Limit,
	}

	v := validator.New()
	if data.ValidateScoreLimit(v, limit); !v.Valid() {
		app.failedValidationResponse(w, r, v.Errors)
		return
	}

	err = app.models.ScoreLimits.Set(limit)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"score_limit": limit}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) DeleteScoreLimit(w http.ResponseWriter, r *http.Request) {
	machine := chi.URLParam(r, "machine")

	err := app.models.ScoreLimits.Delete(machine)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"message": "score limit deleted"}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) GetVenueMachines(w http.ResponseWriter, r *http.Request) {
	venue := chi.URLParam(r, "venue")
	listType := chi.URLParam(r, "list")

	v := validator.New()
	if data.ValidateListType(v, listType); !v.Valid() {
		app.failedValidationResponse(w, r, v.Errors)
		return
	}

	machines, err := app.models.VenueMachines.List(venue, listType)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{
		"venue":    venue,
		"list":     listType,
		"machines": machines,
	}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) AddVenueMachine(w http.ResponseWriter, r *http.Request) {
	venue := chi.URLParam(r, "venue")
	listType := chi.URLParam(r, "list")

	var input struct {
		Machine string `json:"machine"`
	}

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	v := validator.New()
	data.ValidateListType(v, listType)
	data.ValidateVenueMachine(v, venue, input.Machine)
	if !v.Valid() {
		app.failedValidationResponse(w, r, v.Errors)
		return
	}

	err = app.models.VenueMachines.Add(venue, listType, input.Machine)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, envelope{"message": "machine added"}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) DeleteVenueMachine(w http.ResponseWriter, r *http.Request) {
	venue := chi.URLParam(r, "venue")
	listType := chi.URLParam(r, "list")
	machine := chi.URLParam(r, "machine")

	v := validator.New()
	if data.ValidateListType(v, listType); !v.Valid() {
		app.failedValidationResponse(w, r, v.Errors)
		return
	}

	err := app.models.VenueMachines.Delete(venue, listType, machine)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"message": "machine removed"}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) GetAliases(w http.ResponseWriter, r *http.Request) {
	aliases, err := app.models.Aliases.GetAll()
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"aliases": aliases}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) SetAlias(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Alias   string `json:"alias"`
		Machine string `json:"machine"`
	}

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	alias := &data.MachineAlias{
		Alias:   input.Alias,
		Machine: input.Machine,
	}

	v := validator.New()
	if data.ValidateMachineAlias(v, alias); !v.Valid() {
		app.failedValidationResponse(w, r, v.Errors)
		return
	}

	err = app.models.Aliases.Set(alias)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"alias": alias}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) DeleteAlias(w http.ResponseWriter, r *http.Request) {
	alias := chi.URLParam(r, "alias")

	err := app.models.Aliases.Delete(alias)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"message": "alias deleted"}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
