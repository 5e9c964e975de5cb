package main

import (
	"PinStatsApi/internal/archive"
	"PinStatsApi/internal/league"
	"PinStatsApi/internal/validator"
	"errors"
	"net/http"
)

// analysisInput is the common shape of every report-style request: the team
// under analysis, the venue, the opponent used for comparative columns, and
// an optional season window restricting which archive seasons are loaded.
type analysisInput struct {
	team      string
	venue     string
	reference string
	seasons   *league.SeasonRange
}

func (app *application) readAnalysisInput(r *http.Request, v *validator.Validator) analysisInput {
	qs := r.URL.Query()

	input := analysisInput{
		team:      app.readString(qs, "team", ""),
		venue:     app.readString(qs, "venue", ""),
		reference: app.readString(qs, "reference", app.config.report.referenceTeam),
		seasons:   app.readSeasonRange(qs, "seasons", v),
	}

	v.Check(input.team != "", "team", "must be provided")
	v.Check(input.venue != "", "venue", "must be provided")
	v.Check(input.reference != "", "reference", "must be provided")
	return input
}

// flattenForInput loads the archive and flattens it against a fresh settings
// snapshot. Events, the recent-machine set and the snapshot all describe the
// same instant; nothing is cached between requests.
func (app *application) flattenForInput(input analysisInput) ([]league.ScoredEvent,
	map[string]bool, league.Snapshot, error) {

	snap, err := app.models.Snapshot(input.venue)
	if err != nil {
		return nil, nil, league.Snapshot{}, err
	}

	var seasons []int
	if input.seasons != nil {
		for s := input.seasons.From; s <= input.seasons.To; s++ {
			seasons = append(seasons, s)
		}
	}

	matches, err := archive.Load(app.config.archive.dir, seasons)
	if err != nil {
		return nil, nil, league.Snapshot{}, err
	}

	events, recentMachines, err := league.Flatten(matches, input.team, input.reference,
		input.venue, snap)
	if err != nil {
		return nil, nil, league.Snapshot{}, err
	}
	return events, recentMachines, snap, nil
}

func (app *application) buildReport(input analysisInput) (league.ResultTable, error) {
	events, recentMachines, _, err := app.flattenForInput(input)
	if err != nil {
		return league.ResultTable{}, err
	}

	layout := make([]league.ColumnSpec, len(app.layout))
	copy(layout, app.layout)
	if input.seasons != nil {
		for i := range layout {
			layout[i].Seasons = *input.seasons
		}
	}

	return league.BuildResultTable(events, recentMachines, input.team, input.reference,
		input.venue, layout), nil
}

func (app *application) GetReport(w http.ResponseWriter, r *http.Request) {
	v := validator.New()
	input := app.readAnalysisInput(r, v)
	if !v.Valid() {
		app.failedValidationResponse(w, r, v.Errors)
		return
	}

	table, err := app.buildReport(input)
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

	err = app.writeJSON(w, http.StatusOK, envelope{"report": table}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) EmailReport(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Recipient string `json:"recipient"`
		Team      string `json:"team"`
		Venue     string `json:"venue"`
		Reference string `json:"reference"`
		Seasons   string `json:"seasons"`
	}

	err := app.readJSON(w, r, &body)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	v := validator.New()
	v.Check(body.Recipient != "", "recipient", "must be provided")
	v.Check(body.Team != "", "team", "must be provided")
	v.Check(body.Venue != "", "venue", "must be provided")

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

	table, err := app.buildReport(input)
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

	app.backgroundTask(func() {
		data := map[string]string{
			"Team":      input.team,
			"Venue":     input.venue,
			"Reference": input.reference,
			"Report":    table.RenderText(),
		}
		err := app.mailer.Send(body.Recipient, "venue_report.tmpl", data)
		if err != nil {
			app.logger.PrintError(err, map[string]string{
				"recipient": body.Recipient,
			})
		}
	})

	err = app.writeJSON(w, http.StatusAccepted, envelope{"message": "report email queued"}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
