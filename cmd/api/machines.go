package main

import (
	"PinStatsApi/internal/archive"
	"PinStatsApi/internal/league"
	"PinStatsApi/internal/validator"
	"net/http"
)

// GetMachines lists every canonical machine name observed in the archive,
// for settings surfaces offering machines to limit or curate.
func (app *application) GetMachines(w http.ResponseWriter, r *http.Request) {
	v := validator.New()
	seasons := app.readSeasonRange(r.URL.Query(), "seasons", v)
	if !v.Valid() {
		app.failedValidationResponse(w, r, v.Errors)
		return
	}

	var seasonList []int
	if seasons != nil {
		for s := seasons.From; s <= seasons.To; s++ {
			seasonList = append(seasonList, s)
		}
	}

	matches, err := archive.Load(app.config.archive.dir, seasonList)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	aliases, err := app.models.Aliases.GetAll()
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	machines := league.MachineInventory(matches, aliases)
	err = app.writeJSON(w, http.StatusOK, envelope{"machines": machines}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
