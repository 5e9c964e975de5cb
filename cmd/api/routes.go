package main

import (
	"expvar"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (app *application) routes() http.Handler {
	router := chi.NewRouter()

	// Router
	router.NotFound(app.notFoundResponse)
	router.MethodNotAllowed(app.methodNotAllowedRequest)

	// Middleware
	router.Use(app.metrics)
	router.Use(app.recoverPanic)
	router.Use(app.enableCORS)
	router.Use(app.rateLimit)

	// Healthcheck
	router.Get("/v1/healthcheck", app.HealthCheck)
	router.Method(http.MethodGet, "/v1/metrics", expvar.Handler())

	// Report Endpoints
	router.Get("/v1/report", app.GetReport)
	router.Post("/v1/report/email", app.EmailReport)
	router.Get("/v1/advantage", app.GetAdvantage)
	router.Post("/v1/picks/singles", app.PostSinglesPicks)
	router.Post("/v1/picks/doubles", app.PostDoublesPicks)
	router.Get("/v1/machines", app.GetMachines)

	// Settings Endpoints
	router.Route("/v1/settings", func(router chi.Router) {
		router.Get("/score-limits", app.GetScoreLimits)
		router.Put("/score-limits", app.SetScoreLimit)
		router.Delete("/score-limits/{machine}", app.DeleteScoreLimit)

		router.Get("/venues/{venue}/machines/{list}", app.GetVenueMachines)
		router.Post("/venues/{venue}/machines/{list}", app.AddVenueMachine)
		router.Delete("/venues/{venue}/machines/{list}/{machine}", app.DeleteVenueMachine)

		router.Get("/aliases", app.GetAliases)
		router.Put("/aliases", app.SetAlias)
		router.Delete("/aliases/{alias}", app.DeleteAlias)
	})

	// Team Endpoints
	router.Get("/v1/teams", app.GetAllTeams)
	router.Get("/v1/teams/{key}", app.GetTeam)
	router.Put("/v1/teams/{key}", app.UpsertTeam)

	return router
}
