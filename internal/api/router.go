package api

import (
	"net/http"

	"github.com/boudmarinus-tech/ene-chille-app/internal/api/handlers"
	"github.com/boudmarinus-tech/ene-chille-app/internal/api/middleware"
	"github.com/boudmarinus-tech/ene-chille-app/internal/repository"
	"github.com/boudmarinus-tech/ene-chille-app/internal/service"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(services *service.Services, repos *repository.Repositories) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.CORS)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Initialize handlers
	rosterHandler := handlers.NewRosterHandler(repos.Roster)
	matchHandler := handlers.NewMatchHandler(services.Match)
	voteHandler := handlers.NewVoteHandler(services.Vote, services.Match)
	resultsHandler := handlers.NewResultsHandler(services.Results, services.Match)
	attendanceHandler := handlers.NewAttendanceHandler(services.Attendance, services.Match)
	fixtureHandler := handlers.NewFixtureHandler(repos.Fixture)
	seasonHandler := handlers.NewSeasonHandler(services.Season)
	standingsHandler := handlers.NewStandingsHandler(services.Standings)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/roster", rosterHandler.List)

		r.Route("/matches", func(r chi.Router) {
			r.Post("/", matchHandler.Create)
			r.Get("/", matchHandler.List)
			r.Get("/{idOrCode}", matchHandler.Get)

			r.Post("/{idOrCode}/stats", voteHandler.SaveStats)
			r.Post("/{idOrCode}/votes/motm", voteHandler.SubmitMotm)
			r.Post("/{idOrCode}/votes/donkey", voteHandler.SubmitDonkey)
			r.Get("/{idOrCode}/results", resultsHandler.Get)
			r.Put("/{idOrCode}/attendance", attendanceHandler.Save)
			r.Get("/{idOrCode}/attendance", attendanceHandler.Get)
		})

		r.Get("/fixtures", fixtureHandler.List)
		r.Get("/season", seasonHandler.Get)
		r.Get("/standings", standingsHandler.Get)
	})

	return r
}
