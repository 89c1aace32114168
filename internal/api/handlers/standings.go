package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/boudmarinus-tech/ene-chille-app/internal/service"
	"github.com/boudmarinus-tech/ene-chille-app/internal/standings"
)

type StandingsHandler struct {
	standingsService *service.StandingsService
}

func NewStandingsHandler(standingsService *service.StandingsService) *StandingsHandler {
	return &StandingsHandler{standingsService: standingsService}
}

type StandingsErrorResponse struct {
	Error string `json:"error"`
}

// Get scrapes the upstream standings page and republishes it as JSON.
// The response is never cached; the page changes after every playday.
func (h *StandingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")

	table, err := h.standingsService.Get()
	if err != nil {
		log.Printf("ERROR [standings.Get]: %v", err)
		status := http.StatusInternalServerError
		var upstream *standings.UpstreamError
		if errors.As(err, &upstream) {
			status = http.StatusBadGateway
		}
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(StandingsErrorResponse{Error: err.Error()})
		return
	}

	json.NewEncoder(w).Encode(table)
}
