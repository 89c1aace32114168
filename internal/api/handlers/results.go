package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/boudmarinus-tech/ene-chille-app/internal/service"
)

type ResultsHandler struct {
	resultsService *service.ResultsService
	matchService   *service.MatchService
}

func NewResultsHandler(resultsService *service.ResultsService, matchService *service.MatchService) *ResultsHandler {
	return &ResultsHandler{resultsService: resultsService, matchService: matchService}
}

func (h *ResultsHandler) Get(w http.ResponseWriter, r *http.Request) {
	matchID, ok := resolveMatchID(w, r, h.matchService)
	if !ok {
		return
	}

	summary, err := h.resultsService.GetResults(r.Context(), matchID)
	if err != nil {
		log.Printf("ERROR [results.Get] matchID=%s: %v", matchID, err)
		http.Error(w, "Failed to load results", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(summary)
}
